package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"stackshop/internal/ui/input/types"
)

// DetailMode handles keys on the product detail view
type DetailMode struct{}

func NewDetailMode() *DetailMode {
	return &DetailMode{}
}

func (m *DetailMode) Name() string {
	return "detail"
}

func (m *DetailMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *DetailMode) Exit(ctx types.Context) []types.Action {
	return []types.Action{types.CloseDetailAction{}}
}

func (m *DetailMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	key := msg.String()
	switch key {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true

	case "esc", "backspace":
		// Back to Products
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true

	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true
	}

	if !ctx.HasProduct() {
		return nil, true
	}

	switch key {
	case "left", "h":
		return []types.Action{types.SelectImageAction{Delta: -1}}, true

	case "right", "l":
		return []types.Action{types.SelectImageAction{Delta: 1}}, true

	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		index := int(key[0] - '1')
		if index < ctx.ImageCount() {
			return []types.Action{types.SelectImageAction{Index: index}}, true
		}
		return nil, true

	case "y":
		return []types.Action{types.CopyAction{What: "image"}}, true

	case "Y":
		return []types.Action{types.CopyAction{What: "sku"}}, true

	case "v":
		return []types.Action{types.ShowSheetAction{}}, true
	}

	return nil, true
}
