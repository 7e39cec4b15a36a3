package modes

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"stackshop/internal/ui/input/types"
)

// NormalMode handles keys on the product list
type NormalMode struct {
	lastKeyWasG bool
	lastGTime   time.Time
}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil // No special actions on enter
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil // No special actions on exit
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyUp:
		return navigate("up"), true

	case tea.KeyDown:
		return navigate("down"), true

	case tea.KeyPgUp:
		return navigate("pageup"), true

	case tea.KeyPgDown:
		return navigate("pagedown"), true

	case tea.KeyHome:
		return navigate("home"), true

	case tea.KeyEnd:
		return navigate("end"), true

	case tea.KeyEnter:
		// Enter opens the product under the cursor
		if sku := ctx.CurrentProductSKU(); sku != "" {
			return []types.Action{
				types.OpenDetailAction{SKU: sku},
				types.ChangeModeAction{Mode: types.ModeDetail},
			}, true
		}
		return nil, false
	}

	// Handle string keys
	switch msg.String() {
	case "j":
		return navigate("down"), true

	case "k":
		return navigate("up"), true

	case "/":
		// Focus the search field, keeping the current text
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch, Data: ctx.SearchText()}}, true

	case "C", "c":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeCategory}}, true

	case "S", "s":
		// Subcategories are offered only once the category has some
		if ctx.CanPickSubCategory() {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeSubCategory}}, true
		}
		return nil, true

	case "x", "X":
		if ctx.HasFilters() {
			return []types.Action{types.ClearFiltersAction{}}, true
		}
		return nil, true

	case "b":
		if ctx.CurrentProductSKU() != "" {
			return []types.Action{types.BadgeAction{SubCategory: false}}, true
		}
		return nil, true

	case "B":
		if ctx.CurrentProductSKU() != "" {
			return []types.Action{types.BadgeAction{SubCategory: true}}, true
		}
		return nil, true

	case "r":
		return []types.Action{types.ReloadAction{}}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "esc":
		return nil, true // Consume the key even if no action

	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true

	case "g":
		if m.lastKeyWasG && time.Since(m.lastGTime) < 500*time.Millisecond {
			// gg - go to top (within timeout)
			m.lastKeyWasG = false
			return navigate("home"), true
		}
		// First g, wait for next key
		m.lastKeyWasG = true
		m.lastGTime = time.Now()
		return nil, true

	case "G":
		m.lastKeyWasG = false
		return navigate("end"), true

	default:
		// Any other key cancels the 'g' prefix
		m.lastKeyWasG = false
	}

	return nil, false
}

func navigate(direction string) []types.Action {
	return []types.Action{types.NavigateAction{Direction: direction}}
}
