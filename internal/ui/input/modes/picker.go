package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"stackshop/internal/ui/input/types"
)

const (
	AllCategories    = "All Categories"
	AllSubCategories = "All Subcategories"
)

// PickerMode selects a category or a subcategory from a list whose first entry means "all".
// Moving the highlight changes nothing; the choice is applied on enter.
type PickerMode struct {
	mode    types.Mode
	index   int
	options []string
}

func NewCategoryPickerMode() *PickerMode {
	return &PickerMode{mode: types.ModeCategory}
}

func NewSubCategoryPickerMode() *PickerMode {
	return &PickerMode{mode: types.ModeSubCategory}
}

func (m *PickerMode) Name() string {
	return m.mode.String()
}

func (m *PickerMode) Enter(ctx types.Context) []types.Action {
	var current string
	if m.mode == types.ModeCategory {
		m.options = append([]string{AllCategories}, ctx.Categories()...)
		current = ctx.SelectedCategory()
	} else {
		m.options = append([]string{AllSubCategories}, ctx.SubCategories()...)
		current = ctx.SelectedSubCategory()
	}

	// Start on the current selection
	m.index = 0
	for i, option := range m.options[1:] {
		if option == current {
			m.index = i + 1
			break
		}
	}

	return []types.Action{types.UpdatePickerIndexAction{Index: m.index}}
}

func (m *PickerMode) Exit(ctx types.Context) []types.Action {
	return nil // No special actions on exit
}

// HandleKey processes key messages for the picker
func (m *PickerMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true

	case "esc", "q":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true

	case "enter":
		return []types.Action{
			m.selection(),
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true

	case "up", "k":
		m.index--
		if m.index < 0 {
			m.index = len(m.options) - 1
		}
		return []types.Action{types.UpdatePickerIndexAction{Index: m.index}}, true

	case "down", "j":
		m.index++
		if m.index >= len(m.options) {
			m.index = 0
		}
		return []types.Action{types.UpdatePickerIndexAction{Index: m.index}}, true

	case "home", "g":
		m.index = 0
		return []types.Action{types.UpdatePickerIndexAction{Index: m.index}}, true

	case "end", "G":
		m.index = len(m.options) - 1
		return []types.Action{types.UpdatePickerIndexAction{Index: m.index}}, true
	}

	return nil, true
}

// Options returns the entries shown in the picker
func (m *PickerMode) Options() []string {
	return m.options
}

// GetCurrentIndex returns the highlighted option index
func (m *PickerMode) GetCurrentIndex() int {
	return m.index
}

func (m *PickerMode) selection() types.Action {
	value := ""
	if m.index > 0 && m.index < len(m.options) {
		value = m.options[m.index]
	}
	if m.mode == types.ModeCategory {
		return types.SelectCategoryAction{Category: value}
	}
	return types.SelectSubCategoryAction{SubCategory: value}
}
