package viewmodels

import (
	"github.com/charmbracelet/bubbles/textinput"

	"stackshop/internal/ui/input/types"
)

// InputTransformer handles input mode transformations
type InputTransformer struct {
	mode      types.Mode
	textInput *textinput.Model
}

// NewInputTransformer creates a new input transformer
func NewInputTransformer(textInput *textinput.Model) *InputTransformer {
	return &InputTransformer{
		mode:      types.ModeNormal,
		textInput: textInput,
	}
}

// SetMode sets the current input mode
func (it *InputTransformer) SetMode(mode types.Mode) {
	it.mode = mode
}

// GetInputText returns the current text input string for the view
func (it *InputTransformer) GetInputText() string {
	if it.mode != types.ModeSearch || it.textInput == nil {
		return ""
	}
	return "Search: " + it.textInput.View()
}

// GetInputModeString returns the string representation of the input mode
func (it *InputTransformer) GetInputModeString() string {
	switch it.mode {
	case types.ModeSearch:
		return "search"
	case types.ModeCategory:
		return "category"
	case types.ModeSubCategory:
		return "subcategory"
	case types.ModeDetail:
		return "detail"
	default:
		return ""
	}
}

// GetPickerTitle returns the picker heading for picker modes
func (it *InputTransformer) GetPickerTitle() string {
	switch it.mode {
	case types.ModeCategory:
		return "Category"
	case types.ModeSubCategory:
		return "Subcategory"
	default:
		return ""
	}
}
