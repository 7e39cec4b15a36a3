package viewmodels

import (
	"sort"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"stackshop/internal/ui/coordinator"
	"stackshop/internal/ui/input/types"
	"stackshop/internal/ui/state"
	"stackshop/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state            *state.AppState
	coordinator      *coordinator.Coordinator
	width            int
	height           int
	help             help.Model
	keys             help.KeyMap
	spinner          string
	pickerOptions    []string
	inputTransformer *InputTransformer
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, coord *coordinator.Coordinator, textInput *textinput.Model) *ViewModel {
	return &ViewModel{
		state:            appState,
		coordinator:      coord,
		inputTransformer: NewInputTransformer(textInput),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
}

// SetHelp sets the help model and the key bindings it shows
func (vm *ViewModel) SetHelp(helpModel help.Model, keys help.KeyMap) {
	vm.help = helpModel
	vm.keys = keys
}

// SetSpinner sets the current spinner frame
func (vm *ViewModel) SetSpinner(frame string) {
	vm.spinner = frame
}

// SetInputMode sets the current input mode
func (vm *ViewModel) SetInputMode(mode types.Mode) {
	vm.inputTransformer.SetMode(mode)
}

// SetPickerOptions sets the options of the open picker
func (vm *ViewModel) SetPickerOptions(options []string) {
	vm.pickerOptions = options
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	c := vm.coordinator

	loading := make([]string, 0, len(vm.state.InFlight))
	for kind := range vm.state.InFlight {
		loading = append(loading, kind)
	}
	sort.Strings(loading)

	return views.ViewState{
		Width:         vm.width,
		Height:        vm.height,
		InputMode:     vm.inputTransformer.GetInputModeString(),
		TextInput:     vm.inputTransformer.GetInputText(),
		SearchText:    c.Search.GetText(),
		SearchQuery:   c.Search.GetQuery(),
		SearchPending: c.Search.IsPending(),
		Category:      c.Filters.GetCategory(),
		SubCategory:   c.Filters.GetSubCategory(),
		HasFilters:    c.HasFilters(),
		Picker: views.PickerState{
			Title:   vm.inputTransformer.GetPickerTitle(),
			Options: vm.pickerOptions,
			Index:   vm.state.PickerIndex,
		},
		LoadState:       c.Query.GetLoadState(),
		Products:        c.Query.GetProducts(),
		ProductsMessage: c.Query.GetMessage(),
		SelectedIndex:   c.Navigation.GetCursor(),
		ViewportOffset:  c.Navigation.GetViewportOffset(),
		ViewportHeight:  c.Navigation.GetViewportHeight(),
		Detail: views.DetailState{
			SKU:      c.Gallery.GetSKU(),
			Loading:  c.Gallery.IsLoading(),
			Product:  c.Gallery.GetProduct(),
			Message:  c.Gallery.GetMessage(),
			Selected: c.Gallery.GetSelected(),
		},
		Busy:             vm.state.Busy(),
		Spinner:          vm.spinner,
		Loading:          loading,
		StatusMessage:    vm.state.StatusMessage,
		StatusIsError:    vm.state.StatusIsError,
		ShowHelp:         vm.state.ShowHelp,
		HelpScrollOffset: vm.state.HelpScrollOffset,
		HelpModel:        vm.help,
		Keys:             vm.keys,
	}
}
