package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data interface{} // Optional data for the mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Filter actions
type SelectCategoryAction struct {
	Category string // "" for all categories
}

func (a SelectCategoryAction) Type() string { return "select_category" }

type SelectSubCategoryAction struct {
	SubCategory string // "" for all subcategories
}

func (a SelectSubCategoryAction) Type() string { return "select_subcategory" }

type UpdatePickerIndexAction struct {
	Index int
}

func (a UpdatePickerIndexAction) Type() string { return "update_picker_index" }

type ClearFiltersAction struct{}

func (a ClearFiltersAction) Type() string { return "clear_filters" }

// BadgeAction applies the filters of the card under the cursor
type BadgeAction struct {
	SubCategory bool // false for the category badge
}

func (a BadgeAction) Type() string { return "badge" }

// Product actions
type OpenDetailAction struct {
	SKU string
}

func (a OpenDetailAction) Type() string { return "open_detail" }

type CloseDetailAction struct{}

func (a CloseDetailAction) Type() string { return "close_detail" }

type SelectImageAction struct {
	Index int // absolute index, used when Delta is 0
	Delta int // -1 / +1 to step through images
}

func (a SelectImageAction) Type() string { return "select_image" }

type CopyAction struct {
	What string // "image" or "sku"
}

func (a CopyAction) Type() string { return "copy" }

type ShowSheetAction struct{}

func (a ShowSheetAction) Type() string { return "show_sheet" }

// Command actions
type ReloadAction struct{}

func (a ReloadAction) Type() string { return "reload" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
