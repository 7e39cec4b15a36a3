package state

// Request kinds tracked for the activity indicator
const (
	RequestCategories    = "categories"
	RequestSubCategories = "subcategories"
	RequestProducts      = "products"
	RequestProduct       = "product"
)

// AppState contains the UI state that is not owned by the coordinator services
type AppState struct {
	// Requests in flight by kind
	InFlight map[string]int

	// UI state
	StatusMessage    string // status bar message
	StatusIsError    bool
	PickerIndex      int // highlighted option in the category pickers
	ShowHelp         bool
	HelpScrollOffset int // scroll offset for help popup
	InPagerMode      bool
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		InFlight: make(map[string]int),
	}
}

// BeginRequest records a request of kind going out
func (s *AppState) BeginRequest(kind string) {
	s.InFlight[kind]++
}

// EndRequest records a request of kind coming back
func (s *AppState) EndRequest(kind string) {
	if s.InFlight[kind] <= 1 {
		delete(s.InFlight, kind)
		return
	}
	s.InFlight[kind]--
}

// Busy reports whether any request is in flight
func (s *AppState) Busy() bool {
	return len(s.InFlight) > 0
}

// SetStatus shows a message in the status bar
func (s *AppState) SetStatus(message string, isError bool) {
	s.StatusMessage = message
	s.StatusIsError = isError
}

// ClearStatus removes the status bar message
func (s *AppState) ClearStatus() {
	s.StatusMessage = ""
	s.StatusIsError = false
}
