package search

// State holds search state
type State struct {
	Text       string // raw text, updated per keystroke
	Debounced  string // trimmed text, updated once the quiet window elapses
	PendingGen uint64 // generation of the scheduled commit, 0 when none
}

// Scheduler runs the quiet window for search text
type Scheduler interface {
	Schedule(value string) uint64
	Cancel()
	Stop()
}

// Event types
type SearchTextChangedEvent struct {
	Text string
	Gen  uint64
}

type SearchCommittedEvent struct {
	Query string
}

type SearchClearedEvent struct{}
