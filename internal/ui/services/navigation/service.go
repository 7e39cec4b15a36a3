package navigation

import (
	"stackshop/internal/ui/services/events"
)

// Lines one product card occupies in the list, separator included
const CardHeight = 5

// Lines taken by the header, filter bar, result count and help line
const reservedLines = 10

// Service handles the card cursor and the visible window of cards
type Service struct {
	state   *State
	bus     events.EventBus
	queryFn func() int // Function to get max index from query service
}

// NewService creates a new navigation service
func NewService(bus events.EventBus) *Service {
	return &Service{
		state: &State{
			ViewportHeight: 4, // Default, will be updated
		},
		bus: bus,
	}
}

// SetQueryFunction sets the function to query max index
func (s *Service) SetQueryFunction(fn func() int) {
	s.queryFn = fn
}

// GetCursor returns current cursor position
func (s *Service) GetCursor() int {
	return s.state.Cursor
}

// GetViewportOffset returns current viewport offset
func (s *Service) GetViewportOffset() int {
	return s.state.ViewportOffset
}

// GetViewportHeight returns how many cards fit on screen
func (s *Service) GetViewportHeight() int {
	return s.state.ViewportHeight
}

// SetViewportHeight updates the card window from the terminal height in lines
func (s *Service) SetViewportHeight(height int) {
	cards := (height - reservedLines) / CardHeight
	if cards < 1 {
		cards = 1
	}
	s.state.ViewportHeight = cards
	s.ensureVisible()
}

// Navigate handles navigation in a direction
func (s *Service) Navigate(direction Direction) {
	oldCursor := s.state.Cursor
	s.refreshMax()

	switch direction {
	case DirectionUp:
		if s.state.Cursor > 0 {
			s.state.Cursor--
		}
	case DirectionDown:
		if s.state.Cursor < s.state.MaxIndex {
			s.state.Cursor++
		}
	case DirectionPageUp:
		s.state.Cursor = s.clampIndex(s.state.Cursor - s.state.ViewportHeight)
	case DirectionPageDown:
		s.state.Cursor = s.clampIndex(s.state.Cursor + s.state.ViewportHeight)
	case DirectionHome:
		s.state.Cursor = 0
	case DirectionEnd:
		s.state.Cursor = s.state.MaxIndex
	}
	s.ensureVisible()

	if oldCursor != s.state.Cursor {
		s.bus.Publish(CursorMovedEvent{
			OldIndex: oldCursor,
			NewIndex: s.state.Cursor,
		})
	}
}

// MoveToIndex moves cursor to specific index
func (s *Service) MoveToIndex(index int) {
	s.refreshMax()

	oldCursor := s.state.Cursor
	s.state.Cursor = s.clampIndex(index)
	s.ensureVisible()

	if oldCursor != s.state.Cursor {
		s.bus.Publish(CursorMovedEvent{
			OldIndex: oldCursor,
			NewIndex: s.state.Cursor,
		})
	}
}

// Reset puts the cursor back on the first card, used when the list is replaced
func (s *Service) Reset() {
	s.state.Cursor = 0
	s.state.ViewportOffset = 0
	s.refreshMax()
}

// Helper methods
func (s *Service) refreshMax() {
	if s.queryFn != nil {
		s.state.MaxIndex = s.queryFn()
	}
}

func (s *Service) clampIndex(index int) int {
	if index < 0 {
		return 0
	}
	if index > s.state.MaxIndex {
		return s.state.MaxIndex
	}
	return index
}

func (s *Service) ensureVisible() {
	if s.state.Cursor < s.state.ViewportOffset {
		s.state.ViewportOffset = s.state.Cursor
		s.bus.Publish(ViewportChangedEvent{
			Offset: s.state.ViewportOffset,
			Height: s.state.ViewportHeight,
		})
	} else if s.state.Cursor >= s.state.ViewportOffset+s.state.ViewportHeight {
		s.state.ViewportOffset = s.state.Cursor - s.state.ViewportHeight + 1
		s.bus.Publish(ViewportChangedEvent{
			Offset: s.state.ViewportOffset,
			Height: s.state.ViewportHeight,
		})
	}
}
