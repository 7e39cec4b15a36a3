package search

import (
	"strings"

	log "github.com/sirupsen/logrus"

	"stackshop/internal/ui/services/events"
)

// Service handles search text and its debounced commit
type Service struct {
	state     *State
	bus       events.EventBus
	scheduler Scheduler
}

// NewService creates a new search service
func NewService(bus events.EventBus, scheduler Scheduler) *Service {
	return &Service{
		state:     &State{},
		bus:       bus,
		scheduler: scheduler,
	}
}

// SetText records the raw text and restarts the quiet window. It never commits directly.
func (s *Service) SetText(text string) {
	s.state.Text = text
	s.state.PendingGen = s.scheduler.Schedule(text)

	s.bus.Publish(SearchTextChangedEvent{Text: text, Gen: s.state.PendingGen})
}

// Commit applies a commit delivered by the scheduler. Commits from a superseded or
// cancelled window are ignored. Returns true when the commit was applied.
func (s *Service) Commit(gen uint64, value string) bool {
	if s.state.PendingGen == 0 || gen != s.state.PendingGen {
		log.Debugf("Dropping stale search commit %d (pending %d)", gen, s.state.PendingGen)
		return false
	}

	s.state.PendingGen = 0
	s.state.Debounced = strings.TrimSpace(value)

	s.bus.Publish(SearchCommittedEvent{Query: s.state.Debounced})
	return true
}

// Clear empties both texts and cancels any pending commit
func (s *Service) Clear() {
	s.scheduler.Cancel()
	s.state.Text = ""
	s.state.Debounced = ""
	s.state.PendingGen = 0

	s.bus.Publish(SearchClearedEvent{})
}

// Close stops the scheduler for good
func (s *Service) Close() {
	s.scheduler.Stop()
	s.state.PendingGen = 0
}

// GetText returns the raw search text
func (s *Service) GetText() string {
	return s.state.Text
}

// GetQuery returns the debounced search text
func (s *Service) GetQuery() string {
	return s.state.Debounced
}

// IsPending reports whether a commit is scheduled
func (s *Service) IsPending() bool {
	return s.state.PendingGen != 0
}
