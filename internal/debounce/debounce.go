package debounce

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// Commit is delivered once a scheduled value has survived the whole window
type Commit struct {
	Gen   uint64
	Value string
}

// Debouncer is a trailing-edge debouncer. Every Schedule stops the pending timer and starts a
// new window; only the value of the last Schedule is committed. The timer callback never
// touches caller state, it only posts a Commit tagged with the generation it was scheduled
// under, and the receiver decides whether that generation is still current.
type Debouncer struct {
	clock  clock.Clock
	window time.Duration

	mu      sync.Mutex
	timer   *clock.Timer
	gen     uint64
	stopped bool

	commits chan Commit
	done    chan struct{}
}

// New creates a debouncer with the given quiet window. A nil clock uses the wall clock.
func New(clk clock.Clock, window time.Duration) *Debouncer {
	if clk == nil {
		clk = clock.New()
	}
	return &Debouncer{
		clock:   clk,
		window:  window,
		commits: make(chan Commit, 1),
		done:    make(chan struct{}),
	}
}

// Schedule (re)starts the window for value and returns the generation it was scheduled under.
// After Stop it is a no-op and returns the last generation.
func (d *Debouncer) Schedule(value string) uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return d.gen
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.timer = d.clock.AfterFunc(d.window, func() {
		d.fire(Commit{Gen: gen, Value: value})
	})
	return gen
}

// Cancel drops the pending commit, if any. A commit that already fired but was not yet
// received is made stale by bumping the generation.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
}

// Generation returns the generation of the most recent Schedule or Cancel
func (d *Debouncer) Generation() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.gen
}

// Pending reports whether a window is currently running
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Commits delivers values whose window elapsed
func (d *Debouncer) Commits() <-chan Commit {
	return d.commits
}

// Done is closed by Stop
func (d *Debouncer) Done() <-chan struct{} {
	return d.done
}

// Stop cancels the pending commit and releases anyone waiting on Commits. Safe to call twice.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
	close(d.done)
}

func (d *Debouncer) fire(c Commit) {
	d.mu.Lock()
	if d.stopped || c.Gen != d.gen {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.mu.Unlock()

	select {
	case d.commits <- c:
	case <-d.done:
	}
}
