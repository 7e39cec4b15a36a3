package debounce

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const window = 2000 * time.Millisecond

func expectCommit(t *testing.T, d *Debouncer) Commit {
	t.Helper()
	select {
	case c := <-d.Commits():
		return c
	case <-time.After(time.Second):
		t.Fatal("expected a commit")
		return Commit{}
	}
}

func expectNoCommit(t *testing.T, d *Debouncer) {
	t.Helper()
	select {
	case c := <-d.Commits():
		t.Fatalf("unexpected commit %+v", c)
	case <-time.After(30 * time.Millisecond):
	}
}

func TestOnlyLastValueCommitsAfterQuietWindow(t *testing.T) {
	mock := clock.NewMock()
	d := New(mock, window)
	defer d.Stop()

	d.Schedule("l")
	mock.Add(500 * time.Millisecond)
	d.Schedule("la")
	mock.Add(1500 * time.Millisecond)
	gen := d.Schedule("lamp")

	mock.Add(window - time.Millisecond)
	expectNoCommit(t, d)

	mock.Add(time.Millisecond)
	c := expectCommit(t, d)
	assert.Equal(t, "lamp", c.Value)
	assert.Equal(t, gen, c.Gen)
	assert.False(t, d.Pending())

	mock.Add(10 * window)
	expectNoCommit(t, d)
}

func TestCancelDropsPendingCommit(t *testing.T) {
	mock := clock.NewMock()
	d := New(mock, window)
	defer d.Stop()

	gen := d.Schedule("desk")
	require.True(t, d.Pending())

	d.Cancel()
	assert.False(t, d.Pending())
	assert.NotEqual(t, gen, d.Generation())

	mock.Add(window)
	expectNoCommit(t, d)
}

func TestStopIsTeardown(t *testing.T) {
	mock := clock.NewMock()
	d := New(mock, window)

	d.Schedule("chair")
	d.Stop()
	d.Stop()

	select {
	case <-d.Done():
	default:
		t.Fatal("done should be closed")
	}

	mock.Add(window)
	expectNoCommit(t, d)

	gen := d.Generation()
	assert.Equal(t, gen, d.Schedule("ignored"))
	assert.False(t, d.Pending())
}

func TestEachWindowCommitsOnce(t *testing.T) {
	mock := clock.NewMock()
	d := New(mock, window)
	defer d.Stop()

	d.Schedule("a")
	mock.Add(window)
	assert.Equal(t, "a", expectCommit(t, d).Value)

	d.Schedule("b")
	mock.Add(window)
	assert.Equal(t, "b", expectCommit(t, d).Value)

	expectNoCommit(t, d)
}
