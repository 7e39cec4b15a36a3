//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestApplicationExit(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp(), "Failed to start app")
	require.True(t, tf.Ready(), "Product list should load")
	require.True(t, tf.SeePlain("StackShop"), "Should show StackShop title")

	done := make(chan error, 1)
	go func() {
		done <- tf.cmd.Wait()
	}()

	t.Logf("Sending 'q' to quit application...")
	tf.Quit()

	select {
	case exitErr := <-done:
		require.NoError(t, exitErr, "Quit should exit cleanly")
	case <-time.After(1500 * time.Millisecond):
		tf.DumpTailOnFail(t, 4096)
		tf.SendCtrlC()
		t.Fatal("Application did not exit after 'q'")
	}
}

func TestExitWhileSearchIsPending(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp(), "Failed to start app")
	require.True(t, tf.Ready(), "Product list should load")

	require.NoError(t, tf.Search("lamp"))
	tf.Escape()

	done := make(chan error, 1)
	go func() {
		done <- tf.cmd.Wait()
	}()
	time.Sleep(100 * time.Millisecond)
	tf.Quit()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		tf.SendCtrlC()
		t.Fatal("app did not exit with a search pending")
	}
	require.Empty(t, tf.api.Searches(), "Pending search should be dropped on exit")
}
