//go:build e2e && unix

package main

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"syscall"
	"testing"
	"time"
	"unsafe"

	"github.com/creack/pty"
)

const ringSize = 1 << 20      // 1 MiB of scrollback
var binPath = "stackshop_e2e" // set by TestMain

// Key constants for better readability
const (
	KeyEnter    = "\r"
	KeyEsc      = "\x1b"
	KeyCtrlC    = "\x03"
	KeyDown     = "j"
	KeyQuit     = "q"
	KeySearch   = "/"
	KeyCategory = "c"
	KeyClear    = "x"
	KeyHelp     = "?"
)

// Terminal queries the app makes at start-up. Left unanswered, the background colour
// query alone stalls start-up for several seconds in a silent pty.
var (
	queryBackground = []byte("\x1b]11;?")
	queryCursor     = []byte("\x1b[6n")
	replyBackground = []byte("\x1b]11;rgb:0000/0000/0000\x1b\\")
	replyCursor     = []byte("\x1b[1;1R")
)

// ANSI escape sequence regex for normalization - covers CSI, OSC, charset, keypad modes
var ansiRe = regexp.MustCompile(
	`(?:\x1b\[[0-9;?]*[ -/]*[@-~])|` + // CSI sequences
		`(?:\x1b\][^\x07\x1b]*(?:\x07|\x1b\\))|` + // OSC sequences
		`(?:\x1b[\(\)][A-Za-z])|` + // charset sequences
		`(?:\x1b=|\x1b>)|` + // keypad mode sequences
		`\r`, // carriage returns
)

// TUITestFramework drives the storefront binary in a pseudo terminal
type TUITestFramework struct {
	t         *testing.T
	pty       *os.File
	tty       *os.File
	cmd       *exec.Cmd
	workspace string
	api       *FakeAPI

	// Ring buffer for continuous output capture
	mu      sync.Mutex
	buf     []byte
	head    int
	full    bool
	written int
}

// NewTUITest creates a new TUI test framework instance
func NewTUITest(t *testing.T) *TUITestFramework {
	return &TUITestFramework{
		t:   t,
		buf: make([]byte, ringSize),
	}
}

// StartApp launches stackshop against a fresh fake API in a PTY. The config file and
// log are kept in a throwaway workspace.
func (tf *TUITestFramework) StartApp(args ...string) error {
	if tf.api == nil {
		tf.api = NewFakeAPI(tf.t)
	}
	workspace, err := os.MkdirTemp("", "stackshop-e2e-*")
	if err != nil {
		return fmt.Errorf("failed to create workspace: %w", err)
	}
	tf.workspace = workspace

	cmdArgs := append([]string{
		"--api", tf.api.URL,
		"--config", filepath.Join(workspace, "stackshop.toml"),
	}, args...)
	tf.cmd = exec.Command(binPath, cmdArgs...)
	tf.cmd.Dir = workspace
	tf.cmd.Env = append(os.Environ(),
		"TERM=xterm-256color",
		"LC_ALL=C.UTF-8",
		"LANG=C.UTF-8",
		"HOME="+workspace, // isolate $HOME
	)

	ptyFile, tty, err := pty.Open()
	if err != nil {
		return fmt.Errorf("failed to open pty: %w", err)
	}
	tf.pty = ptyFile
	tf.tty = tty
	tf.cmd.Stdout = tty
	tf.cmd.Stdin = tty
	tf.cmd.Stderr = tty

	// Set terminal size
	ws := struct {
		Row uint16
		Col uint16
		X   uint16
		Y   uint16
	}{40, 120, 0, 0}
	syscall.Syscall(syscall.SYS_IOCTL, ptyFile.Fd(), uintptr(syscall.TIOCSWINSZ), uintptr(unsafe.Pointer(&ws)))

	if err := tf.cmd.Start(); err != nil {
		ptyFile.Close()
		tty.Close()
		return fmt.Errorf("failed to start command: %w", err)
	}

	tf.startReader()
	return nil
}

// startReader copies pty output into the ring buffer and answers terminal queries
func (tf *TUITestFramework) startReader() {
	ptyFile := tf.pty
	go func() {
		buf := make([]byte, 8192)
		for {
			n, err := ptyFile.Read(buf)
			if n > 0 {
				chunk := buf[:n]
				if bytes.Contains(chunk, queryBackground) {
					_, _ = ptyFile.Write(replyBackground)
				}
				if bytes.Contains(chunk, queryCursor) {
					_, _ = ptyFile.Write(replyCursor)
				}

				tf.mu.Lock()
				for _, b := range chunk {
					tf.buf[tf.head] = b
					tf.head = (tf.head + 1) % ringSize
					if tf.head == 0 {
						tf.full = true
					}
				}
				tf.written += n
				tf.mu.Unlock()
			}
			if err != nil {
				return
			}
		}
	}()
}

// SendKeys sends keystrokes to the application
func (tf *TUITestFramework) SendKeys(keys string) error {
	tf.t.Helper()
	_, err := tf.pty.Write([]byte(keys))
	return err
}

// SendCtrlC sends Ctrl+C to terminate the application
func (tf *TUITestFramework) SendCtrlC() error {
	tf.t.Helper()
	return tf.SendKeys(KeyCtrlC)
}

// Quit sends 'q'
func (tf *TUITestFramework) Quit() error {
	tf.t.Helper()
	return tf.SendKeys(KeyQuit)
}

// Search opens the search field and types text. The keys go out in two writes so the
// terminal reader does not fold them into a single rune sequence.
func (tf *TUITestFramework) Search(text string) error {
	tf.t.Helper()
	mark := tf.Mark()
	if err := tf.SendKeys(KeySearch); err != nil {
		return err
	}
	if !tf.SeePlainSince(mark, "Search:") {
		return fmt.Errorf("search field did not open")
	}
	return tf.SendKeys(text)
}

// Escape sends the escape key
func (tf *TUITestFramework) Escape() error {
	tf.t.Helper()
	return tf.SendKeys(KeyEsc)
}

// Enter sends enter key
func (tf *TUITestFramework) Enter() error {
	tf.t.Helper()
	return tf.SendKeys(KeyEnter)
}

// Down sends down navigation key
func (tf *TUITestFramework) Down() error {
	tf.t.Helper()
	return tf.SendKeys(KeyDown)
}

// Ready waits for the first product listing to render
func (tf *TUITestFramework) Ready() bool {
	tf.t.Helper()
	return tf.waitPlain(func(s string) bool { return strings.Contains(s, "Showing") }, 10*time.Second)
}

// SeePlain waits for text to appear anywhere in the normalized output
func (tf *TUITestFramework) SeePlain(text string) bool {
	tf.t.Helper()
	return tf.waitPlain(func(s string) bool { return strings.Contains(s, text) }, 3*time.Second)
}

// SeePlainSince waits for text to appear in the output written after mark
func (tf *TUITestFramework) SeePlainSince(mark int, text string) bool {
	tf.t.Helper()
	return tf.WaitFor(func() bool {
		return strings.Contains(tf.SnapshotSince(mark), text)
	}, 3*time.Second)
}

func (tf *TUITestFramework) waitPlain(pred func(string) bool, timeout time.Duration) bool {
	return tf.WaitFor(func() bool { return pred(tf.SnapshotSince(0)) }, timeout)
}

// WaitFor polls pred until it holds or timeout passes
func (tf *TUITestFramework) WaitFor(pred func() bool, timeout time.Duration) bool {
	tf.t.Helper()
	deadline := time.Now().Add(timeout)
	for {
		if pred() {
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(25 * time.Millisecond) // simple, reliable polling; tests only
	}
}

// Mark returns a position in the output stream for SnapshotSince
func (tf *TUITestFramework) Mark() int {
	tf.mu.Lock()
	defer tf.mu.Unlock()
	return tf.written
}

// SnapshotSince returns the normalized output written after mark
func (tf *TUITestFramework) SnapshotSince(mark int) string {
	tf.mu.Lock()
	s := tf.snapshot()
	n := tf.written - mark
	tf.mu.Unlock()
	if n < len(s) {
		s = s[len(s)-n:]
	}
	return ansiRe.ReplaceAllString(s, "")
}

// snapshot returns the current contents of the ring buffer
// NOTE: This assumes the mutex is already locked by the caller
func (tf *TUITestFramework) snapshot() string {
	if !tf.full {
		return string(tf.buf[:tf.head])
	}
	out := make([]byte, ringSize)
	copy(out, tf.buf[tf.head:])
	copy(out[ringSize-tf.head:], tf.buf[:tf.head])
	return string(out)
}

// DumpTailOnFail logs the last n bytes of normalized output
func (tf *TUITestFramework) DumpTailOnFail(t *testing.T, n int) {
	s := tf.SnapshotSince(0)
	if len(s) > n {
		s = s[len(s)-n:]
	}
	t.Logf("--- output tail ---\n%s", s)
}

// Cleanup closes the PTY and terminates the application
func (tf *TUITestFramework) Cleanup() {
	// Close PTY first to deliver SIGHUP to child process
	if tf.pty != nil {
		_ = tf.pty.Close()
		tf.pty = nil
	}
	if tf.tty != nil {
		_ = tf.tty.Close()
		tf.tty = nil
	}
	if tf.cmd != nil && tf.cmd.Process != nil {
		_ = tf.cmd.Process.Kill()
		_, _ = tf.cmd.Process.Wait()
		tf.cmd = nil
	}
	if tf.workspace != "" {
		_ = os.RemoveAll(tf.workspace)
		tf.workspace = ""
	}
}
