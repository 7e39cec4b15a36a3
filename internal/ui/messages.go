package ui

import (
	"stackshop/internal/debounce"
)

// searchCommitMsg is a debounce commit delivered to the update loop
type searchCommitMsg debounce.Commit

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// sheetPagerMsg contains the result of a product sheet pager command
type sheetPagerMsg struct {
	sku string
	err error
}

// copyMsg contains the result of a clipboard copy
type copyMsg struct {
	what  string
	value string
	err   error
}

// clearStatusMsg clears the status bar if it still shows the message it was scheduled for
type clearStatusMsg struct {
	message string
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
