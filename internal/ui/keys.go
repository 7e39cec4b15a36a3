package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"stackshop/internal/ui/input/types"
)

// keyMap lists the bindings shown in the help line. Key handling itself lives in the
// input modes; these bindings only describe it.
type keyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return k.short
}

func (k keyMap) FullHelp() [][]key.Binding {
	return k.full
}

var (
	keyNavigate = key.NewBinding(key.WithKeys("up", "down", "j", "k"), key.WithHelp("↑/↓", "move"))
	keyOpen     = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details"))
	keySearch   = key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search"))
	keyCategory = key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "category"))
	keySubCat   = key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "subcategory"))
	keyBadge    = key.NewBinding(key.WithKeys("b", "B"), key.WithHelp("b/B", "filter by card"))
	keyClear    = key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear filters"))
	keyReload   = key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload"))
	keyHelp     = key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help"))
	keyQuit     = key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit"))

	keyBack   = key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back"))
	keyImages = key.NewBinding(key.WithKeys("left", "right", "h", "l"), key.WithHelp("←/→", "image"))
	keyCopy   = key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y/Y", "copy url/sku"))
	keySheet  = key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "sheet"))

	keyDone   = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply"))
	keyCancel = key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel"))
)

// keysForMode returns the help bindings for an input mode
func keysForMode(mode types.Mode, hasFilters bool) help.KeyMap {
	switch mode {
	case types.ModeSearch:
		return keyMap{short: []key.Binding{keyDone, keyCancel}}
	case types.ModeCategory, types.ModeSubCategory:
		return keyMap{short: []key.Binding{keyNavigate, keyDone, keyCancel}}
	case types.ModeDetail:
		short := []key.Binding{keyBack, keyImages, keyCopy, keySheet, keyHelp, keyQuit}
		return keyMap{short: short, full: [][]key.Binding{short}}
	}

	clearFilters := keyClear
	clearFilters.SetEnabled(hasFilters)
	short := []key.Binding{keyNavigate, keyOpen, keySearch, keyCategory, keySubCat, keyBadge, clearFilters, keyReload, keyHelp, keyQuit}
	return keyMap{short: short, full: [][]key.Binding{short}}
}
