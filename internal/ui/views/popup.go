package views

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay renders a popup centred on top of the greyed out main content
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)

	modalW := lipgloss.Width(styledPopup)
	modalH := lipgloss.Height(styledPopup)
	if width <= 0 {
		width = modalW
	}
	if height <= 0 {
		height = modalH
	}
	x := (width - modalW) / 2
	if x < 0 {
		x = 0
	}
	y := (height - modalH) / 2
	if y < 0 {
		y = 0
	}

	base := strings.Split(ansiRE.ReplaceAllString(mainContent, ""), "\n")
	for len(base) < height {
		base = append(base, "")
	}
	grey := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	popupLines := strings.Split(styledPopup, "\n")

	out := make([]string, len(base))
	for i, line := range base {
		row := i - y
		if row < 0 || row >= modalH {
			out[i] = grey.Render(line)
			continue
		}
		left, right := splitAround(line, x, modalW)
		out[i] = grey.Render(left) + popupLines[row] + grey.Render(right)
	}
	return strings.Join(out, "\n")
}

// ANSI escape sequence regex to strip styles/colors
var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// splitAround returns the plain text left of column x (padded) and right of x+w
func splitAround(plain string, x, w int) (string, string) {
	runes := []rune(plain)
	left := ""
	if x <= len(runes) {
		left = string(runes[:x])
	} else {
		left = string(runes) + strings.Repeat(" ", x-len(runes))
	}
	right := ""
	if x+w < len(runes) {
		right = string(runes[x+w:])
	}
	return left, right
}
