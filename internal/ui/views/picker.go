package views

import (
	"fmt"
	"strings"
)

// visible picker rows
const pickerRows = 8

// PickerState is a category or subcategory choice in progress
type PickerState struct {
	Title   string
	Options []string
	Index   int
}

// renderPicker renders the picker options around the highlighted one
func (r *Renderer) renderPicker(picker PickerState) string {
	if len(picker.Options) == 0 {
		return ""
	}

	start := 0
	if picker.Index >= pickerRows {
		start = picker.Index - pickerRows + 1
	}
	end := start + pickerRows
	if end > len(picker.Options) {
		end = len(picker.Options)
	}

	var lines []string
	lines = append(lines, r.styles.PickerTitle.Render(picker.Title))
	if start > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("  ↑ %d more", start)))
	}
	for i := start; i < end; i++ {
		if i == picker.Index {
			lines = append(lines, r.styles.Highlight.Render("> "+picker.Options[i]))
		} else {
			lines = append(lines, "  "+picker.Options[i])
		}
	}
	if end < len(picker.Options) {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("  ↓ %d more", len(picker.Options)-end)))
	}
	lines = append(lines, r.styles.Dim.Render("↑/↓ or j/k to change • Enter to accept • Esc to cancel"))
	return strings.Join(lines, "\n")
}
