package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	Filter        lipgloss.Style
	InfoBox       lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Scroll        lipgloss.Style
	Highlight     lipgloss.Style
	SelectionBg   lipgloss.Style
	StatusError   lipgloss.Style
	StatusLoading lipgloss.Style
	StatusSuccess lipgloss.Style
	CardTitle     lipgloss.Style
	Image         lipgloss.Style
	Hint          lipgloss.Style
	Section       lipgloss.Style
	Thumbnail     lipgloss.Style
	ThumbnailSel  lipgloss.Style
	PickerTitle   lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Filter: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		InfoBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1).
			BorderForeground(lipgloss.Color("241")),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2).
			MaxHeight(100), // Will be dynamically adjusted
		Scroll:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		SelectionBg:   lipgloss.NewStyle().Background(lipgloss.Color("238")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		CardTitle:     lipgloss.NewStyle().Bold(true),
		Image:         lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Underline(true),
		Hint:          lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Section: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")),
		Thumbnail:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		ThumbnailSel: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		PickerTitle:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
	}
}

// BadgeStyle returns the badge style for a category name. Names hash onto a fixed palette so
// the same category keeps its colour across cards.
func BadgeStyle(name string, sub bool) lipgloss.Style {
	palette := []string{"63", "29", "130", "125", "31", "94"}
	sum := 0
	for _, r := range name {
		sum += int(r)
	}
	color := palette[sum%len(palette)]
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color(color))
	if sub {
		style = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	}
	return style
}
