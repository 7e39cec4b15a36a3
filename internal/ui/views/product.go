package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"stackshop/internal/domain"
)

// ProductRenderer handles rendering of product cards on the list view
type ProductRenderer struct {
	styles *Styles
}

// NewProductRenderer creates a new product renderer
func NewProductRenderer(styles *Styles) *ProductRenderer {
	return &ProductRenderer{
		styles: styles,
	}
}

// RenderCard renders one product card. The card always takes CardLines lines so the list
// can page by whole cards.
func (r *ProductRenderer) RenderCard(product *domain.Product, isSelected bool, searchQuery string, width int) string {
	if product == nil {
		return ""
	}

	cursor := "  "
	if isSelected {
		cursor = r.styles.Highlight.Render("▌ ")
	}

	// First image, when the product has one
	image := r.styles.Dim.Render("(no image)")
	if url := product.PrimaryImage(); url != "" {
		image = r.styles.Image.Render(truncate(url, width-4))
	}

	// Title with search highlighting
	titleStyle := r.styles.CardTitle
	if isSelected {
		titleStyle = titleStyle.Inherit(r.styles.SelectionBg)
	}
	title := truncate(product.Title, width-4)
	if searchQuery != "" {
		title = r.highlightMatch(title, searchQuery, titleStyle.Foreground(lipgloss.Color("226")), titleStyle)
	} else {
		title = titleStyle.Render(title)
	}

	hint := ""
	if isSelected {
		hint = r.styles.Hint.Render("View Details ↵") + r.styles.Dim.Render("  b category • B subcategory")
	} else {
		hint = r.styles.Dim.Render("View Details")
	}

	lines := []string{
		cursor + image,
		cursor + title,
		cursor + RenderBadges(product.CategoryName, product.SubCategoryName),
		cursor + hint,
	}
	return strings.Join(lines, "\n")
}

// CardLines is the number of lines a rendered card takes, not counting the gap after it
const CardLines = 4

// RenderBadges renders the category and subcategory badges
func RenderBadges(category, subCategory string) string {
	var parts []string
	if category != "" {
		parts = append(parts, BadgeStyle(category, false).Render(" "+category+" "))
	}
	if subCategory != "" {
		parts = append(parts, BadgeStyle(category, true).Render("["+subCategory+"]"))
	}
	return strings.Join(parts, " ")
}

// highlightMatch highlights matching text within a string
func (r *ProductRenderer) highlightMatch(text, query string, highlightStyle, normalStyle lipgloss.Style) string {
	lowerText := strings.ToLower(text)
	lowerQuery := strings.ToLower(strings.TrimSpace(query))

	index := strings.Index(lowerText, lowerQuery)
	if index == -1 || lowerQuery == "" || len(lowerText) != len(text) {
		return normalStyle.Render(text)
	}

	// Split the text into parts
	before := text[:index]
	match := text[index : index+len(lowerQuery)]
	after := text[index+len(lowerQuery):]

	// Render with appropriate styles
	var result []string
	if before != "" {
		result = append(result, normalStyle.Render(before))
	}
	result = append(result, highlightStyle.Render(match))
	if after != "" {
		result = append(result, normalStyle.Render(after))
	}

	return strings.Join(result, "")
}

// truncate shortens s to width runes, marking the cut with an ellipsis
func truncate(s string, width int) string {
	if width <= 3 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}
