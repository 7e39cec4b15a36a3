package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"stackshop/internal/domain"
	"stackshop/internal/ui/services/query"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	// Search and filters
	InputMode     string // "", "search", "category", "subcategory" or "detail"
	TextInput     string // rendered search field while editing
	SearchText    string
	SearchQuery   string // committed search
	SearchPending bool
	Category      string
	SubCategory   string
	HasFilters    bool
	Picker        PickerState

	// Product list
	LoadState       query.LoadState
	Products        []domain.Product
	ProductsMessage string
	SelectedIndex   int
	ViewportOffset  int
	ViewportHeight  int // in cards

	Detail DetailState

	// Chrome
	Busy             bool
	Spinner          string
	Loading          []string // in-flight request kinds
	StatusMessage    string
	StatusIsError    bool
	ShowHelp         bool
	HelpScrollOffset int
	HelpModel        help.Model
	Keys             help.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles        *Styles
	productRender *ProductRenderer
	detailRender  *DetailRenderer
	popupRender   *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:        styles,
		productRender: NewProductRenderer(styles),
		detailRender:  NewDetailRenderer(styles),
		popupRender:   NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTitleLine(state))
	content.WriteString("\n\n")

	if state.InputMode == "detail" {
		content.WriteString(r.detailRender.Render(state.Detail, r.contentWidth(state)))
	} else {
		content.WriteString(r.renderSearchBar(state))
		content.WriteString("\n")
		content.WriteString(r.renderFilterBar(state))
		content.WriteString("\n")
		if state.InputMode == "category" || state.InputMode == "subcategory" {
			content.WriteString(r.renderPicker(state.Picker))
			content.WriteString("\n")
		}
		content.WriteString("\n")
		content.WriteString(r.renderProductList(state))
	}

	// Footer: status message and key help, pushed to the bottom
	footer := r.renderFooter(state)
	if footer != "" {
		currentLines := strings.Count(content.String(), "\n") + 1
		footerLines := strings.Count(footer, "\n") + 1

		// Account for container padding (1 top, 1 bottom from Padding(1, 2))
		availableLines := state.Height - 2
		if availableLines <= 0 {
			availableLines = 22 // Default terminal height minus padding
		}

		paddingNeeded := availableLines - currentLines - footerLines
		if paddingNeeded > 0 {
			content.WriteString(strings.Repeat("\n", paddingNeeded))
		}
		content.WriteString("\n")
		content.WriteString(footer)
	}

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	finalContent := mainStyle.Render(content.String())

	if state.ShowHelp {
		helpContent := r.renderHelpContent(state.Height, state.HelpScrollOffset)
		return r.popupRender.RenderPopupOverlay(finalContent, helpContent, state.Height, state.Width, r.styles.InfoBox)
	}

	return finalContent
}

// renderTitleLine renders the logo with right-aligned activity indicators
func (r *Renderer) renderTitleLine(state ViewState) string {
	logo := r.styles.Title.Render("StackShop")

	var indicators []string
	if state.Busy {
		label := "Loading"
		if len(state.Loading) > 0 {
			label = "Loading " + strings.Join(state.Loading, ", ")
		}
		indicators = append(indicators, fmt.Sprintf("%s %s", state.Spinner, label))
	}
	if state.SearchPending {
		indicators = append(indicators, "… typing")
	}
	if len(indicators) == 0 {
		return logo
	}

	rightContent := r.styles.Dim.Render(strings.Join(indicators, " | "))
	paddingWidth := r.contentWidth(state) - lipgloss.Width(logo) - lipgloss.Width(rightContent)
	if paddingWidth > 0 {
		return logo + strings.Repeat(" ", paddingWidth) + rightContent
	}
	return logo + "  " + rightContent
}

func (r *Renderer) renderSearchBar(state ViewState) string {
	if state.InputMode == "search" {
		return state.TextInput
	}
	if state.SearchText == "" {
		return r.styles.Dim.Render("Search: press / to search products")
	}
	return "Search: " + r.styles.Filter.Render(state.SearchText)
}

func (r *Renderer) renderFilterBar(state ViewState) string {
	category := "All Categories"
	if state.Category != "" {
		category = state.Category
	}
	parts := []string{"Category: " + r.styles.Filter.Render(category) + r.styles.Dim.Render(" (c)")}

	if state.Category != "" {
		subCategory := "All Subcategories"
		if state.SubCategory != "" {
			subCategory = state.SubCategory
		}
		parts = append(parts, "Subcategory: "+r.styles.Filter.Render(subCategory)+r.styles.Dim.Render(" (s)"))
	}

	if state.HasFilters {
		parts = append(parts, r.styles.Hint.Render("Clear Filters")+r.styles.Dim.Render(" (x)"))
	}
	return strings.Join(parts, "   ")
}

// renderProductList renders the list states and the visible window of cards
func (r *Renderer) renderProductList(state ViewState) string {
	switch state.LoadState {
	case query.LoadStateIdle:
		return ""
	case query.LoadStateLoading:
		return r.styles.StatusLoading.Render("Loading products...")
	case query.LoadStateFailed:
		return r.styles.StatusError.Render(state.ProductsMessage)
	}

	if len(state.Products) == 0 {
		return r.styles.Dim.Render(domain.MsgNoProducts)
	}

	noun := "products"
	if len(state.Products) == 1 {
		noun = "product"
	}
	lines := []string{r.styles.Status.Render(fmt.Sprintf("Showing %d %s", len(state.Products), noun))}

	height := state.ViewportHeight
	if height <= 0 {
		height = len(state.Products)
	}
	offset := state.ViewportOffset
	if offset < 0 || offset >= len(state.Products) {
		offset = 0
	}
	end := offset + height
	if end > len(state.Products) {
		end = len(state.Products)
	}

	if offset > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above ↑", offset)))
	}
	for i := offset; i < end; i++ {
		card := r.productRender.RenderCard(&state.Products[i], i == state.SelectedIndex, state.SearchQuery, r.contentWidth(state))
		lines = append(lines, card, "")
	}
	if end < len(state.Products) {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below ↓", len(state.Products)-end)))
	}

	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

func (r *Renderer) renderFooter(state ViewState) string {
	if state.ShowHelp {
		return ""
	}
	var lines []string
	if state.StatusMessage != "" {
		style := r.styles.StatusSuccess
		if state.StatusIsError {
			style = r.styles.StatusError
		}
		lines = append(lines, style.Render(state.StatusMessage))
	}
	if state.Keys != nil {
		lines = append(lines, state.HelpModel.View(state.Keys))
	} else {
		lines = append(lines, r.styles.Help.Render("Press ? for help"))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) contentWidth(state ViewState) int {
	width := state.Width
	if width <= 0 {
		width = 80 // Default terminal width
	}
	return width - 4 // Account for main container padding
}

// renderHelpContent renders the scrollable help popup
func (r *Renderer) renderHelpContent(height int, scrollOffset int) string {
	lines := strings.Split(HelpText(), "\n")
	totalLines := len(lines)

	// Calculate visible window (account for popup border and padding)
	visibleHeight := height - 6
	if visibleHeight < 5 {
		visibleHeight = 5
	}

	if totalLines > visibleHeight {
		maxOffset := totalLines - visibleHeight
		if scrollOffset > maxOffset {
			scrollOffset = maxOffset
		}
		if scrollOffset < 0 {
			scrollOffset = 0
		}

		endLine := scrollOffset + visibleHeight
		lines = lines[scrollOffset:endLine]

		if scrollOffset > 0 {
			lines[0] = r.styles.Scroll.Render("↑ (more above)")
		}
		if endLine < totalLines {
			lines[len(lines)-1] = r.styles.Scroll.Render("↓ (more below)")
		}
	}

	return strings.Join(lines, "\n")
}

// HelpText renders the key reference shown in the help popup and the pager
func HelpText() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	sectionStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	sections := []struct {
		title string
		keys  [][2]string
	}{
		{"Navigation", [][2]string{
			{"↑/↓, j/k", "Move between products"},
			{"PgUp/PgDn", "Page up/down"},
			{"gg/G", "Go to first/last product"},
			{"Enter", "View details"},
		}},
		{"Search & Filter", [][2]string{
			{"/", "Search products (applies after 2s)"},
			{"c", "Pick category"},
			{"s", "Pick subcategory"},
			{"b", "Filter by the product's category"},
			{"B", "Filter by the product's subcategory"},
			{"x", "Clear filters"},
			{"r", "Reload products"},
		}},
		{"Product Details", [][2]string{
			{"←/→, h/l", "Previous/next image"},
			{"1-9", "Select image"},
			{"y", "Copy image URL"},
			{"Y", "Copy SKU"},
			{"v", "View product sheet"},
			{"Esc", "Back to products"},
		}},
		{"Other", [][2]string{
			{"?", "Toggle this help"},
			{"q", "Quit"},
		}},
	}

	var help strings.Builder
	help.WriteString(titleStyle.Render("StackShop Help"))
	help.WriteString("\n")
	for _, section := range sections {
		help.WriteString("\n")
		help.WriteString(sectionStyle.Render(section.title))
		help.WriteString("\n")
		for _, k := range section.keys {
			help.WriteString("  " + keyStyle.Width(11).Render(k[0]) + descStyle.Render(k[1]) + "\n")
		}
	}
	return strings.TrimRight(help.String(), "\n")
}
