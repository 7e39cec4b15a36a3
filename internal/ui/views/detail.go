package views

import (
	"fmt"
	"strings"

	"stackshop/internal/domain"
)

// DetailState is what the detail view needs to render one product
type DetailState struct {
	SKU      string
	Loading  bool
	Product  *domain.Product
	Message  string
	Selected int // selected image index
}

// DetailRenderer renders the product detail view
type DetailRenderer struct {
	styles *Styles
}

// NewDetailRenderer creates a new detail renderer
func NewDetailRenderer(styles *Styles) *DetailRenderer {
	return &DetailRenderer{styles: styles}
}

// Render renders the detail view body
func (r *DetailRenderer) Render(state DetailState, width int) string {
	var b strings.Builder

	b.WriteString(r.styles.Hint.Render("← Back to Products"))
	b.WriteString(r.styles.Dim.Render(" (esc)"))
	b.WriteString("\n\n")

	if state.Loading {
		b.WriteString(r.styles.StatusLoading.Render("Loading product..."))
		return b.String()
	}

	product := state.Product
	if product == nil {
		message := state.Message
		if message == "" {
			message = domain.MsgProductNotFound
		}
		b.WriteString(r.styles.StatusError.Render(message))
		return b.String()
	}

	if badges := RenderBadges(product.CategoryName, product.SubCategoryName); badges != "" {
		b.WriteString(badges)
		b.WriteString("\n")
	}
	b.WriteString(r.styles.CardTitle.Render(product.Title))
	b.WriteString("\n")
	if product.RetailerSku != "" {
		b.WriteString(r.styles.Dim.Render("SKU: " + product.RetailerSku))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Main image
	selected := clampIndex(state.Selected, len(product.ImageURLs))
	if len(product.ImageURLs) > 0 {
		b.WriteString(r.styles.Section.Render("Image"))
		b.WriteString("\n")
		b.WriteString("  " + r.styles.Image.Render(product.ImageURLs[selected]))
		b.WriteString("\n")
	} else {
		b.WriteString(r.styles.Dim.Render("(no image)"))
		b.WriteString("\n")
	}

	// Thumbnails only make sense with a choice of images
	if len(product.ImageURLs) > 1 {
		b.WriteString("\n")
		b.WriteString(r.styles.Section.Render("Images"))
		b.WriteString(r.styles.Dim.Render("  ←/→ or 1-9"))
		b.WriteString("\n")
		for i, url := range product.ImageURLs {
			line := fmt.Sprintf("[%d] %s", i+1, truncate(url, width-10))
			if i == selected {
				b.WriteString(r.styles.ThumbnailSel.Render("> " + line))
			} else {
				b.WriteString(r.styles.Thumbnail.Render("  " + line))
			}
			b.WriteString("\n")
		}
	}

	if len(product.FeatureBullets) > 0 {
		b.WriteString("\n")
		b.WriteString(r.styles.Section.Render("Features"))
		b.WriteString("\n")
		for _, bullet := range product.FeatureBullets {
			b.WriteString("  • " + bullet)
			b.WriteString("\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func clampIndex(index, n int) int {
	if n == 0 || index < 0 {
		return 0
	}
	if index >= n {
		return n - 1
	}
	return index
}
