package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"stackshop/internal/domain"
)

// PagerOps shows long content in the ov pager
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOps creates a new pager operations instance
func NewPagerOps() *PagerOps {
	return &PagerOps{}
}

// SetProgram sets the program whose terminal the pager borrows
func (p *PagerOps) SetProgram(program *tea.Program) {
	p.program = program
}

// Available reports whether the pager can take over the terminal
func (p *PagerOps) Available() bool {
	return p != nil && p.program != nil
}

// ShowInPager shows content using ov pager
func (p *PagerOps) ShowInPager(content string) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal() // Ignore error as we're in defer context
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	// Run the oviewer (this will take over the terminal)
	return root.Run()
}

// renderProductSheet renders every field of a product for the pager
func renderProductSheet(product *domain.Product) string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	sectionStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("220"))

	var sheet strings.Builder
	sheet.WriteString(titleStyle.Render(product.Title))
	sheet.WriteString("\n\n")

	fields := [][2]string{
		{"Stackline SKU", product.StacklineSku},
		{"Retailer SKU", product.RetailerSku},
		{"Category", product.CategoryName},
		{"Subcategory", product.SubCategoryName},
	}
	for _, f := range fields {
		if f[1] == "" {
			continue
		}
		sheet.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render(f[0]+":"), f[1]))
	}

	if len(product.ImageURLs) > 0 {
		sheet.WriteString("\n")
		sheet.WriteString(sectionStyle.Render("Images"))
		sheet.WriteString("\n")
		for i, url := range product.ImageURLs {
			sheet.WriteString(fmt.Sprintf("  [%d] %s\n", i+1, url))
		}
	}

	if len(product.FeatureBullets) > 0 {
		sheet.WriteString("\n")
		sheet.WriteString(sectionStyle.Render("Features"))
		sheet.WriteString("\n")
		for _, bullet := range product.FeatureBullets {
			sheet.WriteString("  • " + bullet + "\n")
		}
	}

	return sheet.String()
}
