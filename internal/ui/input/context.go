package input

import (
	"stackshop/internal/ui/coordinator"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Coordinator *coordinator.Coordinator
}

func (c *ModelContext) CurrentIndex() int {
	return c.Coordinator.Navigation.GetCursor()
}

func (c *ModelContext) TotalItems() int {
	return c.Coordinator.Query.Count()
}

func (c *ModelContext) CurrentProductSKU() string {
	if p := c.Coordinator.CurrentProduct(); p != nil {
		return p.StacklineSku
	}
	return ""
}

func (c *ModelContext) SearchText() string {
	return c.Coordinator.Search.GetText()
}

func (c *ModelContext) HasFilters() bool {
	return c.Coordinator.HasFilters()
}

func (c *ModelContext) Categories() []string {
	return c.Coordinator.Filters.GetCategories()
}

func (c *ModelContext) SubCategories() []string {
	return c.Coordinator.Filters.GetSubCategories()
}

func (c *ModelContext) SelectedCategory() string {
	return c.Coordinator.Filters.GetCategory()
}

func (c *ModelContext) SelectedSubCategory() string {
	return c.Coordinator.Filters.GetSubCategory()
}

func (c *ModelContext) CanPickSubCategory() bool {
	return c.Coordinator.Filters.CanPickSubCategory()
}

func (c *ModelContext) ImageCount() int {
	if p := c.Coordinator.Gallery.GetProduct(); p != nil {
		return len(p.ImageURLs)
	}
	return 0
}

func (c *ModelContext) HasProduct() bool {
	return c.Coordinator.Gallery.GetProduct() != nil
}
