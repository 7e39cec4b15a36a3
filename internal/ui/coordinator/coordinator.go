package coordinator

import (
	log "github.com/sirupsen/logrus"

	"stackshop/internal/domain"
	"stackshop/internal/ui/services/events"
	"stackshop/internal/ui/services/filters"
	"stackshop/internal/ui/services/gallery"
	"stackshop/internal/ui/services/navigation"
	"stackshop/internal/ui/services/query"
	"stackshop/internal/ui/services/search"
)

// Coordinator owns the search text and the category filters and derives product queries
// from them. Every operation compares the derived query key before and after the change
// and issues at most one product query, only when the key moved.
type Coordinator struct {
	// Services
	Search     *search.Service
	Filters    *filters.Service
	Query      *query.Service
	Navigation *navigation.Service
	Gallery    *gallery.Service

	bus events.EventBus
}

// NewCoordinator creates a new coordinator with all services
func NewCoordinator(bus events.EventBus, scheduler search.Scheduler, pageSize int) *Coordinator {
	if bus == nil {
		bus = &events.NullBus{}
	}
	c := &Coordinator{
		Search:     search.NewService(bus, scheduler),
		Filters:    filters.NewService(bus),
		Query:      query.NewService(bus, pageSize),
		Navigation: navigation.NewService(bus),
		Gallery:    gallery.NewService(bus),
		bus:        bus,
	}

	// Navigation needs to query max index
	c.Navigation.SetQueryFunction(func() int {
		return c.Query.GetMaxIndex()
	})

	return c
}

// Key returns the query key derived from the current filters
func (c *Coordinator) Key() query.Key {
	return query.Key{
		Search:      c.Search.GetQuery(),
		Category:    c.Filters.GetCategory(),
		SubCategory: c.Filters.GetSubCategory(),
	}
}

// Mount loads the categories and the unfiltered listing
func (c *Coordinator) Mount() []Effect {
	q, seq := c.Query.Issue(c.Key())
	return []Effect{
		FetchCategories{},
		FetchProducts{Seq: seq, Query: q},
	}
}

// SetSearch records raw search text and restarts the debounce window. It never fetches.
func (c *Coordinator) SetSearch(text string) {
	c.Search.SetText(text)
}

// CommitSearch applies a debounce commit
func (c *Coordinator) CommitSearch(gen uint64, value string) []Effect {
	before := c.Key()
	if !c.Search.Commit(gen, value) {
		return nil
	}
	return c.derive(before, nil)
}

// SetCategory selects a category ("" for all), clears the subcategory and requests the
// subcategories of a newly selected category
func (c *Coordinator) SetCategory(category string) []Effect {
	before := c.Key()

	var effects []Effect
	if c.Filters.SetCategory(category) && category != "" {
		effects = append(effects, FetchSubCategories{Category: category})
	}
	return c.derive(before, effects)
}

// SetSubCategory selects a subcategory ("" for all)
func (c *Coordinator) SetSubCategory(subCategory string) []Effect {
	before := c.Key()
	c.Filters.SetSubCategory(subCategory)
	return c.derive(before, nil)
}

// ApplyBadge sets category and subcategory together, as the card badges do. An empty
// subCategory is the category badge.
func (c *Coordinator) ApplyBadge(category, subCategory string) []Effect {
	before := c.Key()

	var effects []Effect
	if c.Filters.SetCategory(category) && category != "" {
		effects = append(effects, FetchSubCategories{Category: category})
	}
	c.Filters.SetSubCategory(subCategory)
	return c.derive(before, effects)
}

// ClearFilters resets search text, debounced search, category and subcategory in one step
// and cancels a pending search commit
func (c *Coordinator) ClearFilters() []Effect {
	before := c.Key()
	c.Search.Clear()
	c.Filters.Clear()
	return c.derive(before, nil)
}

// HasFilters reports whether there is anything for ClearFilters to clear
func (c *Coordinator) HasFilters() bool {
	return c.Search.GetText() != "" || c.Search.GetQuery() != "" || c.Filters.HasSelection()
}

// Reload re-issues the current product query
func (c *Coordinator) Reload() []Effect {
	q, seq := c.Query.Issue(c.Key())
	return []Effect{FetchProducts{Seq: seq, Query: q}}
}

// HandleProducts applies a product listing response. Returns false for a stale response.
func (c *Coordinator) HandleProducts(seq uint64, products []domain.Product, err error) bool {
	if !c.Query.Resolve(seq, products, err) {
		return false
	}
	c.Navigation.Reset()
	return true
}

// HandleCategories applies the category list response and returns the message to show,
// "" on success. A failure leaves the list empty.
func (c *Coordinator) HandleCategories(categories []string, err error) string {
	if err != nil {
		log.Errorf("Error loading categories: %v", err)
		c.Filters.SetCategories(nil)
		return domain.MsgCategoriesFailed
	}
	c.Filters.SetCategories(categories)
	return ""
}

// HandleSubCategories applies a subcategory list response and returns the message to show.
// Responses for a category that is no longer selected are ignored.
func (c *Coordinator) HandleSubCategories(category string, subCategories []string, err error) string {
	if category != c.Filters.GetCategory() {
		log.Debugf("Dropping subcategories of %q (selected %q)", category, c.Filters.GetCategory())
		return ""
	}
	if err != nil {
		log.Errorf("Error loading subcategories of %q: %v", category, err)
		c.Filters.SetSubCategories(category, nil)
		return domain.MsgSubCategoriesFailed
	}
	c.Filters.SetSubCategories(category, subCategories)
	return ""
}

// OpenProduct switches the detail view to sku
func (c *Coordinator) OpenProduct(sku string) []Effect {
	if !c.Gallery.Open(sku) {
		return nil
	}
	return []Effect{FetchProduct{SKU: sku}}
}

// HandleProduct applies a detail response
func (c *Coordinator) HandleProduct(sku string, product *domain.Product, err error) bool {
	return c.Gallery.Resolve(sku, product, err)
}

// CloseProduct leaves the detail view; the listing state is untouched
func (c *Coordinator) CloseProduct() {
	c.Gallery.Close()
}

// CurrentProduct returns the product under the card cursor
func (c *Coordinator) CurrentProduct() *domain.Product {
	return c.Query.GetProductAtIndex(c.Navigation.GetCursor())
}

// SetViewportHeight updates viewport height across services
func (c *Coordinator) SetViewportHeight(height int) {
	c.Navigation.SetViewportHeight(height)
}

// Close cancels the pending search commit; nothing fires after it
func (c *Coordinator) Close() {
	c.Search.Close()
}

func (c *Coordinator) derive(before query.Key, effects []Effect) []Effect {
	after := c.Key()
	if after == before {
		return effects
	}
	q, seq := c.Query.Issue(after)
	return append(effects, FetchProducts{Seq: seq, Query: q})
}
