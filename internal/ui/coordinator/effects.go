package coordinator

import (
	"stackshop/internal/domain"
)

// Effect is a request the coordinator wants performed. The UI turns each one into a command
// and feeds the result back through the matching Handle method.
type Effect interface {
	effect()
}

// FetchCategories requests the category list
type FetchCategories struct{}

// FetchSubCategories requests the subcategories of Category
type FetchSubCategories struct {
	Category string
}

// FetchProducts requests a product listing; the response must be handed back with Seq
type FetchProducts struct {
	Seq   uint64
	Query domain.ProductQuery
}

// FetchProduct requests a single product for the detail view
type FetchProduct struct {
	SKU string
}

func (FetchCategories) effect()    {}
func (FetchSubCategories) effect() {}
func (FetchProducts) effect()      {}
func (FetchProduct) effect()       {}
