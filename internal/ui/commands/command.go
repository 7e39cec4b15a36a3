package commands

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"stackshop/internal/domain"
	"stackshop/internal/ui/state"
)

// Catalog is the storefront API as seen by the UI
type Catalog interface {
	Categories(ctx context.Context) ([]string, error)
	SubCategories(ctx context.Context, category string) ([]string, error)
	Products(ctx context.Context, q domain.ProductQuery) ([]domain.Product, error)
	Product(ctx context.Context, sku string) (*domain.Product, error)
}

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	State   *state.AppState
	Catalog Catalog
	Timeout time.Duration
}

func (c *CommandContext) requestContext() (context.Context, context.CancelFunc) {
	if c.Timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), c.Timeout)
}

// CategoriesLoadedMsg carries the category list response
type CategoriesLoadedMsg struct {
	Categories []string
	Err        error
}

// SubCategoriesLoadedMsg carries the subcategory list response for Category
type SubCategoriesLoadedMsg struct {
	Category      string
	SubCategories []string
	Err           error
}

// ProductsLoadedMsg carries the product listing response for query Seq
type ProductsLoadedMsg struct {
	Seq      uint64
	Products []domain.Product
	Err      error
}

// ProductLoadedMsg carries the single product response for SKU
type ProductLoadedMsg struct {
	SKU     string
	Product *domain.Product
	Err     error
}

// FetchCategoriesCommand loads the category list
type FetchCategoriesCommand struct {
	ctx *CommandContext
}

// NewFetchCategoriesCommand creates a new categories command
func NewFetchCategoriesCommand(ctx *CommandContext) *FetchCategoriesCommand {
	return &FetchCategoriesCommand{ctx: ctx}
}

// Execute performs the request
func (c *FetchCategoriesCommand) Execute() tea.Cmd {
	c.ctx.State.BeginRequest(state.RequestCategories)
	return func() tea.Msg {
		ctx, cancel := c.ctx.requestContext()
		defer cancel()
		categories, err := c.ctx.Catalog.Categories(ctx)
		if err != nil {
			log.WithError(err).Warn("fetch categories failed")
		}
		return CategoriesLoadedMsg{Categories: categories, Err: err}
	}
}

// FetchSubCategoriesCommand loads the subcategories of one category
type FetchSubCategoriesCommand struct {
	ctx      *CommandContext
	category string
}

// NewFetchSubCategoriesCommand creates a new subcategories command
func NewFetchSubCategoriesCommand(ctx *CommandContext, category string) *FetchSubCategoriesCommand {
	return &FetchSubCategoriesCommand{ctx: ctx, category: category}
}

// Execute performs the request
func (c *FetchSubCategoriesCommand) Execute() tea.Cmd {
	c.ctx.State.BeginRequest(state.RequestSubCategories)
	category := c.category
	return func() tea.Msg {
		ctx, cancel := c.ctx.requestContext()
		defer cancel()
		subCategories, err := c.ctx.Catalog.SubCategories(ctx, category)
		if err != nil {
			log.WithError(err).WithField("category", category).Warn("fetch subcategories failed")
		}
		return SubCategoriesLoadedMsg{Category: category, SubCategories: subCategories, Err: err}
	}
}

// FetchProductsCommand runs one product listing query
type FetchProductsCommand struct {
	ctx   *CommandContext
	seq   uint64
	query domain.ProductQuery
}

// NewFetchProductsCommand creates a new listing command
func NewFetchProductsCommand(ctx *CommandContext, seq uint64, q domain.ProductQuery) *FetchProductsCommand {
	return &FetchProductsCommand{ctx: ctx, seq: seq, query: q}
}

// Execute performs the request
func (c *FetchProductsCommand) Execute() tea.Cmd {
	c.ctx.State.BeginRequest(state.RequestProducts)
	seq, q := c.seq, c.query
	return func() tea.Msg {
		ctx, cancel := c.ctx.requestContext()
		defer cancel()
		products, err := c.ctx.Catalog.Products(ctx, q)
		if err != nil {
			log.WithError(err).WithFields(log.Fields{"seq": seq, "params": q.Params()}).Warn("fetch products failed")
		}
		return ProductsLoadedMsg{Seq: seq, Products: products, Err: err}
	}
}

// FetchProductCommand loads one product for the detail view
type FetchProductCommand struct {
	ctx *CommandContext
	sku string
}

// NewFetchProductCommand creates a new product command
func NewFetchProductCommand(ctx *CommandContext, sku string) *FetchProductCommand {
	return &FetchProductCommand{ctx: ctx, sku: sku}
}

// Execute performs the request
func (c *FetchProductCommand) Execute() tea.Cmd {
	c.ctx.State.BeginRequest(state.RequestProduct)
	sku := c.sku
	return func() tea.Msg {
		ctx, cancel := c.ctx.requestContext()
		defer cancel()
		product, err := c.ctx.Catalog.Product(ctx, sku)
		if err != nil {
			log.WithError(err).WithField("sku", sku).Warn("fetch product failed")
		}
		return ProductLoadedMsg{SKU: sku, Product: product, Err: err}
	}
}
