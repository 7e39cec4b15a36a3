package catalog

import (
	"context"
	"fmt"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"
	"resty.dev/v3"

	"stackshop/internal/domain"
)

const jsonContentType = "application/json"

// Options configures the storefront API client
type Options struct {
	BaseURL              string
	Timeout              time.Duration
	MaxRequestsPerSecond int // 0 means unlimited
}

// Client talks to the storefront API. It never retries: a failed request is reported
// to the caller as is.
type Client struct {
	http *resty.Client
	rl   ratelimit.Limiter
}

// NewClient creates a storefront API client
func NewClient(opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	httpClient := resty.New().
		SetBaseURL(opts.BaseURL).
		SetTimeout(timeout).
		SetHeader("Accept", jsonContentType)

	rl := ratelimit.NewUnlimited()
	if opts.MaxRequestsPerSecond > 0 {
		rl = ratelimit.New(opts.MaxRequestsPerSecond)
	}

	return &Client{
		http: httpClient,
		rl:   rl,
	}
}

// Close releases the underlying HTTP client
func (c *Client) Close() error {
	return c.http.Close()
}

// Categories fetches the category list
func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var body domain.CategoriesResponse
	if err := c.get(ctx, "list categories", "/api/categories", nil, &body); err != nil {
		return nil, err
	}
	return body.Categories, nil
}

// SubCategories fetches the subcategories of a category
func (c *Client) SubCategories(ctx context.Context, category string) ([]string, error) {
	var body domain.SubCategoriesResponse
	params := map[string]string{"category": category}
	if err := c.get(ctx, "list subcategories", "/api/subcategories", params, &body); err != nil {
		return nil, err
	}
	return body.SubCategories, nil
}

// Products runs a listing query
func (c *Client) Products(ctx context.Context, q domain.ProductQuery) ([]domain.Product, error) {
	var body domain.ProductsResponse
	if err := c.get(ctx, "list products", "/api/products", q.Params(), &body); err != nil {
		return nil, err
	}
	return body.Products, nil
}

// Product fetches a single product by SKU. It returns domain.ErrNotFound on 404.
func (c *Client) Product(ctx context.Context, sku string) (*domain.Product, error) {
	c.rl.Take()

	var product domain.Product
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("sku", sku).
		SetResult(&product).
		SetForceResponseContentType(jsonContentType).
		Get("/api/products/{sku}")
	if err != nil {
		return nil, requestError("get product", resp, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, fmt.Errorf("sku %q: %w", sku, domain.ErrNotFound)
	}
	if resp.IsError() {
		return nil, &domain.NetworkError{Op: "get product", StatusCode: resp.StatusCode()}
	}

	log.Debugf("Fetched product %s (%d images)", product.StacklineSku, len(product.ImageURLs))
	return &product, nil
}

func (c *Client) get(ctx context.Context, op, path string, params map[string]string, out any) error {
	c.rl.Take()

	req := c.http.R().
		SetContext(ctx).
		SetResult(out).
		SetForceResponseContentType(jsonContentType)
	if len(params) > 0 {
		req.SetQueryParams(params)
	}

	started := time.Now()
	resp, err := req.Get(path)
	if err != nil {
		return requestError(op, resp, err)
	}
	if resp.IsError() {
		return &domain.NetworkError{Op: op, StatusCode: resp.StatusCode()}
	}

	log.Debugf("%s %s took %v", op, path, time.Since(started).Round(time.Millisecond))
	return nil
}

// requestError tells a body that failed to decode apart from a request that never completed
func requestError(op string, resp *resty.Response, err error) error {
	if resp != nil && resp.IsSuccess() {
		return fmt.Errorf("failed to decode %s response: %w", op, err)
	}
	return &domain.NetworkError{Op: op, Err: err}
}
