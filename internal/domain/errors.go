package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a single-product lookup answers 404
var ErrNotFound = errors.New("product not found")

// NetworkError is returned when a request fails in transport or answers a non-2xx status
type NetworkError struct {
	Op         string // e.g. "list products"
	StatusCode int    // 0 when the request never got a response
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: unexpected status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// User-facing messages
const (
	MsgProductsFailed      = "Failed to load products. Please try again."
	MsgCategoriesFailed    = "Failed to load categories"
	MsgSubCategoriesFailed = "Failed to load subcategories"
	MsgProductNotFound     = "Product not found"
	MsgProductFailed       = "Failed to load product"
	MsgNoProducts          = "No products found"
)

// DetailMessage maps a single-product lookup error to the message shown on the detail view
func DetailMessage(err error) string {
	if errors.Is(err, ErrNotFound) {
		return MsgProductNotFound
	}
	return MsgProductFailed
}
