package gallery

import (
	"stackshop/internal/domain"
)

// State holds the product on the detail view and its selected image
type State struct {
	SKU      string
	Loading  bool
	Product  *domain.Product
	Message  string // "Product not found" or "Failed to load product"
	Selected int    // index into Product.ImageURLs
}

// Event types
type ProductOpenedEvent struct {
	SKU string
}

type ProductLoadedEvent struct {
	SKU    string
	Images int
}

type ProductFailedEvent struct {
	SKU     string
	Message string
	Err     error
}

type ImageSelectedEvent struct {
	SKU   string
	Index int
}
