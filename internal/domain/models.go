package domain

import "strconv"

// DefaultPageSize is the number of products requested per listing query
const DefaultPageSize = 20

// Product represents a catalog product as returned by the storefront API
type Product struct {
	StacklineSku    string   `json:"stacklineSku"`
	Title           string   `json:"title"`
	CategoryName    string   `json:"categoryName"`
	SubCategoryName string   `json:"subCategoryName"`
	ImageURLs       []string `json:"imageUrls"`
	RetailerSku     string   `json:"retailerSku,omitempty"`
	FeatureBullets  []string `json:"featureBullets,omitempty"`
}

// PrimaryImage returns the first image URL, or "" when the product has none
func (p *Product) PrimaryImage() string {
	if p == nil || len(p.ImageURLs) == 0 {
		return ""
	}
	return p.ImageURLs[0]
}

// ProductQuery is the set of listing parameters derived from the filter state.
// Empty strings are omitted from the request.
type ProductQuery struct {
	Search      string
	Category    string
	SubCategory string
	Limit       int
}

// Params returns the non-empty query fields as URL parameters, with limit defaulting to 20
func (q ProductQuery) Params() map[string]string {
	params := make(map[string]string, 4)
	if q.Search != "" {
		params["search"] = q.Search
	}
	if q.Category != "" {
		params["category"] = q.Category
	}
	if q.SubCategory != "" {
		params["subCategory"] = q.SubCategory
	}
	limit := q.Limit
	if limit <= 0 {
		limit = DefaultPageSize
	}
	params["limit"] = strconv.Itoa(limit)
	return params
}

// CategoriesResponse is the body of GET /api/categories
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// SubCategoriesResponse is the body of GET /api/subcategories
type SubCategoriesResponse struct {
	SubCategories []string `json:"subCategories"`
}

// ProductsResponse is the body of GET /api/products
type ProductsResponse struct {
	Products []Product `json:"products"`
}
