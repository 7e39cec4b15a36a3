//go:build e2e && unix

package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

type apiProduct struct {
	StacklineSku    string   `json:"stacklineSku"`
	Title           string   `json:"title"`
	CategoryName    string   `json:"categoryName"`
	SubCategoryName string   `json:"subCategoryName"`
	ImageURLs       []string `json:"imageUrls"`
	RetailerSku     string   `json:"retailerSku,omitempty"`
	FeatureBullets  []string `json:"featureBullets,omitempty"`
}

// FakeAPI serves a small storefront catalog over HTTP
type FakeAPI struct {
	*httptest.Server

	mu       sync.Mutex
	products []apiProduct
	searches []string
}

func defaultProducts() []apiProduct {
	return []apiProduct{
		{
			StacklineSku:    "LAMP-1",
			Title:           "Brass Desk Lamp",
			CategoryName:    "Home",
			SubCategoryName: "Lighting",
			RetailerSku:     "R-100",
			ImageURLs:       []string{"https://img.example/lamp-1.jpg", "https://img.example/lamp-2.jpg"},
			FeatureBullets:  []string{"Adjustable arm", "Warm white bulb"},
		},
		{
			StacklineSku:    "KETTLE-1",
			Title:           "Steel Kettle",
			CategoryName:    "Home",
			SubCategoryName: "Kitchen",
			ImageURLs:       []string{"https://img.example/kettle.jpg"},
		},
		{
			StacklineSku:    "BLOCKS-1",
			Title:           "Wooden Blocks",
			CategoryName:    "Toys",
			SubCategoryName: "Building",
		},
	}
}

// NewFakeAPI starts a fake API that is closed with the test
func NewFakeAPI(t *testing.T) *FakeAPI {
	t.Helper()
	api := &FakeAPI{products: defaultProducts()}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/categories", api.categories)
	mux.HandleFunc("/api/subcategories", api.subCategories)
	mux.HandleFunc("/api/products", api.list)
	mux.HandleFunc("/api/products/", api.detail)

	api.Server = httptest.NewServer(mux)
	t.Cleanup(api.Close)
	return api
}

// Searches returns the search terms the app sent, in order
func (a *FakeAPI) Searches() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.searches...)
}

func (a *FakeAPI) categories(w http.ResponseWriter, r *http.Request) {
	seen := map[string]bool{}
	categories := []string{}
	for _, p := range a.snapshot() {
		if !seen[p.CategoryName] {
			seen[p.CategoryName] = true
			categories = append(categories, p.CategoryName)
		}
	}
	writeJSON(w, map[string]any{"categories": categories})
}

func (a *FakeAPI) subCategories(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	seen := map[string]bool{}
	subs := []string{}
	for _, p := range a.snapshot() {
		if p.CategoryName == category && !seen[p.SubCategoryName] {
			seen[p.SubCategoryName] = true
			subs = append(subs, p.SubCategoryName)
		}
	}
	writeJSON(w, map[string]any{"subCategories": subs})
}

func (a *FakeAPI) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	search := q.Get("search")
	if search != "" {
		a.mu.Lock()
		a.searches = append(a.searches, search)
		a.mu.Unlock()
	}

	products := []apiProduct{}
	for _, p := range a.snapshot() {
		if c := q.Get("category"); c != "" && p.CategoryName != c {
			continue
		}
		if s := q.Get("subCategory"); s != "" && p.SubCategoryName != s {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Title), strings.ToLower(search)) {
			continue
		}
		products = append(products, p)
	}
	writeJSON(w, map[string]any{"products": products, "total": len(products)})
}

func (a *FakeAPI) detail(w http.ResponseWriter, r *http.Request) {
	sku := strings.TrimPrefix(r.URL.Path, "/api/products/")
	for _, p := range a.snapshot() {
		if p.StacklineSku == sku {
			writeJSON(w, p)
			return
		}
	}
	w.WriteHeader(http.StatusNotFound)
	writeJSON(w, map[string]string{"error": "Product not found"})
}

func (a *FakeAPI) snapshot() []apiProduct {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]apiProduct(nil), a.products...)
}

func writeJSON(w http.ResponseWriter, v any) {
	if w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", "application/json")
	}
	_ = json.NewEncoder(w).Encode(v)
}
