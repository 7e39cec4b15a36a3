package query

import (
	"stackshop/internal/domain"
)

// LoadState is the product list loading state
type LoadState int

const (
	LoadStateIdle LoadState = iota
	LoadStateLoading
	LoadStateSuccess
	LoadStateFailed
)

func (s LoadState) String() string {
	switch s {
	case LoadStateLoading:
		return "loading"
	case LoadStateSuccess:
		return "success"
	case LoadStateFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Key is the combination of filters a product query is derived from
type Key struct {
	Search      string
	Category    string
	SubCategory string
}

// State holds the product list and the query it came from
type State struct {
	Key      Key
	Seq      uint64 // sequence of the latest issued query
	Load     LoadState
	Products []domain.Product
	Message  string // user-facing failure message
	PageSize int
}

// Event types
type QueryIssuedEvent struct {
	Seq   uint64
	Query domain.ProductQuery
}

type ProductsLoadedEvent struct {
	Seq   uint64
	Count int
}

type ProductsFailedEvent struct {
	Seq uint64
	Err error
}

type StaleResponseEvent struct {
	Seq    uint64
	Latest uint64
}
