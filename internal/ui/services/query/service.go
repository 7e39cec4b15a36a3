package query

import (
	log "github.com/sirupsen/logrus"

	"stackshop/internal/domain"
	"stackshop/internal/ui/services/events"
)

// Service tracks the product listing query and its result
type Service struct {
	state *State
	bus   events.EventBus
}

// NewService creates a new query service
func NewService(bus events.EventBus, pageSize int) *Service {
	if pageSize <= 0 {
		pageSize = domain.DefaultPageSize
	}
	return &Service{
		state: &State{
			Load:     LoadStateIdle,
			PageSize: pageSize,
		},
		bus: bus,
	}
}

// Issue starts a new query for key and returns it with its sequence number. Any response
// to an earlier sequence becomes stale.
func (s *Service) Issue(key Key) (domain.ProductQuery, uint64) {
	s.state.Seq++
	s.state.Key = key
	s.state.Load = LoadStateLoading
	s.state.Message = ""

	q := domain.ProductQuery{
		Search:      key.Search,
		Category:    key.Category,
		SubCategory: key.SubCategory,
		Limit:       s.state.PageSize,
	}
	s.bus.Publish(QueryIssuedEvent{Seq: s.state.Seq, Query: q})
	return q, s.state.Seq
}

// Resolve applies the response to query seq. Responses to anything but the latest query are
// dropped and false is returned. A failure empties the list.
func (s *Service) Resolve(seq uint64, products []domain.Product, err error) bool {
	if seq != s.state.Seq {
		log.Debugf("Dropping stale product response %d (latest %d)", seq, s.state.Seq)
		s.bus.Publish(StaleResponseEvent{Seq: seq, Latest: s.state.Seq})
		return false
	}

	if err != nil {
		log.Errorf("Error loading products: %v", err)
		s.state.Load = LoadStateFailed
		s.state.Message = domain.MsgProductsFailed
		s.state.Products = nil
		s.bus.Publish(ProductsFailedEvent{Seq: seq, Err: err})
		return true
	}

	if products == nil {
		products = []domain.Product{}
	}
	s.state.Load = LoadStateSuccess
	s.state.Products = products
	s.bus.Publish(ProductsLoadedEvent{Seq: seq, Count: len(products)})
	return true
}

// GetKey returns the filters of the latest issued query
func (s *Service) GetKey() Key {
	return s.state.Key
}

// GetSeq returns the sequence of the latest issued query
func (s *Service) GetSeq() uint64 {
	return s.state.Seq
}

// GetLoadState returns the loading state
func (s *Service) GetLoadState() LoadState {
	return s.state.Load
}

// IsLoading reports whether the latest query is in flight
func (s *Service) IsLoading() bool {
	return s.state.Load == LoadStateLoading
}

// GetProducts returns the current product list
func (s *Service) GetProducts() []domain.Product {
	return s.state.Products
}

// GetMessage returns the failure message, "" unless failed
func (s *Service) GetMessage() string {
	return s.state.Message
}

// Count returns the number of products in the list
func (s *Service) Count() int {
	return len(s.state.Products)
}

// GetMaxIndex returns the maximum selectable card index
func (s *Service) GetMaxIndex() int {
	if len(s.state.Products) == 0 {
		return 0
	}
	return len(s.state.Products) - 1
}

// GetProductAtIndex returns the product at a card index, nil if out of range
func (s *Service) GetProductAtIndex(index int) *domain.Product {
	if index < 0 || index >= len(s.state.Products) {
		return nil
	}
	return &s.state.Products[index]
}
