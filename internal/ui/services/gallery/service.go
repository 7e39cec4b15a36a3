package gallery

import (
	log "github.com/sirupsen/logrus"

	"stackshop/internal/domain"
	"stackshop/internal/ui/services/events"
)

// Service handles the detail view: which product is open, its load state and the image
// selection. It is independent of the listing filters.
type Service struct {
	state *State
	bus   events.EventBus
}

// NewService creates a new gallery service
func NewService(bus events.EventBus) *Service {
	return &Service{
		state: &State{},
		bus:   bus,
	}
}

// Open switches the detail view to sku. It returns false when there is nothing to fetch:
// an empty SKU resolves to "Product not found" immediately.
func (s *Service) Open(sku string) bool {
	s.state = &State{SKU: sku}
	s.bus.Publish(ProductOpenedEvent{SKU: sku})

	if sku == "" {
		s.state.Message = domain.MsgProductNotFound
		return false
	}
	s.state.Loading = true
	return true
}

// Resolve applies a detail response. Responses for a SKU that is no longer open are dropped.
func (s *Service) Resolve(sku string, product *domain.Product, err error) bool {
	if sku != s.state.SKU || !s.state.Loading {
		log.Debugf("Dropping detail response for %q (showing %q)", sku, s.state.SKU)
		return false
	}
	s.state.Loading = false

	if err == nil && product == nil {
		err = domain.ErrNotFound
	}
	if err != nil {
		log.Errorf("Error loading product %q: %v", sku, err)
		s.state.Product = nil
		s.state.Message = domain.DetailMessage(err)
		s.bus.Publish(ProductFailedEvent{SKU: sku, Message: s.state.Message, Err: err})
		return true
	}

	s.state.Product = product
	s.state.Message = ""
	s.state.Selected = 0
	s.bus.Publish(ProductLoadedEvent{SKU: sku, Images: len(product.ImageURLs)})
	return true
}

// Close leaves the detail view
func (s *Service) Close() {
	s.state = &State{}
}

// Select picks an image, clamped to the product's images
func (s *Service) Select(index int) {
	s.state.Selected = s.clamp(index)
	s.bus.Publish(ImageSelectedEvent{SKU: s.state.SKU, Index: s.state.Selected})
}

// Next selects the following image, stopping at the last one
func (s *Service) Next() {
	s.Select(s.state.Selected + 1)
}

// Previous selects the preceding image, stopping at the first one
func (s *Service) Previous() {
	s.Select(s.state.Selected - 1)
}

// GetSKU returns the SKU on screen
func (s *Service) GetSKU() string {
	return s.state.SKU
}

// IsLoading reports whether the product is being fetched
func (s *Service) IsLoading() bool {
	return s.state.Loading
}

// GetProduct returns the loaded product, nil while loading or after a failure
func (s *Service) GetProduct() *domain.Product {
	return s.state.Product
}

// GetMessage returns the failure message
func (s *Service) GetMessage() string {
	return s.state.Message
}

// GetSelected returns the selected image index
func (s *Service) GetSelected() int {
	return s.state.Selected
}

// SelectedImage returns the URL of the selected image, "" if the product has none
func (s *Service) SelectedImage() string {
	p := s.state.Product
	if p == nil || s.state.Selected >= len(p.ImageURLs) {
		return ""
	}
	return p.ImageURLs[s.state.Selected]
}

func (s *Service) clamp(index int) int {
	count := 0
	if s.state.Product != nil {
		count = len(s.state.Product.ImageURLs)
	}
	if index >= count {
		index = count - 1
	}
	if index < 0 {
		index = 0
	}
	return index
}
