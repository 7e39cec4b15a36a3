package filters

import (
	"stackshop/internal/ui/services/events"
)

// Service handles the category / subcategory cascade
type Service struct {
	state *State
	bus   events.EventBus
}

// NewService creates a new filters service
func NewService(bus events.EventBus) *Service {
	return &Service{
		state: &State{},
		bus:   bus,
	}
}

// SetCategory replaces the category and always clears the subcategory. The subcategory list
// is dropped when the category actually changes; it returns true in that case.
func (s *Service) SetCategory(category string) bool {
	old := s.state.Category
	s.state.Category = category
	s.setSubCategory("")

	if old == category {
		return false
	}
	s.state.SubCategories = nil

	s.bus.Publish(CategoryChangedEvent{Old: old, New: category})
	return true
}

// SetSubCategory replaces the subcategory. Without a category there is nothing to narrow,
// so the subcategory stays empty.
func (s *Service) SetSubCategory(subCategory string) {
	if s.state.Category == "" {
		subCategory = ""
	}
	s.setSubCategory(subCategory)
}

// Clear resets both selections and the subcategory list
func (s *Service) Clear() {
	s.state.Category = ""
	s.state.SubCategory = ""
	s.state.SubCategories = nil

	s.bus.Publish(FiltersClearedEvent{})
}

// SetCategories replaces the category list
func (s *Service) SetCategories(categories []string) {
	s.state.Categories = categories
	s.bus.Publish(CategoriesLoadedEvent{Count: len(categories)})
}

// SetSubCategories replaces the subcategory list if it belongs to the selected category.
// Returns false for a response that arrived after the category changed.
func (s *Service) SetSubCategories(category string, subCategories []string) bool {
	if category == "" || category != s.state.Category {
		return false
	}
	s.state.SubCategories = subCategories
	s.bus.Publish(SubCategoriesLoadedEvent{Category: category, Count: len(subCategories)})
	return true
}

// GetCategory returns the selected category, "" for all
func (s *Service) GetCategory() string {
	return s.state.Category
}

// GetSubCategory returns the selected subcategory, "" for all
func (s *Service) GetSubCategory() string {
	return s.state.SubCategory
}

// GetCategories returns the category list
func (s *Service) GetCategories() []string {
	return s.state.Categories
}

// GetSubCategories returns the subcategory list of the selected category
func (s *Service) GetSubCategories() []string {
	return s.state.SubCategories
}

// HasSelection returns true if a category or subcategory is selected
func (s *Service) HasSelection() bool {
	return s.state.Category != "" || s.state.SubCategory != ""
}

// CanPickSubCategory reports whether a subcategory picker should be offered
func (s *Service) CanPickSubCategory() bool {
	return s.state.Category != "" && len(s.state.SubCategories) > 0
}

func (s *Service) setSubCategory(subCategory string) {
	old := s.state.SubCategory
	if old == subCategory {
		return
	}
	s.state.SubCategory = subCategory
	s.bus.Publish(SubCategoryChangedEvent{
		Category: s.state.Category,
		Old:      old,
		New:      subCategory,
	})
}
