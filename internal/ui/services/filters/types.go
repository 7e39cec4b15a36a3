package filters

// State holds the category filters and the lists they are picked from
type State struct {
	Category      string // "" means all categories
	SubCategory   string // "" means all subcategories; only set together with Category
	Categories    []string
	SubCategories []string // subcategories of Category
}

// Event types
type CategoryChangedEvent struct {
	Old string
	New string
}

type SubCategoryChangedEvent struct {
	Category string
	Old      string
	New      string
}

type FiltersClearedEvent struct{}

type CategoriesLoadedEvent struct {
	Count int
}

type SubCategoriesLoadedEvent struct {
	Category string
	Count    int
}
