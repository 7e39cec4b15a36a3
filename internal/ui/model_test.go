package ui

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stackshop/internal/config"
	"stackshop/internal/domain"
	"stackshop/internal/ui/commands"
	"stackshop/internal/ui/input/types"
	"stackshop/internal/ui/services/events"
)

type fakeCatalog struct {
	mu            sync.Mutex
	categories    []string
	categoriesErr error
	subCategories map[string][]string
	products      []domain.Product
	details       map[string]*domain.Product
	queries       []domain.ProductQuery
}

func (f *fakeCatalog) Categories(ctx context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.categories, f.categoriesErr
}

func (f *fakeCatalog) SubCategories(ctx context.Context, category string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.subCategories[category], nil
}

func (f *fakeCatalog) Products(ctx context.Context, q domain.ProductQuery) ([]domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, q)
	return f.products, nil
}

func (f *fakeCatalog) Product(ctx context.Context, sku string) (*domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.details[sku]; ok {
		return p, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeCatalog) productQueries() []domain.ProductQuery {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.ProductQuery(nil), f.queries...)
}

func lamp() domain.Product {
	return domain.Product{
		StacklineSku:    "A1",
		Title:           "Desk Lamp",
		CategoryName:    "Home",
		SubCategoryName: "Lighting",
		RetailerSku:     "R-100",
		ImageURLs: []string{
			"https://img.example/1.jpg",
			"https://img.example/2.jpg",
			"https://img.example/3.jpg",
			"https://img.example/4.jpg",
		},
	}
}

func newTestModel(t *testing.T, catalog *fakeCatalog) (*Model, *clock.Mock) {
	t.Helper()
	mock := clock.NewMock()
	m := NewModel(config.DefaultConfig(), catalog, events.NewSyncBus(), mock)
	t.Cleanup(m.Close)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 60})
	return m, mock
}

// collect runs cmd and returns the fetch results it produces. Commands that do not finish
// promptly (spinner and status timers) are abandoned.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()

	select {
	case msg := <-ch:
		switch msg := msg.(type) {
		case tea.BatchMsg:
			var out []tea.Msg
			for _, c := range msg {
				out = append(out, collect(c)...)
			}
			return out
		case commands.CategoriesLoadedMsg, commands.SubCategoriesLoadedMsg,
			commands.ProductsLoadedMsg, commands.ProductLoadedMsg:
			return []tea.Msg{msg}
		}
		return nil
	case <-time.After(100 * time.Millisecond):
		return nil
	}
}

// mount runs the start-up fetches
func mount(m *Model) {
	for _, msg := range collect(m.cmdExecutor.ExecuteAll(m.coordinator.Mount())) {
		m.Update(msg)
	}
}

func press(m *Model, keys ...tea.KeyMsg) {
	for _, k := range keys {
		_, cmd := m.Update(k)
		for _, msg := range collect(cmd) {
			m.Update(msg)
		}
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestInitialViewIsLoading(t *testing.T) {
	m, _ := newTestModel(t, &fakeCatalog{})

	_ = m.Init()

	assert.Contains(t, m.View(), "Loading products...")
}

func TestMountRendersProducts(t *testing.T) {
	catalog := &fakeCatalog{
		categories: []string{"Home", "Toys"},
		products:   []domain.Product{lamp(), {StacklineSku: "B2", Title: "Kettle", CategoryName: "Home"}},
	}
	m, _ := newTestModel(t, catalog)

	mount(m)

	view := m.View()
	assert.Contains(t, view, "Showing 2 products")
	assert.Contains(t, view, "Desk Lamp")
	assert.Contains(t, view, "Kettle")
	assert.Equal(t, []string{"Home", "Toys"}, m.coordinator.Filters.GetCategories())
	require.Len(t, catalog.productQueries(), 1)
	assert.Equal(t, map[string]string{"limit": "20"}, catalog.productQueries()[0].Params())
}

func TestEmptyResultRendersNoProductsFound(t *testing.T) {
	m, _ := newTestModel(t, &fakeCatalog{products: []domain.Product{}})

	mount(m)

	view := m.View()
	assert.Contains(t, view, "No products found")
	assert.NotContains(t, view, "View Details")
}

func TestCategoryFailureShowsMessage(t *testing.T) {
	m, _ := newTestModel(t, &fakeCatalog{categoriesErr: errors.New("boom")})

	mount(m)

	assert.Contains(t, m.View(), domain.MsgCategoriesFailed)
	assert.Empty(t, m.coordinator.Filters.GetCategories())
}

func TestOpeningMissingProductRendersNotFound(t *testing.T) {
	m, _ := newTestModel(t, &fakeCatalog{products: []domain.Product{lamp()}})
	mount(m)

	press(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, types.ModeDetail, m.inputHandler.CurrentMode())
	assert.Contains(t, m.View(), "Product not found")
}

func TestOpenOnStartShowsDetail(t *testing.T) {
	p := lamp()
	catalog := &fakeCatalog{details: map[string]*domain.Product{"A1": &p}}
	m, _ := newTestModel(t, catalog)
	m.OpenOnStart("A1")

	for _, msg := range collect(m.Init()) {
		m.Update(msg)
	}

	assert.Equal(t, types.ModeDetail, m.inputHandler.CurrentMode())
	view := m.View()
	assert.Contains(t, view, "Desk Lamp")
	assert.Contains(t, view, "SKU: R-100")
	assert.Contains(t, view, "Back to Products")
}

func TestSelectingThirdImage(t *testing.T) {
	p := lamp()
	catalog := &fakeCatalog{products: []domain.Product{p}, details: map[string]*domain.Product{"A1": &p}}
	m, _ := newTestModel(t, catalog)
	mount(m)

	press(m, tea.KeyMsg{Type: tea.KeyEnter}, runes("3"))

	assert.Equal(t, 2, m.coordinator.Gallery.GetSelected())
	assert.Equal(t, "https://img.example/3.jpg", m.coordinator.Gallery.SelectedImage())
	view := m.View()
	assert.Contains(t, view, "> [3] https://img.example/3.jpg")
	assert.Equal(t, 1, strings.Count(view, "> ["))

	// Back to the list keeps the listing
	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, types.ModeNormal, m.inputHandler.CurrentMode())
	assert.Contains(t, m.View(), "Showing 1 product")
}

func TestSearchQueriesOnceAfterQuietPeriod(t *testing.T) {
	catalog := &fakeCatalog{products: []domain.Product{lamp()}}
	m, mock := newTestModel(t, catalog)
	mount(m)

	press(m, runes("/"), runes("l"), runes("a"), runes("m"), runes("p"))
	assert.Equal(t, "lamp", m.coordinator.Search.GetText())
	assert.Len(t, catalog.productQueries(), 1)

	mock.Add(1999 * time.Millisecond)
	select {
	case <-m.debouncer.Commits():
		t.Fatal("search committed before the quiet period ended")
	case <-time.After(20 * time.Millisecond):
	}

	mock.Add(time.Millisecond)
	var commit tea.Msg
	select {
	case c := <-m.debouncer.Commits():
		commit = searchCommitMsg(c)
	case <-time.After(time.Second):
		t.Fatal("search was not committed")
	}

	_, cmd := m.Update(commit)
	for _, msg := range collect(cmd) {
		m.Update(msg)
	}

	queries := catalog.productQueries()
	require.Len(t, queries, 2)
	assert.Equal(t, "lamp", queries[1].Search)
	assert.Equal(t, "lamp", m.coordinator.Search.GetQuery())
}

func TestBadgeFiltersWithOneQuery(t *testing.T) {
	catalog := &fakeCatalog{
		products:      []domain.Product{lamp()},
		subCategories: map[string][]string{"Home": {"Lighting", "Kitchen"}},
	}
	m, _ := newTestModel(t, catalog)
	mount(m)

	press(m, runes("B"))

	assert.Equal(t, types.ModeNormal, m.inputHandler.CurrentMode())
	queries := catalog.productQueries()
	require.Len(t, queries, 2)
	assert.Equal(t, "Home", queries[1].Category)
	assert.Equal(t, "Lighting", queries[1].SubCategory)
	assert.Equal(t, []string{"Lighting", "Kitchen"}, m.coordinator.Filters.GetSubCategories())
	assert.Contains(t, m.View(), "Clear Filters")
}

func TestClearFiltersResetsSearchField(t *testing.T) {
	catalog := &fakeCatalog{products: []domain.Product{lamp()}}
	m, _ := newTestModel(t, catalog)
	mount(m)

	press(m, runes("/"), runes("x"), tea.KeyMsg{Type: tea.KeyEsc}, runes("b"))
	require.True(t, m.coordinator.HasFilters())

	press(m, runes("x"))

	assert.Equal(t, "", m.coordinator.Search.GetText())
	assert.Equal(t, "", m.coordinator.Search.GetQuery())
	assert.Equal(t, "", m.coordinator.Filters.GetCategory())
	assert.Equal(t, "", m.coordinator.Filters.GetSubCategory())
	assert.Equal(t, "", m.inputHandler.GetTextInput().Value())
	assert.False(t, m.coordinator.Search.IsPending())
}

func TestHelpPopupWithoutPager(t *testing.T) {
	m, _ := newTestModel(t, &fakeCatalog{})
	mount(m)

	press(m, runes("?"))
	assert.Contains(t, m.View(), "StackShop Help")

	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.NotContains(t, m.View(), "StackShop Help")
}

func TestQuitStopsSearchTimer(t *testing.T) {
	m, _ := newTestModel(t, &fakeCatalog{})

	_, cmd := m.Update(runes("q"))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	select {
	case <-m.debouncer.Done():
	default:
		t.Fatal("debouncer still running after quit")
	}
}
