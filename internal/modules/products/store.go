package products

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/Luisfp0/online-course-products/internal/catalog"
)

// PageSize is fixed: the dashboard grid shows 9 cards per page.
const PageSize = 9

type SortField string

const (
	SortNone  SortField = ""
	SortTitle SortField = "title"
	SortBrand SortField = "brand"
)

// SortFieldFrom validates a raw query value. Anything unknown means no sort.
func SortFieldFrom(s string) SortField {
	switch SortField(s) {
	case SortTitle:
		return SortTitle
	case SortBrand:
		return SortBrand
	default:
		return SortNone
	}
}

// CatalogService is what the store needs from the product service.
type CatalogService interface {
	List(ctx context.Context, page, limit int) (*catalog.ProductsResponse, error)
	Create(ctx context.Context, in Input) (*catalog.Product, error)
	Update(ctx context.Context, id int, in Input) (*catalog.Product, error)
	Delete(ctx context.Context, id int) error
}

// Store owns the authoritative in-memory product set plus the search term,
// sort key and current page, and recomputes the derived page slice on
// every relevant mutation. All mutation goes through named methods.
//
// The mutex protects struct integrity only. Overlapping fetches are not
// deduplicated or tagged: each completion overwrites allProducts, so the
// final state reflects whichever response resolved last. Known race, kept.
type Store struct {
	mu  sync.Mutex
	svc CatalogService

	allProducts []catalog.Product
	totalItems  int
	fetched     bool

	searchTerm  string
	sortField   SortField
	currentPage int

	loading     bool
	errMsg      string
	isModalOpen bool
	selected    *catalog.Product

	// derived; only ever written by applyFiltersLocked
	pageSlice     []catalog.Product
	filteredCount int
	totalPages    int
}

func NewStore(svc CatalogService) *Store {
	return &Store{svc: svc, currentPage: 1}
}

// Snapshot is a copy of the store state for rendering.
type Snapshot struct {
	Page          []catalog.Product
	TotalItems    int
	FilteredCount int
	TotalPages    int
	CurrentPage   int
	SearchTerm    string
	SortField     SortField
	Loading       bool
	Err           string
	IsModalOpen   bool
	Selected      *catalog.Product
}

func (st *Store) Snapshot() Snapshot {
	st.mu.Lock()
	defer st.mu.Unlock()

	page := make([]catalog.Product, len(st.pageSlice))
	copy(page, st.pageSlice)

	var selected *catalog.Product
	if st.selected != nil {
		cp := *st.selected
		selected = &cp
	}

	return Snapshot{
		Page:          page,
		TotalItems:    st.totalItems,
		FilteredCount: st.filteredCount,
		TotalPages:    st.totalPages,
		CurrentPage:   st.currentPage,
		SearchTerm:    st.searchTerm,
		SortField:     st.sortField,
		Loading:       st.loading,
		Err:           st.errMsg,
		IsModalOpen:   st.isModalOpen,
		Selected:      selected,
	}
}

// FetchAll loads the entire collection in two steps: page 1 with limit 1
// to learn the total, then a refetch with limit = total. On failure the
// previous products are kept (stale but consistent) and the error message
// is set. Loading always clears.
func (st *Store) FetchAll(ctx context.Context) error {
	st.mu.Lock()
	st.loading = true
	svc := st.svc
	st.mu.Unlock()

	first, err := svc.List(ctx, 1, 1)
	if err != nil {
		st.failFetch()
		return err
	}
	total := first.Total

	resp, err := svc.List(ctx, 1, total)
	if err != nil {
		st.failFetch()
		return err
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	st.allProducts = resp.Products
	st.totalItems = total
	st.fetched = true
	st.loading = false
	st.errMsg = ""
	st.applyFiltersLocked()
	return nil
}

// EnsureLoaded fetches the collection once per process; later dashboard
// visits render from the in-memory set so session-created records survive
// against the non-durable backend.
func (st *Store) EnsureLoaded(ctx context.Context) error {
	st.mu.Lock()
	done := st.fetched
	st.mu.Unlock()
	if done {
		return nil
	}
	return st.FetchAll(ctx)
}

func (st *Store) failFetch() {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.errMsg = "Failed to load products"
	st.loading = false
}

// Search sets the term and restarts pagination at page 1.
func (st *Store) Search(term string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.searchTerm = term
	st.currentPage = 1
	st.applyFiltersLocked()
}

func (st *Store) Sort(field SortField) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sortField = field
	st.applyFiltersLocked()
}

// ChangePage sets the page without clamping: a page beyond range simply
// derives an empty slice.
func (st *Store) ChangePage(page int) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.currentPage = page
	st.applyFiltersLocked()
}

func (st *Store) SetModalOpen(open bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.isModalOpen = open
	if !open {
		st.selected = nil
	}
}

// SelectByID marks the product as being edited and opens the modal.
// Returns false when the id is not in the authoritative set.
func (st *Store) SelectByID(id int) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	for i := range st.allProducts {
		if st.allProducts[i].ID == id {
			cp := st.allProducts[i]
			st.selected = &cp
			st.isModalOpen = true
			return true
		}
	}
	return false
}

// Create delegates to the service and patches the new record into the
// authoritative set. The modal closes whether it worked or not.
func (st *Store) Create(ctx context.Context, in Input) error {
	st.setLoading(true)
	created, err := st.svc.Create(ctx, in)

	st.mu.Lock()
	defer st.mu.Unlock()
	st.loading = false
	st.isModalOpen = false
	if err != nil {
		st.errMsg = "Failed to create product"
		return err
	}
	st.allProducts = append(st.allProducts, *created)
	st.totalItems++
	st.errMsg = ""
	st.applyFiltersLocked()
	return nil
}

// Update delegates to the service and replaces the record in place. The
// modal closes and the selection clears regardless of outcome.
func (st *Store) Update(ctx context.Context, id int, in Input) error {
	st.setLoading(true)
	updated, err := st.svc.Update(ctx, id, in)

	st.mu.Lock()
	defer st.mu.Unlock()
	st.loading = false
	st.isModalOpen = false
	st.selected = nil
	if err != nil {
		st.errMsg = "Failed to update product"
		return err
	}
	for i := range st.allProducts {
		if st.allProducts[i].ID == id {
			st.allProducts[i] = *updated
			break
		}
	}
	st.errMsg = ""
	st.applyFiltersLocked()
	return nil
}

// Delete removes the record locally. Per the service contract deletion
// always succeeds from the UI's perspective, so the local removal is never
// rolled back.
func (st *Store) Delete(ctx context.Context, id int) error {
	st.setLoading(true)
	err := st.svc.Delete(ctx, id)

	st.mu.Lock()
	defer st.mu.Unlock()
	st.loading = false
	if err != nil {
		st.errMsg = "Failed to delete product"
	}
	kept := st.allProducts[:0]
	for _, p := range st.allProducts {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) < len(st.allProducts) {
		st.totalItems--
	}
	st.allProducts = kept
	st.applyFiltersLocked()
	return err
}

func (st *Store) setLoading(v bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.loading = v
}

// applyFiltersLocked recomputes the derived view. Callers hold st.mu.
func (st *Store) applyFiltersLocked() {
	st.pageSlice, st.totalPages, st.filteredCount = deriveView(
		st.allProducts, st.searchTerm, st.sortField, st.currentPage)
}

// deriveView is the pure projection filter -> stable sort -> page slice.
// Matching is case-insensitive substring on title OR brand; sorting is
// case-insensitive lexicographic ascending with ties keeping filter order.
// Zero filtered items report zero total pages.
func deriveView(all []catalog.Product, term string, field SortField, page int) (slice []catalog.Product, totalPages, filteredCount int) {
	filtered := make([]catalog.Product, 0, len(all))
	if term == "" {
		filtered = append(filtered, all...)
	} else {
		t := strings.ToLower(term)
		for _, p := range all {
			if strings.Contains(strings.ToLower(p.Title), t) ||
				strings.Contains(strings.ToLower(p.Brand), t) {
				filtered = append(filtered, p)
			}
		}
	}

	if field != SortNone {
		sort.SliceStable(filtered, func(i, j int) bool {
			return sortValue(filtered[i], field) < sortValue(filtered[j], field)
		})
	}

	totalPages = (len(filtered) + PageSize - 1) / PageSize

	start := (page - 1) * PageSize
	end := start + PageSize
	if start < 0 || start >= len(filtered) {
		return nil, totalPages, len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}
	out := make([]catalog.Product, end-start)
	copy(out, filtered[start:end])
	return out, totalPages, len(filtered)
}

func sortValue(p catalog.Product, field SortField) string {
	switch field {
	case SortBrand:
		return strings.ToLower(p.Brand)
	default:
		return strings.ToLower(p.Title)
	}
}
