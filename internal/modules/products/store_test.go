package products

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Luisfp0/online-course-products/internal/catalog"
)

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) List(ctx context.Context, page, limit int) (*catalog.ProductsResponse, error) {
	args := m.Called(ctx, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.ProductsResponse), args.Error(1)
}

func (m *MockCatalogService) Create(ctx context.Context, in Input) (*catalog.Product, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockCatalogService) Update(ctx context.Context, id int, in Input) (*catalog.Product, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockCatalogService) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func sampleProducts(n int) []catalog.Product {
	out := make([]catalog.Product, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, catalog.Product{
			ID:    i,
			Title: fmt.Sprintf("Product %03d", i),
			Brand: fmt.Sprintf("Brand %03d", n-i),
		})
	}
	return out
}

func loadedStore(t *testing.T, items []catalog.Product) (*Store, *MockCatalogService) {
	t.Helper()
	ctx := context.Background()
	svc := new(MockCatalogService)
	svc.On("List", ctx, 1, 1).Return(&catalog.ProductsResponse{Total: len(items)}, nil).Once()
	svc.On("List", ctx, 1, len(items)).Return(&catalog.ProductsResponse{
		Products: items, Total: len(items),
	}, nil).Once()

	st := NewStore(svc)
	require.NoError(t, st.FetchAll(ctx))
	return st, svc
}

func TestStoreFetchAllTwoStep(t *testing.T) {
	st, svc := loadedStore(t, sampleProducts(25))

	snap := st.Snapshot()
	assert.Equal(t, 25, snap.TotalItems)
	assert.Equal(t, 25, snap.FilteredCount)
	assert.Equal(t, 3, snap.TotalPages)
	assert.Equal(t, 1, snap.CurrentPage)
	assert.Len(t, snap.Page, PageSize)
	assert.False(t, snap.Loading)
	assert.Empty(t, snap.Err)
	svc.AssertExpectations(t)
}

func TestStoreEnsureLoadedFetchesOnce(t *testing.T) {
	ctx := context.Background()
	st, svc := loadedStore(t, sampleProducts(3))

	require.NoError(t, st.EnsureLoaded(ctx))
	require.NoError(t, st.EnsureLoaded(ctx))
	svc.AssertNumberOfCalls(t, "List", 2)
}

func TestStoreFetchFailureKeepsPriorData(t *testing.T) {
	ctx := context.Background()
	st, svc := loadedStore(t, sampleProducts(5))

	svc.On("List", ctx, 1, 1).Return(nil, errors.New("timeout")).Once()
	err := st.FetchAll(ctx)
	require.Error(t, err)

	snap := st.Snapshot()
	assert.Equal(t, "Failed to load products", snap.Err)
	assert.False(t, snap.Loading)
	assert.Len(t, snap.Page, 5)
}

func TestStoreSearchFiltersTitleOrBrand(t *testing.T) {
	st, _ := loadedStore(t, []catalog.Product{
		{ID: 1, Title: "iPhone 9", Brand: "Apple"},
		{ID: 2, Title: "Galaxy S10", Brand: "Samsung"},
		{ID: 3, Title: "Pineapple Slicer", Brand: "KitchenCo"},
		{ID: 4, Title: "Charger", Brand: "apple accessories"},
	})

	st.Search("APPLE")

	snap := st.Snapshot()
	assert.Equal(t, 3, snap.FilteredCount)
	ids := make([]int, 0, len(snap.Page))
	for _, p := range snap.Page {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []int{1, 3, 4}, ids)
	assert.Equal(t, 1, snap.CurrentPage)
	assert.Equal(t, 1, snap.TotalPages)
}

func TestStoreSearchResetsPage(t *testing.T) {
	st, _ := loadedStore(t, sampleProducts(25))

	st.ChangePage(3)
	assert.Equal(t, 3, st.Snapshot().CurrentPage)

	st.Search("Product")
	assert.Equal(t, 1, st.Snapshot().CurrentPage)
}

func TestStoreSearchNoMatchZeroPages(t *testing.T) {
	st, _ := loadedStore(t, sampleProducts(25))

	st.Search("nothing matches this")

	snap := st.Snapshot()
	assert.Equal(t, 0, snap.FilteredCount)
	assert.Equal(t, 0, snap.TotalPages)
	assert.Empty(t, snap.Page)
	assert.Equal(t, 25, snap.TotalItems)
}

func TestStoreSortByTitleCaseInsensitive(t *testing.T) {
	st, _ := loadedStore(t, []catalog.Product{
		{ID: 1, Title: "banana"},
		{ID: 2, Title: "Apple"},
		{ID: 3, Title: "cherry"},
	})

	st.Sort(SortTitle)

	snap := st.Snapshot()
	require.Len(t, snap.Page, 3)
	assert.Equal(t, "Apple", snap.Page[0].Title)
	assert.Equal(t, "banana", snap.Page[1].Title)
	assert.Equal(t, "cherry", snap.Page[2].Title)
}

func TestStoreSortByBrandStableTies(t *testing.T) {
	st, _ := loadedStore(t, []catalog.Product{
		{ID: 1, Title: "Z", Brand: "Acme"},
		{ID: 2, Title: "A", Brand: "acme"},
		{ID: 3, Title: "M", Brand: "Aardvark"},
	})

	st.Sort(SortBrand)

	snap := st.Snapshot()
	require.Len(t, snap.Page, 3)
	assert.Equal(t, 3, snap.Page[0].ID)
	// Equal keys keep their pre-sort order.
	assert.Equal(t, 1, snap.Page[1].ID)
	assert.Equal(t, 2, snap.Page[2].ID)
}

func TestStoreChangePageSlices(t *testing.T) {
	st, _ := loadedStore(t, sampleProducts(25))

	st.ChangePage(3)

	snap := st.Snapshot()
	assert.Equal(t, 3, snap.CurrentPage)
	require.Len(t, snap.Page, 7)
	assert.Equal(t, 19, snap.Page[0].ID)
	assert.Equal(t, 25, snap.Page[6].ID)
}

func TestStoreChangePageIdempotent(t *testing.T) {
	st, _ := loadedStore(t, sampleProducts(25))

	st.ChangePage(2)
	first := st.Snapshot()
	st.ChangePage(2)
	second := st.Snapshot()

	assert.Equal(t, first, second)
}

func TestStoreChangePageOutOfRangeIsEmpty(t *testing.T) {
	st, _ := loadedStore(t, sampleProducts(25))

	st.ChangePage(99)

	snap := st.Snapshot()
	assert.Equal(t, 99, snap.CurrentPage)
	assert.Empty(t, snap.Page)
	assert.Equal(t, 3, snap.TotalPages)
}

func TestStoreSelectByID(t *testing.T) {
	st, _ := loadedStore(t, sampleProducts(3))

	require.True(t, st.SelectByID(2))
	snap := st.Snapshot()
	assert.True(t, snap.IsModalOpen)
	require.NotNil(t, snap.Selected)
	assert.Equal(t, 2, snap.Selected.ID)

	assert.False(t, st.SelectByID(999))
}

func TestStoreSetModalClosedClearsSelection(t *testing.T) {
	st, _ := loadedStore(t, sampleProducts(3))
	require.True(t, st.SelectByID(1))

	st.SetModalOpen(false)

	snap := st.Snapshot()
	assert.False(t, snap.IsModalOpen)
	assert.Nil(t, snap.Selected)
}

func TestStoreCreateAppendsLocally(t *testing.T) {
	ctx := context.Background()
	st, svc := loadedStore(t, sampleProducts(3))
	st.SetModalOpen(true)

	in := Input{Title: "New Thing", Brand: "Fresh", Price: 10}
	svc.On("Create", ctx, in).Return(&catalog.Product{ID: 195, Title: "New Thing", Brand: "Fresh"}, nil).Once()

	require.NoError(t, st.Create(ctx, in))

	snap := st.Snapshot()
	assert.False(t, snap.IsModalOpen)
	assert.Equal(t, 4, snap.TotalItems)
	assert.Equal(t, 4, snap.FilteredCount)
	require.Len(t, snap.Page, 4)
	assert.Equal(t, 195, snap.Page[3].ID)
}

func TestStoreCreateFailureSetsError(t *testing.T) {
	ctx := context.Background()
	st, svc := loadedStore(t, sampleProducts(3))
	st.SetModalOpen(true)

	svc.On("Create", ctx, mock.Anything).Return(nil, errors.New("boom")).Once()

	err := st.Create(ctx, Input{Title: "x"})
	require.Error(t, err)

	snap := st.Snapshot()
	assert.Equal(t, "Failed to create product", snap.Err)
	assert.False(t, snap.IsModalOpen)
	assert.Equal(t, 3, snap.TotalItems)
}

func TestStoreUpdateReplacesInPlace(t *testing.T) {
	ctx := context.Background()
	st, svc := loadedStore(t, sampleProducts(3))
	require.True(t, st.SelectByID(2))

	in := Input{Title: "Renamed"}
	svc.On("Update", ctx, 2, in).Return(&catalog.Product{ID: 2, Title: "Renamed"}, nil).Once()

	require.NoError(t, st.Update(ctx, 2, in))

	snap := st.Snapshot()
	assert.False(t, snap.IsModalOpen)
	assert.Nil(t, snap.Selected)
	assert.Equal(t, "Renamed", snap.Page[1].Title)
	assert.Equal(t, 3, snap.TotalItems)
}

func TestStoreDeleteRemovesFromVisibleList(t *testing.T) {
	ctx := context.Background()
	st, svc := loadedStore(t, sampleProducts(3))

	svc.On("Delete", ctx, 2).Return(nil).Once()

	require.NoError(t, st.Delete(ctx, 2))

	snap := st.Snapshot()
	assert.Equal(t, 2, snap.TotalItems)
	require.Len(t, snap.Page, 2)
	assert.Equal(t, 1, snap.Page[0].ID)
	assert.Equal(t, 3, snap.Page[1].ID)
}

func TestStoreSessionCreatedRecordEditableAndDeletable(t *testing.T) {
	ctx := context.Background()
	st, svc := loadedStore(t, sampleProducts(2))

	in := Input{Title: "Ephemeral", Price: 1}
	svc.On("Create", ctx, in).Return(&catalog.Product{ID: 150, Title: "Ephemeral"}, nil).Once()
	require.NoError(t, st.Create(ctx, in))

	require.True(t, st.SelectByID(150))

	edit := Input{Title: "Ephemeral 2"}
	svc.On("Update", ctx, 150, edit).Return(&catalog.Product{ID: 150, Title: "Ephemeral 2"}, nil).Once()
	require.NoError(t, st.Update(ctx, 150, edit))

	svc.On("Delete", ctx, 150).Return(nil).Once()
	require.NoError(t, st.Delete(ctx, 150))

	snap := st.Snapshot()
	assert.Equal(t, 2, snap.TotalItems)
	for _, p := range snap.Page {
		assert.NotEqual(t, 150, p.ID)
	}
	svc.AssertExpectations(t)
}

func TestSortFieldFrom(t *testing.T) {
	assert.Equal(t, SortTitle, SortFieldFrom("title"))
	assert.Equal(t, SortBrand, SortFieldFrom("brand"))
	assert.Equal(t, SortNone, SortFieldFrom(""))
	assert.Equal(t, SortNone, SortFieldFrom("price"))
}
