package storefront

import (
	"context"
	"sync"
	"testing"

	"github.com/darkkaiser/storefront-server/internal/catalog"
	apperrors "github.com/darkkaiser/storefront-server/internal/pkg/errors"
	"github.com/darkkaiser/storefront-server/internal/service/contract/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func product(id, category string, price float64, active, newArrival bool) catalog.Product {
	return catalog.Product{ID: id, Name: "Product " + id, Category: category, Price: price, IsActive: active, IsNewArrival: newArrival}
}

func ids(products []catalog.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

var fixture = []catalog.Product{
	product("a", "Bags", 30, true, false),
	product("b", "Shoes", 10, true, true),
	product("c", "Bags", 20, false, true),
	product("d", "Bags", 50, true, true),
}

// =============================================================================
// 어댑터
// =============================================================================

func TestAdapters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		adapter     Adapter
		setup       func(m *mocks.MockProductSource)
		wantIDs     []string
		wantFacets  map[string]int
		wantKey     string
		wantNoCalls bool
	}{
		{
			name:       "전체 상품(일반 사용자)",
			adapter:    AllProducts(false),
			setup:      func(m *mocks.MockProductSource) { m.On("ListActive", mock.Anything).Return(fixture, nil) },
			wantIDs:    []string{"b", "a", "d"},
			wantFacets: map[string]int{"Bags": 2, "Shoes": 1},
			wantKey:    "all-products",
		},
		{
			name:       "전체 상품(관리자)",
			adapter:    AllProducts(true),
			setup:      func(m *mocks.MockProductSource) { m.On("ListAll", mock.Anything).Return(fixture, nil) },
			wantIDs:    []string{"b", "c", "a", "d"},
			wantFacets: map[string]int{"Bags": 3, "Shoes": 1},
			wantKey:    "all-products:admin",
		},
		{
			name:       "카테고리",
			adapter:    Category(" Bags "),
			setup:      func(m *mocks.MockProductSource) { m.On("ListActive", mock.Anything).Return(fixture, nil) },
			wantIDs:    []string{"a", "d"},
			wantFacets: map[string]int{},
			wantKey:    "category:Bags",
		},
		{
			name:       "신상품",
			adapter:    NewArrivals(),
			setup:      func(m *mocks.MockProductSource) { m.On("ListActive", mock.Anything).Return(fixture, nil) },
			wantIDs:    []string{"b", "d"},
			wantFacets: map[string]int{"Bags": 1, "Shoes": 1},
			wantKey:    "new-arrivals",
		},
		{
			name:       "검색",
			adapter:    Search("bag"),
			setup:      func(m *mocks.MockProductSource) { m.On("SearchByName", mock.Anything, "bag").Return(fixture[:1], nil) },
			wantIDs:    []string{"a"},
			wantFacets: map[string]int{"Bags": 1},
			wantKey:    "search:bag",
		},
		{
			name:        "빈 검색어",
			adapter:     Search("  "),
			setup:       func(*mocks.MockProductSource) {},
			wantIDs:     []string{},
			wantFacets:  map[string]int{},
			wantKey:     "search",
			wantNoCalls: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := &mocks.MockProductSource{}
			tt.setup(src)

			page := NewPage(src, tt.adapter)
			require.NoError(t, page.Refresh(context.Background()))

			view := page.View(catalog.NewFilterState().WithSortBy(catalog.SortByPriceLow))
			assert.Equal(t, tt.wantIDs, ids(view.Items))
			assert.Equal(t, tt.wantFacets, view.FacetCounts)
			assert.Equal(t, tt.wantKey, tt.adapter.Key())

			src.AssertExpectations(t)
			if tt.wantNoCalls {
				src.AssertNotCalled(t, "SearchByName", mock.Anything, mock.Anything)
			}
		})
	}
}

// =============================================================================
// 세대 토큰
// =============================================================================

func TestPage_DiscardsStaleResponse(t *testing.T) {
	t.Parallel()

	src := &mocks.MockProductSource{}
	src.On("ListActive", mock.Anything).Return(fixture, nil).Once()
	src.On("ListActive", mock.Anything).Return(fixture[:1], nil).Once()

	page := NewPage(src, AllProducts(false))

	older := page.NextGeneration()
	newer := page.NextGeneration()

	require.NoError(t, page.Load(context.Background(), newer))
	assert.Equal(t, []string{"a", "b", "d"}, ids(page.Products()))

	// 새 세대의 응답이 이미 반영된 뒤에 도착한 이전 세대의 응답은 폐기됩니다.
	err := page.Load(context.Background(), older)
	assert.ErrorIs(t, err, ErrStaleResponse)
	assert.True(t, apperrors.Is(err, apperrors.Conflict))
	assert.Equal(t, []string{"a", "b", "d"}, ids(page.Products()))
}

func TestPage_AcceptsOlderResponseWhileNewerInFlight(t *testing.T) {
	t.Parallel()

	src := &mocks.MockProductSource{}
	src.On("ListActive", mock.Anything).Return(fixture[:1], nil).Once()
	src.On("ListActive", mock.Anything).Return(fixture, nil).Once()

	page := NewPage(src, AllProducts(false))

	older := page.NextGeneration()
	newer := page.NextGeneration()

	// 새 세대가 발급만 된 상태라면 먼저 도착한 이전 세대의 응답도 반영됩니다.
	require.NoError(t, page.Load(context.Background(), older))
	assert.True(t, page.Loaded())
	assert.Equal(t, []string{"a"}, ids(page.Products()))

	require.NoError(t, page.Load(context.Background(), newer))
	assert.Equal(t, []string{"a", "b", "d"}, ids(page.Products()))
}

func TestPage_OverlappingRefreshes_FirstFinisherIsServed(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	started := make(chan struct{})

	// 두 번째 요청이 먼저 백엔드를 호출하고 대기합니다.
	src := &mocks.MockProductSource{}
	src.On("ListActive", mock.Anything).Run(func(mock.Arguments) {
		close(started)
		<-release
	}).Return(fixture, nil).Once()
	src.On("ListActive", mock.Anything).Return(fixture[:1], nil).Once()

	page := NewPage(src, AllProducts(false))

	// 첫 번째 요청의 세대를 먼저 발급하고, 두 번째 요청이 백엔드에서 대기하는 동안 첫 번째 로드를 완료합니다.
	first := page.NextGeneration()

	var wg sync.WaitGroup
	var secondErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		secondErr = page.Refresh(context.Background())
	}()
	<-started

	require.NoError(t, page.Load(context.Background(), first))
	assert.True(t, page.Loaded(), "백엔드가 데이터를 반환한 요청은 응답을 받아야 합니다")
	assert.Equal(t, []string{"a"}, ids(page.Products()))

	close(release)
	wg.Wait()

	require.NoError(t, secondErr)
	assert.Equal(t, []string{"a", "b", "d"}, ids(page.Products()))
}

func TestPage_StaleResponseNeverReplacesNewerData(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	started := make(chan struct{})

	src := &mocks.MockProductSource{}
	src.On("ListActive", mock.Anything).Run(func(mock.Arguments) {
		close(started)
		<-release
	}).Return(fixture[:1], nil).Once()
	src.On("ListActive", mock.Anything).Return(fixture, nil).Once()

	page := NewPage(src, AllProducts(false))

	var wg sync.WaitGroup
	var slowErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		slowErr = page.Refresh(context.Background())
	}()

	<-started
	require.NoError(t, page.Refresh(context.Background()))
	close(release)
	wg.Wait()

	assert.ErrorIs(t, slowErr, ErrStaleResponse)
	assert.Equal(t, []string{"a", "b", "d"}, ids(page.Products()), "늦게 도착한 이전 응답이 최신 데이터를 덮어쓰면 안 됩니다")
}

func TestPage_FetchErrorKeepsData(t *testing.T) {
	t.Parallel()

	src := &mocks.MockProductSource{}
	src.On("ListActive", mock.Anything).Return(fixture, nil).Once()
	src.On("ListActive", mock.Anything).Return(nil, apperrors.New(apperrors.Unavailable, "down")).Once()

	page := NewPage(src, NewArrivals())
	require.NoError(t, page.Refresh(context.Background()))
	loadedAt := page.LoadedAt()

	err := page.Refresh(context.Background())
	assert.True(t, apperrors.Is(err, apperrors.Unavailable))
	assert.Equal(t, []string{"b", "d"}, ids(page.Products()))
	assert.Equal(t, loadedAt, page.LoadedAt())
}

func TestPage_ViewUsesFullCollectionForFacets(t *testing.T) {
	t.Parallel()

	src := &mocks.MockProductSource{}
	src.On("ListActive", mock.Anything).Return(fixture, nil)

	page := NewPage(src, AllProducts(false))
	require.NoError(t, page.Refresh(context.Background()))

	view := page.View(catalog.NewFilterState().WithCategories("Shoes"))
	assert.Equal(t, []string{"b"}, ids(view.Items))
	assert.Equal(t, map[string]int{"Bags": 2, "Shoes": 1}, view.FacetCounts)

	bounds, ok := page.PriceBounds()
	require.True(t, ok)
	assert.Equal(t, catalog.PriceRange{Min: 10, Max: 50}, bounds)
}

// =============================================================================
// Registry
// =============================================================================

func TestRegistry(t *testing.T) {
	t.Parallel()

	src := &mocks.MockProductSource{}
	r := NewRegistry(src, 2)

	assert.Same(t, r.Page(AllProducts(false)), r.Page(AllProducts(false)))
	assert.NotSame(t, r.Page(AllProducts(false)), r.Page(AllProducts(true)))
	assert.NotSame(t, r.Page(Search("bag")), r.Page(Search("bag")), "검색 페이지는 보관하지 않습니다")
	assert.Equal(t, 2, r.Len())

	// 상한 초과 시 보관하지 않는 페이지를 반환합니다.
	assert.NotSame(t, r.Page(Category("Bags")), r.Page(Category("Bags")))
	assert.Equal(t, 2, r.Len())
}
