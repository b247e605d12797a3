package handler

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/darkkaiser/storefront-server/internal/catalog"
	"github.com/darkkaiser/storefront-server/internal/service/api/constants"
	"github.com/darkkaiser/storefront-server/internal/service/api/httputil"
	"github.com/darkkaiser/storefront-server/internal/service/contract/mocks"
	"github.com/darkkaiser/storefront-server/internal/service/storefront"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testEnv 핸들러 테스트에 필요한 Mock과 Echo 인스턴스를 묶은 구조체입니다.
type testEnv struct {
	products *mocks.MockProductSource
	orders   *mocks.MockOrderSource
	syncer   *mocks.MockCatalogSyncer
	reader   *mocks.MockCatalogReader

	e *echo.Echo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		products: &mocks.MockProductSource{},
		orders:   &mocks.MockOrderSource{},
		syncer:   &mocks.MockCatalogSyncer{},
		reader:   &mocks.MockCatalogReader{},
	}

	h := NewHandler(storefront.NewRegistry(env.products, 16), env.orders, env.syncer, env.reader)

	e := echo.New()
	e.HTTPErrorHandler = httputil.ErrorHandler
	e.GET("/api/v1/products", h.ListProductsHandler)
	e.GET("/api/v1/products/new-arrivals", h.ListNewArrivalsHandler)
	e.GET("/api/v1/products/search", h.SearchProductsHandler)
	e.GET("/api/v1/products/:id", h.GetProductHandler)
	e.GET("/api/v1/categories/:category/products", h.ListCategoryProductsHandler)
	e.GET("/api/v1/facets", h.ListFacetsHandler)
	e.POST("/api/v1/catalog/sync", h.SyncCatalogHandler)
	e.GET("/api/v1/admin/products", h.ListAllProductsHandler)
	e.GET("/api/v1/admin/orders", h.ListOrdersByUserHandler)
	env.e = e

	t.Cleanup(func() {
		env.products.AssertExpectations(t)
		env.orders.AssertExpectations(t)
		env.syncer.AssertExpectations(t)
		env.reader.AssertExpectations(t)
	})

	return env
}

func (env *testEnv) do(method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

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
// 생성자
// =============================================================================

func TestNewHandler_Panics(t *testing.T) {
	t.Parallel()

	registry := storefront.NewRegistry(&mocks.MockProductSource{}, 1)
	orders := &mocks.MockOrderSource{}
	syncer := &mocks.MockCatalogSyncer{}
	reader := &mocks.MockCatalogReader{}

	assert.PanicsWithValue(t, constants.PanicMsgProductSourceRequired, func() { NewHandler(nil, orders, syncer, reader) })
	assert.PanicsWithValue(t, constants.PanicMsgOrderSourceRequired, func() { NewHandler(registry, nil, syncer, reader) })
	assert.PanicsWithValue(t, constants.PanicMsgCatalogSyncerRequired, func() { NewHandler(registry, orders, nil, reader) })
	assert.PanicsWithValue(t, constants.PanicMsgCatalogReaderRequired, func() { NewHandler(registry, orders, syncer, nil) })
	assert.NotPanics(t, func() { NewHandler(registry, orders, syncer, reader) })
}
