package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/darkkaiser/storefront-server/internal/catalog"
	"github.com/darkkaiser/storefront-server/internal/pkg/version"
	"github.com/darkkaiser/storefront-server/internal/service/api/constants"
	"github.com/darkkaiser/storefront-server/internal/service/api/handler/system"
	systemmodel "github.com/darkkaiser/storefront-server/internal/service/api/model/system"
	"github.com/darkkaiser/storefront-server/internal/service/contract/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// 전역 라우트
// =============================================================================

func TestRegisterRoutes(t *testing.T) {
	t.Parallel()

	notifier := &mocks.MockNotificationHealthChecker{}
	notifier.On("Health").Return(nil)
	reader := &mocks.MockCatalogReader{}
	reader.On("Products").Return([]catalog.Product{{ID: "a"}}, time.Now(), true)

	e := NewHTTPServer(HTTPServerConfig{AllowOrigins: []string{"*"}})
	RegisterRoutes(e, system.NewHandler(notifier, reader, version.Info{Version: "1.0.0"}))

	t.Run("헬스체크", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp systemmodel.HealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, constants.HealthStatusHealthy, resp.Status)
		assert.Contains(t, resp.Dependencies, constants.DependencyCatalogSync)
	})

	t.Run("버전", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/version", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"version":"1.0.0"`)
	})

	t.Run("Swagger 문서", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "/api/v1/products")
		assert.Contains(t, rec.Body.String(), "Storefront Server API")
	})
}
