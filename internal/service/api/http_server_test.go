package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/darkkaiser/storefront-server/internal/service/api/constants"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(cfg HTTPServerConfig) *echo.Echo {
	e := NewHTTPServer(cfg)
	e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })
	e.GET("/panic", func(c echo.Context) error { panic("boom") })
	return e
}

// =============================================================================
// 서버 설정
// =============================================================================

func TestNewHTTPServer_Settings(t *testing.T) {
	t.Parallel()

	e := NewHTTPServer(HTTPServerConfig{Debug: true, AllowOrigins: []string{"*"}})

	assert.True(t, e.Debug)
	assert.True(t, e.HideBanner)
	assert.True(t, e.HidePort)
	assert.Equal(t, constants.DefaultReadHeaderTimeout, e.Server.ReadHeaderTimeout)
	assert.Equal(t, constants.DefaultIdleTimeout, e.Server.IdleTimeout)
	assert.NotNil(t, e.HTTPErrorHandler)
}

// =============================================================================
// 미들웨어 체인
// =============================================================================

func TestNewHTTPServer_Middlewares(t *testing.T) {
	t.Parallel()

	t.Run("공통 응답 헤더", func(t *testing.T) {
		t.Parallel()

		e := newTestServer(HTTPServerConfig{AllowOrigins: []string{"*"}})

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
		assert.Empty(t, rec.Header().Get(echo.HeaderServer))
		assert.Equal(t, "nosniff", rec.Header().Get(echo.HeaderXContentTypeOptions))
	})

	t.Run("CORS Preflight", func(t *testing.T) {
		t.Parallel()

		e := newTestServer(HTTPServerConfig{AllowOrigins: []string{"https://shop.example.com"}})

		req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
		req.Header.Set(echo.HeaderOrigin, "https://shop.example.com")
		req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodGet)
		req.Header.Set(echo.HeaderAccessControlRequestHeaders, constants.XAdminToken)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "https://shop.example.com", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
		assert.Contains(t, rec.Header().Get(echo.HeaderAccessControlAllowHeaders), constants.XAdminToken)
	})

	t.Run("CORS 응답 헤더 노출", func(t *testing.T) {
		t.Parallel()

		e := newTestServer(HTTPServerConfig{AllowOrigins: []string{"*"}})

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(echo.HeaderOrigin, "https://shop.example.com")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Contains(t, rec.Header().Get(echo.HeaderAccessControlExposeHeaders), constants.XCatalogStale)
	})

	t.Run("패닉 복구", func(t *testing.T) {
		t.Parallel()

		e := newTestServer(HTTPServerConfig{AllowOrigins: []string{"*"}})

		rec := httptest.NewRecorder()
		require.NotPanics(t, func() {
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))
		})
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"result_code":500,"message":"내부 서버 오류가 발생했습니다"}`, rec.Body.String())
	})

	t.Run("속도 제한", func(t *testing.T) {
		t.Parallel()

		e := newTestServer(HTTPServerConfig{
			AllowOrigins:       []string{"*"},
			RateLimitPerSecond: 0.001,
			RateLimitBurst:     1,
		})

		first := httptest.NewRecorder()
		e.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.Equal(t, http.StatusOK, first.Code)

		second := httptest.NewRecorder()
		e.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.Equal(t, http.StatusTooManyRequests, second.Code)
		assert.Equal(t, "1", second.Header().Get("Retry-After"))
	})

	t.Run("요청 타임아웃", func(t *testing.T) {
		t.Parallel()

		e := NewHTTPServer(HTTPServerConfig{AllowOrigins: []string{"*"}, RequestTimeout: 20 * time.Millisecond})
		e.GET("/slow", func(c echo.Context) error {
			select {
			case <-c.Request().Context().Done():
			case <-time.After(time.Second):
			}
			return c.String(http.StatusOK, "late")
		})

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/slow", nil))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("존재하지 않는 경로", func(t *testing.T) {
		t.Parallel()

		e := newTestServer(HTTPServerConfig{AllowOrigins: []string{"*"}})

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), constants.ErrMsgNotFound)
	})
}
