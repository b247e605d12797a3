package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/darkkaiser/storefront-server/internal/service/api/httputil"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestMaskSensitiveQueryParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		uri  string
		want string
	}{
		{name: "민감 정보 없음", uri: "/api/v1/products?sortBy=name", want: "/api/v1/products?sortBy=name"},
		{name: "관리자 토큰 마스킹", uri: "/api/v1/catalog/sync?admin_token=supersecret", want: "/api/v1/catalog/sync?admin_token=supe%2A%2A%2A"},
		{name: "파싱 불가 URI", uri: "%zz", want: "%zz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, maskSensitiveQueryParams(tt.uri))
		})
	}
}

func TestHTTPLogger_DelegatesErrors(t *testing.T) {
	t.Parallel()

	e := echo.New()
	e.HTTPErrorHandler = httputil.ErrorHandler
	e.Use(HTTPLogger())
	e.GET("/fail", func(echo.Context) error { return errors.New("fail") })
	e.GET("/ok", okHandler)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
