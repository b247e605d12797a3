package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/darkkaiser/storefront-server/internal/service/api/constants"
	"github.com/darkkaiser/storefront-server/internal/service/api/httputil"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRequireAdminToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		adminKey string
		token    string
		wantCode int
	}{
		{name: "일치하는 토큰", adminKey: "secret-key", token: "secret-key", wantCode: http.StatusOK},
		{name: "토큰 누락", adminKey: "secret-key", wantCode: http.StatusUnauthorized},
		{name: "토큰 불일치", adminKey: "secret-key", token: "secret-kez", wantCode: http.StatusUnauthorized},
		{name: "관리자 키 미설정", adminKey: "", token: "anything", wantCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := echo.New()
			e.HTTPErrorHandler = httputil.ErrorHandler
			e.GET("/admin", okHandler, RequireAdminToken(tt.adminKey))

			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.token != "" {
				req.Header.Set(constants.XAdminToken, tt.token)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
