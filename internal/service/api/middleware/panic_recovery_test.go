package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "github.com/darkkaiser/storefront-server/internal/pkg/errors"
	"github.com/darkkaiser/storefront-server/internal/service/api/httputil"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPanicRecovery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload any
	}{
		{name: "문자열 패닉", payload: "치명적인 오류"},
		{name: "에러 패닉", payload: errors.New("boom")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := echo.New()
			e.HTTPErrorHandler = httputil.ErrorHandler
			e.Use(PanicRecovery())
			e.GET("/", func(echo.Context) error { panic(tt.payload) })

			rec := httptest.NewRecorder()
			assert.NotPanics(t, func() {
				e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
			})
			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.Contains(t, rec.Body.String(), `"result_code":500`)
		})
	}
}

func TestPanicRecovery_AbortHandlerPropagates(t *testing.T) {
	t.Parallel()

	e := echo.New()
	e.Use(PanicRecovery())
	e.GET("/", func(echo.Context) error { panic(http.ErrAbortHandler) })

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

func TestNewErrPanicRecovered(t *testing.T) {
	t.Parallel()

	err := NewErrPanicRecovered(42)
	assert.True(t, apperrors.Is(err, apperrors.Internal))

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, "42", appErr.Message())
}
