package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/darkkaiser/storefront-server/internal/service/api/httputil"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func serveFrom(e *echo.Echo, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderXRealIP, ip)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func newRateLimitedEcho(mw echo.MiddlewareFunc) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = httputil.ErrorHandler
	e.Use(mw)
	e.GET("/", okHandler)
	return e
}

// =============================================================================
// 입력 검증
// =============================================================================

func TestRateLimiting_InputValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rps     float64
		burst   int
		wantMsg string
	}{
		{name: "정상 값", rps: 0.5, burst: 1},
		{name: "초당 요청 수 0", rps: 0, burst: 1, wantMsg: "[RateLimiting] requestsPerSecond는 양수여야 합니다"},
		{name: "초당 요청 수 음수", rps: -1, burst: 1, wantMsg: "[RateLimiting] requestsPerSecond는 양수여야 합니다"},
		{name: "버스트 0", rps: 1, burst: 0, wantMsg: "[RateLimiting] burst는 양수여야 합니다"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if tt.wantMsg == "" {
				assert.NotPanics(t, func() { RateLimiting(tt.rps, tt.burst) })
				return
			}
			assert.PanicsWithValue(t, tt.wantMsg, func() { RateLimiting(tt.rps, tt.burst) })
		})
	}
}

// =============================================================================
// 동작
// =============================================================================

func TestRateLimiting_BlocksAfterBurst(t *testing.T) {
	t.Parallel()

	// 토큰이 사실상 다시 채워지지 않도록 매우 낮은 속도를 사용합니다.
	e := newRateLimitedEcho(RateLimiting(0.001, 2))

	assert.Equal(t, http.StatusOK, serveFrom(e, "10.0.0.1").Code)
	assert.Equal(t, http.StatusOK, serveFrom(e, "10.0.0.1").Code)

	rec := serveFrom(e, "10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), `"result_code":429`)

	// 다른 IP는 독립적으로 제한됩니다.
	assert.Equal(t, http.StatusOK, serveFrom(e, "10.0.0.2").Code)
}

func TestIPRateLimiter_ResetsWhenFull(t *testing.T) {
	t.Parallel()

	limiter := newIPRateLimiter(1, 1, 2)

	first := limiter.getLimiter("a")
	assert.Same(t, first, limiter.getLimiter("a"))

	limiter.getLimiter("b")
	assert.Equal(t, 2, limiter.size())

	limiter.getLimiter("c")
	assert.Equal(t, 1, limiter.size(), "한도에 도달하면 초기화 후 새 IP만 남아야 합니다")
	assert.NotSame(t, first, limiter.getLimiter("a"))
}

func TestIPRateLimiter_Concurrent(t *testing.T) {
	t.Parallel()

	limiter := newIPRateLimiter(1000, 1, 0)

	var wg sync.WaitGroup
	results := make([]*rate.Limiter, 50)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = limiter.getLimiter("same-ip")
		}(i)
	}
	wg.Wait()

	require.Equal(t, 1, limiter.size())
	for _, l := range results {
		assert.Same(t, results[0], l)
	}
}
