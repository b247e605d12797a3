package middleware

import (
	"sync"

	"github.com/darkkaiser/storefront-server/internal/service/api/constants"
	applog "github.com/darkkaiser/storefront-server/pkg/log"
	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// ipRateLimiter IP 주소별로 독립적인 Token Bucket Limiter를 관리합니다.
//
// 보관 중인 Limiter가 maxIPs개에 도달하면 전체를 비우고 다시 채웁니다.
// 비워진 IP는 버킷이 가득 찬 상태로 다시 시작합니다.
type ipRateLimiter struct {
	mu       sync.RWMutex
	limiters map[string]*rate.Limiter

	rate   rate.Limit
	burst  int
	maxIPs int
}

func newIPRateLimiter(requestsPerSecond float64, burst, maxIPs int) *ipRateLimiter {
	return &ipRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Limit(requestsPerSecond),
		burst:    burst,
		maxIPs:   maxIPs,
	}
}

// getLimiter 특정 IP 주소에 대한 Limiter를 반환하며, 없으면 새로 생성합니다.
func (i *ipRateLimiter) getLimiter(ip string) *rate.Limiter {
	i.mu.RLock()
	limiter, exists := i.limiters[ip]
	i.mu.RUnlock()

	if exists {
		return limiter
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	// Double-check: 다른 고루틴이 이미 생성했을 수 있습니다.
	if limiter, exists = i.limiters[ip]; exists {
		return limiter
	}

	if i.maxIPs > 0 && len(i.limiters) >= i.maxIPs {
		applog.WithComponentAndFields(constants.ComponentMiddlewareRateLimit, applog.Fields{
			"tracked_ips": len(i.limiters),
		}).Info("IP별 Rate Limiter 보관 개수가 한도에 도달하여 초기화합니다")

		i.limiters = make(map[string]*rate.Limiter)
	}

	limiter = rate.NewLimiter(i.rate, i.burst)
	i.limiters[ip] = limiter

	return limiter
}

func (i *ipRateLimiter) size() int {
	i.mu.RLock()
	defer i.mu.RUnlock()

	return len(i.limiters)
}

// RateLimiting IP 기반 Rate Limiting 미들웨어를 반환합니다.
//
// 제한을 초과한 요청에는 Retry-After 헤더와 함께 429 Too Many Requests로 응답합니다.
// requestsPerSecond 또는 burst가 0 이하이면 panic이 발생합니다.
func RateLimiting(requestsPerSecond float64, burst int) echo.MiddlewareFunc {
	return rateLimiting(newIPRateLimiter(requestsPerSecond, burst, constants.DefaultRateLimiterMaxIPs), requestsPerSecond, burst)
}

func rateLimiting(limiter *ipRateLimiter, requestsPerSecond float64, burst int) echo.MiddlewareFunc {
	if requestsPerSecond <= 0 {
		panic("[RateLimiting] requestsPerSecond는 양수여야 합니다")
	}
	if burst <= 0 {
		panic("[RateLimiting] burst는 양수여야 합니다")
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()

			if !limiter.getLimiter(ip).Allow() {
				applog.WithComponentAndFields(constants.ComponentMiddlewareRateLimit, applog.Fields{
					"remote_ip": ip,
					"path":      c.Request().URL.Path,
					"method":    c.Request().Method,
				}).Warn("Rate limit 초과")

				c.Response().Header().Set("Retry-After", "1")

				return ErrRateLimitExceeded
			}

			return next(c)
		}
	}
}
