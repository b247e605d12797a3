package middleware

import (
	"crypto/subtle"

	"github.com/darkkaiser/storefront-server/internal/service/api/constants"
	applog "github.com/darkkaiser/storefront-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// RequireAdminToken 관리자 전용 엔드포인트를 보호하는 미들웨어를 반환합니다.
//
// X-Admin-Token 헤더 값이 adminKey와 일치해야 요청이 통과됩니다.
// adminKey가 비어 있으면 관리자 API 자체가 비활성화된 것으로 보고 403으로 응답합니다.
func RequireAdminToken(adminKey string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if adminKey == "" {
				return ErrAdminDisabled
			}

			token := c.Request().Header.Get(constants.XAdminToken)
			if subtle.ConstantTimeCompare([]byte(token), []byte(adminKey)) != 1 {
				applog.WithComponentAndFields(constants.ComponentMiddlewareAdminAuth, applog.Fields{
					"remote_ip":   c.RealIP(),
					"path":        c.Request().URL.Path,
					"token_given": token != "",
				}).Warn("관리자 인증 실패")

				return ErrAdminTokenInvalid
			}

			return next(c)
		}
	}
}
