// Package httputil API 응답 및 에러 생성을 위한 공통 유틸리티를 제공합니다.
package httputil

import (
	"net/http"

	"github.com/darkkaiser/storefront-server/internal/service/api/model/response"
	"github.com/labstack/echo/v4"
)

func newHTTPError(code int, message string) error {
	return echo.NewHTTPError(code, response.ErrorResponse{
		ResultCode: code,
		Message:    message,
	})
}

// NewBadRequestError 400 Bad Request 에러를 생성합니다
func NewBadRequestError(message string) error {
	return newHTTPError(http.StatusBadRequest, message)
}

// NewUnauthorizedError 401 Unauthorized 에러를 생성합니다
func NewUnauthorizedError(message string) error {
	return newHTTPError(http.StatusUnauthorized, message)
}

// NewForbiddenError 403 Forbidden 에러를 생성합니다
func NewForbiddenError(message string) error {
	return newHTTPError(http.StatusForbidden, message)
}

// NewNotFoundError 404 Not Found 에러를 생성합니다
func NewNotFoundError(message string) error {
	return newHTTPError(http.StatusNotFound, message)
}

// NewConflictError 409 Conflict 에러를 생성합니다
func NewConflictError(message string) error {
	return newHTTPError(http.StatusConflict, message)
}

// NewTooManyRequestsError 429 Too Many Requests 에러를 생성합니다
func NewTooManyRequestsError(message string) error {
	return newHTTPError(http.StatusTooManyRequests, message)
}

// NewInternalServerError 500 Internal Server Error 에러를 생성합니다
func NewInternalServerError(message string) error {
	return newHTTPError(http.StatusInternalServerError, message)
}

// NewBadGatewayError 502 Bad Gateway 에러를 생성합니다
func NewBadGatewayError(message string) error {
	return newHTTPError(http.StatusBadGateway, message)
}

// NewServiceUnavailableError 503 Service Unavailable 에러를 생성합니다
func NewServiceUnavailableError(message string) error {
	return newHTTPError(http.StatusServiceUnavailable, message)
}

// NewGatewayTimeoutError 504 Gateway Timeout 에러를 생성합니다
func NewGatewayTimeoutError(message string) error {
	return newHTTPError(http.StatusGatewayTimeout, message)
}

// NewErrorWithCause 지정한 상태 코드의 에러를 생성하고 원인 에러를 내부에 보관합니다.
// 원인 에러는 클라이언트에게 노출되지 않고 로그에만 기록됩니다.
func NewErrorWithCause(code int, message string, cause error) error {
	return echo.NewHTTPError(code, response.ErrorResponse{
		ResultCode: code,
		Message:    message,
	}).WithInternal(cause)
}
