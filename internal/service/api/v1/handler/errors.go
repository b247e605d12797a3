package handler

import (
	"errors"
	"net/http"

	apperrors "github.com/darkkaiser/storefront-server/internal/pkg/errors"
	"github.com/darkkaiser/storefront-server/internal/service/api/constants"
	"github.com/darkkaiser/storefront-server/internal/service/api/httputil"
	"github.com/labstack/echo/v4"
)

// NewErrValidationFailed 요청 값의 유효성 검증에 실패했을 때 발생하는 에러를 생성합니다.
func NewErrValidationFailed(msg string) error {
	return httputil.NewBadRequestError(msg)
}

// NewErrInvalidRequest 요청 파라미터를 바인딩할 수 없을 때 발생하는 에러를 생성합니다.
func NewErrInvalidRequest() error {
	return httputil.NewBadRequestError(constants.ErrMsgBadRequest)
}

// NewErrCatalogNotSynced 카탈로그가 아직 한 번도 동기화되지 않았을 때 발생하는 에러를 생성합니다.
func NewErrCatalogNotSynced() error {
	return httputil.NewServiceUnavailableError(constants.ErrMsgCatalogNotSynced)
}

// NewErrProductNotFound 조회한 상품이 없거나 판매 중이 아닐 때 발생하는 에러를 생성합니다.
func NewErrProductNotFound() error {
	return httputil.NewNotFoundError(constants.ErrMsgProductNotFound)
}

// NewErrSyncInProgress 다른 동기화가 진행 중일 때 발생하는 에러를 생성합니다.
func NewErrSyncInProgress() error {
	return httputil.NewConflictError(constants.ErrMsgConflictSyncInProgress)
}

// backendError 백엔드 호출 실패를 HTTP 에러로 변환합니다.
//
// 에러 체인의 가장 안쪽 분류를 기준으로 상태 코드를 정하며, 원인 에러는 응답에 노출하지 않고 로그에만 남깁니다.
func backendError(err error) error {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he
	}

	switch apperrors.UnderlyingType(err) {
	case apperrors.Unavailable:
		return httputil.NewErrorWithCause(http.StatusServiceUnavailable, constants.ErrMsgBackendUnavailable, err)
	case apperrors.Timeout:
		return httputil.NewErrorWithCause(http.StatusGatewayTimeout, constants.ErrMsgBackendTimeout, err)
	case apperrors.Unauthorized, apperrors.Forbidden:
		return httputil.NewErrorWithCause(http.StatusBadGateway, constants.ErrMsgBackendUnauthorized, err)
	case apperrors.NotFound:
		return httputil.NewErrorWithCause(http.StatusNotFound, constants.ErrMsgNotFound, err)
	default:
		return httputil.NewErrorWithCause(http.StatusBadGateway, constants.ErrMsgBadGateway, err)
	}
}

// NewErrPageNotLoaded 페이지에 응답할 데이터가 없을 때 발생하는 에러를 생성합니다.
func NewErrPageNotLoaded() error {
	return httputil.NewServiceUnavailableError(constants.ErrMsgBackendUnavailable)
}
