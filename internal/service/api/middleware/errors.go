package middleware

import (
	"fmt"

	apperrors "github.com/darkkaiser/storefront-server/internal/pkg/errors"
	"github.com/darkkaiser/storefront-server/internal/service/api/constants"
	"github.com/darkkaiser/storefront-server/internal/service/api/httputil"
)

var (
	// ErrAdminTokenInvalid 관리자 토큰이 누락되었거나 일치하지 않을 때 반환하는 401 에러입니다.
	ErrAdminTokenInvalid = httputil.NewUnauthorizedError(constants.ErrMsgUnauthorizedAdminToken)

	// ErrAdminDisabled 서버에 관리자 키가 설정되지 않아 관리자 API를 사용할 수 없을 때 반환하는 403 에러입니다.
	ErrAdminDisabled = httputil.NewForbiddenError(constants.ErrMsgForbiddenAdminDisabled)

	// ErrRateLimitExceeded 허용된 요청 빈도를 초과한 클라이언트에게 반환하는 429 에러입니다.
	ErrRateLimitExceeded = httputil.NewTooManyRequestsError(constants.ErrMsgTooManyRequests)
)

// NewErrPanicRecovered 캡처된 패닉 값을 내부 시스템 오류로 래핑하여 새로운 에러를 생성합니다.
func NewErrPanicRecovered(r any) error {
	return apperrors.New(apperrors.Internal, fmt.Sprintf("%v", r))
}
