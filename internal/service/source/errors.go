package source

import (
	"fmt"

	apperrors "github.com/darkkaiser/storefront-server/internal/pkg/errors"
)

var (
	// errResponseBodyTooLarge 응답 본문 크기 초과 에러의 공통 원인입니다. errors.Is로 판별할 수 있습니다.
	errResponseBodyTooLarge = apperrors.New(apperrors.InvalidInput, "응답 본문의 크기가 허용된 제한을 초과했습니다")

	// ErrMaxRetriesExceeded 재시도 횟수를 모두 소진했을 때 반환되는 에러의 원인입니다.
	ErrMaxRetriesExceeded = apperrors.New(apperrors.Unavailable, "최대 재시도 횟수를 초과했습니다")

	// ErrEmptyProductID 상품 식별자 없이 단건 조회를 요청했을 때 반환됩니다.
	ErrEmptyProductID = apperrors.New(apperrors.InvalidInput, "상품 ID는 비워둘 수 없습니다")
)

func newErrResponseBodyTooLarge(limit int64) error {
	return apperrors.Wrap(errResponseBodyTooLarge, apperrors.InvalidInput, fmt.Sprintf("응답 본문 읽기 중단: 제한 크기(%d bytes)를 초과했습니다", limit))
}

func newErrResponseBodyTooLargeByContentLength(contentLength, limit int64) error {
	return apperrors.Wrap(errResponseBodyTooLarge, apperrors.InvalidInput, fmt.Sprintf("응답 거부: Content-Length(%d bytes)가 제한 크기(%d bytes)를 초과합니다", contentLength, limit))
}

func newErrMaxRetriesExceeded(lastErr error) error {
	if lastErr == nil {
		return ErrMaxRetriesExceeded
	}
	return apperrors.Wrap(lastErr, apperrors.Unavailable, ErrMaxRetriesExceeded.Error())
}

func newErrGetBodyFailed(err error) error {
	return apperrors.Wrap(err, apperrors.Internal, "재시도 중단: 요청 본문을 재생성할 수 없습니다")
}

func newErrRequestFailed(err error, method, url string) error {
	return apperrors.Wrap(err, apperrors.Unavailable, fmt.Sprintf("백엔드 요청(%s %s) 전송 중 에러가 발생했습니다", method, url))
}

func newErrResponseDecodeFailed(err error, url string) error {
	return apperrors.Wrap(err, apperrors.ParsingFailed, fmt.Sprintf("백엔드 응답(%s) 처리에 실패했습니다", url))
}

func newErrSessionUnavailable(err error) error {
	return apperrors.Wrap(err, apperrors.Unauthorized, "세션 토큰을 가져오지 못했습니다")
}
