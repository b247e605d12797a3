package source

import (
	"fmt"
	"io"
	"net/http"

	apperrors "github.com/darkkaiser/storefront-server/internal/pkg/errors"
)

// maxBodySnippetBytes 에러 메시지에 포함할 응답 본문의 최대 크기
const maxBodySnippetBytes = 1024

// HTTPStatusError 백엔드가 2xx 이외의 상태 코드로 응답했을 때의 상세 정보입니다.
type HTTPStatusError struct {
	StatusCode int
	Status     string

	// URL 민감 정보가 가려진 요청 URL
	URL string

	Header      http.Header
	BodySnippet string

	Cause error
}

func (e *HTTPStatusError) Error() string {
	msg := fmt.Sprintf("HTTP %d (%s)", e.StatusCode, e.Status)
	if e.URL != "" {
		msg += fmt.Sprintf(" URL: %s", e.URL)
	}
	if e.BodySnippet != "" {
		msg += fmt.Sprintf(", Body: %s", e.BodySnippet)
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(": %v", e.Cause)
	}
	return msg
}

func (e *HTTPStatusError) Unwrap() error {
	return e.Cause
}

// errorTypeForStatus 상태 코드를 애플리케이션 에러 타입으로 변환합니다.
func errorTypeForStatus(statusCode int) apperrors.ErrorType {
	switch {
	case statusCode == http.StatusUnauthorized:
		return apperrors.Unauthorized
	case statusCode == http.StatusForbidden:
		return apperrors.Forbidden
	case statusCode == http.StatusNotFound:
		return apperrors.NotFound
	case statusCode == http.StatusConflict:
		return apperrors.Conflict
	case statusCode == http.StatusRequestTimeout || statusCode == http.StatusGatewayTimeout:
		return apperrors.Timeout
	case statusCode == http.StatusTooManyRequests || statusCode >= 500:
		return apperrors.Unavailable
	case statusCode >= 400:
		return apperrors.InvalidInput
	default:
		return apperrors.ExecutionFailed
	}
}

// checkResponseStatus 2xx 응답이면 nil을, 그 외에는 HTTPStatusError를 감싼 AppError를 반환합니다.
// 에러를 반환하는 경우 응답 본문은 호출자가 닫아야 합니다.
func checkResponseStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var snippet string
	if resp.Body != nil {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodySnippetBytes))
		snippet = string(b)
	}

	statusErr := &HTTPStatusError{
		StatusCode:  resp.StatusCode,
		Status:      resp.Status,
		Header:      redactHeaders(resp.Header),
		BodySnippet: snippet,
	}
	if resp.Request != nil {
		statusErr.URL = RedactURL(resp.Request.URL)
	}

	return apperrors.Wrap(statusErr, errorTypeForStatus(resp.StatusCode), fmt.Sprintf("백엔드 요청이 실패했습니다. 상태 코드: %d", resp.StatusCode))
}
