package source

import (
	"context"
	"crypto/x509"
	"errors"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	applog "github.com/darkkaiser/storefront-server/pkg/log"
)

const (
	minAllowedRetries = 0
	maxAllowedRetries = 10

	defaultMinRetryDelay = 1 * time.Second
	defaultMaxRetryDelay = 30 * time.Second
)

// RetryFetcher 일시적인 오류에 대해 지수 백오프(Exponential Backoff)와 지터(Jitter)로 재시도하는 Fetcher 데코레이터입니다.
//
// 재시도 대상:
//   - 네트워크 오류 (연결 거부, 타임아웃 등). 단, 인증서 오류와 잘못된 URL은 제외
//   - 408, 429, 5xx 응답. 단, 501/505/511은 영구적인 오류로 보고 제외
//
// 멱등성이 보장되지 않는 메서드(POST 등)와 본문을 재생성할 수 없는 요청은 재시도하지 않습니다.
// 재시도 횟수를 모두 소진하면 마지막 응답을 그대로 반환하여 호출자가 상태 코드를 해석하도록 합니다.
type RetryFetcher struct {
	delegate Fetcher

	maxRetries int

	minRetryDelay time.Duration
	maxRetryDelay time.Duration
}

var _ Fetcher = (*RetryFetcher)(nil)

// NewRetryFetcher 재시도 정책이 적용된 Fetcher를 생성합니다.
// maxRetries는 0~10 범위로 보정되며, 지연 시간이 0 이하이면 기본값(1초, 30초)을 사용합니다.
func NewRetryFetcher(delegate Fetcher, maxRetries int, minRetryDelay, maxRetryDelay time.Duration) *RetryFetcher {
	maxRetries = min(max(maxRetries, minAllowedRetries), maxAllowedRetries)

	if minRetryDelay <= 0 {
		minRetryDelay = defaultMinRetryDelay
	}
	if maxRetryDelay <= 0 {
		maxRetryDelay = defaultMaxRetryDelay
	}
	if maxRetryDelay < minRetryDelay {
		maxRetryDelay = minRetryDelay
	}

	return &RetryFetcher{
		delegate:      delegate,
		maxRetries:    maxRetries,
		minRetryDelay: minRetryDelay,
		maxRetryDelay: maxRetryDelay,
	}
}

func (f *RetryFetcher) Do(req *http.Request) (*http.Response, error) {
	effectiveMaxRetries := f.maxRetries
	if !isIdempotentMethod(req.Method) {
		effectiveMaxRetries = 0
	}
	if req.Body != nil && req.GetBody == nil && effectiveMaxRetries > 0 {
		applog.WithComponentAndFields(component, applog.Fields{
			"url":    RedactURL(req.URL),
			"method": req.Method,
		}).Warn("재시도 비활성화: 요청 본문 재생성 불가 (GetBody nil)")

		effectiveMaxRetries = 0
	}

	var lastErr error
	var lastResp *http.Response

	for attempt := 0; attempt <= effectiveMaxRetries; attempt++ {
		if attempt > 0 {
			delay := f.backoff(attempt, lastResp)

			fields := applog.Fields{
				"url":         RedactURL(req.URL),
				"retry":       attempt,
				"max_retries": effectiveMaxRetries,
				"delay":       delay.String(),
			}
			if lastErr != nil {
				fields["error"] = lastErr.Error()
			}
			if lastResp != nil {
				fields["status_code"] = lastResp.StatusCode
				drainAndCloseBody(lastResp.Body)
				lastResp = nil
			}
			applog.WithComponentAndFields(component, fields).Warn("재시도 대기 중: 일시적 오류로 인해 요청 재시도를 준비합니다")

			timer := time.NewTimer(delay)
			select {
			case <-req.Context().Done():
				timer.Stop()
				return nil, req.Context().Err()
			case <-timer.C:
			}

			if req.GetBody != nil {
				body, err := req.GetBody()
				if err != nil {
					return nil, newErrGetBodyFailed(err)
				}
				req = req.Clone(req.Context())
				req.Body = body
			}
		}

		resp, err := f.delegate.Do(req)
		if err != nil {
			if resp != nil {
				drainAndCloseBody(resp.Body)
			}
			if req.Context().Err() != nil || !isRetriable(err) {
				return nil, err
			}

			lastErr, lastResp = err, nil
			continue
		}

		if !shouldRetryStatus(resp.StatusCode) || attempt == effectiveMaxRetries {
			return resp, nil
		}

		lastErr, lastResp = nil, resp
	}

	return nil, newErrMaxRetriesExceeded(lastErr)
}

// backoff attempt번째 재시도 전의 대기 시간을 계산합니다.
// 서버가 Retry-After 헤더로 대기 시간을 명시하면 최대 지연 시간 범위 안에서 이를 따릅니다.
func (f *RetryFetcher) backoff(attempt int, lastResp *http.Response) time.Duration {
	if lastResp != nil {
		if d, ok := parseRetryAfter(lastResp.Header.Get("Retry-After")); ok {
			return min(d, f.maxRetryDelay)
		}
	}

	delay := min(f.minRetryDelay*time.Duration(1<<(attempt-1)), f.maxRetryDelay)

	// Full Jitter: [minRetryDelay, delay] 구간에서 무작위 선택
	if span := delay - f.minRetryDelay; span > 0 {
		delay = f.minRetryDelay + time.Duration(rand.Int64N(int64(span)+1))
	}
	return delay
}

func shouldRetryStatus(statusCode int) bool {
	switch statusCode {
	case http.StatusRequestTimeout, http.StatusTooManyRequests:
		return true
	case http.StatusNotImplemented, http.StatusHTTPVersionNotSupported, http.StatusNetworkAuthenticationRequired:
		return false
	}
	return statusCode >= 500
}

func isRetriable(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		msg := urlErr.Err.Error()
		if strings.Contains(msg, "stopped after") || strings.Contains(msg, "invalid control character") ||
			strings.Contains(urlErr.Error(), "unsupported protocol scheme") {
			return false
		}
	}

	var hostnameErr x509.HostnameError
	var unknownAuthorityErr x509.UnknownAuthorityError
	var certInvalidErr x509.CertificateInvalidError
	if errors.As(err, &hostnameErr) || errors.As(err, &unknownAuthorityErr) || errors.As(err, &certInvalidErr) {
		return false
	}

	if errors.Is(err, errResponseBodyTooLarge) {
		return false
	}

	return true
}

func isIdempotentMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace, http.MethodPut, http.MethodDelete:
		return true
	default:
		return false
	}
}

// parseRetryAfter Retry-After 헤더 값(초 단위 정수 또는 HTTP 날짜)을 대기 시간으로 변환합니다.
func parseRetryAfter(value string) (time.Duration, bool) {
	if value == "" {
		return 0, false
	}

	if seconds, err := strconv.Atoi(strings.TrimSpace(value)); err == nil && seconds >= 0 {
		return time.Duration(seconds) * time.Second, true
	}

	if date, err := http.ParseTime(value); err == nil {
		return max(time.Until(date), 0), true
	}

	return 0, false
}
