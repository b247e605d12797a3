package source

import (
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/darkkaiser/storefront-server/internal/pkg/version"
)

// component 백엔드 클라이언트 로깅용 컴포넌트 이름
const component = "source.client"

// Fetcher HTTP 요청을 수행하는 핵심 인터페이스입니다.
//
// 재시도, 응답 크기 제한, 로깅 등의 기능을 데코레이터로 조합할 수 있도록 설계되었습니다.
//
// 구현 시 주의사항:
//   - 반환된 응답 객체의 Body는 반드시 호출자가 닫아야 합니다.
//   - Context 취소 시 즉시 요청을 중단하고 적절한 에러를 반환해야 합니다.
type Fetcher interface {
	Do(req *http.Request) (*http.Response, error)
}

// FetcherFunc 일반 함수를 Fetcher로 사용할 수 있게 해주는 어댑터입니다.
type FetcherFunc func(req *http.Request) (*http.Response, error)

// Do f(req)를 호출합니다.
func (f FetcherFunc) Do(req *http.Request) (*http.Response, error) {
	return f(req)
}

// HTTPFetcher 타임아웃과 기본 User-Agent가 설정된 HTTP 클라이언트 구현체입니다.
type HTTPFetcher struct {
	client *http.Client

	userAgent string
}

var _ Fetcher = (*HTTPFetcher)(nil)

// NewHTTPFetcher 지정된 타임아웃을 사용하는 HTTPFetcher를 생성합니다.
// transport가 nil이면 http.DefaultTransport를 사용합니다.
func NewHTTPFetcher(timeout time.Duration, transport http.RoundTripper) *HTTPFetcher {
	return &HTTPFetcher{
		client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},

		userAgent: "storefront-server/" + version.Get().Version,
	}
}

// Do 요청을 실행합니다. User-Agent 헤더가 없으면 기본값을 추가합니다.
func (h *HTTPFetcher) Do(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", h.userAgent)
	}
	return h.client.Do(req)
}

// NewFetcherChain 백엔드 클라이언트가 사용하는 표준 데코레이터 체인을 구성합니다.
//
// 요청은 Logging → Retry → MaxBytes → HTTP 순으로 전달됩니다. 재시도마다 응답 크기 제한이 새로 적용되고
// 로그에는 재시도를 모두 포함한 최종 결과가 한 번 기록됩니다.
func NewFetcherChain(base Fetcher, maxRetries int, retryDelay time.Duration, maxBodyBytes int64) Fetcher {
	var f Fetcher = base
	f = NewMaxBytesFetcher(f, maxBodyBytes)
	f = NewRetryFetcher(f, maxRetries, retryDelay, 0)
	f = NewLoggingFetcher(f)
	return f
}

const maxDrainBytes = 64 * 1024

var drainBufPool = sync.Pool{
	New: func() any {
		b := make([]byte, 32*1024)
		return &b
	},
}

// drainAndCloseBody 응답 본문을 일정 크기까지 읽어 버린 뒤 닫습니다.
// Keep-Alive 연결을 재사용할 수 있도록, 재시도 전이나 에러 반환 전에 호출합니다.
func drainAndCloseBody(body io.ReadCloser) {
	if body == nil {
		return
	}
	defer body.Close()

	bufPtr := drainBufPool.Get().(*[]byte)
	defer drainBufPool.Put(bufPtr)

	_, _ = io.CopyBuffer(io.Discard, io.LimitReader(body, maxDrainBytes), *bufPtr)
}
