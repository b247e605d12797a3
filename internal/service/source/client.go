// Package source 스토어프론트 REST 백엔드에서 상품과 주문 데이터를 가져오는 클라이언트를 제공합니다.
//
// 모든 요청은 Fetcher 데코레이터 체인(로깅, 재시도, 응답 크기 제한)을 거치며, 인증 토큰은 주입된
// contract.SessionProvider에서만 얻습니다. 응답은 catalog 패키지의 정규화 함수로 변환되어 반환됩니다.
package source

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/darkkaiser/storefront-server/internal/catalog"
	"github.com/darkkaiser/storefront-server/internal/config"
	apperrors "github.com/darkkaiser/storefront-server/internal/pkg/errors"
	"github.com/darkkaiser/storefront-server/internal/service/contract"
	applog "github.com/darkkaiser/storefront-server/pkg/log"
	"github.com/tidwall/gjson"
	"golang.org/x/net/html/charset"
)

// 백엔드 API 경로
const (
	pathProductsAll    = "/products/all"
	pathProductsActive = "/products/active"
	pathSearchByName   = "/products/search-by-name"
	pathProduct        = "/products/"
	pathOrdersAll      = "/orders/all-orders"
)

// Client 스토어프론트 백엔드 클라이언트입니다.
type Client struct {
	baseURL string

	fetcher Fetcher

	// session 일반 사용자 권한 요청에 사용할 세션
	session contract.SessionProvider

	// adminSession 전체 상품 및 주문 조회처럼 관리자 권한이 필요한 요청에 사용할 세션
	adminSession contract.SessionProvider
}

var (
	_ contract.ProductSource = (*Client)(nil)
	_ contract.OrderSource   = (*Client)(nil)
)

// NewClient 백엔드 클라이언트를 생성합니다. session이나 adminSession이 nil이면 익명으로 요청합니다.
func NewClient(baseURL string, fetcher Fetcher, session, adminSession contract.SessionProvider) *Client {
	if session == nil {
		session = NewStaticSessionProvider("")
	}
	if adminSession == nil {
		adminSession = NewStaticSessionProvider("")
	}

	return &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		fetcher:      fetcher,
		session:      session,
		adminSession: adminSession,
	}
}

// NewClientFromConfig 애플리케이션 설정으로부터 표준 Fetcher 체인과 세션을 구성한 클라이언트를 생성합니다.
func NewClientFromConfig(cfg config.BackendConfig) *Client {
	fetcher := NewFetcherChain(NewHTTPFetcher(cfg.Timeout, nil), cfg.MaxRetries, cfg.RetryDelay, cfg.MaxBodyBytes)

	return NewClient(
		cfg.BaseURL,
		fetcher,
		NewSessionProvider(cfg.Token, cfg.TokenEnv),
		NewSessionProvider(cfg.Admin.Token, cfg.Admin.TokenEnv),
	)
}

// ListAll 비활성 상품을 포함한 전체 상품을 조회합니다.
func (c *Client) ListAll(ctx context.Context) ([]catalog.Product, error) {
	data, err := c.get(ctx, pathProductsAll, c.adminSession)
	if err != nil {
		return nil, err
	}
	return catalog.Normalize(data)
}

// ListActive 판매 중인 상품만 조회합니다.
func (c *Client) ListActive(ctx context.Context) ([]catalog.Product, error) {
	data, err := c.get(ctx, pathProductsActive, c.session)
	if err != nil {
		return nil, err
	}
	return catalog.Normalize(data)
}

// SearchByName 상품 이름으로 검색합니다.
//
// 응답은 {success, data, message} 형태이며, success가 false이거나 백엔드가 404로 응답하면
// 에러가 아닌 빈 목록을 반환합니다. 공백뿐인 검색어는 백엔드를 호출하지 않고 빈 목록을 반환합니다.
func (c *Client) SearchByName(ctx context.Context, query string) ([]catalog.Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []catalog.Product{}, nil
	}

	body, err := json.Marshal(map[string]string{"productName": query})
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.Internal, "검색 요청 본문 생성에 실패했습니다")
	}

	data, err := c.do(ctx, http.MethodPost, pathSearchByName, body, c.session)
	if err != nil {
		if apperrors.Is(err, apperrors.NotFound) {
			return []catalog.Product{}, nil
		}
		return nil, err
	}

	if success := gjson.GetBytes(data, "success"); success.Exists() && !success.Bool() {
		applog.WithComponentAndFields(component, applog.Fields{
			"query":   query,
			"message": gjson.GetBytes(data, "message").String(),
		}).Debug("검색 결과 없음")

		return []catalog.Product{}, nil
	}

	return catalog.Normalize(data)
}

// GetProduct 단일 상품을 조회합니다.
func (c *Client) GetProduct(ctx context.Context, id string) (catalog.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return catalog.Product{}, ErrEmptyProductID
	}

	data, err := c.get(ctx, pathProduct+url.PathEscape(id), c.session)
	if err != nil {
		return catalog.Product{}, err
	}
	return catalog.NormalizeOne(data)
}

// ListAllOrders 전체 주문 목록을 조회합니다. 관리자 세션이 필요합니다.
func (c *Client) ListAllOrders(ctx context.Context) ([]catalog.Order, error) {
	data, err := c.get(ctx, pathOrdersAll, c.adminSession)
	if err != nil {
		return nil, err
	}
	return catalog.NormalizeOrders(data)
}

func (c *Client) get(ctx context.Context, path string, session contract.SessionProvider) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, nil, session)
}

// do 요청을 전송하고 2xx 응답의 본문을 UTF-8로 변환하여 반환합니다.
func (c *Client) do(ctx context.Context, method, path string, body []byte, session contract.SessionProvider) ([]byte, error) {
	endpoint := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		reqBody = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, apperrors.Wrapf(err, apperrors.Internal, "백엔드 요청 생성에 실패했습니다 (URL: %s)", endpoint)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	token, err := session.Token(ctx)
	if err != nil {
		return nil, newErrSessionUnavailable(err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.fetcher.Do(req)
	if err != nil {
		if apperrors.UnderlyingType(err) != apperrors.Unknown {
			return nil, err
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, apperrors.Wrapf(err, apperrors.Timeout, "백엔드 요청(%s %s) 시간이 초과되었습니다", method, RedactURL(req.URL))
		}
		return nil, newErrRequestFailed(err, method, RedactURL(req.URL))
	}
	defer drainAndCloseBody(resp.Body)

	if err := checkResponseStatus(resp); err != nil {
		return nil, err
	}

	utf8Reader, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, newErrResponseDecodeFailed(err, RedactURL(req.URL))
	}

	data, err := io.ReadAll(utf8Reader)
	if err != nil {
		if apperrors.UnderlyingType(err) != apperrors.Unknown {
			return nil, err
		}
		return nil, newErrResponseDecodeFailed(err, RedactURL(req.URL))
	}

	return data, nil
}
