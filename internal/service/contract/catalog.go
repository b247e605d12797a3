package contract

import (
	"context"
	"time"

	"github.com/darkkaiser/storefront-server/internal/catalog"
)

// ProductSource 백엔드로부터 정규화된 상품 컬렉션을 조회하는 인터페이스입니다.
type ProductSource interface {
	// ListAll 비활성 상품을 포함한 전체 상품을 조회합니다. 관리자 세션이 필요합니다.
	ListAll(ctx context.Context) ([]catalog.Product, error)

	// ListActive 판매 중인 상품만 조회합니다.
	ListActive(ctx context.Context) ([]catalog.Product, error)

	// SearchByName 이름으로 상품을 검색합니다. 검색 결과가 없으면 빈 목록을 반환합니다.
	SearchByName(ctx context.Context, query string) ([]catalog.Product, error)

	// GetProduct 단일 상품을 조회합니다. 존재하지 않으면 NotFound 에러를 반환합니다.
	GetProduct(ctx context.Context, id string) (catalog.Product, error)
}

// OrderSource 백엔드로부터 전체 주문 목록을 조회하는 인터페이스입니다.
type OrderSource interface {
	ListAllOrders(ctx context.Context) ([]catalog.Order, error)
}

// SnapshotStore 임의의 값을 이름 단위로 영속화하는 저장소 인터페이스입니다.
type SnapshotStore interface {
	// Save v를 name 아래에 저장합니다. 같은 이름의 기존 데이터는 원자적으로 교체됩니다.
	Save(name string, v any) error

	// Load name에 저장된 데이터를 v(포인터)로 읽어옵니다. 데이터가 없으면 ErrSnapshotNotFound를 반환합니다.
	Load(name string, v any) error
}

// SyncResult 카탈로그 동기화 1회의 결과입니다.
type SyncResult struct {
	FetchedAt time.Time       `json:"fetched_at"`
	Total     int             `json:"total"`
	Changes   catalog.Changes `json:"changes"`
}

// CatalogSyncer 카탈로그 동기화를 즉시 실행하는 인터페이스입니다.
type CatalogSyncer interface {
	SyncNow(ctx context.Context) (SyncResult, error)
}

// CatalogReader 마지막으로 동기화된 전체 카탈로그를 조회하는 인터페이스입니다.
type CatalogReader interface {
	// Products 마지막 동기화 시점의 전체 상품 목록과 동기화 시각을 반환합니다.
	// 아직 한 번도 동기화되지 않았다면 ok는 false입니다.
	Products() (products []catalog.Product, fetchedAt time.Time, ok bool)
}
