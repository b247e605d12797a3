package response

import (
	"time"

	"github.com/darkkaiser/storefront-server/internal/catalog"
)

// ProductListResponse 필터와 정렬이 적용된 상품 목록 응답
type ProductListResponse struct {
	// 필터와 정렬이 적용된 상품 목록
	Items []catalog.Product `json:"items"`
	// Items의 개수
	Total int `json:"total" example:"12"`
	// 필터 적용 전 전체 상품 기준의 카테고리별 상품 수 (상품 수 내림차순)
	Facets []catalog.Facet `json:"facets"`
	// 필터 적용 전 전체 상품의 가격 범위 (상품이 없으면 생략)
	PriceRange *catalog.PriceRange `json:"price_range,omitempty"`
	// 가격 조건이 전체 상품의 가격 범위와 겹치지 않아 어떤 상품도 조건을 만족할 수 없는지 여부
	PriceOutOfRange bool `json:"price_out_of_range,omitempty"`
	// 적용된 필터의 정규화된 쿼리 문자열 (공유 가능한 URL에 사용)
	Filter string `json:"filter" example:"categories=Bags%2CHats&sortBy=priceLow"`
	// 상품 목록을 백엔드에서 마지막으로 가져온 시각
	LoadedAt time.Time `json:"loaded_at"`
	// 백엔드 갱신에 실패하여 이전 데이터로 응답했는지 여부
	Stale bool `json:"stale,omitempty"`
}

// FacetsResponse 전체 카탈로그 기준의 카테고리 패싯과 가격 범위 응답
type FacetsResponse struct {
	Facets     []catalog.Facet     `json:"facets"`
	PriceRange *catalog.PriceRange `json:"price_range,omitempty"`
	// 판매 중인 상품 수
	Total int `json:"total" example:"120"`
	// 마지막 카탈로그 동기화 시각
	SyncedAt time.Time `json:"synced_at"`
}

// SyncResponse 수동 카탈로그 동기화 결과
type SyncResponse struct {
	FetchedAt    time.Time `json:"fetched_at"`
	Total        int       `json:"total" example:"120"`
	Added        int       `json:"added" example:"3"`
	PriceChanged int       `json:"price_changed" example:"1"`
	Removed      int       `json:"removed" example:"0"`
}

// UserOrdersResponse 사용자별로 묶인 주문 목록 응답
type UserOrdersResponse struct {
	Users []catalog.UserOrders `json:"users"`
	// 전체 주문 수
	TotalOrders int `json:"total_orders" example:"42"`
}

// ProductResponse 단일 상품 조회 응답
type ProductResponse struct {
	Product catalog.Product `json:"product"`
}
