// Package catalog 상품 목록의 필터링, 정렬, 패싯 집계를 담당하는 순수 도메인 로직을 제공합니다.
//
// 이 패키지의 함수들은 입출력이나 공유 상태를 갖지 않으며, 같은 입력에 대해 항상 같은 결과를 반환합니다.
// 백엔드 응답처럼 형태가 일정하지 않은 데이터는 Normalize를 통해 Product로 변환된 뒤에만 엔진에 전달됩니다.
package catalog

import "time"

// Product 정규화된 상품 정보입니다. 백엔드가 소유하며 이 패키지에서는 읽기 전용으로 다룹니다.
type Product struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Price        float64   `json:"price"`
	Category     string    `json:"category,omitempty"`
	ImageURL     string    `json:"imageUrl,omitempty"`
	IsActive     bool      `json:"isActive"`
	IsNewArrival bool      `json:"isNewArrival"`
	CreatedOn    time.Time `json:"createdOn,omitzero"`
}

// HasCreatedOn 등록일 정보가 있는지 여부를 반환합니다.
func (p Product) HasCreatedOn() bool {
	return !p.CreatedOn.IsZero()
}

// epoch 등록일이 없는 상품의 정렬 기준 시각입니다.
var epoch = time.Unix(0, 0).UTC()

// createdKey 최신순 정렬에 사용할 등록일을 반환합니다. 등록일이 없으면 가장 오래된 것으로 취급합니다.
func (p Product) createdKey() time.Time {
	if p.CreatedOn.IsZero() {
		return epoch
	}
	return p.CreatedOn
}

// Visibility 페이지별로 어떤 상품을 노출할지 결정하는 정책입니다.
type Visibility func(Product) bool

// 노출 정책
var (
	// VisibleAll 비활성 상품을 포함한 모든 상품 (관리자용)
	VisibleAll Visibility = func(Product) bool { return true }

	// VisibleActive 판매 중인 상품
	VisibleActive Visibility = func(p Product) bool { return p.IsActive }

	// VisibleNewArrival 판매 중인 신상품
	VisibleNewArrival Visibility = func(p Product) bool { return p.IsActive && p.IsNewArrival }
)

// VisibleInCategory 판매 중이면서 카테고리가 일치하는 상품만 노출하는 정책을 반환합니다.
func VisibleInCategory(category string) Visibility {
	return func(p Product) bool {
		return p.IsActive && p.Category == category
	}
}

// Select 정책을 통과한 상품만 담은 새 슬라이스를 반환합니다. 입력 순서는 유지됩니다.
func Select(products []Product, visible Visibility) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if visible == nil || visible(p) {
			out = append(out, p)
		}
	}
	return out
}
