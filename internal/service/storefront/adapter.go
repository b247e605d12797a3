package storefront

import (
	"context"
	"strings"

	"github.com/darkkaiser/storefront-server/internal/catalog"
	"github.com/darkkaiser/storefront-server/internal/service/contract"
)

// Kind 페이지 어댑터의 종류입니다.
type Kind string

const (
	KindAllProducts Kind = "all-products"
	KindCategory    Kind = "category"
	KindNewArrivals Kind = "new-arrivals"
	KindSearch      Kind = "search"
)

// fetchFunc 어댑터가 백엔드에서 원본 컬렉션을 가져오는 방법입니다.
type fetchFunc func(ctx context.Context, src contract.ProductSource) ([]catalog.Product, error)

// Adapter 페이지마다 다른 두 가지, 즉 어떤 원본 컬렉션을 가져올지와 어떤 노출 정책을 적용할지를 묶은 값입니다.
// 필터링, 정렬, 패싯 집계는 모든 어댑터가 catalog 엔진을 그대로 공유합니다.
type Adapter struct {
	kind Kind

	// key 같은 종류의 어댑터끼리 구분하는 값 (카테고리 이름, 검색어 등)
	key string

	fetch   fetchFunc
	visible catalog.Visibility

	// categoryFacets 카테고리 패싯을 노출하는지 여부. 단일 카테고리 페이지에서는 의미가 없으므로 노출하지 않습니다.
	categoryFacets bool
}

// Kind 어댑터 종류를 반환합니다.
func (a Adapter) Kind() Kind { return a.kind }

// Key 어댑터 종류와 구분 값을 합친 식별자를 반환합니다. 예: "category:Bags"
func (a Adapter) Key() string {
	if a.key == "" {
		return string(a.kind)
	}
	return string(a.kind) + ":" + a.key
}

// SurfacesCategoryFacets 카테고리 패싯 노출 여부를 반환합니다.
func (a Adapter) SurfacesCategoryFacets() bool { return a.categoryFacets }

// AllProducts 전체 상품 페이지 어댑터입니다.
// 관리자는 비활성 상품을 포함한 전체 목록을, 그 외 사용자는 판매 중인 상품만 봅니다.
func AllProducts(admin bool) Adapter {
	if admin {
		return Adapter{
			kind:           KindAllProducts,
			key:            "admin",
			fetch:          func(ctx context.Context, src contract.ProductSource) ([]catalog.Product, error) { return src.ListAll(ctx) },
			visible:        catalog.VisibleAll,
			categoryFacets: true,
		}
	}

	return Adapter{
		kind:           KindAllProducts,
		fetch:          listActive,
		visible:        catalog.VisibleActive,
		categoryFacets: true,
	}
}

// Category 카테고리 페이지 어댑터입니다. 판매 중이면서 카테고리가 일치하는 상품만 노출합니다.
func Category(category string) Adapter {
	category = strings.TrimSpace(category)

	return Adapter{
		kind:    KindCategory,
		key:     category,
		fetch:   listActive,
		visible: catalog.VisibleInCategory(category),
	}
}

// NewArrivals 신상품 페이지 어댑터입니다. 판매 중인 신상품만 노출합니다.
func NewArrivals() Adapter {
	return Adapter{
		kind:           KindNewArrivals,
		fetch:          listActive,
		visible:        catalog.VisibleNewArrival,
		categoryFacets: true,
	}
}

// Search 검색 결과 페이지 어댑터입니다. 검색어가 비어 있으면 백엔드를 호출하지 않고 빈 결과를 돌려줍니다.
func Search(query string) Adapter {
	query = strings.TrimSpace(query)

	return Adapter{
		kind: KindSearch,
		key:  query,
		fetch: func(ctx context.Context, src contract.ProductSource) ([]catalog.Product, error) {
			if query == "" {
				return []catalog.Product{}, nil
			}
			return src.SearchByName(ctx, query)
		},
		visible:        catalog.VisibleActive,
		categoryFacets: true,
	}
}

func listActive(ctx context.Context, src contract.ProductSource) ([]catalog.Product, error) {
	return src.ListActive(ctx)
}
