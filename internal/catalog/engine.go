package catalog

import (
	"bytes"
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DerivedView 필터와 정렬이 적용된 상품 목록과, 필터와 무관하게 전체 입력에서 집계한 카테고리별 상품 수입니다.
type DerivedView struct {
	Items       []Product      `json:"items"`
	FacetCounts map[string]int `json:"facetCounts"`
}

// DeriveView 상품 목록에 필터 상태를 적용한 결과를 반환합니다.
//
// 가격 조건, 카테고리 조건 순으로 걸러낸 뒤 안정 정렬합니다. 반환된 Items는 항상 새로 할당된 슬라이스이며
// 입력 슬라이스는 변경되지 않습니다. FacetCounts는 걸러내기 전의 전체 입력을 기준으로 집계합니다.
func DeriveView(products []Product, f FilterState) DerivedView {
	return DerivedView{
		Items:       Sort(Filter(products, f), f.SortBy()),
		FacetCounts: CountFacets(products),
	}
}

// Filter 가격 조건과 카테고리 조건을 모두 만족하는 상품만 입력 순서대로 담은 새 슬라이스를 반환합니다.
func Filter(products []Product, f FilterState) []Product {
	minPrice, hasMin := f.MinPrice()
	maxPrice, hasMax := f.MaxPrice()

	out := make([]Product, 0, len(products))
	for _, p := range products {
		if hasMin && p.Price < minPrice {
			continue
		}
		if hasMax && p.Price > maxPrice {
			continue
		}
		if len(f.categories) > 0 && !f.HasCategory(p.Category) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Sort 정렬 기준에 따라 안정 정렬한 새 슬라이스를 반환합니다. 정렬 키가 같은 상품은 입력 순서를 유지합니다.
//
//   - name: 이름 오름차순 (언어 규칙을 따르는 문자열 비교)
//   - priceLow: 가격 오름차순
//   - priceHigh: 가격 내림차순
//   - newest: 등록일 내림차순 (등록일이 없으면 가장 오래된 것으로 취급)
func Sort(products []Product, sortBy SortBy) []Product {
	out := slices.Clone(products)
	if out == nil {
		out = []Product{}
	}

	switch sortBy {
	case SortByPriceLow:
		slices.SortStableFunc(out, func(a, b Product) int { return cmp.Compare(a.Price, b.Price) })
	case SortByPriceHigh:
		slices.SortStableFunc(out, func(a, b Product) int { return cmp.Compare(b.Price, a.Price) })
	case SortByNewest:
		slices.SortStableFunc(out, func(a, b Product) int { return b.createdKey().Compare(a.createdKey()) })
	default:
		sortByName(out)
	}
	return out
}

// sortByName 이름의 정렬 키를 한 번씩만 계산한 뒤 안정 정렬합니다.
// collate.Collator는 동시 사용에 안전하지 않으므로 호출마다 새로 만듭니다.
func sortByName(products []Product) {
	type keyed struct {
		key     []byte
		product Product
	}

	c := newNameCollator()

	var buf collate.Buffer
	items := make([]keyed, len(products))
	for i, p := range products {
		items[i] = keyed{key: bytes.Clone(c.KeyFromString(&buf, p.Name)), product: p}
		buf.Reset()
	}

	slices.SortStableFunc(items, func(a, b keyed) int { return bytes.Compare(a.key, b.key) })

	for i := range items {
		products[i] = items[i].product
	}
}

// nameLocale 이름 정렬에 적용할 언어 규칙입니다.
var nameLocale = language.Und

func newNameCollator() *collate.Collator {
	return collate.New(nameLocale)
}

// CompareNames 두 상품 이름을 이름순 정렬과 같은 규칙으로 비교합니다.
func CompareNames(a, b string) int {
	return newNameCollator().CompareString(a, b)
}
