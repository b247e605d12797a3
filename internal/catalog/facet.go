package catalog

import (
	"cmp"
	"slices"
)

// CountFacets 카테고리별 상품 수를 집계합니다.
// 카테고리가 비어 있는 상품은 어느 항목에도 포함되지 않으며, 개수가 0인 항목은 만들지 않습니다.
// 항상 필터링 전의 전체 상품 목록으로 호출해야 합니다.
func CountFacets(products []Product) map[string]int {
	counts := make(map[string]int)
	for _, p := range products {
		if p.Category != "" {
			counts[p.Category]++
		}
	}
	return counts
}

// Facet 화면에 표시할 카테고리와 상품 수입니다.
type Facet struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// SortedFacets 집계 결과를 상품 수 내림차순, 같은 수는 이름 오름차순으로 정렬한 목록으로 변환합니다.
func SortedFacets(counts map[string]int) []Facet {
	facets := make([]Facet, 0, len(counts))
	for label, count := range counts {
		if count > 0 {
			facets = append(facets, Facet{Label: label, Count: count})
		}
	}

	slices.SortFunc(facets, func(a, b Facet) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Label, b.Label)
	})
	return facets
}

// PriceRange 가격의 최솟값과 최댓값입니다.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Overlaps 필터 상태의 가격 조건으로 범위 안의 상품이 하나라도 남을 수 있는지 여부를 반환합니다.
// 최소 가격이 최대 가격보다 큰 상태도 false입니다.
func (r PriceRange) Overlaps(f FilterState) bool {
	if v, ok := f.MinPrice(); ok && v > r.Max {
		return false
	}
	if v, ok := f.MaxPrice(); ok && v < r.Min {
		return false
	}
	if lo, okLo := f.MinPrice(); okLo {
		if hi, okHi := f.MaxPrice(); okHi && lo > hi {
			return false
		}
	}
	return true
}

// PriceBounds 상품 목록의 가격 범위를 반환합니다. 목록이 비어 있으면 false를 반환합니다.
func PriceBounds(products []Product) (PriceRange, bool) {
	if len(products) == 0 {
		return PriceRange{}, false
	}

	r := PriceRange{Min: products[0].Price, Max: products[0].Price}
	for _, p := range products[1:] {
		r.Min = min(r.Min, p.Price)
		r.Max = max(r.Max, p.Price)
	}
	return r, true
}
