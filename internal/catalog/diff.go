package catalog

import (
	"cmp"
	"slices"
)

// PriceChange 가격이 변경된 상품과 이전 가격입니다.
type PriceChange struct {
	Product  Product `json:"product"`
	OldPrice float64 `json:"oldPrice"`
}

// Changes 두 카탈로그 스냅샷 사이의 변경 사항입니다.
type Changes struct {
	Added        []Product     `json:"added"`
	PriceChanged []PriceChange `json:"priceChanged"`
	Removed      []Product     `json:"removed"`
}

// Empty 변경 사항이 없는지 여부를 반환합니다.
func (c Changes) Empty() bool {
	return len(c.Added) == 0 && len(c.PriceChanged) == 0 && len(c.Removed) == 0
}

// Diff 이전 스냅샷과 새 스냅샷을 식별자 기준으로 비교합니다.
// 각 목록은 가격 오름차순, 같은 가격은 이름순으로 정렬됩니다.
func Diff(prev, next []Product) Changes {
	prevByID := make(map[string]Product, len(prev))
	for _, p := range prev {
		prevByID[p.ID] = p
	}
	nextIDs := make(map[string]struct{}, len(next))

	var c Changes
	for _, p := range next {
		nextIDs[p.ID] = struct{}{}

		old, ok := prevByID[p.ID]
		switch {
		case !ok:
			c.Added = append(c.Added, p)
		case old.Price != p.Price:
			c.PriceChanged = append(c.PriceChanged, PriceChange{Product: p, OldPrice: old.Price})
		}
	}
	for _, p := range prev {
		if _, ok := nextIDs[p.ID]; !ok {
			c.Removed = append(c.Removed, p)
		}
	}

	byPriceThenName := func(a, b Product) int {
		if r := cmp.Compare(a.Price, b.Price); r != 0 {
			return r
		}
		return CompareNames(a.Name, b.Name)
	}
	slices.SortStableFunc(c.Added, byPriceThenName)
	slices.SortStableFunc(c.Removed, byPriceThenName)
	slices.SortStableFunc(c.PriceChanged, func(a, b PriceChange) int { return byPriceThenName(a.Product, b.Product) })

	return c
}
