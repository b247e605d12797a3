package catalog

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/iancoleman/strcase"
)

// SortBy 상품 목록의 정렬 기준입니다.
type SortBy string

const (
	SortByName      SortBy = "name"
	SortByPriceLow  SortBy = "priceLow"
	SortByPriceHigh SortBy = "priceHigh"
	SortByNewest    SortBy = "newest"
)

// DefaultSortBy 정렬 기준이 주어지지 않았거나 알 수 없을 때 사용하는 기준입니다.
const DefaultSortBy = SortByName

// SortOptions 지원하는 모든 정렬 기준을 화면 표시 순서대로 반환합니다.
func SortOptions() []SortBy {
	return []SortBy{SortByName, SortByPriceLow, SortByPriceHigh, SortByNewest}
}

// Valid 지원하는 정렬 기준인지 여부를 반환합니다.
func (s SortBy) Valid() bool {
	return slices.Contains(SortOptions(), s)
}

// ParseSortBy 사용자 입력을 정렬 기준으로 변환합니다.
// "price_low", "price-high", "Newest"처럼 표기법이 다른 입력도 허용하며, 알 수 없는 값은 DefaultSortBy가 됩니다.
func ParseSortBy(s string) SortBy {
	candidate := SortBy(strcase.ToLowerCamel(strings.TrimSpace(s)))
	if candidate.Valid() {
		return candidate
	}
	return DefaultSortBy
}

// ParsePriceBound 가격 조건 입력을 해석합니다.
// 비어 있거나 숫자가 아니거나 음수, NaN, 무한대인 값은 조건이 없는 것으로 취급하며 에러를 반환하지 않습니다.
// 천 단위 구분 쉼표는 무시합니다.
func ParsePriceBound(text string) (float64, bool) {
	text = strings.ReplaceAll(strings.TrimSpace(text), ",", "")
	if text == "" {
		return 0, false
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, false
	}
	return normalizeBound(v)
}

func normalizeBound(v float64) (float64, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, false
	}
	return v, true
}

// priceBound 선택적인 가격 조건입니다.
type priceBound struct {
	value float64
	set   bool
}

// FilterState 사용자가 선택한 필터와 정렬 조건입니다.
//
// 불변 값 객체이며 With로 시작하는 메서드는 항상 변경이 반영된 새 FilterState를 반환합니다.
// 제로 값은 NewFilterState()와 같은 기본 상태(가격 조건 없음, 이름순, 전체 카테고리)로 동작합니다.
//
// 최소 가격이 최대 가격보다 큰 상태도 유효하며, 이 경우 엔진은 빈 결과를 반환합니다.
type FilterState struct {
	minPrice   priceBound
	maxPrice   priceBound
	sortBy     SortBy
	categories []string // 정렬되고 중복이 제거된 집합. 생성 후에는 수정하지 않으므로 복사본끼리 공유해도 안전합니다.
}

// NewFilterState 기본 상태의 FilterState를 반환합니다.
func NewFilterState() FilterState {
	return FilterState{sortBy: DefaultSortBy}
}

// MinPrice 최소 가격 조건과 설정 여부를 반환합니다.
func (f FilterState) MinPrice() (float64, bool) {
	return f.minPrice.value, f.minPrice.set
}

// MaxPrice 최대 가격 조건과 설정 여부를 반환합니다.
func (f FilterState) MaxPrice() (float64, bool) {
	return f.maxPrice.value, f.maxPrice.set
}

// SortBy 정렬 기준을 반환합니다.
func (f FilterState) SortBy() SortBy {
	if f.sortBy == "" {
		return DefaultSortBy
	}
	return f.sortBy
}

// Categories 선택된 카테고리 목록을 정렬된 사본으로 반환합니다. 비어 있으면 전체 카테고리를 의미합니다.
func (f FilterState) Categories() []string {
	return slices.Clone(f.categories)
}

// HasCategory 카테고리가 선택되어 있는지 여부를 반환합니다.
func (f FilterState) HasCategory(category string) bool {
	_, found := slices.BinarySearch(f.categories, category)
	return found
}

// IsDefault 아무 조건도 선택되지 않은 기본 상태인지 여부를 반환합니다.
func (f FilterState) IsDefault() bool {
	return f.Equal(NewFilterState())
}

// Equal 두 상태가 같은 조건을 나타내는지 비교합니다.
func (f FilterState) Equal(other FilterState) bool {
	return f.minPrice == other.minPrice &&
		f.maxPrice == other.maxPrice &&
		f.SortBy() == other.SortBy() &&
		slices.Equal(f.categories, other.categories)
}

// WithMinPrice 최소 가격 조건을 설정합니다. 유효하지 않은 값이면 조건을 해제합니다.
func (f FilterState) WithMinPrice(v float64) FilterState {
	f.minPrice = newPriceBound(v)
	return f
}

// WithMaxPrice 최대 가격 조건을 설정합니다. 유효하지 않은 값이면 조건을 해제합니다.
func (f FilterState) WithMaxPrice(v float64) FilterState {
	f.maxPrice = newPriceBound(v)
	return f
}

// WithoutMinPrice 최소 가격 조건을 해제합니다.
func (f FilterState) WithoutMinPrice() FilterState {
	f.minPrice = priceBound{}
	return f
}

// WithoutMaxPrice 최대 가격 조건을 해제합니다.
func (f FilterState) WithoutMaxPrice() FilterState {
	f.maxPrice = priceBound{}
	return f
}

// WithPriceText 입력 창의 문자열로 가격 조건을 설정합니다. 해석할 수 없는 값은 조건 없음이 됩니다.
func (f FilterState) WithPriceText(minText, maxText string) FilterState {
	f.minPrice = parsedBound(minText)
	f.maxPrice = parsedBound(maxText)
	return f
}

// WithSortBy 정렬 기준을 설정합니다. 지원하지 않는 값이면 DefaultSortBy가 됩니다.
func (f FilterState) WithSortBy(s SortBy) FilterState {
	if !s.Valid() {
		s = DefaultSortBy
	}
	f.sortBy = s
	return f
}

// WithCategories 선택된 카테고리를 주어진 목록으로 교체합니다. 빈 문자열은 무시합니다.
func (f FilterState) WithCategories(categories ...string) FilterState {
	f.categories = normalizeCategories(categories)
	return f
}

// ToggleCategory 카테고리가 선택되어 있으면 해제하고, 아니면 선택합니다.
func (f FilterState) ToggleCategory(category string) FilterState {
	if f.HasCategory(category) {
		return f.WithCategories(slices.DeleteFunc(f.Categories(), func(c string) bool { return c == category })...)
	}
	return f.WithCategories(append(f.Categories(), category)...)
}

// Reset 기본 상태를 반환합니다.
func (f FilterState) Reset() FilterState {
	return NewFilterState()
}

func newPriceBound(v float64) priceBound {
	v, ok := normalizeBound(v)
	return priceBound{value: v, set: ok}
}

func parsedBound(text string) priceBound {
	v, ok := ParsePriceBound(text)
	return priceBound{value: v, set: ok}
}

func normalizeCategories(categories []string) []string {
	out := make([]string, 0, len(categories))
	for _, c := range categories {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	slices.Sort(out)
	out = slices.Compact(out)
	if len(out) == 0 {
		return nil
	}
	return out
}
