package catalog

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePriceBound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input  string
		want   float64
		wantOK bool
	}{
		{"", 0, false},
		{"   ", 0, false},
		{"abc", 0, false},
		{"-1", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
		{"0", 0, true},
		{" 250 ", 250, true},
		{"1,299.50", 1299.5, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, ok := ParsePriceBound(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSortBy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  SortBy
	}{
		{"", SortByName},
		{"name", SortByName},
		{"priceLow", SortByPriceLow},
		{"price_low", SortByPriceLow},
		{"price-high", SortByPriceHigh},
		{"PriceHigh", SortByPriceHigh},
		{"Newest", SortByNewest},
		{"popular", SortByName},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ParseSortBy(tt.input))
		})
	}
}

func TestFilterState_Defaults(t *testing.T) {
	t.Parallel()

	for name, f := range map[string]FilterState{"생성자": NewFilterState(), "제로 값": {}} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, hasMin := f.MinPrice()
			_, hasMax := f.MaxPrice()

			assert.False(t, hasMin)
			assert.False(t, hasMax)
			assert.Equal(t, SortByName, f.SortBy())
			assert.Empty(t, f.Categories())
			assert.True(t, f.IsDefault())
		})
	}
}

func TestFilterState_IsImmutable(t *testing.T) {
	t.Parallel()

	base := NewFilterState().WithCategories("Audio")

	changed := base.
		WithMinPrice(100).
		WithMaxPrice(200).
		WithSortBy(SortByNewest).
		ToggleCategory("Gaming")

	assert.Equal(t, []string{"Audio"}, base.Categories())
	_, hasMin := base.MinPrice()
	assert.False(t, hasMin)
	assert.Equal(t, SortByName, base.SortBy())

	assert.Equal(t, []string{"Audio", "Gaming"}, changed.Categories())
	assert.Equal(t, SortByNewest, changed.SortBy())

	cats := changed.Categories()
	cats[0] = "tampered"
	assert.Equal(t, []string{"Audio", "Gaming"}, changed.Categories(), "반환된 목록을 수정해도 상태는 변하지 않아야 합니다")
}

func TestFilterState_Mutators(t *testing.T) {
	t.Parallel()

	t.Run("유효하지 않은 가격은 조건 해제", func(t *testing.T) {
		t.Parallel()

		f := NewFilterState().WithMinPrice(100).WithMinPrice(math.NaN())
		_, ok := f.MinPrice()
		assert.False(t, ok)

		f = NewFilterState().WithMaxPrice(-5)
		_, ok = f.MaxPrice()
		assert.False(t, ok)
	})

	t.Run("가격 조건 해제", func(t *testing.T) {
		t.Parallel()

		f := NewFilterState().WithMinPrice(1).WithMaxPrice(2).WithoutMinPrice().WithoutMaxPrice()
		assert.True(t, f.IsDefault())
	})

	t.Run("문자열 가격 입력", func(t *testing.T) {
		t.Parallel()

		f := NewFilterState().WithPriceText("100", "oops")
		v, ok := f.MinPrice()
		assert.True(t, ok)
		assert.Equal(t, 100.0, v)
		_, ok = f.MaxPrice()
		assert.False(t, ok)
	})

	t.Run("역전된 가격 조건도 유지", func(t *testing.T) {
		t.Parallel()

		f := NewFilterState().WithMinPrice(1000).WithMaxPrice(10)
		minPrice, _ := f.MinPrice()
		maxPrice, _ := f.MaxPrice()
		assert.Equal(t, 1000.0, minPrice)
		assert.Equal(t, 10.0, maxPrice)
	})

	t.Run("카테고리는 중복과 빈 값을 제거한 집합", func(t *testing.T) {
		t.Parallel()

		f := NewFilterState().WithCategories("Gaming", " ", "Audio", "Gaming")
		assert.Equal(t, []string{"Audio", "Gaming"}, f.Categories())
		assert.True(t, f.HasCategory("Audio"))
		assert.False(t, f.HasCategory("Mobile"))

		assert.True(t, f.Equal(NewFilterState().WithCategories("Audio", "Gaming")), "선택 순서는 의미가 없어야 합니다")
	})

	t.Run("토글", func(t *testing.T) {
		t.Parallel()

		f := NewFilterState().ToggleCategory("Audio").ToggleCategory("Gaming").ToggleCategory("Audio")
		assert.Equal(t, []string{"Gaming"}, f.Categories())
	})

	t.Run("지원하지 않는 정렬 기준", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, SortByName, NewFilterState().WithSortBy(SortByNewest).WithSortBy("random").SortBy())
	})

	t.Run("초기화", func(t *testing.T) {
		t.Parallel()

		f := NewFilterState().WithMinPrice(1).WithCategories("Audio").WithSortBy(SortByNewest)
		assert.True(t, f.Reset().IsDefault())
	})
}
