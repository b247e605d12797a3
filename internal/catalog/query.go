package catalog

import (
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/darkkaiser/storefront-server/pkg/maputil"
	"github.com/darkkaiser/storefront-server/pkg/strutil"
	"github.com/mitchellh/mapstructure"
)

// 공유 가능한 URL에 사용하는 쿼리 파라미터 이름
const (
	QueryKeyMinPrice   = "minPrice"
	QueryKeyMaxPrice   = "maxPrice"
	QueryKeySortBy     = "sortBy"
	QueryKeyCategories = "categories"
)

// filterQuery 쿼리 파라미터를 디코딩하기 위한 중간 표현입니다.
// 가격은 느슨하게 해석해야 하므로 문자열로 받습니다.
type filterQuery struct {
	MinPrice   string   `json:"minPrice"`
	MaxPrice   string   `json:"maxPrice"`
	SortBy     string   `json:"sortBy"`
	Categories []string `json:"categories"`
}

// EncodeQuery 상태를 URL 쿼리 파라미터로 변환합니다. 기본값인 항목은 생략합니다.
// 카테고리는 쉼표로 연결된 하나의 값으로 인코딩하므로 카테고리 이름에는 쉼표가 없어야 합니다.
func (f FilterState) EncodeQuery() url.Values {
	values := url.Values{}

	if v, ok := f.MinPrice(); ok {
		values.Set(QueryKeyMinPrice, formatBound(v))
	}
	if v, ok := f.MaxPrice(); ok {
		values.Set(QueryKeyMaxPrice, formatBound(v))
	}
	if s := f.SortBy(); s != DefaultSortBy {
		values.Set(QueryKeySortBy, string(s))
	}
	if len(f.categories) > 0 {
		values.Set(QueryKeyCategories, strings.Join(f.categories, ","))
	}

	return values
}

// String 상태를 정규화된 쿼리 문자열로 반환합니다. 기본 상태이면 빈 문자열입니다.
func (f FilterState) String() string {
	return f.EncodeQuery().Encode()
}

// DecodeQuery URL 쿼리 파라미터를 해석하여 FilterState를 만듭니다.
//
// 해석할 수 없는 값은 해당 조건이 없는 것으로 취급하고, 관련 없는 파라미터는 무시하므로 실패하지 않습니다.
// 카테고리는 쉼표로 구분된 하나의 값(categories=A,B) 또는 반복된 키(categories=A&categories=B) 모두 허용합니다.
// 같은 가격 또는 정렬 키가 여러 번 주어지면 첫 번째 값을 사용합니다.
func DecodeQuery(values url.Values) FilterState {
	q, err := maputil.Decode[filterQuery](maputil.FlattenValues(values), maputil.WithDecodeHook(firstValueHookFunc()))
	if err != nil {
		return NewFilterState()
	}

	var categories []string
	for _, c := range q.Categories {
		categories = append(categories, strutil.SplitAndTrim(c, ",")...)
	}

	return NewFilterState().
		WithPriceText(q.MinPrice, q.MaxPrice).
		WithSortBy(ParseSortBy(q.SortBy)).
		WithCategories(categories...)
}

// ParseQuery 원시 쿼리 문자열을 해석합니다. 문자열 자체를 해석할 수 없으면 기본 상태를 반환합니다.
func ParseQuery(rawQuery string) FilterState {
	values, err := url.ParseQuery(strings.TrimPrefix(rawQuery, "?"))
	if err != nil {
		return NewFilterState()
	}
	return DecodeQuery(values)
}

// firstValueHookFunc 반복된 키로 전달된 다중 값을 문자열 필드에 디코딩할 때 첫 번째 값만 사용합니다.
func firstValueHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if t.Kind() != reflect.String || f.Kind() != reflect.Slice {
			return data, nil
		}
		if vs, ok := data.([]string); ok && len(vs) > 0 {
			return vs[0], nil
		}
		return data, nil
	}
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
