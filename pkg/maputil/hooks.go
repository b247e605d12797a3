package maputil

import (
	"reflect"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
)

// stringToSliceHookFunc 쉼표로 구분된 문자열을 슬라이스로 변환합니다.
// 각 항목의 공백을 제거하고 빈 항목은 버리며, []byte 대상은 분할하지 않습니다.
func stringToSliceHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String {
			return data, nil
		}
		if t.Kind() != reflect.Slice || t.Elem().Kind() == reflect.Uint8 {
			return data, nil
		}

		parts := make([]string, 0)
		for part := range strings.SplitSeq(reflect.ValueOf(data).String(), ",") {
			if part = strings.TrimSpace(part); part != "" {
				parts = append(parts, part)
			}
		}
		return parts, nil
	}
}

// stringToDurationHookFunc "10s", "500ms" 형태의 문자열을 time.Duration으로 변환합니다.
// 별칭 타입을 포함한 다른 int64 계열 타입은 변환하지 않습니다.
func stringToDurationHookFunc() mapstructure.DecodeHookFunc {
	durationType := reflect.TypeOf(time.Duration(0))

	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t != durationType {
			return data, nil
		}

		d, err := time.ParseDuration(strings.TrimSpace(reflect.ValueOf(data).String()))
		if err != nil {
			// 다른 훅이나 기본 변환 로직이 처리하도록 원본을 그대로 넘깁니다.
			return data, nil
		}
		return d, nil
	}
}
