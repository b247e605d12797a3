// Package strutil 문자열 가공 유틸리티를 제공합니다.
package strutil

import (
	"math"
	"strconv"
	"strings"
)

// NormalizeSpaces 앞뒤 공백을 제거하고 연속된 공백을 하나로 축약합니다.
// 예: "  hello   world  " -> "hello world"
func NormalizeSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// SplitAndTrim 구분자로 문자열을 분리한 뒤 각 항목의 공백을 제거하고, 빈 항목은 제외합니다.
// 결과가 없으면 nil을 반환합니다.
// 예: "a, , b,c" -> ["a", "b", "c"]
func SplitAndTrim(s, sep string) []string {
	var result []string
	for token := range strings.SplitSeq(s, sep) {
		if token = strings.TrimSpace(token); token != "" {
			result = append(result, token)
		}
	}
	return result
}

// Mask 토큰, 키 등 민감한 값을 로그에 남길 수 있도록 일부만 노출합니다.
//
//	"abc"                  -> "***"
//	"secret123"            -> "secr***"
//	"0123456789abcdefghij" -> "0123***ghij"
func Mask(s string) string {
	switch {
	case s == "":
		return ""
	case len(s) <= 3:
		return "***"
	case len(s) <= 12:
		return s[:4] + "***"
	default:
		return s[:4] + "***" + s[len(s)-4:]
	}
}

// Integer 모든 정수 타입을 포괄하는 제네릭 제약입니다.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// FormatCommas 정수를 천 단위 구분 기호(,)가 포함된 문자열로 변환합니다.
// 예: 1234567 -> "1,234,567"
func FormatCommas[T Integer](num T) string {
	return insertCommas(strconv.FormatInt(int64(num), 10))
}

// FormatPrice 가격을 천 단위 구분 기호와 함께 표시합니다.
// 정수 가격은 소수점 없이, 그 외에는 소수점 둘째 자리까지 표시합니다.
// 예: 1500 -> "1,500", 1234.5 -> "1,234.50"
func FormatPrice(price float64) string {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return "-"
	}

	if price == math.Trunc(price) {
		return insertCommas(strconv.FormatFloat(price, 'f', 0, 64))
	}

	s := strconv.FormatFloat(price, 'f', 2, 64)
	intPart, fracPart, _ := strings.Cut(s, ".")
	return insertCommas(intPart) + "." + fracPart
}

func insertCommas(digits string) string {
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}
	if len(digits) <= 3 {
		return sign + digits
	}

	var b strings.Builder
	b.Grow(len(sign) + len(digits) + len(digits)/3)
	b.WriteString(sign)

	head := len(digits) % 3
	if head == 0 {
		head = 3
	}
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}

	return b.String()
}
