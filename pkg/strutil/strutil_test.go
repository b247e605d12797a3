package strutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSpaces(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hello world", NormalizeSpaces("  hello \t  world \n"))
	assert.Equal(t, "", NormalizeSpaces("   "))
}

func TestSplitAndTrim(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"공백과 빈 항목 제거", "a, , b,c", []string{"a", "b", "c"}},
		{"빈 문자열", "", nil},
		{"구분자만 존재", ",,", nil},
		{"단일 항목", " Gaming ", []string{"Gaming"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, SplitAndTrim(tt.in, ","))
		})
	}
}

func TestMask(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", Mask(""))
	assert.Equal(t, "***", Mask("abc"))
	assert.Equal(t, "secr***", Mask("secret123"))
	assert.Equal(t, "0123***ghij", Mask("0123456789abcdefghij"))
}

func TestFormatCommas(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0", FormatCommas(0))
	assert.Equal(t, "999", FormatCommas(999))
	assert.Equal(t, "1,000", FormatCommas(1000))
	assert.Equal(t, "-1,234,567", FormatCommas(int64(-1234567)))
}

func TestFormatPrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		price float64
		want  string
	}{
		{1500, "1,500"},
		{1234.5, "1,234.50"},
		{0.99, "0.99"},
		{1000000, "1,000,000"},
		{math.NaN(), "-"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatPrice(tt.price))
	}
}
