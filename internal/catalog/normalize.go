package catalog

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	apperrors "github.com/darkkaiser/storefront-server/internal/pkg/errors"
	applog "github.com/darkkaiser/storefront-server/pkg/log"
	"github.com/darkkaiser/storefront-server/pkg/strutil"
	"github.com/tidwall/gjson"
)

const component = "catalog"

// 백엔드마다 다르게 사용하는 필드 이름의 후보입니다. 앞에 있을수록 우선합니다.
var (
	idPaths        = []string{"id", "_id"}
	imagePaths     = []string{"imageUrl", "image", "images.0"}
	createdOnPaths = []string{"createdOn", "createdAt"}

	// 상품 목록을 감싸는 응답 봉투의 필드 이름
	listEnvelopePaths = []string{"products", "data", "items"}

	// 단일 상품을 감싸는 응답 봉투의 필드 이름
	itemEnvelopePaths = []string{"product", "data"}
)

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// Normalize 백엔드가 반환한 상품 목록 JSON을 Product 목록으로 변환합니다.
//
// 최상위가 배열이거나 {products|data|items: [...]} 형태의 봉투를 허용합니다.
// 식별자가 없는 레코드는 경고 로그를 남기고 건너뛰며, 나머지 누락 필드는 안전한 기본값으로 채웁니다.
// JSON 구조 자체를 해석할 수 없을 때만 ParsingFailed 에러를 반환합니다.
func Normalize(data []byte) ([]Product, error) {
	list, err := locateList(data)
	if err != nil {
		return nil, err
	}

	records := list.Array()
	products := make([]Product, 0, len(records))
	for i, r := range records {
		p, ok := NormalizeRecord(r)
		if !ok {
			applog.WithComponentAndFields(component, applog.Fields{
				"index": i,
				"name":  r.Get("name").String(),
			}).Warn("식별자(id)가 없는 상품 레코드를 건너뜁니다")
			continue
		}
		products = append(products, p)
	}
	return products, nil
}

// NormalizeOne 단일 상품 JSON({...} 또는 {product|data: {...}})을 Product로 변환합니다.
func NormalizeOne(data []byte) (Product, error) {
	if !gjson.ValidBytes(data) {
		return Product{}, apperrors.New(apperrors.ParsingFailed, "상품 응답이 올바른 JSON 형식이 아닙니다")
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return Product{}, apperrors.New(apperrors.ParsingFailed, "상품 응답이 JSON 객체가 아닙니다")
	}

	record := root
	if !firstExisting(root, idPaths).Exists() {
		for _, path := range itemEnvelopePaths {
			if inner := root.Get(path); inner.IsObject() {
				record = inner
				break
			}
		}
	}

	p, ok := NormalizeRecord(record)
	if !ok {
		return Product{}, apperrors.New(apperrors.ParsingFailed, "상품 응답에 식별자(id)가 없습니다")
	}
	return p, nil
}

// NormalizeRecord 하나의 상품 레코드를 변환합니다. 식별자가 없으면 false를 반환합니다.
func NormalizeRecord(r gjson.Result) (Product, bool) {
	id := strings.TrimSpace(firstExisting(r, idPaths).String())
	if id == "" {
		return Product{}, false
	}

	return Product{
		ID:           id,
		Name:         strutil.NormalizeSpaces(r.Get("name").String()),
		Description:  flattenHTML(r.Get("description").String()),
		Price:        parsePrice(r.Get("price")),
		Category:     strings.TrimSpace(r.Get("category").String()),
		ImageURL:     strings.TrimSpace(firstExisting(r, imagePaths).String()),
		IsActive:     boolOrDefault(r.Get("isActive"), true),
		IsNewArrival: boolOrDefault(r.Get("isNewArrival"), false),
		CreatedOn:    parseTimestamp(firstExisting(r, createdOnPaths)),
	}, true
}

func locateList(data []byte) (gjson.Result, error) {
	if !gjson.ValidBytes(data) {
		return gjson.Result{}, apperrors.New(apperrors.ParsingFailed, "상품 목록 응답이 올바른 JSON 형식이 아닙니다")
	}

	root := gjson.ParseBytes(data)
	if root.IsArray() {
		return root, nil
	}
	if root.IsObject() {
		for _, path := range listEnvelopePaths {
			if list := root.Get(path); list.IsArray() {
				return list, nil
			}
		}
	}

	return gjson.Result{}, apperrors.New(apperrors.ParsingFailed, "상품 목록 응답에서 상품 배열을 찾을 수 없습니다")
}

func firstExisting(r gjson.Result, paths []string) gjson.Result {
	for _, path := range paths {
		if v := r.Get(path); v.Exists() && v.Type != gjson.Null {
			return v
		}
	}
	return gjson.Result{}
}

// parsePrice 숫자 또는 "1,299.00" 같은 문자열 가격을 해석합니다. 해석할 수 없거나 음수이면 0입니다.
func parsePrice(v gjson.Result) float64 {
	var price float64
	switch v.Type {
	case gjson.Number:
		price = v.Float()
	case gjson.String:
		s := strings.ReplaceAll(strings.TrimSpace(v.Str), ",", "")
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		price = f
	default:
		return 0
	}

	if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return 0
	}
	return price
}

// parseTimestamp RFC3339, 날짜 문자열 또는 epoch 밀리초를 해석합니다. 해석할 수 없으면 제로 값(등록일 없음)입니다.
func parseTimestamp(v gjson.Result) time.Time {
	switch v.Type {
	case gjson.Number:
		return fromEpochMillis(v.Int())
	case gjson.String:
		s := strings.TrimSpace(v.Str)
		if s == "" {
			return time.Time{}
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t.UTC()
			}
		}
		if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
			return fromEpochMillis(ms)
		}
	}
	return time.Time{}
}

func fromEpochMillis(ms int64) time.Time {
	if ms <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}

func boolOrDefault(v gjson.Result, def bool) bool {
	if !v.Exists() || v.Type == gjson.Null {
		return def
	}
	return v.Bool()
}

// flattenHTML HTML이 포함된 설명을 일반 텍스트로 변환하고 공백을 정리합니다.
func flattenHTML(s string) string {
	if !strings.Contains(s, "<") {
		return strutil.NormalizeSpaces(s)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strutil.NormalizeSpaces(s)
	}

	// 블록 요소 사이의 단어가 붙지 않도록 줄바꿈 요소 뒤에 공백을 넣습니다.
	doc.Find("br, p, li, div").Each(func(_ int, sel *goquery.Selection) {
		sel.AppendHtml(" ")
	})

	return strutil.NormalizeSpaces(doc.Text())
}
