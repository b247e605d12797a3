// Package maputil 맵 형태의 느슨한 입력(쿼리 파라미터, 설정 맵 등)을 구조체로 변환하는 유틸리티를 제공합니다.
package maputil

import (
	"errors"
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Decode 입력 데이터를 제네릭 타입 T의 구조체로 변환하여 반환합니다.
//
// 기본 동작:
//   - 구조체의 `json` 태그를 기준으로 필드를 매핑합니다.
//   - 유연한 타입 변환(WeaklyTypedInput)을 허용합니다. 예: "123" -> 123
//   - 쉼표로 구분된 문자열은 슬라이스로 분리됩니다. 예: "a, b" -> ["a", "b"]
//   - 정의되지 않은 입력 키는 무시합니다. (WithErrorUnused로 변경 가능)
func Decode[T any](input any, opts ...Option) (*T, error) {
	output := new(T)
	if err := DecodeTo(input, output, opts...); err != nil {
		return nil, err
	}
	return output, nil
}

// DecodeTo 입력 데이터를 output이 가리키는 구조체에 병합하여 채웁니다.
// output에 미리 설정된 값은 입력에 해당 키가 없는 한 그대로 유지됩니다.
func DecodeTo[T any](input any, output *T, opts ...Option) error {
	if output == nil {
		return errors.New("디코딩 결과를 저장할 output 포인터가 nil입니다")
	}

	cfg := &decodingConfig{
		tagName:          "json",
		weaklyTypedInput: true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}

	hooks := append(append([]mapstructure.DecodeHookFunc{}, cfg.extraHooks...),
		mapstructure.TextUnmarshallerHookFunc(),
		stringToDurationHookFunc(),
		stringToSliceHookFunc(),
	)

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           output,
		TagName:          cfg.tagName,
		WeaklyTypedInput: cfg.weaklyTypedInput,
		ErrorUnused:      cfg.errorUnused,
		Metadata:         cfg.metadata,
		DecodeHook:       mapstructure.ComposeDecodeHookFunc(hooks...),
	})
	if err != nil {
		return err
	}

	if err := decoder.Decode(input); err != nil {
		return fmt.Errorf("입력 데이터를 %T(으)로 디코딩하는 데 실패했습니다: %w", output, err)
	}

	return nil
}

// FlattenValues url.Values 형태(map[string][]string)의 다중 값 맵을 디코딩하기 좋은 형태로 변환합니다.
// 값이 하나인 키는 문자열로, 여러 개인 키는 문자열 슬라이스로 유지하며 값이 없는 키는 제외합니다.
func FlattenValues(values map[string][]string) map[string]any {
	flat := make(map[string]any, len(values))
	for k, vs := range values {
		switch len(vs) {
		case 0:
			continue
		case 1:
			flat[k] = vs[0]
		default:
			flat[k] = append([]string(nil), vs...)
		}
	}
	return flat
}

type decodingConfig struct {
	tagName          string
	weaklyTypedInput bool
	errorUnused      bool

	metadata   *mapstructure.Metadata
	extraHooks []mapstructure.DecodeHookFunc
}

// Option 디코딩 동작을 변경하는 함수형 옵션입니다.
type Option func(*decodingConfig)

// WithTagName 필드 매핑에 사용할 태그 이름을 지정합니다. (기본값: "json")
func WithTagName(tagName string) Option {
	return func(c *decodingConfig) {
		c.tagName = tagName
	}
}

// WithWeaklyTypedInput 느슨한 타입 변환 허용 여부를 지정합니다. (기본값: true)
func WithWeaklyTypedInput(enable bool) Option {
	return func(c *decodingConfig) {
		c.weaklyTypedInput = enable
	}
}

// WithErrorUnused 구조체에 없는 입력 키가 있으면 에러를 반환하도록 합니다. (기본값: false)
func WithErrorUnused(enable bool) Option {
	return func(c *decodingConfig) {
		c.errorUnused = enable
	}
}

// WithMetadata 디코딩에 사용된 키와 사용되지 않은 키를 md에 기록합니다.
func WithMetadata(md *mapstructure.Metadata) Option {
	return func(c *decodingConfig) {
		c.metadata = md
	}
}

// WithDecodeHook 기본 훅보다 먼저 실행될 사용자 정의 변환 훅을 추가합니다.
func WithDecodeHook(hooks ...mapstructure.DecodeHookFunc) Option {
	return func(c *decodingConfig) {
		c.extraHooks = append(c.extraHooks, hooks...)
	}
}
