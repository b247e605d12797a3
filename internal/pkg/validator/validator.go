// Package validator go-playground/validator를 감싸 구조체 검증과 한국어 에러 메시지 변환을 제공합니다.
//
// 필드 이름은 `korean` 태그 값을 사용하며, 태그가 없으면 구조체 필드 이름을 사용합니다.
package validator

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	instance *validator.Validate
	once     sync.Once
)

// Get 전역 validator 인스턴스를 반환합니다. 최초 호출 시 한 번만 초기화됩니다.
func Get() *validator.Validate {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())

		instance.RegisterTagNameFunc(func(fld reflect.StructField) string {
			if name := fld.Tag.Get("korean"); name != "" {
				return name
			}
			return fld.Name
		})
	})

	return instance
}

// Struct 구조체의 validate 태그를 기반으로 검증을 수행합니다.
func Struct(s any) error {
	return Get().Struct(s)
}

// FormatValidationError 검증 에러를 사용자 친화적인 한국어 메시지로 변환합니다.
// 여러 필드에서 검증이 실패한 경우 첫 번째 에러만 변환합니다.
func FormatValidationError(err error) string {
	if err == nil {
		return ""
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return err.Error()
	}

	return formatFieldError(validationErrors[0])
}

func formatFieldError(fe validator.FieldError) string {
	field := fe.Field()
	isString := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s는 필수입니다", field)
	case "min":
		if isString {
			return fmt.Sprintf("%s는 최소 %s자 이상이어야 합니다", field, fe.Param())
		}
		return fmt.Sprintf("%s는 최소 %s 이상이어야 합니다", field, fe.Param())
	case "max":
		if isString {
			return fmt.Sprintf("%s는 최대 %s자까지 입력 가능합니다", field, fe.Param())
		}
		return fmt.Sprintf("%s는 최대 %s까지 입력 가능합니다", field, fe.Param())
	case "len":
		if isString {
			return fmt.Sprintf("%s는 %s자여야 합니다", field, fe.Param())
		}
		return fmt.Sprintf("%s는 갯수가 %s개여야 합니다", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s는 %s 이상이어야 합니다", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s는 %s 이하이어야 합니다", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s는 허용된 값 중 하나여야 합니다 [%s]", field, fe.Param())
	case "printascii":
		return fmt.Sprintf("%s는 출력 가능한 ASCII 문자만 입력 가능합니다", field)
	case "excludesall":
		return fmt.Sprintf("%s에 사용할 수 없는 문자가 포함되어 있습니다", field)
	default:
		return fmt.Sprintf("%s 값 검증 실패 (%s)", field, fe.Tag())
	}
}
