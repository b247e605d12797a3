package config

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	apperrors "github.com/darkkaiser/storefront-server/internal/pkg/errors"
	"github.com/darkkaiser/storefront-server/pkg/cronx"
	"github.com/darkkaiser/storefront-server/pkg/validation"
	"github.com/go-playground/validator/v10"
)

// 텔레그램 봇 토큰 형식 (예: 123456:ABC-DEF1234ghIkl-zyx57W2v1u123ew11)
var telegramBotTokenRegex = regexp.MustCompile(`^\d{3,20}:[a-zA-Z0-9_-]{30,50}$`)

// newValidator 설정 검증용 Validator를 생성하고 커스텀 규칙을 등록합니다.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// 에러 메시지에 구조체 필드명 대신 설정 파일의 키 이름(json 태그)을 사용합니다.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	rules := map[string]validator.Func{
		"cors_origin":        validateCORSOrigin,
		"telegram_bot_token": validateTelegramBotToken,
		"cron_spec":          validateCronSpec,
		"base_url":           validateBaseURL,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("초기화 치명적 오류: '%s' 커스텀 유효성 검사 함수 등록에 실패했습니다: %v", tag, err))
		}
	}

	return v
}

func validateCORSOrigin(fl validator.FieldLevel) bool {
	return validation.ValidateCORSOrigin(fl.Field().String()) == nil
}

func validateBaseURL(fl validator.FieldLevel) bool {
	return validation.ValidateBaseURL(fl.Field().String()) == nil
}

func validateCronSpec(fl validator.FieldLevel) bool {
	return cronx.Validate(fl.Field().String()) == nil
}

func validateTelegramBotToken(fl validator.FieldLevel) bool {
	return telegramBotTokenRegex.MatchString(fl.Field().String())
}

// checkStruct 구조체를 태그 규칙에 따라 검증하고, 첫 번째 위반 항목을 사용자 친화적인 도메인 에러로 변환합니다.
func checkStruct(v *validator.Validate, s any, contextName string) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("%s 유효성 검증에 실패했습니다", contextName))
	}

	fe := validationErrors[0]

	switch fe.Tag() {
	case "cors_origin":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("CORS Origin 형식이 올바르지 않습니다: '%v' (형식: Scheme://Host[:Port], 예: https://example.com)", fe.Value()))
	case "telegram_bot_token":
		return apperrors.New(apperrors.InvalidInput, "텔레그램 BotToken 형식이 올바르지 않습니다 (올바른 형식: 123456:ABC-DEF...)")
	case "cron_spec":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("동기화 스케줄(time_spec)이 올바른 Cron 표현식이 아닙니다: '%v' (형식: 초 분 시 일 월 요일)", fe.Value()))
	case "base_url":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("백엔드 주소(base_url)는 http(s) 절대 URL이어야 합니다: '%v'", fe.Value()))
	}

	switch fe.StructField() {
	case "BaseURL":
		return apperrors.New(apperrors.InvalidInput, "백엔드 주소(base_url)가 설정되지 않았습니다")
	case "MaxRetries":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("최대 재시도 횟수(max_retries)는 0에서 10 사이의 값이어야 합니다: '%v'", fe.Value()))
	case "RetryDelay":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("재시도 대기 시간(retry_delay)은 0보다 커야 합니다: '%v'", fe.Value()))
	case "ListenPort":
		return apperrors.New(apperrors.InvalidInput, "웹 서버 포트(listen_port)는 1에서 65535 사이의 값이어야 합니다")
	case "TimeSpec":
		return apperrors.New(apperrors.InvalidInput, "동기화가 활성화된 경우 스케줄(time_spec)은 필수입니다")
	case "ChatID":
		return apperrors.New(apperrors.InvalidInput, "텔레그램 봇 토큰이 설정된 경우 채팅 ID(chat_id)는 필수입니다")
	case "TLSCertFile", "TLSKeyFile":
		if fe.Tag() == "required_if" {
			return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("TLS 서버 활성화 시 %s는 필수입니다", fe.Field()))
		}
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("지정된 TLS 파일(%s)을 찾을 수 없습니다: '%v'", fe.Field(), fe.Value()))
	}

	return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s의 설정이 올바르지 않습니다: %s (조건: %s)", contextName, fe.Namespace(), fe.Tag()))
}
