package config

import (
	"fmt"
	"strings"
	"time"

	apperrors "github.com/darkkaiser/storefront-server/internal/pkg/errors"
	"github.com/go-playground/validator/v10"
)

// AppConfig 애플리케이션의 모든 설정을 포함하는 최상위 구조체
type AppConfig struct {
	Debug         bool                `json:"debug"`
	Backend       BackendConfig       `json:"backend"`
	Sync          SyncConfig          `json:"sync"`
	Notifier      NotifierConfig      `json:"notifier"`
	StorefrontAPI StorefrontAPIConfig `json:"storefront_api"`
}

// validate 설정 파일 로드 직후, 각 설정 항목의 정합성과 필수 값의 유효성을 검증합니다.
func (c *AppConfig) validate(v *validator.Validate) error {
	if err := checkStruct(v, c.Backend, "백엔드(backend)"); err != nil {
		return err
	}
	if err := checkStruct(v, c.Sync, "동기화(sync)"); err != nil {
		return err
	}
	if err := checkStruct(v, c.Notifier, "알림(notifier)"); err != nil {
		return err
	}
	return c.StorefrontAPI.validate(v)
}

// VerifyRecommendations 강제하지는 않지만 운영 안정성과 보안을 위해 권장되는 설정에서 벗어난 항목을 경고 메시지로 반환합니다.
func (c *AppConfig) VerifyRecommendations() []string {
	var warnings []string

	if port := c.StorefrontAPI.WS.ListenPort; port < 1024 {
		warnings = append(warnings, fmt.Sprintf("시스템 예약 포트(1-1023)를 사용하도록 설정되었습니다(port: %d). 이 경우 서버 구동 시 관리자 권한이 필요할 수 있습니다", port))
	}
	if strings.HasPrefix(strings.ToLower(c.Backend.BaseURL), "http://") && (c.Backend.Token != "" || c.Backend.Admin.Token != "") {
		warnings = append(warnings, "세션 토큰이 암호화되지 않은 HTTP 연결로 전송됩니다. 백엔드 Base URL에 https를 사용하세요")
	}
	if c.StorefrontAPI.AdminKey == "" {
		warnings = append(warnings, "관리자 API 키(storefront_api.admin_key)가 설정되지 않아 관리자 전용 API가 비활성화됩니다")
	}
	if !c.Notifier.Telegram.Enabled() {
		warnings = append(warnings, "알림 채널이 설정되지 않아 신상품 및 동기화 실패 알림이 발송되지 않습니다")
	}

	return warnings
}

// BackendConfig 상품과 주문 데이터를 제공하는 REST 백엔드 연결 설정
type BackendConfig struct {
	BaseURL      string        `json:"base_url" validate:"required,base_url"`
	Timeout      time.Duration `json:"timeout" validate:"gt=0"`
	MaxRetries   int           `json:"max_retries" validate:"min=0,max=10"`
	RetryDelay   time.Duration `json:"retry_delay" validate:"gt=0"`
	MaxBodyBytes int64         `json:"max_body_bytes" validate:"gt=0"`

	// Token 일반 사용자 권한의 세션 토큰입니다. 비어 있으면 TokenEnv의 환경 변수를, 그것도 없으면 익명으로 요청합니다.
	Token    string `json:"token"`
	TokenEnv string `json:"token_env"`

	Admin AdminSessionConfig `json:"admin"`
}

// AdminSessionConfig 전체 상품(비활성 포함)과 주문 목록 조회에 사용하는 관리자 세션 설정
type AdminSessionConfig struct {
	Token    string `json:"token"`
	TokenEnv string `json:"token_env"`
}

// SyncConfig 백엔드 카탈로그를 주기적으로 가져와 스냅샷으로 저장하는 작업의 설정
type SyncConfig struct {
	Enabled     bool   `json:"enabled"`
	TimeSpec    string `json:"time_spec" validate:"required_if=Enabled true,omitempty,cron_spec"`
	SnapshotDir string `json:"snapshot_dir" validate:"required"`
}

// NotifierConfig 알림 채널 설정
type NotifierConfig struct {
	Telegram TelegramConfig `json:"telegram"`
}

// TelegramConfig 텔레그램 봇 토큰 및 채팅 ID 정보. 봇 토큰이 비어 있으면 알림을 보내지 않습니다.
type TelegramConfig struct {
	BotToken string `json:"bot_token" validate:"omitempty,telegram_bot_token"`
	ChatID   int64  `json:"chat_id" validate:"required_with=BotToken"`
}

// Enabled 텔레그램 알림이 설정되었는지 여부를 반환합니다.
func (c TelegramConfig) Enabled() bool {
	return c.BotToken != ""
}

// StorefrontAPIConfig 스토어프론트 REST API 서버 설정
type StorefrontAPIConfig struct {
	WS             WSConfig        `json:"ws"`
	CORS           CORSConfig      `json:"cors"`
	RateLimit      RateLimitConfig `json:"rate_limit"`
	RequestTimeout time.Duration   `json:"request_timeout" validate:"gt=0"`

	// AdminKey 관리자 전용 API 호출 시 X-Admin-Token 헤더로 전달해야 하는 키입니다. 비어 있으면 관리자 API를 막습니다.
	AdminKey string `json:"admin_key"`
}

func (c *StorefrontAPIConfig) validate(v *validator.Validate) error {
	if err := c.CORS.validate(); err != nil {
		return err
	}
	return checkStruct(v, c, "스토어프론트 API(storefront_api)")
}

// WSConfig 웹 서버의 포트 및 TLS 설정
type WSConfig struct {
	TLSServer   bool   `json:"tls_server"`
	TLSCertFile string `json:"tls_cert_file" validate:"required_if=TLSServer true,omitempty,file"`
	TLSKeyFile  string `json:"tls_key_file" validate:"required_if=TLSServer true,omitempty,file"`
	ListenPort  int    `json:"listen_port" validate:"min=1,max=65535"`
}

// CORSConfig 교차 출처 리소스 공유(CORS) 정책 설정
type CORSConfig struct {
	AllowOrigins []string `json:"allow_origins" validate:"min=1,dive,cors_origin"`
}

// validate 태그로 표현할 수 없는 와일드카드 단독 사용 규칙을 검사합니다. 개별 Origin 형식은 태그로 검증됩니다.
func (c *CORSConfig) validate() error {
	if len(c.AllowOrigins) < 2 {
		return nil
	}
	for _, origin := range c.AllowOrigins {
		if strings.TrimSpace(origin) == "*" {
			return apperrors.New(apperrors.InvalidInput, "와일드카드(*)는 다른 도메인과 함께 사용할 수 없습니다. 모든 도메인을 허용하려면 와일드카드만 설정하세요")
		}
	}
	return nil
}

// RateLimitConfig 클라이언트 IP별 요청 속도 제한 설정
type RateLimitConfig struct {
	RequestsPerSecond float64 `json:"requests_per_second" validate:"gt=0"`
	Burst             int     `json:"burst" validate:"min=1"`
}
