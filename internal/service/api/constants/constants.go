package constants

import "time"

// 서버 설정 기본값 상수입니다.
const (
	// DefaultRequestTimeout HTTP 요청 처리의 기본 타임아웃 시간
	DefaultRequestTimeout = 30 * time.Second

	// DefaultMaxBodySize 요청 본문의 최대 크기. 이 API는 본문을 거의 받지 않으므로 작게 제한합니다.
	DefaultMaxBodySize = "64K"

	// DefaultReadHeaderTimeout HTTP 헤더 읽기 최대 대기 시간 (Slowloris 방어)
	DefaultReadHeaderTimeout = 10 * time.Second

	DefaultReadTimeout  = 30 * time.Second
	DefaultWriteTimeout = 60 * time.Second
	DefaultIdleTimeout  = 120 * time.Second

	// DefaultRateLimitPerSecond IP당 초당 허용 요청 수
	DefaultRateLimitPerSecond = 20

	// DefaultRateLimitBurst IP당 순간 최대 허용 요청 수
	DefaultRateLimitBurst = 40

	// DefaultRateLimiterMaxIPs 메모리에 보관하는 IP별 Limiter의 최대 개수
	DefaultRateLimiterMaxIPs = 10000
)

// HTTP 헤더 키 상수입니다.
const (
	// XAdminToken 관리자 API 호출 시 관리자 키를 전달하는 헤더
	XAdminToken = "X-Admin-Token"

	// XCatalogStale 백엔드 갱신에 실패하여 이전에 가져온 데이터로 응답했음을 표시하는 헤더
	XCatalogStale = "X-Catalog-Stale"
)

// 헬스체크 관련 상수입니다.
const (
	HealthStatusHealthy   = "healthy"
	HealthStatusUnhealthy = "unhealthy"

	DependencyNotificationService = "notification_service"
	DependencyCatalogSync         = "catalog_sync"

	MsgDepStatusHealthy        = "정상 작동 중"
	MsgDepStatusNotInitialized = "서비스가 초기화되지 않음"
	MsgDepStatusNotSynced      = "아직 동기화되지 않음"
)

// SensitiveQueryParams 로그 기록 시 마스킹 처리해야 할 쿼리 파라미터 목록입니다.
var SensitiveQueryParams = []string{
	"admin_token",
	"api_key",
	"password",
	"token",
	"secret",
}
