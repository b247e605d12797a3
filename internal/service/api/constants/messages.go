package constants

// 클라이언트에게 반환되는 에러 메시지 상수입니다.
const (
	// 400 Bad Request
	ErrMsgBadRequest = "잘못된 요청입니다"

	// 401 Unauthorized
	ErrMsgUnauthorizedAdminToken = "관리자 토큰이 유효하지 않습니다"

	// 403 Forbidden
	ErrMsgForbiddenAdminDisabled = "관리자 API가 비활성화되어 있습니다"

	// 404 Not Found
	ErrMsgNotFound        = "요청한 리소스를 찾을 수 없습니다"
	ErrMsgProductNotFound = "상품을 찾을 수 없습니다"

	// 409 Conflict
	ErrMsgConflictSyncInProgress = "카탈로그 동기화가 이미 진행 중입니다. 잠시 후 다시 시도해주세요"

	// 429 Too Many Requests
	ErrMsgTooManyRequests = "요청이 너무 많습니다. 잠시 후 다시 시도해주세요"

	// 500 Internal Server Error
	ErrMsgInternalServer = "내부 서버 오류가 발생했습니다"

	// 502 Bad Gateway
	ErrMsgBadGateway = "상품 정보를 가져오지 못했습니다. 잠시 후 다시 시도해주세요"

	// 503 Service Unavailable
	ErrMsgServiceUnavailable  = "서비스가 점검 중이거나 종료되었습니다. 관리자에게 문의해 주세요"
	ErrMsgCatalogNotSynced    = "카탈로그가 아직 동기화되지 않았습니다. 잠시 후 다시 시도해주세요"
	ErrMsgBackendUnavailable  = "백엔드 서버를 일시적으로 사용할 수 없습니다. 잠시 후 다시 시도해주세요"
	ErrMsgBackendTimeout      = "백엔드 서버의 응답이 지연되고 있습니다. 잠시 후 다시 시도해주세요"
	ErrMsgBackendUnauthorized = "백엔드 인증에 실패했습니다. 관리자에게 문의해 주세요"
)

// 내부 로깅을 위한 메시지 상수입니다.
const (
	LogMsgServiceStarting       = "API 서비스 시작중..."
	LogMsgServiceStarted        = "API 서비스 시작됨"
	LogMsgServiceAlreadyStarted = "API 서비스가 이미 시작됨!!!"
	LogMsgServiceStopping       = "API 서비스 중지중..."
	LogMsgServiceStopped        = "API 서비스 중지됨"
	LogMsgServiceUnexpectedExit = "API 서비스가 예기치 않게 종료되었습니다"

	LogMsgServiceHTTPServerStarting      = "API 서비스 > http 서버 시작"
	LogMsgServiceHTTPServerStopped       = "API 서비스 > http 서버 중지됨"
	LogMsgServiceHTTPServerShutdownError = "API 서비스 > http 서버 종료 중 오류 발생"
	LogMsgServiceHTTPServerFatalError    = "API 서비스 > http 서버를 구성하는 중에 치명적인 오류가 발생하였습니다."

	LogMsgHTTP4xxClientError = "HTTP 4xx: 클라이언트 요청 오류"
	LogMsgHTTP5xxServerError = "HTTP 5xx: 서버 내부 오류"
)

// 시스템 구동 시 발생할 수 있는 패닉 메시지 상수입니다.
const (
	PanicMsgAppConfigRequired          = "AppConfig는 필수입니다"
	PanicMsgNotificationSenderRequired = "NotificationSender는 필수입니다"
	PanicMsgProductSourceRequired      = "ProductSource는 필수입니다"
	PanicMsgOrderSourceRequired        = "OrderSource는 필수입니다"
	PanicMsgCatalogSyncerRequired      = "CatalogSyncer는 필수입니다"
	PanicMsgCatalogReaderRequired      = "CatalogReader는 필수입니다"
)

// 핸들러 디버그 로깅 메시지 상수입니다.
const (
	LogMsgHealthCheck   = "헬스체크 조회"
	LogMsgVersionInfo   = "버전 정보 조회"
	LogMsgProductList   = "상품 목록 조회"
	LogMsgProductDetail = "상품 상세 조회"
	LogMsgFacetList     = "카테고리 패싯 조회"
	LogMsgCatalogSync   = "카탈로그 수동 동기화 요청"
	LogMsgOrderList     = "사용자별 주문 목록 조회"
	LogMsgServeStale    = "백엔드 갱신에 실패하여 이전 데이터로 응답합니다"
)
