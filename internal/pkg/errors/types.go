package errors

// ErrorType 에러의 성격을 분류하는 타입입니다.
// API 계층은 이 분류를 기준으로 HTTP 상태 코드와 로그 레벨을 결정합니다.
type ErrorType int

const (
	// Unknown 분류되지 않은 에러 (기본값)
	Unknown ErrorType = iota

	// Internal 내부 로직 오류 (예상하지 못한 상태, 버그)
	Internal

	// System 디스크, 네트워크 등 인프라 수준의 장애
	System

	// Unauthorized 인증 실패 (세션 토큰 누락, 만료)
	Unauthorized

	// Forbidden 인증은 되었으나 권한이 없음
	Forbidden

	// InvalidInput 잘못된 입력값
	InvalidInput

	// Conflict 리소스 상태 충돌 (이미 진행 중인 동기화 등)
	Conflict

	// NotFound 리소스를 찾을 수 없음
	NotFound

	// ExecutionFailed 작업 실행 실패 (동기화 작업, 외부 호출 등)
	ExecutionFailed

	// ParsingFailed 응답 데이터의 파싱 또는 형식 변환 실패
	ParsingFailed

	// Timeout 작업 시간 초과
	Timeout

	// Unavailable 외부 서비스의 일시적 사용 불가
	Unavailable
)

var errorTypeNames = [...]string{
	Unknown:         "Unknown",
	Internal:        "Internal",
	System:          "System",
	Unauthorized:    "Unauthorized",
	Forbidden:       "Forbidden",
	InvalidInput:    "InvalidInput",
	Conflict:        "Conflict",
	NotFound:        "NotFound",
	ExecutionFailed: "ExecutionFailed",
	ParsingFailed:   "ParsingFailed",
	Timeout:         "Timeout",
	Unavailable:     "Unavailable",
}

func (t ErrorType) String() string {
	if t < 0 || int(t) >= len(errorTypeNames) {
		return "ErrorType(" + itoa(int(t)) + ")"
	}
	return errorTypeNames[t]
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}

	neg := n < 0
	if neg {
		n = -n
	}

	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
