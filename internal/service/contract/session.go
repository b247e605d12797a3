package contract

import "context"

// SessionProvider 백엔드 요청에 사용할 세션 토큰을 제공하는 인터페이스입니다.
//
// 백엔드 클라이언트는 전역 상태나 환경 변수를 직접 읽지 않고, 주입된 SessionProvider만을 통해
// 토큰을 얻습니다. 빈 문자열을 반환하면 익명 요청으로 간주되어 Authorization 헤더가 생략됩니다.
type SessionProvider interface {
	Token(ctx context.Context) (string, error)
}

// SessionProviderFunc 일반 함수를 SessionProvider로 사용할 수 있게 해주는 어댑터입니다.
type SessionProviderFunc func(ctx context.Context) (string, error)

// Token f(ctx)를 호출합니다.
func (f SessionProviderFunc) Token(ctx context.Context) (string, error) {
	return f(ctx)
}
