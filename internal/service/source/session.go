package source

import (
	"context"
	"os"
	"strings"

	"github.com/darkkaiser/storefront-server/internal/service/contract"
)

// StaticSessionProvider 설정 파일에 지정된 고정 토큰을 제공합니다.
type StaticSessionProvider struct {
	token string
}

var _ contract.SessionProvider = (*StaticSessionProvider)(nil)

func NewStaticSessionProvider(token string) *StaticSessionProvider {
	return &StaticSessionProvider{token: strings.TrimSpace(token)}
}

func (p *StaticSessionProvider) Token(_ context.Context) (string, error) {
	return p.token, nil
}

// EnvSessionProvider 요청 시점마다 환경 변수에서 토큰을 읽습니다.
// 토큰을 교체할 때 서버를 재시작하지 않아도 다음 요청부터 새 토큰이 사용됩니다.
type EnvSessionProvider struct {
	name   string
	lookup func(string) (string, bool)
}

var _ contract.SessionProvider = (*EnvSessionProvider)(nil)

func NewEnvSessionProvider(name string) *EnvSessionProvider {
	return &EnvSessionProvider{
		name:   name,
		lookup: os.LookupEnv,
	}
}

func (p *EnvSessionProvider) Token(_ context.Context) (string, error) {
	v, _ := p.lookup(p.name)
	return strings.TrimSpace(v), nil
}

// NewSessionProvider 고정 토큰이 있으면 StaticSessionProvider를, 없고 환경 변수 이름이 있으면
// EnvSessionProvider를 반환합니다. 둘 다 비어 있으면 항상 익명(빈 토큰)을 제공합니다.
func NewSessionProvider(token, tokenEnv string) contract.SessionProvider {
	if strings.TrimSpace(token) != "" {
		return NewStaticSessionProvider(token)
	}
	if tokenEnv != "" {
		return NewEnvSessionProvider(tokenEnv)
	}
	return NewStaticSessionProvider("")
}
