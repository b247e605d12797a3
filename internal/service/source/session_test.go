package source

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionProviders(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("고정 토큰", func(t *testing.T) {
		t.Parallel()

		token, err := NewStaticSessionProvider("  abc  ").Token(ctx)
		assert.NoError(t, err)
		assert.Equal(t, "abc", token)
	})

	t.Run("환경 변수 토큰은 호출 시점에 읽음", func(t *testing.T) {
		t.Parallel()

		env := map[string]string{}
		p := NewEnvSessionProvider("SHOP_TOKEN")
		p.lookup = func(k string) (string, bool) { v, ok := env[k]; return v, ok }

		token, _ := p.Token(ctx)
		assert.Empty(t, token)

		env["SHOP_TOKEN"] = "rotated"
		token, _ = p.Token(ctx)
		assert.Equal(t, "rotated", token)
	})

	t.Run("선택 규칙", func(t *testing.T) {
		t.Parallel()

		assert.IsType(t, &StaticSessionProvider{}, NewSessionProvider("abc", "SHOP_TOKEN"))
		assert.IsType(t, &EnvSessionProvider{}, NewSessionProvider(" ", "SHOP_TOKEN"))

		token, err := NewSessionProvider("", "").Token(ctx)
		assert.NoError(t, err)
		assert.Empty(t, token, "설정이 없으면 익명")
	})
}
