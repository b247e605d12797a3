package source

import (
	"net/http"
	"net/url"
	"slices"
	"strings"
)

const redacted = "xxxxx"

var (
	// sensitiveExactKeys 값 전체를 가려야 하는 쿼리 파라미터 이름 (소문자 비교)
	sensitiveExactKeys = []string{
		"token", "auth", "key", "secret", "pass", "password", "passwd", "signature",
		"access_token", "refresh_token", "api_key", "client_secret", "session",
	}

	sensitiveSuffixes = []string{
		"_token", "_secret", "_key", "_password",
	}

	sensitiveHeaders = []string{"Authorization", "Proxy-Authorization", "Cookie", "Set-Cookie"}
)

// RedactURL 로그에 기록하기 위해 URL의 사용자 정보와 민감한 쿼리 파라미터 값을 가립니다.
func RedactURL(u *url.URL) string {
	if u == nil {
		return ""
	}

	ru := *u

	if u.User != nil {
		if _, has := u.User.Password(); has {
			ru.User = url.UserPassword(u.User.Username(), redacted)
		} else if u.User.Username() != "" {
			ru.User = url.User(redacted)
		}
	}

	if u.RawQuery != "" {
		query := ru.Query()
		for key := range query {
			if IsSensitiveKey(key) {
				query.Set(key, redacted)
			}
		}
		ru.RawQuery = query.Encode()
	}

	return ru.String()
}

// redactHeaders 인증 관련 헤더 값을 가린 복사본을 반환합니다.
func redactHeaders(h http.Header) http.Header {
	if h == nil {
		return nil
	}

	masked := h.Clone()
	for _, key := range sensitiveHeaders {
		if masked.Get(key) != "" {
			masked.Set(key, "***")
		}
	}
	return masked
}

// IsSensitiveKey 파라미터 이름이 토큰이나 비밀번호처럼 로그에 남기면 안 되는 값을 가리키는지 판단합니다.
func IsSensitiveKey(key string) bool {
	lowerKey := strings.ToLower(key)

	if slices.Contains(sensitiveExactKeys, lowerKey) {
		return true
	}
	for _, suffix := range sensitiveSuffixes {
		if strings.HasSuffix(lowerKey, suffix) {
			return true
		}
	}
	return false
}
