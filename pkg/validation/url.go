package validation

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ValidateCORSOrigin 'Scheme://Host[:Port]' 형식의 CORS Origin인지 검증합니다.
// 와일드카드('*')는 유효하며, 경로(후행 슬래시 포함), 쿼리, Fragment, 사용자 정보는 허용하지 않습니다.
func ValidateCORSOrigin(origin string) error {
	trimmed := strings.TrimSpace(origin)
	if trimmed == "*" {
		return nil
	}
	if trimmed == "" {
		return fmt.Errorf("CORS Origin은 비어있을 수 없습니다")
	}
	if strings.HasSuffix(trimmed, "/") {
		return fmt.Errorf("CORS Origin 포맷 오류: 경로 구분자('/')로 끝날 수 없습니다 (input=%q)", trimmed)
	}

	u, err := parseHTTPURL("CORS Origin", trimmed)
	if err != nil {
		return err
	}
	if u.Path != "" {
		return fmt.Errorf("CORS Origin 포맷 오류: 경로(Path)를 포함할 수 없습니다 (input=%q)", trimmed)
	}

	return nil
}

// ValidateBaseURL 백엔드 API의 Base URL로 사용할 수 있는 http(s) 절대 URL인지 검증합니다.
// Base URL은 경로 접두사(예: /api)를 가질 수 있지만 쿼리와 Fragment는 허용하지 않습니다.
func ValidateBaseURL(raw string) error {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return fmt.Errorf("Base URL은 비어있을 수 없습니다")
	}

	_, err := parseHTTPURL("Base URL", trimmed)
	return err
}

// parseHTTPURL Scheme, Host, Port 및 부가 구성 요소를 공통 규칙으로 검증한 뒤 파싱 결과를 반환합니다.
func parseHTTPURL(kind, s string) (*url.URL, error) {
	u, err := url.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("%s 파싱 실패: 유효한 URL 형식이 아닙니다 (input=%q): %w", kind, s, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%s 스키마 오류: 'http' 또는 'https'만 허용됩니다 (input=%q)", kind, s)
	}
	if u.RawQuery != "" || u.ForceQuery {
		return nil, fmt.Errorf("%s 포맷 오류: 쿼리 파라미터를 포함할 수 없습니다 (input=%q)", kind, s)
	}
	if u.Fragment != "" {
		return nil, fmt.Errorf("%s 포맷 오류: URL Fragment(#)를 포함할 수 없습니다 (input=%q)", kind, s)
	}
	if u.User != nil {
		return nil, fmt.Errorf("%s 포맷 오류: 사용자 자격 증명(UserInfo)을 포함할 수 없습니다 (input=%q)", kind, s)
	}

	if portStr := u.Port(); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("%s 포트 오류: 포트 번호가 유효하지 않습니다 (input=%q, port=%s)", kind, s, portStr)
		}
		if err := ValidatePort(port); err != nil {
			return nil, fmt.Errorf("%s 포트 오류: %w (input=%q)", kind, err, s)
		}
	}

	host := u.Hostname()
	if host == "" {
		return nil, fmt.Errorf("%s 포맷 오류: 호스트(Host) 정보가 누락되었습니다 (input=%q)", kind, s)
	}
	if err := ValidateHostname(host); err != nil {
		return nil, fmt.Errorf("%s 호스트 유효성 검증 실패: %w", kind, err)
	}

	return u, nil
}
