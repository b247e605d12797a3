// Package testutil 여러 패키지의 테스트에서 공유하는 네트워크 및 인증서 헬퍼를 제공합니다.
package testutil

import (
	"fmt"
	"net"
	"testing"
	"time"
)

// FreePort 테스트 서버가 바인딩할 수 있는 임의의 빈 포트를 반환합니다.
func FreePort(t testing.TB) int {
	t.Helper()

	l, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		t.Fatalf("빈 포트를 찾지 못했습니다: %v", err)
	}
	defer l.Close()

	return l.Addr().(*net.TCPAddr).Port
}

// WaitForPort 서버가 port에서 연결을 받기 시작할 때까지 최대 timeout 동안 대기합니다.
func WaitForPort(t testing.TB, port int, timeout time.Duration) {
	t.Helper()

	address := fmt.Sprintf("localhost:%d", port)
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		conn, err := net.DialTimeout("tcp", address, 100*time.Millisecond)
		if err == nil {
			conn.Close()
			return
		}
		time.Sleep(10 * time.Millisecond)
	}

	t.Fatalf("서버가 %v 안에 %s에서 시작되지 않았습니다", timeout, address)
}
