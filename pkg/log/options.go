package log

import (
	"fmt"
	"os"
)

// Options 로깅 시스템 초기화 옵션입니다.
type Options struct {
	Name  string // 로그 파일명에 사용될 애플리케이션 식별자 (필수)
	Dir   string // 로그 디렉토리 (빈 값이면 "logs")
	Level Level  // 로그 레벨 (0이면 Info)

	MaxAge     int // 로테이션 된 파일의 보관 일수 (0: 삭제하지 않음)
	MaxSizeMB  int // 파일 하나의 최대 크기 (0: 100MB)
	MaxBackups int // 보관할 로테이션 파일 개수 (0: 20개)

	EnableCriticalLog bool // ERROR 이상의 로그를 *.critical.log 로 별도 보관
	EnableVerboseLog  bool // DEBUG 이하의 로그를 *.verbose.log 로 분리
	EnableConsoleLog  bool // 표준 출력으로도 기록 (개발 환경)

	ReportCaller     bool   // 호출 위치(함수명:라인) 기록 여부
	CallerPathPrefix string // 호출 위치에서 잘라낼 패키지 경로 접두사
}

// Validate Options 값의 유효성을 검증합니다.
func (opts *Options) Validate() error {
	if opts.Name == "" {
		return fmt.Errorf("애플리케이션 식별자(Name)가 설정되지 않았습니다")
	}

	if opts.Dir != "" {
		if info, err := os.Stat(opts.Dir); err == nil && !info.IsDir() {
			return fmt.Errorf("로그 디렉토리 경로(%s)가 이미 파일로 존재합니다", opts.Dir)
		}
	}

	if opts.MaxAge < 0 || opts.MaxSizeMB < 0 || opts.MaxBackups < 0 {
		return fmt.Errorf("로그 로테이션 설정은 0 이상이어야 합니다 (max_age=%d, max_size_mb=%d, max_backups=%d)", opts.MaxAge, opts.MaxSizeMB, opts.MaxBackups)
	}

	return nil
}
