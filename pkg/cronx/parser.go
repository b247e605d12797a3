// Package cronx robfig/cron 기반 스케줄 표현식의 파싱과 검증을 애플리케이션 표준 형식으로 묶어 제공합니다.
package cronx

import (
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

// StandardParser 초 단위를 포함하는 6필드 형식의 Cron 파서를 반환합니다.
//
// 필드 순서는 [초] [분] [시] [일] [월] [요일]이며, @daily, @every 1h 같은 Descriptor도 허용합니다.
// 표준 5필드 형식은 지원하지 않습니다.
func StandardParser() cron.Parser {
	return cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
}

// Validate 표현식이 StandardParser로 해석 가능한지 검사합니다. 앞뒤 공백은 무시합니다.
func Validate(spec string) error {
	if _, err := StandardParser().Parse(strings.TrimSpace(spec)); err != nil {
		return fmt.Errorf("Cron 표현식 파싱 실패(spec=%q): %w", spec, err)
	}
	return nil
}

// NextRuns from 이후 예정된 실행 시각을 최대 n개 계산합니다.
func NextRuns(spec string, from time.Time, n int) ([]time.Time, error) {
	schedule, err := StandardParser().Parse(strings.TrimSpace(spec))
	if err != nil {
		return nil, fmt.Errorf("Cron 표현식 파싱 실패(spec=%q): %w", spec, err)
	}

	runs := make([]time.Time, 0, max(n, 0))
	next := from
	for range n {
		next = schedule.Next(next)
		if next.IsZero() {
			break
		}
		runs = append(runs, next)
	}
	return runs, nil
}
