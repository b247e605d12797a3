package log

import (
	"maps"

	"github.com/sirupsen/logrus"
)

// componentKey 모든 로그에 공통으로 부착되는 컴포넌트 식별 필드의 키입니다.
const componentKey = "component"

// WithComponent component 필드가 설정된 로그 Entry를 반환합니다.
//
// 로그 수집기에서 서비스 단위로 필터링할 수 있도록, 애플리케이션의 모든 로그는
// 이 함수 또는 WithComponentAndFields를 통해 기록하는 것을 원칙으로 합니다.
func WithComponent(component string) *Entry {
	return logrus.WithField(componentKey, component)
}

// WithComponentAndFields component 필드와 추가 필드를 함께 설정한 로그 Entry를 반환합니다.
// 호출자가 전달한 fields 맵은 변경되지 않습니다.
func WithComponentAndFields(component string, fields Fields) *Entry {
	merged := make(Fields, len(fields)+1)
	maps.Copy(merged, fields)
	merged[componentKey] = component

	return logrus.WithFields(merged)
}

// WithFields 컴포넌트 구분이 필요 없는 공용 로그(예: HTTP 접근 로그)를 위한 Entry를 반환합니다.
func WithFields(fields Fields) *Entry {
	return logrus.WithFields(fields)
}

// StandardLogger 전역 Logger 인스턴스를 반환합니다.
// 외부 라이브러리(Echo, cron 등)의 로거를 애플리케이션 로거로 통합할 때 사용합니다.
func StandardLogger() *Logger {
	return logrus.StandardLogger()
}

// SetLevel 전역 로그 레벨을 변경합니다.
func SetLevel(level Level) {
	logrus.SetLevel(level)
}

// IsDebugEnabled 현재 전역 로그 레벨에서 Debug 로그가 기록되는지 여부를 반환합니다.
func IsDebugEnabled() bool {
	return logrus.IsLevelEnabled(DebugLevel)
}
