package notification

import (
	"context"

	"github.com/darkkaiser/storefront-server/internal/config"
	applog "github.com/darkkaiser/storefront-server/pkg/log"
)

// Sender 완성된 메시지를 실제 알림 채널로 전송하는 인터페이스입니다.
type Sender interface {
	// Name 로깅에 사용할 채널 이름을 반환합니다.
	Name() string

	// Send 메시지를 전송합니다. 전송이 끝나거나 실패할 때까지 블로킹됩니다.
	Send(ctx context.Context, message string) error
}

// NewSender 설정에 따라 알림 채널을 선택합니다.
// 텔레그램이 설정되어 있지 않으면 메시지를 로그로만 남기는 Sender를 반환합니다.
func NewSender(appConfig *config.AppConfig) (Sender, error) {
	if appConfig.Notifier.Telegram.Enabled() {
		return NewTelegramSender(appConfig.Notifier.Telegram, appConfig.Debug)
	}

	applog.WithComponent(component).Warn("알림 채널이 설정되지 않았습니다: 알림 메시지는 로그로만 기록됩니다")

	return logSender{}, nil
}

// logSender 알림 채널 없이 메시지를 로그로만 기록합니다.
type logSender struct{}

func (logSender) Name() string {
	return "log"
}

func (logSender) Send(_ context.Context, message string) error {
	applog.WithComponentAndFields(component, applog.Fields{
		"message": message,
	}).Info("알림 메시지 (전송 채널 없음)")

	return nil
}
