package contract

import "context"

// NotificationSender 알림 발송 기능을 제공하는 인터페이스입니다.
// 카탈로그 동기화 서비스와 API 서비스는 이 인터페이스를 통해 알림 서비스를 사용합니다.
type NotificationSender interface {
	// Notify 일반 알림 메시지를 발송합니다. 실제 전송은 비동기로 이루어질 수 있습니다.
	//
	// 반환값:
	//   - error: 발송 요청이 접수되면 nil, 메시지가 비어 있거나 접수에 실패하면 에러 반환
	Notify(ctx context.Context, message string) error

	// NotifyError "오류" 성격의 알림 메시지를 발송합니다.
	// 동기화 실패처럼 관리자의 주의가 필요한 상황 알림에 사용합니다.
	NotifyError(ctx context.Context, message string) error
}

// NotificationHealthChecker Notification 서비스의 상태를 확인하는 인터페이스입니다.
type NotificationHealthChecker interface {
	// Health 서비스가 정상적으로 실행 중인지 확인합니다.
	//
	// 반환값:
	//   - error: 서비스가 정상 동작 중이면 nil, 그렇지 않으면 에러 반환 (예: ErrServiceStopped)
	Health() error
}
