// Package notification 카탈로그 변경 및 오류 알림을 비동기로 전송하는 서비스를 제공합니다.
package notification

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	apperrors "github.com/darkkaiser/storefront-server/internal/pkg/errors"
	"github.com/darkkaiser/storefront-server/internal/service/contract"
	applog "github.com/darkkaiser/storefront-server/pkg/log"
)

// component Notification 서비스의 로깅용 컴포넌트 이름
const component = "notification.service"

const (
	// queueSize 전송 대기열의 크기
	queueSize = 30

	// enqueueTimeout 대기열이 가득 찼을 때 발송 요청이 기다리는 최대 시간
	enqueueTimeout = 5 * time.Second

	// sendTimeout 메시지 1건의 전송에 허용되는 최대 시간 (Rate Limit 대기 포함)
	sendTimeout = 30 * time.Second

	// shutdownTimeout 종료 시 대기열에 남은 메시지를 처리하기 위해 기다리는 최대 시간
	shutdownTimeout = 60 * time.Second

	msgTitleFormat = "<b>【 %s 】</b>\n\n%s"
	msgErrorFormat = "%s\n\n*** 오류가 발생하였습니다. ***"
)

// ErrQueueFull 대기열이 가득 차 정해진 시간 안에 발송 요청을 접수하지 못했을 때 반환됩니다.
var ErrQueueFull = apperrors.New(apperrors.Unavailable, "알림 대기열이 가득 차 메시지를 접수하지 못했습니다")

// Service 발송 요청을 대기열에 쌓아 두고 백그라운드 워커가 순서대로 Sender로 전송하는 서비스입니다.
type Service struct {
	title string

	sender Sender

	queue chan string

	// done 워커에게 종료를 알리는 채널입니다. 닫히면 워커는 남은 메시지를 처리한 후 종료합니다.
	done     chan struct{}
	workerWG sync.WaitGroup

	running   bool
	runningMu sync.RWMutex
}

var (
	_ contract.NotificationSender        = (*Service)(nil)
	_ contract.NotificationHealthChecker = (*Service)(nil)
)

// NewService 새로운 Notification 서비스 인스턴스를 생성합니다.
// title은 모든 메시지 상단에 표시되는 제목입니다.
func NewService(title string, sender Sender) *Service {
	if sender == nil {
		panic("Sender는 필수입니다")
	}

	return &Service{
		title: title,

		sender: sender,
	}
}

// Start 전송 워커를 시작합니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(component).Info("서비스 시작 진입: Notification 서비스 초기화 프로세스를 시작합니다")

	if s.running {
		serviceStopWG.Done()
		applog.WithComponent(component).Warn("Notification 서비스가 이미 실행 중입니다 (중복 호출)")
		return nil
	}

	s.queue = make(chan string, queueSize)
	s.done = make(chan struct{})

	s.workerWG.Add(1)
	go s.runWorker(s.queue, s.done)

	s.running = true

	applog.WithComponentAndFields(component, applog.Fields{
		"sender": s.sender.Name(),
	}).Info("서비스 시작 완료: Notification 서비스가 정상적으로 초기화되었습니다")

	go func() {
		defer serviceStopWG.Done()

		<-serviceStopCtx.Done()

		s.Stop()
	}()

	return nil
}

// Stop 새로운 발송 요청의 접수를 중단하고, 대기열에 남은 메시지를 처리한 뒤 워커를 종료합니다.
func (s *Service) Stop() {
	s.runningMu.Lock()
	if !s.running {
		s.runningMu.Unlock()
		return
	}
	s.running = false
	close(s.done)
	s.runningMu.Unlock()

	applog.WithComponent(component).Info("종료 절차 진입: Notification 서비스 중지 시그널을 수신했습니다")

	s.workerWG.Wait()

	applog.WithComponent(component).Info("Notification 서비스 종료 완료: 모든 리소스가 정리되었습니다")
}

// Notify 일반 알림 메시지의 발송을 요청합니다. 메시지가 대기열에 접수되면 nil을 반환합니다.
func (s *Service) Notify(ctx context.Context, message string) error {
	if strings.TrimSpace(message) == "" {
		return contract.ErrMessageRequired
	}
	return s.enqueue(ctx, s.decorate(message))
}

// NotifyError 오류 알림 메시지의 발송을 요청합니다.
func (s *Service) NotifyError(ctx context.Context, message string) error {
	if strings.TrimSpace(message) == "" {
		return contract.ErrMessageRequired
	}
	return s.enqueue(ctx, fmt.Sprintf(msgErrorFormat, s.decorate(message)))
}

// Health 서비스가 실행 중이 아니면 contract.ErrServiceStopped를 반환합니다.
func (s *Service) Health() error {
	s.runningMu.RLock()
	defer s.runningMu.RUnlock()

	if !s.running {
		return contract.ErrServiceStopped
	}
	return nil
}

func (s *Service) decorate(message string) string {
	if s.title == "" {
		return message
	}
	return fmt.Sprintf(msgTitleFormat, s.title, message)
}

func (s *Service) enqueue(ctx context.Context, message string) error {
	s.runningMu.RLock()
	if !s.running {
		s.runningMu.RUnlock()

		applog.WithComponent(component).Warn("Notification 서비스가 실행 중이 아니어서 메시지를 전송할 수 없습니다")
		return contract.ErrServiceStopped
	}
	queue, done := s.queue, s.done
	s.runningMu.RUnlock()

	// 대기열이 가득 차 기다리는 동안 Stop이 호출되면 done이 닫히므로 즉시 반환합니다.
	timer := time.NewTimer(enqueueTimeout)
	defer timer.Stop()

	select {
	case <-done:
		return contract.ErrServiceStopped
	default:
	}

	select {
	case queue <- message:
		return nil
	case <-done:
		return contract.ErrServiceStopped
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		applog.WithComponentAndFields(component, applog.Fields{
			"queue_size": queueSize,
		}).Error("발송 요청 거부: 알림 대기열이 가득 찼습니다")
		return ErrQueueFull
	}
}

func (s *Service) runWorker(queue <-chan string, done <-chan struct{}) {
	defer s.workerWG.Done()

	for {
		select {
		case message := <-queue:
			s.send(context.Background(), message)

		case <-done:
			s.drain(queue)
			return
		}
	}
}

// drain 종료 시 대기열에 남은 메시지를 shutdownTimeout 안에서 최대한 전송합니다.
func (s *Service) drain(queue <-chan string) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	for {
		select {
		case message := <-queue:
			if ctx.Err() != nil {
				applog.WithComponentAndFields(component, applog.Fields{
					"remaining": len(queue) + 1,
				}).Warn("종료 제한 시간 초과: 남은 알림 메시지를 버립니다")
				return
			}
			s.send(ctx, message)

		default:
			return
		}
	}
}

func (s *Service) send(parent context.Context, message string) {
	ctx, cancel := context.WithTimeout(parent, sendTimeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			applog.WithComponentAndFields(component, applog.Fields{
				"sender": s.sender.Name(),
				"panic":  r,
			}).Error("알림 전송 중 패닉이 발생했습니다")
		}
	}()

	if err := s.sender.Send(ctx, message); err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"sender": s.sender.Name(),
			"error":  err,
		}).Error("알림 전송 실패")
	}
}
