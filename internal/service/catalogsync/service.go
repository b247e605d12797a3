// Package catalogsync 백엔드의 전체 카탈로그를 주기적으로 동기화하고, 이전 스냅샷과 비교하여 신상품과 가격 변동을 알리는 서비스를 제공합니다.
package catalogsync

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/darkkaiser/storefront-server/internal/catalog"
	"github.com/darkkaiser/storefront-server/internal/config"
	"github.com/darkkaiser/storefront-server/internal/service/contract"
	"github.com/darkkaiser/storefront-server/pkg/cronx"
	applog "github.com/darkkaiser/storefront-server/pkg/log"
	"github.com/robfig/cron/v3"
)

// component 카탈로그 동기화 서비스의 로깅용 컴포넌트 이름
const component = "catalogsync.service"

// snapshotName 영속화되는 카탈로그 스냅샷의 이름
const snapshotName = "catalog"

// scheduledSyncTimeout 스케줄에 의해 실행되는 동기화 1회의 최대 실행 시간
const scheduledSyncTimeout = 2 * time.Minute

// Service 설정된 Cron 스케줄에 맞춰 카탈로그를 동기화하는 서비스입니다.
type Service struct {
	cfg config.SyncConfig

	source    contract.ProductSource
	snapshots contract.SnapshotStore

	// notificationSender 신상품/가격 변동 및 동기화 실패를 알리는 인터페이스입니다.
	notificationSender contract.NotificationSender

	store *Store

	cron *cron.Cron

	// syncMu 동기화 실행을 직렬화합니다. 수동 실행은 TryLock으로 중복 여부를 판단합니다.
	syncMu sync.Mutex

	now func() time.Time

	running   bool
	runningMu sync.Mutex
}

var _ contract.CatalogSyncer = (*Service)(nil)

// NewService 새로운 카탈로그 동기화 서비스 인스턴스를 생성합니다.
func NewService(cfg config.SyncConfig, source contract.ProductSource, snapshots contract.SnapshotStore, notificationSender contract.NotificationSender) *Service {
	if source == nil {
		panic("ProductSource는 필수입니다")
	}
	if snapshots == nil {
		panic("SnapshotStore는 필수입니다")
	}
	if notificationSender == nil {
		panic("NotificationSender는 필수입니다")
	}

	return &Service{
		cfg: cfg,

		source:    source,
		snapshots: snapshots,

		notificationSender: notificationSender,

		store: NewStore(),

		now: time.Now,
	}
}

// Store 마지막으로 동기화된 카탈로그를 보관하는 저장소를 반환합니다.
func (s *Service) Store() *Store {
	return s.store
}

// Start 저장된 스냅샷을 복원하고, 동기화가 활성화되어 있으면 Cron 스케줄을 등록합니다.
//
// 매개변수:
//   - serviceStopCtx: 서비스 종료 신호를 받기 위한 Context
//   - serviceStopWG: 서비스 종료 완료를 알리기 위한 WaitGroup
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(component).Info("서비스 시작 진입: 카탈로그 동기화 서비스 초기화 프로세스를 시작합니다")

	if s.running {
		serviceStopWG.Done()
		applog.WithComponent(component).Warn("카탈로그 동기화 서비스가 이미 실행 중입니다 (중복 호출)")
		return nil
	}

	// 1. 이전 실행에서 저장된 스냅샷 복원
	s.restoreSnapshot()

	// 2. Cron 엔진 초기화 및 동기화 작업 등록
	s.cron = cron.New(
		cron.WithParser(cronx.StandardParser()),
		cron.WithLogger(cron.VerbosePrintfLogger(applog.StandardLogger())),
		cron.WithChain(
			cron.Recover(cron.VerbosePrintfLogger(applog.StandardLogger())),
			cron.SkipIfStillRunning(cron.VerbosePrintfLogger(applog.StandardLogger())),
		),
	)

	if s.cfg.Enabled {
		if _, err := s.cron.AddFunc(s.cfg.TimeSpec, func() { s.runScheduled(serviceStopCtx) }); err != nil {
			s.cron = nil
			serviceStopWG.Done()
			return fmt.Errorf("동기화 스케줄 등록 실패 (TimeSpec: %s): %w", s.cfg.TimeSpec, err)
		}
	}

	// 3. 스케줄러 시작
	s.cron.Start()
	s.running = true

	applog.WithComponentAndFields(component, applog.Fields{
		"enabled":   s.cfg.Enabled,
		"time_spec": s.cfg.TimeSpec,
	}).Info("서비스 시작 완료: 카탈로그 동기화 서비스가 정상적으로 초기화되었습니다")

	// 4. 종료 신호 대기
	go func() {
		defer serviceStopWG.Done()

		<-serviceStopCtx.Done()

		s.Stop()
	}()

	return nil
}

// Stop 실행 중인 스케줄러를 중지하고 진행 중인 동기화가 끝날 때까지 대기합니다.
func (s *Service) Stop() {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	if !s.running {
		return
	}

	applog.WithComponent(component).Info("종료 절차 진입: 카탈로그 동기화 서비스 중지 시그널을 수신했습니다")

	if s.cron != nil {
		<-s.cron.Stop().Done()
	}

	s.cron = nil
	s.running = false

	applog.WithComponent(component).Info("카탈로그 동기화 서비스 종료 완료: 모든 리소스가 정리되었습니다")
}

// SyncNow 즉시 동기화를 1회 수행합니다. 다른 동기화가 진행 중이면 contract.ErrSyncInProgress를 반환합니다.
func (s *Service) SyncNow(ctx context.Context) (contract.SyncResult, error) {
	if !s.syncMu.TryLock() {
		return contract.SyncResult{}, contract.ErrSyncInProgress
	}
	defer s.syncMu.Unlock()

	return s.sync(ctx)
}

func (s *Service) runScheduled(serviceStopCtx context.Context) {
	// cron.Stop()은 실행 중인 작업의 완료를 기다리므로, 종료 신호와 무관하게 동기화가 끝까지 진행되도록 합니다.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(serviceStopCtx), scheduledSyncTimeout)
	defer cancel()

	if _, err := s.SyncNow(ctx); errors.Is(err, contract.ErrSyncInProgress) {
		applog.WithComponent(component).Info("예약된 동기화 건너뜀: 이미 동기화가 진행 중입니다")
	}
}

func (s *Service) sync(ctx context.Context) (contract.SyncResult, error) {
	startedAt := s.now()

	products, err := s.source.ListAll(ctx)
	if err != nil {
		message := "카탈로그 동기화 실패: 백엔드에서 상품 목록을 가져오지 못했습니다"
		s.logAndNotifyError(ctx, message, err)
		return contract.SyncResult{}, err
	}

	next := &Snapshot{FetchedAt: startedAt, Products: products}
	prev := s.store.Swap(next)

	result := contract.SyncResult{
		FetchedAt: next.FetchedAt,
		Total:     len(products),
	}

	// 최초 동기화는 비교 대상이 없으므로 변경 사항을 만들지 않습니다.
	if prev != nil {
		result.Changes = catalog.Diff(prev.Products, products)
	}

	if err := s.snapshots.Save(snapshotName, next); err != nil {
		s.logAndNotifyError(ctx, "카탈로그 스냅샷 저장 실패", err)
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"total":         result.Total,
		"added":         len(result.Changes.Added),
		"price_changed": len(result.Changes.PriceChanged),
		"removed":       len(result.Changes.Removed),
		"duration_ms":   s.now().Sub(startedAt).Milliseconds(),
	}).Info("카탈로그 동기화 완료")

	if message := buildChangeMessage(result.Changes); message != "" {
		if err := s.notificationSender.Notify(ctx, message); err != nil {
			applog.WithComponentAndFields(component, applog.Fields{
				"error": err,
			}).Warn("카탈로그 변경 알림 전송 실패")
		}
	}

	return result, nil
}

// restoreSnapshot 저장된 스냅샷이 있으면 메모리 저장소로 복원합니다.
func (s *Service) restoreSnapshot() {
	var snap Snapshot
	if err := s.snapshots.Load(snapshotName, &snap); err != nil {
		if errors.Is(err, contract.ErrSnapshotNotFound) {
			applog.WithComponent(component).Info("저장된 카탈로그 스냅샷이 없습니다: 첫 동기화부터 시작합니다")
			return
		}

		applog.WithComponentAndFields(component, applog.Fields{
			"error": err,
		}).Warn("카탈로그 스냅샷 복원 실패: 첫 동기화부터 시작합니다")
		return
	}

	s.store.Swap(&snap)

	applog.WithComponentAndFields(component, applog.Fields{
		"total":      len(snap.Products),
		"fetched_at": snap.FetchedAt,
	}).Info("카탈로그 스냅샷 복원 완료")
}

// logAndNotifyError 동기화 중 발생한 오류를 로깅하고 관리자에게 알림을 전송합니다.
func (s *Service) logAndNotifyError(ctx context.Context, message string, err error) {
	applog.WithComponentAndFields(component, applog.Fields{
		"error": err,
	}).Error(message)

	if notifyErr := s.notificationSender.NotifyError(ctx, fmt.Sprintf("%s: %v", message, err)); notifyErr != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"error": notifyErr,
		}).Warn("오류 알림 전송 실패")
	}
}
