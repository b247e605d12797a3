// Package api 스토어프론트 REST API 서버를 제공합니다.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	_ "github.com/darkkaiser/storefront-server/docs"
	"github.com/darkkaiser/storefront-server/internal/config"
	"github.com/darkkaiser/storefront-server/internal/pkg/version"
	"github.com/darkkaiser/storefront-server/internal/service/api/constants"
	"github.com/darkkaiser/storefront-server/internal/service/api/handler/system"
	v1 "github.com/darkkaiser/storefront-server/internal/service/api/v1"
	v1handler "github.com/darkkaiser/storefront-server/internal/service/api/v1/handler"
	"github.com/darkkaiser/storefront-server/internal/service/contract"
	"github.com/darkkaiser/storefront-server/internal/service/storefront"
	applog "github.com/darkkaiser/storefront-server/pkg/log"
	"github.com/labstack/echo/v4"
)

const (
	// shutdownTimeout Graceful Shutdown 시 최대 대기 시간
	shutdownTimeout = 5 * time.Second

	// maxCachedPages 재사용을 위해 보관하는 상품 목록 페이지의 최대 개수
	maxCachedPages = 256
)

// Notifier 알림 발송과 상태 확인을 함께 제공하는 알림 서비스입니다.
type Notifier interface {
	contract.NotificationSender
	contract.NotificationHealthChecker
}

// Dependencies API 서비스가 사용하는 외부 구성 요소입니다.
type Dependencies struct {
	Notifier Notifier

	ProductSource contract.ProductSource
	OrderSource   contract.OrderSource

	CatalogSyncer contract.CatalogSyncer
	CatalogReader contract.CatalogReader
}

// Service 스토어프론트 API 서버의 생명주기를 관리하는 서비스입니다.
//
// Echo 기반 HTTP/HTTPS 서버를 고루틴에서 실행하며, context 취소 시 5초 안에 Graceful Shutdown을 수행합니다.
// 서버가 예기치 않게 종료되면 알림을 발송합니다.
type Service struct {
	appConfig *config.AppConfig

	deps Dependencies

	buildInfo version.Info

	running   bool
	runningMu sync.Mutex
}

// NewService Service 인스턴스를 생성합니다.
func NewService(appConfig *config.AppConfig, deps Dependencies, buildInfo version.Info) *Service {
	if appConfig == nil {
		panic(constants.PanicMsgAppConfigRequired)
	}
	if deps.Notifier == nil {
		panic(constants.PanicMsgNotificationSenderRequired)
	}
	if deps.ProductSource == nil {
		panic(constants.PanicMsgProductSourceRequired)
	}
	if deps.OrderSource == nil {
		panic(constants.PanicMsgOrderSourceRequired)
	}
	if deps.CatalogSyncer == nil {
		panic(constants.PanicMsgCatalogSyncerRequired)
	}
	if deps.CatalogReader == nil {
		panic(constants.PanicMsgCatalogReaderRequired)
	}

	return &Service{
		appConfig: appConfig,

		deps: deps,

		buildInfo: buildInfo,
	}
}

// Start API 서비스를 시작합니다. 실제 서버는 고루틴에서 실행되며 이 함수는 즉시 반환됩니다.
//
// 매개변수:
//   - serviceStopCtx: 서비스 종료 신호를 받기 위한 Context
//   - serviceStopWG: 서비스 종료 완료를 알리기 위한 WaitGroup
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarting)

	if s.running {
		defer serviceStopWG.Done()
		applog.WithComponent(constants.ComponentService).Warn(constants.LogMsgServiceAlreadyStarted)
		return nil
	}

	s.running = true

	go s.runServiceLoop(serviceStopCtx, serviceStopWG)

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarted)

	return nil
}

func (s *Service) runServiceLoop(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) {
	defer serviceStopWG.Done()

	e := s.setupServer()

	httpServerDone := make(chan struct{})
	go s.startHTTPServer(e, httpServerDone)

	s.waitForShutdown(serviceStopCtx, e, httpServerDone)
}

// setupServer 핸들러를 만들고 미들웨어 체인과 라우트가 구성된 Echo 인스턴스를 반환합니다.
func (s *Service) setupServer() *echo.Echo {
	apiConfig := s.appConfig.StorefrontAPI

	systemHandler := system.NewHandler(s.deps.Notifier, s.deps.CatalogReader, s.buildInfo)
	v1Handler := v1handler.NewHandler(
		storefront.NewRegistry(s.deps.ProductSource, maxCachedPages),
		s.deps.OrderSource,
		s.deps.CatalogSyncer,
		s.deps.CatalogReader,
	)

	e := NewHTTPServer(HTTPServerConfig{
		Debug:              s.appConfig.Debug,
		AllowOrigins:       apiConfig.CORS.AllowOrigins,
		RequestTimeout:     apiConfig.RequestTimeout,
		RateLimitPerSecond: apiConfig.RateLimit.RequestsPerSecond,
		RateLimitBurst:     apiConfig.RateLimit.Burst,
	})

	RegisterRoutes(e, systemHandler)
	v1.RegisterRoutes(e, v1Handler, apiConfig.AdminKey)

	return e
}

// startHTTPServer 설정에 따라 HTTP 또는 HTTPS 서버를 시작합니다. 서버가 종료될 때까지 블로킹됩니다.
func (s *Service) startHTTPServer(e *echo.Echo, done chan struct{}) {
	defer close(done)

	ws := s.appConfig.StorefrontAPI.WS
	address := fmt.Sprintf(":%d", ws.ListenPort)

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port": ws.ListenPort,
		"tls":  ws.TLSServer,
	}).Info(constants.LogMsgServiceHTTPServerStarting)

	var err error
	if ws.TLSServer {
		err = e.StartTLS(address, ws.TLSCertFile, ws.TLSKeyFile)
	} else {
		err = e.Start(address)
	}

	s.handleServerError(err)
}

// handleServerError Graceful Shutdown에 의한 종료는 Info로, 그 외의 에러는 Error로 기록하고 알림을 발송합니다.
func (s *Service) handleServerError(err error) {
	if err == nil {
		return
	}

	if errors.Is(err, http.ErrServerClosed) {
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceHTTPServerStopped)
		return
	}

	message := constants.LogMsgServiceHTTPServerFatalError
	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port":  s.appConfig.StorefrontAPI.WS.ListenPort,
		"error": err,
	}).Error(message)

	if notifyErr := s.deps.Notifier.NotifyError(context.Background(), fmt.Sprintf("%s\n\n%s", message, err)); notifyErr != nil {
		applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
			"error": notifyErr,
		}).Warn("서버 오류 알림 발송 실패")
	}
}

// waitForShutdown 종료 신호 또는 서버의 조기 종료를 기다린 뒤 Graceful Shutdown을 수행합니다.
func (s *Service) waitForShutdown(serviceStopCtx context.Context, e *echo.Echo, httpServerDone chan struct{}) {
	select {
	case <-serviceStopCtx.Done():
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopping)
	case <-httpServerDone:
		// 포트 바인딩 실패 등으로 이미 종료되었으므로 Shutdown 없이 상태만 정리합니다.
		applog.WithComponent(constants.ComponentService).Error(constants.LogMsgServiceUnexpectedExit)

		s.cleanup()

		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
			"error": err,
		}).Error(constants.LogMsgServiceHTTPServerShutdownError)
	}

	<-httpServerDone

	s.cleanup()
}

func (s *Service) cleanup() {
	s.runningMu.Lock()
	s.running = false
	s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopped)
}
