package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/darkkaiser/storefront-server/internal/config"
	"github.com/darkkaiser/storefront-server/internal/pkg/version"
	"github.com/darkkaiser/storefront-server/internal/service"
	"github.com/darkkaiser/storefront-server/internal/service/api"
	"github.com/darkkaiser/storefront-server/internal/service/catalogsync"
	"github.com/darkkaiser/storefront-server/internal/service/notification"
	"github.com/darkkaiser/storefront-server/internal/service/source"
	"github.com/darkkaiser/storefront-server/internal/service/storage"
	applog "github.com/darkkaiser/storefront-server/pkg/log"
)

// @title Storefront Server API
// @version 1.0.0
// @description 스토어프론트 상품 목록(전체, 카테고리, 신상품, 검색)에 필터, 정렬, 카테고리 패싯을 적용하여 제공하는 REST API입니다.
// @description
// @description ## 필터 쿼리
// @description - minPrice, maxPrice: 가격 범위 (경계 포함, 형식이 잘못된 값은 무시)
// @description - sortBy: name, priceLow, priceHigh, newest (기본값 name)
// @description - categories: 쉼표로 구분된 카테고리 목록
// @description
// @description ## 관리자 API
// @description X-Admin-Token 헤더로 설정 파일의 storefront_api.admin_key 값을 전달해야 합니다.

// @contact.name DarkKaiser
// @contact.url https://github.com/DarkKaiser

// @license.name MIT

// @BasePath /

// @securityDefinitions.apikey AdminTokenAuth
// @in header
// @name X-Admin-Token

const banner = `
  ____   _                      __                       _
 / ___| | |_   ___   _ __  ___ / _| _ __  ___   _ __  | |_
 \___ \ | __| / _ \ | '__|/ _ \ |_ | '__|/ _ \ | '_ \ | __|
  ___) || |_ | (_) || |  |  __/  _|| |  | (_) || | | || |_
 |____/  \__| \___/ |_|   \___|_|  |_|   \___/ |_| |_| \__|
                                                      %s
                                                        developed by DarkKaiser
--------------------------------------------------------------------------------
`

func main() {
	// 1. 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행한다)
	appConfig, err := loadConfig(os.Args[1:])
	if err != nil {
		// 로거 초기화 전이므로 표준 에러에 출력
		fmt.Fprintf(os.Stderr, "[FATAL] 환경설정 로드 실패: %v\n", err)
		os.Exit(1)
	}

	// 2. 로그 시스템 초기화
	logOpts := applog.NewProductionOptions(config.AppName)
	if appConfig.Debug {
		logOpts = applog.NewDevelopmentOptions(config.AppName)
	}

	appLogCloser, err := applog.Setup(logOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 로그 시스템 초기화 실패. 서버 구동을 중단합니다. (Cause: %v)\n", err)
		os.Exit(1)
	}
	defer appLogCloser.Close()

	buildInfo := version.Get()

	// 아스키아트 출력(폰트:standard)
	fmt.Printf(banner, buildInfo.Version)

	applog.WithComponentAndFields("main", applog.Fields{
		"version": buildInfo.String(),
		"env":     map[bool]string{true: "development", false: "production"}[appConfig.Debug],
	}).Info("서버 초기화 시작")

	for _, warning := range appConfig.VerifyRecommendations() {
		applog.WithComponent("main").Warn(warning)
	}

	if code := run(appConfig, buildInfo); code != 0 {
		appLogCloser.Close()
		os.Exit(code)
	}
}

// loadConfig 실행 인자로 설정 파일 경로가 주어지면 해당 파일을, 아니면 기본 설정 파일을 읽습니다.
func loadConfig(args []string) (*config.AppConfig, error) {
	if len(args) > 0 && args[0] != "" {
		return config.LoadWithFile(args[0])
	}
	return config.Load()
}

// run 서비스를 생성하여 시작하고 종료 시그널을 받을 때까지 대기합니다. 프로세스 종료 코드를 반환합니다.
func run(appConfig *config.AppConfig, buildInfo version.Info) int {
	sender, err := notification.NewSender(appConfig)
	if err != nil {
		applog.WithComponentAndFields("main", applog.Fields{
			"error": err,
		}).Error("알림 발송 채널 초기화 실패")
		return 1
	}

	snapshots, err := storage.NewFileSnapshotStore(appConfig.Sync.SnapshotDir)
	if err != nil {
		applog.WithComponentAndFields("main", applog.Fields{
			"error": err,
			"dir":   appConfig.Sync.SnapshotDir,
		}).Error("스냅샷 저장소 초기화 실패")
		return 1
	}

	backend := source.NewClientFromConfig(appConfig.Backend)

	// 서비스를 생성한다.
	notificationService := notification.NewService(config.AppName, sender)
	catalogSyncService := catalogsync.NewService(appConfig.Sync, backend, snapshots, notificationService)
	apiService := api.NewService(appConfig, api.Dependencies{
		Notifier: notificationService,

		ProductSource: backend,
		OrderSource:   backend,

		CatalogSyncer: catalogSyncService,
		CatalogReader: catalogSyncService.Store(),
	}, buildInfo)

	serviceStopCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	serviceStopWG := &sync.WaitGroup{}

	// 알림 서비스가 먼저 시작되어야 다른 서비스의 시작 과정에서 발생한 알림을 받을 수 있다.
	services := []service.Service{notificationService, catalogSyncService, apiService}
	for _, s := range services {
		serviceStopWG.Add(1)
		if err := s.Start(serviceStopCtx, serviceStopWG); err != nil {
			applog.WithComponentAndFields("main", applog.Fields{
				"error": err,
			}).Error("서비스 초기화 실패")

			cancel() // 이미 시작된 서비스들도 종료
			serviceStopWG.Wait()

			return 1
		}
	}

	termC := make(chan os.Signal, 1)
	signal.Notify(termC, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(termC)

	applog.WithComponent("main").Info("서버 가동 완료")

	<-termC

	applog.WithComponent("main").Info("종료 시그널 수신: 모든 서비스를 종료합니다")
	cancel()
	serviceStopWG.Wait()

	return 0
}
