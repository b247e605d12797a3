package service

import (
	"context"
	"sync"
)

// Service 애플리케이션 수명 주기 동안 백그라운드로 동작하는 서비스의 공통 인터페이스입니다.
//
// Start는 서비스를 비동기로 기동하고 즉시 반환해야 합니다. 서비스는 serviceStopCtx가 취소되면
// 종료 절차를 수행한 뒤 serviceStopWG.Done()을 정확히 한 번 호출합니다.
// 기동에 실패하여 에러를 반환하는 경우에도 serviceStopWG.Done()은 호출되어야 합니다.
type Service interface {
	Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error
}
