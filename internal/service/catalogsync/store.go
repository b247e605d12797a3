package catalogsync

import (
	"slices"
	"sync/atomic"
	"time"

	"github.com/darkkaiser/storefront-server/internal/catalog"
	"github.com/darkkaiser/storefront-server/internal/service/contract"
)

// Snapshot 특정 시점에 백엔드에서 가져온 전체 카탈로그입니다. 생성된 이후에는 변경되지 않습니다.
type Snapshot struct {
	FetchedAt time.Time         `json:"fetched_at"`
	Products  []catalog.Product `json:"products"`
}

// Store 마지막으로 동기화된 카탈로그 스냅샷을 보관하는 메모리 저장소입니다.
// 스냅샷 포인터를 원자적으로 교체하므로 읽기는 쓰기를 기다리지 않습니다.
type Store struct {
	current atomic.Pointer[Snapshot]
}

var _ contract.CatalogReader = (*Store)(nil)

func NewStore() *Store {
	return &Store{}
}

// Snapshot 현재 스냅샷을 반환합니다. 아직 동기화되지 않았다면 nil입니다.
func (s *Store) Snapshot() *Snapshot {
	return s.current.Load()
}

// Swap 스냅샷을 교체하고 이전 스냅샷을 반환합니다.
func (s *Store) Swap(next *Snapshot) *Snapshot {
	return s.current.Swap(next)
}

// Products 현재 스냅샷의 상품 목록 복사본과 동기화 시각을 반환합니다.
func (s *Store) Products() ([]catalog.Product, time.Time, bool) {
	snap := s.current.Load()
	if snap == nil {
		return nil, time.Time{}, false
	}
	return slices.Clone(snap.Products), snap.FetchedAt, true
}
