package catalogsync

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/darkkaiser/storefront-server/internal/catalog"
	"github.com/darkkaiser/storefront-server/internal/config"
	"github.com/darkkaiser/storefront-server/internal/service/contract"
	"github.com/darkkaiser/storefront-server/internal/service/contract/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var fixedNow = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

type fixture struct {
	source    *mocks.MockProductSource
	snapshots *mocks.MockSnapshotStore
	sender    *mocks.MockNotificationSender
	service   *Service
}

func newFixture(t *testing.T, cfg config.SyncConfig) *fixture {
	t.Helper()

	f := &fixture{
		source:    &mocks.MockProductSource{},
		snapshots: &mocks.MockSnapshotStore{},
		sender:    &mocks.MockNotificationSender{},
	}
	f.service = NewService(cfg, f.source, f.snapshots, f.sender)
	f.service.now = func() time.Time { return fixedNow }

	t.Cleanup(func() {
		f.source.AssertExpectations(t)
		f.snapshots.AssertExpectations(t)
		f.sender.AssertExpectations(t)
	})
	return f
}

// =============================================================================
// 생성자
// =============================================================================

func TestNewService_Panics(t *testing.T) {
	t.Parallel()

	src := &mocks.MockProductSource{}
	store := &mocks.MockSnapshotStore{}
	sender := &mocks.MockNotificationSender{}

	assert.PanicsWithValue(t, "ProductSource는 필수입니다", func() { NewService(config.SyncConfig{}, nil, store, sender) })
	assert.PanicsWithValue(t, "SnapshotStore는 필수입니다", func() { NewService(config.SyncConfig{}, src, nil, sender) })
	assert.PanicsWithValue(t, "NotificationSender는 필수입니다", func() { NewService(config.SyncConfig{}, src, store, nil) })
}

// =============================================================================
// 동기화
// =============================================================================

func TestService_SyncNow_FirstSyncProducesNoChanges(t *testing.T) {
	t.Parallel()

	f := newFixture(t, config.SyncConfig{})

	products := []catalog.Product{{ID: "p1", Name: "Bag", Price: 10, IsActive: true}}
	f.source.On("ListAll", mock.Anything).Return(products, nil).Once()
	f.snapshots.On("Save", snapshotName, mock.AnythingOfType("*catalogsync.Snapshot")).Return(nil).Once()

	result, err := f.service.SyncNow(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, result.Total)
	assert.Equal(t, fixedNow, result.FetchedAt)
	assert.True(t, result.Changes.Empty())

	got, fetchedAt, ok := f.service.Store().Products()
	assert.True(t, ok)
	assert.Equal(t, fixedNow, fetchedAt)
	assert.Equal(t, products, got)
}

func TestService_SyncNow_NotifiesChanges(t *testing.T) {
	t.Parallel()

	f := newFixture(t, config.SyncConfig{})
	f.service.Store().Swap(&Snapshot{Products: []catalog.Product{
		{ID: "p1", Name: "Bag", Price: 10, IsActive: true},
		{ID: "p2", Name: "Cap", Price: 5, IsActive: true},
	}})

	next := []catalog.Product{
		{ID: "p1", Name: "Bag", Price: 8, IsActive: true},
		{ID: "p3", Name: "Hat <신상>", Price: 12000, Category: "Hats", IsActive: true},
		{ID: "p4", Name: "Hidden", Price: 1, IsActive: false},
	}
	f.source.On("ListAll", mock.Anything).Return(next, nil).Once()
	f.snapshots.On("Save", snapshotName, mock.Anything).Return(nil).Once()

	var message string
	f.sender.On("Notify", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		message = args.String(1)
	}).Return(nil).Once()

	result, err := f.service.SyncNow(context.Background())
	require.NoError(t, err)

	assert.Len(t, result.Changes.Added, 2)
	assert.Len(t, result.Changes.PriceChanged, 1)
	assert.Len(t, result.Changes.Removed, 1)

	assert.Contains(t, message, "신상품 1개")
	assert.Contains(t, message, "Hat &lt;신상&gt; (Hats) 12,000")
	assert.NotContains(t, message, "Hidden", "판매 중이 아닌 상품은 알리지 않습니다")
	assert.Contains(t, message, "가격 변동 1개")
	assert.Contains(t, message, "Bag 10 ⇒ 8")
}

func TestService_SyncNow_FetchFailureKeepsSnapshot(t *testing.T) {
	t.Parallel()

	f := newFixture(t, config.SyncConfig{})
	prev := &Snapshot{FetchedAt: fixedNow.Add(-time.Hour), Products: []catalog.Product{{ID: "p1"}}}
	f.service.Store().Swap(prev)

	fetchErr := errors.New("backend down")
	f.source.On("ListAll", mock.Anything).Return(nil, fetchErr).Once()
	f.sender.On("NotifyError", mock.Anything, mock.MatchedBy(func(msg string) bool {
		return strings.Contains(msg, "backend down")
	})).Return(nil).Once()

	_, err := f.service.SyncNow(context.Background())
	assert.ErrorIs(t, err, fetchErr)
	assert.Same(t, prev, f.service.Store().Snapshot())
}

func TestService_SyncNow_SaveFailureStillSucceeds(t *testing.T) {
	t.Parallel()

	f := newFixture(t, config.SyncConfig{})

	f.source.On("ListAll", mock.Anything).Return([]catalog.Product{}, nil).Once()
	f.snapshots.On("Save", snapshotName, mock.Anything).Return(errors.New("disk full")).Once()
	f.sender.On("NotifyError", mock.Anything, mock.Anything).Return(nil).Once()

	result, err := f.service.SyncNow(context.Background())
	require.NoError(t, err)
	assert.Zero(t, result.Total)
}

func TestService_SyncNow_RejectsConcurrentRun(t *testing.T) {
	t.Parallel()

	f := newFixture(t, config.SyncConfig{})

	entered := make(chan struct{})
	release := make(chan struct{})
	f.source.On("ListAll", mock.Anything).Run(func(mock.Arguments) {
		close(entered)
		<-release
	}).Return([]catalog.Product{}, nil).Once()
	f.snapshots.On("Save", snapshotName, mock.Anything).Return(nil).Once()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := f.service.SyncNow(context.Background())
		assert.NoError(t, err)
	}()

	<-entered
	_, err := f.service.SyncNow(context.Background())
	assert.ErrorIs(t, err, contract.ErrSyncInProgress)

	close(release)
	wg.Wait()
}

// =============================================================================
// 생명주기
// =============================================================================

func TestService_Start_RestoresSnapshot(t *testing.T) {
	t.Parallel()

	f := newFixture(t, config.SyncConfig{Enabled: false})

	saved := Snapshot{FetchedAt: fixedNow, Products: []catalog.Product{{ID: "p1", Name: "Bag"}}}
	f.snapshots.On("Load", snapshotName, mock.AnythingOfType("*catalogsync.Snapshot")).Run(func(args mock.Arguments) {
		*args.Get(1).(*Snapshot) = saved
	}).Return(nil).Once()

	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}
	wg.Add(1)
	require.NoError(t, f.service.Start(ctx, wg))

	got, fetchedAt, ok := f.service.Store().Products()
	assert.True(t, ok)
	assert.Equal(t, fixedNow, fetchedAt)
	assert.Equal(t, saved.Products, got)

	cancel()
	wg.Wait()
}

func TestService_Start_MissingSnapshotAndInvalidSchedule(t *testing.T) {
	t.Parallel()

	f := newFixture(t, config.SyncConfig{Enabled: true, TimeSpec: "not a cron"})
	f.snapshots.On("Load", snapshotName, mock.Anything).Return(contract.ErrSnapshotNotFound).Once()

	wg := &sync.WaitGroup{}
	wg.Add(1)
	err := f.service.Start(context.Background(), wg)
	require.Error(t, err)

	// Start는 실패 시에도 WaitGroup을 해제해야 합니다.
	wg.Wait()

	_, _, ok := f.service.Store().Products()
	assert.False(t, ok)
}

func TestService_Start_Twice(t *testing.T) {
	t.Parallel()

	f := newFixture(t, config.SyncConfig{Enabled: true, TimeSpec: "0 0 * * * *"})
	f.snapshots.On("Load", snapshotName, mock.Anything).Return(contract.ErrSnapshotNotFound).Once()

	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}

	wg.Add(1)
	require.NoError(t, f.service.Start(ctx, wg))
	wg.Add(1)
	require.NoError(t, f.service.Start(ctx, wg))

	cancel()
	wg.Wait()

	f.service.runningMu.Lock()
	defer f.service.runningMu.Unlock()
	assert.False(t, f.service.running)
}

// =============================================================================
// 알림 메시지
// =============================================================================

func TestBuildChangeMessage(t *testing.T) {
	t.Parallel()

	t.Run("변경 없음", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, buildChangeMessage(catalog.Changes{}))
	})

	t.Run("삭제만 있는 경우", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, buildChangeMessage(catalog.Changes{Removed: []catalog.Product{{ID: "p1", IsActive: true}}}))
	})

	t.Run("목록 상한", func(t *testing.T) {
		t.Parallel()

		var added []catalog.Product
		for range maxListedProducts + 5 {
			added = append(added, catalog.Product{Name: "x", IsActive: true})
		}
		msg := buildChangeMessage(catalog.Changes{Added: added})
		assert.Equal(t, maxListedProducts, strings.Count(msg, "☞"))
		assert.Contains(t, msg, "외 5개")
	})
}
