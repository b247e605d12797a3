package concurrency

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyedMutex_SameKeyIsExclusive(t *testing.T) {
	t.Parallel()

	km := NewKeyedMutex()

	var (
		wg      sync.WaitGroup
		active  atomic.Int32
		overlap atomic.Bool
	)

	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			unlock := km.Lock("snapshot")
			defer unlock()

			if active.Add(1) > 1 {
				overlap.Store(true)
			}
			time.Sleep(time.Millisecond)
			active.Add(-1)
		}()
	}
	wg.Wait()

	assert.False(t, overlap.Load(), "같은 키에 대한 임계 구역이 겹치면 안 됩니다")
	assert.Equal(t, 0, km.Len(), "사용이 끝난 키는 정리되어야 합니다")
}

func TestKeyedMutex_DifferentKeysDoNotBlock(t *testing.T) {
	t.Parallel()

	km := NewKeyedMutex()

	unlockA := km.Lock("a")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB := km.Lock("b")
		unlockB()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("다른 키의 잠금이 차단되었습니다")
	}
}

func TestKeyedMutex_TryLock(t *testing.T) {
	t.Parallel()

	km := NewKeyedMutex()

	unlock, ok := km.TryLock("k")
	require.True(t, ok)

	_, ok = km.TryLock("k")
	assert.False(t, ok, "이미 잠긴 키는 TryLock에 실패해야 합니다")
	assert.Equal(t, 1, km.Len(), "실패한 TryLock은 참조를 남기지 않아야 합니다")

	unlock()
	unlock() // 중복 해제는 무시됩니다.
	assert.Equal(t, 0, km.Len())

	unlock, ok = km.TryLock("k")
	require.True(t, ok)
	unlock()
}
