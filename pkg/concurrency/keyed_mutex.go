// Package concurrency 동시성 제어를 위한 보조 도구를 제공합니다.
package concurrency

import "sync"

// KeyedMutex 키마다 독립적인 잠금을 제공합니다.
// 서로 다른 키에 대한 작업은 병렬로 진행되며, 아무도 사용하지 않는 키의 잠금은 참조 카운트가 0이 되는 즉시 정리됩니다.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*keyedLock
}

type keyedLock struct {
	mu   sync.Mutex
	refs int
}

// NewKeyedMutex 새로운 KeyedMutex 인스턴스를 생성합니다.
func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{locks: make(map[string]*keyedLock)}
}

// Lock key에 대한 잠금을 획득하고, 잠금을 해제하는 함수를 반환합니다.
// 반환된 함수는 여러 번 호출해도 한 번만 해제합니다.
//
//	unlock := km.Lock("daily")
//	defer unlock()
func (km *KeyedMutex) Lock(key string) (unlock func()) {
	l := km.acquire(key)
	l.mu.Lock()

	return km.releaser(key, l)
}

// TryLock 대기하지 않고 key에 대한 잠금을 시도합니다.
// 다른 고루틴이 잠금을 보유 중이면 (nil, false)를 반환합니다.
func (km *KeyedMutex) TryLock(key string) (unlock func(), ok bool) {
	l := km.acquire(key)
	if !l.mu.TryLock() {
		km.release(key, l)
		return nil, false
	}

	return km.releaser(key, l), true
}

// Len 현재 잠금을 보유하거나 대기 중인 키의 개수를 반환합니다.
func (km *KeyedMutex) Len() int {
	km.mu.Lock()
	defer km.mu.Unlock()

	return len(km.locks)
}

func (km *KeyedMutex) acquire(key string) *keyedLock {
	km.mu.Lock()
	defer km.mu.Unlock()

	l, ok := km.locks[key]
	if !ok {
		l = &keyedLock{}
		km.locks[key] = l
	}
	l.refs++

	return l
}

func (km *KeyedMutex) release(key string, l *keyedLock) {
	km.mu.Lock()
	defer km.mu.Unlock()

	l.refs--
	if l.refs == 0 {
		delete(km.locks, key)
	}
}

func (km *KeyedMutex) releaser(key string, l *keyedLock) func() {
	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Unlock()
			km.release(key, l)
		})
	}
}
