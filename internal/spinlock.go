package internal

import (
	"runtime"
	"sync/atomic"
)

const maxBackoff = 16

// SpinLock is a sync.Locker that yields with exponential backoff instead of parking.
type SpinLock struct {
	state atomic.Int32
}

func (sl *SpinLock) Lock() {
	backoff := 1
	for !sl.state.CompareAndSwap(0, 1) {
		for i := 0; i < backoff; i++ {
			runtime.Gosched()
		}
		if backoff < maxBackoff {
			backoff <<= 1
		}
	}
}

// TryLock acquires the lock only if it is free.
func (sl *SpinLock) TryLock() bool {
	return sl.state.CompareAndSwap(0, 1)
}

func (sl *SpinLock) Unlock() {
	sl.state.Store(0)
}
