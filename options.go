package growbuf

import (
	"sync"

	"github.com/limpo1989/growbuf/internal"
)

// DefaultChunkCapacity is the number of elements per chunk when WithChunkCapacity is not given.
const DefaultChunkCapacity = 65536

// DefaultPoolSize is the number of recycled chunks kept by Reset when WithPoolSize is not given.
const DefaultPoolSize = 64

// options holds configuration settings for a Buffer
type options struct {
	chunkCapacity int
	poolSize      int
	locker        sync.Locker
	memory        Memory
}

// Option defines a function type for configuring Buffer parameters
type Option func(*options)

// WithChunkCapacity sets the number of elements each chunk holds.
// Larger values reduce allocation frequency but may waste more of the last chunk.
// Must be positive.
func WithChunkCapacity(n int) Option {
	return func(o *options) {
		o.chunkCapacity = n
	}
}

// WithPoolSize configures the maximum number of chunks Reset keeps for reuse.
// Chunks beyond the limit are returned to Memory.
func WithPoolSize(poolSize int) Option {
	return func(o *options) {
		o.poolSize = poolSize
	}
}

// WithEnableLock guards every Buffer operation with a spinlock.
// A Buffer has a single writer by default; enable this only when callers
// cannot serialize access themselves.
func WithEnableLock(enableLock bool) Option {
	return func(o *options) {
		if enableLock {
			o.locker = new(internal.SpinLock)
		} else {
			o.locker = nopLocker{}
		}
	}
}

// WithMemory specifies where chunk storage comes from.
// Default: HeapMemory.
func WithMemory(memory Memory) Option {
	return func(o *options) {
		o.memory = memory
	}
}

type nopLocker struct{}

func (n nopLocker) Lock() {
}

func (n nopLocker) Unlock() {
}
