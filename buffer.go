// Package growbuf provides an append-only buffer for fixed-width numbers that grows in
// fixed-size chunks, so streaming writes of unknown length never copy until the final
// Materialize.
package growbuf

import (
	"fmt"
	"iter"
	"math"
	"slices"
	"sync"
)

// Number is the set of fixed-width numeric element types a Buffer can hold.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Buffer accumulates elements into a list of sealed chunks plus one active chunk.
// It is meant for a single writer; see WithEnableLock.
type Buffer[T Number] struct {
	locker    sync.Locker
	pool      *chunkPool[T]
	capacity  int
	sealed    []chunk[T]
	sealedLen int
	current   chunk[T]
	offset    int
}

// New creates a Buffer and allocates its first chunk.
// It fails with ErrInvalidCapacity for a non-positive chunk capacity and with
// ErrAllocation if Memory cannot provide the first chunk.
func New[T Number](ops ...Option) (*Buffer[T], error) {
	var opts = options{
		chunkCapacity: DefaultChunkCapacity,
		poolSize:      DefaultPoolSize,
		locker:        nopLocker{},
		memory:        HeapMemory{},
	}
	for _, op := range ops {
		op(&opts)
	}

	if opts.chunkCapacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, opts.chunkCapacity)
	}
	if uint64(opts.chunkCapacity) > uint64(math.MaxInt)/uint64(sizeof[T]()) {
		return nil, fmt.Errorf("%w: %d elements of %d bytes", ErrInvalidCapacity, opts.chunkCapacity, sizeof[T]())
	}
	if opts.memory == nil {
		opts.memory = HeapMemory{}
	}

	b := &Buffer[T]{
		locker:   opts.locker,
		pool:     newChunkPool[T](opts.memory, opts.chunkCapacity, max(0, opts.poolSize)),
		capacity: opts.chunkCapacity,
	}

	first, ok := b.pool.get()
	if !ok {
		return nil, fmt.Errorf("%w: first chunk of %d elements", ErrAllocation, b.capacity)
	}
	b.current = first
	return b, nil
}

// Append writes a single element.
func (b *Buffer[T]) Append(v T) {
	b.locker.Lock()
	defer b.locker.Unlock()

	if b.offset == len(b.current.data) {
		b.ensureSpace(1)
	}
	b.current.data[b.offset] = v
	b.offset++
}

// AppendPair writes x and y into the same chunk.
func (b *Buffer[T]) AppendPair(x, y T) {
	b.locker.Lock()
	defer b.locker.Unlock()

	off := b.offset
	if off+2 > len(b.current.data) {
		b.ensureSpace(2)
		off = b.offset
	}
	b.current.data[off] = x
	b.current.data[off+1] = y
	b.offset = off + 2
}

// AppendMany writes values as one group. A group is never split across chunks:
// if it does not fit in the active chunk, a new chunk is started first.
// Panics with ErrGroupTooLarge if the group exceeds the chunk capacity.
func (b *Buffer[T]) AppendMany(values ...T) {
	if len(values) == 0 {
		return
	}

	b.locker.Lock()
	defer b.locker.Unlock()

	b.ensureSpace(len(values))
	b.offset += copy(b.current.data[b.offset:], values)
}

// EnsureSpace guarantees the active chunk can take count more elements,
// sealing it and starting a fresh chunk when it cannot.
func (b *Buffer[T]) EnsureSpace(count int) {
	b.locker.Lock()
	defer b.locker.Unlock()

	b.ensureSpace(count)
}

// ensureSpace is the only place chunks are sealed and allocated.
// The new chunk is obtained before the active one is sealed, so a failed
// allocation leaves the buffer exactly as it was.
func (b *Buffer[T]) ensureSpace(count int) {
	if b.offset+count <= len(b.current.data) {
		return
	}
	if count > b.capacity {
		panic(fmt.Errorf("%w: %d elements, chunk capacity %d", ErrGroupTooLarge, count, b.capacity))
	}

	next, ok := b.pool.get()
	if !ok {
		panic(fmt.Errorf("%w: chunk of %d elements", ErrAllocation, b.capacity))
	}

	if b.current.data != nil {
		b.sealed = append(b.sealed, chunk[T]{data: b.current.data[:b.offset], mem: b.current.mem})
		b.sealedLen += b.offset
	}
	b.current = next
	b.offset = 0
}

// Materialize copies every element written so far, in write order, into one new slice.
// The buffer is left untouched and may keep receiving writes.
func (b *Buffer[T]) Materialize() []T {
	b.locker.Lock()
	defer b.locker.Unlock()

	return b.materializeTo(make([]T, 0, b.sealedLen+b.offset))
}

// MaterializeTo appends every element written so far to dst and returns the extended slice.
func (b *Buffer[T]) MaterializeTo(dst []T) []T {
	b.locker.Lock()
	defer b.locker.Unlock()

	return b.materializeTo(slices.Grow(dst, b.sealedLen+b.offset))
}

func (b *Buffer[T]) materializeTo(dst []T) []T {
	for _, c := range b.sealed {
		dst = append(dst, c.data...)
	}
	return append(dst, b.current.data[:b.offset]...)
}

// Len returns the number of elements written.
func (b *Buffer[T]) Len() int {
	b.locker.Lock()
	defer b.locker.Unlock()

	return b.sealedLen + b.offset
}

// ChunkCapacity returns the number of elements each chunk holds.
func (b *Buffer[T]) ChunkCapacity() int {
	return b.capacity
}

// Chunks returns the number of chunks in use, sealed and active.
func (b *Buffer[T]) Chunks() int {
	b.locker.Lock()
	defer b.locker.Unlock()

	n := len(b.sealed)
	if b.current.data != nil {
		n++
	}
	return n
}

// Allocations returns how many chunks were obtained from Memory.
// Chunks reused after Reset are not counted again.
func (b *Buffer[T]) Allocations() int {
	b.locker.Lock()
	defer b.locker.Unlock()

	return b.pool.allocs
}

// Range calls fn for each element in write order until fn returns false.
// fn must not write to the buffer.
func (b *Buffer[T]) Range(fn func(index int, v T) bool) {
	b.locker.Lock()
	defer b.locker.Unlock()

	var index int
	for _, c := range b.sealed {
		for _, v := range c.data {
			if !fn(index, v) {
				return
			}
			index++
		}
	}
	for _, v := range b.current.data[:b.offset] {
		if !fn(index, v) {
			return
		}
		index++
	}
}

// All provides an iterator compatible with range loops.
//
// Example:
//
//	for index, v := range buf.All() {
//		// do something
//	}
func (b *Buffer[T]) All() iter.Seq2[int, T] {
	return b.Range
}

// Reset discards all written elements. Sealed chunks are kept for reuse up to
// the pool size; the active chunk is rewound.
func (b *Buffer[T]) Reset() {
	b.locker.Lock()
	defer b.locker.Unlock()

	for _, c := range b.sealed {
		b.pool.put(c)
	}
	clear(b.sealed)
	b.sealed = b.sealed[:0]
	b.sealedLen = 0
	b.offset = 0
}

// Release discards all written elements and returns every chunk to Memory.
// The buffer remains usable; the next write allocates a new chunk.
func (b *Buffer[T]) Release() {
	b.locker.Lock()
	defer b.locker.Unlock()

	for _, c := range b.sealed {
		b.pool.release(c)
	}
	b.pool.release(b.current)
	b.pool.drain()

	b.sealed = nil
	b.sealedLen = 0
	b.current = chunk[T]{}
	b.offset = 0
}
