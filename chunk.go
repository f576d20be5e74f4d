package growbuf

import (
	"unsafe"

	"github.com/eapache/queue"
)

// chunk is a fixed-capacity block of elements carved out of Memory.
// data always has cap == chunk capacity; its len is the valid prefix once sealed.
type chunk[T Number] struct {
	data []T
	mem  []byte
}

// chunkPool hands out chunks of one capacity, preferring recycled ones.
type chunkPool[T Number] struct {
	memory   Memory
	capacity int
	limit    int
	free     *queue.Queue
	allocs   int
}

func newChunkPool[T Number](memory Memory, capacity, limit int) *chunkPool[T] {
	return &chunkPool[T]{
		memory:   memory,
		capacity: capacity,
		limit:    limit,
		free:     queue.New(),
	}
}

// get returns a chunk with every slot writable, or false if Memory is exhausted.
func (p *chunkPool[T]) get() (chunk[T], bool) {
	if p.free.Length() > 0 {
		c := p.free.Remove().(chunk[T])
		c.data = c.data[:cap(c.data)]
		return c, true
	}

	size := uintptr(p.capacity) * sizeof[T]()
	m := p.memory.Alloc(size)
	if uintptr(len(m)) < size {
		if m != nil {
			p.memory.Free(m)
		}
		return chunk[T]{}, false
	}
	p.allocs++

	data := unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(m))), p.capacity)
	return chunk[T]{data: data, mem: m}, true
}

// put keeps c for reuse while the pool has room, otherwise frees it.
func (p *chunkPool[T]) put(c chunk[T]) {
	if c.mem == nil {
		return
	}
	if p.free.Length() < p.limit {
		p.free.Add(c)
		return
	}
	p.memory.Free(c.mem)
}

// release frees c immediately, bypassing the pool.
func (p *chunkPool[T]) release(c chunk[T]) {
	if c.mem != nil {
		p.memory.Free(c.mem)
	}
}

// drain frees every pooled chunk.
func (p *chunkPool[T]) drain() {
	for p.free.Length() > 0 {
		p.release(p.free.Remove().(chunk[T]))
	}
}

func (p *chunkPool[T]) pooled() int {
	return p.free.Length()
}

func sizeof[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}
