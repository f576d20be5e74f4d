//go:build linux || darwin || freebsd || netbsd || openbsd

package growbuf

import "golang.org/x/sys/unix"

// MmapMemory backs chunks with anonymous private mappings, keeping large
// buffers outside the Go heap. Chunks must be returned with Buffer.Release,
// otherwise the mappings live until the process exits.
type MmapMemory struct{}

func (MmapMemory) Alloc(size uintptr) []byte {
	m, err := unix.Mmap(-1, 0, int(size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil
	}
	return m
}

func (MmapMemory) Free(m []byte) {
	if len(m) == 0 {
		return
	}
	_ = unix.Munmap(m)
}
