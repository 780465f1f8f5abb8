package arena

import (
	"unsafe"

	"github.com/pkg/errors"
)

// ErrOutOfMemory is returned when a request does not fit in the storage's
// remaining space, alignment padding included.
var ErrOutOfMemory = errors.New("arena: out of memory")

// Storage owns a single fixed-size buffer and hands out aligned regions of
// it. It never grows: a request that does not fit fails instead. Not
// goroutine-safe.
type Storage struct {
	buf  []byte
	used uintptr // bytes handed out so far, padding included

	allocs   uint64
	failures uint64
	reclaims uint64
}

// NewStorage creates a Storage backed by a fresh buffer of capacity bytes.
// Capacity is fixed for the life of the storage.
func NewStorage(capacity int) *Storage {
	if capacity < 0 {
		capacity = 0
	}
	return &Storage{buf: make([]byte, capacity)}
}

// Allocate carves size bytes aligned to align out of the buffer. The
// returned region is zeroed. On ErrOutOfMemory the cursor is left exactly
// where it was; padding is never committed for a failed request.
//
// A zero-size request returns (nil, nil) without consuming space.
func (s *Storage) Allocate(size, align uintptr) (unsafe.Pointer, error) {
	if size == 0 {
		return nil, nil
	}
	if align == 0 {
		align = 1
	}
	padding := uintptr(0)
	if rem := s.used % align; rem != 0 {
		padding = align - rem
	}
	// Compare against the remaining space by subtraction: summing the
	// request side could wrap around for near-MaxUint sizes and slip past
	// the guard.
	remaining := uintptr(len(s.buf)) - s.used
	if padding >= remaining || size > remaining-padding {
		s.failures++
		return nil, errors.Wrapf(ErrOutOfMemory,
			"allocate %d bytes (align %d) with %d of %d in use",
			size, align, s.used, len(s.buf))
	}
	s.used += padding
	p := unsafe.Pointer(&s.buf[s.used])
	s.used += size
	s.allocs++
	// Zero the region: the buffer may hold stale bytes from a reclaimed
	// tail, and pointer-bearing values must never be laid over garbage.
	clear(s.buf[s.used-size : s.used])
	return p, nil
}

// Deallocate hands a region back to the storage. Only the most recently
// allocated region is actually reclaimed: when [p, p+size) is exactly the
// tail of the used space, the cursor rolls back by size. Freeing any other
// region is a no-op — interior holes are never reused and return only when
// the storage itself is reset or dropped.
func (s *Storage) Deallocate(p unsafe.Pointer, size uintptr) {
	if p == nil || size == 0 {
		return
	}
	tail := unsafe.Add(unsafe.Pointer(unsafe.SliceData(s.buf)), s.used)
	if unsafe.Add(p, size) == tail {
		s.used -= size
		s.reclaims++
	}
}

// Reset discards every allocation at once by moving the cursor back to the
// start of the buffer. Pointers handed out before the reset must not be
// used afterwards.
func (s *Storage) Reset() {
	s.used = 0
}
