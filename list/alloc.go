package list

import (
	"unsafe"

	"github.com/pkg/errors"
)

// Allocator is the raw memory source a List draws node storage from.
// *arena.Storage satisfies it directly, and Heap provides a Go-heap-backed
// implementation. Requests carry their own size and alignment, so one
// allocator serves lists of any element type.
//
// Allocator values are compared with ==: two lists share node storage
// exactly when their allocators are equal.
type Allocator interface {
	// Allocate returns a zeroed region of size bytes aligned to align.
	Allocate(size, align uintptr) (unsafe.Pointer, error)
	// Deallocate returns a region obtained from Allocate. Implementations
	// are free to reclaim the space or not.
	Deallocate(p unsafe.Pointer, size uintptr)
}

// Propagator is implemented by allocators that should follow the source
// list across Assign; a destination list otherwise keeps its own allocator
// for the copy.
type Propagator interface {
	PropagateOnCopy() bool
}

// Propagate wraps a so that Assign adopts it from the source list.
func Propagate(a Allocator) Allocator {
	return propagating{a}
}

type propagating struct {
	Allocator
}

func (propagating) PropagateOnCopy() bool { return true }

func propagates(a Allocator) bool {
	p, ok := a.(Propagator)
	return ok && p.PropagateOnCopy()
}

// ErrAllocatorClosed is returned by a Heap that has been closed.
var ErrAllocatorClosed = errors.New("list: allocator closed")

// Heap allocates node memory from the Go heap while keeping a reference to
// every outstanding region, so nodes reached only through raw links stay
// visible to the garbage collector. Deallocate drops the reference and the
// collector does the rest.
type Heap struct {
	live   map[unsafe.Pointer][]byte
	closed bool
}

// NewHeap returns an empty heap allocator.
func NewHeap() *Heap {
	return &Heap{live: make(map[unsafe.Pointer][]byte)}
}

// Allocate returns a zeroed region of size bytes aligned to align.
func (h *Heap) Allocate(size, align uintptr) (unsafe.Pointer, error) {
	if h.closed {
		return nil, errors.WithStack(ErrAllocatorClosed)
	}
	if size == 0 {
		return nil, nil
	}
	if align == 0 {
		align = 1
	}
	buf := make([]byte, size+align-1)
	p := unsafe.Pointer(unsafe.SliceData(buf))
	if off := uintptr(p) % align; off != 0 {
		p = unsafe.Add(p, align-off)
	}
	h.live[p] = buf
	return p, nil
}

// Deallocate releases the region at p to the garbage collector.
func (h *Heap) Deallocate(p unsafe.Pointer, size uintptr) {
	delete(h.live, p)
}

// Live reports the number of outstanding allocations.
func (h *Heap) Live() int {
	return len(h.live)
}

// Close refuses further allocations. Outstanding regions stay valid until
// deallocated.
func (h *Heap) Close() {
	h.closed = true
}
