package arena

import (
	"unsafe"

	"github.com/pkg/errors"
)

// Allocator is a typed, copyable handle over a shared Storage. All handles
// and rebinds pointing at one storage draw from the same cursor, so
// interleaved allocations of different element types pack into the same
// linear space. Two handles compare equal exactly when they reference the
// same storage; copying a handle copies nothing but the reference.
type Allocator[T any] struct {
	s *Storage
}

// For returns an allocator for T backed by s.
func For[T any](s *Storage) Allocator[T] {
	return Allocator[T]{s: s}
}

// Rebind returns a sibling allocator for U over the same storage as a.
func Rebind[U, T any](a Allocator[T]) Allocator[U] {
	return Allocator[U]{s: a.s}
}

// Storage returns the backing storage.
func (a Allocator[T]) Storage() *Storage {
	return a.s
}

// Allocate returns a pointer to n contiguous zeroed T placed in the storage
// with T's natural alignment. It fails with ErrOutOfMemory when the request
// does not fit; n <= 0 returns (nil, nil).
func (a Allocator[T]) Allocate(n int) (*T, error) {
	if n <= 0 {
		return nil, nil
	}
	var zero T
	size := unsafe.Sizeof(zero)
	// n*size must not wrap: a wrapped total would masquerade as a small
	// (or empty) request and report success for memory that was never
	// reserved.
	if size > 0 && uintptr(n) > ^uintptr(0)/size {
		return nil, errors.Wrapf(ErrOutOfMemory,
			"allocate %d elements of %d bytes overflows", n, size)
	}
	p, err := a.s.Allocate(uintptr(n)*size, unsafe.Alignof(zero))
	if err != nil {
		return nil, err
	}
	return (*T)(p), nil
}

// Slice allocates n contiguous T and returns them as a slice backed by the
// storage.
func (a Allocator[T]) Slice(n int) ([]T, error) {
	p, err := a.Allocate(n)
	if err != nil || p == nil {
		return nil, err
	}
	return unsafe.Slice(p, n), nil
}

// Deallocate returns the region holding n T to the storage. As with
// Storage.Deallocate, space is reclaimed only when the region is the most
// recent allocation.
func (a Allocator[T]) Deallocate(p *T, n int) {
	if p == nil || n <= 0 {
		return
	}
	var zero T
	a.s.Deallocate(unsafe.Pointer(p), uintptr(n)*unsafe.Sizeof(zero))
}
