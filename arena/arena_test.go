package arena

import (
	"testing"
	"unsafe"

	"github.com/pkg/errors"
)

func TestNewStorage(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		expected int
	}{
		{"zero capacity", 0, 0},
		{"negative capacity", -1, 0},
		{"custom capacity", 8192, 8192},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStorage(tt.capacity)
			if s.Capacity() != tt.expected {
				t.Errorf("NewStorage(%d) capacity = %d, want %d", tt.capacity, s.Capacity(), tt.expected)
			}
			if s.Used() != 0 {
				t.Errorf("NewStorage(%d) used = %d, want 0", tt.capacity, s.Used())
			}
		})
	}
}

func TestStorageAlignmentPadding(t *testing.T) {
	s := NewStorage(64)

	if _, err := s.Allocate(1, 1); err != nil {
		t.Fatalf("Allocate(1, 1) failed: %v", err)
	}
	if s.Used() != 1 {
		t.Errorf("used = %d, want 1", s.Used())
	}

	// 7 bytes of padding to reach the next 8-byte boundary.
	if _, err := s.Allocate(8, 8); err != nil {
		t.Fatalf("Allocate(8, 8) failed: %v", err)
	}
	if s.Used() != 16 {
		t.Errorf("used = %d, want 16", s.Used())
	}

	// Already aligned: no padding.
	if _, err := s.Allocate(4, 4); err != nil {
		t.Fatalf("Allocate(4, 4) failed: %v", err)
	}
	if s.Used() != 20 {
		t.Errorf("used = %d, want 20", s.Used())
	}
}

func TestStorageCapacityInvariant(t *testing.T) {
	s := NewStorage(64)

	if _, err := s.Allocate(40, 1); err != nil {
		t.Fatalf("Allocate(40, 1) failed: %v", err)
	}

	// Over capacity: must fail and leave the cursor untouched.
	if _, err := s.Allocate(40, 1); !errors.Is(err, ErrOutOfMemory) {
		t.Fatalf("Allocate(40, 1) error = %v, want ErrOutOfMemory", err)
	}
	if s.Used() != 40 {
		t.Errorf("used after failed allocation = %d, want 40", s.Used())
	}

	// The exact remaining space must still be allocatable.
	if _, err := s.Allocate(24, 1); err != nil {
		t.Fatalf("Allocate(24, 1) of exact remainder failed: %v", err)
	}
	if s.Used() != 64 {
		t.Errorf("used = %d, want 64", s.Used())
	}
	if _, err := s.Allocate(1, 1); !errors.Is(err, ErrOutOfMemory) {
		t.Errorf("Allocate(1, 1) on full storage error = %v, want ErrOutOfMemory", err)
	}
}

func TestStorageTailReclaim(t *testing.T) {
	s := NewStorage(64)

	a, err := s.Allocate(16, 1)
	if err != nil {
		t.Fatalf("Allocate(16, 1) failed: %v", err)
	}
	b, err := s.Allocate(8, 1)
	if err != nil {
		t.Fatalf("Allocate(8, 1) failed: %v", err)
	}

	// a is not the tail: freeing it must not move the cursor.
	s.Deallocate(a, 16)
	if s.Used() != 24 {
		t.Errorf("used after interior free = %d, want 24", s.Used())
	}

	// b is the tail: freeing it rolls the cursor back.
	s.Deallocate(b, 8)
	if s.Used() != 16 {
		t.Errorf("used after tail free = %d, want 16", s.Used())
	}

	// a has become the tail now.
	s.Deallocate(a, 16)
	if s.Used() != 0 {
		t.Errorf("used after second tail free = %d, want 0", s.Used())
	}
}

func TestStorageHugeRequest(t *testing.T) {
	s := NewStorage(16)
	if _, err := s.Allocate(8, 1); err != nil {
		t.Fatalf("Allocate(8, 1) failed: %v", err)
	}

	// A near-MaxUint size must fail cleanly: wrapping arithmetic in the
	// fit check would advance the cursor backward and corrupt the storage.
	if _, err := s.Allocate(^uintptr(0)-4, 1); !errors.Is(err, ErrOutOfMemory) {
		t.Fatalf("huge Allocate error = %v, want ErrOutOfMemory", err)
	}
	if s.Used() != 8 {
		t.Errorf("used after huge request = %d, want 8", s.Used())
	}

	// The storage must still serve its real remainder.
	if _, err := s.Allocate(8, 1); err != nil {
		t.Errorf("Allocate(8, 1) after huge request failed: %v", err)
	}
}

func TestStorageZeroSize(t *testing.T) {
	s := NewStorage(16)
	p, err := s.Allocate(0, 8)
	if err != nil {
		t.Fatalf("Allocate(0, 8) failed: %v", err)
	}
	if p != nil {
		t.Errorf("Allocate(0, 8) = %v, want nil", p)
	}
	if s.Used() != 0 {
		t.Errorf("used = %d, want 0", s.Used())
	}
	s.Deallocate(nil, 0) // must be a safe no-op
}

func TestStorageZeroesReusedMemory(t *testing.T) {
	s := NewStorage(32)

	p, err := s.Allocate(8, 1)
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}
	region := unsafe.Slice((*byte)(p), 8)
	for i := range region {
		region[i] = 0xFF
	}

	s.Deallocate(p, 8)
	q, err := s.Allocate(8, 1)
	if err != nil {
		t.Fatalf("Allocate after reclaim failed: %v", err)
	}
	if q != p {
		t.Fatalf("tail reclaim did not reuse the region: got %v, want %v", q, p)
	}
	for i, b := range unsafe.Slice((*byte)(q), 8) {
		if b != 0 {
			t.Errorf("byte %d = %#x, want 0", i, b)
		}
	}
}

func TestStorageReset(t *testing.T) {
	s := NewStorage(32)
	if _, err := s.Allocate(24, 1); err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}
	s.Reset()
	if s.Used() != 0 {
		t.Errorf("used after Reset = %d, want 0", s.Used())
	}
	if _, err := s.Allocate(32, 1); err != nil {
		t.Errorf("Allocate after Reset failed: %v", err)
	}
}
