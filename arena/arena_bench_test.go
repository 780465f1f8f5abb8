package arena

import "testing"

func BenchmarkStorageAllocate(b *testing.B) {
	s := NewStorage(1 << 20)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Allocate(64, 8); err != nil {
			s.Reset()
		}
	}
}

func BenchmarkStorageAllocDealloc(b *testing.B) {
	s := NewStorage(1 << 12)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p, err := s.Allocate(64, 8)
		if err != nil {
			b.Fatal(err)
		}
		s.Deallocate(p, 64)
	}
}

func BenchmarkAllocatorTyped(b *testing.B) {
	s := NewStorage(1 << 20)
	ints := For[int64](s)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ints.Allocate(1); err != nil {
			s.Reset()
		}
	}
}
