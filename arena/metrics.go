package arena

// Used returns the number of bytes currently handed out, alignment padding
// included.
func (s *Storage) Used() int {
	return int(s.used)
}

// Capacity returns the fixed size of the backing buffer in bytes.
func (s *Storage) Capacity() int {
	return len(s.buf)
}

// Remaining returns the number of bytes still available before alignment
// padding.
func (s *Storage) Remaining() int {
	return len(s.buf) - int(s.used)
}

// Utilization returns the ratio of bytes in use to capacity (0.0 to 1.0).
// Returns 0.0 for a zero-capacity storage.
func (s *Storage) Utilization() float64 {
	if len(s.buf) == 0 {
		return 0
	}
	return float64(s.used) / float64(len(s.buf))
}

// StorageMetrics is a snapshot of storage statistics.
type StorageMetrics struct {
	Used        int
	Capacity    int
	Utilization float64
	Allocations uint64 // successful Allocate calls
	Failures    uint64 // Allocate calls refused for lack of space
	Reclaims    uint64 // Deallocate calls that rolled the cursor back
}

// Metrics returns a snapshot of storage statistics.
func (s *Storage) Metrics() StorageMetrics {
	return StorageMetrics{
		Used:        s.Used(),
		Capacity:    s.Capacity(),
		Utilization: s.Utilization(),
		Allocations: s.allocs,
		Failures:    s.failures,
		Reclaims:    s.reclaims,
	}
}
