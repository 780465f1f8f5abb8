package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorageMetrics(t *testing.T) {
	s := NewStorage(100)

	p, err := s.Allocate(25, 1)
	require.NoError(t, err)
	_, err = s.Allocate(200, 1)
	require.ErrorIs(t, err, ErrOutOfMemory)
	s.Deallocate(p, 25)

	m := s.Metrics()
	assert.Equal(t, 0, m.Used)
	assert.Equal(t, 100, m.Capacity)
	assert.Equal(t, uint64(1), m.Allocations)
	assert.Equal(t, uint64(1), m.Failures)
	assert.Equal(t, uint64(1), m.Reclaims)
}

func TestStorageUtilization(t *testing.T) {
	s := NewStorage(100)
	_, err := s.Allocate(25, 1)
	require.NoError(t, err)

	assert.InDelta(t, 0.25, s.Utilization(), 1e-9)
	assert.Equal(t, 75, s.Remaining())

	empty := NewStorage(0)
	assert.Zero(t, empty.Utilization())
}
