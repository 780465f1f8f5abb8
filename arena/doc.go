// Package arena implements a fixed-capacity bump allocator (memory arena).
//
// # Overview
//
// A Storage owns a single buffer allocated up front. Allocation advances a
// cursor through that buffer; the system allocator is never called again
// after construction. This suits workloads that want hard memory bounds and
// wholesale cleanup:
//
//   - node memory for container structures with a known element ceiling
//   - scratch space with a strict ceiling, where running out is a signal
//   - reducing garbage collection pressure for many small objects
//
// # Basic Usage
//
//	st := arena.NewStorage(1 << 16)
//	ints := arena.For[int64](st)
//
//	p, err := ints.Allocate(1)
//	if err != nil {
//		// the storage is full; st is unchanged
//	}
//	*p = 42
//
//	ints.Deallocate(p, 1) // most recent allocation: space is reclaimed
//
// # Allocation Discipline
//
// Allocation is a pure bump: each request takes the next aligned slice of
// the buffer, and there is no free-list. Deallocate reclaims space only for
// the most recently allocated region, by rolling the cursor back — a stack
// discipline. Freeing any older region is a deliberate no-op; the hole it
// leaves is reclaimed only by Reset or by dropping the storage.
//
// Allocated regions are zeroed. A failed allocation leaves the cursor
// untouched, so the caller can retry with a smaller request or drain the
// remaining space exactly.
//
// # Typed Handles
//
// Allocator[T] is a typed view over a storage. Handles are values: copying
// one, or rebinding it to another element type with Rebind, yields a sibling
// sharing the same cursor. Handles over one storage compare equal.
//
// # Storing Pointers
//
// The buffer is untyped memory as far as the garbage collector is
// concerned. Values placed in a storage must not hold the only reference to
// Go-heap memory, or the collector may reclaim it while the arena still
// points there. Plain value types (integers, structs of them) are always
// safe.
//
// # Thread Safety
//
// Storage is single-threaded by design; callers needing concurrency must
// serialize access themselves.
//
// # Metrics
//
// The storage tracks its cursor and allocation counters. Metrics returns a
// snapshot; Collector exports the same numbers as Prometheus metrics:
//
//	reg.MustRegister(arena.NewCollector("nodes", st))
package arena
