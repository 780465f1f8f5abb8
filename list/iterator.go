package list

import "iter"

// Iterator addresses one element of a List, or the list's end position.
// Iterators are plain values: two compare == exactly when they address the
// same node, and copying one is free. An iterator stays valid until the
// element it addresses is erased.
type Iterator[T any] struct {
	n *node[T]
}

// Begin returns an iterator to the first element; on an empty list it
// equals End.
func (l *List[T]) Begin() Iterator[T] {
	l.lazyInit()
	return Iterator[T]{l.root.next}
}

// End returns the one-past-the-end position. Dereferencing it is undefined.
func (l *List[T]) End() Iterator[T] {
	l.lazyInit()
	return Iterator[T]{&l.root}
}

// Next returns the iterator one element forward; advancing from the last
// element yields End.
func (it Iterator[T]) Next() Iterator[T] {
	return Iterator[T]{it.n.next}
}

// Prev returns the iterator one element back; stepping back from End yields
// the last element.
func (it Iterator[T]) Prev() Iterator[T] {
	return Iterator[T]{it.n.prev}
}

// Value returns the element the iterator addresses.
func (it Iterator[T]) Value() T {
	return it.n.value
}

// Ref returns a pointer to the element in place. The pointer is valid for
// as long as the iterator is.
func (it Iterator[T]) Ref() *T {
	return &it.n.value
}

// Set overwrites the element in place.
func (it Iterator[T]) Set(v T) {
	it.n.value = v
}

// All yields the elements front to back.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		l.lazyInit()
		for n := l.root.next; n != &l.root; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Backward yields the elements back to front.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		l.lazyInit()
		for n := l.root.prev; n != &l.root; n = n.prev {
			if !yield(n.value) {
				return
			}
		}
	}
}
