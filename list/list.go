// Package list implements a generic, allocator-aware doubly linked list.
//
// Elements live in nodes linked into a circular ring anchored by a
// sentinel, giving O(1) insertion and removal at any position and
// bidirectional traversal. Node memory comes from an Allocator — typically
// a fixed-capacity *arena.Storage, or the Go heap — and every mutating
// operation either completes or leaves the list exactly as it was.
//
// Lists are single-threaded; the zero value is an empty list backed by the
// Go runtime.
package list

import "unsafe"

// node is one link of the ring. The sentinel is a node whose value is never
// read.
type node[T any] struct {
	prev, next *node[T]
	value      T
}

func nodeLayout[T any]() (size, align uintptr) {
	var n node[T]
	return unsafe.Sizeof(n), unsafe.Alignof(n)
}

// Cloner is implemented by element types whose copies can fail. Operations
// that duplicate elements call Clone and roll back on error; any other type
// is copied by plain assignment, which cannot fail.
type Cloner[T any] interface {
	Clone() (T, error)
}

func cloneValue[T any](v T) (T, error) {
	if c, ok := any(v).(Cloner[T]); ok {
		return c.Clone()
	}
	return v, nil
}

// List is a doubly linked list of T. Its sentinel is held in place, so an
// empty list allocates nothing.
type List[T any] struct {
	root  node[T]   // sentinel: root.next is the front, root.prev the back
	alloc Allocator // nil means plain Go runtime allocation
	size  int
}

// New returns an empty list whose nodes are ordinary Go allocations,
// reclaimed by the garbage collector.
func New[T any]() *List[T] {
	return new(List[T]).init()
}

// NewIn returns an empty list drawing node memory from alloc.
func NewIn[T any](alloc Allocator) *List[T] {
	l := new(List[T]).init()
	l.alloc = alloc
	return l
}

// NewCount returns a list of n zero-value elements allocated from alloc.
// On failure every node built so far is destroyed and released before the
// error is returned; nothing leaks.
func NewCount[T any](alloc Allocator, n int) (*List[T], error) {
	l := NewIn[T](alloc)
	for i := 0; i < n; i++ {
		var zero T
		if _, err := l.insert(&l.root, zero, false); err != nil {
			l.Clear()
			return nil, err
		}
	}
	return l, nil
}

// Repeat returns a list of n copies of v allocated from alloc, with the
// same all-or-nothing contract as NewCount.
func Repeat[T any](alloc Allocator, n int, v T) (*List[T], error) {
	l := NewIn[T](alloc)
	for i := 0; i < n; i++ {
		if err := l.PushBack(v); err != nil {
			l.Clear()
			return nil, err
		}
	}
	return l, nil
}

func (l *List[T]) init() *List[T] {
	l.root.prev = &l.root
	l.root.next = &l.root
	l.size = 0
	return l
}

func (l *List[T]) lazyInit() {
	if l.root.next == nil {
		l.init()
	}
}

// newNode allocates and fills one node. When cloned is set the value is
// copied through Cloner; a failed copy releases the just-allocated memory
// before the error is returned.
func (l *List[T]) newNode(prev, next *node[T], v T, cloned bool) (*node[T], error) {
	var n *node[T]
	if l.alloc == nil {
		n = &node[T]{prev: prev, next: next}
	} else {
		size, align := nodeLayout[T]()
		p, err := l.alloc.Allocate(size, align)
		if err != nil {
			return nil, err
		}
		n = (*node[T])(p)
		n.prev, n.next = prev, next
	}
	if cloned {
		c, err := cloneValue(v)
		if err != nil {
			l.freeNode(n)
			return nil, err
		}
		v = c
	}
	n.value = v
	return n, nil
}

// freeNode destroys the element and releases the node's memory.
func (l *List[T]) freeNode(n *node[T]) {
	var zero T
	n.value = zero // drop element references before the memory goes
	n.prev, n.next = nil, nil
	if l.alloc == nil {
		return
	}
	size, _ := nodeLayout[T]()
	l.alloc.Deallocate(unsafe.Pointer(n), size)
}

// insert builds a node holding v and splices it in front of at. The ring is
// touched only once the node is fully built, so a failed allocation or copy
// leaves the list unchanged.
func (l *List[T]) insert(at *node[T], v T, cloned bool) (*node[T], error) {
	n, err := l.newNode(at.prev, at, v, cloned)
	if err != nil {
		return nil, err
	}
	at.prev.next = n
	at.prev = n
	l.size++
	return n, nil
}

// remove unlinks n, destroys its element and releases its memory, returning
// the node that followed it.
func (l *List[T]) remove(n *node[T]) *node[T] {
	next := n.next
	n.prev.next = n.next
	n.next.prev = n.prev
	l.freeNode(n)
	l.size--
	return next
}

// Len returns the number of elements. O(1).
func (l *List[T]) Len() int {
	return l.size
}

// Allocator returns the allocator in use; nil means the Go runtime.
func (l *List[T]) Allocator() Allocator {
	return l.alloc
}

// PushBack appends a copy of v. On error the list is unchanged.
func (l *List[T]) PushBack(v T) error {
	l.lazyInit()
	_, err := l.insert(&l.root, v, true)
	return err
}

// PushFront prepends a copy of v. On error the list is unchanged.
func (l *List[T]) PushFront(v T) error {
	l.lazyInit()
	_, err := l.insert(l.root.next, v, true)
	return err
}

// PopBack removes the last element. It panics on an empty list.
func (l *List[T]) PopBack() {
	if l.size == 0 {
		panic("list: PopBack on empty list")
	}
	l.remove(l.root.prev)
}

// PopFront removes the first element. It panics on an empty list.
func (l *List[T]) PopFront() {
	if l.size == 0 {
		panic("list: PopFront on empty list")
	}
	l.remove(l.root.next)
}

// Front returns the first element. It panics on an empty list.
func (l *List[T]) Front() T {
	if l.size == 0 {
		panic("list: Front on empty list")
	}
	return l.root.next.value
}

// Back returns the last element. It panics on an empty list.
func (l *List[T]) Back() T {
	if l.size == 0 {
		panic("list: Back on empty list")
	}
	return l.root.prev.value
}

// Insert places a copy of v in front of at and returns an iterator to the
// new element: inserting before End appends, inserting at Begin prepends.
// Exactly two neighbor links change; on error nothing does. at must belong
// to l.
func (l *List[T]) Insert(at Iterator[T], v T) (Iterator[T], error) {
	l.lazyInit()
	n, err := l.insert(at.n, v, true)
	if err != nil {
		return Iterator[T]{}, err
	}
	return Iterator[T]{n}, nil
}

// Erase removes the element at and returns an iterator to the element that
// followed it. Iterators to the erased element become invalid; all others
// stay valid. at must address an element of l, not the end position.
func (l *List[T]) Erase(at Iterator[T]) Iterator[T] {
	return Iterator[T]{l.remove(at.n)}
}

// Clear destroys every element, releases every node and resets the empty
// ring. It never fails. With an arena allocator, space freed front to back
// reclaims only the final tail region; the rest of the buffer returns when
// the storage is reset or dropped.
func (l *List[T]) Clear() {
	l.lazyInit()
	n := l.root.next
	for n != &l.root {
		next := n.next
		l.freeNode(n)
		n = next
	}
	l.init()
}

// Clone returns an element-wise copy of l using l's own allocator. On a
// failed copy every node built so far is released and the error propagates.
func (l *List[T]) Clone() (*List[T], error) {
	return l.CloneIn(l.alloc)
}

// CloneIn is Clone with an explicit allocator for the copy.
func (l *List[T]) CloneIn(alloc Allocator) (*List[T], error) {
	out := NewIn[T](alloc)
	for it := l.Begin(); it != l.End(); it = it.Next() {
		if err := out.PushBack(it.Value()); err != nil {
			out.Clear()
			return nil, err
		}
	}
	return out, nil
}

// Assign replaces l's contents with a copy of other, copy-and-swap style:
// the replacement is built in full before l is touched, so a failed copy
// leaves l exactly as it was — same size, same elements, same nodes. The
// copy draws from other's allocator when that allocator propagates on copy,
// otherwise from l's own. Assigning a list to itself is safe.
func (l *List[T]) Assign(other *List[T]) error {
	l.lazyInit()
	alloc := l.alloc
	if other.alloc != nil && propagates(other.alloc) {
		alloc = other.alloc
	}
	tmp, err := other.CloneIn(alloc)
	if err != nil {
		return err
	}
	l.swap(tmp)
	tmp.Clear() // the displaced contents, released now the swap is done
	return nil
}

// swap exchanges ring, size and allocator with o, then repoints each ring's
// boundary nodes at the sentinel's new address.
func (l *List[T]) swap(o *List[T]) {
	l.alloc, o.alloc = o.alloc, l.alloc
	l.size, o.size = o.size, l.size
	l.root, o.root = o.root, l.root
	l.reanchor()
	o.reanchor()
}

func (l *List[T]) reanchor() {
	if l.size == 0 {
		l.root.prev = &l.root
		l.root.next = &l.root
		return
	}
	l.root.next.prev = &l.root
	l.root.prev.next = &l.root
}
