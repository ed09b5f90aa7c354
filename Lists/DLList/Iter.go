package DLList

import "github.com/tkoz0/compprog-library/Lists"

// Iter refers to one node of a DLList, or to the end position past the
// last node. The position sequence is cyclic: Next from the last node is
// the end Iter, Next from the end Iter is the first node, and Prev
// mirrors both. Erasing a node invalidates only Iters to that node.
type Iter[T any] struct {
	l *DLList[T]
	n *node[T] //nil is the end position
}

// Begin returns an Iter to the first value, or the end Iter if the list
// is empty.
func (u *DLList[T]) Begin() Iter[T] {
	return Iter[T]{u, u.head}
}

// End returns the end Iter.
func (u *DLList[T]) End() Iter[T] {
	return Iter[T]{u, nil}
}

// IsEnd is whether it is the end Iter.
func (it Iter[T]) IsEnd() bool {
	return it.n == nil
}

// Value of the node it refers to. Panics with EndIterError on the end Iter.
func (it Iter[T]) Value() T {
	if it.n == nil {
		panic(&Lists.EndIterError{})
	}
	return it.n.v
}

// Next position, wrapping from the end to the first value.
func (it Iter[T]) Next() Iter[T] {
	if it.n == nil {
		return Iter[T]{it.l, it.l.head}
	}
	return Iter[T]{it.l, it.n.next}
}

// Prev position, wrapping from the end to the last value.
func (it Iter[T]) Prev() Iter[T] {
	if it.n == nil {
		return Iter[T]{it.l, it.l.tail}
	}
	return Iter[T]{it.l, it.n.prev}
}

// Insert v before it and return an Iter to the new node. Inserting
// before the end Iter appends. it stays valid and keeps its node.
// Time: O(1)
func (u *DLList[T]) Insert(it Iter[T], v T) Iter[T] {
	if it.n == nil {
		u.PushBack(v)
		return Iter[T]{u, u.tail}
	}
	n := &node[T]{v, it.n.prev, it.n}
	if it.n.prev == nil {
		u.head = n
	} else {
		it.n.prev.next = n
	}
	it.n.prev = n
	u.sz++
	return Iter[T]{u, n}
}

// Erase the node at it and return an Iter to the next value (the end
// Iter if it was the last). Panics with EndIterError on the end Iter.
// Time: O(1)
func (u *DLList[T]) Erase(it Iter[T]) Iter[T] {
	if it.n == nil {
		panic(&Lists.EndIterError{})
	}
	next := it.n.next
	u.unlink(it.n)
	return Iter[T]{u, next}
}
