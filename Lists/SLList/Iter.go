package SLList

import "github.com/tkoz0/compprog-library/Lists"

// Iter refers to one node of an SLList, or to the end position. Only
// forward stepping is possible; Next from the end position wraps to the
// first node, matching the cyclic discipline of the other containers.
// Inserting never disturbs an Iter; erasing through one invalidates every
// Iter at or after the erased position (the values behind them shift).
type Iter[T any] struct {
	l *SLList[T]
	n *node[T] //nil is the end position
}

// Begin returns an Iter to the first value, or the end Iter if the list
// is empty.
func (u *SLList[T]) Begin() Iter[T] {
	return Iter[T]{u, u.head}
}

// End returns the end Iter.
func (u *SLList[T]) End() Iter[T] {
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

// Insert v before it and return an Iter to the inserted value. Inserting
// before the end Iter appends. The node before it can't be reached in a
// singly linked list, so the new value is swapped into it's node and the
// old value moves one node back; it still refers to the same node, which
// now holds v.
// Time: O(1)
func (u *SLList[T]) Insert(it Iter[T], v T) Iter[T] {
	if it.n == nil {
		u.PushBack(v)
		return Iter[T]{u, u.tail}
	}
	n := &node[T]{it.n.v, it.n.next}
	it.n.v, it.n.next = v, n
	if u.tail == it.n {
		u.tail = n
	}
	u.sz++
	return it
}

// Erase the value at it and return an Iter to the next value (the end
// Iter if it was the last). Panics with EndIterError on the end Iter.
// Erasing anywhere but the last node is O(1) by pulling the next value
// into it's node; erasing the last node walks the list to find the new
// tail.
func (u *SLList[T]) Erase(it Iter[T]) Iter[T] {
	if it.n == nil {
		panic(&Lists.EndIterError{})
	}
	if drop := it.n.next; drop != nil {
		it.n.v, it.n.next = drop.v, drop.next
		if u.tail == drop {
			u.tail = it.n
		}
		u.sz--
		return it
	}
	//it.n is the tail
	if u.head == it.n {
		u.head, u.tail = nil, nil
	} else {
		prev := u.head
		for prev.next != it.n {
			prev = prev.next
		}
		prev.next, u.tail = nil, prev
	}
	u.sz--
	return u.End()
}
