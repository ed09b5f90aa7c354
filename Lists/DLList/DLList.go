package DLList

import (
	"github.com/tkoz0/compprog-library/Lists"
)

// linked list node
type node[T any] struct {
	v          T
	prev, next *node[T]
}

// DLList is a doubly linked list. It supports O(1) pushes and pops at
// both ends and cyclic bidirectional iteration.
type DLList[T any] struct {
	head, tail *node[T]
	sz         uint
}

// New empty DLList.
func New[T any]() *DLList[T] {
	return &DLList[T]{}
}

// Repeat is a list of n nodes all holding v.
func Repeat[T any](n uint, v T) *DLList[T] {
	return FromFunc(n, func(uint) T { return v })
}

// Of is a list of the given values in order.
func Of[T any](vs ...T) *DLList[T] {
	u := New[T]()
	for _, v := range vs {
		u.PushBack(v)
	}
	return u
}

// FromFunc is the list f(0), f(1), ..., f(n-1).
func FromFunc[T any](n uint, f func(uint) T) *DLList[T] {
	u := New[T]()
	for i := uint(0); i < n; i++ {
		u.PushBack(f(i))
	}
	return u
}

// Size [Lists.List.Size]
func (u *DLList[T]) Size() uint {
	return u.sz
}

// Empty [Lists.List.Empty]
func (u *DLList[T]) Empty() bool {
	return u.sz == 0
}

// PushFront [Lists.List.PushFront]
// Time: O(1)
func (u *DLList[T]) PushFront(v T) {
	n := &node[T]{v, nil, u.head}
	if u.head == nil {
		u.tail = n
	} else {
		u.head.prev = n
	}
	u.head = n
	u.sz++
}

// PushBack [Lists.List.PushBack]
// Time: O(1)
func (u *DLList[T]) PushBack(v T) {
	n := &node[T]{v, u.tail, nil}
	if u.tail == nil {
		u.head = n
	} else {
		u.tail.next = n
	}
	u.tail = n
	u.sz++
}

// PopFront [Lists.List.PopFront]
// Time: O(1)
func (u *DLList[T]) PopFront() T {
	if u.head == nil {
		panic(&Lists.EmptyListError{})
	}
	n := u.head
	u.unlink(n)
	return n.v
}

// PopBack removes and returns the last value. Panics with EmptyListError
// on an empty list.
// Time: O(1)
func (u *DLList[T]) PopBack() T {
	if u.tail == nil {
		panic(&Lists.EmptyListError{})
	}
	n := u.tail
	u.unlink(n)
	return n.v
}

// unlink n from the chain. n must be a node of u.
func (u *DLList[T]) unlink(n *node[T]) {
	if n.prev == nil {
		u.head = n.next
	} else {
		n.prev.next = n.next
	}
	if n.next == nil {
		u.tail = n.prev
	} else {
		n.next.prev = n.prev
	}
	u.sz--
}

// Get [Lists.List.Get]. Walks from whichever end is nearer to i.
// Time: O(min(i, n-i))
func (u *DLList[T]) Get(i int) T {
	j := Lists.Index(i, u.sz)
	if j < u.sz/2 {
		n := u.head
		for ; j > 0; j-- {
			n = n.next
		}
		return n.v
	}
	n := u.tail
	for j = u.sz - 1 - j; j > 0; j-- {
		n = n.prev
	}
	return n.v
}

// Eq is whether u and o have the same length and eq holds pairwise.
func (u *DLList[T]) Eq(o *DLList[T], eq func(T, T) bool) bool {
	if u.sz != o.sz {
		return false
	}
	for a, b := u.head, o.head; a != nil; a, b = a.next, b.next {
		if !eq(a.v, b.v) {
			return false
		}
	}
	return true
}

// Concat appends a copy of o's values to u. o is unchanged; o may be u.
// Time: O(len(o))
func (u *DLList[T]) Concat(o *DLList[T]) {
	for i, n, sz := uint(0), o.head, o.sz; i < sz; i, n = i+1, n.next {
		u.PushBack(n.v)
	}
}

// Reverse [Lists.List.Reverse]
// Time: O(n); Space: O(1)
func (u *DLList[T]) Reverse() {
	for n := u.head; n != nil; n = n.prev {
		n.prev, n.next = n.next, n.prev
	}
	u.head, u.tail = u.tail, u.head
}

// Range [Lists.List.Range]
func (u *DLList[T]) Range(f func(T) bool) {
	for n := u.head; n != nil; n = n.next {
		if !f(n.v) {
			return
		}
	}
}

// Clear drops all nodes.
func (u *DLList[T]) Clear() {
	u.head, u.tail, u.sz = nil, nil, 0
}

// Sort the nodes in place by relinking, stably, under lessThan. The
// chain is sorted through the next links only, then the prev links and
// the tail are rebuilt in one pass.
// Time: O(n log n); Space: O(log n) for the recursion
func (u *DLList[T]) Sort(lessThan func(T, T) bool) {
	u.head = mergeSort(u.head, lessThan)
	var prev *node[T]
	for n := u.head; n != nil; prev, n = n, n.next {
		n.prev = prev
	}
	u.tail = prev
}

// mergeSort on the next links, as in SLList: split at the middle with a
// slow/fast walk, sort halves, merge taking from the first on ties.
// The prev links are left stale for Sort to rebuild. Recursive.
func mergeSort[T any](h *node[T], lt func(T, T) bool) *node[T] {
	if h == nil || h.next == nil {
		return h
	}
	slow, fast := h, h.next
	for fast != nil && fast.next != nil {
		slow, fast = slow.next, fast.next.next
	}
	mid := slow.next
	slow.next = nil
	a, b := mergeSort(h, lt), mergeSort(mid, lt)
	var dummy node[T]
	t := &dummy
	for a != nil && b != nil {
		if lt(b.v, a.v) {
			t.next, b = b, b.next
		} else {
			t.next, a = a, a.next
		}
		t = t.next
	}
	if a != nil {
		t.next = a
	} else {
		t.next = b
	}
	return dummy.next
}
