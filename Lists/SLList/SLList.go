package SLList

import (
	"github.com/tkoz0/compprog-library/Lists"
)

// linked list node
type node[T any] struct {
	v    T
	next *node[T]
}

// SLList is a singly linked list. It keeps a tail pointer, so PushBack is
// O(1) like PushFront; only forward iteration is possible.
type SLList[T any] struct {
	head, tail *node[T]
	sz         uint
}

// New empty SLList.
func New[T any]() *SLList[T] {
	return &SLList[T]{}
}

// Repeat is a list of n nodes all holding v.
func Repeat[T any](n uint, v T) *SLList[T] {
	return FromFunc(n, func(uint) T { return v })
}

// Of is a list of the given values in order.
func Of[T any](vs ...T) *SLList[T] {
	u := New[T]()
	for _, v := range vs {
		u.PushBack(v)
	}
	return u
}

// FromFunc is the list f(0), f(1), ..., f(n-1).
func FromFunc[T any](n uint, f func(uint) T) *SLList[T] {
	u := New[T]()
	for i := uint(0); i < n; i++ {
		u.PushBack(f(i))
	}
	return u
}

// Size [Lists.List.Size]
func (u *SLList[T]) Size() uint {
	return u.sz
}

// Empty [Lists.List.Empty]
func (u *SLList[T]) Empty() bool {
	return u.sz == 0
}

// PushFront [Lists.List.PushFront]
// Time: O(1)
func (u *SLList[T]) PushFront(v T) {
	u.head = &node[T]{v, u.head}
	if u.tail == nil {
		u.tail = u.head
	}
	u.sz++
}

// PushBack [Lists.List.PushBack]
// Time: O(1)
func (u *SLList[T]) PushBack(v T) {
	n := &node[T]{v, nil}
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
func (u *SLList[T]) PopFront() T {
	if u.head == nil {
		panic(&Lists.EmptyListError{})
	}
	n := u.head
	u.head = n.next
	if u.head == nil {
		u.tail = nil
	}
	u.sz--
	return n.v
}

// Get [Lists.List.Get]. Walks from the head even for negative i, so this
// is O(n); prefer iterating.
func (u *SLList[T]) Get(i int) T {
	n := u.head
	for j := Lists.Index(i, u.sz); j > 0; j-- {
		n = n.next
	}
	return n.v
}

// Eq is whether u and o have the same length and eq holds pairwise.
func (u *SLList[T]) Eq(o *SLList[T], eq func(T, T) bool) bool {
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
func (u *SLList[T]) Concat(o *SLList[T]) {
	for i, n, sz := uint(0), o.head, o.sz; i < sz; i, n = i+1, n.next {
		u.PushBack(n.v)
	}
}

// Reverse [Lists.List.Reverse]
// Time: O(n); Space: O(1)
func (u *SLList[T]) Reverse() {
	var prev *node[T]
	for n := u.head; n != nil; {
		n.next, prev, n = prev, n, n.next
	}
	u.head, u.tail = u.tail, u.head
}

// Range [Lists.List.Range]
func (u *SLList[T]) Range(f func(T) bool) {
	for n := u.head; n != nil; n = n.next {
		if !f(n.v) {
			return
		}
	}
}

// Clear drops all nodes.
func (u *SLList[T]) Clear() {
	u.head, u.tail, u.sz = nil, nil, 0
}

// Sort the nodes in place by relinking, stably, under lessThan.
// Time: O(n log n); Space: O(log n) for the recursion
func (u *SLList[T]) Sort(lessThan func(T, T) bool) {
	u.head = mergeSort(u.head, lessThan)
	for n := u.head; n != nil; n = n.next {
		u.tail = n
	}
}

// mergeSort splits the chain at its middle with a slow/fast walk, sorts
// both halves and merges them, taking from the first half on ties for
// stability. Recursive.
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
