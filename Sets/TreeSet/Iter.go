package TreeSet

import "golang.org/x/exp/constraints"

// Iter refers to one element of a TreeSet, or to the end position past the
// last element. It carries the owning set because stepping from the end
// position needs the root of the tree. Iters are values and are comparable
// with ==; two Iters are equal iff they refer to the same position of the
// same set.
// The sequence of positions is cyclic in sorted order: Next from the last
// element gives the end Iter, Next from the end Iter gives the first
// element, and Prev mirrors both. On an empty set Begin and End coincide.
// An Iter stays usable across Insert and across erasure of other
// elements. Erasing its own element, Rebuild, or Clear invalidates it;
// using an invalidated Iter panics with StaleIterError.
type Iter[T any, S constraints.Unsigned] struct {
	t   *TreeSet[T, S]
	i   S //current slot; 0 is the end position
	gen S //gen of slot i when the Iter was made
}

func (u *TreeSet[T, S]) mkIter(i S) Iter[T, S] {
	return Iter[T, S]{u, i, u.ifs[i].gen}
}

// Begin returns an Iter to the smallest element, or the end Iter if the
// set is empty.
func (u *TreeSet[T, S]) Begin() Iter[T, S] {
	return u.mkIter(u.leftmost(u.root))
}

// End returns the end Iter.
func (u *TreeSet[T, S]) End() Iter[T, S] {
	return u.mkIter(0)
}

// check panics with StaleIterError unless it still refers to a live slot
// or the end position.
func (it Iter[T, S]) check() {
	if int(it.i) >= len(it.t.ifs) || it.t.ifs[it.i].gen != it.gen {
		panic(&StaleIterError{})
	}
}

// Valid is whether it refers to a live element (not the end position, not
// an erased one).
func (it Iter[T, S]) Valid() bool {
	return it.i != 0 && int(it.i) < len(it.t.ifs) && it.t.ifs[it.i].gen == it.gen
}

// IsEnd is whether it is the end Iter.
func (it Iter[T, S]) IsEnd() bool {
	return it.i == 0
}

// Value of the element it refers to. Panics with EndIterError on the end
// Iter and with StaleIterError on an invalidated one.
func (it Iter[T, S]) Value() T {
	it.check()
	if it.i == 0 {
		panic(&EndIterError{})
	}
	return it.t.vs[it.i-1]
}

// Next position in sorted order. From the last element it gives the end
// Iter; from the end Iter it wraps to the first element.
// Panics with StaleIterError on an invalidated Iter.
// Time: O(D); Space: O(1)
func (it Iter[T, S]) Next() Iter[T, S] {
	it.check()
	if it.i == 0 {
		return it.t.mkIter(it.t.leftmost(it.t.root))
	}
	return it.t.mkIter(it.t.succ(it.i))
}

// Prev is the mirror image of Next: from the end Iter it wraps to the
// last element, from the first element it gives the end Iter.
// Time: O(D); Space: O(1)
func (it Iter[T, S]) Prev() Iter[T, S] {
	it.check()
	if it.i == 0 {
		return it.t.mkIter(it.t.rightmost(it.t.root))
	}
	return it.t.mkIter(it.t.pred(it.i))
}

// EndIterError reports a contract violation: taking the value of the end
// Iter, or erasing through it.
type EndIterError struct {
}

func (e *EndIterError) Error() string {
	return "Iter is at the end position: it has no element."
}

// StaleIterError reports a contract violation: using an Iter whose
// element was erased, or that predates a Rebuild or Clear.
type StaleIterError struct {
}

func (e *StaleIterError) Error() string {
	return "Iter refers to an erased element."
}

// WrongSetError reports a contract violation: passing an Iter to a set it
// doesn't belong to.
type WrongSetError struct {
}

func (e *WrongSetError) Error() string {
	return "Iter belongs to a different TreeSet."
}
