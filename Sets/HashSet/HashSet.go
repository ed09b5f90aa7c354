// Package HashSet provides an unordered set of comparable values with
// expected O(1) membership operations. Like the rest of this module it
// is not safe for concurrent use; one goroutine owns the set at a time.
package HashSet

import "github.com/tkoz0/compprog-library/Sets"

type HashSet[E comparable] struct {
	m map[E]struct{}
}

// New HashSet with capacity for about hint values before the table must
// grow.
//
// Time: O(N); Space: O(N)
func New[E comparable](hint uint) *HashSet[E] {
	return &HashSet[E]{make(map[E]struct{}, hint)}
}

// Of creates a HashSet holding the given values. Duplicates collapse.
//
// Time: O(N); Space: O(N)
func Of[E comparable](vs ...E) *HashSet[E] {
	u := New[E](uint(len(vs)))
	for _, v := range vs {
		u.m[v] = struct{}{}
	}
	return u
}

// Size of the set.
//
// Time: O(1); Space: O(1)
func (u *HashSet[E]) Size() uint {
	return uint(len(u.m))
}

// Empty is true when the set has no values.
//
// Time: O(1); Space: O(1)
func (u *HashSet[E]) Empty() bool {
	return len(u.m) == 0
}

// Put e into the set. Returns false when e was already present, leaving
// the set unchanged.
//
// Time: O(1) expected; Space: O(1)
func (u *HashSet[E]) Put(e E) bool {
	if _, in := u.m[e]; in {
		return false
	}
	u.m[e] = struct{}{}
	return true
}

// Has e in the set.
//
// Time: O(1) expected; Space: O(1)
func (u *HashSet[E]) Has(e E) bool {
	_, in := u.m[e]
	return in
}

// Remove e from the set. Returns false when e wasn't present.
//
// Time: O(1) expected; Space: O(1)
func (u *HashSet[E]) Remove(e E) bool {
	if _, in := u.m[e]; !in {
		return false
	}
	delete(u.m, e)
	return true
}

// Clear removes all values, keeping the table for reuse.
//
// Time: O(N); Space: O(1)
func (u *HashSet[E]) Clear() {
	clear(u.m)
}

// Range over the values in no particular order, stopping when f returns
// false.
//
// Time: O(N*f); Space: O(1)
func (u *HashSet[E]) Range(f func(E) bool) {
	for v := range u.m {
		if !f(v) {
			return
		}
	}
}

// Items creates a slice of the values in no particular order.
//
// Time: O(N); Space: O(N)
func (u *HashSet[E]) Items() []E {
	vs := make([]E, 0, len(u.m))
	for v := range u.m {
		vs = append(vs, v)
	}
	return vs
}

// Eq is true when u and o hold the same values.
//
// Time: O(N); Space: O(1)
func (u *HashSet[E]) Eq(o *HashSet[E]) bool {
	if len(u.m) != len(o.m) {
		return false
	}
	for v := range u.m {
		if _, in := o.m[v]; !in {
			return false
		}
	}
	return true
}

// SubsetOf is true when every value of u is in o.
//
// Time: O(N); Space: O(1)
func (u *HashSet[E]) SubsetOf(o *HashSet[E]) bool {
	if len(u.m) > len(o.m) {
		return false
	}
	for v := range u.m {
		if _, in := o.m[v]; !in {
			return false
		}
	}
	return true
}

var _ Sets.Set[int] = (*HashSet[int])(nil)
