// Package FixArray provides an array whose length is fixed at
// construction. Values can be read and written but never added or
// removed, so every index stays valid for the array's lifetime.
package FixArray

import (
	"slices"

	"github.com/tkoz0/compprog-library/Arrays"
)

type FixArray[T any] struct {
	a []T
}

// New creates a FixArray of n zero values.
//
// Time: O(N); Space: O(N)
func New[T any](n uint) *FixArray[T] {
	return &FixArray[T]{make([]T, n)}
}

// Repeat creates a FixArray of n copies of v.
//
// Time: O(N); Space: O(N)
func Repeat[T any](v T, n uint) *FixArray[T] {
	u := New[T](n)
	for i := range u.a {
		u.a[i] = v
	}
	return u
}

// Of creates a FixArray holding the given values.
//
// Time: O(N); Space: O(N)
func Of[T any](vs ...T) *FixArray[T] {
	u := New[T](uint(len(vs)))
	copy(u.a, vs)
	return u
}

// FromFunc creates a FixArray where index i holds f(i).
//
// Time: O(N*f); Space: O(N)
func FromFunc[T any](n uint, f func(uint) T) *FixArray[T] {
	u := New[T](n)
	for i := range u.a {
		u.a[i] = f(uint(i))
	}
	return u
}

// Size of the array.
//
// Time: O(1); Space: O(1)
func (u *FixArray[T]) Size() uint {
	return uint(len(u.a))
}

// Empty is true when the array has length zero.
//
// Time: O(1); Space: O(1)
func (u *FixArray[T]) Empty() bool {
	return len(u.a) == 0
}

// Get the value at index i. Negative i counts from the end. Panics with
// [Arrays.IndexError] when i is out of range.
//
// Time: O(1); Space: O(1)
func (u *FixArray[T]) Get(i int) T {
	return u.a[Arrays.Index(i, uint(len(u.a)))]
}

// Set the value at index i, addressed like [FixArray.Get].
//
// Time: O(1); Space: O(1)
func (u *FixArray[T]) Set(i int, v T) {
	u.a[Arrays.Index(i, uint(len(u.a)))] = v
}

// Slice creates a new FixArray of the values at indexes beg, beg+step,
// and so on below end. Negative beg and end count from the end of the
// array; end may equal the size. Panics with [Arrays.IndexError] on a
// bad range and [Arrays.InvalidStepError] when step < 1.
//
// Time: O(N); Space: O(N)
func (u *FixArray[T]) Slice(beg, end, step int) *FixArray[T] {
	b, e := Arrays.SliceRange(beg, end, step, uint(len(u.a)))
	r := New[T]((e - b + uint(step) - 1) / uint(step))
	for i := range r.a {
		r.a[i] = u.a[b+uint(i)*uint(step)]
	}
	return r
}

// SliceFirst creates a new FixArray of the first n values, or of all
// values when n exceeds the size.
//
// Time: O(N); Space: O(N)
func (u *FixArray[T]) SliceFirst(n uint) *FixArray[T] {
	if n > uint(len(u.a)) {
		n = uint(len(u.a))
	}
	return Of(u.a[:n]...)
}

// SliceLast creates a new FixArray of the last n values, or of all
// values when n exceeds the size.
//
// Time: O(N); Space: O(N)
func (u *FixArray[T]) SliceLast(n uint) *FixArray[T] {
	if n > uint(len(u.a)) {
		n = uint(len(u.a))
	}
	return Of(u.a[uint(len(u.a))-n:]...)
}

// Concat creates a new FixArray of u's values followed by o's values.
//
// Time: O(N+M); Space: O(N+M)
func (u *FixArray[T]) Concat(o *FixArray[T]) *FixArray[T] {
	r := New[T](uint(len(u.a) + len(o.a)))
	copy(r.a, u.a)
	copy(r.a[len(u.a):], o.a)
	return r
}

// RepeatSelf creates a new FixArray of u's values repeated n times.
//
// Time: O(N*n); Space: O(N*n)
func (u *FixArray[T]) RepeatSelf(n uint) *FixArray[T] {
	r := New[T](uint(len(u.a)) * n)
	for i := uint(0); i < n; i++ {
		copy(r.a[i*uint(len(u.a)):], u.a)
	}
	return r
}

// Reverse the value order in place.
//
// Time: O(N); Space: O(1)
func (u *FixArray[T]) Reverse() {
	slices.Reverse(u.a)
}

// Sort the values in place with the lessThan order. Not stable, see
// [FixArray.StableSort].
//
// Time: O(N*log(N)); Space: O(log(N))
func (u *FixArray[T]) Sort(lessThan func(T, T) bool) {
	slices.SortFunc(u.a, cmpOf(lessThan))
}

// StableSort sorts the values in place with the lessThan order, keeping
// the original order of values that compare equal.
//
// Time: O(N*log(N)*log(N)); Space: O(1)
func (u *FixArray[T]) StableSort(lessThan func(T, T) bool) {
	slices.SortStableFunc(u.a, cmpOf(lessThan))
}

func cmpOf[T any](lt func(T, T) bool) func(T, T) int {
	return func(a, b T) int {
		if lt(a, b) {
			return -1
		} else if lt(b, a) {
			return 1
		}
		return 0
	}
}

// Eq is true when u and o hold equal values in the same order, compared
// with eq.
//
// Time: O(N); Space: O(1)
func (u *FixArray[T]) Eq(o *FixArray[T], eq func(T, T) bool) bool {
	if len(u.a) != len(o.a) {
		return false
	}
	for i, v := range u.a {
		if !eq(v, o.a[i]) {
			return false
		}
	}
	return true
}

// Range over the values in index order, stopping when f returns false.
//
// Time: O(N*f); Space: O(1)
func (u *FixArray[T]) Range(f func(T) bool) {
	for _, v := range u.a {
		if !f(v) {
			return
		}
	}
}

// Items creates a slice of the values in index order.
//
// Time: O(N); Space: O(N)
func (u *FixArray[T]) Items() []T {
	return slices.Clone(u.a)
}
