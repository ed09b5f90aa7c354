// Package DynArray provides a growable array. Pushing past the
// allocated capacity grows it by a factor of 9/8, so a long run of
// pushes costs amortized O(1) per value while wasting at most an eighth
// of the memory. Capacity can also be managed explicitly with
// [DynArray.Realloc] and [DynArray.Shrink].
package DynArray

import (
	"slices"

	"github.com/tkoz0/compprog-library/Arrays"
)

type DynArray[T any] struct {
	a []T
}

// New creates an empty DynArray with capacity for hint values.
//
// Time: O(N); Space: O(N)
func New[T any](hint uint) *DynArray[T] {
	return &DynArray[T]{make([]T, 0, hint)}
}

// Of creates a DynArray holding the given values.
//
// Time: O(N); Space: O(N)
func Of[T any](vs ...T) *DynArray[T] {
	u := New[T](uint(len(vs)))
	u.a = u.a[:len(vs)]
	copy(u.a, vs)
	return u
}

// Repeat creates a DynArray of n copies of v.
//
// Time: O(N); Space: O(N)
func Repeat[T any](v T, n uint) *DynArray[T] {
	u := New[T](n)
	u.a = u.a[:n]
	for i := range u.a {
		u.a[i] = v
	}
	return u
}

// FromFunc creates a DynArray where index i holds f(i).
//
// Time: O(N*f); Space: O(N)
func FromFunc[T any](n uint, f func(uint) T) *DynArray[T] {
	u := New[T](n)
	u.a = u.a[:n]
	for i := range u.a {
		u.a[i] = f(uint(i))
	}
	return u
}

// Size of the array.
//
// Time: O(1); Space: O(1)
func (u *DynArray[T]) Size() uint {
	return uint(len(u.a))
}

// Empty is true when the array has no values.
//
// Time: O(1); Space: O(1)
func (u *DynArray[T]) Empty() bool {
	return len(u.a) == 0
}

// Alloc is the number of values the array can hold before it must grow.
//
// Time: O(1); Space: O(1)
func (u *DynArray[T]) Alloc() uint {
	return uint(cap(u.a))
}

// Full is true when the next push must grow the allocation.
//
// Time: O(1); Space: O(1)
func (u *DynArray[T]) Full() bool {
	return len(u.a) == cap(u.a)
}

func (u *DynArray[T]) realloc(n uint) {
	sz := uint(len(u.a))
	if sz > n {
		sz = n
	}
	na := make([]T, sz, n)
	copy(na, u.a)
	u.a = na
}

// grown is the capacity after one 9/8 growth step, at least one larger.
func grown(c uint) uint {
	return c + c/8 + 1
}

// Push v onto the end of the array.
//
// Time: O(1) amortized; Space: O(1)
func (u *DynArray[T]) Push(v T) {
	if len(u.a) == cap(u.a) {
		u.realloc(grown(uint(cap(u.a))))
	}
	u.a = append(u.a, v)
}

// Pop the last value off the array. Panics with [Arrays.EmptyArrayError]
// when the array is empty.
//
// Time: O(1); Space: O(1)
func (u *DynArray[T]) Pop() T {
	if len(u.a) == 0 {
		panic(&Arrays.EmptyArrayError{})
	}
	var zv T
	v := u.a[len(u.a)-1]
	u.a[len(u.a)-1] = zv
	u.a = u.a[:len(u.a)-1]
	return v
}

// Insert v before index i, shifting later values right. i may equal the
// size to insert at the end. Negative i counts from the end. Panics with
// [Arrays.IndexError] when i is out of range.
//
// Time: O(N); Space: O(1) amortized
func (u *DynArray[T]) Insert(i int, v T) {
	j := i
	if j < 0 {
		j += len(u.a)
	}
	if j < 0 || j > len(u.a) {
		panic(&Arrays.IndexError{I: i, Sz: uint(len(u.a))})
	}
	if len(u.a) == cap(u.a) {
		u.realloc(grown(uint(cap(u.a))))
	}
	u.a = append(u.a, v)
	copy(u.a[j+1:], u.a[j:])
	u.a[j] = v
}

// EraseAt removes and returns the value at index i, shifting later
// values left. Negative i counts from the end. Panics with
// [Arrays.IndexError] when i is out of range.
//
// Time: O(N); Space: O(1)
func (u *DynArray[T]) EraseAt(i int) T {
	j := Arrays.Index(i, uint(len(u.a)))
	v := u.a[j]
	copy(u.a[j:], u.a[j+1:])
	var zv T
	u.a[len(u.a)-1] = zv
	u.a = u.a[:len(u.a)-1]
	return v
}

// Resize the array to n values, filling any new positions with fill.
// Reallocates only when n exceeds the current capacity.
//
// Time: O(N); Space: O(N)
func (u *DynArray[T]) Resize(n uint, fill T) {
	if n > uint(cap(u.a)) {
		u.realloc(n)
	}
	for uint(len(u.a)) < n {
		u.a = append(u.a, fill)
	}
	if uint(len(u.a)) > n {
		var zv T
		for i := n; i < uint(len(u.a)); i++ {
			u.a[i] = zv
		}
		u.a = u.a[:n]
	}
}

// Realloc changes the capacity to exactly n, discarding values past n.
//
// Time: O(N); Space: O(N)
func (u *DynArray[T]) Realloc(n uint) {
	u.realloc(n)
}

// Shrink the capacity to exactly the current size.
//
// Time: O(N); Space: O(N)
func (u *DynArray[T]) Shrink() {
	u.realloc(uint(len(u.a)))
}

// Clear removes all values and releases the allocation.
//
// Time: O(1); Space: O(1)
func (u *DynArray[T]) Clear() {
	u.a = nil
}

// Get the value at index i. Negative i counts from the end. Panics with
// [Arrays.IndexError] when i is out of range.
//
// Time: O(1); Space: O(1)
func (u *DynArray[T]) Get(i int) T {
	return u.a[Arrays.Index(i, uint(len(u.a)))]
}

// Set the value at index i, addressed like [DynArray.Get].
//
// Time: O(1); Space: O(1)
func (u *DynArray[T]) Set(i int, v T) {
	u.a[Arrays.Index(i, uint(len(u.a)))] = v
}

// Slice creates a new DynArray of the values at indexes beg, beg+step,
// and so on below end. Negative beg and end count from the end of the
// array; end may equal the size. Panics with [Arrays.IndexError] on a
// bad range and [Arrays.InvalidStepError] when step < 1.
//
// Time: O(N); Space: O(N)
func (u *DynArray[T]) Slice(beg, end, step int) *DynArray[T] {
	b, e := Arrays.SliceRange(beg, end, step, uint(len(u.a)))
	r := New[T]((e - b + uint(step) - 1) / uint(step))
	for i := b; i < e; i += uint(step) {
		r.a = append(r.a, u.a[i])
	}
	return r
}

// SliceFirst creates a new DynArray of the first n values, or of all
// values when n exceeds the size.
//
// Time: O(N); Space: O(N)
func (u *DynArray[T]) SliceFirst(n uint) *DynArray[T] {
	if n > uint(len(u.a)) {
		n = uint(len(u.a))
	}
	return Of(u.a[:n]...)
}

// SliceLast creates a new DynArray of the last n values, or of all
// values when n exceeds the size.
//
// Time: O(N); Space: O(N)
func (u *DynArray[T]) SliceLast(n uint) *DynArray[T] {
	if n > uint(len(u.a)) {
		n = uint(len(u.a))
	}
	return Of(u.a[uint(len(u.a))-n:]...)
}

// Concat appends o's values onto the end of u. Concatenating u with
// itself doubles it.
//
// Time: O(M); Space: O(M) amortized
func (u *DynArray[T]) Concat(o *DynArray[T]) {
	for i, sz := 0, len(o.a); i < sz; i++ {
		u.Push(o.a[i])
	}
}

// Reverse the value order in place.
//
// Time: O(N); Space: O(1)
func (u *DynArray[T]) Reverse() {
	slices.Reverse(u.a)
}

// Sort the values in place with the lessThan order. Not stable, see
// [DynArray.StableSort].
//
// Time: O(N*log(N)); Space: O(log(N))
func (u *DynArray[T]) Sort(lessThan func(T, T) bool) {
	slices.SortFunc(u.a, cmpOf(lessThan))
}

// StableSort sorts the values in place with the lessThan order, keeping
// the original order of values that compare equal.
//
// Time: O(N*log(N)*log(N)); Space: O(1)
func (u *DynArray[T]) StableSort(lessThan func(T, T) bool) {
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
func (u *DynArray[T]) Eq(o *DynArray[T], eq func(T, T) bool) bool {
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
func (u *DynArray[T]) Range(f func(T) bool) {
	for _, v := range u.a {
		if !f(v) {
			return
		}
	}
}

// Items creates a slice of the values in index order.
//
// Time: O(N); Space: O(N)
func (u *DynArray[T]) Items() []T {
	return slices.Clone(u.a)
}
