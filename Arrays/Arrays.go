package Arrays

import "fmt"

// Array is a sequence of values stored as one contiguous block, giving
// O(1) access by index. Implementations differ in whether the length can
// change.
type Array[T any] interface {
	Size() uint
	Empty() bool
	//Get the value at index i. Negative i counts from the end, like
	//Get(-1) for the last value. Panics with IndexError when i is out of
	//[-Size(), Size()).
	Get(i int) T
	//Set the value at index i, addressed like Get.
	Set(i int, v T)
	//Reverse the value order in place.
	Reverse()
	//Range over the values in index order, stopping when f returns false.
	Range(func(T) bool)
}

type IndexError struct {
	I  int
	Sz uint
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d is out of range for size %d.", e.I, e.Sz)
}

type EmptyArrayError struct {
}

func (e *EmptyArrayError) Error() string {
	return "Array is empty: cannot pop."
}

type InvalidStepError struct {
	Step int
}

func (e *InvalidStepError) Error() string {
	return fmt.Sprintf("slice step %d isn't positive.", e.Step)
}

// Index converts i, possibly negative for counting from the end, to a
// plain offset. Panics with IndexError when out of range.
func Index(i int, sz uint) uint {
	j := i
	if j < 0 {
		j += int(sz)
	}
	if j < 0 || uint(j) >= sz {
		panic(&IndexError{i, sz})
	}
	return uint(j)
}

// SliceRange converts the possibly negative beg and end of a slicing
// request to plain offsets with beg<=end<=sz, and checks step. Unlike
// Index, end may equal sz and an empty range is allowed.
func SliceRange(beg, end, step int, sz uint) (uint, uint) {
	if step < 1 {
		panic(&InvalidStepError{step})
	}
	b, e := beg, end
	if b < 0 {
		b += int(sz)
	}
	if e < 0 {
		e += int(sz)
	}
	if b < 0 || e < b || uint(e) > sz {
		panic(&IndexError{beg, sz})
	}
	return uint(b), uint(e)
}
