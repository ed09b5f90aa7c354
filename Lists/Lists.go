package Lists

import "fmt"

// List is a sequence of values stored as individually linked nodes.
// Implementations are good for heavy insertion and erasure in the middle;
// positional Get is linear and provided for convenience only.
type List[T any] interface {
	Size() uint
	Empty() bool
	//PushFront prepends a value.
	PushFront(T)
	//PushBack appends a value.
	PushBack(T)
	//PopFront removes and returns the first value. Panics with
	//EmptyListError on an empty list.
	PopFront() T
	//Get the value at index i. Negative i counts from the end, like
	//Get(-1) for the last value. Panics with IndexError when i is out of
	//[-Size(), Size()).
	Get(i int) T
	//Reverse the node order in place.
	Reverse()
	//Range over the values front to back, stopping when f returns false.
	Range(func(T) bool)
}

type EmptyListError struct {
}

func (e *EmptyListError) Error() string {
	return "List is empty: cannot pop."
}

type EndIterError struct {
}

func (e *EndIterError) Error() string {
	return "Iter is at the end position: it has no element."
}

type IndexError struct {
	I  int
	Sz uint
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d is out of range for size %d.", e.I, e.Sz)
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
