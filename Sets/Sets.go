package Sets

// Set is the minimal behavior shared by all set implementations.
// Receivers returning bool report whether the operation changed the set;
// failed operations (duplicate Put, absent Remove) leave it untouched.
type Set[E any] interface {
	//Put e into the set. Returns true if e wasn't already present.
	Put(E) bool
	//Has e in the set.
	Has(E) bool
	//Remove e from the set. Returns false if e wasn't present.
	Remove(E) bool
	//Size of the set.
	Size() uint
	//Range over the elements, stopping when f returns false.
	//Implementations define the visit order.
	Range(func(E) bool)
}

// SortedSet is a Set that maintains its elements in the order given by
// a caller supplied ordering relation. Range and InOrder visit elements
// in ascending order.
type SortedSet[E any] interface {
	Set[E]
	//Minimum element of the set.
	Minimum() (E, bool)
	//Maximum element of the set.
	Maximum() (E, bool)
	//InOrder returns A closure function f acting like an iterator. f
	//gives the elements in ascending order. Calling f is like calling
	//"Next()" of iterators: val, valid=f(). val is meaningful only if
	//valid is true; valid can't turn true after it first became false.
	//The set must not be modified during the iteration of f.
	InOrder() func() (E, bool)
}
