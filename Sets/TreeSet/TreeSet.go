package TreeSet

import (
	"cmp"
	"fmt"

	"golang.org/x/exp/constraints"
)

// A node in the TreeSet.
// The zero value is meaningful: it is the nil sentinel at index 0.
type info[S constraints.Unsigned] struct {
	l, r, p, gen S
}

// TreeSet is a binary search tree set with no repeated values under the
// given ordering relation. It maintains sorted order at all times and its
// iterators are cyclic: advancing past the last element gives the end
// iterator, advancing once more wraps to the first.
// T is the type of values it will hold, S is the type used for node
// indexes, so it must be a wide upperbound for the size of the set.
// Nodes live in a growable arena of slots addressed by index instead of
// individually allocated structs; index 0 is the nil sentinel, freed
// slots are kept on a free list threaded through info.l and are reused
// before the arena grows. Every live slot carries a gen drawn from a
// counter that only moves forward, and gets 0 when freed, so an Iter
// into an erased node fails loudly instead of silently aliasing a
// reused slot. Because of this S must be wide enough to count all
// insertions ever made, not merely the peak size; S=uint8 wraps after
// 255 insertions and from then on staleness detection can be fooled.
// No balancing is ever done by Insert or Remove: under adversarial
// insertion order the tree degenerates to a chain. Call Rebuild to
// restore logarithmic height explicitly.
type TreeSet[T any, S constraints.Unsigned] struct {
	ifs   []info[S] //ifs[0] is the nil sentinel. all indexes are based on ifs.
	vs    []T       //vs[i-1] corresponds to ifs[i]. len(vs)=len(ifs)-1
	root  S
	free  S //head of the free slot list; info.l is next.
	sz    S
	stamp S //last gen handed out; 0 is reserved for the sentinel and freed slots.
	lt    func(T, T) bool
	// ReplaceRight selects which neighbor fills the hole when a node with
	// two children is erased: the minimum of the right subtree when true,
	// the maximum of the left subtree when false.
	ReplaceRight bool
}

// New TreeSet ordered by cmp.Less. hint is a capacity hint for the arena.
func New[T cmp.Ordered, S constraints.Unsigned](hint S) *TreeSet[T, S] {
	return New1[T, S](cmp.Less[T], hint)
}

// New1 is the version of New taking a user supplied ordering relation.
// lessThan must be a strict weak order; two values are considered equal
// when neither is less than the other.
func New1[T any, S constraints.Unsigned](lessThan func(T, T) bool, hint S) *TreeSet[T, S] {
	return &TreeSet[T, S]{ifs: make([]info[S], 1, hint+1), vs: make([]T, 0, hint), lt: lessThan}
}

// From builds a TreeSet of minimum height directly from vs, which must be
// sorted in ascending order and contain no duplicates. The slice is handed
// to the set and mustn't be modified by the caller later.
// If safe==true the conditions are checked and From panics with
// InvalidSliceError when they are broken. Otherwise no check is performed
// and a slice breaking them silently corrupts the set, so only pass
// safe==false when the conditions are known to hold.
// Time: O(n).
func From[T cmp.Ordered, S constraints.Unsigned](vs []T, safe bool) *TreeSet[T, S] {
	return From1[T, S](vs, cmp.Less[T], safe)
}

// From1 is the version of From taking a user supplied ordering relation.
func From1[T any, S constraints.Unsigned](vs []T, lessThan func(T, T) bool, safe bool) *TreeSet[T, S] {
	if safe {
		for i := 1; i < len(vs); i++ {
			if !lessThan(vs[i-1], vs[i]) {
				panic(InvalidSliceError[T]{vs[i-1], vs[i]})
			}
		}
	}
	u := &TreeSet[T, S]{ifs: make([]info[S], len(vs)+1), vs: vs, lt: lessThan, sz: S(len(vs))}
	for i := range u.ifs[1:] {
		u.stamp++
		u.ifs[i+1].gen = u.stamp
	}
	u.root = u.build(1, S(len(vs))+1, 0)
	return u
}

// build links slots [lo,hi) into a tree of minimum height rooted at the
// middle slot, whose parent is p. Slot i holds vs[i-1], so ascending slot
// order is ascending value order. Recursive.
func (u *TreeSet[T, S]) build(lo, hi, p S) S {
	if lo == hi {
		return 0
	}
	mid := lo + (hi-lo)>>1
	u.ifs[mid].p = p
	u.ifs[mid].l = u.build(lo, mid, mid)
	u.ifs[mid].r = u.build(mid+1, hi, mid)
	return mid
}

// addFree slot a once. A freed slot gets gen 0, which is never handed
// out, so an Iter made before the erase can never match again.
func (u *TreeSet[T, S]) addFree(a S) {
	u.ifs[a].l = u.free
	u.ifs[a].gen = 0
	u.free = a
}

// popFree slot once. Returns 0 when there's no free slot (when u.free==0).
func (u *TreeSet[T, S]) popFree() S {
	b := u.free
	u.free = u.ifs[b].l
	return b
}

// alloc a slot holding v with parent p, filling holes first before
// appending to the underlying arrays.
func (u *TreeSet[T, S]) alloc(v T, p S) S {
	u.stamp++
	if i := u.popFree(); i != 0 {
		u.ifs[i] = info[S]{0, 0, p, u.stamp}
		u.vs[i-1] = v
		return i
	}
	u.ifs = append(u.ifs, info[S]{p: p, gen: u.stamp})
	u.vs = append(u.vs, v)
	return S(len(u.ifs) - 1)
}

// Size of the set.
// Time: O(1)
func (u *TreeSet[T, S]) Size() uint {
	return uint(u.sz)
}

// Empty is whether the set has no elements.
func (u *TreeSet[T, S]) Empty() bool {
	return u.sz == 0
}

// leftmost node of the subtree rooting at i, or 0 if i is 0.
func (u *TreeSet[T, S]) leftmost(i S) S {
	for i != 0 && u.ifs[i].l != 0 {
		i = u.ifs[i].l
	}
	return i
}

// rightmost node of the subtree rooting at i, or 0 if i is 0.
func (u *TreeSet[T, S]) rightmost(i S) S {
	for i != 0 && u.ifs[i].r != 0 {
		i = u.ifs[i].r
	}
	return i
}

// succ of node i in sorted order, 0 if i is the last node. i mustn't be 0.
// Uses only the parent and child links; no stack is kept.
// Time: O(D); Space: O(1)
func (u *TreeSet[T, S]) succ(i S) S {
	if r := u.ifs[i].r; r != 0 {
		return u.leftmost(r)
	}
	p := u.ifs[i].p
	for p != 0 && u.ifs[p].r == i {
		i, p = p, u.ifs[p].p
	}
	return p
}

// pred is the mirror image of succ.
func (u *TreeSet[T, S]) pred(i S) S {
	if l := u.ifs[i].l; l != 0 {
		return u.rightmost(l)
	}
	p := u.ifs[i].p
	for p != 0 && u.ifs[p].l == i {
		i, p = p, u.ifs[p].p
	}
	return p
}

// find the slot holding v, 0 if absent.
func (u *TreeSet[T, S]) find(v T) S {
	for i := u.root; i != 0; {
		if cv := u.vs[i-1]; u.lt(v, cv) {
			i = u.ifs[i].l
		} else if u.lt(cv, v) {
			i = u.ifs[i].r
		} else {
			return i
		}
	}
	return 0
}

// Has v in the set.
// Time: O(D); Space: O(1)
func (u *TreeSet[T, S]) Has(v T) bool {
	return u.find(v) != 0
}

// Get returns an Iter to v, or the end Iter if v isn't in the set.
// Time: O(D); Space: O(1)
func (u *TreeSet[T, S]) Get(v T) Iter[T, S] {
	return u.mkIter(u.find(v))
}

// Insert v into the set. Returns an Iter to the value and true if it was
// inserted; if an equal value is already present the set is unchanged,
// and the Iter refers to the present value.
// Time: O(D); Space: O(1) amortized
func (u *TreeSet[T, S]) Insert(v T) (Iter[T, S], bool) {
	var p S
	left := false
	for i := u.root; i != 0; {
		if cv := u.vs[i-1]; u.lt(v, cv) {
			p, left, i = i, true, u.ifs[i].l
		} else if u.lt(cv, v) {
			p, left, i = i, false, u.ifs[i].r
		} else {
			return u.mkIter(i), false
		}
	}
	n := u.alloc(v, p)
	if p == 0 {
		u.root = n
	} else if left {
		u.ifs[p].l = n
	} else {
		u.ifs[p].r = n
	}
	u.sz++
	return u.mkIter(n), true
}

// Put [Sets.Set.Put].
func (u *TreeSet[T, S]) Put(v T) bool {
	_, inserted := u.Insert(v)
	return inserted
}

// relink the incoming edge of old, from its parent p or from the root
// reference when p is 0, to aim at nw.
func (u *TreeSet[T, S]) relink(p, old, nw S) {
	if p == 0 {
		u.root = nw
	} else if u.ifs[p].l == old {
		u.ifs[p].l = nw
	} else {
		u.ifs[p].r = nw
	}
}

// erase node n from the tree. n must be a live slot.
// A node with at most one child is spliced out directly. A node with two
// children is replaced by an extremum neighbor m chosen by ReplaceRight;
// m is detached from where it is (it has at most one child, being an
// extremum) and then relocated to inherit n's parent and children, so m
// keeps its slot and every Iter to a node other than n stays valid.
// Time: O(D); Space: O(1)
func (u *TreeSet[T, S]) erase(n S) {
	p := u.ifs[n].p
	if u.ifs[n].l == 0 { //no left subtree, splice in the right child
		if r := u.ifs[n].r; r != 0 {
			u.ifs[r].p = p
		}
		u.relink(p, n, u.ifs[n].r)
	} else if u.ifs[n].r == 0 { //only has a left subtree
		u.ifs[u.ifs[n].l].p = p
		u.relink(p, n, u.ifs[n].l)
	} else { //both subtrees nonempty
		var m S
		if u.ReplaceRight {
			m = u.leftmost(u.ifs[n].r)
			//detach m; it has no left child
			if mp, mr := u.ifs[m].p, u.ifs[m].r; mp == n {
				u.ifs[n].r = mr
			} else {
				u.ifs[mp].l = mr
				if mr != 0 {
					u.ifs[mr].p = mp
				}
			}
		} else {
			m = u.rightmost(u.ifs[n].l)
			//detach m; it has no right child
			if mp, ml := u.ifs[m].p, u.ifs[m].l; mp == n {
				u.ifs[n].l = ml
			} else {
				u.ifs[mp].r = ml
				if ml != 0 {
					u.ifs[ml].p = mp
				}
			}
		}
		//relocate m into n's former position
		nl, nr := u.ifs[n].l, u.ifs[n].r
		u.ifs[m].p, u.ifs[m].l, u.ifs[m].r = p, nl, nr
		if nl != 0 {
			u.ifs[nl].p = m
		}
		if nr != 0 {
			u.ifs[nr].p = m
		}
		u.relink(p, n, m)
	}
	u.addFree(n)
	u.sz--
}

// Remove v from the set. Returns false if v did not exist.
// Time: O(D); Space: O(1)
func (u *TreeSet[T, S]) Remove(v T) bool {
	n := u.find(v)
	if n == 0 {
		return false
	}
	u.erase(n)
	return true
}

// RemoveIter erases the element it refers to and returns an Iter to the
// next element in sorted order (the end Iter if it was the last).
// Panics with EndIterError if it is the end Iter, with StaleIterError if
// the element was already erased, and with WrongSetError if it belongs to
// a different set.
// Time: O(D); Space: O(1)
func (u *TreeSet[T, S]) RemoveIter(it Iter[T, S]) Iter[T, S] {
	if it.t != u {
		panic(&WrongSetError{})
	}
	it.check()
	if it.i == 0 {
		panic(&EndIterError{})
	}
	next := it.Next()
	u.erase(it.i)
	return next
}

// Clear removes every element. Slots stay in the arena on the free list,
// so Iters from before the call fail instead of aliasing reused slots.
// Time: O(n)
func (u *TreeSet[T, S]) Clear() {
	u.frees(u.root)
	u.root, u.sz = 0, 0
}

// frees the whole subtree rooting at i onto the free list. Recursive.
func (u *TreeSet[T, S]) frees(i S) {
	if i == 0 {
		return
	}
	l, r := u.ifs[i].l, u.ifs[i].r
	u.addFree(i)
	u.frees(l)
	u.frees(r)
}

// Minimum element of the set.
// Time: O(D); Space: O(1)
func (u *TreeSet[T, S]) Minimum() (T, bool) {
	if i := u.leftmost(u.root); i != 0 {
		return u.vs[i-1], true
	}
	return *new(T), false
}

// Maximum element of the set.
// Time: O(D); Space: O(1)
func (u *TreeSet[T, S]) Maximum() (T, bool) {
	if i := u.rightmost(u.root); i != 0 {
		return u.vs[i-1], true
	}
	return *new(T), false
}

// InOrder [Sets.SortedSet.InOrder]. The returned closure walks the tree
// with succ, so unlike Iter it doesn't survive mutation of the set.
// Time: f(): amortized O(1) at each call. Space: O(1)
func (u *TreeSet[T, S]) InOrder() func() (T, bool) {
	i := u.leftmost(u.root)
	return func() (r T, has bool) {
		if i == 0 {
			return
		}
		r, has = u.vs[i-1], true
		i = u.succ(i)
		return
	}
}

// Range [Sets.Set.Range], in ascending order.
func (u *TreeSet[T, S]) Range(f func(T) bool) {
	for i := u.leftmost(u.root); i != 0; i = u.succ(i) {
		if !f(u.vs[i-1]) {
			return
		}
	}
}

// Items returns the elements in ascending order in a fresh slice.
// Time: O(n)
func (u *TreeSet[T, S]) Items() []T {
	a := make([]T, 0, u.sz)
	for i := u.leftmost(u.root); i != 0; i = u.succ(i) {
		a = append(a, u.vs[i-1])
	}
	return a
}

// Rebuild replaces the tree with one of minimum height over the same
// elements, compacting the arena and emptying the free list. Every slot
// is restamped, so all outstanding Iters are invalidated. Insert and
// Remove never do this on their own.
// Time: O(n); Space: O(n)
func (u *TreeSet[T, S]) Rebuild() {
	vs := u.Items()
	ifs := make([]info[S], len(vs)+1)
	for i := range ifs[1:] {
		u.stamp++
		ifs[i+1].gen = u.stamp
	}
	u.ifs, u.vs, u.free = ifs, vs, 0
	u.root = u.build(1, S(len(vs))+1, 0)
}

// Clone returns a deep copy: same elements, same shape, same ordering
// relation, nothing shared with the receiver.
// Time: O(n); Space: O(n)
func (u *TreeSet[T, S]) Clone() *TreeSet[T, S] {
	c := *u
	c.ifs = append([]info[S](nil), u.ifs...)
	c.vs = append([]T(nil), u.vs...)
	return &c
}

// subset reports whether every element of u is in o, assuming already
// that u.sz <= o.sz. Both sets must use the same ordering relation.
// Two strategies bound the cost: a lockstep merge over both sorted
// sequences in O(|u|+|o|), or an independent search in o for each element
// of u in O(|u|*D). The merge is used unless u is much smaller than o,
// where searching individually does less total work.
func (u *TreeSet[T, S]) subset(o *TreeSet[T, S]) bool {
	if (u.sz < 16 && u.sz*u.sz >= o.sz) || u.sz > o.sz/16 {
		f1, f2 := u.InOrder(), o.InOrder()
		v2, ok2 := f2()
		for v1, ok1 := f1(); ok1; v1, ok1 = f1() {
			for ok2 && u.lt(v2, v1) {
				v2, ok2 = f2()
			}
			if !ok2 || u.lt(v1, v2) {
				return false
			}
		}
	} else {
		for f, v, ok := u.InOrder(), *new(T), false; ; {
			if v, ok = f(); !ok {
				break
			}
			if !o.Has(v) {
				return false
			}
		}
	}
	return true
}

// SubsetOf is whether every element of u is also in o. Both sets must use
// the same ordering relation; this holds for all the relational receivers.
func (u *TreeSet[T, S]) SubsetOf(o *TreeSet[T, S]) bool {
	return u.sz <= o.sz && u.subset(o)
}

// ProperSubsetOf is SubsetOf plus u having strictly fewer elements.
func (u *TreeSet[T, S]) ProperSubsetOf(o *TreeSet[T, S]) bool {
	return u.sz < o.sz && u.subset(o)
}

// SupersetOf is the mirrored SubsetOf.
func (u *TreeSet[T, S]) SupersetOf(o *TreeSet[T, S]) bool {
	return o.SubsetOf(u)
}

// ProperSupersetOf is the mirrored ProperSubsetOf.
func (u *TreeSet[T, S]) ProperSupersetOf(o *TreeSet[T, S]) bool {
	return o.ProperSubsetOf(u)
}

// Eq is whether u and o hold equal elements.
// Time: O(n)
func (u *TreeSet[T, S]) Eq(o *TreeSet[T, S]) bool {
	if u.sz != o.sz {
		return false
	}
	f1, f2 := u.InOrder(), o.InOrder()
	for v1, ok1 := f1(); ok1; v1, ok1 = f1() {
		if v2, _ := f2(); u.lt(v1, v2) || u.lt(v2, v1) {
			return false
		}
	}
	return true
}

// InvalidSliceError reports two adjacent elements of a slice passed to
// From that break the ascending strict order it requires.
type InvalidSliceError[T any] struct {
	Prev, Cur T
}

func (e InvalidSliceError[T]) Error() string {
	return fmt.Sprintf("slice isn't sorted ascending without duplicates: %v isn't less than %v", e.Prev, e.Cur)
}
