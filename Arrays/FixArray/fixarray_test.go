package FixArray

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/tkoz0/compprog-library/Arrays"
)

var rg = *rand.New(rand.NewSource(0))

var _ Arrays.Array[int] = (*FixArray[int])(nil)

func TestFixArray_New(t *testing.T) {
	u := New[int](4)
	if u.Size() != 4 || u.Empty() {
		t.Fatalf("size %d", u.Size())
	}
	for i := 0; i < 4; i++ {
		if u.Get(i) != 0 {
			t.Fatalf("index %d not zero", i)
		}
	}
	if !New[int](0).Empty() {
		t.Fatal("zero length array not empty")
	}
	v := Repeat(7, 3)
	if !slices.Equal(v.Items(), []int{7, 7, 7}) {
		t.Fatalf("%v", v.Items())
	}
	w := FromFunc(5, func(i uint) uint { return i * i })
	if !slices.Equal(w.Items(), []uint{0, 1, 4, 9, 16}) {
		t.Fatalf("%v", w.Items())
	}
}

func TestFixArray_GetSet(t *testing.T) {
	u := Of(10, 20, 30, 40)
	if u.Get(0) != 10 || u.Get(3) != 40 {
		t.Fatal("get")
	}
	if u.Get(-1) != 40 || u.Get(-4) != 10 {
		t.Fatal("negative get")
	}
	u.Set(1, 99)
	u.Set(-1, 88)
	if !slices.Equal(u.Items(), []int{10, 99, 30, 88}) {
		t.Fatalf("%v", u.Items())
	}
	for _, i := range []int{4, -5, 100} {
		func() {
			defer func() {
				if _, ok := recover().(*Arrays.IndexError); !ok {
					t.Fatalf("no IndexError for %d", i)
				}
			}()
			u.Get(i)
		}()
	}
}

func TestFixArray_Slice(t *testing.T) {
	u := Of(0, 1, 2, 3, 4, 5, 6, 7)
	if !slices.Equal(u.Slice(2, 6, 1).Items(), []int{2, 3, 4, 5}) {
		t.Fatal("slice")
	}
	if !slices.Equal(u.Slice(1, 8, 3).Items(), []int{1, 4, 7}) {
		t.Fatal("stepped slice")
	}
	if !slices.Equal(u.Slice(-3, -1, 1).Items(), []int{5, 6}) {
		t.Fatal("negative slice")
	}
	if u.Slice(3, 3, 1).Size() != 0 {
		t.Fatal("empty slice")
	}
	if !slices.Equal(u.SliceFirst(3).Items(), []int{0, 1, 2}) {
		t.Fatal("first")
	}
	if !slices.Equal(u.SliceLast(2).Items(), []int{6, 7}) {
		t.Fatal("last")
	}
	if u.SliceFirst(100).Size() != 8 || u.SliceLast(100).Size() != 8 {
		t.Fatal("clamp")
	}
	func() {
		defer func() {
			if _, ok := recover().(*Arrays.InvalidStepError); !ok {
				t.Fatal("no InvalidStepError")
			}
		}()
		u.Slice(0, 8, 0)
	}()
	func() {
		defer func() {
			if _, ok := recover().(*Arrays.IndexError); !ok {
				t.Fatal("no IndexError")
			}
		}()
		u.Slice(5, 2, 1)
	}()
}

func TestFixArray_ConcatRepeat(t *testing.T) {
	u := Of(1, 2)
	v := Of(3)
	if !slices.Equal(u.Concat(v).Items(), []int{1, 2, 3}) {
		t.Fatal("concat")
	}
	if !slices.Equal(u.Concat(u).Items(), []int{1, 2, 1, 2}) {
		t.Fatal("self concat")
	}
	if !slices.Equal(u.RepeatSelf(3).Items(), []int{1, 2, 1, 2, 1, 2}) {
		t.Fatal("repeat")
	}
	if u.RepeatSelf(0).Size() != 0 {
		t.Fatal("repeat 0")
	}
}

func TestFixArray_Reverse(t *testing.T) {
	u := Of(1, 2, 3, 4, 5)
	u.Reverse()
	if !slices.Equal(u.Items(), []int{5, 4, 3, 2, 1}) {
		t.Fatalf("%v", u.Items())
	}
}

func TestFixArray_Sort(t *testing.T) {
	vs := make([]int, 1000)
	for i := range vs {
		vs[i] = rg.Intn(100)
	}
	u := Of(vs...)
	u.Sort(func(a, b int) bool { return a < b })
	slices.Sort(vs)
	if !slices.Equal(u.Items(), vs) {
		t.Fatal("sorted order")
	}
}

func TestFixArray_StableSort(t *testing.T) {
	type kv struct{ k, seq int }
	u := New[kv](1000)
	for i := uint(0); i < u.Size(); i++ {
		u.Set(int(i), kv{rg.Intn(10), int(i)})
	}
	u.StableSort(func(a, b kv) bool { return a.k < b.k })
	prev := u.Get(0)
	for i := 1; i < int(u.Size()); i++ {
		cur := u.Get(i)
		if cur.k < prev.k || (cur.k == prev.k && cur.seq < prev.seq) {
			t.Fatalf("unstable at %d", i)
		}
		prev = cur
	}
}

func TestFixArray_Eq(t *testing.T) {
	eq := func(a, b int) bool { return a == b }
	u := Of(1, 2, 3)
	if !u.Eq(Of(1, 2, 3), eq) || u.Eq(Of(1, 2), eq) || u.Eq(Of(1, 2, 4), eq) {
		t.Fatal("eq")
	}
}

func TestFixArray_Range(t *testing.T) {
	u := Of(1, 2, 3, 4)
	var got []int
	u.Range(func(v int) bool {
		got = append(got, v)
		return v < 3
	})
	if !slices.Equal(got, []int{1, 2, 3}) {
		t.Fatalf("%v", got)
	}
}
