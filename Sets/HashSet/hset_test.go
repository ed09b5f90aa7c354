package HashSet

import (
	"math/rand"
	"slices"
	"testing"
)

var rg = *rand.New(rand.NewSource(0))

func TestHashSet_All(t *testing.T) {
	u := New[int](8)
	for i := 0; i < 10; i++ {
		if !u.Put(i) {
			t.Error("wrong put 1")
		}
		if u.Put(i) {
			t.Error("wrong put 2")
		}
	}
	for i := 0; i < 10; i++ {
		if !u.Has(i) {
			t.Error("wrong has 1")
		}
	}
	for i := 0; i < 5; i++ {
		if !u.Remove(i) {
			t.Error("wrong remove 1")
		}
		if u.Remove(i) {
			t.Error("wrong remove 2")
		}
	}
	for i := 0; i < 5; i++ {
		if u.Has(i) {
			t.Error("wrong has 2")
		}
	}
	if u.Size() != 5 {
		t.Errorf("size %d", u.Size())
	}
	u.Clear()
	if !u.Empty() {
		t.Error("not empty after clear")
	}
}

func TestHashSet_Random(t *testing.T) {
	u := New[uint16](0)
	m := make(map[uint16]struct{})
	for n := 0; n < 10000; n++ {
		v := uint16(rg.Int())
		switch rg.Intn(3) {
		case 0:
			_, in := m[v]
			if u.Put(v) != !in {
				t.Fatal("put mismatch")
			}
			m[v] = struct{}{}
		case 1:
			_, in := m[v]
			if u.Remove(v) != in {
				t.Fatal("remove mismatch")
			}
			delete(m, v)
		case 2:
			if _, in := m[v]; u.Has(v) != in {
				t.Fatal("has mismatch")
			}
		}
	}
	if u.Size() != uint(len(m)) {
		t.Fatalf("size %d want %d", u.Size(), len(m))
	}
	vs := u.Items()
	slices.Sort(vs)
	for _, v := range vs {
		if _, in := m[v]; !in {
			t.Fatalf("items holds %d", v)
		}
	}
}

func TestHashSet_Relations(t *testing.T) {
	a := Of(1, 2, 3)
	b := Of(3, 2, 1)
	c := Of(1, 2, 3, 4)
	if !a.Eq(b) || a.Eq(c) {
		t.Error("eq")
	}
	if !a.SubsetOf(c) || c.SubsetOf(a) || !a.SubsetOf(b) {
		t.Error("subset")
	}
	if !New[int](0).SubsetOf(a) {
		t.Error("empty subset")
	}
}
