package DynArray

import (
	"testing"

	"github.com/emirpasic/gods/lists/arraylist"
)

const benchmarkItemCount = 1 << 12

var sideEff int

func BenchmarkPushDynArray(b *testing.B) {
	for n := 0; n < b.N; n++ {
		u := New[int](0)
		for i := 0; i < benchmarkItemCount; i++ {
			u.Push(i)
		}
		sideEff = u.Get(-1)
	}
}

func BenchmarkPushGods(b *testing.B) {
	for n := 0; n < b.N; n++ {
		u := arraylist.New()
		for i := 0; i < benchmarkItemCount; i++ {
			u.Add(i)
		}
		v, _ := u.Get(benchmarkItemCount - 1)
		sideEff = v.(int)
	}
}

func BenchmarkGetDynArray(b *testing.B) {
	u := FromFunc(benchmarkItemCount, func(i uint) int { return int(i) })
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		for i := 0; i < benchmarkItemCount; i++ {
			sideEff = u.Get(i)
		}
	}
}

func BenchmarkGetGods(b *testing.B) {
	u := arraylist.New()
	for i := 0; i < benchmarkItemCount; i++ {
		u.Add(i)
	}
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		for i := 0; i < benchmarkItemCount; i++ {
			v, _ := u.Get(i)
			sideEff = v.(int)
		}
	}
}
