package SLList

import (
	"testing"

	"github.com/emirpasic/gods/lists/singlylinkedlist"
)

// compares with github.com/emirpasic/gods/lists/singlylinkedlist.

const benchmarkItemCount = 1 << 14

func BenchmarkPushBack(b *testing.B) {
	for n := 0; n < b.N; n++ {
		l := New[int]()
		for i := 0; i < benchmarkItemCount; i++ {
			l.PushBack(i)
		}
	}
}

func BenchmarkPushBackGods(b *testing.B) {
	for n := 0; n < b.N; n++ {
		l := singlylinkedlist.New()
		for i := 0; i < benchmarkItemCount; i++ {
			l.Add(i)
		}
	}
}

func BenchmarkSort(b *testing.B) {
	lt := func(a, c int) bool { return a < c }
	for n := 0; n < b.N; n++ {
		b.StopTimer()
		l := FromFunc(benchmarkItemCount, func(i uint) int { return rg.Int() })
		b.StartTimer()
		l.Sort(lt)
	}
}
