package DLList

import (
	"testing"

	"github.com/emirpasic/gods/lists/doublylinkedlist"
)

// compares with github.com/emirpasic/gods/lists/doublylinkedlist.

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
		l := doublylinkedlist.New()
		for i := 0; i < benchmarkItemCount; i++ {
			l.Add(i)
		}
	}
}

var sideEff int

func BenchmarkGet(b *testing.B) {
	l := FromFunc(benchmarkItemCount, func(i uint) int { return int(i) })
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		for i := 0; i < 1000; i++ {
			sideEff = l.Get(i * (benchmarkItemCount / 1000))
		}
	}
}

func BenchmarkGetGods(b *testing.B) {
	l := doublylinkedlist.New()
	for i := 0; i < benchmarkItemCount; i++ {
		l.Add(i)
	}
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		for i := 0; i < 1000; i++ {
			v, _ := l.Get(i * (benchmarkItemCount / 1000))
			sideEff = v.(int)
		}
	}
}
