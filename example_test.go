package iterenum_test

import (
	"fmt"

	"github.com/anacrolix/iterenum"
)

func Example() {
	squares := true
	span := iterenum.FromSpan(0, 10)
	var it iterenum.Enum2[
		int,
		*iterenum.Mapped[int, int, *iterenum.Span[int]],
		*iterenum.Filtered[int, *iterenum.Span[int]],
	]
	if squares {
		it.SetA(iterenum.Map(span, func(i int) int { return i * i }))
	} else {
		it.SetB(iterenum.Filter(span, func(i int) bool { return i%2 == 0 }))
	}
	fmt.Println(it.Count())
	// Output: 10
}

func Example_switch() {
	for _, mode := range []int{0, 1, 2} {
		var it iterenum.Enum3[int, *iterenum.Once[int], *iterenum.Slice[int], *iterenum.Span[int]]
		switch mode {
		case 0:
			it.SetA(iterenum.FromValue(1))
		case 1:
			it.SetB(iterenum.FromSlice([]int{1, 2, 3}))
		default:
			it.SetC(iterenum.FromSpan(0, 4))
		}
		fmt.Println(it.Count())
	}
	// Output:
	// 1
	// 3
	// 4
}

func Example_doubleEnded() {
	e := iterenum.Back2(iterenum.Enum2A[int, *iterenum.Slice[int]](iterenum.FromSpan(0, 3)))
	for v := range e.BackSeq() {
		fmt.Println(v)
	}
	// Output:
	// 2
	// 1
	// 0
}

func Example_iteratorOfIterators() {
	// Elements can be iterators themselves.
	inner := iterenum.FromSpan(0, 1)
	it := iterenum.Enum2A[*iterenum.Span[int], iterenum.Empty[*iterenum.Span[int]]](iterenum.FromValue(inner))
	sum := iterenum.Fold(it, 0, func(acc int, s *iterenum.Span[int]) int { return acc + s.Len() })
	fmt.Println(sum)
	// Output: 1
}
