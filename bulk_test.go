package iterenum

import (
	"strconv"
	"testing"

	qt "github.com/go-quicktest/qt"
)

func TestToSeqBreakLeavesRest(t *testing.T) {
	it := FromSpan(0, 5)
	var first []int
	for v := range ToSeq[int](it) {
		first = append(first, v)
		if len(first) == 2 {
			break
		}
	}
	qt.Assert(t, qt.DeepEquals(first, []int{0, 1}))
	qt.Assert(t, qt.DeepEquals(Collect[int](it), []int{2, 3, 4}))
}

func TestCollectPreallocatesFromHint(t *testing.T) {
	vs := Collect[int](FromSpan(0, 5))
	qt.Assert(t, qt.Equals(cap(vs), 5))
	qt.Assert(t, qt.DeepEquals(vs, []int{0, 1, 2, 3, 4}))
}

func TestCollectEmpty(t *testing.T) {
	vs := Collect[int](Empty[int]{})
	qt.Assert(t, qt.HasLen(vs, 0))
}

func TestFold(t *testing.T) {
	sum := Fold(FromSpan(1, 5), 0, func(acc, v int) int { return acc + v })
	qt.Assert(t, qt.Equals(sum, 10))
}

func TestFoldAccumulatorType(t *testing.T) {
	s := Fold(FromSpan(0, 3), "", func(acc string, v int) string { return acc + strconv.Itoa(v) })
	qt.Assert(t, qt.Equals(s, "012"))
}

func TestCount(t *testing.T) {
	qt.Check(t, qt.Equals(Count[int](FromSpan(0, 10)), 10))
	qt.Check(t, qt.Equals(Count[int](Empty[int]{}), 0))
}

func TestEnumSeq(t *testing.T) {
	e := Enum2A[int, *Slice[int]](FromSpan(0, 3))
	var got []int
	for v := range e.Seq() {
		got = append(got, v)
	}
	qt.Assert(t, qt.DeepEquals(got, []int{0, 1, 2}))
}
