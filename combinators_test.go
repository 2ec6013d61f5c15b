package iterenum

import (
	"io"
	"testing"

	qt "github.com/go-quicktest/qt"
	"github.com/pkg/errors"
)

func TestMap(t *testing.T) {
	m := Map(FromSpan(0, 4), func(i int) int { return i * i })
	qt.Assert(t, qt.DeepEquals(Collect[int](m), []int{0, 1, 4, 9}))
}

func TestMapChangesElementType(t *testing.T) {
	m := Map(FromSlice([]int{1, 2}), func(i int) bool { return i%2 == 0 })
	qt.Assert(t, qt.DeepEquals(Collect[bool](m), []bool{false, true}))
}

func TestFilter(t *testing.T) {
	f := Filter(FromSpan(0, 10), func(i int) bool { return i%2 == 0 })
	qt.Assert(t, qt.DeepEquals(Collect[int](f), []int{0, 2, 4, 6, 8}))
}

func TestTake(t *testing.T) {
	qt.Check(t, qt.DeepEquals(Collect[int](Take(FromSpan(0, 10), 3)), []int{0, 1, 2}))
	// Taking more than the source has just drains it.
	qt.Check(t, qt.DeepEquals(Collect[int](Take(FromSpan(0, 2), 5)), []int{0, 1}))
	qt.Check(t, qt.HasLen(Collect[int](Take(FromSpan(0, 2), 0)), 0))
}

func TestSkip(t *testing.T) {
	qt.Check(t, qt.DeepEquals(Collect[int](Skip(FromSpan(0, 5), 2)), []int{2, 3, 4}))
	qt.Check(t, qt.HasLen(Collect[int](Skip(FromSpan(0, 2), 5)), 0))
	qt.Check(t, qt.DeepEquals(Collect[int](Skip(FromSpan(0, 2), 0)), []int{0, 1}))
}

func TestInspect(t *testing.T) {
	var seen []int
	i := Inspect(FromSpan(0, 3), func(v int) { seen = append(seen, v) })
	qt.Assert(t, qt.DeepEquals(Collect[int](i), []int{0, 1, 2}))
	qt.Assert(t, qt.DeepEquals(seen, []int{0, 1, 2}))
}

func TestInspectNotCalledWhenExhausted(t *testing.T) {
	calls := 0
	i := Inspect(Empty[int]{}, func(int) { calls++ })
	_, ok := i.Next()
	qt.Assert(t, qt.IsFalse(ok))
	qt.Assert(t, qt.Equals(calls, 0))
}

func TestCombinatorsThroughEnum(t *testing.T) {
	span := FromSpan(0, 10)
	var e Enum2[int, *Mapped[int, int, *Span[int]], *Filtered[int, *Span[int]]]
	e.SetA(Map(span, func(i int) int { return i * i }))
	qt.Assert(t, qt.DeepEquals(e.Collect(), []int{0, 1, 4, 9, 16, 25, 36, 49, 64, 81}))
	e.SetB(Filter(FromSpan(0, 10), func(i int) bool { return i%2 == 0 }))
	qt.Assert(t, qt.Equals(e.Count(), 5))
}

func TestErrorElementsPassUntouched(t *testing.T) {
	// Elements are opaque to the wrapper, error values included.
	errs := []error{errors.New("boom"), errors.Wrap(io.EOF, "reading")}
	e := Enum2A[error, Empty[error]](FromSlice(errs))
	got := e.Collect()
	qt.Assert(t, qt.HasLen(got, 2))
	qt.Assert(t, qt.Equals(got[0], errs[0]))
	qt.Assert(t, qt.Equals(errors.Cause(got[1]), io.EOF))
}
