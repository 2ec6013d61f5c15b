package iterenum

import (
	"testing"

	"github.com/anacrolix/log"
	qt "github.com/go-quicktest/qt"
)

func TestLoggedForwards(t *testing.T) {
	logger := log.Default.WithNames("iterenum", "test")
	l := Log(FromSpan(0, 3), logger, "span")
	lower, upper := l.SizeHint()
	qt.Assert(t, qt.Equals(lower, 3))
	qt.Assert(t, qt.Equals(upper.Unwrap(), 3))
	qt.Assert(t, qt.DeepEquals(Collect[int](l), []int{0, 1, 2}))
}

func TestLoggedThroughEnumArm(t *testing.T) {
	var e Enum2[int, *Logged[int, *Span[int]], *Slice[int]]
	e.SetA(Log(FromSpan(0, 2), log.Default, "armA"))
	qt.Assert(t, qt.DeepEquals(e.Collect(), []int{0, 1}))
}
