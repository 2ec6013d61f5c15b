package iterenum

import (
	"fmt"
	"math"
	"slices"
	"testing"

	_ "github.com/anacrolix/envpprof"
	g "github.com/anacrolix/generics"
	qt "github.com/go-quicktest/qt"
)

func TestEnumForwardsActiveArm(t *testing.T) {
	vs := []int{3, 1, 4, 1, 5}
	var e Enum2[int, *Slice[int], *Span[int]]
	e.SetA(FromSlice(vs))
	qt.Assert(t, qt.DeepEquals(e.Collect(), vs))
	e.SetB(FromSpan(0, 4))
	qt.Assert(t, qt.DeepEquals(e.Collect(), []int{0, 1, 2, 3}))
}

func TestEnumMatchesBareSource(t *testing.T) {
	// Element for element, driving the enum is driving the source.
	bare := FromSpan(10, 15)
	wrapped := Enum2B[int, *Slice[int]](FromSpan(10, 15))
	for {
		bv, bok := bare.Next()
		wv, wok := wrapped.Next()
		qt.Assert(t, qt.Equals(wok, bok))
		if !bok {
			break
		}
		qt.Assert(t, qt.Equals(wv, bv))
	}
}

func TestConstructorArms(t *testing.T) {
	qt.Check(t, qt.Equals(Enum2A[int, *Span[int]](FromSlice([]int{1})).Arm(), ArmA))
	qt.Check(t, qt.Equals(Enum2B[int, *Slice[int]](FromSpan(0, 1)).Arm(), ArmB))
	qt.Check(t, qt.Equals(Enum3C[int, *Slice[int], *Span[int]](FromValue(7)).Arm(), ArmC))
	qt.Check(t, qt.Equals(Enum4D[int, *Slice[int], *Span[int], *Once[int]](RepeatN(0, 2)).Arm(), ArmD))
	qt.Check(t, qt.Equals(Enum5E[int, *Slice[int], *Span[int], *Once[int], *Repeat[int]](Empty[int]{}).Arm(), ArmE))
	qt.Check(t, qt.Equals(Enum6F[int, *Slice[int], *Span[int], *Once[int], *Repeat[int], Empty[int]](FromValue(1)).Arm(), ArmF))
}

func TestZeroEnumIsArmA(t *testing.T) {
	var e Enum2[int, Empty[int], *Slice[int]]
	qt.Assert(t, qt.Equals(e.Arm(), ArmA))
	qt.Assert(t, qt.HasLen(e.Collect(), 0))
}

func TestSetReplacesArm(t *testing.T) {
	var e Enum2[int, *Slice[int], *Span[int]]
	e.SetA(FromSlice([]int{1, 2, 3}))
	_, ok := e.Next()
	qt.Assert(t, qt.IsTrue(ok))
	e.SetB(FromSpan(5, 8))
	qt.Assert(t, qt.Equals(e.Arm(), ArmB))
	qt.Assert(t, qt.DeepEquals(e.Collect(), []int{5, 6, 7}))
}

func TestEnum6AllArms(t *testing.T) {
	var e Enum6[int, *Slice[int], *Span[int], *Once[int], Empty[int], *Repeat[int], *SeqIter[int]]
	e.SetA(FromSlice([]int{1}))
	qt.Check(t, qt.DeepEquals(e.Collect(), []int{1}))
	e.SetB(FromSpan(2, 4))
	qt.Check(t, qt.DeepEquals(e.Collect(), []int{2, 3}))
	e.SetC(FromValue(9))
	qt.Check(t, qt.DeepEquals(e.Collect(), []int{9}))
	e.SetD(Empty[int]{})
	qt.Check(t, qt.HasLen(e.Collect(), 0))
	e.SetE(RepeatN(7, 2))
	qt.Check(t, qt.DeepEquals(e.Collect(), []int{7, 7}))
	e.SetF(FromSeq(slices.Values([]int{8, 6})))
	qt.Check(t, qt.DeepEquals(e.Collect(), []int{8, 6}))
}

func TestEnumOfEnums(t *testing.T) {
	inner := Enum2A[int, *Span[int]](FromSlice([]int{1, 2}))
	var outer Enum2[int, *Enum2[int, *Slice[int], *Span[int]], *Once[int]]
	outer.SetA(inner)
	qt.Assert(t, qt.DeepEquals(outer.Collect(), []int{1, 2}))
	outer.SetB(FromValue(3))
	qt.Assert(t, qt.DeepEquals(outer.Collect(), []int{3}))
}

func TestInterfaceArms(t *testing.T) {
	// Arms may themselves be interface types where dynamic dispatch is
	// acceptable.
	var e Enum2[int, Iterator[int], Iterator[int]]
	e.SetB(FromSpan(0, 3))
	qt.Assert(t, qt.DeepEquals(e.Collect(), []int{0, 1, 2}))
}

func TestConstructorAndSetEquivalent(t *testing.T) {
	ctor := Enum2B[int, *Slice[int]](FromSpan(0, 3))
	var set Enum2[int, *Slice[int], *Span[int]]
	set.SetB(FromSpan(0, 3))
	qt.Assert(t, qt.Equals(set.Arm(), ctor.Arm()))
	qt.Assert(t, qt.DeepEquals(set.Collect(), ctor.Collect()))
}

// refill resumes after reporting exhausted when handed more elements.
type refill struct {
	vs []int
}

func (me *refill) Next() (_ int, ok bool) {
	if len(me.vs) == 0 {
		return
	}
	v := me.vs[0]
	me.vs = me.vs[1:]
	return v, true
}

func (me *refill) SizeHint() (lower int, upper g.Option[int]) {
	return len(me.vs), g.Some(len(me.vs))
}

func TestEnumDoesNotLatchExhaustion(t *testing.T) {
	src := &refill{vs: []int{1}}
	e := Enum2A[int, Empty[int]](src)
	_, ok := e.Next()
	qt.Assert(t, qt.IsTrue(ok))
	_, ok = e.Next()
	qt.Assert(t, qt.IsFalse(ok))
	src.vs = []int{2}
	v, ok := e.Next()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(v, 2))
}

func TestArmString(t *testing.T) {
	qt.Check(t, qt.Equals(ArmA.String(), "A"))
	qt.Check(t, qt.Equals(ArmF.String(), "F"))
	qt.Check(t, qt.Equals(Arm(9).String(), "Arm(9)"))
}

func TestEnumString(t *testing.T) {
	e := Enum2B[int, *Slice[int]](FromSpan(0, 3))
	qt.Assert(t, qt.Equals(fmt.Sprintf("%v", e), "B(&{0 3})"))
}

func BenchmarkEnumNext(b *testing.B) {
	e := Enum2A[int, Empty[int]](FromSpan(0, math.MaxInt))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = e.Next()
	}
}

func BenchmarkBareSourceNext(b *testing.B) {
	s := FromSpan(0, math.MaxInt)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = s.Next()
	}
}
