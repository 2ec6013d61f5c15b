package roaringiter

import (
	"testing"

	"github.com/RoaringBitmap/roaring"
	qt "github.com/go-quicktest/qt"

	"github.com/anacrolix/iterenum"
)

func TestBitsAscending(t *testing.T) {
	b := New[int](roaring.BitmapOf(5, 1, 9))
	qt.Assert(t, qt.DeepEquals(iterenum.Collect[int](b), []int{1, 5, 9}))
}

func TestBitsBack(t *testing.T) {
	b := New[uint32](roaring.BitmapOf(1, 5, 9))
	v, ok := b.NextBack()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(v, uint32(9)))
	qt.Assert(t, qt.Equals(b.Len(), 2))
	qt.Assert(t, qt.DeepEquals(iterenum.Collect[uint32](b), []uint32{1, 5}))
}

func TestBitsBothEndsPartition(t *testing.T) {
	b := New[int](roaring.BitmapOf(1, 2, 3, 4))
	var seq []int
	for {
		v, ok := b.Next()
		if !ok {
			break
		}
		seq = append(seq, v)
		v, ok = b.NextBack()
		if !ok {
			break
		}
		seq = append(seq, v)
	}
	qt.Assert(t, qt.DeepEquals(seq, []int{1, 4, 2, 3}))
}

func TestBitsIgnoresLaterMutation(t *testing.T) {
	bm := roaring.BitmapOf(1, 2)
	b := New[int](bm)
	bm.Add(3)
	qt.Assert(t, qt.Equals(iterenum.Count[int](b), 2))
}

func TestBitsFrom(t *testing.T) {
	b := NewFrom[int](roaring.BitmapOf(1, 5, 9), 5)
	qt.Assert(t, qt.DeepEquals(iterenum.Collect[int](b), []int{5, 9}))
}

func TestBitsAsEnumArm(t *testing.T) {
	var e iterenum.Enum2[int, *Bits[int], *iterenum.Slice[int]]
	e.SetA(New[int](roaring.BitmapOf(2, 4)))
	qt.Assert(t, qt.DeepEquals(e.Collect(), []int{2, 4}))
	e.SetB(iterenum.FromSlice([]int{7}))
	qt.Assert(t, qt.DeepEquals(e.Collect(), []int{7}))
}

func TestBitsFullEnum(t *testing.T) {
	f := iterenum.Full2(iterenum.Enum2A[int, *iterenum.Slice[int]](New[int](roaring.BitmapOf(3, 1, 2))))
	qt.Assert(t, qt.Equals(f.Len(), 3))
	v, ok := f.NextBack()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(v, 3))
	qt.Assert(t, qt.DeepEquals(f.Collect(), []int{1, 2}))
}
