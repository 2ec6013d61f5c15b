// Package roaringiter adapts roaring bitmaps to the iterenum iteration
// contracts.
package roaringiter

import (
	"github.com/RoaringBitmap/roaring"
	g "github.com/anacrolix/generics"

	"github.com/anacrolix/iterenum"
)

type BitConstraint interface {
	~int | ~uint32
}

// Bits produces a bitmap's set bits, ascending from the front and descending
// from the back. The bitmap is cloned at construction so later mutations
// don't affect iteration.
type Bits[T BitConstraint] struct {
	fwd       roaring.IntPeekable
	rev       roaring.IntIterable
	remaining int
}

func New[T BitConstraint](bm *roaring.Bitmap) *Bits[T] {
	bm = bm.Clone()
	return &Bits[T]{
		fwd:       bm.Iterator(),
		rev:       bm.ReverseIterator(),
		remaining: int(bm.GetCardinality()),
	}
}

// NewFrom is New restricted to bits at or above min.
func NewFrom[T BitConstraint](bm *roaring.Bitmap, min T) *Bits[T] {
	bm = bm.Clone()
	bm.RemoveRange(0, uint64(min))
	return &Bits[T]{
		fwd:       bm.Iterator(),
		rev:       bm.ReverseIterator(),
		remaining: int(bm.GetCardinality()),
	}
}

// Consumption from both ends is tracked with a single count. The front sees
// ascending bits, the back descending, and they partition the bitmap exactly
// when the count runs out.
func (me *Bits[T]) Next() (_ T, ok bool) {
	if me.remaining == 0 {
		return
	}
	me.remaining--
	return T(me.fwd.Next()), true
}

func (me *Bits[T]) NextBack() (_ T, ok bool) {
	if me.remaining == 0 {
		return
	}
	me.remaining--
	return T(me.rev.Next()), true
}

func (me *Bits[T]) Len() int {
	return me.remaining
}

func (me *Bits[T]) SizeHint() (lower int, upper g.Option[int]) {
	return me.remaining, g.Some(me.remaining)
}

var _ iterenum.Full[int] = (*Bits[int])(nil)
