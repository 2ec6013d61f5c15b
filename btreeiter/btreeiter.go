// Package btreeiter adapts tidwall btrees to the iterenum iteration
// contracts.
package btreeiter

import (
	g "github.com/anacrolix/generics"
	"github.com/anacrolix/missinggo/v2/panicif"
	"github.com/tidwall/btree"

	"github.com/anacrolix/iterenum"
)

// Items produces a btree's items in order, and in reverse order from the
// back. Construction takes a copy-on-write snapshot, so later tree mutations
// don't affect iteration.
type Items[T any] struct {
	next      func() (T, bool)
	nextBack  func() (T, bool)
	release   func()
	remaining int
}

func New[T any](bt *btree.BTreeG[T]) *Items[T] {
	bt = bt.Copy()
	fwd := bt.Iter()
	rev := bt.Iter()
	fwdStarted := false
	revStarted := false
	me := &Items[T]{remaining: bt.Len()}
	me.next = func() (_ T, ok bool) {
		if fwdStarted {
			ok = fwd.Next()
		} else {
			ok = fwd.First()
			fwdStarted = true
		}
		if !ok {
			return
		}
		return fwd.Item(), true
	}
	me.nextBack = func() (_ T, ok bool) {
		if revStarted {
			ok = rev.Prev()
		} else {
			ok = rev.Last()
			revStarted = true
		}
		if !ok {
			return
		}
		return rev.Item(), true
	}
	me.release = func() {
		fwd.Release()
		rev.Release()
	}
	if me.remaining == 0 {
		me.release()
	}
	return me
}

func (me *Items[T]) Next() (_ T, ok bool) {
	if me.remaining == 0 {
		return
	}
	v, ok := me.next()
	// The count says the snapshot still has items ahead of this cursor.
	panicif.False(ok)
	me.consumed()
	return v, true
}

func (me *Items[T]) NextBack() (_ T, ok bool) {
	if me.remaining == 0 {
		return
	}
	v, ok := me.nextBack()
	panicif.False(ok)
	me.consumed()
	return v, true
}

func (me *Items[T]) consumed() {
	me.remaining--
	if me.remaining == 0 {
		me.release()
	}
}

// Stop releases the underlying cursors early. The iterator reports exhausted
// afterwards.
func (me *Items[T]) Stop() {
	if me.remaining != 0 {
		me.remaining = 0
		me.release()
	}
}

func (me *Items[T]) Len() int {
	return me.remaining
}

func (me *Items[T]) SizeHint() (lower int, upper g.Option[int]) {
	return me.remaining, g.Some(me.remaining)
}

var _ iterenum.Full[int] = (*Items[int])(nil)
