package iterenum

import (
	g "github.com/anacrolix/generics"
)

// Mapped transforms each element of an iterator.
type Mapped[W, V any, I Iterator[V]] struct {
	i I
	f func(V) W
}

// Map applies f to each element i produces.
func Map[W, V any, I Iterator[V]](i I, f func(V) W) *Mapped[W, V, I] {
	return &Mapped[W, V, I]{i, f}
}

func (me *Mapped[W, V, I]) Next() (_ W, ok bool) {
	v, ok := me.i.Next()
	if !ok {
		return
	}
	return me.f(v), true
}

func (me *Mapped[W, V, I]) SizeHint() (lower int, upper g.Option[int]) {
	return me.i.SizeHint()
}

// Filtered drops elements that don't satisfy a predicate.
type Filtered[V any, I Iterator[V]] struct {
	i    I
	pred func(V) bool
}

// Filter keeps the elements of i satisfying pred.
func Filter[V any, I Iterator[V]](i I, pred func(V) bool) *Filtered[V, I] {
	return &Filtered[V, I]{i, pred}
}

func (me *Filtered[V, I]) Next() (_ V, ok bool) {
	for {
		var v V
		v, ok = me.i.Next()
		if !ok {
			return
		}
		if me.pred(v) {
			return v, true
		}
	}
}

// The lower bound is zero since the predicate could reject everything.
func (me *Filtered[V, I]) SizeHint() (lower int, upper g.Option[int]) {
	_, upper = me.i.SizeHint()
	return
}

// Taken truncates an iterator after a number of elements.
type Taken[V any, I Iterator[V]] struct {
	i I
	n int
}

// Take produces at most n elements of i.
func Take[V any, I Iterator[V]](i I, n int) *Taken[V, I] {
	return &Taken[V, I]{i, n}
}

func (me *Taken[V, I]) Next() (_ V, ok bool) {
	if me.n <= 0 {
		return
	}
	me.n--
	return me.i.Next()
}

func (me *Taken[V, I]) SizeHint() (lower int, upper g.Option[int]) {
	lower, upper = me.i.SizeHint()
	lower = min(lower, me.n)
	if upper.Ok {
		upper.Value = min(upper.Value, me.n)
	} else {
		upper = g.Some(me.n)
	}
	return
}

// Skipped drops leading elements of an iterator.
type Skipped[V any, I Iterator[V]] struct {
	i I
	n int
}

// Skip drops the first n elements of i.
func Skip[V any, I Iterator[V]](i I, n int) *Skipped[V, I] {
	return &Skipped[V, I]{i, n}
}

func (me *Skipped[V, I]) Next() (_ V, ok bool) {
	for me.n > 0 {
		me.n--
		if _, ok = me.i.Next(); !ok {
			return
		}
	}
	return me.i.Next()
}

func (me *Skipped[V, I]) SizeHint() (lower int, upper g.Option[int]) {
	lower, upper = me.i.SizeHint()
	lower = max(lower-me.n, 0)
	if upper.Ok {
		upper.Value = max(upper.Value-me.n, 0)
	}
	return
}

// Inspected passes elements through, exposing each to a callback.
type Inspected[V any, I Iterator[V]] struct {
	i I
	f func(V)
}

// Inspect calls f with each element i produces, then produces it unchanged.
func Inspect[V any, I Iterator[V]](i I, f func(V)) *Inspected[V, I] {
	return &Inspected[V, I]{i, f}
}

func (me *Inspected[V, I]) Next() (_ V, ok bool) {
	v, ok := me.i.Next()
	if ok {
		me.f(v)
	}
	return v, ok
}

func (me *Inspected[V, I]) SizeHint() (lower int, upper g.Option[int]) {
	return me.i.SizeHint()
}

var (
	_ Iterator[any] = (*Mapped[any, any, Iterator[any]])(nil)
	_ Iterator[any] = (*Filtered[any, Iterator[any]])(nil)
	_ Iterator[any] = (*Taken[any, Iterator[any]])(nil)
	_ Iterator[any] = (*Skipped[any, Iterator[any]])(nil)
	_ Iterator[any] = (*Inspected[any, Iterator[any]])(nil)
)
