package iterenum

import (
	"iter"

	g "github.com/anacrolix/generics"
	"golang.org/x/exp/constraints"
)

// Slice iterates a slice from either end.
type Slice[V any] struct {
	vs []V
}

// FromSlice returns a full-capability iterator over vs. The slice is not
// copied, but the iterator never writes to it.
func FromSlice[V any](vs []V) *Slice[V] {
	return &Slice[V]{vs}
}

func (me *Slice[V]) Next() (_ V, ok bool) {
	if len(me.vs) == 0 {
		return
	}
	v := me.vs[0]
	me.vs = me.vs[1:]
	return v, true
}

func (me *Slice[V]) NextBack() (_ V, ok bool) {
	if len(me.vs) == 0 {
		return
	}
	v := me.vs[len(me.vs)-1]
	me.vs = me.vs[:len(me.vs)-1]
	return v, true
}

func (me *Slice[V]) Len() int {
	return len(me.vs)
}

func (me *Slice[V]) SizeHint() (lower int, upper g.Option[int]) {
	return len(me.vs), g.Some(len(me.vs))
}

// Span counts over a half-open integer range.
type Span[T constraints.Integer] struct {
	begin, end T
}

// FromSpan returns a full-capability iterator producing begin, begin+1, up
// to but not including end. Empty if end <= begin.
func FromSpan[T constraints.Integer](begin, end T) *Span[T] {
	if end < begin {
		end = begin
	}
	return &Span[T]{begin, end}
}

func (me *Span[T]) Next() (_ T, ok bool) {
	if me.begin >= me.end {
		return
	}
	v := me.begin
	me.begin++
	return v, true
}

func (me *Span[T]) NextBack() (_ T, ok bool) {
	if me.begin >= me.end {
		return
	}
	me.end--
	return me.end, true
}

func (me *Span[T]) Len() int {
	return int(me.end - me.begin)
}

func (me *Span[T]) SizeHint() (lower int, upper g.Option[int]) {
	return me.Len(), g.Some(me.Len())
}

// Once produces a single value and is then exhausted.
type Once[V any] struct {
	v    V
	done bool
}

// FromValue returns a full-capability iterator producing just v.
func FromValue[V any](v V) *Once[V] {
	return &Once[V]{v: v}
}

func (me *Once[V]) Next() (_ V, ok bool) {
	if me.done {
		return
	}
	me.done = true
	return me.v, true
}

func (me *Once[V]) NextBack() (_ V, ok bool) {
	return me.Next()
}

func (me *Once[V]) Len() int {
	if me.done {
		return 0
	}
	return 1
}

func (me *Once[V]) SizeHint() (lower int, upper g.Option[int]) {
	return me.Len(), g.Some(me.Len())
}

// Empty produces nothing. The zero value is ready to use, which also makes
// it a harmless zero arm for enums.
type Empty[V any] struct{}

func (Empty[V]) Next() (_ V, ok bool) {
	return
}

func (Empty[V]) NextBack() (_ V, ok bool) {
	return
}

func (Empty[V]) Len() int {
	return 0
}

func (Empty[V]) SizeHint() (lower int, upper g.Option[int]) {
	return 0, g.Some(0)
}

// Repeat produces copies of one value.
type Repeat[V any] struct {
	v V
	n int
}

// RepeatN returns a full-capability iterator producing v n times.
func RepeatN[V any](v V, n int) *Repeat[V] {
	if n < 0 {
		n = 0
	}
	return &Repeat[V]{v, n}
}

func (me *Repeat[V]) Next() (_ V, ok bool) {
	if me.n <= 0 {
		return
	}
	me.n--
	return me.v, true
}

func (me *Repeat[V]) NextBack() (_ V, ok bool) {
	return me.Next()
}

func (me *Repeat[V]) Len() int {
	return me.n
}

func (me *Repeat[V]) SizeHint() (lower int, upper g.Option[int]) {
	return me.n, g.Some(me.n)
}

// Chan produces values received from a channel until it's closed. Next
// blocks like a receive does, including forever on a nil channel.
type Chan[V any] struct {
	c <-chan V
}

func FromChan[V any](c <-chan V) *Chan[V] {
	return &Chan[V]{c}
}

func (me *Chan[V]) Next() (_ V, ok bool) {
	v, ok := <-me.c
	return v, ok
}

func (me *Chan[V]) SizeHint() (lower int, upper g.Option[int]) {
	return
}

// SeqIter pulls from a standard push iterator. The zero value is not usable,
// use FromSeq.
type SeqIter[V any] struct {
	next func() (V, bool)
	stop func()
}

// FromSeq adapts a standard iterator via iter.Pull. Call Stop if the
// sequence won't be driven to exhaustion.
func FromSeq[V any](seq iter.Seq[V]) *SeqIter[V] {
	next, stop := iter.Pull(seq)
	return &SeqIter[V]{next, stop}
}

func (me *SeqIter[V]) Next() (_ V, ok bool) {
	return me.next()
}

func (me *SeqIter[V]) SizeHint() (lower int, upper g.Option[int]) {
	return
}

// Stop releases the underlying sequence. Next reports exhausted afterwards.
func (me *SeqIter[V]) Stop() {
	me.stop()
}

var (
	_ Full[any]     = (*Slice[any])(nil)
	_ Full[int]     = (*Span[int])(nil)
	_ Full[any]     = (*Once[any])(nil)
	_ Full[any]     = Empty[any]{}
	_ Full[any]     = (*Repeat[any])(nil)
	_ Iterator[any] = (*Chan[any])(nil)
	_ Iterator[any] = (*SeqIter[any])(nil)
)
