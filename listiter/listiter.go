// Package listiter adapts doubly linked lists to the iterenum iteration
// contracts.
package listiter

import (
	g "github.com/anacrolix/generics"
	list "github.com/bahlo/generic-list-go"

	"github.com/anacrolix/iterenum"
)

// Elements produces a list's values front to back, and back to front from
// the other end. The list must not be modified during iteration.
type Elements[T any] struct {
	front     *list.Element[T]
	back      *list.Element[T]
	remaining int
}

func New[T any](l *list.List[T]) *Elements[T] {
	return &Elements[T]{
		front:     l.Front(),
		back:      l.Back(),
		remaining: l.Len(),
	}
}

func (me *Elements[T]) Next() (_ T, ok bool) {
	if me.remaining == 0 {
		return
	}
	v := me.front.Value
	me.front = me.front.Next()
	me.remaining--
	return v, true
}

func (me *Elements[T]) NextBack() (_ T, ok bool) {
	if me.remaining == 0 {
		return
	}
	v := me.back.Value
	me.back = me.back.Prev()
	me.remaining--
	return v, true
}

func (me *Elements[T]) Len() int {
	return me.remaining
}

func (me *Elements[T]) SizeHint() (lower int, upper g.Option[int]) {
	return me.remaining, g.Some(me.remaining)
}

var _ iterenum.Full[int] = (*Elements[int])(nil)
