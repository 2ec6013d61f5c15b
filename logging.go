package iterenum

import (
	g "github.com/anacrolix/generics"
	"github.com/anacrolix/log"
)

// Logged passes elements through, emitting a debug line for each. Handy for
// working out which arm an enum took and what it produced.
type Logged[V any, I Iterator[V]] struct {
	i      I
	logger log.Logger
	name   string
}

// Log wraps i so every element it produces, and its exhaustion, is logged
// through logger at debug level under name.
func Log[V any, I Iterator[V]](i I, logger log.Logger, name string) *Logged[V, I] {
	return &Logged[V, I]{i, logger, name}
}

func (me *Logged[V, I]) Next() (_ V, ok bool) {
	v, ok := me.i.Next()
	if ok {
		me.logger.Levelf(log.Debug, "%v: produced %v", me.name, v)
	} else {
		me.logger.Levelf(log.Debug, "%v: exhausted", me.name)
	}
	return v, ok
}

func (me *Logged[V, I]) SizeHint() (lower int, upper g.Option[int]) {
	return me.i.SizeHint()
}

var _ Iterator[any] = (*Logged[any, Iterator[any]])(nil)
