package iterenum

import (
	g "github.com/anacrolix/generics"
)

//go:generate go run ./internal/cmd/gen-enums
//go:generate stringer -type=Arm -trimprefix=Arm

// Arm identifies the active variant of an enum. For an enum of arity N only
// the first N values occur.
type Arm uint8

const (
	ArmA Arm = iota
	ArmB
	ArmC
	ArmD
	ArmE
	ArmF
)

// Iterator is the pull contract everything in this package unifies over.
type Iterator[V any] interface {
	// Returns the next element, or ok false when exhausted. Whether an
	// iterator can produce again after reporting exhausted is up to the
	// implementation, wrappers just forward.
	Next() (_ V, ok bool)
	// Bounds on the number of remaining elements: at least lower, at most
	// upper if upper is set. (0, g.None[int]()) when nothing better is known.
	// Hints are for preallocation, not correctness.
	SizeHint() (lower int, upper g.Option[int])
}

// DoubleEnded iterators also produce from the tail. Next and NextBack
// consume the same remaining elements and meet in the middle.
type DoubleEnded[V any] interface {
	Iterator[V]
	NextBack() (_ V, ok bool)
}

// ExactSize iterators know precisely how many elements remain.
type ExactSize[V any] interface {
	Iterator[V]
	Len() int
}

// Full iterators are double-ended with an exact size.
type Full[V any] interface {
	DoubleEnded[V]
	ExactSize[V]
}
