package iterenum

import (
	"iter"
)

// ToSeq adapts a pull iterator to a standard push iterator. Breaking out of
// the range leaves it resumable wherever the source allows that.
func ToSeq[V any, I Iterator[V]](it I) iter.Seq[V] {
	return func(yield func(V) bool) {
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// BackSeq is ToSeq from the tail end.
func BackSeq[V any, I DoubleEnded[V]](it I) iter.Seq[V] {
	return func(yield func(V) bool) {
		for v, ok := it.NextBack(); ok; v, ok = it.NextBack() {
			if !yield(v) {
				return
			}
		}
	}
}

// Collect exhausts it into a new slice, preallocating from its size hint.
func Collect[V any, I Iterator[V]](it I) []V {
	lower, _ := it.SizeHint()
	vs := make([]V, 0, lower)
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		vs = append(vs, v)
	}
	return vs
}

// Fold exhausts it, accumulating every element into acc with f.
func Fold[B, V any, I Iterator[V]](it I, acc B, f func(B, V) B) B {
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		acc = f(acc, v)
	}
	return acc
}

// Count exhausts it and reports how many elements it produced.
func Count[V any, I Iterator[V]](it I) (n int) {
	for _, ok := it.Next(); ok; _, ok = it.Next() {
		n++
	}
	return
}
