/*
Package iterenum unifies iterators over the same element type.

Iterators originating from different parts of the code, such as separate
branches of a switch, have distinct concrete types. Collecting them or boxing
them behind an interface gives them one type, at the cost of allocation or a
dynamic call per element. This package instead wraps whichever iterator
actually occurred in a closed enum over all the types that could have, with
one arm per branch. The enum is itself an iterator, forwarding every call to
the active arm through a single tag check.

	span := iterenum.FromSpan(0, 10)
	var it iterenum.Enum2[
		int,
		*iterenum.Mapped[int, int, *iterenum.Span[int]],
		*iterenum.Filtered[int, *iterenum.Span[int]],
	]
	if squares {
		it.SetA(iterenum.Map(span, func(i int) int { return i * i }))
	} else {
		it.SetB(iterenum.Filter(span, func(i int) bool { return i%2 == 0 }))
	}
	for i := range it.Seq() {
		fmt.Println(i)
	}

Arms are fixed at construction. Enum2 through Enum6 cover 2 to 6 branches.
The explicit constructors (Enum2A, Enum2B, ...) take the element type and the
other arms' types as leading type arguments since those can't be inferred
from the lifted iterator alone. The Set methods avoid spelling any of that at
the construction site by naming the enum type once at its declaration.

Arms that are all double-ended, or all exactly sized, can be carried in the
BackEnum, ExactEnum and FullEnum forms instead, which forward those
capabilities too. The upgrades only compile when every arm has the
capability.
*/
package iterenum
