// package core defines the pull protocol shared by every lazy sequence:
// cursors, the sources that mint them, and the result of a single pull.
// Combinators in sibling packages are built only on these abstractions.
//
// NOTE: this package should have no dependencies outside the standard
// library, including other lazy packages.
package core

// Sequence is a stateful cursor over a possibly infinite series of values.
// Each call to Next produces the next value or signals exhaustion.
// Once Next has returned an exhaustion or error Result, every later call
// returns exhaustion.
// Sequence answers the question: "What is the next value?".
type Sequence[T any] interface {
	Next() Result[T]

	// Close releases the cursor and every cursor it owns. Next reports
	// exhaustion after Close. Calling Close more than once is a no-op.
	Close()
}

// Source is a reusable description of a series. Every call to Iter mints
// a fresh, independent Sequence that starts from the beginning.
// Source answers the question: "How is a fresh cursor produced?".
type Source[T any] interface {
	Iter() Sequence[T]
}

// SourceFunc adapts a mint function into a Source.
type SourceFunc[T any] func() Sequence[T]

// Iter implements Source.
func (f SourceFunc[T]) Iter() Sequence[T] {
	return f()
}

// SequenceFunc adapts a pull function into a Sequence with no owned
// resources. The function is not required to keep a stable end state;
// wrap the result with Stable when that matters.
type SequenceFunc[T any] func() Result[T]

// Next implements Sequence.
func (f SequenceFunc[T]) Next() Result[T] {
	return f()
}

// Close implements Sequence.
func (f SequenceFunc[T]) Close() {}

// Iter mints a cursor from src and guarantees its stable end state.
func Iter[T any](src Source[T]) Sequence[T] {
	return Stable(src.Iter())
}
