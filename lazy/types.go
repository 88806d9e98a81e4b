// Package lazy provides composable lazy sequence generators in Go.
//
// A Source describes a possibly infinite series and can mint any number of
// independent Sequences (cursors) over it. Combinators in the filter,
// combine, transform and aggregate subpackages decorate Sources to build
// new ones; nothing is computed until a cursor is pulled.
//
// This package is the primary user-facing API. The lazy/core subpackage
// contains the protocol itself and is rarely needed directly.
package lazy

import (
	"iter"

	"github.com/lguimbarda/min-lazy/lazy/core"
)

// Type aliases for core abstractions.
// These allow users to work with the library without importing core directly.
type (
	// Result is the outcome of one pull: a value, exhaustion or an error.
	Result[T any] = core.Result[T]

	// Sequence is a stateful cursor over a series.
	Sequence[T any] = core.Sequence[T]

	// Source mints independent Sequences.
	Source[T any] = core.Source[T]

	// SourceFunc adapts a mint function into a Source.
	SourceFunc[T any] = core.SourceFunc[T]

	// SequenceFunc adapts a pull function into a Sequence.
	SequenceFunc[T any] = core.SequenceFunc[T]

	// Hooks holds observation callbacks for the cursors of a source.
	Hooks[T any] = core.Hooks[T]
)

// ErrExhausted is the sentinel carried by an exhaustion Result.
var ErrExhausted = core.ErrExhausted

// Result constructors - wrappers around core functions.

// Ok creates a Result containing the given value.
func Ok[T any](value T) Result[T] {
	return core.Ok(value)
}

// End creates an exhaustion Result.
func End[T any]() Result[T] {
	return core.End[T]()
}

// Err creates an error Result.
func Err[T any](err error) Result[T] {
	return core.Err[T](err)
}

// Iter mints a cursor from src with a guaranteed stable end state.
func Iter[T any](src Source[T]) Sequence[T] {
	return core.Iter(src)
}

// Terminal operations.

// Slice pulls up to limit values from a fresh cursor over src.
// A negative limit pulls until exhaustion.
func Slice[T any](src Source[T], limit int) ([]T, error) {
	return core.Slice(core.Iter(src), limit)
}

// First returns the first value of src.
func First[T any](src Source[T]) (T, error) {
	return core.First(core.Iter(src))
}

// All returns an iterator over the values of a fresh cursor over src.
func All[T any](src Source[T]) iter.Seq[T] {
	return core.All(core.Iter(src))
}
