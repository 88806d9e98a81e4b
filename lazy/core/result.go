package core

import (
	"errors"
	"fmt"
)

// ErrExhausted is the sentinel carried by an exhaustion Result.
// It marks the normal end of a sequence and is never reported as a failure.
var ErrExhausted = errors.New("sequence exhausted")

// ErrSourceDrained is reported when a source that yielded elements at mint
// time turns out to be empty on a later re-mint.
var ErrSourceDrained = errors.New("source drained after non-empty probe")

// ErrRowLimit is reported when a bounded multiplication table meets an
// inner sequence longer than its row limit.
var ErrRowLimit = errors.New("row limit exceeded")

// Result represents the outcome of a single pull.
// It exists in one of three states:
//   - Value: an element was produced (IsValue() returns true)
//   - Exhausted: no further elements (IsExhausted() returns true)
//   - Error: a flagged misuse that ends the cursor (IsError() returns true)
//
// The zero Result is a value Result holding the zero value of T.
type Result[T any] struct {
	value     T
	err       error
	exhausted bool
}

// Ok creates a Result containing the given value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// End creates an exhaustion Result.
func End[T any]() Result[T] {
	return Result[T]{err: ErrExhausted, exhausted: true}
}

// Err creates an error Result. The cursor that returns it is finished.
func Err[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// IsValue returns true if this Result contains a value.
func (r Result[T]) IsValue() bool {
	return r.err == nil && !r.exhausted
}

// IsExhausted returns true if this Result signals exhaustion.
func (r Result[T]) IsExhausted() bool {
	return r.exhausted
}

// IsError returns true if this Result carries an error.
func (r Result[T]) IsError() bool {
	return r.err != nil && !r.exhausted
}

// Done returns true for exhaustion and error Results, i.e. whenever the
// cursor will produce nothing further.
func (r Result[T]) Done() bool {
	return !r.IsValue()
}

// Value returns the contained value. Only meaningful when IsValue() is true.
func (r Result[T]) Value() T {
	return r.value
}

// Error returns the error of an error Result, nil otherwise.
func (r Result[T]) Error() error {
	if r.exhausted {
		return nil
	}
	return r.err
}

// Unwrap returns the value and whether the Result holds one.
func (r Result[T]) Unwrap() (T, bool) {
	return r.value, r.IsValue()
}

// String renders the Result for diagnostics.
func (r Result[T]) String() string {
	switch {
	case r.exhausted:
		return "End"
	case r.err != nil:
		return fmt.Sprintf("Err(%v)", r.err)
	default:
		return fmt.Sprintf("Ok(%v)", r.value)
	}
}

// Forward converts a finished Result into the same state for another
// element type. It is used by decorators whose element type differs from
// their input's. Calling it on a value Result returns End.
func Forward[OUT, IN any](r Result[IN]) Result[OUT] {
	if r.IsError() {
		return Err[OUT](r.err)
	}
	return End[OUT]()
}
