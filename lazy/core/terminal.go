package core

import (
	"fmt"
	"iter"
)

// Terminal functions are sinks that pull from a cursor and produce a final
// result. Each of them closes the cursor it was given before returning.

// Slice pulls up to limit values from seq. A negative limit pulls until
// exhaustion, which never returns for an infinite sequence.
// The first error Result stops the pull and is returned with the values
// collected so far.
func Slice[T any](seq Sequence[T], limit int) ([]T, error) {
	defer seq.Close()

	var out []T
	for limit < 0 || len(out) < limit {
		res := seq.Next()
		if res.IsError() {
			return out, res.Error()
		}
		if res.IsExhausted() {
			break
		}
		out = append(out, res.Value())
	}
	return out, nil
}

// First returns the first value of seq. An empty sequence reports an
// error wrapping ErrExhausted.
func First[T any](seq Sequence[T]) (T, error) {
	defer seq.Close()

	res := seq.Next()
	switch {
	case res.IsError():
		return res.Value(), res.Error()
	case res.IsExhausted():
		return res.Value(), fmt.Errorf("first: %w", ErrExhausted)
	default:
		return res.Value(), nil
	}
}

// Drain pulls seq until it ends and returns the number of values seen.
func Drain[T any](seq Sequence[T]) (int, error) {
	defer seq.Close()

	n := 0
	for {
		res := seq.Next()
		if res.IsError() {
			return n, res.Error()
		}
		if res.IsExhausted() {
			return n, nil
		}
		n++
	}
}

// All returns an iterator over the values of seq. Iteration stops at
// exhaustion or at the first error, which is dropped; use Slice or Drain
// when errors matter. The cursor is closed when iteration ends.
func All[T any](seq Sequence[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		defer seq.Close()
		for {
			v, ok := seq.Next().Unwrap()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
