// Package filter provides combinators that drop elements from the front
// or the back of a sequence.
package filter

import (
	"github.com/lguimbarda/min-lazy/lazy/core"
)

type takeSource[T any] struct {
	n   uint
	src core.Source[T]
}

// Take creates a Source that yields at most the first n elements of src.
// Once n elements have been produced the wrapped cursor is not pulled
// again. If src ends earlier, Take ends at the same point.
func Take[T any](n uint, src core.Source[T]) core.Source[T] {
	return takeSource[T]{n: n, src: src}
}

func (s takeSource[T]) Iter() core.Sequence[T] {
	return core.Stable[T](&takeSequence[T]{
		inner:     core.Iter(s.src),
		remaining: s.n,
	})
}

type takeSequence[T any] struct {
	inner     core.Sequence[T]
	remaining uint
}

func (t *takeSequence[T]) Next() core.Result[T] {
	if t.remaining == 0 {
		return core.End[T]()
	}
	res := t.inner.Next()
	if res.IsValue() {
		t.remaining--
	}
	return res
}

func (t *takeSequence[T]) Close() {
	t.inner.Close()
}

type skipSource[T any] struct {
	n   uint
	src core.Source[T]
}

// Skip creates a Source that drops the first n elements of src.
// The elements are discarded eagerly when a cursor is minted, not on its
// first pull. If src ends during the discard, the cursor is exhausted
// from the start; an error met during the discard is reported by the
// first pull.
func Skip[T any](n uint, src core.Source[T]) core.Source[T] {
	return skipSource[T]{n: n, src: src}
}

func (s skipSource[T]) Iter() core.Sequence[T] {
	inner := core.Iter(s.src)
	for i := uint(0); i < s.n; i++ {
		res := inner.Next()
		if res.IsExhausted() {
			inner.Close()
			return core.Exhausted[T]{}
		}
		if res.IsError() {
			inner.Close()
			return core.Failed(res)
		}
	}
	return inner
}
