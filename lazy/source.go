package lazy

import (
	"github.com/lguimbarda/min-lazy/lazy/core"
)

type repeatSource[T any] struct {
	value T
}

// Repeat creates a Source whose cursors yield value forever.
func Repeat[T any](value T) Source[T] {
	return repeatSource[T]{value: value}
}

func (s repeatSource[T]) Iter() Sequence[T] {
	return core.Stable[T](&repeatSequence[T]{value: s.value})
}

type repeatSequence[T any] struct {
	value T
}

func (r *repeatSequence[T]) Next() Result[T] {
	return core.Ok(r.value)
}

func (r *repeatSequence[T]) Close() {}

type countSource[T core.Addable] struct {
	start, delta T
}

// Count creates a Source whose cursors yield start, start+delta,
// start+2*delta, ... forever. Every cursor begins at start.
func Count[T core.Addable](start, delta T) Source[T] {
	return countSource[T]{start: start, delta: delta}
}

func (s countSource[T]) Iter() Sequence[T] {
	return core.Stable[T](&countSequence[T]{current: s.start, delta: s.delta})
}

type countSequence[T core.Addable] struct {
	current, delta T
}

func (c *countSequence[T]) Next() Result[T] {
	v := c.current
	c.current += c.delta
	return core.Ok(v)
}

func (c *countSequence[T]) Close() {}

type sliceSource[T any] struct {
	items []T
}

// FromSlice creates a finite Source over the given values.
// The values are copied, so later changes to the argument are not seen.
func FromSlice[T any](items ...T) Source[T] {
	return sliceSource[T]{items: append([]T(nil), items...)}
}

func (s sliceSource[T]) Iter() Sequence[T] {
	return core.Stable[T](&sliceSequence[T]{items: s.items})
}

type sliceSequence[T any] struct {
	items []T
	pos   int
}

func (s *sliceSequence[T]) Next() Result[T] {
	if s.pos >= len(s.items) {
		return core.End[T]()
	}
	s.pos++
	return core.Ok(s.items[s.pos-1])
}

func (s *sliceSequence[T]) Close() {
	s.items = nil
}

// Empty creates a Source whose cursors are exhausted from the start.
func Empty[T any]() Source[T] {
	return core.SourceFunc[T](func() Sequence[T] {
		return core.Exhausted[T]{}
	})
}

// Func creates a Source from a generator factory. Each mint calls factory
// to obtain a fresh generator; the generator returns the next value and
// true, or false once it is done. Panics in the generator are not
// recovered.
func Func[T any](factory func() func() (T, bool)) Source[T] {
	return core.SourceFunc[T](func() Sequence[T] {
		gen := factory()
		return core.Stable[T](core.SequenceFunc[T](func() Result[T] {
			v, ok := gen()
			if !ok {
				return core.End[T]()
			}
			return core.Ok(v)
		}))
	})
}
