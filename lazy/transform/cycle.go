// Package transform provides combinators that reshape a single sequence
// without changing its element type.
package transform

import (
	"fmt"

	"github.com/lguimbarda/min-lazy/lazy/core"
)

type cycleSource[T any] struct {
	src core.Source[T]
}

// Cycle creates a Source that repeats src forever: whenever the current
// pass over src ends, a fresh cursor is minted and the pull is retried.
//
// Minting a Cycle cursor probes src with a throwaway cursor. An empty src
// gives a cursor that is exhausted from the start. A src that is not empty
// at mint time but yields nothing on a later pass is reported with an
// error wrapping core.ErrSourceDrained, which ends the cursor.
func Cycle[T any](src core.Source[T]) core.Source[T] {
	return cycleSource[T]{src: src}
}

func (s cycleSource[T]) Iter() core.Sequence[T] {
	probe := core.Iter(s.src)
	first := probe.Next()
	probe.Close()

	switch {
	case first.IsExhausted():
		return core.Exhausted[T]{}
	case first.IsError():
		return core.Failed(first)
	}

	return core.Stable[T](&cycleSequence[T]{
		src:     s.src,
		current: core.Iter(s.src),
	})
}

type cycleSequence[T any] struct {
	src     core.Source[T]
	current core.Sequence[T]
	passes  int
}

func (c *cycleSequence[T]) Next() core.Result[T] {
	res := c.current.Next()
	if !res.IsExhausted() {
		return res
	}

	c.current.Close()
	c.current = core.Iter(c.src)
	c.passes++

	res = c.current.Next()
	if res.IsExhausted() {
		return core.Err[T](fmt.Errorf("cycle: pass %d: %w", c.passes+1, core.ErrSourceDrained))
	}
	return res
}

func (c *cycleSequence[T]) Close() {
	c.current.Close()
}
