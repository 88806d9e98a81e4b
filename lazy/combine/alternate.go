// Package combine provides combinators that build one sequence out of
// several: round-robin interleaving, flattening of nested sources and the
// multiplication table.
package combine

import (
	"github.com/lguimbarda/min-lazy/lazy/core"
)

type alternateSource[T any] struct {
	i, j core.Source[T]
}

// Alternate creates a Source that takes elements from i and j in turn,
// starting with i. When the side whose turn it is has ended, the other
// side is pulled instead and the turns resume from there, so once one side
// ends the rest comes from the other side alone. The result ends when both
// sides have ended. Errors from either side are returned as they are.
func Alternate[T any](i, j core.Source[T]) core.Source[T] {
	return alternateSource[T]{i: i, j: j}
}

func (s alternateSource[T]) Iter() core.Sequence[T] {
	return core.Stable[T](&alternateSequence[T]{
		sides: [2]core.Sequence[T]{core.Iter(s.i), core.Iter(s.j)},
	})
}

type alternateSequence[T any] struct {
	sides [2]core.Sequence[T]
	turn  int
}

func (a *alternateSequence[T]) Next() core.Result[T] {
	due := a.turn
	a.turn = 1 - due

	res := a.sides[due].Next()
	if !res.IsExhausted() {
		return res
	}

	// The due side has ended: fall back to the other one. The turn has
	// already moved to it and is not flipped again.
	return a.sides[1-due].Next()
}

func (a *alternateSequence[T]) Close() {
	a.sides[0].Close()
	a.sides[1].Close()
}
