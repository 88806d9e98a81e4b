// Package aggregate provides running folds over sequences.
package aggregate

import (
	"github.com/lguimbarda/min-lazy/lazy/core"
)

// Accumulate creates a Source of running sums of src: the first element
// as-is, then the sum of the first two, the first three, and so on.
// There is no seed; an empty src gives an empty result.
func Accumulate[T core.Addable](src core.Source[T]) core.Source[T] {
	return AccumulateFunc(src, func(acc, item T) T { return acc + item })
}

type accumulateSource[T any] struct {
	src core.Source[T]
	op  func(acc, item T) T
}

// AccumulateFunc creates a Source of running folds of src under op.
// The first element becomes the accumulator unchanged; each later element
// is folded in with op and the new accumulator is emitted. Panics in op
// are not recovered.
func AccumulateFunc[T any](src core.Source[T], op func(acc, item T) T) core.Source[T] {
	return accumulateSource[T]{src: src, op: op}
}

func (s accumulateSource[T]) Iter() core.Sequence[T] {
	return core.Stable[T](&accumulateSequence[T]{
		inner: core.Iter(s.src),
		op:    s.op,
	})
}

type accumulateSequence[T any] struct {
	inner   core.Sequence[T]
	op      func(acc, item T) T
	acc     T
	started bool // acc is valid only once started
}

func (a *accumulateSequence[T]) Next() core.Result[T] {
	res := a.inner.Next()
	if res.Done() {
		return res
	}

	if !a.started {
		a.acc = res.Value()
		a.started = true
	} else {
		a.acc = a.op(a.acc, res.Value())
	}
	return core.Ok(a.acc)
}

func (a *accumulateSequence[T]) Close() {
	a.inner.Close()
}
