package combine

import (
	"github.com/lguimbarda/min-lazy/lazy/core"
)

type flattenSource[T any] struct {
	src core.Source[core.Source[T]]
}

// Flatten creates a Source that yields every element of every source
// produced by src, in order. Empty inner sources are skipped; the result
// ends when src ends.
func Flatten[T any](src core.Source[core.Source[T]]) core.Source[T] {
	return flattenSource[T]{src: src}
}

func (s flattenSource[T]) Iter() core.Sequence[T] {
	return core.Stable[T](&flattenSequence[T]{outer: core.Iter(s.src)})
}

type flattenSequence[T any] struct {
	outer core.Sequence[core.Source[T]]
	inner core.Sequence[T] // nil between inner sources
}

func (f *flattenSequence[T]) Next() core.Result[T] {
	for {
		if f.inner != nil {
			res := f.inner.Next()
			if !res.IsExhausted() {
				return res
			}
			f.inner.Close()
			f.inner = nil
		}

		next := f.outer.Next()
		if next.Done() {
			return core.Forward[T](next)
		}
		f.inner = core.Iter(next.Value())
	}
}

func (f *flattenSequence[T]) Close() {
	if f.inner != nil {
		f.inner.Close()
		f.inner = nil
	}
	f.outer.Close()
}
