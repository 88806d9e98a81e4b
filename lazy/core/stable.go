package core

// stable latches the end state of the cursor it wraps: after the first
// exhaustion or error it releases the inner cursor and keeps reporting
// exhaustion.
type stable[T any] struct {
	inner Sequence[T]
	done  bool
}

// Stable wraps seq so that it honours the stable end state regardless of
// how seq itself behaves. Wrapping an already stable cursor returns it
// unchanged.
func Stable[T any](seq Sequence[T]) Sequence[T] {
	if s, ok := seq.(*stable[T]); ok {
		return s
	}
	return &stable[T]{inner: seq}
}

func (s *stable[T]) Next() Result[T] {
	if s.done {
		return End[T]()
	}
	res := s.inner.Next()
	if res.Done() {
		s.finish()
	}
	return res
}

func (s *stable[T]) Close() {
	if !s.done {
		s.finish()
	}
}

func (s *stable[T]) finish() {
	s.done = true
	s.inner.Close()
}

// Exhausted is a cursor that never yields.
type Exhausted[T any] struct{}

// Next implements Sequence.
func (Exhausted[T]) Next() Result[T] { return End[T]() }

// Close implements Sequence.
func (Exhausted[T]) Close() {}

// Failed returns a cursor whose first pull reports res and whose later
// pulls report exhaustion. It is meant for error Results met before a
// cursor could be built.
func Failed[T any](res Result[T]) Sequence[T] {
	return Stable[T](SequenceFunc[T](func() Result[T] {
		return res
	}))
}
