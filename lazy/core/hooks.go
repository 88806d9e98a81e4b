package core

// Hooks holds typed observation callbacks for the cursors of a source.
// All fields are optional - nil means no observation for that event.
// Hooks run synchronously inside Next, so they should be fast.
type Hooks[T any] struct {
	OnStart     func()      // Cursor minted
	OnValue     func(T)     // Value pulled
	OnError     func(error) // Error pulled
	OnExhausted func()      // Exhaustion reached (at most once per cursor)
	OnClose     func()      // Cursor released, by Close or on reaching its end
}

// Compose merges hook sets into one. Hooks run in FIFO order: those of
// earlier sets before those of later ones.
func Compose[T any](sets ...Hooks[T]) Hooks[T] {
	var out Hooks[T]
	for _, h := range sets {
		out.OnStart = chain0(out.OnStart, h.OnStart)
		out.OnExhausted = chain0(out.OnExhausted, h.OnExhausted)
		out.OnClose = chain0(out.OnClose, h.OnClose)
		out.OnValue = chain1(out.OnValue, h.OnValue)
		out.OnError = chain1(out.OnError, h.OnError)
	}
	return out
}

func chain0(first, second func()) func() {
	switch {
	case first == nil:
		return second
	case second == nil:
		return first
	}
	return func() {
		first()
		second()
	}
}

func chain1[A any](first, second func(A)) func(A) {
	switch {
	case first == nil:
		return second
	case second == nil:
		return first
	}
	return func(a A) {
		first(a)
		second(a)
	}
}

// SafeHooks wraps every hook of h with panic recovery. Recovered values
// are passed to panicHandler; if panicHandler is nil they are dropped.
func SafeHooks[T any](h Hooks[T], panicHandler func(any)) Hooks[T] {
	if panicHandler == nil {
		panicHandler = func(any) {}
	}
	guard := func() {
		if r := recover(); r != nil {
			panicHandler(r)
		}
	}

	var safe Hooks[T]
	if fn := h.OnStart; fn != nil {
		safe.OnStart = func() { defer guard(); fn() }
	}
	if fn := h.OnValue; fn != nil {
		safe.OnValue = func(v T) { defer guard(); fn(v) }
	}
	if fn := h.OnError; fn != nil {
		safe.OnError = func(err error) { defer guard(); fn(err) }
	}
	if fn := h.OnExhausted; fn != nil {
		safe.OnExhausted = func() { defer guard(); fn() }
	}
	if fn := h.OnClose; fn != nil {
		safe.OnClose = func() { defer guard(); fn() }
	}
	return safe
}

// Hooked wraps seq so that every pull is reported to h. OnStart is
// invoked immediately.
func Hooked[T any](seq Sequence[T], h Hooks[T]) Sequence[T] {
	if h.OnStart != nil {
		h.OnStart()
	}
	return Stable[T](&hooked[T]{inner: seq, hooks: h})
}

type hooked[T any] struct {
	inner  Sequence[T]
	hooks  Hooks[T]
	ended  bool
	closed bool
}

func (s *hooked[T]) Next() Result[T] {
	res := s.inner.Next()
	switch {
	case res.IsValue():
		if s.hooks.OnValue != nil {
			s.hooks.OnValue(res.Value())
		}
	case res.IsError():
		if s.hooks.OnError != nil {
			s.hooks.OnError(res.Error())
		}
	default:
		if !s.ended && s.hooks.OnExhausted != nil {
			s.hooks.OnExhausted()
		}
		s.ended = true
	}
	return res
}

func (s *hooked[T]) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.inner.Close()
	if s.hooks.OnClose != nil {
		s.hooks.OnClose()
	}
}
