// Package lazytest holds helpers shared by the tests of the lazy packages.
package lazytest

import (
	"testing"

	"github.com/lguimbarda/min-lazy/lazy/core"
)

// Prefix pulls up to n values from a fresh cursor over src and fails the
// test on an error Result.
func Prefix[T any](t testing.TB, src core.Source[T], n int) []T {
	t.Helper()
	got, err := core.Slice(core.Iter(src), n)
	if err != nil {
		t.Fatalf("unexpected error after %v: %v", got, err)
	}
	return got
}

// Equal fails the test unless got and want hold the same elements.
func Equal[T comparable](t testing.TB, got, want []T) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %v, want %v (got %v)", i, got[i], want[i], got)
		}
	}
}

// Exhausted fails the test unless the next pulls of seq all report
// exhaustion.
func Exhausted[T any](t testing.TB, seq core.Sequence[T], pulls int) {
	t.Helper()
	for i := 0; i < pulls; i++ {
		if res := seq.Next(); !res.IsExhausted() {
			t.Fatalf("pull %d = %v, want End", i, res)
		}
	}
}

// Independent mints two cursors from src and interleaves pulls on them
// unevenly, two on the first for each one on the second. Each cursor must
// see the same first n values a lone cursor sees.
func Independent[T comparable](t testing.TB, src core.Source[T], n int) {
	t.Helper()
	want := Prefix(t, src, n)

	a, b := core.Iter(src), core.Iter(src)
	defer a.Close()
	defer b.Close()

	var gotA, gotB []T
	pull := func(seq core.Sequence[T], got *[]T) bool {
		if len(*got) >= len(want) {
			return false
		}
		v, ok := seq.Next().Unwrap()
		if ok {
			*got = append(*got, v)
		}
		return ok
	}
	for {
		progressed := pull(a, &gotA)
		progressed = pull(a, &gotA) || progressed
		progressed = pull(b, &gotB) || progressed
		if !progressed {
			break
		}
	}

	Equal(t, gotA, want)
	Equal(t, gotB, want)
}

// Spy is a Source over a finite list that records its activity.
// Its cursors do not keep a stable end state: after reporting exhaustion
// they start over, so tests can check that the decorators on top latch.
type Spy[T any] struct {
	Items  []T
	Mints  int
	Pulls  int
	Closes int
}

// Iter implements core.Source.
func (s *Spy[T]) Iter() core.Sequence[T] {
	s.Mints++
	return &spyCursor[T]{spy: s}
}

type spyCursor[T any] struct {
	spy *Spy[T]
	pos int
}

func (c *spyCursor[T]) Next() core.Result[T] {
	c.spy.Pulls++
	if c.pos >= len(c.spy.Items) {
		c.pos = 0
		return core.End[T]()
	}
	c.pos++
	return core.Ok(c.spy.Items[c.pos-1])
}

func (c *spyCursor[T]) Close() { c.spy.Closes++ }
