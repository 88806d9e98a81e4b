package combine

import (
	"fmt"

	"github.com/eapache/queue"

	"github.com/lguimbarda/min-lazy/lazy/core"
)

// Row is a finite source over values materialised once. Every cursor
// replays the same values from the start; cursors read the shared buffer
// by index and never consume it.
type Row[T any] struct {
	buf *queue.Queue // filled once at construction, then read by index only
}

// NewRow creates a Row over the given values.
func NewRow[T any](values ...T) *Row[T] {
	r := &Row[T]{buf: queue.New()}
	for _, v := range values {
		r.buf.Add(v)
	}
	return r
}

// Len returns the number of values in the row.
func (r *Row[T]) Len() int {
	return r.buf.Length()
}

// Values returns a copy of the row's values.
func (r *Row[T]) Values() []T {
	out := make([]T, r.buf.Length())
	for i := range out {
		out[i] = r.buf.Get(i).(T)
	}
	return out
}

// Iter implements core.Source.
func (r *Row[T]) Iter() core.Sequence[T] {
	return core.Stable[T](&rowSequence[T]{row: r})
}

type rowSequence[T any] struct {
	row *Row[T]
	pos int
}

func (s *rowSequence[T]) Next() core.Result[T] {
	if s.pos >= s.row.buf.Length() {
		return core.End[T]()
	}
	s.pos++
	return core.Ok(s.row.buf.Get(s.pos - 1).(T))
}

func (s *rowSequence[T]) Close() {}

// unbounded disables the row limit of a multiplication table.
const unbounded = -1

type multabSource[T core.Number] struct {
	i, j  core.Source[T]
	limit int
}

// Multab creates the multiplication table of i and j: for every element x
// of i it yields a Row holding x*y for every element y of j, in order.
//
// Each row mints a fresh cursor over j and drains it, so j must be finite;
// with an infinite j the first pull never returns. i may be infinite.
// The table never yields an empty row: an i without elements, or an empty
// j, ends the table at once.
func Multab[T core.Number](i, j core.Source[T]) core.Source[core.Source[T]] {
	return multabSource[T]{i: i, j: j, limit: unbounded}
}

// MultabBounded is Multab with the finiteness of j checked: a row that
// would hold more than limit values ends the table with an error wrapping
// core.ErrRowLimit instead of draining j forever.
func MultabBounded[T core.Number](limit int, i, j core.Source[T]) core.Source[core.Source[T]] {
	if limit < 0 {
		limit = 0
	}
	return multabSource[T]{i: i, j: j, limit: limit}
}

func (s multabSource[T]) Iter() core.Sequence[core.Source[T]] {
	return core.Stable[core.Source[T]](&multabSequence[T]{
		rows:  core.Iter(s.i),
		cols:  s.j,
		limit: s.limit,
	})
}

type multabSequence[T core.Number] struct {
	rows  core.Sequence[T]
	cols  core.Source[T]
	limit int
}

func (m *multabSequence[T]) Next() core.Result[core.Source[T]] {
	res := m.rows.Next()
	if res.Done() {
		return core.Forward[core.Source[T]](res)
	}
	x := res.Value()

	row, err := m.row(x)
	if err != nil {
		return core.Err[core.Source[T]](err)
	}
	if row.Len() == 0 {
		return core.End[core.Source[T]]()
	}
	return core.Ok[core.Source[T]](row)
}

// row drains a fresh cursor over the columns into a Row scaled by x.
func (m *multabSequence[T]) row(x T) (*Row[T], error) {
	cols := core.Iter(m.cols)
	defer cols.Close()

	r := &Row[T]{buf: queue.New()}
	for {
		res := cols.Next()
		switch {
		case res.IsExhausted():
			return r, nil
		case res.IsError():
			return nil, fmt.Errorf("multab: row %v: %w", x, res.Error())
		case m.limit != unbounded && r.buf.Length() >= m.limit:
			return nil, fmt.Errorf("multab: row %v: %w (limit %d)", x, core.ErrRowLimit, m.limit)
		}
		r.buf.Add(x * res.Value())
	}
}

func (m *multabSequence[T]) Close() {
	m.rows.Close()
}
