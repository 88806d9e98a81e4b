package combine_test

import (
	"errors"
	"testing"

	"github.com/lguimbarda/min-lazy/lazy"
	"github.com/lguimbarda/min-lazy/lazy/combine"
	"github.com/lguimbarda/min-lazy/lazy/core"
	"github.com/lguimbarda/min-lazy/lazy/filter"
	"github.com/lguimbarda/min-lazy/lazy/internal/lazytest"
)

func TestMultab_Rows(t *testing.T) {
	table := combine.Multab(lazy.FromSlice(1, 2, 3), lazy.FromSlice(1, 10, 100))

	rows := lazytest.Prefix(t, table, -1)
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}

	want := [][]int{{1, 10, 100}, {2, 20, 200}, {3, 30, 300}}
	for i, row := range rows {
		lazytest.Equal(t, lazytest.Prefix(t, row, -1), want[i])
		// Rows are materialised: a second cursor replays the same values.
		lazytest.Equal(t, lazytest.Prefix(t, row, -1), want[i])
	}
}

func TestMultab_Flattened(t *testing.T) {
	table := combine.Flatten(combine.Multab(lazy.Count(1.0, 1.0), filter.Take(3, lazy.Count(0.5, 0.5))))

	got := lazytest.Prefix(t, table, 9)
	lazytest.Equal(t, got, []float64{0.5, 1, 1.5, 1, 2, 3, 1.5, 3, 4.5})
}

func TestMultab_EdgeCases(t *testing.T) {
	tests := []struct {
		name string
		i, j lazy.Source[int]
		want []int
	}{
		{
			name: "empty first sequence",
			i:    lazy.Empty[int](),
			j:    lazy.FromSlice(1, 2),
			want: []int{},
		},
		{
			name: "empty second sequence",
			i:    lazy.FromSlice(1, 2),
			j:    lazy.Empty[int](),
			want: []int{},
		},
		{
			name: "single cell",
			i:    lazy.FromSlice(6),
			j:    lazy.FromSlice(7),
			want: []int{42},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lazytest.Prefix(t, combine.Flatten(combine.Multab(tt.i, tt.j)), -1)
			lazytest.Equal(t, got, tt.want)
		})
	}
}

func TestMultab_EmptyFirstEndsAtOnce(t *testing.T) {
	seq := core.Iter(combine.Multab(lazy.Empty[int](), lazy.FromSlice(1)))
	lazytest.Exhausted(t, seq, 3)
}

func TestMultab_EmptySecondEndsAtOnce(t *testing.T) {
	rows := core.Iter(combine.Multab(lazy.Count(1, 1), lazy.Empty[int]()))
	lazytest.Exhausted(t, rows, 3)

	flat := core.Iter(combine.Flatten(combine.Multab(lazy.Count(1, 1), lazy.Empty[int]())))
	lazytest.Exhausted(t, flat, 3)

	got, err := lazy.Slice(combine.Multab(lazy.Count(1, 1), lazy.Empty[int]()), 5)
	if err != nil || len(got) != 0 {
		t.Errorf("Slice() = (%d rows, %v), want (0 rows, nil)", len(got), err)
	}
}

func TestMultab_RemintsColumns(t *testing.T) {
	cols := &lazytest.Spy[int]{Items: []int{1, 2}}
	got := lazytest.Prefix(t, combine.Flatten(combine.Multab[int](lazy.FromSlice(3, 4, 5), cols)), -1)

	lazytest.Equal(t, got, []int{3, 6, 4, 8, 5, 10})
	if cols.Mints != 3 {
		t.Errorf("columns minted %d times, want 3", cols.Mints)
	}
	if cols.Closes != 3 {
		t.Errorf("columns closed %d times, want 3", cols.Closes)
	}
}

func TestMultabBounded(t *testing.T) {
	t.Run("finite columns within limit", func(t *testing.T) {
		got := lazytest.Prefix(t, combine.Flatten(combine.MultabBounded(3, lazy.FromSlice(2), lazy.FromSlice(1, 2, 3))), -1)
		lazytest.Equal(t, got, []int{2, 4, 6})
	})

	t.Run("infinite columns are reported", func(t *testing.T) {
		table := combine.MultabBounded(100, lazy.Count(1, 1), lazy.Repeat(1))
		_, err := lazy.Slice(table, 1)
		if !errors.Is(err, core.ErrRowLimit) {
			t.Fatalf("error = %v, want ErrRowLimit", err)
		}
	})

	t.Run("error ends the table", func(t *testing.T) {
		seq := core.Iter(combine.MultabBounded(2, lazy.FromSlice(1, 2), lazy.FromSlice(1, 2, 3)))
		if res := seq.Next(); !errors.Is(res.Error(), core.ErrRowLimit) {
			t.Fatalf("first pull = %v, want ErrRowLimit", res)
		}
		lazytest.Exhausted(t, seq, 2)
	})
}

func TestMultab_PropagatesColumnError(t *testing.T) {
	boom := errors.New("boom")
	failing := core.SourceFunc[int](func() core.Sequence[int] {
		return core.SequenceFunc[int](func() core.Result[int] { return core.Err[int](boom) })
	})

	_, err := lazy.Slice(combine.Multab[int](lazy.FromSlice(1), failing), -1)
	if !errors.Is(err, boom) {
		t.Errorf("error = %v, want boom", err)
	}
}

func TestMultab_Independent(t *testing.T) {
	table := combine.Flatten(combine.Multab(lazy.Count(1, 1), lazy.FromSlice(1, 2, 3)))
	lazytest.Independent(t, table, 10)
}

func TestRow(t *testing.T) {
	row := combine.NewRow("a", "b", "c")

	if row.Len() != 3 {
		t.Errorf("Len() = %d, want 3", row.Len())
	}
	lazytest.Equal(t, row.Values(), []string{"a", "b", "c"})
	lazytest.Independent[string](t, row, 3)
	// Cursors never consume the shared buffer.
	lazytest.Equal(t, row.Values(), []string{"a", "b", "c"})

	lazytest.Equal(t, lazytest.Prefix[string](t, combine.NewRow[string](), -1), []string{})
}
