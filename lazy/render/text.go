package render

import (
	"bufio"
	"context"
	"io"

	"github.com/lguimbarda/min-lazy/lazy/core"
)

// Text writes the values of seq to w, each followed by the separator. If
// the limit stops the output early the marker is written as well. The
// line always ends with a newline, also when seq fails; the failure is
// returned after the line is written.
//
// With the default settings Take(3, Count(1, 2)) renders as "1 3 5 \n"
// and Repeat(1) as "1 1 1 1 1 1 1 ... \n".
func Text[T any](ctx context.Context, w io.Writer, seq core.Sequence[T]) error {
	cfg := configFrom(ctx)
	bw := bufio.NewWriter(w)

	truncated, seqErr := prefix(cfg, seq, func(v T) error {
		_, err := bw.WriteString(cfg.format(v) + cfg.Separator)
		return err
	})
	if truncated {
		if _, err := bw.WriteString(cfg.Marker + cfg.Separator); err != nil {
			return err
		}
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	return seqErr
}

// Source mints a cursor over src and renders it with Text.
func Source[T any](ctx context.Context, w io.Writer, src core.Source[T]) error {
	return Text(ctx, w, core.Iter(src))
}
