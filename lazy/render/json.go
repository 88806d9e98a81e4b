package render

import (
	"context"
	"fmt"
	"io"

	"github.com/tidwall/sjson"

	"github.com/lguimbarda/min-lazy/lazy/core"
)

// emptyDocument is the JSON written for a sequence with no values.
const emptyDocument = `{"values":[],"truncated":false}`

// JSON writes the rendered prefix of seq to w as a single JSON object
// followed by a newline:
//
//	{"values":[1,3,5],"truncated":false}
//
// Values are encoded as JSON natively unless Config.Format is set, in
// which case the formatted strings are written. When seq fails, the
// document gets an "error" field holding the message, is still written,
// and the failure is returned.
func JSON[T any](ctx context.Context, w io.Writer, seq core.Sequence[T]) error {
	cfg := configFrom(ctx)
	doc := emptyDocument

	truncated, seqErr := prefix(cfg, seq, func(v T) error {
		var value any = v
		if cfg.Format != nil {
			value = cfg.Format(v)
		}
		var err error
		doc, err = sjson.Set(doc, "values.-1", value)
		if err != nil {
			return fmt.Errorf("render json: %w", err)
		}
		return nil
	})

	var err error
	if truncated {
		if doc, err = sjson.Set(doc, "truncated", true); err != nil {
			return fmt.Errorf("render json: %w", err)
		}
	}
	if seqErr != nil {
		if doc, err = sjson.Set(doc, "error", seqErr.Error()); err != nil {
			return fmt.Errorf("render json: %w", err)
		}
	}

	if _, err := io.WriteString(w, doc+"\n"); err != nil {
		return err
	}
	return seqErr
}

// JSONSource mints a cursor over src and renders it with JSON.
func JSONSource[T any](ctx context.Context, w io.Writer, src core.Source[T]) error {
	return JSON(ctx, w, core.Iter(src))
}
