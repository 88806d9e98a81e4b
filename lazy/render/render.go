// Package render holds the consumer loop of the library: it pulls a
// bounded prefix of a sequence and writes it out.
//
// Renderers read their settings from the context (see Config) and always
// close the cursor they are given.
package render

import (
	"context"
	"fmt"

	"github.com/lguimbarda/min-lazy/lazy/core"
)

// Config controls how much of a sequence is rendered and how.
// Attach it with core.WithConfig(ctx, &render.Config{...}).
type Config struct {
	// Limit is the number of values shown before the truncation marker.
	// A negative limit shows every value, which never returns for an
	// infinite sequence.
	Limit int

	// Separator follows every rendered value and the marker.
	Separator string

	// Marker is written in place of the values past Limit.
	Marker string

	// Format turns a value into text. nil means fmt.Sprint.
	Format func(any) string
}

// DefaultLimit is the number of values shown when no Config is attached.
const DefaultLimit = 7

// DefaultConfig returns the settings used when the context carries none:
// seven values separated by spaces, then "...".
func DefaultConfig() *Config {
	return &Config{
		Limit:     DefaultLimit,
		Separator: " ",
		Marker:    "...",
	}
}

func configFrom(ctx context.Context) *Config {
	cfg := core.ConfigOr(ctx, DefaultConfig())
	if cfg == nil {
		return DefaultConfig()
	}
	return cfg
}

func (c *Config) format(v any) string {
	if c.Format == nil {
		return fmt.Sprint(v)
	}
	return c.Format(v)
}

// prefix pulls from seq under the limit of cfg, calling emit for every
// value shown. It reports whether the limit cut the sequence short.
// Exactly one value past the limit is pulled to tell a sequence that ends
// at the limit from one that goes on.
func prefix[T any](cfg *Config, seq core.Sequence[T], emit func(T) error) (truncated bool, err error) {
	defer seq.Close()

	remaining := cfg.Limit
	for {
		res := seq.Next()
		switch {
		case res.IsError():
			return false, res.Error()
		case res.IsExhausted():
			return false, nil
		case remaining == 0:
			return true, nil
		}
		if err := emit(res.Value()); err != nil {
			return false, err
		}
		if remaining > 0 {
			remaining--
		}
	}
}
