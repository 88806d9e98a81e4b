// Package observe provides decorators that report what the cursors of a
// source do, through typed hooks or OpenTelemetry metrics, without
// changing the values they produce.
package observe

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/lguimbarda/min-lazy/lazy/core"
)

type tapSource[T any] struct {
	src   core.Source[T]
	hooks core.Hooks[T]
}

// Tap creates a Source whose cursors behave like those of src and report
// every mint, pull and release to hooks. Several hook sets run in FIFO
// order.
func Tap[T any](src core.Source[T], hooks ...core.Hooks[T]) core.Source[T] {
	return tapSource[T]{src: src, hooks: core.Compose(hooks...)}
}

func (s tapSource[T]) Iter() core.Sequence[T] {
	return core.Hooked(core.Iter(s.src), s.hooks)
}

// Counts holds the pull statistics gathered by Count.
type Counts struct {
	Mints     int64
	Values    int64
	Errors    int64
	Exhausted int64
	Closes    int64
}

// Count creates a Source that tallies the activity of the cursors of src
// into c. The tally is not synchronised, matching the single-threaded use
// of cursors.
func Count[T any](src core.Source[T], c *Counts) core.Source[T] {
	return Tap(src, core.Hooks[T]{
		OnStart:     func() { c.Mints++ },
		OnValue:     func(T) { c.Values++ },
		OnError:     func(error) { c.Errors++ },
		OnExhausted: func() { c.Exhausted++ },
		OnClose:     func() { c.Closes++ },
	})
}

// Metric names recorded by Instrument.
const (
	MetricMints     = "lazy.mints"
	MetricValues    = "lazy.values"
	MetricErrors    = "lazy.errors"
	MetricExhausted = "lazy.exhausted"
)

// AttrSequence is the attribute key naming the instrumented sequence.
const AttrSequence = "sequence"

// Instrument creates a Source whose cursors record OpenTelemetry counters
// on meter: one increment per mint, value, error and exhaustion, each
// tagged with the sequence name. Counter creation errors are returned
// before any cursor exists.
func Instrument[T any](src core.Source[T], meter metric.Meter, name string) (core.Source[T], error) {
	mints, err := meter.Int64Counter(MetricMints, metric.WithDescription("cursors minted"))
	if err != nil {
		return nil, fmt.Errorf("instrument %s: %w", name, err)
	}
	values, err := meter.Int64Counter(MetricValues, metric.WithDescription("values pulled"))
	if err != nil {
		return nil, fmt.Errorf("instrument %s: %w", name, err)
	}
	errs, err := meter.Int64Counter(MetricErrors, metric.WithDescription("error results pulled"))
	if err != nil {
		return nil, fmt.Errorf("instrument %s: %w", name, err)
	}
	exhausted, err := meter.Int64Counter(MetricExhausted, metric.WithDescription("cursors that reached their end"))
	if err != nil {
		return nil, fmt.Errorf("instrument %s: %w", name, err)
	}

	// Pulls carry no context; the counters are recorded against the
	// background one.
	ctx := context.Background()
	attrs := metric.WithAttributes(attribute.String(AttrSequence, name))

	return Tap(src, core.Hooks[T]{
		OnStart:     func() { mints.Add(ctx, 1, attrs) },
		OnValue:     func(T) { values.Add(ctx, 1, attrs) },
		OnError:     func(error) { errs.Add(ctx, 1, attrs) },
		OnExhausted: func() { exhausted.Add(ctx, 1, attrs) },
	}), nil
}
