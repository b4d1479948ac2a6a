// Package tracing records one span per navigation action. Spans are exported
// over OTLP/HTTP when an endpoint is configured and dropped otherwise.
package tracing

import (
	"context"
	"fmt"

	"github.com/andareed/siftly-slideshow/config"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const instrumentationName = "siftly-slideshow/navigation"

// Recorder turns navigation actions into spans. A nil Recorder records nothing.
type Recorder struct {
	tracer trace.Tracer
}

func NewRecorder(tp trace.TracerProvider) *Recorder {
	return &Recorder{tracer: tp.Tracer(instrumentationName)}
}

// Setup builds a Recorder from cfg. The returned shutdown flushes pending
// spans and must be called before exit.
func Setup(ctx context.Context, cfg config.TracingConfig) (*Recorder, func(context.Context) error, error) {
	if !cfg.Enabled() {
		return NewRecorder(noop.NewTracerProvider()), func(context.Context) error { return nil }, nil
	}

	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(cfg.Endpoint)}
	if cfg.Insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("otlp exporter: %w", err)
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(cfg.ServiceName),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	return NewRecorder(provider), provider.Shutdown, nil
}

// Navigation records a completed action. from and to are zero-based cursor
// values; err is the jump error, if any.
func (r *Recorder) Navigation(ctx context.Context, action string, from, to, total int, err error) {
	if r == nil {
		return
	}
	_, span := r.tracer.Start(ctx, "slideshow."+action,
		trace.WithAttributes(
			attribute.Int("slide.from", from+1),
			attribute.Int("slide.to", to+1),
			attribute.Int("slide.total", total),
		),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
