package tracing

import (
	"context"
	"errors"
	"testing"

	"github.com/andareed/siftly-slideshow/config"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRecorder(t *testing.T) (*Recorder, *tracetest.SpanRecorder) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return NewRecorder(tp), sr
}

func attrs(s sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	out := make(map[attribute.Key]attribute.Value)
	for _, kv := range s.Attributes() {
		out[kv.Key] = kv.Value
	}
	return out
}

func TestNavigation_RecordsSpan(t *testing.T) {
	r, sr := newTestRecorder(t)

	r.Navigation(context.Background(), "advance", 4, 0, 5, nil)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "slideshow.advance", spans[0].Name())
	a := attrs(spans[0])
	assert.Equal(t, int64(5), a["slide.from"].AsInt64())
	assert.Equal(t, int64(1), a["slide.to"].AsInt64())
	assert.Equal(t, int64(5), a["slide.total"].AsInt64())
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
}

func TestNavigation_RecordsError(t *testing.T) {
	r, sr := newTestRecorder(t)

	r.Navigation(context.Background(), "jump", 2, 2, 5, errors.New("out of range"))

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "out of range", spans[0].Status().Description)
	require.Len(t, spans[0].Events(), 1)
	assert.Equal(t, "exception", spans[0].Events()[0].Name)
}

func TestNavigation_NilRecorder(t *testing.T) {
	var r *Recorder
	assert.NotPanics(t, func() {
		r.Navigation(context.Background(), "retreat", 0, 4, 5, nil)
	})
}

func TestSetup_DisabledIsNoop(t *testing.T) {
	cfg := config.NewDefaultConfig().Tracing
	r, shutdown, err := Setup(context.Background(), cfg)
	require.NoError(t, err)
	require.NotNil(t, r)
	r.Navigation(context.Background(), "advance", 0, 1, 5, nil)
	assert.NoError(t, shutdown(context.Background()))
}
