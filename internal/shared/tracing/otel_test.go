package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestSampleRatioClamps(t *testing.T) {
	cases := map[string]float64{"": 0.1, "abc": 0.1, "-1": 0, "2": 1, "0.5": 0.5}
	for raw, want := range cases {
		t.Setenv("OTEL_SAMPLER_RATIO", raw)
		assert.Equal(t, want, sampleRatio(), raw)
	}
}

func TestHeadersParsing(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "api-key=abc, broken ,x= ,team=core")
	assert.Equal(t, map[string]string{"api-key": "abc", "team": "core"}, headers())

	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")
	assert.Nil(t, headers())
}

func TestTraceID(t *testing.T) {
	assert.Empty(t, TraceID(context.Background()))

	tp := sdktrace.NewTracerProvider(sdktrace.WithSampler(sdktrace.AlwaysSample()))
	defer tp.Shutdown(context.Background())
	ctx, span := tp.Tracer("test").Start(context.Background(), "op")
	defer span.End()
	assert.Len(t, TraceID(ctx), 32)
}

func TestInitDisabledIsNoop(t *testing.T) {
	t.Setenv("OTEL_ENABLED", "")
	stop := Init(context.Background(), Config{ServiceName: "fedventura"})
	assert.NoError(t, stop(context.Background()))
}
