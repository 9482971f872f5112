package otel

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func recorded(t *testing.T) (*otelImpl, *tracetest.SpanRecorder) {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	provider := trace.NewTracerProvider(trace.WithSpanProcessor(recorder))

	return &otelImpl{TracerProvider: provider}, recorder
}

func TestScope_TraceIfErrorSeesTheReturnedError(t *testing.T) {
	o, recorder := recorded(t)

	extend := func(ctx context.Context) (err error) {
		_, scope := o.NewScope(ctx, "service", "service.extension.Extend")
		defer scope.End()
		defer scope.TraceIfError(&err)

		return errors.New("reservation not found")
	}

	require.Error(t, extend(context.Background()))

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "service.extension.Extend", spans[0].Name())
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "reservation not found", spans[0].Status().Description)
}

func TestScope_SetAttribute(t *testing.T) {
	o, recorder := recorded(t)

	_, scope := o.NewScope(context.Background(), "scheduler", "scheduler.Sweep")
	scope.SetAttributes(map[string]any{
		"sweep.properties": 3,
		"sweep.enabled":    true,
		"property.id":      "p-1",
	})
	scope.TraceIfError(nil)
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Unset, spans[0].Status().Code)

	attrs := map[string]string{}
	for _, kv := range spans[0].Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}

	assert.Equal(t, "3", attrs["sweep.properties"])
	assert.Equal(t, "true", attrs["sweep.enabled"])
	assert.Equal(t, "p-1", attrs["property.id"])
}
