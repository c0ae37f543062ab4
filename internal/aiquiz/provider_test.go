package aiquiz_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/saulo-duarte/quizdeck/internal/aiquiz/fakeservice"
	"github.com/saulo-duarte/quizdeck/internal/quiz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func TestProviderTracing(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec)))
	otel.SetTextMapPropagator(propagation.TraceContext{})
	ctx := context.Background()

	t.Run("PropagatesTraceContext", func(t *testing.T) {
		svc, h := newService(t, fakeservice.Options{})
		var traceparent string
		h.Override(func(w http.ResponseWriter, r *http.Request) bool {
			traceparent = r.Header.Get("traceparent")
			return false
		})

		_, err := svc.GenerateQuestions(ctx, testNotes, quiz.KindMCQ, 2)
		require.NoError(t, err)

		spans := rec.Ended()
		require.NotEmpty(t, spans)
		span := spans[len(spans)-1]
		assert.Equal(t, "quizservice POST /generate", span.Name())
		assert.Equal(t, trace.SpanKindClient, span.SpanKind())
		assert.Equal(t, codes.Unset, span.Status().Code)
		assert.Contains(t, traceparent, span.SpanContext().TraceID().String())
	})

	t.Run("MarksFailedRequests", func(t *testing.T) {
		svc, h := newService(t, fakeservice.Options{})
		h.Override(func(w http.ResponseWriter, r *http.Request) bool {
			w.WriteHeader(http.StatusBadGateway)
			return true
		})

		_, err := svc.GenerateQuestions(ctx, testNotes, quiz.KindMCQ, 2)
		require.Error(t, err)

		spans := rec.Ended()
		require.NotEmpty(t, spans)
		span := spans[len(spans)-1]
		assert.Equal(t, codes.Error, span.Status().Code)
		assert.Equal(t, "service", span.Status().Description)
	})
}
