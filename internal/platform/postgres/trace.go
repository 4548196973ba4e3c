package postgres

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"papertrail/internal/platform/metrics"
)

const tracerName = "papertrail/internal/platform/postgres"

// Query tracks one store query: a span plus a latency observation.
type Query struct {
	name    string
	start   time.Time
	span    trace.Span
	metrics *metrics.Metrics
}

// StartQuery opens a client span named after the query. Finish must be called exactly once.
func StartQuery(ctx context.Context, m *metrics.Metrics, name string, attrs ...attribute.KeyValue) (context.Context, *Query) {
	attrs = append(attrs,
		attribute.String("db.system", "postgresql"),
		attribute.String("db.operation.name", name),
	)
	ctx, span := otel.Tracer(tracerName).Start(ctx, name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attrs...),
	)
	return ctx, &Query{name: name, start: time.Now(), span: span, metrics: m}
}

// Finish records the outcome and ends the span. It returns err unchanged.
func (q *Query) Finish(err error) error {
	if err != nil {
		q.span.RecordError(err)
		q.span.SetStatus(codes.Error, "query failed")
	}
	q.span.End()
	q.metrics.ObserveQuery(q.name, q.start, err)
	return err
}
