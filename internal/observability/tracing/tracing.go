// Package tracing provides the OpenTelemetry tracer and the HTTP middleware
// that opens a span per request.
package tracing

import (
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"news-api/internal/handler/http/pathutil"
	"news-api/internal/handler/http/responsewriter"
)

const tracerName = "news-api"

// Tracer returns the tracer for this service.
func Tracer() trace.Tracer {
	return otel.Tracer(tracerName)
}

// Middleware opens a span for each request, names it after the normalized
// route and exposes the trace ID to clients in the X-Trace-Id header.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := pathutil.NormalizePath(r.URL.Path)

		ctx, span := Tracer().Start(r.Context(), r.Method+" "+route,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.method", r.Method),
				attribute.String("http.target", r.URL.Path),
				attribute.String("http.route", route),
			),
		)
		defer span.End()

		if span.SpanContext().HasTraceID() {
			w.Header().Set("X-Trace-Id", span.SpanContext().TraceID().String())
		}

		wrapped := responsewriter.Wrap(w)
		next.ServeHTTP(wrapped, r.WithContext(ctx))

		span.SetAttributes(attribute.Int("http.status_code", wrapped.StatusCode()))
		if wrapped.StatusCode() >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, http.StatusText(wrapped.StatusCode()))
		}
	})
}
