package tracing

import (
	"context"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const syncTracerName = "github.com/KasumiMercury/primind-medication-sync/internal/service/reconcile"

func SyncTracer() trace.Tracer {
	return otel.Tracer(syncTracerName)
}

func StartSyncSpan(ctx context.Context, reason string) (context.Context, trace.Span) {
	return SyncTracer().Start(ctx, "sync.reconcile",
		trace.WithAttributes(
			attribute.String("sync.reason", reason),
		),
	)
}

func StartApplySpan(ctx context.Context, desiredCount int, now time.Time) (context.Context, trace.Span) {
	return SyncTracer().Start(ctx, "sync.apply",
		trace.WithAttributes(
			attribute.Int("apply.desired_count", desiredCount),
			attribute.String("apply.now", now.Format(time.RFC3339)),
		),
	)
}

func StartExternalAPISpan(ctx context.Context, operation, url string) (context.Context, trace.Span) {
	return SyncTracer().Start(ctx, "sync.external_api."+operation,
		trace.WithAttributes(
			attribute.String("url", url),
		),
		trace.WithSpanKind(trace.SpanKindClient),
	)
}

func RecordExternalAPIResult(span trace.Span, statusCode int, err error) {
	if statusCode > 0 {
		span.SetAttributes(attribute.Int("http.status_code", statusCode))
	}
	fail(span, err)
}

func RecordSyncResult(span trace.Span, pendingCount int, coalesced bool, err error) {
	span.SetAttributes(
		attribute.Int("sync.pending_count", pendingCount),
		attribute.Bool("sync.coalesced", coalesced),
	)
	fail(span, err)
}

func RecordApplyResult(span trace.Span, scheduled, skipped, failed, cancelled int, permissionDenied bool, err error) {
	span.SetAttributes(
		attribute.Int("apply.scheduled_count", scheduled),
		attribute.Int("apply.skipped_count", skipped),
		attribute.Int("apply.failed_count", failed),
		attribute.Int("apply.cancelled_count", cancelled),
		attribute.Bool("apply.permission_denied", permissionDenied),
	)
	fail(span, err)
}

func fail(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return
	}
	span.SetStatus(codes.Ok, "")
}

// InjectToHTTPRequest propagates the span context of ctx into the request headers.
func InjectToHTTPRequest(ctx context.Context, req *http.Request) {
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))
}
