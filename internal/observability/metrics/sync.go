package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	syncMeterName = "medication.sync"
)

type SyncMetrics struct {
	syncsTotal       metric.Int64Counter
	alertsTotal      metric.Int64Counter
	syncDuration     metric.Float64Histogram
	pendingFetched   metric.Int64Histogram
	actionsTotal     metric.Int64Counter
	pushRegistration metric.Int64Counter
}

func NewSyncMetrics() (*SyncMetrics, error) {
	meter := otel.Meter(syncMeterName)

	syncsTotal, err := meter.Int64Counter(
		"medication_sync_runs_total",
		metric.WithDescription("Total number of reconciliation triggers by reason and outcome"),
		metric.WithUnit("{sync}"),
	)
	if err != nil {
		return nil, err
	}

	alertsTotal, err := meter.Int64Counter(
		"medication_sync_alerts_total",
		metric.WithDescription("Desired alerts handled by the local alert scheduler"),
		metric.WithUnit("{alert}"),
	)
	if err != nil {
		return nil, err
	}

	syncDuration, err := meter.Float64Histogram(
		"medication_sync_duration_seconds",
		metric.WithDescription("Reconciliation pass duration"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30,
		),
	)
	if err != nil {
		return nil, err
	}

	pendingFetched, err := meter.Int64Histogram(
		"medication_sync_pending_notifications",
		metric.WithDescription("Pending notification instances returned by the backend per sync"),
		metric.WithUnit("{notification}"),
		metric.WithExplicitBucketBoundaries(
			0, 1, 2, 5, 10, 20, 50, 100,
		),
	)
	if err != nil {
		return nil, err
	}

	actionsTotal, err := meter.Int64Counter(
		"medication_action_logs_total",
		metric.WithDescription("Action log submissions by action type and outcome"),
		metric.WithUnit("{action}"),
	)
	if err != nil {
		return nil, err
	}

	pushRegistration, err := meter.Int64Counter(
		"medication_push_registrations_total",
		metric.WithDescription("Push registration attempts by resulting mode"),
		metric.WithUnit("{registration}"),
	)
	if err != nil {
		return nil, err
	}

	return &SyncMetrics{
		syncsTotal:       syncsTotal,
		alertsTotal:      alertsTotal,
		syncDuration:     syncDuration,
		pendingFetched:   pendingFetched,
		actionsTotal:     actionsTotal,
		pushRegistration: pushRegistration,
	}, nil
}

func (m *SyncMetrics) RecordSync(ctx context.Context, reason, outcome string, duration time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("reason", reason),
		attribute.String("outcome", outcome),
	)
	m.syncsTotal.Add(ctx, 1, attrs)
	m.syncDuration.Record(ctx, duration.Seconds(), attrs)
}

func (m *SyncMetrics) RecordPendingFetched(ctx context.Context, count int) {
	m.pendingFetched.Record(ctx, int64(count))
}

// RecordAlert counts one desired alert. skipReason is empty unless outcome is "skipped".
func (m *SyncMetrics) RecordAlert(ctx context.Context, outcome, skipReason string) {
	m.alertsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
		attribute.String("skip_reason", skipReason),
	))
}

func (m *SyncMetrics) RecordAction(ctx context.Context, actionType, outcome string) {
	m.actionsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("action_type", actionType),
		attribute.String("outcome", outcome),
	))
}

func (m *SyncMetrics) RecordPushRegistration(ctx context.Context, mode string) {
	m.pushRegistration.Add(ctx, 1, metric.WithAttributes(
		attribute.String("mode", mode),
	))
}
