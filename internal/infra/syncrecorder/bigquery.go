//go:build gcloud

package syncrecorder

import (
	"context"
	"log/slog"
	"time"

	"cloud.google.com/go/bigquery"

	"github.com/KasumiMercury/primind-medication-sync/internal/domain"
)

type bigQueryRecord struct {
	RecordedAt       time.Time `bigquery:"recorded_at"`
	SyncedAt         time.Time `bigquery:"synced_at"`
	DeviceID         string    `bigquery:"device_id"`
	Reason           string    `bigquery:"reason"`
	Outcome          string    `bigquery:"outcome"`
	PendingCount     int64     `bigquery:"pending_count"`
	CancelledCount   int64     `bigquery:"cancelled_count"`
	ScheduledCount   int64     `bigquery:"scheduled_count"`
	SkippedCount     int64     `bigquery:"skipped_count"`
	FailedCount      int64     `bigquery:"failed_count"`
	PermissionDenied bool      `bigquery:"permission_denied"`
	DurationMs       int64     `bigquery:"duration_ms"`
}

type bigQueryRecorder struct {
	client   *bigquery.Client
	inserter *bigquery.Inserter
	deviceID string
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.SyncResultRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "sync result recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.BigQueryProjectID == "" {
		slog.WarnContext(ctx, "BigQuery project ID not configured, sync result recording disabled")
		return NewNoopRecorder(), nil
	}

	client, err := bigquery.NewClient(ctx, cfg.BigQueryProjectID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create BigQuery client, sync result recording disabled",
			slog.String("error", err.Error()),
			slog.String("project_id", cfg.BigQueryProjectID),
		)
		return NewNoopRecorder(), nil
	}

	inserter := client.Dataset(cfg.BigQueryDataset).Table(cfg.BigQueryTable).Inserter()

	slog.InfoContext(ctx, "sync result recorder initialized",
		slog.String("type", "bigquery"),
		slog.String("project_id", cfg.BigQueryProjectID),
		slog.String("dataset", cfg.BigQueryDataset),
		slog.String("table", cfg.BigQueryTable),
	)

	return &bigQueryRecorder{
		client:   client,
		inserter: inserter,
		deviceID: cfg.DeviceID,
	}, nil
}

func (r *bigQueryRecorder) RecordSync(ctx context.Context, record domain.SyncResultRecord) error {
	row := &bigQueryRecord{
		RecordedAt:       time.Now(),
		SyncedAt:         record.SyncedAt,
		DeviceID:         r.deviceID,
		Reason:           record.Reason,
		Outcome:          record.Outcome,
		PendingCount:     int64(record.PendingCount),
		CancelledCount:   int64(record.CancelledCount),
		ScheduledCount:   int64(record.ScheduledCount),
		SkippedCount:     int64(record.SkippedCount),
		FailedCount:      int64(record.FailedCount),
		PermissionDenied: record.PermissionDenied,
		DurationMs:       record.Duration.Milliseconds(),
	}

	if err := r.inserter.Put(ctx, row); err != nil {
		slog.WarnContext(ctx, "failed to insert sync result to BigQuery",
			slog.String("error", err.Error()),
			slog.String("reason", record.Reason),
		)
	}

	return nil
}

func (r *bigQueryRecorder) Flush(ctx context.Context) error {
	return nil
}

func (r *bigQueryRecorder) Close() error {
	if r.client != nil {
		return r.client.Close()
	}
	return nil
}
