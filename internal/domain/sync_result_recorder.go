package domain

import (
	"context"
	"time"
)

type SyncResultRecord struct {
	SyncedAt         time.Time
	Reason           string
	Outcome          string
	PendingCount     int
	CancelledCount   int
	ScheduledCount   int
	SkippedCount     int
	FailedCount      int
	PermissionDenied bool
	Duration         time.Duration
}

type SyncResultRecorder interface {
	RecordSync(ctx context.Context, record SyncResultRecord) error
	Flush(ctx context.Context) error
	Close() error
}
