package reconcile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/KasumiMercury/primind-medication-sync/internal/domain"
	"github.com/KasumiMercury/primind-medication-sync/internal/infra/backend"
	"github.com/KasumiMercury/primind-medication-sync/internal/observability/metrics"
	"github.com/KasumiMercury/primind-medication-sync/internal/observability/tracing"
	"github.com/KasumiMercury/primind-medication-sync/internal/service/alerting"
)

//go:generate mockgen -source=coordinator.go -destination=mock.go -package=reconcile

var ErrSyncInProgress = errors.New("sync already in progress")

type Reason string

const (
	ReasonForeground       Reason = "foreground"
	ReasonScheduleMutation Reason = "schedule_mutation"
	ReasonInterval         Reason = "interval"
	ReasonDayRollover      Reason = "day_rollover"
	ReasonManual           Reason = "manual"
	ReasonStartup          Reason = "startup"
)

const (
	outcomeSuccess          = "success"
	outcomeCoalesced        = "coalesced"
	outcomeFetchFailed      = "fetch_failed"
	outcomeApplyFailed      = "apply_failed"
	outcomePermissionDenied = "permission_denied"
)

// Applier rebuilds the device alert set from the desired state.
type Applier interface {
	Apply(ctx context.Context, desired []domain.DesiredAlert, now time.Time) (*alerting.Result, error)
}

// Triggerer is what other services use to request a sync.
type Triggerer interface {
	Trigger(ctx context.Context, reason Reason) (*Outcome, error)
}

type Outcome struct {
	Reason       Reason           `json:"reason"`
	Coalesced    bool             `json:"coalesced"`
	StartedAt    time.Time        `json:"started_at,omitempty"`
	DurationMs   int64            `json:"duration_ms"`
	PendingCount int              `json:"pending_count"`
	Result       *alerting.Result `json:"result,omitempty"`
}

// Coordinator serialises syncs. A trigger that arrives while a sync is running
// is dropped rather than queued.
type Coordinator struct {
	mu sync.Mutex

	notifications backend.NotificationRepository
	applier       Applier
	recorder      domain.SyncResultRecorder
	syncMetrics   *metrics.SyncMetrics
	loc           *time.Location
	now           func() time.Time

	lastMu sync.RWMutex
	last   *Outcome
}

func NewCoordinator(
	notifications backend.NotificationRepository,
	applier Applier,
	recorder domain.SyncResultRecorder,
	syncMetrics *metrics.SyncMetrics,
	loc *time.Location,
) *Coordinator {
	if loc == nil {
		loc = time.Local
	}
	return &Coordinator{
		notifications: notifications,
		applier:       applier,
		recorder:      recorder,
		syncMetrics:   syncMetrics,
		loc:           loc,
		now:           time.Now,
	}
}

func (c *Coordinator) Location() *time.Location {
	return c.loc
}

// Trigger runs one sync, or returns ErrSyncInProgress with a coalesced outcome
// when another sync holds the lock.
func (c *Coordinator) Trigger(ctx context.Context, reason Reason) (*Outcome, error) {
	if !c.mu.TryLock() {
		slog.DebugContext(ctx, "sync already in progress, trigger coalesced",
			slog.String("reason", string(reason)),
		)
		c.recordMetrics(ctx, reason, outcomeCoalesced, 0)
		return &Outcome{Reason: reason, Coalesced: true}, ErrSyncInProgress
	}
	defer c.mu.Unlock()

	outcome, err := c.sync(ctx, reason)
	c.setLast(outcome)
	return outcome, err
}

// Last returns the outcome of the most recent completed sync, or nil.
func (c *Coordinator) Last() *Outcome {
	c.lastMu.RLock()
	defer c.lastMu.RUnlock()
	return c.last
}

func (c *Coordinator) setLast(o *Outcome) {
	c.lastMu.Lock()
	defer c.lastMu.Unlock()
	c.last = o
}

func (c *Coordinator) sync(ctx context.Context, reason Reason) (outcome *Outcome, err error) {
	start := c.now()
	now := start.In(c.loc)

	ctx, span := tracing.StartSyncSpan(ctx, string(reason))
	defer span.End()

	outcome = &Outcome{Reason: reason, StartedAt: now}
	label := outcomeSuccess

	defer func() {
		duration := c.now().Sub(start)
		outcome.DurationMs = duration.Milliseconds()
		tracing.RecordSyncResult(span, outcome.PendingCount, false, err)
		c.recordMetrics(ctx, reason, label, duration)
		c.recordResult(ctx, outcome, label, duration)
	}()

	slog.DebugContext(ctx, "sync started",
		slog.String("reason", string(reason)),
		slog.Time("now", now),
	)

	pending, err := c.notifications.ListPendingNotifications(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to fetch pending notifications, keeping current alerts",
			slog.String("reason", string(reason)),
			slog.String("error", err.Error()),
		)
		label = outcomeFetchFailed
		return outcome, fmt.Errorf("failed to fetch pending notifications: %w", err)
	}

	outcome.PendingCount = len(pending)
	if c.syncMetrics != nil {
		c.syncMetrics.RecordPendingFetched(ctx, len(pending))
	}

	desired := make([]domain.DesiredAlert, 0, len(pending))
	for _, n := range pending {
		desired = append(desired, domain.NewDesiredAlert(n))
	}

	result, err := c.applier.Apply(ctx, desired, now)
	outcome.Result = result
	if err != nil {
		label = outcomeApplyFailed
		return outcome, fmt.Errorf("failed to apply alerts: %w", err)
	}
	if result != nil && result.PermissionDenied {
		label = outcomePermissionDenied
	}

	slog.InfoContext(ctx, "sync completed",
		slog.String("reason", string(reason)),
		slog.String("outcome", label),
		slog.Int("pending_count", len(pending)),
	)

	return outcome, nil
}

func (c *Coordinator) recordMetrics(ctx context.Context, reason Reason, label string, duration time.Duration) {
	if c.syncMetrics != nil {
		c.syncMetrics.RecordSync(ctx, string(reason), label, duration)
	}
}

func (c *Coordinator) recordResult(ctx context.Context, o *Outcome, label string, duration time.Duration) {
	if c.recorder == nil {
		return
	}

	record := domain.SyncResultRecord{
		SyncedAt:     o.StartedAt,
		Reason:       string(o.Reason),
		Outcome:      label,
		PendingCount: o.PendingCount,
		Duration:     duration,
	}
	if r := o.Result; r != nil {
		record.CancelledCount = r.Cancelled
		record.ScheduledCount = r.Scheduled
		record.SkippedCount = r.Skipped
		record.FailedCount = r.Failed
		record.PermissionDenied = r.PermissionDenied
	}

	if err := c.recorder.RecordSync(ctx, record); err != nil {
		slog.WarnContext(ctx, "failed to record sync result",
			slog.String("error", err.Error()),
		)
	}
}
