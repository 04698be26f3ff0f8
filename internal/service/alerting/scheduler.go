package alerting

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/KasumiMercury/primind-medication-sync/internal/device"
	"github.com/KasumiMercury/primind-medication-sync/internal/domain"
	"github.com/KasumiMercury/primind-medication-sync/internal/observability/metrics"
	"github.com/KasumiMercury/primind-medication-sync/internal/observability/tracing"
)

//go:generate mockgen -source=scheduler.go -destination=mock.go -package=alerting

const (
	DefaultMinLeadTime = 5 * time.Minute

	fallbackTitle = "Medicine reminder"
)

// Device is the part of the notification capability the scheduler needs.
type Device interface {
	PermissionGranted(ctx context.Context) (bool, error)
	CancelAll(ctx context.Context) (int, error)
	ScheduleAt(ctx context.Context, req device.AlertRequest) (string, error)
}

type Scheduler struct {
	device      Device
	schedules   domain.ScheduleCache
	minLeadTime time.Duration
	syncMetrics *metrics.SyncMetrics
}

// NewScheduler builds the scheduler. schedules supplies alert titles and may be nil.
func NewScheduler(device Device, schedules domain.ScheduleCache, minLeadTime time.Duration, syncMetrics *metrics.SyncMetrics) *Scheduler {
	if minLeadTime <= 0 {
		minLeadTime = DefaultMinLeadTime
	}
	return &Scheduler{
		device:      device,
		schedules:   schedules,
		minLeadTime: minLeadTime,
		syncMetrics: syncMetrics,
	}
}

// Apply replaces every scheduled alert with one alert per desired tuple that fires
// later today, more than the minimum lead time from now. All existing alerts are
// cancelled before anything is scheduled; if that fails nothing is scheduled.
func (s *Scheduler) Apply(ctx context.Context, desired []domain.DesiredAlert, now time.Time) (result *Result, err error) {
	ctx, span := tracing.StartApplySpan(ctx, len(desired), now)
	defer func() {
		r := result
		if r == nil {
			r = &Result{}
		}
		tracing.RecordApplyResult(span, r.Scheduled, r.Skipped, r.Failed, r.Cancelled, r.PermissionDenied, err)
		span.End()
	}()

	granted, err := s.device.PermissionGranted(ctx)
	if err != nil {
		return nil, err
	}
	if !granted {
		slog.InfoContext(ctx, "notification permission not granted, skipping alert scheduling",
			slog.Int("desired_count", len(desired)),
		)
		return &Result{PermissionDenied: true, Items: []ResultItem{}}, nil
	}

	cancelled, err := s.device.CancelAll(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to cancel scheduled alerts, aborting pass",
			slog.Int("cancelled_count", cancelled),
			slog.String("error", err.Error()),
		)
		return &Result{Cancelled: cancelled, Items: []ResultItem{}}, fmt.Errorf("failed to cancel alerts: %w", err)
	}

	result = &Result{
		Cancelled: cancelled,
		Items:     make([]ResultItem, 0, len(desired)),
	}

	catalog := s.loadCatalog(ctx)
	seen := make(map[string]struct{}, len(desired))

	for _, d := range desired {
		item := ResultItem{
			ScheduleID:             d.ScheduleID,
			NotificationInstanceID: d.NotificationInstanceID,
			FireDateTime:           d.FireDateTime,
		}

		reason, skip := s.skipReason(d, now, seen)
		if skip {
			item.Skipped = true
			item.SkipReason = reason
			result.Skipped++
			result.Items = append(result.Items, item)
			s.recordAlert(ctx, "skipped", string(reason))
			continue
		}
		seen[dedupeKey(d)] = struct{}{}

		title, body := fallbackTitle, ""
		if sched, ok := catalog[d.ScheduleID]; ok {
			title, body = sched.Title(), sched.Body()
		}

		localID, err := s.device.ScheduleAt(ctx, device.AlertRequest{
			ScheduleID:             d.ScheduleID,
			NotificationInstanceID: d.NotificationInstanceID,
			FireDateTime:           d.FireDateTime,
			Title:                  title,
			Body:                   body,
		})
		if err != nil {
			slog.ErrorContext(ctx, "failed to schedule alert",
				slog.String("schedule_id", d.ScheduleID),
				slog.String("notification_instance_id", d.NotificationInstanceID),
				slog.Time("fire_datetime", d.FireDateTime),
				slog.String("error", err.Error()),
			)
			item.Error = err.Error()
			result.Failed++
			result.Items = append(result.Items, item)
			s.recordAlert(ctx, "failed", "")
			continue
		}

		item.LocalID = localID
		item.Scheduled = true
		result.Scheduled++
		result.Items = append(result.Items, item)
		s.recordAlert(ctx, "scheduled", "")
	}

	slog.InfoContext(ctx, "local alerts reconciled",
		slog.Int("desired_count", len(desired)),
		slog.Int("cancelled_count", result.Cancelled),
		slog.Int("scheduled_count", result.Scheduled),
		slog.Int("skipped_count", result.Skipped),
		slog.Int("failed_count", result.Failed),
	)

	return result, nil
}

func (s *Scheduler) skipReason(d domain.DesiredAlert, now time.Time, seen map[string]struct{}) (SkipReason, bool) {
	if !d.FireDateTime.After(now) {
		return SkipPast, true
	}
	if domain.DateOf(d.FireDateTime.In(now.Location())) != domain.DateOf(now) {
		return SkipNotToday, true
	}
	if d.FireDateTime.Sub(now) <= s.minLeadTime {
		return SkipLeadTime, true
	}
	if _, ok := seen[dedupeKey(d)]; ok {
		return SkipDuplicate, true
	}
	return "", false
}

func dedupeKey(d domain.DesiredAlert) string {
	if d.NotificationInstanceID != "" {
		return d.NotificationInstanceID
	}
	return d.ScheduleID + "@" + d.FireDateTime.UTC().Format(time.RFC3339)
}

func (s *Scheduler) loadCatalog(ctx context.Context) map[string]domain.Schedule {
	catalog := make(map[string]domain.Schedule)
	if s.schedules == nil {
		return catalog
	}

	schedules, err := s.schedules.GetSchedules(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrScheduleCacheMiss) {
			slog.WarnContext(ctx, "failed to load schedules for alert titles",
				slog.String("error", err.Error()),
			)
		}
		return catalog
	}

	for _, sched := range schedules {
		catalog[sched.ID] = sched
	}
	return catalog
}

func (s *Scheduler) recordAlert(ctx context.Context, outcome, skipReason string) {
	if s.syncMetrics != nil {
		s.syncMetrics.RecordAlert(ctx, outcome, skipReason)
	}
}
