package device

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/KasumiMercury/primind-medication-sync/internal/domain"
	"github.com/KasumiMercury/primind-medication-sync/internal/infra/taskqueue"
)

// Notifier is the device notification capability. It is created once by Init and
// injected wherever alerts are scheduled; this service is the store's only writer.
type Notifier struct {
	deviceID  string
	channel   domain.AlertChannel
	autoGrant bool
	repo      domain.AlertRepository
	queue     taskqueue.TaskQueue
	now       func() time.Time

	subscribers subscriberSet
}

// Init performs the process-wide notification setup and returns the capability.
// Channel fields left empty in cfg are taken from the stored channel, then from
// the defaults. A nil queue keeps alerts in the local store only.
func Init(ctx context.Context, cfg Config, repo domain.AlertRepository, queue taskqueue.TaskQueue) (*Notifier, error) {
	channel := cfg.Channel

	stored, err := repo.GetChannel(ctx)
	switch {
	case err == nil:
		channel = mergeChannel(channel, *stored)
	case !errors.Is(err, domain.ErrChannelNotFound):
		return nil, fmt.Errorf("failed to read alert channel: %w", err)
	}

	if channel.ID == "" {
		channel.ID = DefaultChannelID
	}
	if channel.Name == "" {
		channel.Name = DefaultChannelName
	}
	if channel.Importance == "" {
		channel.Importance = DefaultChannelImportance
	}

	if err := repo.SaveChannel(ctx, channel); err != nil {
		return nil, fmt.Errorf("failed to save alert channel: %w", err)
	}

	if queue == nil {
		slog.WarnContext(ctx, "no task queue configured, alerts are recorded locally only")
	}

	slog.InfoContext(ctx, "device notifier initialized",
		slog.String("device_id", cfg.DeviceID),
		slog.String("channel_id", channel.ID),
		slog.String("channel_importance", channel.Importance),
	)

	return &Notifier{
		deviceID:  cfg.DeviceID,
		channel:   channel,
		autoGrant: cfg.AutoGrant,
		repo:      repo,
		queue:     queue,
		now:       time.Now,
	}, nil
}

func (n *Notifier) Channel() domain.AlertChannel {
	return n.channel
}

// RequestPermission returns the stored permission. Only when no answer has been
// stored yet does it record the configured auto-grant answer; an explicit denial
// is kept.
func (n *Notifier) RequestPermission(ctx context.Context) (bool, error) {
	granted, err := n.repo.GetPermission(ctx)
	switch {
	case err == nil:
		return granted, nil
	case !errors.Is(err, domain.ErrPermissionUnset):
		return false, fmt.Errorf("failed to read notification permission: %w", err)
	case !n.autoGrant:
		return false, nil
	}

	if err := n.repo.SetPermission(ctx, true); err != nil {
		return false, fmt.Errorf("failed to store notification permission: %w", err)
	}
	slog.InfoContext(ctx, "notification permission granted",
		slog.String("device_id", n.deviceID),
	)
	return true, nil
}

// SetPermission records the platform's answer to a permission prompt.
func (n *Notifier) SetPermission(ctx context.Context, granted bool) error {
	if err := n.repo.SetPermission(ctx, granted); err != nil {
		return fmt.Errorf("failed to store notification permission: %w", err)
	}
	slog.InfoContext(ctx, "notification permission updated",
		slog.String("device_id", n.deviceID),
		slog.Bool("granted", granted),
	)
	return nil
}

func (n *Notifier) PermissionGranted(ctx context.Context) (bool, error) {
	granted, err := n.repo.GetPermission(ctx)
	if errors.Is(err, domain.ErrPermissionUnset) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read notification permission: %w", err)
	}
	return granted, nil
}

// ScheduleAt registers the alert with the delivery queue and records it. It returns
// the alert's local ID.
func (n *Notifier) ScheduleAt(ctx context.Context, req AlertRequest) (string, error) {
	localID := uuid.NewString()

	alert := &domain.LocalAlert{
		LocalID:                localID,
		ScheduleID:             req.ScheduleID,
		NotificationInstanceID: req.NotificationInstanceID,
		FireDateTime:           req.FireDateTime,
		Title:                  req.Title,
		Body:                   req.Body,
		ChannelID:              n.channel.ID,
		CreatedAt:              n.now(),
	}

	if n.queue != nil {
		resp, err := n.queue.RegisterAlert(ctx, &taskqueue.AlertTask{
			ScheduleAt:             req.FireDateTime,
			LocalID:                localID,
			DeviceID:               n.deviceID,
			ScheduleID:             req.ScheduleID,
			NotificationInstanceID: req.NotificationInstanceID,
			FireDateTime:           req.FireDateTime,
			Title:                  req.Title,
			Body:                   req.Body,
			ChannelID:              n.channel.ID,
			Importance:             n.channel.Importance,
		})
		if err != nil {
			return "", fmt.Errorf("failed to register alert task: %w", err)
		}
		alert.TaskName = resp.Name
	}

	if err := n.repo.SaveAlert(ctx, alert); err != nil {
		if alert.TaskName != "" {
			// An unrecorded task could never be cancelled.
			if delErr := n.queue.DeleteTask(ctx, alert.TaskName); delErr != nil {
				slog.ErrorContext(ctx, "failed to roll back alert task",
					slog.String("local_id", localID),
					slog.String("task_name", alert.TaskName),
					slog.String("error", delErr.Error()),
				)
			}
		}
		return "", fmt.Errorf("failed to save alert: %w", err)
	}

	slog.DebugContext(ctx, "alert scheduled",
		slog.String("local_id", localID),
		slog.String("schedule_id", req.ScheduleID),
		slog.String("notification_instance_id", req.NotificationInstanceID),
		slog.Time("fire_datetime", req.FireDateTime),
	)

	return localID, nil
}

// Cancel removes one alert. Unknown IDs are ignored. The record is kept when the
// task cannot be deleted so that a later cancel can retry.
func (n *Notifier) Cancel(ctx context.Context, localID string) error {
	alert, err := n.repo.GetAlert(ctx, localID)
	if err != nil {
		if errors.Is(err, domain.ErrAlertNotFound) {
			return nil
		}
		return fmt.Errorf("failed to load alert: %w", err)
	}

	if n.queue != nil && alert.TaskName != "" {
		if err := n.queue.DeleteTask(ctx, alert.TaskName); err != nil {
			return fmt.Errorf("failed to delete alert task: %w", err)
		}
	}

	if err := n.repo.DeleteAlert(ctx, localID); err != nil {
		return fmt.Errorf("failed to delete alert: %w", err)
	}
	return nil
}

// CancelAll cancels every scheduled alert and returns how many were removed. It
// attempts every alert and reports all failures together.
func (n *Notifier) CancelAll(ctx context.Context) (int, error) {
	alerts, err := n.repo.ListAlerts(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list alerts: %w", err)
	}

	cancelled := 0
	var errs []error
	for _, alert := range alerts {
		if err := n.Cancel(ctx, alert.LocalID); err != nil {
			slog.ErrorContext(ctx, "failed to cancel alert",
				slog.String("local_id", alert.LocalID),
				slog.String("error", err.Error()),
			)
			errs = append(errs, err)
			continue
		}
		cancelled++
	}

	return cancelled, errors.Join(errs...)
}

func (n *Notifier) ListScheduled(ctx context.Context) ([]*domain.LocalAlert, error) {
	alerts, err := n.repo.ListAlerts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	return alerts, nil
}

// Lookup returns the stored alert for localID.
func (n *Notifier) Lookup(ctx context.Context, localID string) (*domain.LocalAlert, error) {
	return n.repo.GetAlert(ctx, localID)
}

func mergeChannel(configured, stored domain.AlertChannel) domain.AlertChannel {
	if configured.ID == "" {
		configured.ID = stored.ID
	}
	if configured.Name == "" {
		configured.Name = stored.Name
	}
	if configured.Importance == "" {
		configured.Importance = stored.Importance
	}
	return configured
}
