package action

import (
	"context"
	"errors"
	"log/slog"

	"github.com/KasumiMercury/primind-medication-sync/internal/device"
	"github.com/KasumiMercury/primind-medication-sync/internal/domain"
)

// RecordResponse is a device.Subscriber that logs an alert response as an
// action. Opening an alert without choosing counts as acknowledged.
func (l *Logger) RecordResponse(ctx context.Context, resp device.AlertResponse) {
	entry := responseToLog(resp)

	err := l.Log(ctx, entry)
	switch {
	case err == nil:
	case errors.Is(err, ErrActionInFlight):
		slog.DebugContext(ctx, "alert response already being recorded",
			slog.String("schedule_id", resp.ScheduleID),
		)
	default:
		slog.WarnContext(ctx, "failed to record alert response",
			slog.String("local_id", resp.LocalID),
			slog.String("schedule_id", resp.ScheduleID),
			slog.String("action_type", entry.ActionType.String()),
			slog.String("error", err.Error()),
		)
	}
}

func responseToLog(resp device.AlertResponse) domain.ActionLog {
	actionType := resp.ActionType
	if actionType == "" {
		actionType = domain.ActionAcknowledged
	}

	entry := domain.ActionLog{
		ScheduleID:    resp.ScheduleID,
		ActionType:    actionType,
		ScheduledTime: resp.FireDateTime,
		Notes:         resp.Notes,
	}
	if resp.NotificationInstanceID != "" {
		id := resp.NotificationInstanceID
		entry.ScheduleNotificationID = &id
	}
	return entry
}
