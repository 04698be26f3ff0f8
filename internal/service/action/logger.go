package action

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
)

var (
	ErrActionInFlight       = errors.New("action already being recorded")
	ErrScheduleIDRequired   = errors.New("schedule id is required")
	ErrScheduledTimeMissing = errors.New("scheduled time is required")
)

// UserError carries a message that can be shown to the user as is.
type UserError struct {
	Message string
	Err     error
}

func (e *UserError) Error() string {
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// Logger sends action events to the backend. It does not retry and does not
// trigger a sync; callers decide what to do after a successful log.
type Logger struct {
	repo        backend.ActionLogRepository
	syncMetrics *metrics.SyncMetrics

	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewLogger(repo backend.ActionLogRepository, syncMetrics *metrics.SyncMetrics) *Logger {
	return &Logger{
		repo:        repo,
		syncMetrics: syncMetrics,
		inFlight:    make(map[string]struct{}),
	}
}

func (l *Logger) Log(ctx context.Context, log domain.ActionLog) error {
	if err := validate(log); err != nil {
		l.record(ctx, log.ActionType, "invalid")
		return &UserError{Message: "The action could not be recorded. Please check the input.", Err: err}
	}

	key := markerKey(log)
	if !l.acquire(key) {
		return ErrActionInFlight
	}
	defer l.release(key)

	if err := l.repo.LogAction(ctx, log); err != nil {
		slog.ErrorContext(ctx, "failed to log action",
			slog.String("schedule_id", log.ScheduleID),
			slog.String("action_type", log.ActionType.String()),
			slog.String("error", err.Error()),
		)
		l.record(ctx, log.ActionType, "failed")
		return &UserError{Message: userMessage(err), Err: err}
	}

	slog.InfoContext(ctx, "action logged",
		slog.String("schedule_id", log.ScheduleID),
		slog.String("action_type", log.ActionType.String()),
		slog.Time("scheduled_time", log.ScheduledTime),
	)
	l.record(ctx, log.ActionType, "success")

	return nil
}

// InFlight reports whether an action for the schedule and time is being sent.
func (l *Logger) InFlight(scheduleID string, scheduledTime time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.inFlight[markerKey(domain.ActionLog{ScheduleID: scheduleID, ScheduledTime: scheduledTime})]
	return ok
}

func (l *Logger) acquire(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.inFlight[key]; ok {
		return false
	}
	l.inFlight[key] = struct{}{}
	return true
}

func (l *Logger) release(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.inFlight, key)
}

func (l *Logger) record(ctx context.Context, actionType domain.ActionType, outcome string) {
	if l.syncMetrics != nil {
		l.syncMetrics.RecordAction(ctx, actionType.String(), outcome)
	}
}

func validate(log domain.ActionLog) error {
	var errs []error
	if log.ScheduleID == "" {
		errs = append(errs, ErrScheduleIDRequired)
	}
	if !log.ActionType.Valid() {
		errs = append(errs, fmt.Errorf("%w: %q", domain.ErrInvalidActionType, log.ActionType))
	}
	if log.ScheduledTime.IsZero() {
		errs = append(errs, ErrScheduledTimeMissing)
	}
	return errors.Join(errs...)
}

func markerKey(log domain.ActionLog) string {
	return log.ScheduleID + "@" + log.ScheduledTime.UTC().Format(time.RFC3339Nano)
}

func userMessage(err error) string {
	var statusErr *backend.StatusError
	switch {
	case errors.Is(err, backend.ErrTokenExpired), errors.Is(err, backend.ErrMissingToken):
		return "Your session has expired. Please sign in again."
	case errors.As(err, &statusErr) && statusErr.StatusCode >= 500:
		return "The server is unavailable. Please try again later."
	case errors.As(err, &statusErr):
		return "The action was rejected by the server."
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return "The request timed out. Please try again."
	default:
		return "Could not reach the server. Please check your connection and try again."
	}
}
