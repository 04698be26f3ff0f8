package action

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KasumiMercury/primind-medication-sync/internal/domain"
	"github.com/KasumiMercury/primind-medication-sync/internal/infra/backend"
	"go.uber.org/mock/gomock"
)

var scheduledAt = time.Date(2024, time.June, 12, 9, 0, 0, 0, time.UTC)

func TestLogger_LogTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := backend.NewMockActionLogRepository(ctrl)
	instanceID := "n1"
	entry := domain.ActionLog{
		ScheduleID:             "s1",
		ScheduleNotificationID: &instanceID,
		ActionType:             domain.ActionTaken,
		ScheduledTime:          scheduledAt,
	}

	logger := NewLogger(repo, nil)

	repo.EXPECT().LogAction(gomock.Any(), entry).DoAndReturn(
		func(_ context.Context, _ domain.ActionLog) error {
			if !logger.InFlight("s1", scheduledAt) {
				t.Error("expected in-flight marker during request")
			}
			return nil
		})

	if err := logger.Log(context.Background(), entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if logger.InFlight("s1", scheduledAt) {
		t.Error("expected in-flight marker cleared after request")
	}
}

func TestLogger_LogValidation(t *testing.T) {
	tests := []struct {
		name    string
		log     domain.ActionLog
		wantErr error
	}{
		{
			name:    "unknown action",
			log:     domain.ActionLog{ScheduleID: "s1", ActionType: "forgot", ScheduledTime: scheduledAt},
			wantErr: domain.ErrInvalidActionType,
		},
		{
			name:    "missing schedule",
			log:     domain.ActionLog{ActionType: domain.ActionSkipped, ScheduledTime: scheduledAt},
			wantErr: ErrScheduleIDRequired,
		},
		{
			name:    "missing time",
			log:     domain.ActionLog{ScheduleID: "s1", ActionType: domain.ActionSnoozed},
			wantErr: ErrScheduledTimeMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// no repository call is expected
			logger := NewLogger(backend.NewMockActionLogRepository(ctrl), nil)

			err := logger.Log(context.Background(), tt.log)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
			var userErr *UserError
			if !errors.As(err, &userErr) || userErr.Message == "" {
				t.Errorf("expected *UserError with message, got %v", err)
			}
		})
	}
}

func TestLogger_LogFailureIsNotRetried(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantMessage string
	}{
		{
			name:        "network",
			err:         errors.New("dial tcp: connection refused"),
			wantMessage: "Could not reach the server. Please check your connection and try again.",
		},
		{
			name:        "server error",
			err:         &backend.StatusError{StatusCode: 503},
			wantMessage: "The server is unavailable. Please try again later.",
		},
		{
			name:        "rejected",
			err:         &backend.StatusError{StatusCode: 422},
			wantMessage: "The action was rejected by the server.",
		},
		{
			name:        "expired token",
			err:         backend.ErrTokenExpired,
			wantMessage: "Your session has expired. Please sign in again.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := backend.NewMockActionLogRepository(ctrl)
			repo.EXPECT().LogAction(gomock.Any(), gomock.Any()).Return(tt.err).Times(1)

			logger := NewLogger(repo, nil)
			entry := domain.ActionLog{ScheduleID: "s1", ActionType: domain.ActionTaken, ScheduledTime: scheduledAt}

			err := logger.Log(context.Background(), entry)

			var userErr *UserError
			if !errors.As(err, &userErr) {
				t.Fatalf("expected *UserError, got %v", err)
			}
			if userErr.Message != tt.wantMessage {
				t.Errorf("message: got %q, want %q", userErr.Message, tt.wantMessage)
			}
			if !errors.Is(err, tt.err) {
				t.Errorf("expected wrapped cause, got %v", err)
			}
			if logger.InFlight("s1", scheduledAt) {
				t.Error("expected in-flight marker cleared after failure")
			}
		})
	}
}

func TestLogger_ConcurrentDuplicateRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := backend.NewMockActionLogRepository(ctrl)
	logger := NewLogger(repo, nil)
	entry := domain.ActionLog{ScheduleID: "s1", ActionType: domain.ActionTaken, ScheduledTime: scheduledAt}

	started := make(chan struct{})
	release := make(chan struct{})

	repo.EXPECT().LogAction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.ActionLog) error {
			close(started)
			<-release
			return nil
		}).Times(1)

	done := make(chan error, 1)
	go func() {
		done <- logger.Log(context.Background(), entry)
	}()

	<-started
	if err := logger.Log(context.Background(), entry); !errors.Is(err, ErrActionInFlight) {
		t.Errorf("expected ErrActionInFlight, got %v", err)
	}

	close(release)
	if err := <-done; err != nil {
		t.Fatalf("first log failed: %v", err)
	}
}
