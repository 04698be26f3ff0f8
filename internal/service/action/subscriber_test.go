package action

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KasumiMercury/primind-medication-sync/internal/device"
	"github.com/KasumiMercury/primind-medication-sync/internal/domain"
	"github.com/KasumiMercury/primind-medication-sync/internal/infra/backend"
	"github.com/KasumiMercury/primind-medication-sync/internal/observability/logging"
	"go.uber.org/mock/gomock"
)

func TestLogger_RecordResponse(t *testing.T) {
	fire := time.Date(2024, time.June, 12, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		resp   device.AlertResponse
		logErr error
		want   domain.ActionType
		wantID bool
	}{
		{
			name: "opened without choice is acknowledged",
			resp: device.AlertResponse{ScheduleID: "s1", NotificationInstanceID: "n1", FireDateTime: fire},
			want: domain.ActionAcknowledged, wantID: true,
		},
		{
			name: "explicit taken",
			resp: device.AlertResponse{ScheduleID: "s1", FireDateTime: fire, ActionType: domain.ActionTaken},
			want: domain.ActionTaken,
		},
		{
			name:   "backend failure is swallowed",
			resp:   device.AlertResponse{ScheduleID: "s1", FireDateTime: fire, ActionType: domain.ActionSnoozed},
			logErr: errors.New("timeout"),
			want:   domain.ActionSnoozed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			ctx := logging.WithRequestID(context.Background(), "req-1")

			repo := backend.NewMockActionLogRepository(ctrl)
			repo.EXPECT().LogAction(gomock.Any(), gomock.Any()).DoAndReturn(
				func(ctx context.Context, log domain.ActionLog) error {
					if got := logging.RequestIDFromContext(ctx); got != "req-1" {
						t.Errorf("request id: got %q, want the publisher's", got)
					}
					if log.ActionType != tt.want {
						t.Errorf("action type: got %q, want %q", log.ActionType, tt.want)
					}
					if !log.ScheduledTime.Equal(fire) {
						t.Errorf("scheduled time: got %v", log.ScheduledTime)
					}
					if (log.ScheduleNotificationID != nil) != tt.wantID {
						t.Errorf("notification id: got %v", log.ScheduleNotificationID)
					}
					return tt.logErr
				})

			var subscriber device.Subscriber = NewLogger(repo, nil).RecordResponse
			subscriber(ctx, tt.resp)
		})
	}
}
