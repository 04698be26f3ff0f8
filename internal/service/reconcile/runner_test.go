package reconcile

import (
	"context"
	"testing"
	"time"

	"github.com/KasumiMercury/primind-medication-sync/internal/domain"
	"github.com/KasumiMercury/primind-medication-sync/internal/infra/backend"
	"github.com/KasumiMercury/primind-medication-sync/internal/service/alerting"
	"go.uber.org/mock/gomock"
)

func TestCoordinator_RunRequiresTrigger(t *testing.T) {
	c := NewCoordinator(nil, nil, nil, nil, time.UTC)

	if err := c.Run(context.Background(), RunConfig{}); err == nil {
		t.Error("expected error when no trigger is configured")
	}
}

func TestCoordinator_RunStartupSyncAndStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	notifications := backend.NewMockNotificationRepository(ctrl)
	applier := NewMockApplier(ctrl)

	notifications.EXPECT().ListPendingNotifications(gomock.Any()).Return([]domain.NotificationInstance{}, nil).Times(1)
	applier.EXPECT().Apply(gomock.Any(), gomock.Any(), gomock.Any()).Return(&alerting.Result{}, nil).Times(1)

	c := newTestCoordinator(notifications, applier, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- c.Run(ctx, RunConfig{Interval: time.Hour, DayRollover: true, OnStartup: true})
	}()

	deadline := time.After(5 * time.Second)
	for c.Last() == nil {
		select {
		case <-deadline:
			t.Fatal("startup sync did not run")
		case <-time.After(10 * time.Millisecond):
		}
	}
	if got := c.Last().Reason; got != ReasonStartup {
		t.Errorf("reason: got %q, want %q", got, ReasonStartup)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}
