package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KasumiMercury/primind-medication-sync/internal/domain"
	"github.com/KasumiMercury/primind-medication-sync/internal/testutil"
)

func newAlert(localID string, fire time.Time) *domain.LocalAlert {
	return &domain.LocalAlert{
		LocalID:                localID,
		ScheduleID:             "sched-" + localID,
		NotificationInstanceID: "inst-" + localID,
		FireDateTime:           fire,
		Title:                  "Time to take Aspirin",
		Body:                   "Aspirin - 1 pill",
		ChannelID:              "medicine-reminders",
		TaskName:               "tasks/" + localID,
		CreatedAt:              time.Now().UTC().Truncate(time.Second),
	}
}

func TestAlertRepository_SaveGetDelete(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	repo := NewAlertRepository(client, "device-1")
	fire := time.Now().Add(2 * time.Hour).UTC().Truncate(time.Second)

	alert := newAlert("a1", fire)
	if err := repo.SaveAlert(ctx, alert); err != nil {
		t.Fatalf("failed to save alert: %v", err)
	}

	got, err := repo.GetAlert(ctx, "a1")
	if err != nil {
		t.Fatalf("failed to get alert: %v", err)
	}
	if got.ScheduleID != alert.ScheduleID || got.NotificationInstanceID != alert.NotificationInstanceID {
		t.Errorf("correlation keys: got %q/%q", got.ScheduleID, got.NotificationInstanceID)
	}
	if !got.FireDateTime.Equal(fire) {
		t.Errorf("fire time: got %v, want %v", got.FireDateTime, fire)
	}
	if got.TaskName != "tasks/a1" {
		t.Errorf("task name: got %q", got.TaskName)
	}

	ttl, err := client.TTL(ctx, "device-1:alerts:alert:a1").Result()
	if err != nil {
		t.Fatalf("failed to get TTL: %v", err)
	}
	if ttl <= 2*time.Hour || ttl > 27*time.Hour {
		t.Errorf("expected TTL past the fire time, got %v", ttl)
	}

	if err := repo.DeleteAlert(ctx, "a1"); err != nil {
		t.Fatalf("failed to delete alert: %v", err)
	}

	if _, err := repo.GetAlert(ctx, "a1"); !errors.Is(err, domain.ErrAlertNotFound) {
		t.Errorf("expected ErrAlertNotFound, got %v", err)
	}

	// deleting again is not an error
	if err := repo.DeleteAlert(ctx, "a1"); err != nil {
		t.Errorf("unexpected error on second delete: %v", err)
	}
}

func TestAlertRepository_SaveInvalid(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	repo := NewAlertRepository(client, "device-1")

	tests := []struct {
		name  string
		alert *domain.LocalAlert
	}{
		{name: "nil alert", alert: nil},
		{name: "missing local id", alert: &domain.LocalAlert{ScheduleID: "s1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := repo.SaveAlert(ctx, tt.alert); !errors.Is(err, ErrInvalidAlertData) {
				t.Errorf("expected ErrInvalidAlertData, got %v", err)
			}
		})
	}
}

func TestAlertRepository_ListAlerts(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	repo := NewAlertRepository(client, "device-1")
	other := NewAlertRepository(client, "device-2")
	base := time.Now().Add(time.Hour).UTC().Truncate(time.Second)

	for i, id := range []string{"late", "early", "middle"} {
		offsets := []time.Duration{3 * time.Hour, 0, time.Hour}
		if err := repo.SaveAlert(ctx, newAlert(id, base.Add(offsets[i]))); err != nil {
			t.Fatalf("failed to save alert %s: %v", id, err)
		}
	}
	if err := other.SaveAlert(ctx, newAlert("foreign", base)); err != nil {
		t.Fatalf("failed to save alert: %v", err)
	}

	// simulate an expired record still present in the index
	if err := client.SAdd(ctx, "device-1:alerts:index", "expired").Err(); err != nil {
		t.Fatalf("failed to set up test data: %v", err)
	}

	alerts, err := repo.ListAlerts(ctx)
	if err != nil {
		t.Fatalf("failed to list alerts: %v", err)
	}

	wantOrder := []string{"early", "middle", "late"}
	if len(alerts) != len(wantOrder) {
		t.Fatalf("got %d alerts, want %d", len(alerts), len(wantOrder))
	}
	for i, id := range wantOrder {
		if alerts[i].LocalID != id {
			t.Errorf("alert[%d]: got %q, want %q", i, alerts[i].LocalID, id)
		}
	}

	isMember, err := client.SIsMember(ctx, "device-1:alerts:index", "expired").Result()
	if err != nil {
		t.Fatalf("failed to check index: %v", err)
	}
	if isMember {
		t.Error("expected stale index entry to be pruned")
	}
}

func TestAlertRepository_ListAlertsEmpty(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	alerts, err := NewAlertRepository(client, "empty").ListAlerts(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if alerts == nil || len(alerts) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", alerts)
	}
}

func TestAlertRepository_Permission(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	repo := NewAlertRepository(client, "device-1")

	if _, err := repo.GetPermission(ctx); !errors.Is(err, domain.ErrPermissionUnset) {
		t.Fatalf("expected ErrPermissionUnset before any answer, got %v", err)
	}

	for _, want := range []bool{true, false, true} {
		if err := repo.SetPermission(ctx, want); err != nil {
			t.Fatalf("failed to set permission: %v", err)
		}
		got, err := repo.GetPermission(ctx)
		if err != nil {
			t.Fatalf("failed to get permission: %v", err)
		}
		if got != want {
			t.Errorf("permission: got %v, want %v", got, want)
		}
	}
}

func TestAlertRepository_Channel(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	repo := NewAlertRepository(client, "device-1")

	if _, err := repo.GetChannel(ctx); !errors.Is(err, domain.ErrChannelNotFound) {
		t.Fatalf("expected ErrChannelNotFound, got %v", err)
	}

	channel := domain.AlertChannel{ID: "medicine-reminders", Name: "Medicine reminders", Importance: "high"}
	if err := repo.SaveChannel(ctx, channel); err != nil {
		t.Fatalf("failed to save channel: %v", err)
	}

	got, err := repo.GetChannel(ctx)
	if err != nil {
		t.Fatalf("failed to get channel: %v", err)
	}
	if *got != channel {
		t.Errorf("got %+v, want %+v", *got, channel)
	}
}
