package handler

import (
	"context"
	"time"

	"github.com/KasumiMercury/primind-medication-sync/internal/device"
	"github.com/KasumiMercury/primind-medication-sync/internal/domain"
	"github.com/KasumiMercury/primind-medication-sync/internal/service/push"
	"github.com/KasumiMercury/primind-medication-sync/internal/service/reconcile"
	"github.com/KasumiMercury/primind-medication-sync/internal/service/recurrence"
)

//go:generate mockgen -source=services.go -destination=mock.go -package=handler

type ScheduleService interface {
	List(ctx context.Context) ([]domain.Schedule, error)
	Get(ctx context.Context, id string) (*domain.Schedule, error)
	Create(ctx context.Context, schedule domain.Schedule) (*domain.Schedule, error)
	Update(ctx context.Context, schedule domain.Schedule) (*domain.Schedule, error)
	Delete(ctx context.Context, id string) error
	Upcoming(ctx context.Context, now time.Time) ([]recurrence.Occurrence, error)
}

type ActionLogger interface {
	Log(ctx context.Context, log domain.ActionLog) error
	InFlight(scheduleID string, scheduledTime time.Time) bool
}

type AlertDevice interface {
	ListScheduled(ctx context.Context) ([]*domain.LocalAlert, error)
	Lookup(ctx context.Context, localID string) (*domain.LocalAlert, error)
	SetPermission(ctx context.Context, granted bool) error
	PermissionGranted(ctx context.Context) (bool, error)
	Publish(ctx context.Context, resp device.AlertResponse) int
}

type SyncStatus interface {
	Last() *reconcile.Outcome
}

type PushRegistrar interface {
	Register(ctx context.Context, token, platform string, deviceInfo map[string]string) push.Mode
}
