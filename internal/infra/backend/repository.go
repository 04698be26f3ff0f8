package backend

import (
	"context"

	"github.com/KasumiMercury/primind-medication-sync/internal/domain"
)

//go:generate mockgen -source=repository.go -destination=mock.go -package=backend

type ScheduleRepository interface {
	ListSchedules(ctx context.Context) ([]domain.Schedule, error)
	CreateSchedule(ctx context.Context, schedule domain.Schedule) (*domain.Schedule, error)
	UpdateSchedule(ctx context.Context, schedule domain.Schedule) (*domain.Schedule, error)
	DeleteSchedule(ctx context.Context, id string) error
}

type NotificationRepository interface {
	ListPendingNotifications(ctx context.Context) ([]domain.NotificationInstance, error)
}

type ActionLogRepository interface {
	LogAction(ctx context.Context, log domain.ActionLog) error
}

type DeviceRepository interface {
	RegisterDevice(ctx context.Context, registration DeviceRegistration) error
}
