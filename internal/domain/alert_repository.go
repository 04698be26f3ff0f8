package domain

import "context"

//go:generate mockgen -source=alert_repository.go -destination=alert_repository_mock.go -package=domain

// AlertRepository is the device's native store of scheduled alerts.
type AlertRepository interface {
	SaveAlert(ctx context.Context, alert *LocalAlert) error
	GetAlert(ctx context.Context, localID string) (*LocalAlert, error)
	DeleteAlert(ctx context.Context, localID string) error
	ListAlerts(ctx context.Context) ([]*LocalAlert, error)
	SetPermission(ctx context.Context, granted bool) error
	// GetPermission returns ErrPermissionUnset until SetPermission has been called.
	GetPermission(ctx context.Context) (bool, error)
	SaveChannel(ctx context.Context, channel AlertChannel) error
	GetChannel(ctx context.Context) (*AlertChannel, error)
}

// ScheduleCache holds the client's copy of the backend schedules.
type ScheduleCache interface {
	SaveSchedules(ctx context.Context, schedules []Schedule) error
	GetSchedules(ctx context.Context) ([]Schedule, error)
	InvalidateSchedules(ctx context.Context) error
}
