package device

import (
	"time"

	"github.com/KasumiMercury/primind-medication-sync/internal/domain"
)

const (
	DefaultChannelID         = "medicine-reminders"
	DefaultChannelName       = "Medicine reminders"
	DefaultChannelImportance = "high"
)

type Config struct {
	DeviceID string
	Channel  domain.AlertChannel
	// AutoGrant is the permission answer recorded when none has been stored yet.
	AutoGrant bool
}

// AlertRequest asks for one alert at FireDateTime carrying both correlation keys.
type AlertRequest struct {
	ScheduleID             string
	NotificationInstanceID string
	FireDateTime           time.Time
	Title                  string
	Body                   string
}

// AlertResponse is the user's interaction with a delivered alert.
type AlertResponse struct {
	LocalID                string            `json:"local_id"`
	ScheduleID             string            `json:"schedule_id"`
	NotificationInstanceID string            `json:"notification_instance_id"`
	FireDateTime           time.Time         `json:"fire_datetime"`
	ActionType             domain.ActionType `json:"action_type"`
	RespondedAt            time.Time         `json:"responded_at"`
	Notes                  string            `json:"notes,omitempty"`
}
