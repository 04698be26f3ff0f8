package domain

import (
	"time"
)

// NotificationInstance is one backend-computed future reminder of a schedule.
type NotificationInstance struct {
	ID                   string
	ScheduleID           string
	NotificationDateTime time.Time
}

// DesiredAlert is the reconciliation input: what the backend says should fire.
type DesiredAlert struct {
	ScheduleID             string
	NotificationInstanceID string
	FireDateTime           time.Time
}

func NewDesiredAlert(n NotificationInstance) DesiredAlert {
	return DesiredAlert{
		ScheduleID:             n.ScheduleID,
		NotificationInstanceID: n.ID,
		FireDateTime:           n.NotificationDateTime,
	}
}

// LocalAlert is an alert held by the device notification subsystem.
type LocalAlert struct {
	LocalID                string
	ScheduleID             string
	NotificationInstanceID string
	FireDateTime           time.Time
	Title                  string
	Body                   string
	ChannelID              string
	TaskName               string
	CreatedAt              time.Time
}

// AlertChannel is the Android channel/importance configuration. It is passed
// through to the delivery payload without interpretation.
type AlertChannel struct {
	ID         string
	Name       string
	Importance string
}
