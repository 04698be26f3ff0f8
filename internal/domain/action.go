package domain

import (
	"fmt"
	"strings"
	"time"
)

// ActionType is a user's response to a medicine reminder.
type ActionType string

const (
	ActionTaken        ActionType = "taken"
	ActionSkipped      ActionType = "skipped"
	ActionSnoozed      ActionType = "snoozed"
	ActionAcknowledged ActionType = "acknowledged"
	ActionMissed       ActionType = "missed"
)

func ParseActionType(s string) (ActionType, error) {
	a := ActionType(strings.ToLower(strings.TrimSpace(s)))
	if !a.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidActionType, s)
	}
	return a, nil
}

func (a ActionType) Valid() bool {
	switch a {
	case ActionTaken, ActionSkipped, ActionSnoozed, ActionAcknowledged, ActionMissed:
		return true
	}
	return false
}

func (a ActionType) String() string {
	return string(a)
}

// ActionLog is an immutable event appended on the backend.
type ActionLog struct {
	ScheduleID             string
	ScheduleNotificationID *string
	ActionType             ActionType
	ScheduledTime          time.Time
	Notes                  string
}
