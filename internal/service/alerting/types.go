package alerting

import "time"

type SkipReason string

const (
	SkipPast      SkipReason = "past"
	SkipNotToday  SkipReason = "not_today"
	SkipLeadTime  SkipReason = "lead_time"
	SkipDuplicate SkipReason = "duplicate"
)

type ResultItem struct {
	ScheduleID             string     `json:"schedule_id"`
	NotificationInstanceID string     `json:"notification_instance_id"`
	FireDateTime           time.Time  `json:"fire_datetime"`
	LocalID                string     `json:"local_id,omitempty"`
	Scheduled              bool       `json:"scheduled"`
	Skipped                bool       `json:"skipped"`
	SkipReason             SkipReason `json:"skip_reason,omitempty"`
	Error                  string     `json:"error,omitempty"`
}

type Result struct {
	Scheduled        int          `json:"scheduled_count"`
	Skipped          int          `json:"skipped_count"`
	Failed           int          `json:"failed_count"`
	Cancelled        int          `json:"cancelled_count"`
	PermissionDenied bool         `json:"permission_denied"`
	Items            []ResultItem `json:"items"`
}
