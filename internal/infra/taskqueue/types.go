package taskqueue

import "time"

// AlertTask is the delivery payload of one local alert.
type AlertTask struct {
	ScheduleAt time.Time `json:"-"`

	LocalID                string    `json:"local_id"`
	DeviceID               string    `json:"device_id"`
	ScheduleID             string    `json:"schedule_id"`
	NotificationInstanceID string    `json:"notification_instance_id"`
	FireDateTime           time.Time `json:"fire_datetime"`
	Title                  string    `json:"title"`
	Body                   string    `json:"body"`
	ChannelID              string    `json:"channel_id,omitempty"`
	Importance             string    `json:"importance,omitempty"`
}

type TaskResponse struct {
	Name         string    `json:"name"`
	ScheduleTime time.Time `json:"schedule_time"`
	CreateTime   time.Time `json:"create_time"`
}

type PrimindTaskRequest struct {
	Task PrimindTask `json:"task"`
}

type PrimindTask struct {
	Name         string             `json:"name,omitempty"`
	HTTPRequest  PrimindHTTPRequest `json:"httpRequest"`
	ScheduleTime string             `json:"scheduleTime,omitempty"`
}

type PrimindHTTPRequest struct {
	URL     string            `json:"url,omitempty"`
	Body    string            `json:"body"`
	Headers map[string]string `json:"headers,omitempty"`
}

type PrimindTaskResponse struct {
	Name         string `json:"name"`
	ScheduleTime string `json:"scheduleTime"`
	CreateTime   string `json:"createTime"`
}
