package backend

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/KasumiMercury/primind-medication-sync/internal/domain"
)

// DeviceRegistration is the push registration payload.
type DeviceRegistration struct {
	PushToken  string
	Platform   string
	DeviceInfo map[string]string
}

// opaqueID accepts both JSON strings and numbers.
type opaqueID string

func (id *opaqueID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = opaqueID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id is neither string nor number: %w", err)
	}
	*id = opaqueID(n.String())
	return nil
}

type scheduleRequest struct {
	MedicineName  string  `json:"medicine_name"`
	Dosage        string  `json:"dosage"`
	ScheduledTime string  `json:"scheduled_time"`
	DaysOfWeek    []int   `json:"days_of_week"`
	StartDate     string  `json:"start_date"`
	EndDate       *string `json:"end_date"`
	IsActive      bool    `json:"is_active"`
	Notes         string  `json:"notes,omitempty"`
}

type scheduleResponse struct {
	ID            opaqueID `json:"id"`
	MedicineName  string   `json:"medicine_name"`
	Dosage        string   `json:"dosage"`
	ScheduledTime string   `json:"scheduled_time"`
	DaysOfWeek    []int    `json:"days_of_week"`
	StartDate     string   `json:"start_date"`
	EndDate       *string  `json:"end_date"`
	IsActive      *bool    `json:"is_active"`
	Notes         *string  `json:"notes"`
}

type pendingNotificationResponse struct {
	ID                   opaqueID `json:"id"`
	ScheduleID           opaqueID `json:"schedule_id"`
	NotificationDateTime string   `json:"notification_datetime"`
}

type actionLogRequest struct {
	ScheduleID             string  `json:"schedule_id"`
	ScheduleNotificationID *string `json:"schedule_notification_id,omitempty"`
	ActionType             string  `json:"action_type"`
	ScheduledTime          string  `json:"scheduled_time"`
	Notes                  string  `json:"notes,omitempty"`
}

type registerDeviceRequest struct {
	PushToken  string            `json:"push_token"`
	Platform   string            `json:"platform"`
	DeviceInfo map[string]string `json:"device_info,omitempty"`
}

func scheduleToRequest(s domain.Schedule) scheduleRequest {
	days := make([]int, 0, len(s.DaysOfWeek))
	for _, d := range s.DaysOfWeek {
		days = append(days, int(d))
	}

	req := scheduleRequest{
		MedicineName:  s.MedicineName,
		Dosage:        s.Dosage,
		ScheduledTime: s.ScheduledTime.String(),
		DaysOfWeek:    days,
		StartDate:     s.StartDate.String(),
		IsActive:      s.IsActive,
		Notes:         s.Notes,
	}
	if s.EndDate != nil {
		end := s.EndDate.String()
		req.EndDate = &end
	}
	return req
}

func scheduleFromResponse(r scheduleResponse) (domain.Schedule, error) {
	scheduledTime, err := domain.ParseTimeOfDay(r.ScheduledTime)
	if err != nil {
		return domain.Schedule{}, err
	}

	startDate, err := domain.ParseDate(r.StartDate)
	if err != nil {
		return domain.Schedule{}, err
	}

	var endDate *domain.Date
	if r.EndDate != nil && *r.EndDate != "" {
		d, err := domain.ParseDate(*r.EndDate)
		if err != nil {
			return domain.Schedule{}, err
		}
		endDate = &d
	}

	days := make([]domain.Weekday, 0, len(r.DaysOfWeek))
	for _, d := range r.DaysOfWeek {
		days = append(days, domain.Weekday(d))
	}

	// Backends that omit is_active treat the schedule as active.
	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}

	var notes string
	if r.Notes != nil {
		notes = *r.Notes
	}

	return domain.Schedule{
		ID:            string(r.ID),
		MedicineName:  r.MedicineName,
		Dosage:        r.Dosage,
		ScheduledTime: scheduledTime,
		DaysOfWeek:    days,
		StartDate:     startDate,
		EndDate:       endDate,
		IsActive:      isActive,
		Notes:         notes,
	}, nil
}

var localDateTimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
}

// parseDateTime reads ISO-8601 timestamps. Values without an offset are taken in loc.
func parseDateTime(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.In(loc), nil
	}
	for _, layout := range localDateTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid notification_datetime %q", s)
}

// decodeData unmarshals either a bare payload or a {"data": ...} envelope into out.
func decodeData(body []byte, out any) error {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil
	}

	if body[0] == '{' {
		var envelope map[string]json.RawMessage
		if err := json.Unmarshal(body, &envelope); err != nil {
			return err
		}
		if raw, ok := envelope["data"]; ok {
			if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
				return nil
			}
			return json.Unmarshal(raw, out)
		}
	}

	return json.Unmarshal(body, out)
}
