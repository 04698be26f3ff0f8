package handler

import (
	"errors"
	"fmt"
	"time"

	"github.com/KasumiMercury/primind-medication-sync/internal/device"
	"github.com/KasumiMercury/primind-medication-sync/internal/domain"
	"github.com/KasumiMercury/primind-medication-sync/internal/service/recurrence"
)

type scheduleBody struct {
	MedicineName  string  `json:"medicine_name"`
	Dosage        string  `json:"dosage"`
	ScheduledTime string  `json:"scheduled_time" binding:"required"`
	DaysOfWeek    []int   `json:"days_of_week"`
	StartDate     string  `json:"start_date" binding:"required"`
	EndDate       *string `json:"end_date"`
	IsActive      *bool   `json:"is_active"`
	Notes         string  `json:"notes"`
}

func (b scheduleBody) toDomain(id string) (domain.Schedule, error) {
	scheduledTime, err := domain.ParseTimeOfDay(b.ScheduledTime)
	if err != nil {
		return domain.Schedule{}, err
	}

	startDate, err := domain.ParseDate(b.StartDate)
	if err != nil {
		return domain.Schedule{}, fmt.Errorf("start_date: %w", err)
	}

	var endDate *domain.Date
	if b.EndDate != nil && *b.EndDate != "" {
		d, err := domain.ParseDate(*b.EndDate)
		if err != nil {
			return domain.Schedule{}, fmt.Errorf("end_date: %w", err)
		}
		endDate = &d
	}

	days := make([]domain.Weekday, 0, len(b.DaysOfWeek))
	for _, d := range b.DaysOfWeek {
		days = append(days, domain.Weekday(d))
	}

	isActive := true
	if b.IsActive != nil {
		isActive = *b.IsActive
	}

	return domain.Schedule{
		ID:            id,
		MedicineName:  b.MedicineName,
		Dosage:        b.Dosage,
		ScheduledTime: scheduledTime,
		DaysOfWeek:    days,
		StartDate:     startDate,
		EndDate:       endDate,
		IsActive:      isActive,
		Notes:         b.Notes,
	}, nil
}

type scheduleView struct {
	ID            string  `json:"id"`
	MedicineName  string  `json:"medicine_name"`
	Dosage        string  `json:"dosage"`
	ScheduledTime string  `json:"scheduled_time"`
	DaysOfWeek    []int   `json:"days_of_week"`
	StartDate     string  `json:"start_date"`
	EndDate       *string `json:"end_date"`
	IsActive      bool    `json:"is_active"`
	Notes         string  `json:"notes,omitempty"`
	RRule         string  `json:"rrule,omitempty"`
}

// newScheduleView renders s. The rrule is anchored in loc and left empty when
// the schedule cannot be expressed as one.
func newScheduleView(s domain.Schedule, loc *time.Location) scheduleView {
	days := make([]int, 0, len(s.DaysOfWeek))
	for _, d := range s.DaysOfWeek {
		days = append(days, int(d))
	}

	var endDate *string
	if s.EndDate != nil {
		v := s.EndDate.String()
		endDate = &v
	}

	rule, _ := recurrence.Rule(s, loc)

	return scheduleView{
		ID:            s.ID,
		MedicineName:  s.MedicineName,
		Dosage:        s.Dosage,
		ScheduledTime: s.ScheduledTime.String(),
		DaysOfWeek:    days,
		StartDate:     s.StartDate.String(),
		EndDate:       endDate,
		IsActive:      s.IsActive,
		Notes:         s.Notes,
		RRule:         rule,
	}
}

type actionLogBody struct {
	ScheduleID             string    `json:"schedule_id" binding:"required"`
	ScheduleNotificationID *string   `json:"schedule_notification_id"`
	ActionType             string    `json:"action_type" binding:"required"`
	ScheduledTime          time.Time `json:"scheduled_time" binding:"required"`
	Notes                  string    `json:"notes"`
}

type alertView struct {
	LocalID                string    `json:"local_id"`
	ScheduleID             string    `json:"schedule_id"`
	NotificationInstanceID string    `json:"notification_instance_id"`
	FireDateTime           time.Time `json:"fire_datetime"`
	Title                  string    `json:"title"`
	Body                   string    `json:"body"`
	ChannelID              string    `json:"channel_id"`
}

func newAlertView(a *domain.LocalAlert) alertView {
	return alertView{
		LocalID:                a.LocalID,
		ScheduleID:             a.ScheduleID,
		NotificationInstanceID: a.NotificationInstanceID,
		FireDateTime:           a.FireDateTime,
		Title:                  a.Title,
		Body:                   a.Body,
		ChannelID:              a.ChannelID,
	}
}

type alertResponseBody struct {
	LocalID                string    `json:"local_id"`
	ScheduleID             string    `json:"schedule_id"`
	NotificationInstanceID string    `json:"notification_instance_id"`
	FireDateTime           time.Time `json:"fire_datetime"`
	ActionType             string    `json:"action_type"`
	Notes                  string    `json:"notes"`
}

// needsLookup reports whether identifying fields must come from the stored alert.
func (b alertResponseBody) needsLookup() bool {
	return b.LocalID != "" && (b.ScheduleID == "" || b.NotificationInstanceID == "" || b.FireDateTime.IsZero())
}

// fillFrom copies the fields the caller left empty from the scheduled alert.
func (b *alertResponseBody) fillFrom(a *domain.LocalAlert) {
	if b.ScheduleID == "" {
		b.ScheduleID = a.ScheduleID
	}
	if b.NotificationInstanceID == "" {
		b.NotificationInstanceID = a.NotificationInstanceID
	}
	if b.FireDateTime.IsZero() {
		b.FireDateTime = a.FireDateTime
	}
}

func (b alertResponseBody) toResponse(now time.Time) (device.AlertResponse, error) {
	if b.ScheduleID == "" || b.FireDateTime.IsZero() {
		return device.AlertResponse{}, errors.New("schedule_id and fire_datetime are required unless local_id names a scheduled alert")
	}

	var actionType domain.ActionType
	if b.ActionType != "" {
		parsed, err := domain.ParseActionType(b.ActionType)
		if err != nil {
			return device.AlertResponse{}, err
		}
		actionType = parsed
	}

	return device.AlertResponse{
		LocalID:                b.LocalID,
		ScheduleID:             b.ScheduleID,
		NotificationInstanceID: b.NotificationInstanceID,
		FireDateTime:           b.FireDateTime,
		ActionType:             actionType,
		RespondedAt:            now,
		Notes:                  b.Notes,
	}, nil
}

type inFlightQuery struct {
	ScheduleID    string    `form:"schedule_id" binding:"required"`
	ScheduledTime time.Time `form:"scheduled_time" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
}

type permissionBody struct {
	Granted *bool `json:"granted" binding:"required"`
}

type pushRegisterBody struct {
	PushToken  string            `json:"push_token"`
	Platform   string            `json:"platform" binding:"required"`
	DeviceInfo map[string]string `json:"device_info"`
}
