package domain

import "errors"

var (
	ErrInvalidTimeOfDay     = errors.New("invalid time of day")
	ErrInvalidDate          = errors.New("invalid date")
	ErrInvalidWeekday       = errors.New("weekday must be within 0..6")
	ErrNoDaysOfWeek         = errors.New("days_of_week must not be empty")
	ErrMedicineNameRequired = errors.New("medicine_name is required")
	ErrStartDateRequired    = errors.New("start_date is required")
	ErrEndBeforeStart       = errors.New("end_date must not be before start_date")
	ErrInvalidActionType    = errors.New("invalid action type")
	ErrScheduleNotFound     = errors.New("schedule not found")
	ErrAlertNotFound        = errors.New("alert not found")
	ErrChannelNotFound      = errors.New("alert channel not configured")
	ErrPermissionUnset      = errors.New("notification permission not yet answered")
	ErrScheduleCacheMiss    = errors.New("schedule cache miss")
)
