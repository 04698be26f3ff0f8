package repository

import "errors"

var (
	ErrInvalidAlertData    = errors.New("invalid alert data")
	ErrInvalidScheduleData = errors.New("invalid schedule data")
)
