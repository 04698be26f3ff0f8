package config

import "errors"

var (
	ErrRedisAddrMissing  = errors.New("REDIS_ADDR is required")
	ErrInvalidRedisDB    = errors.New("REDIS_DB must be a valid integer")
	ErrBackendURLMissing = errors.New("BACKEND_URL is required")
	ErrAuthTokenMissing  = errors.New("AUTH_TOKEN is required")
	ErrInvalidTimezone   = errors.New("SYNC_TIMEZONE must be a valid IANA time zone")
)
