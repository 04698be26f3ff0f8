package config

import (
	"fmt"
	"os"
	"time"
)

const (
	syncIntervalSecondsEnv = "SYNC_INTERVAL_SECONDS"
	syncMinLeadMinutesEnv  = "SYNC_MIN_LEAD_MINUTES"
	syncDayRolloverEnv     = "SYNC_DAY_ROLLOVER"
	syncOnStartupEnv       = "SYNC_ON_STARTUP"
	syncTimezoneEnv        = "SYNC_TIMEZONE"

	defaultSyncIntervalSeconds = 60
	defaultSyncMinLeadMinutes  = 5
)

type SyncConfig struct {
	Interval    time.Duration
	MinLeadTime time.Duration
	DayRollover bool
	OnStartup   bool
	Location    *time.Location
}

func LoadSyncConfig() (*SyncConfig, error) {
	loc := time.Local
	if name := os.Getenv(syncTimezoneEnv); name != "" {
		parsed, err := time.LoadLocation(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidTimezone, name)
		}
		loc = parsed
	}

	return &SyncConfig{
		Interval:    time.Duration(positiveInt(syncIntervalSecondsEnv, defaultSyncIntervalSeconds)) * time.Second,
		MinLeadTime: time.Duration(positiveInt(syncMinLeadMinutesEnv, defaultSyncMinLeadMinutes)) * time.Minute,
		DayRollover: os.Getenv(syncDayRolloverEnv) != "false",
		OnStartup:   os.Getenv(syncOnStartupEnv) != "false",
		Location:    loc,
	}, nil
}
