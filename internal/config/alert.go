package config

import (
	"os"
	"time"
)

const (
	alertChannelIDEnv         = "ALERT_CHANNEL_ID"
	alertChannelNameEnv       = "ALERT_CHANNEL_NAME"
	alertChannelImportanceEnv = "ALERT_CHANNEL_IMPORTANCE"
	alertAutoGrantEnv         = "ALERT_AUTO_GRANT"
	scheduleCacheTTLEnv       = "SCHEDULE_CACHE_TTL_MINUTES"

	defaultScheduleCacheTTLMinutes = 30
)

type AlertConfig struct {
	ChannelID         string
	ChannelName       string
	ChannelImportance string
	AutoGrant         bool
	ScheduleCacheTTL  time.Duration
}

// LoadAlertConfig leaves channel fields empty when unset; the device layer
// supplies its own defaults.
func LoadAlertConfig() *AlertConfig {
	return &AlertConfig{
		ChannelID:         os.Getenv(alertChannelIDEnv),
		ChannelName:       os.Getenv(alertChannelNameEnv),
		ChannelImportance: os.Getenv(alertChannelImportanceEnv),
		AutoGrant:         os.Getenv(alertAutoGrantEnv) != "false",
		ScheduleCacheTTL:  time.Duration(positiveInt(scheduleCacheTTLEnv, defaultScheduleCacheTTLMinutes)) * time.Minute,
	}
}
