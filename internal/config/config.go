package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	BackendURL  string
	AuthToken   string
	DeviceID    string
	Port        string
	LogLevel    slog.Level
	Environment string
	ServiceName string
	TaskQueue   TaskQueueConfig
	Redis       *RedisConfig
	Sync        *SyncConfig
	Alert       *AlertConfig
}

type TaskQueueConfig struct {
	PrimindTasksURL string
	QueueName       string
	TargetURL       string

	GCloudProjectID  string
	GCloudLocationID string
	GCloudQueueID    string
	GCloudTargetURL  string

	MaxRetries int
}

// Load reads the configuration from the environment. A .env file in the
// working directory is applied first when present; real variables win.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env file", slog.String("error", err.Error()))
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	deviceID := os.Getenv("DEVICE_ID")
	if deviceID == "" {
		deviceID = "default"
	}

	queueName := os.Getenv("TASK_QUEUE_NAME")
	if queueName == "" {
		queueName = "default"
	}

	maxRetries := 3
	if v := os.Getenv("TASK_QUEUE_MAX_RETRIES"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			maxRetries = parsed
		}
	}

	env := strings.ToLower(os.Getenv("ENV"))
	if env == "" {
		env = "dev"
	}

	serviceName := os.Getenv("SERVICE_NAME")
	if serviceName == "" {
		serviceName = "medication-sync"
	}

	redisConfig, err := LoadRedisConfig()
	if err != nil {
		return nil, err
	}

	syncConfig, err := LoadSyncConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		BackendURL:  os.Getenv("BACKEND_URL"),
		AuthToken:   os.Getenv("AUTH_TOKEN"),
		DeviceID:    deviceID,
		Port:        port,
		LogLevel:    parseLogLevel(os.Getenv("LOG_LEVEL")),
		Environment: env,
		ServiceName: serviceName,
		TaskQueue: TaskQueueConfig{
			PrimindTasksURL: os.Getenv("PRIMIND_TASKS_URL"),
			QueueName:       queueName,
			TargetURL:       os.Getenv("TASK_QUEUE_TARGET_URL"),

			GCloudProjectID:  os.Getenv("GCLOUD_PROJECT_ID"),
			GCloudLocationID: os.Getenv("GCLOUD_LOCATION_ID"),
			GCloudQueueID:    os.Getenv("GCLOUD_QUEUE_ID"),
			GCloudTargetURL:  os.Getenv("GCLOUD_TARGET_URL"),

			MaxRetries: maxRetries,
		},
		Redis: redisConfig,
		Sync:  syncConfig,
		Alert: LoadAlertConfig(),
	}, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func positiveInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultValue
}
