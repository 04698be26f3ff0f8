package config

import (
	"os"
	"strconv"
	"strings"
)

const (
	redisAddrEnv     = "REDIS_ADDR"
	redisPasswordEnv = "REDIS_PASSWORD"
	redisDBEnv       = "REDIS_DB"
	redisTLSEnv      = "REDIS_TLS"
	redisPrefixEnv   = "REDIS_KEY_PREFIX"

	defaultRedisAddr = "localhost:6379"
	defaultRedisDB   = 0
	defaultKeyPrefix = "medsync"
)

type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	TLS       bool
	// KeyPrefix separates this service's keys from other tenants of the same database.
	KeyPrefix string
}

func LoadRedisConfig() (*RedisConfig, error) {
	addr := os.Getenv(redisAddrEnv)
	if addr == "" {
		addr = defaultRedisAddr
	}

	password := os.Getenv(redisPasswordEnv)

	db := defaultRedisDB
	if raw := os.Getenv(redisDBEnv); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, ErrInvalidRedisDB
		}
		db = parsed
	}

	useTLS := os.Getenv(redisTLSEnv) == "true"

	prefix := strings.Trim(os.Getenv(redisPrefixEnv), ":")
	if prefix == "" {
		prefix = defaultKeyPrefix
	}

	return &RedisConfig{
		Addr:      addr,
		Password:  password,
		DB:        db,
		TLS:       useTLS,
		KeyPrefix: prefix,
	}, nil
}

func (c *RedisConfig) Validate() error {
	if c == nil || c.Addr == "" {
		return ErrRedisAddrMissing
	}
	return nil
}

// Namespace returns the key namespace for one device's alert store and cache.
func (c *RedisConfig) Namespace(deviceID string) string {
	if c.KeyPrefix == "" {
		return deviceID
	}
	return c.KeyPrefix + ":" + deviceID
}
