package config

import (
	"os"
	"strconv"
	"time"
)

// AppConfig is the process-level configuration read from the
// environment at startup. The fingerprint device address and timeout
// are injected here instead of being compiled into the bridge.
type AppConfig struct {
	Port          string
	SqlitePath    string
	ConfigPath    string
	DeviceBaseURL string
	DeviceTimeout time.Duration
	DeviceRetries int
}

func LoadApp() AppConfig {
	return AppConfig{
		Port:          envOr("PORT", "5000"),
		SqlitePath:    envOr("SQLITE_PATH", "data/database.db"),
		ConfigPath:    envOr("CONFIG_PATH", "settings/config.toml"),
		DeviceBaseURL: envOr("DEVICE_BASE_URL", "http://192.168.43.63"),
		DeviceTimeout: envDurationOr("DEVICE_TIMEOUT", 5*time.Second),
		DeviceRetries: envIntOr("DEVICE_RETRIES", 1),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
