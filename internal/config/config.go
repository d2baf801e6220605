package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// Defaults
const (
	DefaultAPIURL  = "http://127.0.0.1:8000"
	DefaultTimeout = 10 * time.Second
)

// Environment variables
const (
	EnvAPIURL   = "MOODLOG_API_URL"
	EnvTimeout  = "MOODLOG_TIMEOUT"
	EnvLogFile  = "MOODLOG_LOG_FILE"
	EnvMirrorDB = "MOODLOG_MIRROR_DB"
)

// Config holds runtime settings shared by the moodlog binaries
type Config struct {
	APIURL   string
	Timeout  time.Duration
	LogFile  string
	MirrorDB string
}

// Load reads a .env file from the working directory if present, then the
// environment, falling back to defaults for anything unset or unparseable.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		APIURL:   getEnv(EnvAPIURL, DefaultAPIURL),
		Timeout:  getDuration(EnvTimeout, DefaultTimeout),
		LogFile:  os.Getenv(EnvLogFile),
		MirrorDB: getEnv(EnvMirrorDB, defaultMirrorPath()),
	}
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(value)
	if err != nil || d < 0 {
		return defaultVal
	}
	return d
}

// defaultMirrorPath places the mirror under the XDG data directory
func defaultMirrorPath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "moodlog", "mirror.db")
}
