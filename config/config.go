package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	ServerPort         string
	LogLevel           string
	SnapshotTTLMinutes string
	UploadMinInterval  string
	MaxUploadSizeMB    string
}

// GetSnapshotTTL returns the dataset snapshot TTL from environment or default
func (c *Config) GetSnapshotTTL() time.Duration {
	if c.SnapshotTTLMinutes == "" {
		return 15 * time.Minute
	}

	minutes, err := strconv.Atoi(c.SnapshotTTLMinutes)
	if err != nil {
		logrus.Warnf("Invalid SNAPSHOT_TTL_MINUTES value: %s, using default 15 minutes", c.SnapshotTTLMinutes)
		return 15 * time.Minute
	}

	return time.Duration(minutes) * time.Minute
}

// GetUploadMinInterval returns the minimum interval between uploads or default
func (c *Config) GetUploadMinInterval() time.Duration {
	if c.UploadMinInterval == "" {
		return 500 * time.Millisecond
	}

	ms, err := strconv.Atoi(c.UploadMinInterval)
	if err != nil {
		logrus.Warnf("Invalid UPLOAD_MIN_INTERVAL_MS value: %s, using default 500ms", c.UploadMinInterval)
		return 500 * time.Millisecond
	}

	return time.Duration(ms) * time.Millisecond
}

// GetMaxUploadSize returns the maximum accepted upload size in bytes
func (c *Config) GetMaxUploadSize() int64 {
	if c.MaxUploadSizeMB == "" {
		return 10 << 20
	}

	mb, err := strconv.Atoi(c.MaxUploadSizeMB)
	if err != nil || mb <= 0 {
		logrus.Warnf("Invalid MAX_UPLOAD_SIZE_MB value: %s, using default 10 MB", c.MaxUploadSizeMB)
		return 10 << 20
	}

	return int64(mb) << 20
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		logrus.Warn("Error loading .env file, using system environment variables")
	}

	return &Config{
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		SnapshotTTLMinutes: getEnv("SNAPSHOT_TTL_MINUTES", "15"),
		UploadMinInterval:  getEnv("UPLOAD_MIN_INTERVAL_MS", "500"),
		MaxUploadSizeMB:    getEnv("MAX_UPLOAD_SIZE_MB", "10"),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
