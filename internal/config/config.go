package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config holds runtime settings for the survey builder.
type Config struct {
	DBPath         string
	LogFile        string
	LogLevel       slog.Level
	LoadTimeout    time.Duration
	PurgeOnDecline bool
	Compress       bool
}

// DefaultConfig returns a Config with sensible defaults. The store lives
// under ~/.surveybuilder; logging is off.
func DefaultConfig() Config {
	dbPath := "drafts.db"
	if home, err := os.UserHomeDir(); err == nil {
		dbPath = filepath.Join(home, ".surveybuilder", "drafts.db")
	}
	return Config{
		DBPath:         dbPath,
		LogLevel:       slog.LevelInfo,
		LoadTimeout:    2 * time.Second,
		PurgeOnDecline: true,
		Compress:       true,
	}
}

// LoadConfig reads configuration from environment variables,
// falling back to defaults for any unset or invalid values.
func LoadConfig() Config {
	return loadFrom(os.Getenv)
}

func loadFrom(getenv func(string) string) Config {
	cfg := DefaultConfig()

	if v := getenv("SURVEYBUILDER_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := getenv("SURVEYBUILDER_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := getenv("SURVEYBUILDER_LOG_LEVEL"); v != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(strings.ToUpper(v))); err == nil {
			cfg.LogLevel = lvl
		}
	}
	if v := getenv("SURVEYBUILDER_LOAD_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.LoadTimeout = time.Duration(n) * time.Millisecond
		}
	}
	if v := getenv("SURVEYBUILDER_PURGE_ON_DECLINE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.PurgeOnDecline = b
		}
	}
	if v := getenv("SURVEYBUILDER_COMPRESS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Compress = b
		}
	}

	return cfg
}

// NewLogger builds the application logger. The terminal belongs to the UI,
// so logs only go to LogFile; without one they are discarded. The returned
// closer must be called on exit.
func (c Config) NewLogger() (*slog.Logger, io.Closer, error) {
	if c.LogFile == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), io.NopCloser(nil), nil
	}
	if err := os.MkdirAll(filepath.Dir(c.LogFile), 0755); err != nil {
		return nil, nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: c.LogLevel}))
	return logger, f, nil
}
