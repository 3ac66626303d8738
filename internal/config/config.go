// Package config loads the solver CLI configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every environment variable name.
const Prefix = "ADVENT"

// LogFormat selects the log output encoding.
type LogFormat string

// Log formats.
const (
	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"
)

var (
	// ErrInvalidLogFormat indicates an unknown ADVENT_LOG_FORMAT.
	ErrInvalidLogFormat = errors.New("config: invalid log format")
	// ErrInvalidLogLevel indicates an unknown ADVENT_LOG_LEVEL.
	ErrInvalidLogLevel = errors.New("config: invalid log level")
	// ErrInvalidScanLimit indicates a non-positive ADVENT_SCAN_LIMIT.
	ErrInvalidScanLimit = errors.New("config: scan limit must be positive")
)

// Config holds the CLI settings.
type Config struct {
	// InputDir is where "NN.txt" inputs are looked up, NN the zero-padded day.
	// Env: ADVENT_INPUT_DIR (default: inputs)
	InputDir string `envconfig:"INPUT_DIR" default:"inputs"`

	// LogLevel is the logrus level name.
	// Env: ADVENT_LOG_LEVEL (default: info)
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// LogFormat is text or json.
	// Env: ADVENT_LOG_FORMAT (default: text)
	LogFormat LogFormat `envconfig:"LOG_FORMAT" default:"text"`

	// ScanLimit bounds the brute-force almanac oracle used by "solve --verify".
	// Env: ADVENT_SCAN_LIMIT (default: 10000000)
	ScanLimit int64 `envconfig:"SCAN_LIMIT" default:"10000000"`
}

// Load reads an optional .env file, then the environment, and validates the
// result. A missing envFile is not an error; an empty envFile skips it.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := loadDotEnv(envFile); err != nil {
			return Config{}, fmt.Errorf("config: load %s: %w", envFile, err)
		}
	}
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg.normalize()
}

func loadDotEnv(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load(path)
}

func (c Config) normalize() (Config, error) {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.LogFormat = LogFormat(strings.ToLower(strings.TrimSpace(string(c.LogFormat))))

	switch c.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.LogFormat)
	}
	switch c.LogLevel {
	case "trace", "debug", "info", "warn", "warning", "error":
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
	if c.ScanLimit <= 0 {
		return Config{}, fmt.Errorf("%w: %d", ErrInvalidScanLimit, c.ScanLimit)
	}
	return c, nil
}
