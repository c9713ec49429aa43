// Package config resolves runtime settings from defaults, an optional .env file
// and the process environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"survey-report/internal/logger"
)

const (
	DefaultDataPath     = "PesquisaForms.xlsx"
	DefaultDelimiter    = ";"
	DefaultWindowWidth  = 1200
	DefaultWindowHeight = 800
)

type Config struct {
	DataPath     string
	Delimiter    string
	LogLevel     logger.LogLevel
	JSONLogs     bool
	WindowWidth  float32
	WindowHeight float32
}

func Default() Config {
	return Config{
		DataPath:     DefaultDataPath,
		Delimiter:    DefaultDelimiter,
		LogLevel:     logger.InfoLevel,
		WindowWidth:  DefaultWindowWidth,
		WindowHeight: DefaultWindowHeight,
	}
}

// Load applies envFile (when it exists) and then the environment on top of Default.
// Variables already set in the environment win over the file.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to read %s: %w", envFile, err)
		}
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function so tests need not touch the process env.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Default()

	if v := getenv("SURVEY_DATA_PATH"); v != "" {
		cfg.DataPath = v
	}
	if v := getenv("SURVEY_DELIMITER"); v != "" {
		cfg.Delimiter = v
	}
	if v := getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = logger.ParseLevel(v)
	} else if getenv("DEBUG") == "1" {
		cfg.LogLevel = logger.DebugLevel
	}
	if v := getenv("SURVEY_JSON_LOGS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SURVEY_JSON_LOGS %q: %w", v, err)
		}
		cfg.JSONLogs = b
	}
	if v := getenv("SURVEY_WINDOW_SIZE"); v != "" {
		w, h, err := parseSize(v)
		if err != nil {
			return Config{}, err
		}
		cfg.WindowWidth, cfg.WindowHeight = w, h
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DataPath) == "" {
		return errors.New("data path must not be empty")
	}
	if c.Delimiter == "" {
		return errors.New("delimiter must not be empty")
	}
	if c.WindowWidth < 400 || c.WindowHeight < 300 {
		return fmt.Errorf("window size %.0fx%.0f is below the 400x300 minimum", c.WindowWidth, c.WindowHeight)
	}
	return nil
}

// parseSize accepts WIDTHxHEIGHT, e.g. 1200x800.
func parseSize(s string) (float32, float32, error) {
	parts := strings.SplitN(strings.ToLower(s), "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid SURVEY_WINDOW_SIZE %q, want WIDTHxHEIGHT", s)
	}
	w, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 32)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid window width %q: %w", parts[0], err)
	}
	h, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 32)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid window height %q: %w", parts[1], err)
	}
	return float32(w), float32(h), nil
}
