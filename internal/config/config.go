// Package config loads environment configuration for SwipeKeys.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	defaultListenAddr  = "0.0.0.0:8790"
	defaultDataDir     = "./data"
	defaultMinSwipeLen = 25.0
	defaultCellWidth   = 78.0
	defaultCellHeight  = 54.0
	defaultLogLevel    = "info"
)

// Config holds runtime configuration values.
type Config struct {
	ListenAddr     string
	UIPassword     string
	PasswordMode   bool
	DataDir        string
	KeymapPath     string
	KeymapWatch    bool
	MinSwipeLen    float64
	CellWidth      float64
	CellHeight     float64
	TapPassthrough bool
	HostInject     bool
	LogLevel       string
}

// Load reads configuration from ./data/.env and environment variables.
func Load() (Config, error) {
	cfg := Config{
		ListenAddr:   defaultListenAddr,
		PasswordMode: true,
		DataDir:      defaultDataDir,
		MinSwipeLen:  defaultMinSwipeLen,
		CellWidth:    defaultCellWidth,
		CellHeight:   defaultCellHeight,
		LogLevel:     defaultLogLevel,
	}

	if err := loadEnvFile(filepath.Join(cfg.DataDir, ".env")); err != nil {
		return Config{}, err
	}

	cfg.ListenAddr = envString("LISTEN_ADDR", cfg.ListenAddr)
	cfg.DataDir = envString("DATA_DIR", cfg.DataDir)
	cfg.KeymapPath = envString("KEYMAP_PATH", "")
	cfg.KeymapWatch = envBool("KEYMAP_WATCH", cfg.KeymapWatch)
	cfg.TapPassthrough = envBool("TAP_PASSTHROUGH", cfg.TapPassthrough)
	cfg.HostInject = envBool("HOST_INJECT", cfg.HostInject)
	cfg.PasswordMode = envBool("PASSWORD_MODE", cfg.PasswordMode)
	cfg.UIPassword = strings.TrimSpace(os.Getenv("UI_PASSWORD"))

	level := strings.ToLower(envString("LOG_LEVEL", cfg.LogLevel))
	if _, ok := logLevels[level]; !ok {
		return Config{}, fmt.Errorf("LOG_LEVEL must be one of disabled, error, warn, info, debug, trace")
	}
	cfg.LogLevel = level

	minSwipe, err := envPositiveFloat("MIN_SWIPE_LEN", cfg.MinSwipeLen)
	if err != nil {
		return Config{}, err
	}
	cfg.MinSwipeLen = minSwipe

	cellWidth, err := envPositiveFloat("CELL_WIDTH", cfg.CellWidth)
	if err != nil {
		return Config{}, err
	}
	cfg.CellWidth = cellWidth

	cellHeight, err := envPositiveFloat("CELL_HEIGHT", cfg.CellHeight)
	if err != nil {
		return Config{}, err
	}
	cfg.CellHeight = cellHeight

	if cfg.KeymapWatch && cfg.KeymapPath == "" {
		return Config{}, errors.New("KEYMAP_WATCH requires KEYMAP_PATH")
	}
	if cfg.PasswordMode && cfg.UIPassword == "" {
		return Config{}, errors.New("UI_PASSWORD is required")
	}
	if !cfg.PasswordMode {
		cfg.UIPassword = ""
	}

	return cfg, nil
}

// envString returns an env override when present, otherwise a default.
func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// envPositiveFloat returns a float env override when present, otherwise a default.
func envPositiveFloat(key string, def float64) (float64, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}
	if !(value > 0) || math.IsInf(value, 1) {
		return 0, fmt.Errorf("%s must be > 0", key)
	}
	return value, nil
}

// envBool returns a bool env override when present, otherwise a default.
func envBool(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	switch strings.ToLower(raw) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

// loadEnvFile loads KEY=VALUE pairs from a .env file.
func loadEnvFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	for _, line := range strings.Split(string(data), "\n") {
		key, value, ok := parseEnvLine(line)
		if !ok {
			continue
		}
		if _, exists := os.LookupEnv(key); !exists {
			if err := os.Setenv(key, value); err != nil {
				return err
			}
		}
	}

	return nil
}

// parseEnvLine parses a single .env line into key/value.
func parseEnvLine(line string) (string, string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	line = strings.TrimPrefix(line, "export ")
	key, value, ok := strings.Cut(line, "=")
	if !ok {
		return "", "", false
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", "", false
	}
	return key, strings.Trim(strings.TrimSpace(value), `"'`), true
}
