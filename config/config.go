package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the client settings the storefront core needs.
type Config struct {
	APIBaseURL     string
	DataDir        string
	PageSize       int
	RequestTimeout time.Duration
	DebounceDelay  time.Duration
}

const (
	defaultConfigPath = "~/.config/storefront/config.toml"
	defaultDataDir    = "~/.local/share/storefront"
	defaultAPIBaseURL = "http://127.0.0.1:8000"
	defaultPageSize   = 10
	defaultTimeout    = 10 * time.Second
	defaultDebounce   = 500 * time.Millisecond
)

// Load locates and parses the storefront config, falling back to defaults
// when missing. A .env file in the working directory and process environment
// variables (STOREFRONT_API_URL, STOREFRONT_DATA_DIR) override file values.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		APIBaseURL:     defaultAPIBaseURL,
		DataDir:        defaultDataDir,
		PageSize:       defaultPageSize,
		RequestTimeout: defaultTimeout,
		DebounceDelay:  defaultDebounce,
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg.DataDir = mustExpand(defaultDataDir)
			applyEnv(&cfg)
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIBaseURL    string `toml:"api_base_url"`
		DataDir       string `toml:"data_dir"`
		PageSize      int    `toml:"page_size"`
		TimeoutSec    int    `toml:"timeout_seconds"`
		DebounceMilli int    `toml:"debounce_ms"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.APIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := strings.TrimSpace(raw.DataDir); v != "" {
		cfg.DataDir = v
	}
	if raw.PageSize > 0 {
		cfg.PageSize = raw.PageSize
	}
	if raw.TimeoutSec > 0 {
		cfg.RequestTimeout = time.Duration(raw.TimeoutSec) * time.Second
	}
	if raw.DebounceMilli > 0 {
		cfg.DebounceDelay = time.Duration(raw.DebounceMilli) * time.Millisecond
	}

	cfg.DataDir = mustExpand(cfg.DataDir)
	applyEnv(&cfg)
	return cfg, nil
}

// applyEnv layers .env and process environment on top of file values.
func applyEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := strings.TrimSpace(os.Getenv("STOREFRONT_API_URL")); v != "" {
		cfg.APIBaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv("STOREFRONT_DATA_DIR")); v != "" {
		cfg.DataDir = mustExpand(v)
	}
	if v := strings.TrimSpace(os.Getenv("STOREFRONT_PAGE_SIZE")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.PageSize = n
		}
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
