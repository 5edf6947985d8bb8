package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures everything delayalert reads from config.toml.
type Config struct {
	BackendEndpoint string
	RoutesSource    string
	RequestTimeout  time.Duration
	LogFile         string
	LogLevel        string
	S3Region        string
	S3Endpoint      string
	S3PathStyle     bool
}

const (
	defaultConfigPath     = "~/.config/delayalert/config.toml"
	defaultRoutesSource   = "~/.config/delayalert/routes.json"
	defaultLogFile        = "~/.local/state/delayalert/delayalert.log"
	defaultLogLevel       = "info"
	defaultRequestTimeout = 10 * time.Second
)

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		RoutesSource:   mustExpand(defaultRoutesSource),
		RequestTimeout: defaultRequestTimeout,
		LogFile:        mustExpand(defaultLogFile),
		LogLevel:       defaultLogLevel,
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
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
		BackendEndpoint       string `toml:"backend_endpoint"`
		RoutesSource          string `toml:"routes_source"`
		RequestTimeoutSeconds int    `toml:"request_timeout_seconds"`
		LogFile               string `toml:"log_file"`
		LogLevel              string `toml:"log_level"`
		S3Region              string `toml:"s3_region"`
		S3Endpoint            string `toml:"s3_endpoint"`
		S3PathStyle           bool   `toml:"s3_path_style"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.BackendEndpoint = strings.TrimSpace(raw.BackendEndpoint)

	if src := strings.TrimSpace(raw.RoutesSource); src != "" {
		cfg.RoutesSource = expandSource(src)
	}
	if raw.RequestTimeoutSeconds > 0 {
		cfg.RequestTimeout = time.Duration(raw.RequestTimeoutSeconds) * time.Second
	}
	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}
	if level := strings.TrimSpace(raw.LogLevel); level != "" {
		cfg.LogLevel = strings.ToLower(level)
	}
	cfg.S3Region = strings.TrimSpace(raw.S3Region)
	cfg.S3Endpoint = strings.TrimSpace(raw.S3Endpoint)
	cfg.S3PathStyle = raw.S3PathStyle

	return cfg, nil
}

// ExpandPath resolves a leading ~ to the home directory and makes path
// absolute.
func ExpandPath(path string) (string, error) {
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

// expandSource leaves URLs alone and expands everything else as a path.
func expandSource(src string) string {
	if strings.Contains(src, "://") {
		return src
	}
	return mustExpand(src)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return ExpandPath(defaultConfigPath)
	}
	return ExpandPath(path)
}

func mustExpand(path string) string {
	expanded, err := ExpandPath(path)
	if err != nil {
		return path
	}
	return expanded
}
