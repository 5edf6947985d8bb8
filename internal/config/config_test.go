package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.BackendEndpoint != "" {
		t.Fatalf("BackendEndpoint = %q, want empty", cfg.BackendEndpoint)
	}
	if cfg.RequestTimeout != defaultRequestTimeout {
		t.Fatalf("RequestTimeout = %v, want %v", cfg.RequestTimeout, defaultRequestTimeout)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("LogLevel = %q, want info", cfg.LogLevel)
	}

	wantRoutes, err := ExpandPath(defaultRoutesSource)
	if err != nil {
		t.Fatalf("ExpandPath(defaultRoutesSource) returned error: %v", err)
	}
	if cfg.RoutesSource != wantRoutes {
		t.Fatalf("RoutesSource = %q, want %q", cfg.RoutesSource, wantRoutes)
	}
	if !strings.HasPrefix(cfg.LogFile, home) {
		t.Fatalf("LogFile = %q, want it under HOME %q", cfg.LogFile, home)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
backend_endpoint = "  https://api.example.com/prod/user-settings  "
routes_source = "  ~/data/routes.json  "
request_timeout_seconds = 3
log_file = "~/logs/form.log"
log_level = " DEBUG "
s3_region = "ap-northeast-1"
s3_endpoint = "http://127.0.0.1:9000"
s3_path_style = true
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.BackendEndpoint != "https://api.example.com/prod/user-settings" {
		t.Fatalf("BackendEndpoint = %q", cfg.BackendEndpoint)
	}
	if cfg.RoutesSource != filepath.Join(home, "data/routes.json") {
		t.Fatalf("RoutesSource = %q, want it under HOME %q", cfg.RoutesSource, home)
	}
	if cfg.RequestTimeout != 3*time.Second {
		t.Fatalf("RequestTimeout = %v, want 3s", cfg.RequestTimeout)
	}
	if cfg.LogFile != filepath.Join(home, "logs/form.log") {
		t.Fatalf("LogFile = %q", cfg.LogFile)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.S3Region != "ap-northeast-1" || cfg.S3Endpoint != "http://127.0.0.1:9000" || !cfg.S3PathStyle {
		t.Fatalf("S3 settings = %q %q %v", cfg.S3Region, cfg.S3Endpoint, cfg.S3PathStyle)
	}
}

func TestLoad_URLSourcesAreNotExpanded(t *testing.T) {
	for _, src := range []string{"https://example.com/routes.json", "s3://bucket/static/routes.json"} {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte(`routes_source = "`+src+`"`), 0o600); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load returned error: %v", err)
		}
		if cfg.RoutesSource != src {
			t.Fatalf("RoutesSource = %q, want %q", cfg.RoutesSource, src)
		}
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
routes_source = "   "
log_level = ""
request_timeout_seconds = 0
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	wantRoutes, err := ExpandPath(defaultRoutesSource)
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	if cfg.RoutesSource != wantRoutes {
		t.Fatalf("RoutesSource = %q, want %q", cfg.RoutesSource, wantRoutes)
	}
	if cfg.LogLevel != defaultLogLevel {
		t.Fatalf("LogLevel = %q, want %q", cfg.LogLevel, defaultLogLevel)
	}
	if cfg.RequestTimeout != defaultRequestTimeout {
		t.Fatalf("RequestTimeout = %v, want %v", cfg.RequestTimeout, defaultRequestTimeout)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`backend_endpoint = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath("~/a/b")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("ExpandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := ExpandPath("   "); err == nil {
		t.Fatalf("ExpandPath returned nil error, want error")
	}
}
