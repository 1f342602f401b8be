package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("STOREFRONT_API_URL", "")
	t.Setenv("STOREFRONT_DATA_DIR", "")
	t.Setenv("STOREFRONT_PAGE_SIZE", "")

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIBaseURL != defaultAPIBaseURL {
		t.Fatalf("APIBaseURL = %q, want %q", cfg.APIBaseURL, defaultAPIBaseURL)
	}
	if cfg.PageSize != defaultPageSize {
		t.Fatalf("PageSize = %d, want %d", cfg.PageSize, defaultPageSize)
	}
	if cfg.RequestTimeout != defaultTimeout {
		t.Fatalf("RequestTimeout = %v, want %v", cfg.RequestTimeout, defaultTimeout)
	}
	if cfg.DebounceDelay != defaultDebounce {
		t.Fatalf("DebounceDelay = %v, want %v", cfg.DebounceDelay, defaultDebounce)
	}

	wantDataDir, err := expandPath(defaultDataDir)
	if err != nil {
		t.Fatalf("expandPath(defaultDataDir) returned error: %v", err)
	}
	if cfg.DataDir != wantDataDir {
		t.Fatalf("DataDir = %q, want %q", cfg.DataDir, wantDataDir)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("STOREFRONT_API_URL", "")
	t.Setenv("STOREFRONT_DATA_DIR", "")
	t.Setenv("STOREFRONT_PAGE_SIZE", "")

	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
api_base_url = "  https://api.perchgoods.test  "
data_dir = "  ~/.storefront/data  "
page_size = 25
timeout_seconds = 3
debounce_ms = 250
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIBaseURL != "https://api.perchgoods.test" {
		t.Fatalf("APIBaseURL = %q, want trimmed URL", cfg.APIBaseURL)
	}
	wantDataDir := filepath.Join(home, ".storefront", "data")
	if cfg.DataDir != wantDataDir {
		t.Fatalf("DataDir = %q, want %q", cfg.DataDir, wantDataDir)
	}
	if cfg.PageSize != 25 {
		t.Fatalf("PageSize = %d, want 25", cfg.PageSize)
	}
	if cfg.RequestTimeout != 3*time.Second {
		t.Fatalf("RequestTimeout = %v, want 3s", cfg.RequestTimeout)
	}
	if cfg.DebounceDelay != 250*time.Millisecond {
		t.Fatalf("DebounceDelay = %v, want 250ms", cfg.DebounceDelay)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("api_base_url = \"https://file.example\"\npage_size = 5\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	t.Setenv("STOREFRONT_API_URL", "https://env.example")
	t.Setenv("STOREFRONT_DATA_DIR", "")
	t.Setenv("STOREFRONT_PAGE_SIZE", "40")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIBaseURL != "https://env.example" {
		t.Fatalf("APIBaseURL = %q, want env override", cfg.APIBaseURL)
	}
	if cfg.PageSize != 40 {
		t.Fatalf("PageSize = %d, want env override 40", cfg.PageSize)
	}
}

func TestLoad_InvalidTOMLIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("not valid toml {{{\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("Load returned nil error for malformed config, want error")
	}
}

func TestLoad_InvalidEnvPageSizeIgnored(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("STOREFRONT_API_URL", "")
	t.Setenv("STOREFRONT_DATA_DIR", "")
	t.Setenv("STOREFRONT_PAGE_SIZE", "not-a-number")

	cfg, err := Load(filepath.Join(home, "absent.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.PageSize != defaultPageSize {
		t.Fatalf("PageSize = %d, want default %d", cfg.PageSize, defaultPageSize)
	}
}
