package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearConfigEnv(t *testing.T) {
	t.Helper()

	keys := []string{
		"APP_ENV",
		"HTTP_ADDR",
		"HTTP_READ_TIMEOUT",
		"HTTP_WRITE_TIMEOUT",
		"HTTP_IDLE_TIMEOUT",
		"LOG_LEVEL",
		"POSTGRES_DSN",
		"REDIS_ADDR",
		"REDIS_PASSWORD",
		"REDIS_DB",
		"REWIND_HISTORY_SIZE",
		"REWIND_FREE_USES_PER_DAY",
		"SWIPE_RATE_PER_MINUTE",
		"SWIPE_RATE_PER_10SEC",
	}
	for _, key := range keys {
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}
}

func TestLoadUsesDefaultsAndYAMLOverrides(t *testing.T) {
	clearConfigEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
http:
  addr: ":9090"
rewind:
  history_size: 25
limits:
  swipe_rate_per_10sec: 5
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.HTTP.Addr != ":9090" {
		t.Fatalf("unexpected http addr: %s", cfg.HTTP.Addr)
	}
	if cfg.Rewind.HistorySize != 25 {
		t.Fatalf("unexpected history size: %d", cfg.Rewind.HistorySize)
	}
	if cfg.Limits.SwipeRatePer10Sec != 5 {
		t.Fatalf("unexpected 10s swipe rate: %d", cfg.Limits.SwipeRatePer10Sec)
	}

	if cfg.Rewind.FreeUsesPerDay != 1 {
		t.Fatalf("free rewind default should stay 1, got %d", cfg.Rewind.FreeUsesPerDay)
	}
	if cfg.Limits.SwipeRatePerMinute != 60 {
		t.Fatalf("swipe rate/minute default should stay 60, got %d", cfg.Limits.SwipeRatePerMinute)
	}
}

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load config with missing file: %v", err)
	}

	if cfg.HTTP.Addr != ":8080" {
		t.Fatalf("unexpected default http addr: %s", cfg.HTTP.Addr)
	}
	if cfg.Rewind.HistorySize != 10 {
		t.Fatalf("unexpected default history size: %d", cfg.Rewind.HistorySize)
	}
	if cfg.Rewind.FreeUsesPerDay != 1 {
		t.Fatalf("unexpected default free rewinds: %d", cfg.Rewind.FreeUsesPerDay)
	}
}

func TestEnvOverridesWinOverYAML(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("HTTP_ADDR", ":7070")
	t.Setenv("REWIND_FREE_USES_PER_DAY", "3")

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("http:\n  addr: \":9090\"\n"), 0o600); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.HTTP.Addr != ":7070" {
		t.Fatalf("env override lost: %s", cfg.HTTP.Addr)
	}
	if cfg.Rewind.FreeUsesPerDay != 3 {
		t.Fatalf("env override lost: %d", cfg.Rewind.FreeUsesPerDay)
	}
}

func TestLoadRejectsMalformedIntEnv(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("REWIND_HISTORY_SIZE", "ten")

	if _, err := Load(""); err == nil {
		t.Fatalf("expected error for malformed int override")
	}
}
