package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATA_DIR", "")
	t.Setenv("CONNECTOR_TIMEOUT_SECONDS", "")
	t.Setenv("SEED_ON_EMPTY", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Storage.CandidatesPath() != filepath.Join("data", "store-candidates.json") {
		t.Errorf("unexpected candidates path: %s", cfg.Storage.CandidatesPath())
	}
	if cfg.Storage.StoresPath() != filepath.Join("data", "stores.json") {
		t.Errorf("unexpected stores path: %s", cfg.Storage.StoresPath())
	}
	if cfg.Connector.Timeout != 10*time.Second {
		t.Errorf("expected 10s connector timeout, got %v", cfg.Connector.Timeout)
	}
	if cfg.Storage.SeedOnEmpty {
		t.Error("SeedOnEmpty should default to false")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATA_DIR", "/tmp/cookiemap")
	t.Setenv("CONNECTOR_TIMEOUT_SECONDS", "3")
	t.Setenv("CONNECTOR_DELAY_MS", "not-a-number")
	t.Setenv("SEED_ON_EMPTY", "yes")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Storage.DataDir != "/tmp/cookiemap" {
		t.Errorf("expected DATA_DIR override, got %s", cfg.Storage.DataDir)
	}
	if cfg.Connector.Timeout != 3*time.Second {
		t.Errorf("expected 3s, got %v", cfg.Connector.Timeout)
	}
	// invalid ints fall back to the default
	if cfg.Connector.PlaceholderWait != 300*time.Millisecond {
		t.Errorf("expected 300ms fallback, got %v", cfg.Connector.PlaceholderWait)
	}
	if !cfg.Storage.SeedOnEmpty {
		t.Error("SeedOnEmpty should be true")
	}
}
