package config

import (
	"os"
	"path/filepath"
	"testing"
)

// isolate points the config dir at a temp directory so tests never touch the
// real user config.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	for _, key := range []string{"WKNIGHT_MODEL", "WKNIGHT_COMMIT", "WKNIGHT_FORMAT", "WKNIGHT_CLAUDE_BIN", "WKNIGHT_CONCURRENCY", "WKNIGHT_MAX_DIFF_BYTES"} {
		t.Setenv(key, "")
	}
	return filepath.Join(dir, "watcherknight")
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Model != "haiku" || cfg.Commit != "HEAD" {
		t.Errorf("defaults = %+v", cfg)
	}
	if cfg.Concurrency != 4 {
		t.Errorf("Concurrency = %d, want 4", cfg.Concurrency)
	}
	if cfg.Cache.Enabled {
		t.Error("cache must be disabled by default")
	}
	if !cfg.Privacy.RedactSecrets {
		t.Error("redaction must be enabled by default")
	}
}

func TestLoad_NoFile(t *testing.T) {
	isolate(t)
	cfg, err := Load(nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Model != Default().Model {
		t.Errorf("Model = %q, want default", cfg.Model)
	}
}

func TestLoad_FileMerge(t *testing.T) {
	dir := isolate(t)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	file := `{"model": "sonnet", "concurrency": 8}`
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(file), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Model != "sonnet" || cfg.Concurrency != 8 {
		t.Errorf("file values not merged: %+v", cfg)
	}
	if cfg.Commit != "HEAD" {
		t.Errorf("unset file fields must keep defaults, Commit = %q", cfg.Commit)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(`{"model": "sonnet"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("WKNIGHT_MODEL", "opus")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Model != "opus" {
		t.Errorf("Model = %q, want opus (env wins over file)", cfg.Model)
	}
}

func TestLoad_OverridesWin(t *testing.T) {
	isolate(t)
	t.Setenv("WKNIGHT_MODEL", "opus")

	cfg, err := Load(map[string]string{"model": "haiku", "concurrency": "1"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Model != "haiku" || cfg.Concurrency != 1 {
		t.Errorf("flag overrides must win: %+v", cfg)
	}
}

func TestLoad_BadFile(t *testing.T) {
	dir := isolate(t)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte("{nope"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(nil); err == nil {
		t.Error("malformed config file must error")
	}
}

func TestSetField(t *testing.T) {
	cfg := Default()
	if err := SetField(&cfg, "model", "sonnet"); err != nil {
		t.Fatal(err)
	}
	if err := SetField(&cfg, "concurrency", "16"); err != nil {
		t.Fatal(err)
	}
	if err := SetField(&cfg, "cache.enabled", "true"); err != nil {
		t.Fatal(err)
	}
	if cfg.Model != "sonnet" || cfg.Concurrency != 16 || !cfg.Cache.Enabled {
		t.Errorf("SetField results: %+v", cfg)
	}

	if err := SetField(&cfg, "concurrency", "lots"); err == nil {
		t.Error("non-integer concurrency must error")
	}
	if err := SetField(&cfg, "nonsense", "x"); err == nil {
		t.Error("unknown key must error")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	isolate(t)
	cfg := Default()
	cfg.Model = "sonnet"
	if err := Save(cfg); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadFile()
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Model != "sonnet" {
		t.Errorf("Model = %q after round trip", loaded.Model)
	}
}
