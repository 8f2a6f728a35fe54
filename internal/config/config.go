package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
)

// Config is the effective watcherknight configuration.
type Config struct {
	// Model is the judge model alias passed to the claude CLI.
	Model string `json:"model"`
	// Commit is the diff base reference.
	Commit string `json:"commit"`
	// Concurrency bounds in-flight judge invocations; <= 0 means unbounded.
	Concurrency int `json:"concurrency"`
	// Format selects the report writer (text, json).
	Format string `json:"format"`
	// ClaudeBin is the judge executable.
	ClaudeBin string `json:"claudeBin"`
	// Include/Exclude filter which files are scanned for annotations.
	Include []string `json:"include"`
	Exclude []string `json:"exclude"`
	// MaxDiffBytes caps the diff embedded in each prompt; <= 0 disables.
	MaxDiffBytes int           `json:"maxDiffBytes"`
	Cache        CacheConfig   `json:"cache"`
	Privacy      PrivacyConfig `json:"privacy"`
}

// CacheConfig controls the optional judge-response cache.
type CacheConfig struct {
	Enabled    bool   `json:"enabled"`
	Dir        string `json:"dir,omitempty"`
	TTLSeconds int    `json:"ttlSeconds"`
}

// PrivacyConfig controls diff redaction.
type PrivacyConfig struct {
	RedactSecrets bool `json:"redactSecrets"`
}

// Default returns a Config with all defaults applied. The cache is off by
// default: a run validates against the live judge unless explicitly told to
// reuse responses.
func Default() Config {
	return Config{
		Model:        "haiku",
		Commit:       "HEAD",
		Concurrency:  4,
		Format:       "text",
		ClaudeBin:    "claude",
		Exclude:      []string{"vendor/**", "node_modules/**", "**/*.min.js"},
		MaxDiffBytes: 500000,
		Cache: CacheConfig{
			Enabled:    false,
			TTLSeconds: 3600,
		},
		Privacy: PrivacyConfig{
			RedactSecrets: true,
		},
	}
}

// Dir returns the platform-appropriate config directory.
func Dir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "watcherknight"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "watcherknight"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "watcherknight"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "watcherknight"), nil
	default:
		return filepath.Join(home, ".config", "watcherknight"), nil
	}
}

// Path returns the full path to the config file.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadFile reads the config file. A missing file is not an error; it yields
// a zero Config.
func LoadFile() (Config, error) {
	path, err := Path()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Save writes the config to the config file.
func Save(cfg Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load builds the effective config: defaults <- file <- env <- overrides.
// The overrides map comes from CLI flags; only set keys take effect.
func Load(overrides map[string]string) (Config, error) {
	cfg := Default()

	fileCfg, err := LoadFile()
	if err != nil {
		return Config{}, err
	}
	mergeFile(&cfg, fileCfg)
	mergeEnv(&cfg)
	mergeOverrides(&cfg, overrides)

	return cfg, nil
}

func mergeFile(dst *Config, src Config) {
	if src.Model != "" {
		dst.Model = src.Model
	}
	if src.Commit != "" {
		dst.Commit = src.Commit
	}
	if src.Concurrency != 0 {
		dst.Concurrency = src.Concurrency
	}
	if src.Format != "" {
		dst.Format = src.Format
	}
	if src.ClaudeBin != "" {
		dst.ClaudeBin = src.ClaudeBin
	}
	if len(src.Include) > 0 {
		dst.Include = src.Include
	}
	if len(src.Exclude) > 0 {
		dst.Exclude = src.Exclude
	}
	if src.MaxDiffBytes != 0 {
		dst.MaxDiffBytes = src.MaxDiffBytes
	}
	if src.Cache.Dir != "" {
		dst.Cache.Dir = src.Cache.Dir
	}
	if src.Cache.TTLSeconds > 0 {
		dst.Cache.TTLSeconds = src.Cache.TTLSeconds
	}
	dst.Cache.Enabled = dst.Cache.Enabled || src.Cache.Enabled
}

func mergeEnv(cfg *Config) {
	if v := os.Getenv("WKNIGHT_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("WKNIGHT_COMMIT"); v != "" {
		cfg.Commit = v
	}
	if v := os.Getenv("WKNIGHT_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("WKNIGHT_CLAUDE_BIN"); v != "" {
		cfg.ClaudeBin = v
	}
	if v := os.Getenv("WKNIGHT_CONCURRENCY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Concurrency = n
		}
	}
	if v := os.Getenv("WKNIGHT_MAX_DIFF_BYTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxDiffBytes = n
		}
	}
}

func mergeOverrides(cfg *Config, overrides map[string]string) {
	if overrides == nil {
		return
	}
	if v, ok := overrides["model"]; ok && v != "" {
		cfg.Model = v
	}
	if v, ok := overrides["commit"]; ok && v != "" {
		cfg.Commit = v
	}
	if v, ok := overrides["format"]; ok && v != "" {
		cfg.Format = v
	}
	if v, ok := overrides["claudeBin"]; ok && v != "" {
		cfg.ClaudeBin = v
	}
	if v, ok := overrides["concurrency"]; ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Concurrency = n
		}
	}
	if v, ok := overrides["maxDiffBytes"]; ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxDiffBytes = n
		}
	}
}

// SetField sets a single config field by key name, for `config set`.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "model":
		cfg.Model = value
	case "commit":
		cfg.Commit = value
	case "format":
		cfg.Format = value
	case "claudeBin":
		cfg.ClaudeBin = value
	case "concurrency":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("concurrency must be an integer: %w", err)
		}
		cfg.Concurrency = n
	case "maxDiffBytes":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("maxDiffBytes must be an integer: %w", err)
		}
		cfg.MaxDiffBytes = n
	case "cache.enabled":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("cache.enabled must be a boolean: %w", err)
		}
		cfg.Cache.Enabled = b
	case "cache.dir":
		cfg.Cache.Dir = value
	case "cache.ttlSeconds":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("cache.ttlSeconds must be an integer: %w", err)
		}
		cfg.Cache.TTLSeconds = n
	case "privacy.redactSecrets":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("privacy.redactSecrets must be a boolean: %w", err)
		}
		cfg.Privacy.RedactSecrets = b
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
