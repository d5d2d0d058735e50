package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/dshills/censor/internal/wordlist"
)

// Config represents the censor configuration.
type Config struct {
	Words          []string    `json:"words,omitempty"`
	WordsFile      string      `json:"wordsFile,omitempty"`
	Format         string      `json:"format"`
	LogLevel       string      `json:"logLevel"`
	MatchTimeoutMs int         `json:"matchTimeoutMs"`
	Cache          CacheConfig `json:"cache"`
}

// CacheConfig controls the compiled pattern cache.
type CacheConfig struct {
	Enabled bool `json:"enabled"`
	Size    int  `json:"size"`
}

// MatchTimeout returns the configured match timeout, zero meaning none.
func (c Config) MatchTimeout() time.Duration {
	if c.MatchTimeoutMs <= 0 {
		return 0
	}
	return time.Duration(c.MatchTimeoutMs) * time.Millisecond
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Format:   "text",
		LogLevel: "warn",
		Cache: CacheConfig{
			Enabled: true,
			Size:    128,
		},
	}
}

// ConfigDir returns the platform-appropriate config directory for censor.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "censor"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "censor"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "censor"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "censor"), nil
	default:
		return filepath.Join(home, ".config", "censor"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadFile loads config from the config file. Returns zero Config and nil error if file doesn't exist.
func LoadFile() (Config, error) {
	cfg, _, err := loadFile()
	return cfg, err
}

// LoadFileOrDefault loads the config file, or returns Default() when there is none.
func LoadFileOrDefault() (Config, error) {
	cfg, loaded, err := loadFile()
	if err != nil {
		return Config{}, err
	}
	if !loaded {
		return Default(), nil
	}
	return cfg, nil
}

func loadFile() (Config, bool, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, false, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, false, nil
		}
		return Config{}, false, fmt.Errorf("reading config file: %w", err)
	}
	// An absent cache.enabled keeps the default rather than decoding as false.
	cfg := Config{Cache: CacheConfig{Enabled: Default().Cache.Enabled}}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, false, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, true, nil
}

// Save writes the config to the config file.
func Save(cfg Config) error {
	path, err := ConfigPath()
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

// Load builds the effective config by merging: defaults <- file <- env <- overrides.
// The overrides map comes from CLI flags (only non-zero values should be set).
func Load(overrides map[string]string) (Config, error) {
	cfg := Default()

	fileCfg, loaded, err := loadFile()
	if err != nil {
		return Config{}, err
	}
	if loaded {
		mergeFile(&cfg, fileCfg)
	}
	if err := mergeEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := mergeOverrides(&cfg, overrides); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func mergeFile(dst *Config, src Config) {
	if len(src.Words) > 0 {
		dst.Words = wordlist.Normalize(src.Words)
	}
	if src.WordsFile != "" {
		dst.WordsFile = src.WordsFile
	}
	if src.Format != "" {
		dst.Format = src.Format
	}
	if src.LogLevel != "" {
		dst.LogLevel = src.LogLevel
	}
	if src.MatchTimeoutMs > 0 {
		dst.MatchTimeoutMs = src.MatchTimeoutMs
	}
	if src.Cache.Size > 0 {
		dst.Cache.Size = src.Cache.Size
	}
	dst.Cache.Enabled = src.Cache.Enabled
}

func mergeEnv(cfg *Config) error {
	if v := os.Getenv("CENSOR_WORDS"); v != "" {
		cfg.Words = wordlist.Split(v)
	}
	if v := os.Getenv("CENSOR_WORDS_FILE"); v != "" {
		cfg.WordsFile = v
	}
	if v := os.Getenv("CENSOR_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("CENSOR_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("CENSOR_MATCH_TIMEOUT_MS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("CENSOR_MATCH_TIMEOUT_MS must be an integer: %w", err)
		}
		cfg.MatchTimeoutMs = n
	}
	if v := os.Getenv("CENSOR_CACHE_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("CENSOR_CACHE_SIZE must be an integer: %w", err)
		}
		cfg.Cache.Size = n
	}
	return nil
}

func mergeOverrides(cfg *Config, overrides map[string]string) error {
	for key, value := range overrides {
		if value == "" {
			continue
		}
		if err := SetField(cfg, key, value); err != nil {
			return err
		}
	}
	return nil
}

// SetField sets a single config field by key name. Returns error if key is unknown.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "words":
		cfg.Words = wordlist.Split(value)
	case "wordsFile":
		cfg.WordsFile = value
	case "format":
		cfg.Format = value
	case "logLevel":
		cfg.LogLevel = value
	case "matchTimeoutMs":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("matchTimeoutMs must be an integer: %w", err)
		}
		cfg.MatchTimeoutMs = n
	case "cache.enabled":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("cache.enabled must be a boolean: %w", err)
		}
		cfg.Cache.Enabled = b
	case "cache.size":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("cache.size must be an integer: %w", err)
		}
		cfg.Cache.Size = n
	default:
		return fmt.Errorf("unknown config key: %s (valid keys: %s)", key, strings.Join(Keys(), ", "))
	}
	return nil
}

// Keys returns the keys accepted by SetField.
func Keys() []string {
	return []string{"words", "wordsFile", "format", "logLevel", "matchTimeoutMs", "cache.enabled", "cache.size"}
}
