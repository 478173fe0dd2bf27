package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/adrg/xdg"
)

type Config struct {
	// Search settings
	Language   string // hl hint for the news search, e.g. "ko"
	Country    string // gl hint, e.g. "KR"
	MaxResults int    // cap of hits taken per query

	// Keyword taxonomy
	KeywordsFile string

	// Pipeline policy
	DedupPolicy string // "last" or "score"
	QueryMode   string // "category" or "keyword"

	// App settings
	Debug          bool
	RequestTimeout time.Duration
	RetryAttempts  int
	RetryDelay     time.Duration
	QueryInterval  time.Duration // minimum spacing between search requests
}

func Load() (*Config, error) {
	cfg := &Config{
		// Default values
		Language:       "ko",
		Country:        "KR",
		MaxResults:     15,
		DedupPolicy:    "last",
		QueryMode:      "category",
		RequestTimeout: 20 * time.Second,
		RetryAttempts:  2,
		RetryDelay:     2 * time.Second,
		QueryInterval:  500 * time.Millisecond,
	}

	cfg.Language = getEnvOrDefault("NEWSCLIP_LANG", cfg.Language)
	cfg.Country = getEnvOrDefault("NEWSCLIP_COUNTRY", cfg.Country)
	cfg.MaxResults = getEnvIntOrDefault("NEWSCLIP_MAX_RESULTS", cfg.MaxResults)
	cfg.DedupPolicy = getEnvOrDefault("NEWSCLIP_DEDUP", cfg.DedupPolicy)
	cfg.QueryMode = getEnvOrDefault("NEWSCLIP_QUERY_MODE", cfg.QueryMode)
	cfg.RetryAttempts = getEnvIntOrDefault("NEWSCLIP_RETRY_ATTEMPTS", cfg.RetryAttempts)

	if v := os.Getenv("NEWSCLIP_TIMEOUT_SECONDS"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.RequestTimeout = time.Duration(val) * time.Second
		}
	}
	if v := os.Getenv("NEWSCLIP_QUERY_INTERVAL_MS"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val >= 0 {
			cfg.QueryInterval = time.Duration(val) * time.Millisecond
		}
	}

	cfg.KeywordsFile = os.Getenv("NEWSCLIP_KEYWORDS_FILE")
	if cfg.KeywordsFile == "" {
		cfg.KeywordsFile = defaultKeywordsFile()
	}

	if debug := os.Getenv("DEBUG"); debug == "true" {
		cfg.Debug = true
	}

	return cfg, cfg.Validate()
}

// defaultKeywordsFile places the taxonomy under the XDG config dir, falling
// back to the working directory when no config home can be resolved.
func defaultKeywordsFile() string {
	path, err := xdg.ConfigFile(filepath.Join("newsclip", "keywords.yaml"))
	if err != nil {
		return "keywords.yaml"
	}
	return path
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func (c *Config) Validate() error {
	if c.Language == "" {
		return fmt.Errorf("NEWSCLIP_LANG must not be empty")
	}
	if c.Country == "" {
		return fmt.Errorf("NEWSCLIP_COUNTRY must not be empty")
	}
	if c.MaxResults <= 0 {
		return fmt.Errorf("NEWSCLIP_MAX_RESULTS must be positive, got %d", c.MaxResults)
	}
	if c.RetryAttempts < 1 {
		return fmt.Errorf("NEWSCLIP_RETRY_ATTEMPTS must be at least 1, got %d", c.RetryAttempts)
	}
	if c.DedupPolicy != "last" && c.DedupPolicy != "score" {
		return fmt.Errorf("NEWSCLIP_DEDUP must be 'last' or 'score'")
	}
	if c.QueryMode != "category" && c.QueryMode != "keyword" {
		return fmt.Errorf("NEWSCLIP_QUERY_MODE must be 'category' or 'keyword'")
	}
	return nil
}
