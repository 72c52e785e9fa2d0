// Package isin fetches and parses the TWSE ISIN registry listing pages
// (https://isin.twse.com.tw/isin/C_public.jsp).
package isin

import (
	"os"
	"strconv"
	"time"
)

const (
	defaultBaseURL     = "https://isin.twse.com.tw/isin/C_public.jsp"
	defaultTimeout     = 30 * time.Second
	defaultRatePerSec  = 2
	defaultMaxAttempts = 5
	defaultRetryWait   = 2 * time.Second
)

// Config holds configuration for the ISIN registry client.
type Config struct {
	BaseURL     string        // registry page URL without query
	Timeout     time.Duration // per-request HTTP timeout
	RatePerSec  int           // process-wide request ceiling
	MaxAttempts int           // total fetch attempts on transient failure
	RetryWait   time.Duration // fixed delay between attempts
}

// DefaultConfig returns the production settings.
func DefaultConfig() Config {
	return Config{
		BaseURL:     defaultBaseURL,
		Timeout:     defaultTimeout,
		RatePerSec:  defaultRatePerSec,
		MaxAttempts: defaultMaxAttempts,
		RetryWait:   defaultRetryWait,
	}
}

// LoadConfig loads configuration from environment variables, falling back to DefaultConfig
// for unset or unparsable values.
func LoadConfig() Config {
	cfg := DefaultConfig()
	if v := os.Getenv("ISIN_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if d, err := time.ParseDuration(os.Getenv("ISIN_TIMEOUT")); err == nil && d > 0 {
		cfg.Timeout = d
	}
	if n, err := strconv.Atoi(os.Getenv("ISIN_RATE_PER_SEC")); err == nil && n > 0 {
		cfg.RatePerSec = n
	}
	if n, err := strconv.Atoi(os.Getenv("ISIN_MAX_ATTEMPTS")); err == nil && n > 0 {
		cfg.MaxAttempts = n
	}
	if d, err := time.ParseDuration(os.Getenv("ISIN_RETRY_WAIT")); err == nil && d >= 0 {
		cfg.RetryWait = d
	}
	return cfg
}
