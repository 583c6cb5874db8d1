// Copyright (c) 2026 Chocorocks.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"net/url"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port           int
	BackendURL     string
	IdentityURL    string
	IdentityKey    string
	CookieSecret   string
	Environment    string
	RequestTimeout time.Duration
}

// IsProduction reports whether the gateway runs with production cookie
// attributes (Secure flag on).
func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

// ParseFlags validates flags and environment configuration
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var timeoutSec int

	fs := flag.NewFlagSet("chocorocks-gateway", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.BackendURL, "b", "", "Backend API base URL")
	fs.IntVar(&timeoutSec, "timeout", 0, "Outgoing request timeout in seconds")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.IdentityURL, "identity-url", "", "Identity provider base URL (prefer env)")
	fs.StringVar(&cfg.IdentityKey, "identity-key", "", "Identity provider anon key (prefer env)")
	fs.StringVar(&cfg.CookieSecret, "cookie-secret", "", "Cookie signing secret (prefer env)")
	fs.StringVar(&cfg.Environment, "env", "", "Environment (development or production)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3000 // default
		}
	}
	if cfg.BackendURL == "" {
		cfg.BackendURL = os.Getenv("BACKEND_API_URL")
	}
	if cfg.BackendURL == "" {
		return Config{}, errors.New("backend API URL required (use -b or BACKEND_API_URL env)")
	}
	if _, err := url.ParseRequestURI(cfg.BackendURL); err != nil {
		return Config{}, errors.New("backend API URL is not a valid URL")
	}

	if timeoutSec == 0 {
		if s := os.Getenv("REQUEST_TIMEOUT_SECONDS"); s != "" {
			sec, err := strconv.Atoi(s)
			if err != nil {
				return Config{}, errors.New("invalid REQUEST_TIMEOUT_SECONDS env variable")
			}
			timeoutSec = sec
		} else {
			timeoutSec = 30
		}
	}
	cfg.RequestTimeout = time.Duration(timeoutSec) * time.Second

	// Secrets - MUST be provided
	if cfg.IdentityURL == "" {
		cfg.IdentityURL = os.Getenv("IDENTITY_URL")
	}
	if cfg.IdentityURL == "" {
		return Config{}, errors.New("IDENTITY_URL required")
	}

	if cfg.IdentityKey == "" {
		cfg.IdentityKey = os.Getenv("IDENTITY_ANON_KEY")
	}
	if cfg.IdentityKey == "" {
		return Config{}, errors.New("IDENTITY_ANON_KEY required")
	}

	if cfg.CookieSecret == "" {
		cfg.CookieSecret = os.Getenv("COOKIE_SECRET")
	}
	if cfg.CookieSecret == "" {
		return Config{}, errors.New("COOKIE_SECRET required")
	}

	if cfg.Environment == "" {
		cfg.Environment = os.Getenv("APP_ENV")
		if cfg.Environment == "" {
			cfg.Environment = "development"
		}
	}

	return cfg, nil
}
