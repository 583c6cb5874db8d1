// Copyright (c) 2026 Chocorocks.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3000)
  - BackendURL: Chocorocks backend base URL (required)
  - IdentityURL: Identity provider base URL (required)
  - IdentityKey: Identity provider anon key (required)
  - CookieSecret: Cookie signing secret (required)
  - Environment: development or production
  - RequestTimeout: Outgoing backend request timeout (default: 30s)

# CLI Flags

	-p             Server port
	-b             Backend API base URL
	-timeout       Request timeout in seconds
	-identity-url  Identity provider URL
	-identity-key  Identity provider anon key
	-cookie-secret Cookie signing secret
	-env           Environment name

# Environment Variables

Flags fall back to environment variables:

	PORT                    → -p
	BACKEND_API_URL         → -b
	REQUEST_TIMEOUT_SECONDS → -timeout
	IDENTITY_URL            → -identity-url
	IDENTITY_ANON_KEY       → -identity-key
	COOKIE_SECRET           → -cookie-secret
	APP_ENV                 → -env

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing:

  - BACKEND_API_URL must be provided and parse as a URL
  - IDENTITY_URL must be provided
  - IDENTITY_ANON_KEY must be provided
  - COOKIE_SECRET must be provided

# Example

	// In main.go
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	backend, err := url.Parse(cfg.BackendURL)
	// ...
	mux := router.NewRouter(mgr, api, backend)
*/
package cliparse
