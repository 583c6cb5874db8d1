// Copyright (c) 2026 Chocorocks.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Chocorocks gateway.

The gateway sits between the browser screens and the Chocorocks backend:
it terminates the session cookies, gates navigation, backs each screen
with a typed API call, and proxies raw /api/* traffic straight through.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	BACKEND_API_URL=http://localhost:8080 go run main.go

Or with flags:

	go run main.go -p 3000 -b "http://localhost:8080"

# Configuration

Required settings:

  - BACKEND_API_URL (-b): Chocorocks backend base URL
  - IDENTITY_URL (-identity-url): Identity provider base URL
  - IDENTITY_ANON_KEY (-identity-key): Identity provider anon key
  - COOKIE_SECRET (-cookie-secret): Cookie signing secret

Optional settings:

  - PORT (-p): Server port (default: 3000)
  - REQUEST_TIMEOUT_SECONDS (-timeout): Outgoing request timeout (default: 30)
  - APP_ENV (-env): development or production (default: development)

In production the session cookies additionally carry the Secure flag.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: screen handlers (catalog, sales, inventory, users, reports)
  - router: route definitions using Go 1.22+ routing
  - middleware: session guard, navigation gate, CORS, logging, JSON helpers
  - session: token persistence, identity provider, session manager
  - apiclient: typed client for the Chocorocks backend
  - proxy: /api/* reverse proxy
  - models: entities, requests, and the API error type
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
