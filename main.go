package main

import (
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/chocorocks/gateway/apiclient"
	"github.com/chocorocks/gateway/cliparse"
	"github.com/chocorocks/gateway/middleware"
	"github.com/chocorocks/gateway/router"
	"github.com/chocorocks/gateway/session"
)

func main() {
	var err error

	// Load .env in development; ignore when absent
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	backend, err := url.Parse(cfg.BackendURL)
	if err != nil {
		slog.Error("invalid backend URL", "error", err)
		os.Exit(1)
	}

	// Wire the session manager: cookie token store, identity provider,
	// typed backend client
	tokens := session.NewCookieTokenStore([]byte(cfg.CookieSecret), cfg.IsProduction())
	provider := session.NewIdentityProvider(cfg.IdentityURL, cfg.IdentityKey, cfg.RequestTimeout)
	api := apiclient.New(cfg.BackendURL, cfg.RequestTimeout)
	mgr := session.NewManager(tokens, provider, api)

	// Create router; the navigation gate fronts every route
	mux := router.NewRouter(mgr, api, backend)

	// Create server
	server := http.Server{
		Handler: middleware.NavigationGate(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "backend", cfg.BackendURL, "env", cfg.Environment)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
