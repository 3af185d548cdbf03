// Package serve provides the HTTP API server command.
package serve

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/karonyt/MakeCountryDocument/internal/cmd/application"
	"github.com/karonyt/MakeCountryDocument/internal/cmd/emoji"
	"github.com/karonyt/MakeCountryDocument/internal/server"
)

// NewCommand creates the serve command using app context.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "serve",
		GroupID: "core",
		Aliases: []string{"server"},
		Short:   "Start the read-only catalog API server",
		Long: `Start a REST API server over the MakeCountry catalogs.

Features:
  - Listing endpoints with free-text search, facet filters and pagination
  - Detail endpoints for commands, items, recipes and systems
  - In-memory caching of computed views with configurable TTL
  - Rate limiting (requests per minute per IP)
  - CORS support for the documentation site
  - Request ids, request logging and panic recovery
  - Prometheus metrics (/metrics)
  - Graceful shutdown with connection draining`,
		Example: `  # Start on default port 8080
  makecountry serve

  # Serve a content directory instead of the embedded catalogs
  makecountry serve --content-dir ./content

  # Allow the documentation site origin
  makecountry serve --cors-origins "https://makecountry.example"

  # Disable rate limiting
  makecountry serve --rate-limit 0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServer(cmd, app)
		},
	}

	defaults := server.DefaultConfig()

	cmd.Flags().Int("port", defaults.Port, "Server port")
	cmd.Flags().String("host", defaults.Host, "Bind address")

	cmd.Flags().Bool("cors", false, "Enable CORS for all origins")
	cmd.Flags().StringSlice("cors-origins", []string{}, "Allowed CORS origins (comma-separated)")

	cmd.Flags().Int("rate-limit", defaults.RateLimit, "Requests per minute per IP (0 to disable)")
	cmd.Flags().Int("cache-ttl", int(defaults.CacheTTL/time.Second), "Cache TTL in seconds")

	cmd.Flags().Duration("read-timeout", defaults.ReadTimeout, "HTTP read timeout")
	cmd.Flags().Duration("write-timeout", defaults.WriteTimeout, "HTTP write timeout")
	cmd.Flags().Duration("idle-timeout", defaults.IdleTimeout, "HTTP idle timeout")

	cmd.Flags().Bool("metrics", defaults.MetricsEnabled, "Enable metrics endpoint")
	cmd.Flags().String("prefix", defaults.PathPrefix, "API path prefix")

	return cmd
}

// runServer starts the API server.
func runServer(cmd *cobra.Command, app application.Application) error {
	cfg := parseConfig(cmd)
	logger := app.Logger()

	logger.Info().
		Int("port", cfg.Port).
		Str("host", cfg.Host).
		Str("prefix", cfg.PathPrefix).
		Bool("cors", cfg.CORSEnabled).
		Int("rate_limit", cfg.RateLimit).
		Dur("cache_ttl", cfg.CacheTTL).
		Bool("metrics", cfg.MetricsEnabled).
		Msg("Starting API server")

	srv, err := server.New(app, cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	httpServer := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      srv.Handler(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// cmd.Context() carries the signal handling from main.go
	return startWithGracefulShutdown(cmd.Context(), cmd, httpServer, srv, logger)
}

// parseConfig parses command flags into server configuration.
func parseConfig(cmd *cobra.Command) server.Config {
	// Flags are defined in this package, so lookups cannot fail
	port := mustGetInt(cmd, "port")
	host := mustGetString(cmd, "host")
	corsEnabled := mustGetBool(cmd, "cors")
	corsOrigins := mustGetStringSlice(cmd, "cors-origins")
	rateLimit := mustGetInt(cmd, "rate-limit")
	cacheTTL := mustGetInt(cmd, "cache-ttl")
	readTimeout := mustGetDuration(cmd, "read-timeout")
	writeTimeout := mustGetDuration(cmd, "write-timeout")
	idleTimeout := mustGetDuration(cmd, "idle-timeout")
	metricsEnabled := mustGetBool(cmd, "metrics")
	pathPrefix := mustGetString(cmd, "prefix")

	// Environment overrides flag defaults but not explicit flags
	if envPort := os.Getenv("HTTP_PORT"); envPort != "" && !cmd.Flags().Changed("port") {
		if p, err := parsePort(envPort); err == nil {
			port = p
		}
	}
	if envHost := os.Getenv("HTTP_HOST"); envHost != "" && !cmd.Flags().Changed("host") {
		host = envHost
	}

	return server.Config{
		Host:           host,
		Port:           port,
		PathPrefix:     pathPrefix,
		CORSEnabled:    corsEnabled || len(corsOrigins) > 0,
		CORSOrigins:    corsOrigins,
		RateLimit:      rateLimit,
		CacheTTL:       time.Duration(cacheTTL) * time.Second,
		ReadTimeout:    readTimeout,
		WriteTimeout:   writeTimeout,
		IdleTimeout:    idleTimeout,
		MetricsEnabled: metricsEnabled,
	}
}

// parsePort safely parses a port string to integer.
func parsePort(portStr string) (int, error) {
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return 0, fmt.Errorf("invalid port number: %s", portStr)
	}
	if port < 1 || port > 65535 {
		return 0, fmt.Errorf("port out of range: %d", port)
	}
	return port, nil
}

// startWithGracefulShutdown starts the HTTP server with graceful shutdown.
// When ctx is cancelled the server drains connections and stops.
func startWithGracefulShutdown(ctx context.Context, cmd *cobra.Command, httpServer *http.Server, srv *server.Server, logger *zerolog.Logger) error {
	serverErr := make(chan error, 1)

	go func() {
		logger.Info().
			Str("addr", httpServer.Addr).
			Str("service", "API").
			Msg("HTTP server listening")

		cmd.Printf("%s API server listening on %s\n", emoji.Launch, httpServer.Addr)
		cmd.Println("   Press Ctrl+C to stop")

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- fmt.Errorf("server failed: %w", err)
		}
	}()

	select {
	case err := <-serverErr:
		_ = srv.Shutdown(context.Background())
		return err
	case <-ctx.Done():
		logger.Info().Msg("Shutdown signal received via context")

		cmd.Printf("\n%s Shutting down API server...\n", emoji.Stop)

		// The parent context is already cancelled
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn().Err(err).Msg("Server shutdown had issues")
		}

		logger.Info().Msg("Server stopped gracefully")
		cmd.Printf("%s API server stopped gracefully\n", emoji.Success)
		return nil
	}
}

func mustGetInt(cmd *cobra.Command, name string) int {
	val, err := cmd.Flags().GetInt(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

func mustGetBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

func mustGetStringSlice(cmd *cobra.Command, name string) []string {
	val, err := cmd.Flags().GetStringSlice(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

func mustGetDuration(cmd *cobra.Command, name string) time.Duration {
	val, err := cmd.Flags().GetDuration(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
