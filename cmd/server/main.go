// Command server runs the catalog demo API with its generated OpenAPI
// document served as JSON and YAML.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/bindhttp/bindhttp/internal/config"
	"github.com/bindhttp/bindhttp/internal/router"
	"github.com/bindhttp/bindhttp/pkg/middleware/recovery"
	"github.com/bindhttp/bindhttp/pkg/middleware/requestlog"
	"github.com/bindhttp/bindhttp/pkg/openapi"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := newLogger(cfg.Log)

	r := router.New()

	generator := openapi.NewGenerator(&openapi.Config{
		Info: openapi.Info{
			Title:       cfg.OpenAPI.Title,
			Version:     cfg.OpenAPI.Version,
			Description: cfg.OpenAPI.Description,
		},
		Servers: []openapi.Server{
			{URL: "http://" + cfg.Server.Addr()},
		},
	})
	spec, err := generator.Generate(r)
	if err != nil {
		return fmt.Errorf("generate OpenAPI document: %w", err)
	}
	specJSON, err := generator.GenerateJSON(spec)
	if err != nil {
		return fmt.Errorf("render OpenAPI JSON: %w", err)
	}
	specYAML, err := generator.GenerateYAML(spec)
	if err != nil {
		return fmt.Errorf("render OpenAPI YAML: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/", r)
	mux.HandleFunc("GET /openapi.json", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write(specJSON)
	})
	mux.HandleFunc("GET /openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		w.Write(specYAML)
	})

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      requestlog.New(logger)(recovery.New(logger, recovery.WithStackTrace())(mux)),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.String("addr", server.Addr))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}

func newLogger(cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}
