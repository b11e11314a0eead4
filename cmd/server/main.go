package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"golang.org/x/sync/errgroup"

	"github.com/srobertson/xlit/internal/logger"
	"github.com/srobertson/xlit/internal/memory/sqlite"
	"github.com/srobertson/xlit/internal/metrics"
	"github.com/srobertson/xlit/internal/registry"
	"github.com/srobertson/xlit/internal/web"
	"github.com/srobertson/xlit/internal/xlit"
)

func main() {
	if err := mainE(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
	slog.Info("exiting without error")
}

func mainE() error {
	_ = godotenv.Load()

	fs := ff.NewFlagSet("xlit-server")

	var (
		port      = fs.Int64Long("port", 8080, "HTTP server port")
		dbPath    = fs.StringLong("db-path", "xlit.db", "SQLite translation memory path")
		logLevel  = fs.StringEnumLong("log-level", "log level", "info", "debug", "warn", "error")
		logFormat = fs.StringEnumLong("log-format", "log output format", "pretty", "json")
	)

	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVars()); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}

	log := logger.New(*logLevel, *logFormat)
	slog.SetDefault(log)

	reg, err := registry.Get()
	if err != nil {
		return fmt.Errorf("initializing method registry: %w", err)
	}
	log.Info("method registry ready", "methods", len(reg.MethodNames()))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	repo, err := sqlite.New(ctx, *dbPath)
	if err != nil {
		return fmt.Errorf("opening translation memory: %w", err)
	}
	defer repo.Close()

	svc := xlit.New(reg, repo, log)
	router := web.NewRouter(reg, repo, svc, log)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", *port),
		Handler:           router.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting server", "port", *port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down gracefully")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		return server.Shutdown(shutdownCtx)
	})

	// Periodically export the memory size as a Prometheus gauge
	g.Go(func() error {
		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if n, err := repo.CountSegments(ctx); err == nil {
					metrics.SegmentsStored.Set(float64(n))
				}
			case <-ctx.Done():
				return nil
			}
		}
	})

	return g.Wait()
}
