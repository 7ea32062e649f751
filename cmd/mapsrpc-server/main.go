// Command mapsrpc-server exposes the decoder over HTTP.
//
// Usage:
//
//	mapsrpc-server -config config.yaml
//	SERVER_PORT=9090 LOG_FORMAT=json mapsrpc-server
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
	"time"

	"github.com/Alfex4936/mapsrpc/internal/app"
	"github.com/Alfex4936/mapsrpc/internal/config"
	"github.com/Alfex4936/mapsrpc/mapsrpc"
)

func main() {
	path := flag.String("config", "", "config file (default $CONFIG_PATH or ./config.yaml)")
	flag.Parse()

	cfg, err := config.Load(*path)
	must(err)

	logger := app.NewLogger(cfg.Log, os.Stderr)
	proc, err := app.NewProcessor(cfg, logger)
	must(err)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      mapsrpc.NewServer(proc, logger, cfg.Server.MaxBodyBytes).Routes(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("listening",
			slog.String("addr", srv.Addr),
			slog.String("decode", "POST /v1/decode"),
			slog.String("health", "GET /health"),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", slog.String("error", err.Error()))
	}
}

func must(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, "mapsrpc-server:", err)
		os.Exit(1)
	}
}
