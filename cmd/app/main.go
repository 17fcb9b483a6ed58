package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/osse101/Codinho_Go/docs"
	"github.com/osse101/Codinho_Go/internal/bootstrap"
	"github.com/osse101/Codinho_Go/internal/config"
	"github.com/osse101/Codinho_Go/internal/server"
)

// @title Codinho API
// @version 1.0
// @description Gamification ledger, bootcamp progress and kata catalog for the Codinho learning app.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logCloser, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to setup logger: %v", err)
	}
	defer logCloser.Close()

	if err := run(cfg); err != nil {
		slog.Error("Application failed", "error", err)
		logCloser.Close()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	warnings, err := config.ValidateEnvWithWarnings()
	for _, w := range warnings {
		slog.Warn("Environment warning", "warning", w)
	}
	if err != nil {
		if cfg.IsProduction() {
			return err
		}
		slog.Warn("Environment validation failed", "error", err)
	}

	ctx := context.Background()

	repos, err := bootstrap.InitializeRepositories(ctx, cfg)
	if err != nil {
		return err
	}

	eventBus, err := bootstrap.InitializeEventSystem()
	if err != nil {
		return err
	}

	verifier, err := bootstrap.InitializeVerifier(cfg)
	if err != nil {
		return err
	}

	services := bootstrap.InitializeServices(cfg, repos, eventBus)

	if !cfg.UsesPostgres() {
		if err := bootstrap.SyncKataCatalog(ctx, services.Kata); err != nil {
			return err
		}
	}

	srv := server.NewServer(server.Options{
		Port:                cfg.Port,
		MaxRequestBodyBytes: cfg.MaxRequestBodyBytes,
		TrustedProxies:      cfg.TrustedProxies,
		ServiceName:         cfg.ServiceName,
		Version:             cfg.Version,
	}, repos.Pool, verifier, services)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	var runErr error
	select {
	case <-stop:
	case runErr = <-serverErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), bootstrap.ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:              srv,
		GamificationService: services.Gamification,
		Verifier:            verifier,
		Pool:                repos.Pool,
	})

	return runErr
}
