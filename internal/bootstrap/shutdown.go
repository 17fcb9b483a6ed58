package bootstrap

import (
	"context"
	"io"
	"log/slog"

	"github.com/osse101/Codinho_Go/internal/auth"
	"github.com/osse101/Codinho_Go/internal/database"
	"github.com/osse101/Codinho_Go/internal/gamification"
	"github.com/osse101/Codinho_Go/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Nil fields are skipped.
type ShutdownComponents struct {
	Server              *server.Server
	GamificationService gamification.Service
	Verifier            auth.Verifier
	Pool                database.Pool
}

// GracefulShutdown stops components in dependency order:
// 1. HTTP server (stop accepting new requests)
// 2. Application services (complete in-flight operations)
// 3. Verifier background refresh, then the database pool
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.GamificationService != nil {
		shutdownService(ctx, ServiceNameGamification, components.GamificationService)
	}

	if closer, ok := components.Verifier.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			slog.Error(LogMsgVerifierCloseFailed, "error", err)
		}
	}

	if components.Pool != nil {
		components.Pool.Close()
		slog.Info(LogMsgDatabaseClosed)
	}

	slog.Info(LogMsgServerStopped)
}

type shutdownableService interface {
	Shutdown(context.Context) error
}

func shutdownService(ctx context.Context, name string, service shutdownableService) {
	if err := service.Shutdown(ctx); err != nil {
		slog.Error(name+LogMsgServiceShutdownFailed, "error", err)
	}
}
