package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/Codinho_Go/internal/auth"
	"github.com/osse101/Codinho_Go/internal/config"
)

// InitializeVerifier creates the bearer token verifier for the configured auth mode
func InitializeVerifier(cfg *config.Config) (auth.Verifier, error) {
	verifier, err := auth.NewVerifier(auth.Config{
		Mode:     auth.Mode(cfg.AuthMode),
		Secret:   cfg.JWTSecret,
		Issuer:   cfg.JWTIssuer,
		Audience: cfg.JWTAudience,
		JWKSURL:  cfg.JWKSURL,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateVerif, err)
	}

	if cfg.AuthMode == config.AuthModeNoop {
		slog.Warn(LogMsgNoopAuthActive)
	}
	slog.Info(LogMsgAuthInitialized, "mode", cfg.AuthMode, "issuer", cfg.JWTIssuer)
	return verifier, nil
}
