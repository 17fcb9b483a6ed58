package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Mode represents the authentication strategy to apply for incoming requests.
type Mode string

const (
	// ModeHS256 verifies tokens signed with a shared secret.
	ModeHS256 Mode = "hs256"
	// ModeJWKS verifies RS256 tokens against keys published at a JWKS endpoint.
	ModeJWKS Mode = "jwks"
	// ModeNoop treats the bearer token as the user ID. Local development only.
	ModeNoop Mode = "noop"
)

// Config captures the inputs required to initialize a verifier.
type Config struct {
	Mode     Mode
	Secret   string
	Issuer   string
	Audience string
	JWKSURL  string
}

// User is the authenticated subject of a request
type User struct {
	ID        string
	ExpiresAt int64
}

// Verifier verifies a bearer token and returns the user it was issued to.
type Verifier interface {
	Verify(ctx context.Context, token string) (User, error)
}

var (
	ErrMissingToken   = errors.New("authorization header missing")
	ErrMalformedToken = errors.New("authorization header is malformed")
	ErrMissingSubject = errors.New("token missing subject claim")
)

// NewVerifier constructs a Verifier matching the supplied configuration.
func NewVerifier(cfg Config) (Verifier, error) {
	switch cfg.Mode {
	case ModeHS256:
		return NewHS256Verifier(cfg.Secret, cfg.Issuer, cfg.Audience)
	case ModeJWKS:
		return NewJWKSVerifier(cfg.JWKSURL, cfg.Issuer, cfg.Audience)
	case ModeNoop:
		return NoopVerifier{}, nil
	default:
		return nil, fmt.Errorf("unsupported auth mode: %s", cfg.Mode)
	}
}

type ctxKey string

const userCtxKey ctxKey = "codinho:user"

// WithUser stores the authenticated user in ctx
func WithUser(ctx context.Context, user User) context.Context {
	return context.WithValue(ctx, userCtxKey, user)
}

// UserFromContext extracts the authenticated user from the request context.
func UserFromContext(ctx context.Context) (User, bool) {
	user, ok := ctx.Value(userCtxKey).(User)
	return user, ok
}

// UserIDFromContext returns the current user ID, or "" for anonymous requests
func UserIDFromContext(ctx context.Context) string {
	user, _ := UserFromContext(ctx)
	return user.ID
}

// FailureFunc is told about every rejected token
type FailureFunc func(r *http.Request, err error)

// Authenticator builds the middleware guarding API routes
type Authenticator struct {
	verifier  Verifier
	onFailure FailureFunc
}

// NewAuthenticator wraps verifier. onFailure may be nil.
func NewAuthenticator(verifier Verifier, onFailure FailureFunc) *Authenticator {
	return &Authenticator{verifier: verifier, onFailure: onFailure}
}

// Required rejects requests without a valid bearer token
func (a *Authenticator) Required() func(http.Handler) http.Handler {
	return a.middleware(true)
}

// Optional lets anonymous requests through but still rejects invalid tokens
func (a *Authenticator) Optional() func(http.Handler) http.Handler {
	return a.middleware(false)
}

func (a *Authenticator) middleware(required bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := tokenFromRequest(r)
			if errors.Is(err, ErrMissingToken) && !required {
				next.ServeHTTP(w, r)
				return
			}
			if err != nil {
				a.reject(w, r, err)
				return
			}

			user, err := a.verifier.Verify(r.Context(), token)
			if err != nil {
				a.reject(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

func (a *Authenticator) reject(w http.ResponseWriter, r *http.Request, err error) {
	if a.onFailure != nil {
		a.onFailure(r, err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
}

func tokenFromRequest(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", ErrMissingToken
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", ErrMalformedToken
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", ErrMalformedToken
	}
	return token, nil
}
