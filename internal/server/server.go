package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/Codinho_Go/internal/auth"
	"github.com/osse101/Codinho_Go/internal/bootcamp"
	"github.com/osse101/Codinho_Go/internal/database"
	"github.com/osse101/Codinho_Go/internal/gamification"
	"github.com/osse101/Codinho_Go/internal/handler"
	"github.com/osse101/Codinho_Go/internal/kata"
	"github.com/osse101/Codinho_Go/internal/logger"
	"github.com/osse101/Codinho_Go/internal/metrics"
)

// Options holds the HTTP-level settings of the server
type Options struct {
	Port                int
	MaxRequestBodyBytes int64
	TrustedProxies      []string
	ServiceName         string
	Version             string
}

// Services groups the domain services mounted under /api/v1
type Services struct {
	Gamification gamification.Service
	Bootcamp     bootcamp.Service
	Kata         kata.Service
}

type Server struct {
	httpServer *http.Server
	router     chi.Router
	detector   *SuspiciousActivityDetector
}

// NewServer creates a new Server instance. dbPool may be nil when running on in-memory storage.
func NewServer(opts Options, dbPool database.Pool, verifier auth.Verifier, services Services) *Server {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()
	authn := auth.NewAuthenticator(verifier, AuthFailureRecorder(opts.TrustedProxies, detector))

	r.Use(SecurityHeadersMiddleware())
	r.Use(SecurityLoggingMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(opts.MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))
	r.Get("/version", handler.HandleVersion(opts.ServiceName, opts.Version))
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	gamificationHandlers := handler.NewGamificationHandlers(services.Gamification)
	bootcampHandlers := handler.NewBootcampHandlers(services.Bootcamp)
	kataHandlers := handler.NewKataHandlers(services.Kata)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/gamification", func(r chi.Router) {
			r.Use(authn.Required())
			r.Get("/", gamificationHandlers.HandleGetLedger())
			r.Post("/xp", gamificationHandlers.HandleAddXP())
			r.Post("/achievements/{id}/unlock", gamificationHandlers.HandleUnlockAchievement())
			r.Delete("/achievements/recent", gamificationHandlers.HandleClearRecentAchievement())
			r.Post("/rewards/{id}/collect", gamificationHandlers.HandleCollectReward())
			r.Delete("/rewards/recent", gamificationHandlers.HandleClearRecentReward())
			r.Post("/reload", gamificationHandlers.HandleReload())
		})

		r.Route("/bootcamps", func(r chi.Router) {
			r.Use(authn.Required())
			r.Get("/", bootcampHandlers.HandleList())
			r.Post("/reload", bootcampHandlers.HandleReload())
			r.Get("/{id}", bootcampHandlers.HandleGet())
			r.Put("/{id}/progress", bootcampHandlers.HandleUpdateProgress())
			r.Post("/{id}/levels/{level}/complete", bootcampHandlers.HandleCompleteLevel())
			r.Post("/{id}/unlock", bootcampHandlers.HandleUnlock())
		})

		// Catalog browsing works anonymously; a token personalizes the view
		r.Route("/katas", func(r chi.Router) {
			r.Use(authn.Optional())
			r.Get("/", kataHandlers.HandleListKatas())
			r.Get("/{id}", kataHandlers.HandleGetKata())
		})

		r.Route("/submissions", func(r chi.Router) {
			r.Use(authn.Required())
			r.Post("/", kataHandlers.HandleSubmit())
			r.Get("/{id}", kataHandlers.HandleGetSubmission())
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           r,
			ReadHeaderTimeout: ReadHeaderTimeout,
			ReadTimeout:       ReadTimeout,
			WriteTimeout:      WriteTimeout,
			IdleTimeout:       IdleTimeout,
		},
		router:   r,
		detector: detector,
	}
}

// Handler exposes the router, mostly for httptest
func (s *Server) Handler() http.Handler {
	return s.router
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func isQuietPath(path string) bool {
	for _, prefix := range QuietPaths {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func sanitizeHeaders(h http.Header) http.Header {
	sanitized := make(http.Header, len(h))
	for k, v := range h {
		if strings.EqualFold(k, HeaderAuthorization) || strings.EqualFold(k, HeaderCookie) {
			sanitized[k] = []string{RedactedValue}
		} else {
			sanitized[k] = v
		}
	}
	return sanitized
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}
		w.Header().Set(HeaderRequestID, requestID)

		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())
		log.Debug(LogMsgRequestHeaders, "headers", sanitizeHeaders(r.Header))

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
