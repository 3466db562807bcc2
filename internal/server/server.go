// Package server exposes normalized portfolio sections over HTTP as JSON and
// relays contact form submissions to the content API.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/naveenspark/folio/internal/portfolio"
	"github.com/naveenspark/folio/pkg/domain"
)

// ContactSender submits contact form messages.
type ContactSender interface {
	SendContactMessage(ctx context.Context, msg domain.ContactMessage) (*domain.ContactResult, error)
}

// Config holds runtime options for the relay.
type Config struct {
	Address     string
	Loader      *portfolio.Loader
	Contact     ContactSender
	Logger      *zap.Logger
	DefaultLang domain.Lang
}

// New constructs the HTTP server with its middleware stack.
func New(cfg Config) *http.Server {
	return &http.Server{
		Addr:         cfg.Address,
		Handler:      NewHandler(cfg),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// NewHandler builds the router.
func NewHandler(cfg Config) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	lang := cfg.DefaultLang
	if !lang.Valid() {
		lang = domain.English
	}
	h := &handlers{loader: cfg.Loader, contact: cfg.Contact, logger: logger, defaultLang: lang}

	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(requestLogger(logger))
	router.Use(chimw.Recoverer)
	router.Use(chimw.Timeout(60 * time.Second))

	router.Get("/healthz", h.health)
	router.Route("/v1", func(r chi.Router) {
		r.Get("/sections", h.listSections)
		r.Get("/sections/{section}", h.getSection)
		r.Get("/portfolio", h.getPortfolio)
		r.Post("/contact", h.postContact)
	})
	return router
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				status := ww.Status()
				if status == 0 {
					status = http.StatusOK
				}
				fields := []zap.Field{
					zap.String("request_id", chimw.GetReqID(r.Context())),
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Int("status", status),
					zap.Duration("latency", time.Since(start)),
					zap.Int("bytes", ww.BytesWritten()),
				}
				switch {
				case status >= http.StatusInternalServerError:
					logger.Error("request completed", fields...)
				case status >= http.StatusBadRequest:
					logger.Warn("request completed", fields...)
				default:
					logger.Info("request completed", fields...)
				}
			}()
			next.ServeHTTP(ww, r)
		})
	}
}
