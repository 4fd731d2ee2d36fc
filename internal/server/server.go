// Package server exposes the prediction pipeline over HTTP: the patient form
// at "/" and a JSON API under "/api".
package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/hejijunhao/kidneyrisk/internal/pipeline"
)

// Page text.
const (
	Title       = "Kidney Disease Risk Prediction"
	SubmitLabel = "Predict Risk"
)

// SubmissionHeader carries the ID assigned to each submission.
const SubmissionHeader = "X-Submission-ID"

const maxBodyBytes = 1 << 20

//go:embed templates/*.html
var templateFS embed.FS

// Options configures a Server.
type Options struct {
	// CORSOrigins lists origins allowed to call the JSON API. Empty disables
	// CORS handling.
	CORSOrigins []string
}

// Server serves the form and the JSON API for one pipeline.
type Server struct {
	pipeline *pipeline.Pipeline
	tmpl     *template.Template
	router   chi.Router
}

// New builds a Server and its routes.
func New(p *pipeline.Pipeline, opts Options) (*Server, error) {
	tmpl, err := template.New("form.html").
		Funcs(template.FuncMap{"percent": percent}).
		ParseFS(templateFS, "templates/form.html")
	if err != nil {
		return nil, fmt.Errorf("server: parse templates: %w", err)
	}

	s := &Server{pipeline: p, tmpl: tmpl}
	s.router = s.routes(opts)
	return s, nil
}

func (s *Server) routes(opts Options) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleForm)
	r.With(submission).Post("/", s.handleSubmit)
	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		if len(opts.CORSOrigins) > 0 {
			r.Use(cors.Handler(cors.Options{
				AllowedOrigins: opts.CORSOrigins,
				AllowedMethods: []string{"GET", "POST", "OPTIONS"},
				AllowedHeaders: []string{"Accept", "Content-Type"},
				ExposedHeaders: []string{SubmissionHeader},
				MaxAge:         300,
			}))
		}
		r.Get("/schema", s.handleSchema)
		r.With(submission).Post("/predict", s.handlePredict)
	})
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Run listens on addr until ctx is cancelled, then drains in-flight requests
// for up to shutdownTimeout.
func (s *Server) Run(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	slog.Info("listening", "addr", addr)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	slog.Info("shutting down", "timeout", shutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return nil
}

func percent(p float64) string {
	return fmt.Sprintf("%.1f%%", p*100)
}
