// Package server exposes the hedge calculator over HTTP.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	jsoniter "github.com/json-iterator/go"

	"github.com/rustyeddy/hedger/config"
	"github.com/rustyeddy/hedger/internal/metrics"
	"github.com/rustyeddy/hedger/journal"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Server serves hedge computations. Results are recorded to the journal
// when one is configured; a journal failure never fails the request.
type Server struct {
	cfg *config.Config
	log *slog.Logger
	now func() time.Time

	mu      sync.Mutex // serializes journal writes; the CSV journal is not goroutine-safe
	journal journal.Journal
}

// New returns a Server. A nil journal discards records and a nil logger
// uses slog.Default.
func New(cfg *config.Config, j journal.Journal, log *slog.Logger) *Server {
	if j == nil {
		j = journal.Nop{}
	}
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		cfg:     cfg,
		log:     log,
		now:     time.Now,
		journal: j,
	}
}

// Routes builds the HTTP handler.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Timeout(10 * time.Second))
	r.Use(metrics.Middleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "hedger"})
	})
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/contract", s.getContract)
		r.Post("/hedge", s.postHedge)
		r.Get("/hedge/sweep", s.getSweep)
	})
	return r
}

// Run listens on the configured address until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Server.Addr,
		Handler:      s.Routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("hedger listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	s.log.Info("shutting down hedger")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

func (s *Server) record(rec journal.ScenarioRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.journal.RecordScenario(rec); err != nil {
		metrics.JournalErrors.Inc()
		s.log.Error("journal write failed", "id", rec.ID, "err", err)
	}
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// writeJSON encodes v before touching the status line, so an encoding
// failure becomes a logged 500 instead of a 200 with an empty body.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.log.Error("encode response", "status", status, "err", err)
		data, _ = json.Marshal(errorResponse{Error: "internal error", Code: "encode_failed"})
		status = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(data, '\n')); err != nil {
		s.log.Warn("write response", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, code string, err error) {
	s.writeJSON(w, status, errorResponse{Error: err.Error(), Code: code})
}
