// Package http exposes the expense store over a small JSON/CSV API. This
// layer owns presentation concerns only; every mutation and aggregation
// goes through the store port below, and the caller of the CSV endpoint
// owns clipboard interaction and notifications.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"kakeibo/internal/core"
	applog "kakeibo/internal/log"
)

// ExpenseStore is the collaborator contract between this layer and the
// record store.
type ExpenseStore interface {
	Add(ctx context.Context, date, category, amount, memo string) (core.ExpenseRecord, error)
	Delete(ctx context.Context, id int64) error
	CategorySummary() map[string]int64
	Total() int64
	CSV() string
	Records() []core.ExpenseRecord
	Categories() []string
}

type Server struct {
	http.Server
	store        ExpenseStore
	shutdownOnce sync.Once
}

// NewServer configures routes, returning a ready-to-run http.Server.
func NewServer(addr string, store ExpenseStore) *Server {
	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:           addr,
			Handler:        mux,
			ReadTimeout:    10 * time.Second,
			WriteTimeout:   10 * time.Second,
			IdleTimeout:    60 * time.Second,
			MaxHeaderBytes: 1 << 16, // 64KB
		},
		store: store,
	}

	mux.HandleFunc("/expenses", s.withMiddleware(s.handleExpenses))
	mux.HandleFunc("/expenses/delete", s.withMiddleware(s.handleDeleteExpense))
	mux.HandleFunc("/summary", s.withMiddleware(s.handleSummary))
	mux.HandleFunc("/export.csv", s.withMiddleware(s.handleExportCSV))
	mux.HandleFunc("/healthz", s.handleHealth)

	return s
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}

func (s *Server) withMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(rec, r)

		slog.InfoContext(r.Context(), "HTTP request",
			applog.FieldComponent, applog.ComponentHTTP,
			"method", r.Method,
			"path", r.URL.Path,
			"status_code", rec.status,
			"duration_ms", time.Since(start).Milliseconds())
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
