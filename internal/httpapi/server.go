// Package httpapi exposes the translator over HTTP: a small JSON API plus
// the static web form. Request handling is synchronous; every translate call
// builds its own per-request state inside the service, so the server needs no
// coordination beyond what net/http provides.
package httpapi

import (
	"context"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/akanlabs/twi-translator/internal/service"
	"github.com/akanlabs/twi-translator/pkg/log"
)

// translateService is what the handlers need from the service layer.
type translateService interface {
	TranslateOne(ctx context.Context, sentence string, wantDiagnostics bool) service.Result
}

type Server struct {
	svc translateService

	uiEnabled   bool
	uiStaticDir string

	router *mux.Router
	server *http.Server
}

type Option func(*Server)

func WithUI(staticDir string, enabled bool) Option {
	return func(s *Server) {
		s.uiStaticDir = staticDir
		s.uiEnabled = enabled
	}
}

func NewServer(svc translateService, opts ...Option) *Server {
	s := &Server{svc: svc}
	for _, opt := range opts {
		opt(s)
	}

	s.router = mux.NewRouter()
	s.routes()
	return s
}

func (s *Server) routes() {
	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/translate", s.handleTranslate).Methods(http.MethodPost)
	api.HandleFunc("/examples", s.handleExamples).Methods(http.MethodGet)
	api.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	// Everything that is not an API route is the static form UI. Going
	// through NotFoundHandler keeps mux's 405 handling for the API routes.
	s.router.NotFoundHandler = http.HandlerFunc(s.handleStatic)
}

// Handler returns the full middleware stack: request logging and panic
// recovery around the router.
func (s *Server) Handler() http.Handler {
	return handlers.RecoveryHandler()(handlers.LoggingHandler(os.Stdout, s.router))
}

// Start blocks serving on addr until Shutdown or a listener error.
func (s *Server) Start(addr string) error {
	s.server = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	log.Info("listening on %s", addr)
	return s.server.ListenAndServe()
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	if !s.uiEnabled || s.uiStaticDir == "" || strings.HasPrefix(r.URL.Path, "/api/") {
		http.NotFound(w, r)
		return
	}

	rel := strings.TrimPrefix(path.Clean(r.URL.Path), "/")
	indexPath := filepath.Join(s.uiStaticDir, "index.html")

	if rel == "" || !strings.Contains(filepath.Base(rel), ".") {
		http.ServeFile(w, r, indexPath)
		return
	}

	filePath := filepath.Join(s.uiStaticDir, rel)
	if _, err := os.Stat(filePath); err != nil {
		// Unknown static paths fall back to the form page.
		http.ServeFile(w, r, indexPath)
		return
	}
	http.ServeFile(w, r, filePath)
}
