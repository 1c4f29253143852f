// Package server exposes engines over an HTTP JSON API. Each session owns
// one engine; requests against the same session are serialized.
package server

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/Fr4ncx-04/Balance/internal/engine"
	"github.com/Fr4ncx-04/Balance/internal/logger"
	"github.com/Fr4ncx-04/Balance/internal/model"
	"github.com/Fr4ncx-04/Balance/internal/store"
)

// Books loads recorded operations so a session can start from a stored book.
type Books interface {
	Book(ctx context.Context, name string) (store.Book, error)
	Operations(ctx context.Context, bookID string) ([]model.Operation, error)
}

// Option configures a Server.
type Option func(*Server)

// WithBooks lets sessions be seeded from stored books.
func WithBooks(b Books) Option {
	return func(s *Server) { s.books = b }
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Server) { s.log = l }
}

type session struct {
	mu      sync.Mutex
	engine  *engine.Engine
	book    string
	created time.Time
}

type Server struct {
	router    chi.Router
	addr      string
	newEngine func() *engine.Engine
	books     Books
	log       zerolog.Logger

	mu       sync.RWMutex
	sessions map[string]*session
}

// New builds the router. newEngine is called once per session.
func New(addr string, newEngine func() *engine.Engine, opts ...Option) *Server {
	r := chi.NewRouter()

	s := &Server{
		router:    r,
		addr:      addr,
		newEngine: newEngine,
		log:       logger.WithComponent("server"),
		sessions:  make(map[string]*session),
	}
	for _, opt := range opts {
		opt(s)
	}

	r.Use(middleware.RequestID)
	r.Use(s.requestLog)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/version", s.getVersion)
		r.Get("/operations", s.listOperationKinds)

		r.Post("/sessions", s.createSession)
		r.Get("/sessions", s.listSessions)
		r.Route("/sessions/{id}", func(r chi.Router) {
			r.Get("/", s.getSession)
			r.Delete("/", s.deleteSession)
			r.Post("/operations", s.applyOperation)
			r.Get("/reports/{report}", s.getReport)
		})
	})

	return s
}

func (s *Server) ListenAndServe() error {
	s.log.Info().Str("addr", s.addr).Msg("balance server listening")
	return http.ListenAndServe(s.addr, s.router)
}

func (s *Server) Serve(ln net.Listener) error {
	s.log.Info().Str("addr", ln.Addr().String()).Msg("balance server listening")
	return http.Serve(ln, s.router)
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Debug().
			Str("request_id", middleware.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}
