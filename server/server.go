// Package server exposes the planner over HTTP.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"

	"github.com/andrewcbuensalida/mudita-task-organizer-assignment/api"
	"github.com/andrewcbuensalida/mudita-task-organizer-assignment/api/health"
	"github.com/andrewcbuensalida/mudita-task-organizer-assignment/config"
	"github.com/andrewcbuensalida/mudita-task-organizer-assignment/logger"
)

const shutdownTimeout = 5 * time.Second

// Server serves the health and planning endpoints.
type Server struct {
	addr    string
	handler http.Handler
	log     logger.Logger
}

// New builds the router for cfg. plan serves POST /api/plan-tasks.
func New(cfg config.ServerConfig, plan http.Handler, log logger.Logger) *Server {
	if log == nil {
		log = logger.NopLogger{}
	}
	return &Server{
		addr:    cfg.Addr(),
		handler: routes(cfg, plan, log),
		log:     log,
	}
}

func routes(cfg config.ServerConfig, plan http.Handler, log logger.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(accessLog(log))
	r.Use(middleware.Recoverer)
	opts := cors.Options{
		AllowedOrigins: cfg.Origins(),
		AllowedMethods: []string{
			http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{RequestIDHeader},
		AllowCredentials: false,
	}
	if len(opts.AllowedOrigins) == 0 {
		// An empty list means "allow all" to the cors package.
		opts.AllowOriginFunc = func(*http.Request, string) bool { return false }
	}
	r.Use(cors.Handler(opts))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		_ = api.WriteDetail(w, http.StatusNotFound, "Not Found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		_ = api.WriteDetail(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	r.Method(http.MethodGet, "/", health.NewHandler())
	r.Group(func(r chi.Router) {
		if cfg.RateLimitRPS > 0 {
			r.Use(rateLimit(rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)))
		}
		r.Method(http.MethodPost, "/api/plan-tasks", plan)
	})
	return r
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler { return s.handler }

// Addr returns the configured listen address.
func (s *Server) Addr() string { return s.addr }

// Start listens on the configured address and serves until the context is
// canceled.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until the context is canceled. In-flight
// requests get shutdownTimeout to complete.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{Handler: s.handler, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.log.Errorf("shutdown server: %v", err)
		}
		cancel()
	}()
	s.log.Infof("task planner listening on %s", ln.Addr())
	err := srv.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
