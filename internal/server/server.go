package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
	"github.com/userportal/webapp/config"
	"github.com/userportal/webapp/internal/db"
	"github.com/userportal/webapp/internal/handlers"
	"github.com/userportal/webapp/internal/render"
	"github.com/userportal/webapp/internal/services"
	"github.com/userportal/webapp/internal/session"
	"github.com/userportal/webapp/internal/store"
)

// Server wraps the HTTP server and router.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	db         *sql.DB
}

// New constructs a Server with basic middleware and defaults.
func New(ctx context.Context, cfg config.Config, log *logrus.Logger) (*Server, error) {
	if cfg.SessionSecret == "" {
		return nil, errors.New("SESSION_SECRET is required")
	}

	dbConn, err := db.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	userRepo := store.NewUserRepository(dbConn)

	userService := services.NewUserService(userRepo)
	authService := services.NewAuthService(userRepo)

	sessions := session.NewManager(cfg.SessionSecret)
	views := render.New(cfg.ViewsDir)

	handler := handlers.NewWebHandler(authService, userService, sessions, views, log)

	router := chi.NewRouter()
	router.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		middleware.Timeout(60*time.Second),
	)
	router.Get("/healthz", handlers.Healthz)
	handlers.WebRouter(router, handler)

	port := cfg.ServerPort
	if port == 0 {
		port = 8080
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		router:     router,
		db:         dbConn,
	}, nil
}

// Router exposes the chi router for route registration.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// Start runs the HTTP server.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown attempts a graceful shutdown.
func (s *Server) Shutdown() error {
	if s.db != nil {
		_ = s.db.Close()
	}
	return s.httpServer.Close()
}
