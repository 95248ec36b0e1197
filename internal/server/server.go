// Package server wires the dependency graph and owns the HTTP lifecycle:
// router, middleware chain, route table, and graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/sakif/movielist/internal/auth"
	"github.com/sakif/movielist/internal/handler"
	"github.com/sakif/movielist/internal/middleware"
	sqliteRepo "github.com/sakif/movielist/internal/repository/sqlite"
	"github.com/sakif/movielist/internal/service"
)

// Config holds server configuration, loaded once in main.
type Config struct {
	Port       int
	DBPath     string
	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int
}

// Server bundles the router and the resources it owns. The database handle
// is created here and closed during shutdown.
type Server struct {
	router *chi.Mux
	config Config
	logger *slog.Logger
	db     *sqliteRepo.DB
}

// New assembles the dependency chain: database → services → handlers →
// routes. Each layer receives only what it needs; handlers never touch the
// database and services never touch HTTP.
func New(cfg Config, logger *slog.Logger) (*Server, error) {
	db, err := sqliteRepo.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Server{
		router: chi.NewRouter(),
		config: cfg,
		logger: logger,
		db:     db,
	}

	if err := s.setupRoutes(); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting up routes: %w", err)
	}

	return s, nil
}

// setupRoutes configures middleware and the route table.
//
// Reads (single movie, lists) are public. Every mutating route sits behind
// RequireAuth, which validates the bearer token and re-resolves the user.
func (s *Server) setupRoutes() error {
	tokens, err := auth.NewTokenService(s.config.JWTSecret, s.config.TokenTTL)
	if err != nil {
		return fmt.Errorf("creating token service: %w", err)
	}
	passwords := auth.NewPasswordServiceWithCost(s.config.BcryptCost)

	authService := service.NewAuthService(s.db, tokens, passwords, s.logger)
	movieService := service.NewMovieService(s.db, s.logger)
	ratingService := service.NewRatingService(s.db, s.db, s.logger)
	commentService := service.NewCommentService(s.db, s.db, s.logger)

	authHandler := handler.NewAuthHandler(authService, s.logger)
	movieHandler := handler.NewMovieHandler(movieService, s.logger)
	ratingHandler := handler.NewRatingHandler(ratingService, s.logger)
	commentHandler := handler.NewCommentHandler(commentService, s.logger)

	requireAuth := auth.RequireAuth(tokens, s.db)

	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(middleware.Logger(s.logger))

	s.router.Get("/healthz", handleHealth)

	s.router.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.HandleRegister)
		r.Post("/token", authHandler.HandleToken)
	})

	s.router.Route("/movies", func(r chi.Router) {
		// Public reads
		r.Get("/", movieHandler.HandleList)
		r.Get("/{id}", movieHandler.HandleGetByID)
		r.Get("/{id}/ratings/", ratingHandler.HandleList)

		// Authenticated mutations
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/", movieHandler.HandleCreate)
			r.Put("/{id}", movieHandler.HandleUpdate)
			r.Delete("/{id}", movieHandler.HandleDelete)
			r.Post("/{id}/ratings/", ratingHandler.HandleCreate)
		})
	})

	s.router.Route("/comments", func(r chi.Router) {
		// {id} names the movie for create/list and the comment for delete.
		r.Get("/{id}", commentHandler.HandleList)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/{id}", commentHandler.HandleCreate)
			r.Delete("/{id}", commentHandler.HandleDelete)
		})
	})

	return nil
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}` + "\n"))
}

// Start runs the HTTP server until SIGINT/SIGTERM, then drains in-flight
// requests (30s budget) and closes the database so the WAL is flushed.
func (s *Server) Start() error {
	defer s.db.Close()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("server starting",
			slog.Int("port", s.config.Port),
			slog.String("database", s.config.DBPath),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-quit:
		s.logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		s.logger.Info("server stopped gracefully")
	}

	return nil
}
