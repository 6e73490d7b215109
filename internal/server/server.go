package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/yigit/workload/internal/bootstrap"
	"github.com/yigit/workload/internal/config"
	"github.com/yigit/workload/internal/pkg/helpers"
)

// Server holds the state for the HTTP server.
type Server struct {
	config *config.Config
	router *gin.Engine
	dbPool *pgxpool.Pool
	logger zerolog.Logger
	http   *http.Server
}

// NewServer creates and initializes a new server instance by calling bootstrap functions.
func NewServer(configPath string) (*Server, error) {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config or setup logger: %w", err)
	}

	dbPool, err := bootstrap.SetupDatabase(cfg, lgr)
	if err != nil {
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	deps := bootstrap.BuildDependencies(cfg, dbPool, lgr)
	router := bootstrap.SetupRouter(cfg, deps, lgr)

	return &Server{
		config: cfg,
		router: router,
		dbPool: dbPool,
		logger: lgr,
	}, nil
}

// Run serves HTTP until SIGINT or SIGTERM, then shuts down gracefully.
func (s *Server) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s.http = &http.Server{
		Addr:         ":" + s.config.Server.Port,
		Handler:      s.router,
		ReadTimeout:  helpers.ParseDuration(s.config.Server.ReadTimeout, 10*time.Second),
		WriteTimeout: helpers.ParseDuration(s.config.Server.WriteTimeout, 10*time.Second),
		IdleTimeout:  120 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.http.Addr).Msg("HTTP server listening")
		serverErrors <- s.http.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			s.closePool()
			return fmt.Errorf("error starting server: %w", err)
		}
	case <-ctx.Done():
		s.logger.Info().Msg("Received shutdown signal")
	}

	return s.Shutdown(context.Background())
}

// Shutdown gracefully stops the server and closes resources.
func (s *Server) Shutdown(ctx context.Context) error {
	timeout := helpers.ParseDuration(s.config.Server.ShutdownTimeout, 10*time.Second)
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var shutdownErr error
	if s.http != nil {
		s.logger.Info().Msg("Shutting down HTTP server...")
		if err := s.http.Shutdown(ctx); err != nil {
			s.logger.Error().Err(err).Msg("HTTP server shutdown error")
			shutdownErr = fmt.Errorf("server shutdown completed with errors: %w", err)
		} else {
			s.logger.Info().Msg("HTTP server gracefully stopped.")
		}
	}

	s.closePool()
	s.logger.Info().Msg("Server shutdown process complete.")
	return shutdownErr
}

func (s *Server) closePool() {
	if s.dbPool == nil {
		return
	}
	s.logger.Info().Msg("Closing database connection pool...")
	s.dbPool.Close()
	s.dbPool = nil
}
