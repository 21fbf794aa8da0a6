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

	"github.com/labstack/echo/v4"
	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/internal/pkg/logger"
)

// GracefulServer wraps Echo with signal driven graceful shutdown
type GracefulServer struct {
	echo            *echo.Echo
	logger          *logger.ZapLogger
	port            int
	shutdownTimeout time.Duration
	cleanup         []func(context.Context) error
}

// NewGracefulServer creates a new server with graceful shutdown
func NewGracefulServer(e *echo.Echo, zapLogger *logger.ZapLogger, port int, shutdownTimeout time.Duration) *GracefulServer {
	if shutdownTimeout <= 0 {
		shutdownTimeout = 30 * time.Second
	}
	return &GracefulServer{
		echo:            e,
		logger:          zapLogger,
		port:            port,
		shutdownTimeout: shutdownTimeout,
	}
}

// OnShutdown registers a cleanup hook run after the HTTP server stopped.
// Hooks run in reverse registration order.
func (s *GracefulServer) OnShutdown(fn func(context.Context) error) {
	s.cleanup = append(s.cleanup, fn)
}

// Start serves until ctx is cancelled or SIGINT/SIGTERM arrives, then shuts down
func (s *GracefulServer) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", s.port)
		s.logger.Info("Starting HTTP server", logger.String("address", addr))

		if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case sig := <-quit:
		s.logger.Info("Received shutdown signal", logger.String("signal", sig.String()))
	case <-ctx.Done():
		s.logger.Info("Context cancelled, shutting down")
	case err := <-errCh:
		s.logger.Error("HTTP server failed", logger.Err(err))
		s.runCleanup()
		return err
	}

	return s.Shutdown()
}

// Shutdown stops the HTTP server and runs cleanup hooks
func (s *GracefulServer) Shutdown() error {
	s.logger.Info("Shutting down server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	err := s.echo.Shutdown(ctx)
	if err != nil {
		s.logger.Error("Server forced to shutdown", logger.Err(err))
	}

	s.runCleanup()
	s.logger.Info("Server shutdown completed")
	return err
}

func (s *GracefulServer) runCleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	for i := len(s.cleanup) - 1; i >= 0; i-- {
		if err := s.cleanup[i](ctx); err != nil {
			s.logger.Error("Error during component shutdown", logger.Int("component", i), logger.Err(err))
		}
	}
	s.cleanup = nil
}
