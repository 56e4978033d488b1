package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/maxim-ist/mcp-bear/internal/config"
	"github.com/maxim-ist/mcp-bear/internal/handler"
	"github.com/maxim-ist/mcp-bear/internal/logger"
)

type server struct {
	transport       transport
	shutdownTimeout time.Duration
	logger          *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.MCP == nil {
		return nil, errNoServersAreCreated
	}

	s := &server{
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}

	if cfg.HTTPAddress != "" {
		if handlers.HTTP == nil {
			return nil, errNoServersAreCreated
		}
		s.transport = newHTTPServer(handlers.HTTP.Init(), cfg.HTTPAddress, logger)
	} else {
		s.transport = newStdioServer(handlers.MCP, os.Stdin, os.Stdout, logger)
	}

	return s, nil
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.run(ctx)
}

func (s *server) Shutdown() {
	ctx := context.Background()
	if s.shutdownTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.shutdownTimeout)
		defer cancel()
	}

	if err := s.transport.shutdown(ctx); err != nil {
		s.logger.Err(err).Str("transport", s.transport.name()).Msg("shutdown failed")
	}
}

func (s *server) run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.logger.Info().Str("transport", s.transport.name()).Msg("launching server")

	done := make(chan error, 1)
	go func() {
		done <- s.transport.run(ctx)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("%s transport: %w", s.transport.name(), err)
		}
		s.logger.Info().Msg("server stopped")
		return nil

	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received")
		s.Shutdown()
		cancel()

		if err := <-done; err != nil {
			return fmt.Errorf("%s transport: %w", s.transport.name(), err)
		}
		s.logger.Info().Msg("server Shutdown gracefully")
		return nil
	}
}
