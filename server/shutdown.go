package server

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/LerianStudio/payments-engine/log"
)

// ErrNoServersConfigured indicates no servers were configured for the manager.
var ErrNoServersConfigured = errors.New("no servers configured: use WithHTTPServer()")

const defaultShutdownTimeout = 30 * time.Second

// ServerManager handles the graceful shutdown of the HTTP server.
type ServerManager struct {
	httpServer      *fiber.App
	logger          log.Logger
	httpAddress     string
	shutdownTimeout time.Duration
	startupErrors   chan error
}

// NewServerManager creates a new instance of ServerManager. If logger is nil,
// a no-op logger is used to ensure nil-safe operation throughout the server
// lifecycle.
func NewServerManager(logger log.Logger) *ServerManager {
	if logger == nil {
		logger = log.NewNop()
	}

	return &ServerManager{
		logger:          logger,
		shutdownTimeout: defaultShutdownTimeout,
		startupErrors:   make(chan error, 1),
	}
}

// WithHTTPServer configures the HTTP server for the ServerManager.
func (sm *ServerManager) WithHTTPServer(app *fiber.App, address string) *ServerManager {
	sm.httpServer = app
	sm.httpAddress = address

	return sm
}

// WithShutdownTimeout overrides the default shutdown deadline.
func (sm *ServerManager) WithShutdownTimeout(timeout time.Duration) *ServerManager {
	sm.shutdownTimeout = timeout

	return sm
}

// StartWithGracefulShutdown runs the configured server until SIGINT/SIGTERM
// or a startup failure, then shuts it down within the shutdown deadline.
func (sm *ServerManager) StartWithGracefulShutdown(ctx context.Context) error {
	if sm.httpServer == nil {
		return ErrNoServersConfigured
	}

	go func() {
		sm.logger.Log(ctx, log.LevelInfo, "http server listening",
			log.String("address", sm.httpAddress))

		if err := sm.httpServer.Listen(sm.httpAddress); err != nil {
			sm.startupErrors <- err
		}
	}()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	select {
	case sig := <-signals:
		sm.logger.Log(ctx, log.LevelInfo, "shutdown signal received",
			log.String("signal", sig.String()))
	case err := <-sm.startupErrors:
		return err
	case <-ctx.Done():
		sm.logger.Log(ctx, log.LevelInfo, "shutdown requested by context")
	}

	if err := sm.httpServer.ShutdownWithTimeout(sm.shutdownTimeout); err != nil {
		return err
	}

	sm.logger.Log(ctx, log.LevelInfo, "http server stopped")

	return nil
}
