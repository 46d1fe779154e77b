package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-prefs-keeper/internal/config"
	myHTTP "github.com/MKhiriev/go-prefs-keeper/internal/handler/http"
	"github.com/MKhiriev/go-prefs-keeper/internal/logger"
	"github.com/MKhiriev/go-prefs-keeper/internal/workers"
)

type server struct {
	httpServer *httpServer
	workers    *workers.Workers
	logger     *logger.Logger
}

// NewServer builds the HTTP server for handler. ws may be nil; otherwise
// the workers run for as long as the server does.
func NewServer(handler *myHTTP.Handler, ws *workers.Workers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	if ws == nil {
		ws = workers.NewWorkers()
	}

	return &server{
		httpServer: newHTTPServer(handler.Init(), cfg, logger),
		workers:    ws,
		logger:     logger,
	}, nil
}

// RunServer serves until ctx is done or a stop signal arrives. The server
// logger is attached to the context the workers run with.
func (s *server) RunServer(ctx context.Context) {
	ctx, stop := signal.NotifyContext(
		s.logger.WithContext(ctx),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	s.run(ctx)
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
	s.workers.Stop()
}

// run serves until ctx is done, then shuts down.
func (s *server) run(ctx context.Context) {
	idleConnectionsClosed := make(chan struct{})

	go func() {
		<-ctx.Done()
		s.Shutdown()
		close(idleConnectionsClosed)
	}()

	s.workers.Run(ctx)

	s.logger.Info().Str("address", s.httpServer.server.Addr).Msg("Launching HTTP server")
	go s.httpServer.RunServer()

	<-idleConnectionsClosed
	s.logger.Info().Msg("server Shutdown gracefully")
}
