package server

import (
	"context"
	"net"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-product-catalog/internal/config"
	"github.com/MKhiriev/go-product-catalog/internal/handler"
	"github.com/MKhiriev/go-product-catalog/internal/logger"
	"golang.org/x/sync/errgroup"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	runners    []Runner
	logger     *logger.Logger
}

// NewServer creates the transports enabled in cfg. runners are started by
// Run next to them and stopped with them.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger, runners ...Runner) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{runners: runners, logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		servers.gRPCServer = newGRPCServer(handlers.GRPC, cfg, logger)
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.Run(ctx)
}

func (s *server) Run(ctx context.Context) error {
	// check if any server was created
	if s.httpServer == nil && s.gRPCServer == nil {
		return errNoServersToRun
	}

	listeners, err := s.listen()
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)

	// launch all created servers
	if s.httpServer != nil {
		s.logger.Info().Str("address", listeners.http.Addr().String()).Msg("Launching HTTP server")
		g.Go(func() error { return s.httpServer.serve(listeners.http) })
	}
	if s.gRPCServer != nil {
		s.logger.Info().Str("address", listeners.grpc.Addr().String()).Msg("Launching gRPC server")
		g.Go(func() error { return s.gRPCServer.serve(listeners.grpc) })
	}
	for _, runner := range s.runners {
		g.Go(func() error { return runner.Run(ctx) })
	}

	// finish started servers on a stop signal or on the first failure
	g.Go(func() error {
		<-ctx.Done()
		s.Shutdown()
		return nil
	})

	err = g.Wait()
	s.logger.Info().Msg("server Shutdown gracefully")

	return err
}

func (s *server) Shutdown() {
	// finish HTTP server
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}

	// finish gRPC server
	if s.gRPCServer != nil {
		s.gRPCServer.Shutdown()
	}
}

type serverListeners struct {
	http net.Listener
	grpc net.Listener
}

// listen binds every enabled transport before any of them starts serving.
func (s *server) listen() (serverListeners, error) {
	var (
		listeners serverListeners
		err       error
	)

	if s.httpServer != nil {
		if listeners.http, err = s.httpServer.listen(); err != nil {
			return serverListeners{}, err
		}
	}
	if s.gRPCServer != nil {
		if listeners.grpc, err = s.gRPCServer.listen(); err != nil {
			if listeners.http != nil {
				listeners.http.Close()
			}
			return serverListeners{}, err
		}
	}

	return listeners, nil
}
