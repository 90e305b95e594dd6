package server

import (
	"errors"
	"fmt"
	"net"

	"github.com/MKhiriev/go-product-catalog/internal/config"
	myGRPC "github.com/MKhiriev/go-product-catalog/internal/handler/grpc"
	"github.com/MKhiriev/go-product-catalog/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler
	address string

	server *grpc.Server

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer()
	handler.Register(server)

	return &grpcServer{
		handler: handler,
		address: cfg.GRPCAddress,
		server:  server,
		logger:  logger,
	}
}

func (g *grpcServer) listen() (net.Listener, error) {
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		return nil, fmt.Errorf("gRPC server listen on %s: %w", g.address, err)
	}
	return listener, nil
}

func (g *grpcServer) serve(listener net.Listener) error {
	if err := g.server.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("gRPC server Serve: %w", err)
	}
	return nil
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.handler.Shutdown()
	g.server.GracefulStop()
}
