package grpc

import (
	"github.com/MKhiriev/go-product-catalog/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// ProductsServiceName is the service name reported by the health service.
const ProductsServiceName = "products"

// Handler is the root gRPC transport handler.
//
// It exposes the standard grpc.health.v1.Health service. The serving status
// of [ProductsServiceName] and of the server as a whole follows the storage
// probe results pushed through [Handler.SetStorageUp]. Until the first probe
// both report NOT_SERVING.
type Handler struct {
	health *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler] reporting NOT_SERVING until the first
// storage probe.
func NewHandler(logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		health: health.NewServer(),
		logger: logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	return h
}

// Register attaches the health and reflection services to server.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)
	reflection.Register(server)
}

// SetStorageUp switches the reported status between SERVING and NOT_SERVING.
func (h *Handler) SetStorageUp(up bool) {
	if up {
		h.setStatus(healthpb.HealthCheckResponse_SERVING)
		return
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
}

// Shutdown marks every service NOT_SERVING and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ProductsServiceName, status)
}
