package rpc

import (
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/middleware"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// NewServer returns a gRPC server carrying the inventory service, health checks and reflection.
func NewServer(h *InventoryHandler, log logger.ZapLogger) *grpc.Server {
	server := grpc.NewServer(
		grpc.UnaryInterceptor(middleware.UnaryLogger(log)),
	)

	RegisterInventoryServiceServer(server, h)

	healthServer := health.NewServer()
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(server, healthServer)

	reflection.Register(server)

	return server
}
