package grpcv1

import (
	"github.com/Egor213/LogiGraph/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

func RegisterServices(services *service.Services) func(s *grpc.Server) {
	return func(s *grpc.Server) {
		grpc_health_v1.RegisterHealthServer(s, NewHealthController(services.Health))
		reflection.Register(s)
	}
}
