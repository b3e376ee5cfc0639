package grpcv1

import (
	"context"

	"github.com/Egor213/LogiGraph/internal/service"
	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// ServiceName is the name clients may pass in HealthCheckRequest.Service.
// The empty name reports the server as a whole.
const ServiceName = "logigraph.LogiGraph"

type HealthController struct {
	healthService service.Health
	grpc_health_v1.UnimplementedHealthServer
}

func NewHealthController(hs service.Health) *HealthController {
	return &HealthController{
		healthService: hs,
	}
}

func (c *HealthController) Check(ctx context.Context, req *grpc_health_v1.HealthCheckRequest) (*grpc_health_v1.HealthCheckResponse, error) {
	if name := req.GetService(); name != "" && name != ServiceName {
		return nil, status.Errorf(codes.NotFound, "unknown service %q", name)
	}

	err := c.healthService.Check(ctx)
	if err != nil {
		log.WithError(err).Warn("Health check failed")
	}

	return &grpc_health_v1.HealthCheckResponse{
		Status: ToServingStatus(err),
	}, nil
}
