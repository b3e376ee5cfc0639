package grpcv1

import (
	"google.golang.org/grpc/health/grpc_health_v1"
)

func ToServingStatus(err error) grpc_health_v1.HealthCheckResponse_ServingStatus {
	if err != nil {
		return grpc_health_v1.HealthCheckResponse_NOT_SERVING
	}
	return grpc_health_v1.HealthCheckResponse_SERVING
}
