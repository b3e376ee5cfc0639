package grpcv1_test

import (
	"context"
	"errors"
	"testing"

	grpcv1 "github.com/Egor213/LogiGraph/internal/controller/grpc/v1"
	servicemocks "github.com/Egor213/LogiGraph/internal/mocks/service"
	"github.com/Egor213/LogiGraph/internal/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

func TestHealthController_Check(t *testing.T) {
	testCases := []struct {
		name         string
		service      string
		mockBehavior func(h *servicemocks.MockHealth)
		want         grpc_health_v1.HealthCheckResponse_ServingStatus
		wantCode     codes.Code
	}{
		{
			name: "database reachable",
			mockBehavior: func(h *servicemocks.MockHealth) {
				h.EXPECT().Check(gomock.Any()).Return(nil)
			},
			want: grpc_health_v1.HealthCheckResponse_SERVING,
		},
		{
			name:    "named service",
			service: grpcv1.ServiceName,
			mockBehavior: func(h *servicemocks.MockHealth) {
				h.EXPECT().Check(gomock.Any()).Return(nil)
			},
			want: grpc_health_v1.HealthCheckResponse_SERVING,
		},
		{
			name: "database down",
			mockBehavior: func(h *servicemocks.MockHealth) {
				h.EXPECT().Check(gomock.Any()).Return(errors.Join(service.ErrStorage, errors.New("timeout")))
			},
			want: grpc_health_v1.HealthCheckResponse_NOT_SERVING,
		},
		{
			name:         "unknown service",
			service:      "other.Service",
			mockBehavior: func(h *servicemocks.MockHealth) {},
			wantCode:     codes.NotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockHealth := servicemocks.NewMockHealth(ctrl)
			tc.mockBehavior(mockHealth)

			c := grpcv1.NewHealthController(mockHealth)
			resp, err := c.Check(context.Background(), &grpc_health_v1.HealthCheckRequest{Service: tc.service})

			if tc.wantCode != codes.OK {
				assert.Equal(t, tc.wantCode, status.Code(err))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, resp.GetStatus())
		})
	}
}
