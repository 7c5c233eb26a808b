// Package transport exposes gRPC/HTTP handlers.
package transport

import (
	"context"

	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// HealthHandler implements the gRPC health service. The node serves while
// its bitcoind answers.
type HealthHandler struct {
	healthpb.UnimplementedHealthServer
	tip ChainTip
}

// NewHealthHandler returns a HealthHandler instance.
func NewHealthHandler(tip ChainTip) *HealthHandler {
	return &HealthHandler{tip: tip}
}

// Check reports server health. Only the overall service "" is known.
func (h *HealthHandler) Check(ctx context.Context, req *healthpb.HealthCheckRequest) (*healthpb.HealthCheckResponse, error) {
	if req.GetService() != "" {
		return nil, status.Errorf(codes.NotFound, "unknown service %q", req.GetService())
	}
	if _, err := h.tip.TipHeight(ctx); err != nil {
		return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_NOT_SERVING}, nil
	}
	return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_SERVING}, nil
}
