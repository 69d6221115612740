// Package transport exposes gRPC/HTTP handlers.
package transport

import (
	"context"
	"time"

	blockinsight7000v1 "github.com/goodnatureofminers/blockinsight7000-proto/pkg/blockinsight7000/v1"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const healthPingTimeout = 2 * time.Second

// ExplorerHandler implements ExplorerServiceServer.
type ExplorerHandler struct {
	blockinsight7000v1.UnimplementedExplorerServiceServer
	storage Pinger
	logger  *zap.Logger
}

// NewExplorerHandler returns an ExplorerHandler that reports healthy while storage answers pings.
func NewExplorerHandler(storage Pinger, logger *zap.Logger) blockinsight7000v1.ExplorerServiceServer {
	return &ExplorerHandler{
		storage: storage,
		logger:  logger,
	}
}

// Health reports server health.
func (h *ExplorerHandler) Health(ctx context.Context, _ *blockinsight7000v1.HealthRequest) (*blockinsight7000v1.HealthResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()

	if err := h.storage.Ping(ctx); err != nil {
		h.logger.Warn("verdict storage unreachable", zap.Error(err))
		return nil, status.Error(codes.Unavailable, "verdict storage unreachable")
	}

	return &blockinsight7000v1.HealthResponse{
		Status:      blockinsight7000v1.HealthStatus_HEALTH_STATUS_HEALTHY,
		Description: "",
	}, nil
}
