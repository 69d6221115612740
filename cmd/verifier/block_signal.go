//go:build !zmq

package main

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// startBlockSignal without ZMQ support: idle periods end on the timer only.
func startBlockSignal(_ context.Context, addr string, logger *zap.Logger) (<-chan struct{}, error) {
	if addr != "" {
		return nil, errors.New("zmq-addr set but the binary was built without the zmq tag")
	}
	logger.Debug("block signal disabled; polling the node")
	return nil, nil
}
