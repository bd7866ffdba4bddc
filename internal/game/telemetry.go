package game

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/terrain-flight/internal/config"
	"github.com/Faultbox/terrain-flight/internal/telemetry"
)

// startTelemetry opens the snapshot hub and its HTTP listener.
func startTelemetry(cfg config.TelemetryConfig, log *zap.Logger) (*telemetry.Hub, *telemetry.Server, error) {
	hub := telemetry.NewHub(cfg.Buffer, log)
	srv, err := telemetry.Start(cfg.ListenAddr, hub, log)
	if err != nil {
		hub.Close()
		return nil, nil, fmt.Errorf("failed to start telemetry: %w", err)
	}
	return hub, srv, nil
}
