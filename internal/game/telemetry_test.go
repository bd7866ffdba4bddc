package game

import (
	"context"
	"errors"
	"net"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/Faultbox/terrain-flight/internal/config"
)

func TestStartTelemetry(t *testing.T) {
	hub, srv, err := startTelemetry(config.TelemetryConfig{ListenAddr: "127.0.0.1:0", Buffer: 4}, zap.NewNop())
	if err != nil {
		t.Fatalf("startTelemetry: %v", err)
	}
	defer hub.Close()
	if srv.Addr() == "" {
		t.Error("server has no address")
	}
	if err := srv.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown: %v", err)
	}
}

func TestStartTelemetryWrapsListenError(t *testing.T) {
	hub, srv, err := startTelemetry(config.TelemetryConfig{ListenAddr: "no-port", Buffer: 4}, zap.NewNop())
	if err == nil {
		srv.Shutdown(context.Background())
		hub.Close()
		t.Fatal("expected error for an address without a port")
	}
	if !strings.HasPrefix(err.Error(), "failed to start telemetry: ") {
		t.Errorf("error = %q, want the failed to start telemetry prefix", err)
	}
	var opErr *net.OpError
	if !errors.As(err, &opErr) {
		t.Errorf("error %v does not wrap the listen error", err)
	}
	if hub != nil || srv != nil {
		t.Error("hub and server must be nil on error")
	}
}
