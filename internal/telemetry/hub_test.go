package telemetry

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Faultbox/terrain-flight/internal/flight"
	"github.com/Faultbox/terrain-flight/pkg/math"
)

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(url, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", wsURL, err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitForClients(t *testing.T, h *Hub, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for h.Clients() != n {
		if time.Now().After(deadline) {
			t.Fatalf("clients = %d, want %d", h.Clients(), n)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func readSnapshot(t *testing.T, conn *websocket.Conn) Snapshot {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var s Snapshot
	if err := conn.ReadJSON(&s); err != nil {
		t.Fatalf("read snapshot: %v", err)
	}
	return s
}

func TestHubStreamsSnapshots(t *testing.T) {
	hub := NewHub(8, nil)
	srv := httptest.NewServer(hub.Handler())
	defer srv.Close()

	conn := dial(t, srv.URL)
	waitForClients(t, hub, 1)

	hub.Publish(Snapshot{Seq: 1, Key: "up"})
	hub.Publish(Snapshot{Seq: 2, Key: "left", Reverted: true})

	first := readSnapshot(t, conn)
	second := readSnapshot(t, conn)
	if first.Seq != 1 || first.Key != "up" {
		t.Errorf("first = %+v", first)
	}
	if second.Seq != 2 || !second.Reverted {
		t.Errorf("second = %+v", second)
	}
}

func TestHubSendsLatestOnConnect(t *testing.T) {
	hub := NewHub(8, nil)
	srv := httptest.NewServer(hub.Handler())
	defer srv.Close()

	hub.Publish(Snapshot{Seq: 41})
	hub.Publish(Snapshot{Seq: 42})

	conn := dial(t, srv.URL)
	if got := readSnapshot(t, conn); got.Seq != 42 {
		t.Errorf("seq = %d, want 42", got.Seq)
	}
}

func TestHubUnregistersOnClose(t *testing.T) {
	hub := NewHub(8, nil)
	srv := httptest.NewServer(hub.Handler())
	defer srv.Close()

	conn := dial(t, srv.URL)
	waitForClients(t, hub, 1)

	conn.Close()
	waitForClients(t, hub, 0)
}

func TestPublishDoesNotBlock(t *testing.T) {
	hub := NewHub(1, nil)
	slow := &client{send: make(chan Snapshot, 1)}
	hub.clients[slow] = struct{}{}

	done := make(chan struct{})
	go func() {
		for i := 0; i < 5; i++ {
			hub.Publish(Snapshot{Seq: uint64(i)})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked on a full client queue")
	}
	if got := hub.Dropped(); got != 4 {
		t.Errorf("dropped = %d, want 4", got)
	}
	if s := <-slow.send; s.Seq != 0 {
		t.Errorf("queued seq = %d, want 0", s.Seq)
	}
}

func TestHealthz(t *testing.T) {
	hub := NewHub(8, nil)
	srv := httptest.NewServer(hub.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var body struct {
		Status  string `json:"status"`
		Clients int    `json:"clients"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Status != "ok" || body.Clients != 0 {
		t.Errorf("body = %+v", body)
	}
}

func TestServerStartShutdown(t *testing.T) {
	hub := NewHub(8, nil)
	s, err := Start("127.0.0.1:0", hub, nil)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	resp, err := http.Get("http://" + s.Addr() + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	resp.Body.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		t.Errorf("Shutdown: %v", err)
	}
}

func TestNewSnapshot(t *testing.T) {
	state := flight.State{
		Position:    math.Vec3{X: 0.1, Y: 0.3, Z: -0.05},
		Orientation: flight.Orientation{Yaw: 5},
	}
	res := flight.Result{
		Command: flight.Translate{From: flight.KeyUp},
		Hits:    2,
	}
	at := time.Unix(0, 0)

	s := NewSnapshot(7, at, state, res, 13)
	if s.Seq != 7 || s.Key != "up" || s.Hits != 2 || s.LightHour != 13 {
		t.Errorf("snapshot = %+v", s)
	}
	if s.Position != [3]float32{0.1, 0.3, -0.05} {
		t.Errorf("position = %v", s.Position)
	}
	if s.Orientation.Yaw != 5 {
		t.Errorf("orientation = %+v", s.Orientation)
	}

	if got := NewSnapshot(0, at, state, flight.Result{}, 0).Key; got != "none" {
		t.Errorf("key without command = %q, want none", got)
	}
}
