// Package game implements the main loop: input, flight simulation, drawing.
package game

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/terrain-flight/internal/config"
	"github.com/Faultbox/terrain-flight/internal/engine/camera"
	"github.com/Faultbox/terrain-flight/internal/engine/debug"
	"github.com/Faultbox/terrain-flight/internal/engine/input"
	"github.com/Faultbox/terrain-flight/internal/engine/lighting"
	"github.com/Faultbox/terrain-flight/internal/engine/renderer"
	"github.com/Faultbox/terrain-flight/internal/engine/window"
	"github.com/Faultbox/terrain-flight/internal/flight"
	"github.com/Faultbox/terrain-flight/internal/logger"
	"github.com/Faultbox/terrain-flight/internal/telemetry"
)

const title = "Terrain Flight"

// Game owns every runtime resource.
type Game struct {
	config            *config.Config
	running           bool
	pendingScreenshot bool
	log               *zap.Logger

	window      *window.Window
	renderer    *renderer.Renderer
	input       *input.Input
	scene       *Scene
	sim         *flight.Simulation
	light       *lighting.Scheduler
	shownHour   int
	screenshots *debug.ScreenshotCapture

	hub       *telemetry.Hub
	telemetry *telemetry.Server
	metrics   *telemetry.Metrics
	seq       uint64
}

// New opens the window, builds the terrain and places the flyer.
func New(cfg *config.Config) (*Game, error) {
	g := &Game{
		config: cfg,
		log:    logger.Named("game"),
	}

	g.log.Info("initializing",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	var err error
	g.window, err = window.New(window.FromGraphics(title, cfg.Graphics))
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer AFTER window, since the GL context must exist
	width, height := g.window.DrawableSize()
	g.renderer, err = renderer.New(renderer.Config{
		Width:  width,
		Height: height,
		Projection: camera.Projection{
			FovYDegrees: cfg.Graphics.FovDegrees,
			Near:        cfg.Graphics.Near,
			Far:         cfg.Graphics.Far,
		},
		ClearColor: [3]float32{0.55, 0.7, 0.9},
	})
	if err != nil {
		g.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	seed := ResolveSeed(cfg.Terrain.Seed, time.Now)
	start := time.Now()
	g.scene = BuildScene(cfg.Terrain, seed)
	lo, hi := g.scene.Field.Range()
	g.log.Info("terrain generated",
		zap.Uint64("seed", seed),
		zap.Int("size", g.scene.Field.Size),
		zap.Float32("min", lo),
		zap.Float32("max", hi),
		zap.Duration("took", time.Since(start)),
	)

	if err := g.renderer.Upload(g.scene.Mesh, g.scene.Normals, g.scene.Colors); err != nil {
		g.Close()
		return nil, fmt.Errorf("failed to upload terrain: %w", err)
	}

	g.sim = flight.NewSimulation(g.scene.Field, g.scene.Mesh, g.renderer,
		FlightOptions(cfg.Flight, logger.Named("flight")))

	if cfg.Light.FixedHour >= 0 {
		g.light = lighting.NewSchedulerWithClock(lighting.FixedClock(cfg.Light.FixedHour))
	} else {
		g.light = lighting.NewScheduler()
	}

	g.screenshots = debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "flight")
	g.input = input.New()

	if cfg.Telemetry.Enabled {
		g.hub, g.telemetry, err = startTelemetry(cfg.Telemetry, logger.Named("telemetry"))
		if err != nil {
			g.Close()
			return nil, err
		}
		g.publish(flight.Result{})
	}

	g.metrics, err = telemetry.NewMetrics(g.hub)
	if err != nil {
		g.Close()
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}

	g.log.Info("initialized")
	return g, nil
}

// Run starts the main loop and returns when the window closes or Escape is pressed.
func (g *Game) Run() error {
	g.running = true
	g.shownHour = -1

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	g.log.Info("starting loop")

	for g.running {
		now := time.Now()
		dt := now.Sub(lastTime)
		lastTime = now

		// 1. Process input
		if g.input.Update() {
			g.running = false
			break
		}
		for _, event := range g.input.Events() {
			g.handleEvent(event)
		}

		// 2. Render
		if hour := g.light.Hour(); hour != g.shownHour {
			g.window.SetTitle(window.Caption(title, g.scene.Seed, hour))
			g.shownHour = hour
		}
		g.renderer.Begin()
		g.renderer.Draw(g.light.Position())

		// Capture before the swap while the back buffer holds this frame
		if g.pendingScreenshot {
			g.pendingScreenshot = false
			g.captureScreenshot()
		}

		// 3. Present
		g.window.SwapBuffers()

		frameCount++
		if g.config.Debug.ShowFPS && time.Since(fpsTimer) >= time.Second {
			g.log.Debug("fps",
				zap.Int("count", frameCount),
				zap.Duration("dt", dt),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (g *Game) handleEvent(event input.Event) {
	switch event.Type {
	case input.EventQuit:
		g.running = false

	case input.EventWindowResize:
		width, height := g.window.DrawableSize()
		g.renderer.Resize(width, height)

	case input.EventKeyDown:
		switch ActionFor(event.Key, event.Repeat) {
		case ActionQuit:
			g.running = false
			return
		case ActionScreenshot:
			g.pendingScreenshot = true
			return
		}

		res, ok := g.sim.HandleKey(FlightKey(event.Key))
		if !ok {
			return
		}
		g.metrics.Record(context.Background(), res)
		g.publish(res)
	}
}

func (g *Game) publish(res flight.Result) {
	if g.hub == nil {
		return
	}
	g.seq++
	g.hub.Publish(telemetry.NewSnapshot(g.seq, time.Now(), g.sim.State(), res, g.light.Hour()))
}

func (g *Game) captureScreenshot() {
	pixels, width, height := g.renderer.ReadPixels()
	path, err := g.screenshots.CaptureFromPixels(pixels, width, height)
	if err != nil {
		g.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	g.log.Info("screenshot saved", zap.String("path", path))
}

// Close cleans up every resource that was created.
func (g *Game) Close() {
	g.log.Info("closing")

	if g.telemetry != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := g.telemetry.Shutdown(ctx); err != nil {
			g.log.Warn("telemetry shutdown", zap.Error(err))
		}
		cancel()
		g.telemetry = nil
	}
	if g.renderer != nil {
		g.renderer.Close()
		g.renderer = nil
	}
	if g.window != nil {
		g.window.Close()
		g.window = nil
	}
}
