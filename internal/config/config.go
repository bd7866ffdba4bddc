// Package config handles settings loading and management.
package config

import (
	"errors"
	"fmt"
)

// Config holds all settings.
type Config struct {
	Graphics  GraphicsConfig  `yaml:"graphics"`
	Terrain   TerrainConfig   `yaml:"terrain"`
	Flight    FlightConfig    `yaml:"flight"`
	Light     LightConfig     `yaml:"light"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Debug     DebugConfig     `yaml:"debug"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Fullscreen bool    `yaml:"fullscreen"`
	VSync      bool    `yaml:"vsync"`
	FovDegrees float32 `yaml:"fov_degrees"`
	Near       float32 `yaml:"near"`
	Far        float32 `yaml:"far"`
}

// TerrainConfig controls height field generation.
type TerrainConfig struct {
	SizeExponent int     `yaml:"size_exponent"` // Grid is 2^n + 1 vertices per side
	Roughness    float32 `yaml:"roughness"`
	Amplitude    float32 `yaml:"amplitude"`
	Seed         uint64  `yaml:"seed"` // 0 picks a seed from the clock
}

// FlightConfig holds the per-key increments and collision tuning.
type FlightConfig struct {
	RotateStepDegrees float32 `yaml:"rotate_step_degrees"`
	MoveStep          float32 `yaml:"move_step"`
	SpawnClearance    float32 `yaml:"spawn_clearance"`
	SafetyMargin      float32 `yaml:"safety_margin"`
	EnvelopeHalfWidth float32 `yaml:"envelope_half_width"`
}

// LightConfig controls the time-of-day light.
type LightConfig struct {
	FixedHour int `yaml:"fixed_hour"` // -1 follows the wall clock
}

// TelemetryConfig holds the flight-state websocket feed settings.
type TelemetryConfig struct {
	Enabled    bool   `yaml:"enabled"`
	ListenAddr string `yaml:"listen_addr"`
	Buffer     int    `yaml:"buffer"` // Snapshots queued per client before dropping
}

// DebugConfig holds developer settings.
type DebugConfig struct {
	ScreenshotDir string `yaml:"screenshot_dir"`
	ShowFPS       bool   `yaml:"show_fps"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FovDegrees: 45,
			Near:       0.01,
			Far:        100,
		},
		Terrain: TerrainConfig{
			SizeExponent: 6,
			Roughness:    1,
			Amplitude:    0.5,
		},
		Flight: FlightConfig{
			RotateStepDegrees: 5,
			MoveStep:          0.05,
			SpawnClearance:    0.3,
			SafetyMargin:      0.4,
			EnvelopeHalfWidth: 1,
		},
		Light: LightConfig{
			FixedHour: -1,
		},
		Telemetry: TelemetryConfig{
			Enabled:    false,
			ListenAddr: "127.0.0.1:8765",
			Buffer:     64,
		},
		Debug: DebugConfig{
			ScreenshotDir: "screenshots",
			ShowFPS:       false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports settings that would break terrain generation or rendering.
func (c *Config) Validate() error {
	var errs []error
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics: invalid size %dx%d", c.Graphics.Width, c.Graphics.Height))
	}
	if c.Graphics.Near <= 0 || c.Graphics.Far <= c.Graphics.Near {
		errs = append(errs, fmt.Errorf("graphics: invalid depth range %v..%v", c.Graphics.Near, c.Graphics.Far))
	}
	if c.Terrain.SizeExponent < 1 || c.Terrain.SizeExponent > 12 {
		errs = append(errs, fmt.Errorf("terrain: size_exponent %d out of range 1..12", c.Terrain.SizeExponent))
	}
	if c.Flight.EnvelopeHalfWidth <= 0 {
		errs = append(errs, errors.New("flight: envelope_half_width must be positive"))
	}
	if c.Light.FixedHour < -1 || c.Light.FixedHour > 23 {
		errs = append(errs, fmt.Errorf("light: fixed_hour %d out of range -1..23", c.Light.FixedHour))
	}
	if c.Telemetry.Enabled && c.Telemetry.Buffer <= 0 {
		errs = append(errs, errors.New("telemetry: buffer must be positive"))
	}
	return errors.Join(errs...)
}
