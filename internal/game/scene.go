package game

import (
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/terrain-flight/internal/config"
	"github.com/Faultbox/terrain-flight/internal/engine/terrain"
	"github.com/Faultbox/terrain-flight/internal/flight"
)

// Scene is the immutable terrain data shared by the renderer and the simulation.
type Scene struct {
	Seed    uint64
	Field   *terrain.HeightField
	Mesh    *terrain.Mesh
	Normals []float32
	Colors  []float32
}

// ResolveSeed returns seed, or a clock-derived seed when it is 0.
func ResolveSeed(seed uint64, now func() time.Time) uint64 {
	if seed != 0 {
		return seed
	}
	return uint64(now().UnixNano())
}

// BuildScene generates the height field and every buffer derived from it.
func BuildScene(cfg config.TerrainConfig, seed uint64) *Scene {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	field := terrain.Generate(terrain.Params{
		Exponent:  cfg.SizeExponent,
		Roughness: cfg.Roughness,
		Amplitude: cfg.Amplitude,
	}, rng)
	mesh := terrain.BuildMesh(field)

	return &Scene{
		Seed:    seed,
		Field:   field,
		Mesh:    mesh,
		Normals: terrain.CalculateNormals(mesh),
		Colors:  terrain.Colors(field),
	}
}

// FlightOptions converts the flight settings into simulation options.
func FlightOptions(cfg config.FlightConfig, log *zap.Logger) flight.Options {
	return flight.Options{
		Steps: flight.Steps{
			RotateDegrees: cfg.RotateStepDegrees,
			Move:          cfg.MoveStep,
		},
		SpawnClearance: cfg.SpawnClearance,
		SafetyMargin:   cfg.SafetyMargin,
		Envelope:       flight.Envelope{HalfWidth: cfg.EnvelopeHalfWidth},
		Logger:         log,
	}
}
