package flight

import (
	"go.uber.org/zap"

	"github.com/Faultbox/terrain-flight/internal/engine/terrain"
	"github.com/Faultbox/terrain-flight/pkg/math"
)

// DefaultSpawnClearance is added to the centre elevation at spawn.
const DefaultSpawnClearance = 0.3

// Options configures a Simulation.
type Options struct {
	Steps          Steps
	SpawnClearance float32
	SafetyMargin   float32
	Envelope       Envelope
	Logger         *zap.Logger
}

// DefaultOptions returns the standard flight tuning.
func DefaultOptions() Options {
	return Options{
		Steps:          DefaultSteps(),
		SpawnClearance: DefaultSpawnClearance,
		SafetyMargin:   DefaultSafetyMargin,
		Envelope:       Envelope{HalfWidth: 1},
	}
}

// Result describes what one command did.
type Result struct {
	Command  Command
	Hits     int  // Triangles that shrank the displacement
	Reverted bool // Move rejected by the envelope
}

// Simulation owns the flight state. It is not safe for concurrent use; the
// game loop applies commands and draws on one thread.
type Simulation struct {
	state    State
	steps    Steps
	resolver *Resolver
	envelope Envelope
	deriver  *Deriver
	log      *zap.Logger
}

// NewSimulation places the flyer at x = z = 0, SpawnClearance above the
// centre cell elevation, with zero orientation, and
// publishes the initial transforms through a zero-length move.
//
// The spawn point is not checked against the mesh and can end up inside
// the terrain.
func NewSimulation(field *terrain.HeightField, mesh *terrain.Mesh, sink UniformSink, opts Options) *Simulation {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	s := &Simulation{
		state: State{
			Position: math.Vec3{Y: field.Center() + opts.SpawnClearance},
		},
		steps:    opts.Steps,
		resolver: NewResolver(mesh, opts.SafetyMargin),
		envelope: opts.Envelope,
		deriver:  NewDeriver(sink),
		log:      log,
	}

	s.move(math.Vec3{})
	s.log.Debug("flyer spawned",
		zap.Float32("x", s.state.Position.X),
		zap.Float32("y", s.state.Position.Y),
		zap.Float32("z", s.state.Position.Z),
	)
	return s
}

// State returns a copy of the current state.
func (s *Simulation) State() State {
	return s.state
}

// InBounds reports whether the current position lies inside the envelope.
func (s *Simulation) InBounds() bool {
	return s.envelope.Contains(s.state.Position)
}

// HandleKey maps key to its command and applies it. Unrecognised keys do
// nothing and return false.
func (s *Simulation) HandleKey(key Key) (Result, bool) {
	cmd, ok := s.steps.Command(key)
	if !ok {
		return Result{}, false
	}
	return s.Apply(cmd), true
}

// Apply runs one command to completion and republishes the transforms.
func (s *Simulation) Apply(cmd Command) Result {
	switch c := cmd.(type) {
	case Rotate:
		s.state.Orientation = s.state.Orientation.Add(c.Axis, c.Degrees)
		s.deriver.Publish(s.state)
		return Result{Command: cmd}
	case Translate:
		res := s.move(ToWorld(s.state.Orientation, c.Local))
		res.Command = cmd
		return res
	}
	return Result{Command: cmd}
}

// move applies a world-space displacement: collision adjustment first, then
// the envelope check, which reverts the whole move rather than clamping it.
func (s *Simulation) move(d math.Vec3) Result {
	adjusted, hits := s.resolver.Resolve(s.state.Position, d)

	res := Result{Hits: hits}
	prev := s.state.Position
	s.state.Position = prev.Add(adjusted)
	if !s.InBounds() {
		// Restore rather than subtract so the revert is exact in float32.
		s.state.Position = prev
		res.Reverted = true
	}

	if hits > 0 {
		s.log.Debug("displacement shortened by terrain",
			zap.Int("hits", hits),
			zap.Float32("requested", d.Length()),
			zap.Float32("applied", adjusted.Length()),
		)
	}
	if res.Reverted {
		s.log.Debug("move rejected outside envelope",
			zap.Float32("half_width", s.envelope.HalfWidth),
		)
	}

	s.deriver.Publish(s.state)
	return res
}
