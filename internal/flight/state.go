// Package flight holds the flyer simulation: position and orientation state,
// terrain collision, the flight envelope and the camera transforms derived
// from them.
package flight

import (
	"github.com/Faultbox/terrain-flight/pkg/math"
)

// Axis selects one of the three orientation angles.
type Axis int

const (
	AxisPitch Axis = iota
	AxisYaw
	AxisRoll
)

func (a Axis) String() string {
	switch a {
	case AxisPitch:
		return "pitch"
	case AxisYaw:
		return "yaw"
	case AxisRoll:
		return "roll"
	}
	return "unknown"
}

// Orientation holds the three rotation angles in degrees.
// Angles are never wrapped or clamped.
type Orientation struct {
	Pitch float32 `json:"pitch"`
	Yaw   float32 `json:"yaw"`
	Roll  float32 `json:"roll"`
}

// Add returns o with deg added to one axis.
func (o Orientation) Add(axis Axis, deg float32) Orientation {
	switch axis {
	case AxisPitch:
		o.Pitch += deg
	case AxisYaw:
		o.Yaw += deg
	case AxisRoll:
		o.Roll += deg
	}
	return o
}

// State is the flyer's position and orientation.
type State struct {
	Position    math.Vec3
	Orientation Orientation
}

// Envelope is the horizontal square the flyer may occupy.
type Envelope struct {
	HalfWidth float32
}

// Contains reports whether both horizontal coordinates of p lie in
// [-HalfWidth, HalfWidth].
func (e Envelope) Contains(p math.Vec3) bool {
	return p.XZ().InSquare(e.HalfWidth)
}
