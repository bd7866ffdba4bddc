package flight

import (
	"github.com/Faultbox/terrain-flight/pkg/math"
)

// Key identifies one of the recognised flight keys.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyW
	KeyS
	KeyA
	KeyD
)

var keyNames = map[Key]string{
	KeyNone:  "none",
	KeyUp:    "up",
	KeyDown:  "down",
	KeyLeft:  "left",
	KeyRight: "right",
	KeyW:     "w",
	KeyS:     "s",
	KeyA:     "a",
	KeyD:     "d",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// Command is a single state transition produced by one key press.
type Command interface {
	Key() Key
}

// Rotate adds Degrees to one orientation axis.
type Rotate struct {
	From    Key
	Axis    Axis
	Degrees float32
}

func (c Rotate) Key() Key { return c.From }

// Translate moves the flyer by Local, expressed in the flyer's own frame
// (forward is -Z).
type Translate struct {
	From  Key
	Local math.Vec3
}

func (c Translate) Key() Key { return c.From }

// Steps holds the fixed increments applied per key press.
type Steps struct {
	RotateDegrees float32
	Move          float32
}

// DefaultSteps returns the standard 5 degree / 0.05 unit increments.
func DefaultSteps() Steps {
	return Steps{
		RotateDegrees: 5,
		Move:          0.05,
	}
}

// Command maps a key to its command. Unrecognised keys return false.
//
//	Up / Down      forward / backward
//	Left / Right   yaw - / +
//	W / S          pitch - / +
//	A / D          roll - / +
func (s Steps) Command(key Key) (Command, bool) {
	switch key {
	case KeyUp:
		return Translate{From: key, Local: math.Vec3{Z: -s.Move}}, true
	case KeyDown:
		return Translate{From: key, Local: math.Vec3{Z: s.Move}}, true
	case KeyLeft:
		return Rotate{From: key, Axis: AxisYaw, Degrees: -s.RotateDegrees}, true
	case KeyRight:
		return Rotate{From: key, Axis: AxisYaw, Degrees: s.RotateDegrees}, true
	case KeyW:
		return Rotate{From: key, Axis: AxisPitch, Degrees: -s.RotateDegrees}, true
	case KeyS:
		return Rotate{From: key, Axis: AxisPitch, Degrees: s.RotateDegrees}, true
	case KeyA:
		return Rotate{From: key, Axis: AxisRoll, Degrees: -s.RotateDegrees}, true
	case KeyD:
		return Rotate{From: key, Axis: AxisRoll, Degrees: s.RotateDegrees}, true
	}
	return nil, false
}
