package game

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/terrain-flight/internal/flight"
)

// Action is a non-flight key binding.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionScreenshot
)

var flightKeys = map[sdl.Scancode]flight.Key{
	sdl.SCANCODE_UP:    flight.KeyUp,
	sdl.SCANCODE_DOWN:  flight.KeyDown,
	sdl.SCANCODE_LEFT:  flight.KeyLeft,
	sdl.SCANCODE_RIGHT: flight.KeyRight,
	sdl.SCANCODE_W:     flight.KeyW,
	sdl.SCANCODE_S:     flight.KeyS,
	sdl.SCANCODE_A:     flight.KeyA,
	sdl.SCANCODE_D:     flight.KeyD,
}

// FlightKey maps a scancode to a flight key, or KeyNone.
func FlightKey(sc sdl.Scancode) flight.Key {
	return flightKeys[sc]
}

// ActionFor maps a scancode to a loop action. Repeats never trigger actions.
func ActionFor(sc sdl.Scancode, repeat bool) Action {
	if repeat {
		return ActionNone
	}
	switch sc {
	case sdl.SCANCODE_ESCAPE:
		return ActionQuit
	case sdl.SCANCODE_F12:
		return ActionScreenshot
	}
	return ActionNone
}
