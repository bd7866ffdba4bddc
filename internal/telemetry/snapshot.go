// Package telemetry streams flight state to websocket clients.
package telemetry

import (
	"time"

	"github.com/Faultbox/terrain-flight/internal/flight"
)

// Snapshot is one applied command and the state it left behind.
type Snapshot struct {
	Seq         uint64             `json:"seq"`
	Time        time.Time          `json:"time"`
	Key         string             `json:"key"`
	Position    [3]float32         `json:"position"`
	Orientation flight.Orientation `json:"orientation"`
	Hits        int                `json:"hits"`
	Reverted    bool               `json:"reverted"`
	LightHour   int                `json:"light_hour"`
}

// NewSnapshot copies the state and command result into a Snapshot.
func NewSnapshot(seq uint64, at time.Time, s flight.State, res flight.Result, lightHour int) Snapshot {
	key := flight.KeyNone.String()
	if res.Command != nil {
		key = res.Command.Key().String()
	}
	return Snapshot{
		Seq:         seq,
		Time:        at,
		Key:         key,
		Position:    [3]float32{s.Position.X, s.Position.Y, s.Position.Z},
		Orientation: s.Orientation,
		Hits:        res.Hits,
		Reverted:    res.Reverted,
		LightHour:   lightHour,
	}
}
