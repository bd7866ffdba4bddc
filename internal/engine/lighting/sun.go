// Package lighting provides the time-of-day light for the terrain scene.
package lighting

import (
	"time"

	"github.com/Faultbox/terrain-flight/pkg/math"
)

// DegreesPerHour is how far the light travels around the vertical axis each hour.
const DegreesPerHour = 15

// Reference is the light position at hour 0, below and to the side of the scene.
var Reference = math.Vec4{1, -2, 0, 1}

// Scheduler derives the light position from the wall-clock hour.
type Scheduler struct {
	now func() time.Time
}

// NewScheduler creates a scheduler reading the local clock.
func NewScheduler() *Scheduler {
	return &Scheduler{now: time.Now}
}

// NewSchedulerWithClock creates a scheduler reading now. Used by tests and
// by the -hour override.
func NewSchedulerWithClock(now func() time.Time) *Scheduler {
	return &Scheduler{now: now}
}

// Hour returns the current local hour, 0-23.
func (s *Scheduler) Hour() int {
	return s.now().Hour()
}

// Position returns the light position for the current hour. It is recomputed
// on every call.
func (s *Scheduler) Position() math.Vec4 {
	return PositionAt(s.Hour())
}

// PositionAt rotates Reference about the Y axis by 15 degrees per hour.
// Hours wrap at 24.
func PositionAt(hour int) math.Vec4 {
	hour %= 24
	if hour < 0 {
		hour += 24
	}
	angle := math.Radians(float32(hour * DegreesPerHour))
	return math.RotateY(angle).MulVec4(Reference)
}

// FixedClock returns a clock that always reports the given hour today.
func FixedClock(hour int) func() time.Time {
	return func() time.Time {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
	}
}
