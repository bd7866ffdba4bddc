package flight

import (
	"github.com/Faultbox/terrain-flight/pkg/math"
)

// UniformSink receives the derived matrices. The renderer implements it.
type UniformSink interface {
	SetView(view math.Mat4)
	SetModelView(modelView math.Mat4)
	RefreshProjection()
}

// ViewMatrix composes the orientation as RotateX(pitch) * RotateZ(roll) *
// RotateY(yaw). The order is fixed.
func ViewMatrix(o Orientation) math.Mat4 {
	return math.RotateX(math.Radians(o.Pitch)).
		Mul(math.RotateZ(math.Radians(o.Roll))).
		Mul(math.RotateY(math.Radians(o.Yaw)))
}

// ModelViewMatrix translates the view rotation by the position.
func ModelViewMatrix(view math.Mat4, pos math.Vec3) math.Mat4 {
	return view.Mul(math.Translate(pos))
}

// Deriver turns flight state into renderer uniforms.
type Deriver struct {
	sink UniformSink
}

// NewDeriver creates a deriver writing to sink. A nil sink discards output.
func NewDeriver(sink UniformSink) *Deriver {
	return &Deriver{sink: sink}
}

// Publish recomputes view and model-view for s, writes both, and asks the
// sink to rebuild its projection since the viewport may have changed.
func (d *Deriver) Publish(s State) (view, modelView math.Mat4) {
	view = ViewMatrix(s.Orientation)
	modelView = ModelViewMatrix(view, s.Position)

	if d.sink != nil {
		d.sink.SetModelView(modelView)
		d.sink.SetView(view)
		d.sink.RefreshProjection()
	}
	return view, modelView
}

// ToWorld rotates a direction from the flyer's frame into world space using
// the inverse (transpose) of the view rotation.
func ToWorld(o Orientation, local math.Vec3) math.Vec3 {
	return ViewMatrix(o).Transpose().TransformDirection(local)
}
