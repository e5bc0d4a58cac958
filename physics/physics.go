// Package physics moves chipmunk values through transforms.
package physics

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/transform/transform"
)

// Point maps a position, translation included.
func Point(t transform.Transform, v cp.Vector) cp.Vector {
	x, y, _ := t.ApplyPoint(v.X, v.Y, 0)
	return cp.Vector{X: x, Y: y}
}

// Dir maps a direction or velocity, translation excluded.
func Dir(t transform.Transform, v cp.Vector) cp.Vector {
	x, y, _ := t.ApplyDim(v.X, v.Y, 0)
	return cp.Vector{X: x, Y: y}
}

// BB returns the axis-aligned box around the four transformed corners of bb.
func BB(t transform.Transform, bb cp.BB) cp.BB {
	corners := [4]cp.Vector{
		{X: bb.L, Y: bb.B},
		{X: bb.R, Y: bb.B},
		{X: bb.R, Y: bb.T},
		{X: bb.L, Y: bb.T},
	}

	out := cp.BB{L: math.Inf(1), B: math.Inf(1), R: math.Inf(-1), T: math.Inf(-1)}
	for _, c := range corners {
		p := Point(t, c)
		out.L = math.Min(out.L, p.X)
		out.B = math.Min(out.B, p.Y)
		out.R = math.Max(out.R, p.X)
		out.T = math.Max(out.T, p.Y)
	}
	return out
}

// Angle is the rotation t applies to the x axis.
func Angle(t transform.Transform) float64 {
	return math.Atan2(t.At(0, 1), t.At(0, 0))
}

// Place moves body to where t puts the origin and turns it to match.
func Place(body *cp.Body, t transform.Transform) {
	body.SetPosition(Point(t, cp.Vector{}))
	body.SetAngle(Angle(t))
}

// FromBody is the rigid transform of body: rotate by its angle, then move to
// its position.
func FromBody(body *cp.Body) transform.Transform {
	p := body.Position()
	return transform.Identity().Rotate2D(body.Angle()).Translate(p.X, p.Y, 0)
}
