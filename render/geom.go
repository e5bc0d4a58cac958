// Package render hands transforms to ebiten. Only the xy part of a
// Transform survives: ebiten.GeoM is a 2x3 affine matrix.
package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/transform/transform"
)

// GeoM projects t onto the xy plane. GeoM maps column vectors, so the
// 2x2 block is transposed on the way over.
func GeoM(t transform.Transform) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, t.At(0, 0))
	g.SetElement(0, 1, t.At(1, 0))
	g.SetElement(0, 2, t.At(3, 0))
	g.SetElement(1, 0, t.At(0, 1))
	g.SetElement(1, 1, t.At(1, 1))
	g.SetElement(1, 2, t.At(3, 1))
	return g
}

// FromGeoM embeds g in a Transform with z and w left as identity.
func FromGeoM(g ebiten.GeoM) transform.Transform {
	c := transform.Identity().Components()
	c[0][0] = g.Element(0, 0)
	c[1][0] = g.Element(0, 1)
	c[3][0] = g.Element(0, 2)
	c[0][1] = g.Element(1, 0)
	c[1][1] = g.Element(1, 1)
	c[3][1] = g.Element(1, 2)
	return transform.FromComponents(c)
}

func DrawOptions(t transform.Transform) *ebiten.DrawImageOptions {
	op := &ebiten.DrawImageOptions{}
	op.GeoM = GeoM(t)
	return op
}

// Sprite is the pose a sprite is drawn with: shift by the origin, flip,
// scale, rotate, then move into place. Zero scales count as 1.
type Sprite struct {
	OriginX, OriginY float64
	Width            float64
	FacingLeft       bool
	ScaleX, ScaleY   float64
	Rotation         float64
	X, Y             float64
}

func (s Sprite) Transform() transform.Transform {
	t := transform.Identity().Translate(-s.OriginX, -s.OriginY, 0)

	sx := s.ScaleX
	if sx == 0 {
		sx = 1
	}
	if s.FacingLeft {
		sx = -sx
		t = t.Translate(-s.Width, 0, 0)
	}
	sy := s.ScaleY
	if sy == 0 {
		sy = 1
	}

	return t.Scale(sx, sy, 1).Rotate2D(s.Rotation).Translate(s.X, s.Y, 0)
}

// Camera maps world space into screen space for a camera at (x, y).
func Camera(x, y, zoom float64) transform.Transform {
	if zoom == 0 {
		zoom = 1
	}
	return transform.Identity().Translate(-x, -y, 0).Scale(zoom, zoom, 1)
}
