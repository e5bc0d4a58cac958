package physics

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/transform/transform"
	"github.com/stretchr/testify/assert"
)

func TestPointAndDir(t *testing.T) {
	m := transform.Identity().Scale(2, 2, 1).Translate(10, 10, 0)

	assert.Equal(t, cp.Vector{X: 12, Y: 12}, Point(m, cp.Vector{X: 1, Y: 1}))
	assert.Equal(t, cp.Vector{X: 2, Y: 2}, Dir(m, cp.Vector{X: 1, Y: 1}))
}

func TestBB(t *testing.T) {
	box := cp.BB{L: -1, B: -1, R: 1, T: 1}

	t.Run("translate", func(t *testing.T) {
		got := BB(transform.Identity().Translate(5, 7, 0), box)
		assert.Equal(t, cp.BB{L: 4, B: 6, R: 6, T: 8}, got)
	})

	t.Run("mirror", func(t *testing.T) {
		got := BB(transform.Identity().Scale(-2, 1, 1), box)
		assert.Equal(t, cp.BB{L: -2, B: -1, R: 2, T: 1}, got)
	})

	t.Run("rotate_45", func(t *testing.T) {
		got := BB(transform.Identity().Rotate2D(math.Pi/4), box)
		r := math.Sqrt2
		assert.InDelta(t, -r, got.L, 1e-12)
		assert.InDelta(t, -r, got.B, 1e-12)
		assert.InDelta(t, r, got.R, 1e-12)
		assert.InDelta(t, r, got.T, 1e-12)
	})
}

func TestPlaceAndFromBody(t *testing.T) {
	body := cp.NewBody(1, cp.MomentForBox(1, 2, 2))
	m := transform.Identity().Rotate2D(0.75).Translate(3, -4, 0)

	Place(body, m)
	assert.InDelta(t, 3.0, body.Position().X, 1e-12)
	assert.InDelta(t, -4.0, body.Position().Y, 1e-12)
	assert.InDelta(t, 0.75, body.Angle(), 1e-12)

	back := FromBody(body)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			assert.InDelta(t, m.At(i, j), back.At(i, j), 1e-12, "entry [%d][%d]", i, j)
		}
	}
}

func TestAngle(t *testing.T) {
	assert.Equal(t, 0.0, Angle(transform.Identity()))
	assert.InDelta(t, math.Pi/2, Angle(transform.Identity().Rotate2D(math.Pi/2)), 1e-15)
	assert.InDelta(t, -2.0, Angle(transform.Identity().Scale(3, 3, 1).Rotate2D(-2)), 1e-12)
}
