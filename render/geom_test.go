package render

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/transform/transform"
	"github.com/stretchr/testify/assert"
)

func TestGeoMMatchesApplyPoint(t *testing.T) {
	cases := []struct {
		name string
		t    transform.Transform
	}{
		{"identity", transform.Identity()},
		{"scale_translate", transform.Identity().Scale(2, 2, 1).Translate(10, 10, 0)},
		{"rotate", transform.Identity().Rotate2D(0.6).Translate(-3, 4, 0)},
		{"mixed", transform.Identity().Translate(1, 2, 0).Scale(0.5, 3, 1).Rotate2D(-1.2)},
	}

	points := [][2]float64{{0, 0}, {1, 1}, {-2, 5}, {7.5, -0.25}}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := GeoM(c.t)
			for _, p := range points {
				gx, gy := g.Apply(p[0], p[1])
				x, y, _ := c.t.ApplyPoint(p[0], p[1], 0)
				assert.InDelta(t, x, gx, 1e-9)
				assert.InDelta(t, y, gy, 1e-9)
			}
		})
	}
}

func TestChainedGeoMMatchesTransform(t *testing.T) {
	var g ebiten.GeoM
	g.Translate(-8, -8)
	g.Scale(2, 3)
	g.Rotate(math.Pi / 3)
	g.Translate(100, 50)

	want := transform.Identity().
		Translate(-8, -8, 0).
		Scale(2, 3, 1).
		Rotate2D(math.Pi/3).
		Translate(100, 50, 0)

	got := FromGeoM(g)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			assert.InDelta(t, want.At(i, j), got.At(i, j), 1e-9, "entry [%d][%d]", i, j)
		}
	}
}

func TestFromGeoMRoundTrip(t *testing.T) {
	m := transform.Identity().Scale(2, 4, 1).Translate(10, -6, 0)
	assert.True(t, FromGeoM(GeoM(m)).Equal(m))
}

func TestSprite(t *testing.T) {
	s := Sprite{OriginX: 8, OriginY: 8, ScaleX: 2, X: 100, Y: 50}
	x, y, _ := s.Transform().ApplyPoint(8, 8, 0)
	assert.InDelta(t, 100.0, x, 1e-12)
	assert.InDelta(t, 50.0, y, 1e-12)

	x, y, _ = s.Transform().ApplyPoint(9, 9, 0)
	assert.InDelta(t, 102.0, x, 1e-12)
	assert.InDelta(t, 51.0, y, 1e-12)

	flipped := Sprite{Width: 16, FacingLeft: true}
	x, _, _ = flipped.Transform().ApplyPoint(0, 0, 0)
	assert.InDelta(t, 16.0, x, 1e-12)
	x, _, _ = flipped.Transform().ApplyPoint(16, 0, 0)
	assert.InDelta(t, 0.0, x, 1e-12)
}

func TestCameraAndDrawOptions(t *testing.T) {
	view := Camera(10, 20, 2)
	x, y, _ := view.ApplyPoint(11, 21, 0)
	assert.Equal(t, [2]float64{2, 2}, [2]float64{x, y})

	op := DrawOptions(transform.Identity().Mul(view))
	gx, gy := op.GeoM.Apply(11, 21)
	assert.InDelta(t, 2.0, gx, 1e-12)
	assert.InDelta(t, 2.0, gy, 1e-12)

	assert.True(t, Camera(0, 0, 0).Equal(transform.Identity()))
}
