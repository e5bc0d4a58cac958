// Package transform implements 4x4 homogeneous transforms.
//
// Entries are addressed m[row][col]. Points are row vectors, so a point p is
// mapped to p·M and row 3 carries the translation. Composition follows from
// that: in a.Mul(b), a is applied first and b second.
//
// A Transform is a plain array value. Every operation returns a new Transform
// and leaves its receiver and arguments untouched.
package transform

import (
	"fmt"
	"math"
	"strings"
)

type Transform struct {
	m [4][4]float64
}

func Identity() Transform {
	return Transform{m: [4][4]float64{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}}
}

// FromComponents builds a Transform from a grid laid out like Components.
func FromComponents(c [4][4]float64) Transform {
	return Transform{m: c}
}

func Copy(t Transform) Transform {
	return t.Copy()
}

func (t Transform) Copy() Transform {
	return Transform{m: t.m}
}

// Compose returns a·b.
func Compose(a, b Transform) Transform {
	return a.Mul(b)
}

// Mul returns t·o. Points are pushed through t before o.
func (t Transform) Mul(o Transform) Transform {
	var out Transform
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += t.m[i][k] * o.m[k][j]
			}
			out.m[i][j] = sum
		}
	}
	return out
}

func (t Transform) Scale(x, y, z float64) Transform {
	s := Identity()
	s.m[0][0] = x
	s.m[1][1] = y
	s.m[2][2] = z
	return t.Mul(s)
}

func (t Transform) Translate(x, y, z float64) Transform {
	tr := Identity()
	tr.m[3][0] = x
	tr.m[3][1] = y
	tr.m[3][2] = z
	return t.Mul(tr)
}

// Rotate2D rotates about the z axis by angle radians. Positive angles turn
// +x towards +y.
func (t Transform) Rotate2D(angle float64) Transform {
	c, s := math.Cos(angle), math.Sin(angle)
	r := Identity()
	r.m[0][0] = c
	r.m[0][1] = s
	r.m[1][0] = -s
	r.m[1][1] = c
	return t.Mul(r)
}

func Equal(a, b Transform) bool {
	return a.Equal(b)
}

// Equal compares all 16 entries with ==. There is no tolerance, so a NaN
// entry makes a Transform unequal to itself, and -0 equals +0.
func (t Transform) Equal(o Transform) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if t.m[i][j] != o.m[i][j] {
				return false
			}
		}
	}
	return true
}

// Components returns a copy of the grid, indexed [row][col] from 0.
func (t Transform) Components() [4][4]float64 {
	return t.m
}

// At returns the entry at row, col.
func (t Transform) At(row, col int) float64 {
	return t.m[row][col]
}

func (t Transform) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, row := range t.m {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "[%g %g %g %g]", row[0], row[1], row[2], row[3])
	}
	b.WriteByte(']')
	return b.String()
}
