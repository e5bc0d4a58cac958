package transform

// ApplyPoint maps (x, y, z, 1) through t, translation included.
func (t Transform) ApplyPoint(x, y, z float64) (float64, float64, float64) {
	var p [3]float64
	for i := 0; i < 3; i++ {
		p[i] = t.m[0][i]*x + t.m[1][i]*y + t.m[2][i]*z + t.m[3][i]
	}
	return p[0], p[1], p[2]
}

// ApplyDim maps a direction or extent through t. It is ApplyPoint without
// the translation row.
func (t Transform) ApplyDim(x, y, z float64) (float64, float64, float64) {
	var p [3]float64
	for i := 0; i < 3; i++ {
		p[i] = t.m[0][i]*x + t.m[1][i]*y + t.m[2][i]*z
	}
	return p[0], p[1], p[2]
}
