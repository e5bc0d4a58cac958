package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/milk9111/transform/transform"
)

type report struct {
	Name   string    `json:"name"`
	Matrix grid      `json:"matrix"`
	Points []mapping `json:"points,omitempty"`
	Dims   []mapping `json:"dims,omitempty"`
}

type mapping struct {
	In  vec3 `json:"in"`
	Out vec3 `json:"out"`
}

// grid and vec3 write NaN and ±Inf as the strings "NaN", "+Inf" and "-Inf",
// which JSON numbers cannot hold.
type (
	grid [4][4]float64
	vec3 [3]float64
)

func (g grid) MarshalJSON() ([]byte, error) {
	rows := make([][]jsonFloat, 0, 4)
	for _, row := range g {
		rows = append(rows, []jsonFloat{jsonFloat(row[0]), jsonFloat(row[1]), jsonFloat(row[2]), jsonFloat(row[3])})
	}
	return json.Marshal(rows)
}

func (v vec3) MarshalJSON() ([]byte, error) {
	return json.Marshal([]jsonFloat{jsonFloat(v[0]), jsonFloat(v[1]), jsonFloat(v[2])})
}

type jsonFloat float64

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	switch {
	case math.IsNaN(v):
		return []byte(`"NaN"`), nil
	case math.IsInf(v, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(v, -1):
		return []byte(`"-Inf"`), nil
	}
	return json.Marshal(v)
}

func newReport(name string, t transform.Transform) report {
	return report{Name: name, Matrix: grid(t.Components())}
}

// addPoints maps extra points through t and appends them.
func (r *report) addPoints(t transform.Transform, points [][3]float64) {
	for _, p := range points {
		x, y, z := t.ApplyPoint(p[0], p[1], p[2])
		r.Points = append(r.Points, mapping{In: vec3(p), Out: vec3{x, y, z}})
	}
}

func writeReport(w io.Writer, format string, r report) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	fmt.Fprintf(w, "name: %s\n", r.Name)
	fmt.Fprintln(w, "matrix:")
	for _, row := range r.Matrix {
		fmt.Fprintf(w, "  [%g %g %g %g]\n", row[0], row[1], row[2], row[3])
	}
	writeMappings(w, "points", r.Points)
	writeMappings(w, "dims", r.Dims)
	return nil
}

func writeMappings(w io.Writer, label string, ms []mapping) {
	if len(ms) == 0 {
		return
	}
	fmt.Fprintf(w, "%s:\n", label)
	for _, m := range ms {
		fmt.Fprintf(w, "  (%g %g %g) -> (%g %g %g)\n",
			m.In[0], m.In[1], m.In[2], m.Out[0], m.Out[1], m.Out[2])
	}
}
