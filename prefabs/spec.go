package prefabs

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/milk9111/transform/transform"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownOp = errors.New("prefabs: unknown step op")
	ErrRigCycle  = errors.New("prefabs: rig parent cycle")
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := ReadFile(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	return DecodeSpec[T](filename, data)
}

func DecodeSpec[T any](filename string, data []byte) (T, error) {
	var zero T
	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return spec, nil
}

// RigSpec describes how to build a transform: an optional base pose, then the
// steps in order, then the parent rig's transform.
type RigSpec struct {
	Name      string         `yaml:"name"`
	Parent    string         `yaml:"parent"`
	Transform *TransformSpec `yaml:"transform"`
	Steps     []StepSpec     `yaml:"steps"`
	Points    []Vec3         `yaml:"points"`
	Dims      []Vec3         `yaml:"dims"`
}

func LoadRigSpec(filename string) (RigSpec, error) {
	return LoadSpec[RigSpec](filename)
}

// TransformSpec is a 2D pose in the shape sprites use: scale, then rotate,
// then move. Zero scales count as 1.
type TransformSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Z        float64 `yaml:"z"`
	ScaleX   float64 `yaml:"scale_x"`
	ScaleY   float64 `yaml:"scale_y"`
	ScaleZ   float64 `yaml:"scale_z"`
	Rotation float64 `yaml:"rotation"`
}

func (s TransformSpec) Build() transform.Transform {
	return transform.Identity().
		Scale(orOne(s.ScaleX), orOne(s.ScaleY), orOne(s.ScaleZ)).
		Rotate2D(s.Rotation).
		Translate(s.X, s.Y, s.Z)
}

func orOne(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}

// StepSpec is one operation applied on top of what came before.
//
//	- op: scale       # x, y, z default to 1
//	- op: translate   # x, y, z default to 0
//	- op: rotate2d    # angle in radians, or degrees
//	- op: script      # script: name.tengo, gets `input`, must set `result`
type StepSpec struct {
	Op      string   `yaml:"op"`
	X       *float64 `yaml:"x"`
	Y       *float64 `yaml:"y"`
	Z       *float64 `yaml:"z"`
	Angle   float64  `yaml:"angle"`
	Degrees float64  `yaml:"degrees"`
	Script  string   `yaml:"script"`
}

func (s StepSpec) vec(def float64) (float64, float64, float64) {
	get := func(p *float64) float64 {
		if p == nil {
			return def
		}
		return *p
	}
	return get(s.X), get(s.Y), get(s.Z)
}

func (s StepSpec) angle() float64 {
	if s.Degrees != 0 {
		return s.Degrees * math.Pi / 180
	}
	return s.Angle
}

// Vec3 decodes from either [x, y, z] or {x: .., y: .., z: ..}. Missing
// components are 0.
type Vec3 [3]float64

func (v *Vec3) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var xs []float64
		if err := value.Decode(&xs); err != nil {
			return err
		}
		if len(xs) < 2 || len(xs) > 3 {
			return fmt.Errorf("vec3 needs 2 or 3 numbers, got %d", len(xs))
		}
		*v = Vec3{}
		copy(v[:], xs)
		return nil
	case yaml.MappingNode:
		var m struct {
			X float64 `yaml:"x"`
			Y float64 `yaml:"y"`
			Z float64 `yaml:"z"`
		}
		if err := value.Decode(&m); err != nil {
			return err
		}
		*v = Vec3{m.X, m.Y, m.Z}
		return nil
	}
	return fmt.Errorf("vec3 must be a sequence or mapping, got %q", strings.TrimSpace(value.Value))
}
