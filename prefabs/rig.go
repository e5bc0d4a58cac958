package prefabs

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/milk9111/transform/script"
	"github.com/milk9111/transform/transform"
	"go.uber.org/zap"
)

// Rig is an evaluated RigSpec. Local covers the rig's own pose and steps,
// World additionally pushes the result through every parent.
type Rig struct {
	Name   string
	Local  transform.Transform
	World  transform.Transform
	Points []Vec3
	Dims   []Vec3
}

type Builder struct {
	Logger  *zap.Logger
	Timeout time.Duration
	// Resolve maps a rig or script name to the path it is loaded from.
	// Names are used as given when it is nil.
	Resolve func(name string) string
	// Load reads a resolved rig, including parents. Defaults to LoadRigSpec.
	Load func(name string) (RigSpec, error)
	// LoadScript reads a resolved script step. Defaults to LoadScript.
	LoadScript func(name string) ([]byte, error)
}

func (b *Builder) logger() *zap.Logger {
	if b == nil || b.Logger == nil {
		return zap.NewNop()
	}
	return b.Logger
}

func (b *Builder) resolve(name string) string {
	if b != nil && b.Resolve != nil {
		return b.Resolve(name)
	}
	return name
}

func (b *Builder) load(name string) (RigSpec, error) {
	path := b.resolve(name)
	if b != nil && b.Load != nil {
		return b.Load(path)
	}
	return LoadRigSpec(path)
}

func (b *Builder) loadScript(name string) ([]byte, error) {
	path := b.resolve(name)
	if b != nil && b.LoadScript != nil {
		return b.LoadScript(path)
	}
	return LoadScript(path)
}

func (b *Builder) Build(ctx context.Context, name string) (*Rig, error) {
	spec, err := b.load(name)
	if err != nil {
		return nil, err
	}
	return b.BuildSpec(ctx, name, spec)
}

func (b *Builder) BuildSpec(ctx context.Context, name string, spec RigSpec) (*Rig, error) {
	local, err := b.local(ctx, name, spec)
	if err != nil {
		return nil, err
	}

	world := local
	// Cycles are detected on resolved paths so "a.yaml" and "./a.yaml"
	// count as the same rig.
	seen := map[string]bool{b.resolve(name): true}
	chain := []string{name}
	for parent := spec.Parent; parent != ""; {
		key := b.resolve(parent)
		if seen[key] {
			return nil, fmt.Errorf("%w: %s -> %s", ErrRigCycle, strings.Join(chain, " -> "), parent)
		}
		seen[key] = true
		chain = append(chain, parent)

		ps, err := b.load(parent)
		if err != nil {
			return nil, fmt.Errorf("prefabs: rig %s: parent %s: %w", name, parent, err)
		}
		pl, err := b.local(ctx, parent, ps)
		if err != nil {
			return nil, err
		}
		world = world.Mul(pl)
		parent = ps.Parent
	}

	rig := &Rig{
		Name:  spec.Name,
		Local: local,
		World: world,
	}
	if rig.Name == "" {
		rig.Name = name
	}
	for _, p := range spec.Points {
		x, y, z := world.ApplyPoint(p[0], p[1], p[2])
		rig.Points = append(rig.Points, Vec3{x, y, z})
	}
	for _, d := range spec.Dims {
		x, y, z := world.ApplyDim(d[0], d[1], d[2])
		rig.Dims = append(rig.Dims, Vec3{x, y, z})
	}

	b.logger().Debug("rig built",
		zap.String("rig", rig.Name),
		zap.Strings("chain", chain),
		zap.Int("steps", len(spec.Steps)))
	return rig, nil
}

func (b *Builder) local(ctx context.Context, name string, spec RigSpec) (transform.Transform, error) {
	t := transform.Identity()
	if spec.Transform != nil {
		t = spec.Transform.Build()
	}

	for i, step := range spec.Steps {
		next, err := b.apply(ctx, t, step)
		if err != nil {
			return transform.Transform{}, fmt.Errorf("prefabs: rig %s: step %d (%s): %w", name, i, step.Op, err)
		}
		t = next
	}
	return t, nil
}

func (b *Builder) apply(ctx context.Context, t transform.Transform, step StepSpec) (transform.Transform, error) {
	switch strings.ToLower(strings.TrimSpace(step.Op)) {
	case "scale":
		return t.Scale(step.vec(1)), nil
	case "translate":
		return t.Translate(step.vec(0)), nil
	case "rotate2d", "rotate":
		return t.Rotate2D(step.angle()), nil
	case "script":
		return b.runScript(ctx, t, step.Script)
	}
	return transform.Transform{}, fmt.Errorf("%w %q", ErrUnknownOp, step.Op)
}

func (b *Builder) runScript(ctx context.Context, t transform.Transform, name string) (transform.Transform, error) {
	src, err := b.loadScript(name)
	if err != nil {
		return transform.Transform{}, err
	}

	opts := []script.Option{
		script.WithVar("input", t),
		script.WithLogger(b.logger()),
	}
	if b != nil && b.Timeout > 0 {
		opts = append(opts, script.WithTimeout(b.Timeout))
	}

	rt, err := script.Compile(name, src, opts...)
	if err != nil {
		return transform.Transform{}, err
	}
	res, err := rt.Run(ctx)
	if err != nil {
		return transform.Transform{}, err
	}
	return res.Transform(script.ResultVar)
}
