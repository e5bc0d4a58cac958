package script

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/d5/tengo/v2"
	"github.com/milk9111/transform/transform"
	"go.uber.org/zap"
)

// ResultVar is the global a script assigns its output transform to.
const ResultVar = "result"

// Runtime is a compiled script. Each Run works on a clone of the compiled
// program, so one Runtime may be run from several goroutines.
type Runtime struct {
	name     string
	compiled *tengo.Compiled
	log      *zap.Logger
	timeout  time.Duration
	vars     map[string]any
}

type Option func(*Runtime)

func WithLogger(l *zap.Logger) Option {
	return func(r *Runtime) {
		if l != nil {
			r.log = l
		}
	}
}

// WithTimeout bounds every Run. Zero means no limit beyond the caller's ctx.
func WithTimeout(d time.Duration) Option {
	return func(r *Runtime) {
		r.timeout = d
	}
}

// WithVar defines a global before compilation. Transform values are wrapped
// so scripts can call methods on them.
func WithVar(name string, value any) Option {
	return func(r *Runtime) {
		if r.vars == nil {
			r.vars = map[string]any{}
		}
		if t, ok := value.(transform.Transform); ok {
			value = NewTransform(t)
		}
		r.vars[name] = value
	}
}

// Compile prepares src for running. Scripts see the tengo stdlib, the
// transform module and a `host` map with a log(...) function.
func Compile(name string, src []byte, opts ...Option) (*Runtime, error) {
	rt := &Runtime{name: name, log: zap.NewNop()}
	for _, opt := range opts {
		opt(rt)
	}

	s := tengo.NewScript(src)
	s.SetImports(Modules())
	if err := s.Add("host", hostObject(rt)); err != nil {
		return nil, fmt.Errorf("script: %s: add host: %w", name, err)
	}
	for k, v := range rt.vars {
		if err := s.Add(k, v); err != nil {
			return nil, fmt.Errorf("script: %s: add %s: %w", name, k, err)
		}
	}

	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile %s: %w", name, err)
	}
	rt.compiled = compiled
	rt.log.Debug("script compiled", zap.String("script", name))
	return rt, nil
}

func (r *Runtime) Name() string {
	return r.name
}

// Run executes the script once and returns its globals.
func (r *Runtime) Run(ctx context.Context) (*Result, error) {
	if r == nil || r.compiled == nil {
		return nil, fmt.Errorf("script: nil runtime")
	}
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	c := r.compiled.Clone()
	start := time.Now()
	if err := c.RunContext(ctx); err != nil {
		r.log.Warn("script failed", zap.String("script", r.name), zap.Error(err))
		return nil, fmt.Errorf("script: run %s: %w", r.name, err)
	}
	r.log.Debug("script ran",
		zap.String("script", r.name),
		zap.Duration("elapsed", time.Since(start)))
	return &Result{compiled: c}, nil
}

// Result holds the globals of one finished run.
type Result struct {
	compiled *tengo.Compiled
}

func (res *Result) Defined(name string) bool {
	return res.compiled.IsDefined(name)
}

// Get returns the Go value of a global, or nil when it is not defined.
func (res *Result) Get(name string) any {
	if !res.compiled.IsDefined(name) {
		return nil
	}
	return res.compiled.Get(name).Value()
}

// Transform returns the transform stored in a global.
func (res *Result) Transform(name string) (transform.Transform, error) {
	if !res.compiled.IsDefined(name) {
		return transform.Transform{}, fmt.Errorf("%w: %q is not defined", ErrNotTransform, name)
	}
	return FromObject(res.compiled.Get(name).Object())
}

func hostObject(rt *Runtime) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["log"] = &tengo.UserFunction{Name: "log", Value: func(args ...tengo.Object) (tengo.Object, error) {
		parts := make([]string, 0, len(args))
		for _, a := range args {
			parts = append(parts, objectAsString(a))
		}
		rt.log.Info(strings.Join(parts, " "), zap.String("script", rt.name))
		return tengo.UndefinedValue, nil
	}}

	values["name"] = &tengo.String{Value: rt.name}

	return &tengo.ImmutableMap{Value: values}
}

func objectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	default:
		return strings.Trim(v.String(), "\"")
	}
}
