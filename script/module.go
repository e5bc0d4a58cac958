package script

import (
	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/transform/transform"
)

// ModuleName is the name scripts import: transform := import("transform").
const ModuleName = "transform"

var moduleAttrs = map[string]tengo.Object{
	"new":      &tengo.UserFunction{Name: "new", Value: newFunc},
	"identity": &tengo.UserFunction{Name: "identity", Value: identityFunc},
	"from":     &tengo.UserFunction{Name: "from", Value: fromFunc},
}

// Modules returns the tengo stdlib plus the transform module.
func Modules() *tengo.ModuleMap {
	m := stdlib.GetModuleMap(stdlib.AllModuleNames()...)
	m.AddBuiltinModule(ModuleName, moduleAttrs)
	return m
}

// new() is the identity, new(t) copies t.
func newFunc(args ...tengo.Object) (tengo.Object, error) {
	if len(args) > 1 {
		return nil, tengo.ErrWrongNumArguments
	}
	if len(args) == 1 {
		if t, ok := args[0].(*Transform); ok {
			return t.Copy(), nil
		}
	}
	return NewTransform(transform.Identity()), nil
}

func identityFunc(args ...tengo.Object) (tengo.Object, error) {
	if len(args) != 0 {
		return nil, tengo.ErrWrongNumArguments
	}
	return NewTransform(transform.Identity()), nil
}

func fromFunc(args ...tengo.Object) (tengo.Object, error) {
	if len(args) != 1 {
		return nil, tengo.ErrWrongNumArguments
	}
	if _, ok := arrayElems(args[0]); !ok {
		return nil, tengo.ErrInvalidArgumentType{
			Name:     "grid",
			Expected: "array",
			Found:    args[0].TypeName(),
		}
	}
	c, err := arrayToGrid(args[0])
	if err != nil {
		return nil, err
	}
	return NewTransform(transform.FromComponents(c)), nil
}
