package script

import (
	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/token"
	"github.com/milk9111/transform/transform"
)

// TypeName is what type_name() reports for a transform value.
const TypeName = "transform"

// Transform wraps a transform.Transform as a tengo object. Methods are
// reached with the selector syntax (t.scale(2, 2, 1)), `*` composes and `==`
// compares entries exactly.
type Transform struct {
	tengo.ObjectImpl
	Value transform.Transform
}

func NewTransform(t transform.Transform) *Transform {
	return &Transform{Value: t}
}

func (o *Transform) TypeName() string {
	return TypeName
}

func (o *Transform) String() string {
	return "transform" + o.Value.String()
}

func (o *Transform) Copy() tengo.Object {
	return &Transform{Value: o.Value.Copy()}
}

func (o *Transform) Equals(x tengo.Object) bool {
	other, ok := x.(*Transform)
	if !ok {
		return false
	}
	return o.Value.Equal(other.Value)
}

func (o *Transform) BinaryOp(op token.Token, rhs tengo.Object) (tengo.Object, error) {
	other, ok := rhs.(*Transform)
	if !ok || op != token.Mul {
		return nil, tengo.ErrInvalidOperator
	}
	return NewTransform(o.Value.Mul(other.Value)), nil
}

func (o *Transform) IndexGet(index tengo.Object) (tengo.Object, error) {
	key, ok := index.(*tengo.String)
	if !ok {
		return nil, tengo.ErrInvalidIndexType
	}
	fn := o.method(key.Value)
	if fn == nil {
		return tengo.UndefinedValue, nil
	}
	return &tengo.UserFunction{Name: key.Value, Value: fn}, nil
}

func (o *Transform) method(name string) tengo.CallableFunc {
	switch name {
	case "scale":
		return o.scale
	case "translate":
		return o.translate
	case "rotate2d":
		return o.rotate2d
	case "apply_point":
		return o.applyPoint
	case "apply_dim":
		return o.applyDim
	case "get":
		return o.get
	case "mul":
		return o.mul
	case "equals":
		return o.equals
	case "copy":
		return o.copy
	}
	return nil
}

func (o *Transform) scale(args ...tengo.Object) (tengo.Object, error) {
	x, y, z, err := vec3Args(args)
	if err != nil {
		return nil, err
	}
	return NewTransform(o.Value.Scale(x, y, z)), nil
}

func (o *Transform) translate(args ...tengo.Object) (tengo.Object, error) {
	x, y, z, err := vec3Args(args)
	if err != nil {
		return nil, err
	}
	return NewTransform(o.Value.Translate(x, y, z)), nil
}

func (o *Transform) rotate2d(args ...tengo.Object) (tengo.Object, error) {
	if len(args) != 1 {
		return nil, tengo.ErrWrongNumArguments
	}
	a, err := numberArg(args, 0, "angle")
	if err != nil {
		return nil, err
	}
	return NewTransform(o.Value.Rotate2D(a)), nil
}

func (o *Transform) applyPoint(args ...tengo.Object) (tengo.Object, error) {
	x, y, z, err := vec3Args(args)
	if err != nil {
		return nil, err
	}
	return floatArray(o.Value.ApplyPoint(x, y, z)), nil
}

func (o *Transform) applyDim(args ...tengo.Object) (tengo.Object, error) {
	x, y, z, err := vec3Args(args)
	if err != nil {
		return nil, err
	}
	return floatArray(o.Value.ApplyDim(x, y, z)), nil
}

func (o *Transform) get(args ...tengo.Object) (tengo.Object, error) {
	if len(args) != 0 {
		return nil, tengo.ErrWrongNumArguments
	}
	return gridToArray(o.Value.Components()), nil
}

func (o *Transform) mul(args ...tengo.Object) (tengo.Object, error) {
	if len(args) != 1 {
		return nil, tengo.ErrWrongNumArguments
	}
	other, err := transformArg(args, 0, "other")
	if err != nil {
		return nil, err
	}
	return NewTransform(o.Value.Mul(other.Value)), nil
}

func (o *Transform) equals(args ...tengo.Object) (tengo.Object, error) {
	if len(args) != 1 {
		return nil, tengo.ErrWrongNumArguments
	}
	other, err := transformArg(args, 0, "other")
	if err != nil {
		return nil, err
	}
	return boolObject(o.Value.Equal(other.Value)), nil
}

func (o *Transform) copy(args ...tengo.Object) (tengo.Object, error) {
	if len(args) != 0 {
		return nil, tengo.ErrWrongNumArguments
	}
	return o.Copy(), nil
}
