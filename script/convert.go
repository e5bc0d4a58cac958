package script

import (
	"errors"
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/milk9111/transform/transform"
)

var (
	ErrNotTransform = errors.New("script: value is not a transform")
	ErrBadGrid      = errors.New("script: grid must be 4 arrays of 4 numbers")
)

// FromObject unwraps a tengo value produced by the transform module.
func FromObject(obj tengo.Object) (transform.Transform, error) {
	t, ok := obj.(*Transform)
	if !ok || t == nil {
		found := "nil"
		if obj != nil {
			found = obj.TypeName()
		}
		return transform.Transform{}, fmt.Errorf("%w: got %s", ErrNotTransform, found)
	}
	return t.Value, nil
}

func transformArg(args []tengo.Object, i int, name string) (*Transform, error) {
	t, ok := args[i].(*Transform)
	if !ok {
		return nil, tengo.ErrInvalidArgumentType{
			Name:     name,
			Expected: TypeName,
			Found:    args[i].TypeName(),
		}
	}
	return t, nil
}

func numberArg(args []tengo.Object, i int, name string) (float64, error) {
	v, ok := tengo.ToFloat64(args[i])
	if !ok {
		return 0, tengo.ErrInvalidArgumentType{
			Name:     name,
			Expected: "float(compatible)",
			Found:    args[i].TypeName(),
		}
	}
	return v, nil
}

func vec3Args(args []tengo.Object) (x, y, z float64, err error) {
	if len(args) != 3 {
		return 0, 0, 0, tengo.ErrWrongNumArguments
	}
	if x, err = numberArg(args, 0, "x"); err != nil {
		return
	}
	if y, err = numberArg(args, 1, "y"); err != nil {
		return
	}
	z, err = numberArg(args, 2, "z")
	return
}

func floatArray(x, y, z float64) *tengo.Array {
	return &tengo.Array{Value: []tengo.Object{
		&tengo.Float{Value: x},
		&tengo.Float{Value: y},
		&tengo.Float{Value: z},
	}}
}

func gridToArray(c [4][4]float64) *tengo.Array {
	rows := make([]tengo.Object, 0, 4)
	for _, row := range c {
		cols := make([]tengo.Object, 0, 4)
		for _, v := range row {
			cols = append(cols, &tengo.Float{Value: v})
		}
		rows = append(rows, &tengo.Array{Value: cols})
	}
	return &tengo.Array{Value: rows}
}

func arrayElems(obj tengo.Object) ([]tengo.Object, bool) {
	switch v := obj.(type) {
	case *tengo.Array:
		return v.Value, true
	case *tengo.ImmutableArray:
		return v.Value, true
	}
	return nil, false
}

func arrayToGrid(obj tengo.Object) ([4][4]float64, error) {
	var c [4][4]float64
	rows, ok := arrayElems(obj)
	if !ok || len(rows) != 4 {
		return c, ErrBadGrid
	}
	for i, r := range rows {
		cols, ok := arrayElems(r)
		if !ok || len(cols) != 4 {
			return c, fmt.Errorf("%w: row %d", ErrBadGrid, i)
		}
		for j, v := range cols {
			f, ok := tengo.ToFloat64(v)
			if !ok {
				return c, fmt.Errorf("%w: [%d][%d] is %s", ErrBadGrid, i, j, v.TypeName())
			}
			c[i][j] = f
		}
	}
	return c, nil
}

func boolObject(b bool) tengo.Object {
	if b {
		return tengo.TrueValue
	}
	return tengo.FalseValue
}
