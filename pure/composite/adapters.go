package composite

import (
	"errors"
	"fmt"

	"github.com/on-the-ground/pureutil/shared/helper"
)

var (
	ErrArity   = errors.New("unexpected number of args")
	ErrArgType = errors.New("unexpected arg type")
)

func FuncI1O1[I1, O1 any](fn func(I1) O1) Func {
	return func(args ...any) (any, error) {
		if err := checkArity(args, 1); err != nil {
			return nil, err
		}
		i1, err := argAs[I1](args, 0)
		if err != nil {
			return nil, err
		}
		return fn(i1), nil
	}
}

func FuncI2O1[I1, I2, O1 any](fn func(I1, I2) O1) Func {
	return func(args ...any) (any, error) {
		if err := checkArity(args, 2); err != nil {
			return nil, err
		}
		i1, err := argAs[I1](args, 0)
		if err != nil {
			return nil, err
		}
		i2, err := argAs[I2](args, 1)
		if err != nil {
			return nil, err
		}
		return fn(i1, i2), nil
	}
}

func FuncI3O1[I1, I2, I3, O1 any](fn func(I1, I2, I3) O1) Func {
	return func(args ...any) (any, error) {
		if err := checkArity(args, 3); err != nil {
			return nil, err
		}
		i1, err := argAs[I1](args, 0)
		if err != nil {
			return nil, err
		}
		i2, err := argAs[I2](args, 1)
		if err != nil {
			return nil, err
		}
		i3, err := argAs[I3](args, 2)
		if err != nil {
			return nil, err
		}
		return fn(i1, i2, i3), nil
	}
}

func checkArity(args []any, want int) error {
	if len(args) != want {
		return fmt.Errorf("%w: got %d, want %d", ErrArity, len(args), want)
	}
	return nil
}

func argAs[T any](args []any, i int) (T, error) {
	v, err := helper.Cast[T](args[i])
	if err != nil {
		return v, fmt.Errorf("%w: arg %d: %w", ErrArgType, i, err)
	}
	return v, nil
}
