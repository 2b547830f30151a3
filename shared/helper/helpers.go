package helper

import (
	"errors"
	"fmt"
	"reflect"
)

var ErrUnexpectedType = errors.New("unexpected type")

// Cast asserts v to T. A nil v is accepted when T itself can hold nil.
func Cast[T any](v any) (T, error) {
	var zero T
	if v == nil {
		if nilable(reflect.TypeFor[T]()) {
			return zero, nil
		}
		return zero, fmt.Errorf("%w: got nil, want %v", ErrUnexpectedType, reflect.TypeFor[T]())
	}
	val, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: got %T, want %v", ErrUnexpectedType, v, reflect.TypeFor[T]())
	}
	return val, nil
}

// MustCast is the panic-on-failure variant of Cast.
// Use when a mismatch can only be a programming error.
func MustCast[T any](v any) T {
	res, err := Cast[T](v)
	if err != nil {
		panic(err)
	}
	return res
}

func nilable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	default:
		return false
	}
}
