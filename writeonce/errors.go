package writeonce

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrKeyNotFound = errors.New("key not found")
	ErrConflict    = errors.New("write-once conflict")
)

// ConflictError reports an attempt to overwrite a key with a different value.
// It is a programming error: one key computed to two values.
type ConflictError struct {
	Key any
	New any
	Old any
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf(
		"Trying to set key=%s to '%s' but key=%s is already set to '%s'.",
		render(e.Key), render(e.New), render(e.Key), render(e.Old),
	)
}

func (e *ConflictError) Unwrap() error { return ErrConflict }

// render prints nil of any kind as None so existing tooling matching on the
// message keeps working. Pointers without a String method print their target.
func render(v any) string {
	if v == nil {
		return "None"
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if rv.IsNil() {
			return "None"
		}
	}
	switch v.(type) {
	case fmt.Stringer, error:
		return fmt.Sprintf("%v", v)
	}
	if rv.Kind() == reflect.Pointer {
		return render(rv.Elem().Interface())
	}
	return fmt.Sprintf("%v", v)
}
