package composite

import (
	"errors"
	"fmt"
)

var ErrArgIndex = errors.New("arg index out of range")

// Composite builds a function that evaluates root bottom-up against its arguments.
func Composite(root Node) func(args ...any) (any, error) {
	if root == nil {
		panic("composite: nil root")
	}
	return func(args ...any) (any, error) {
		return eval(root, args)
	}
}

// Chain composes fns right to left. The last function receives all arguments
// and every other function receives the result of the one after it.
func Chain(fns ...Func) func(args ...any) (any, error) {
	if len(fns) == 0 {
		panic("chain: no functions")
	}
	for i, fn := range fns {
		if fn == nil {
			panic(fmt.Sprintf("chain: nil function at %d", i))
		}
	}
	last := len(fns) - 1
	return func(args ...any) (any, error) {
		res, err := fns[last](args...)
		if err != nil {
			return nil, err
		}
		for i := last - 1; i >= 0; i-- {
			if res, err = fns[i](res); err != nil {
				return nil, err
			}
		}
		return res, nil
	}
}

func eval(n Node, args []any) (any, error) {
	switch n := n.(type) {
	case argNode:
		if n.index >= len(args) {
			return nil, fmt.Errorf("%w: %d, got %d args", ErrArgIndex, n.index, len(args))
		}
		return args[n.index], nil
	case applyNode:
		vals := make([]any, len(n.children))
		for i, child := range n.children {
			v, err := eval(child, args)
			if err != nil {
				return nil, err
			}
			vals[i] = v
		}
		return n.fn(vals...)
	default:
		panic(fmt.Sprintf("exhaustive match fallback, node type: %T", n))
	}
}
