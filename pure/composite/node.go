package composite

import "fmt"

// Func is a function node body. It receives the already evaluated child values.
type Func func(args ...any) (any, error)

// Node is a sealed interface for composite trees.
// Only Arg and Apply can implement it.
type Node interface {
	node()
}

type argNode struct {
	index int
}

func (argNode) node() {}

type applyNode struct {
	fn       Func
	children []Node
}

func (applyNode) node() {}

// Arg refers to the i-th positional input argument.
func Arg(i int) Node {
	if i < 0 {
		panic(fmt.Sprintf("arg index should not be negative: %d", i))
	}
	return argNode{index: i}
}

// Apply calls fn with the results of children, in order.
func Apply(fn Func, children ...Node) Node {
	if fn == nil {
		panic("apply: nil function")
	}
	for i, child := range children {
		if child == nil {
			panic(fmt.Sprintf("apply: nil child at %d", i))
		}
	}
	return applyNode{fn: fn, children: children}
}
