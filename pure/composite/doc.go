// Package composite wires several functions into one according to a tree.
//
// A tree is made of two kinds of nodes:
//
//	Arg(i)                 the i-th input argument, forwarded unchanged
//	Apply(fn, children...) fn called with the values of its children
//
// Composite evaluates the tree post-order for each call, so the same input
// argument may feed any number of leaves in any order:
//
//	square := composite.FuncI1O1(func(x int) int { return x * x })
//	doublePlusOne := composite.FuncI1O1(func(x int) int { return 2*x + 1 })
//	subtract := composite.FuncI2O1(func(x, y int) int { return x - y })
//
//	f := composite.Composite(
//		composite.Apply(square,
//			composite.Apply(doublePlusOne,
//				composite.Apply(subtract, composite.Arg(0), composite.Arg(1)))))
//	f(3, 5) // 9, nil
//
// Chain covers the common linear case of the same computation.
package composite
