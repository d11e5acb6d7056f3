// Package card searches for arithmetic expressions over a fixed set of
// operand values that reach a target, the classic "24 game".
//
// A Card holds the operands, the target and the operator set. Solve composes
// three generators into one lazy sequence:
//
//	for each operator assignment (Cartesian product over the operator set)
//	  for each operand permutation (Heap's algorithm)
//	    for each tree shape (Shapes)
//	      build, evaluate once, keep if it matches the target
//
// Nothing is materialized beyond the worklist of the current (permutation,
// assignment) pair, and breaking out of the loop stops the search.
//
//	c := card.New([]float64{1, 3, 4, 6})
//	for sol := range c.Solve() {
//		fmt.Println(sol) // (6/(1-(3/4)))
//	}
package card
