// Package prim implements the primitive operation catalogue:
// arithmetic, comparison, list operations, I/O, eq?/eqv?, apply, and
// eval. Only the primop contract (context, arg-list-cell) -> cell
// matters, so the catalogue is free to grow beyond this baseline.
package prim

import "github.com/cellisp/cellisp/cell"

// toSlice flattens a NIL-terminated proper argument list into a Go
// slice for easy indexed access. A malformed (dotted or too-short)
// list simply yields a shorter slice; callers check len() against
// the arity they expect and report through ctx on mismatch.
func toSlice(args *cell.Cell) []*cell.Cell {
	var out []*cell.Cell
	for args.Tag() == cell.Pair {
		out = append(out, args.Car)
		args = args.Cdr
	}
	return out
}

func fromSlice(a *cell.Arena, vals []*cell.Cell) *cell.Cell {
	result := cell.NIL
	for i := len(vals) - 1; i >= 0; i-- {
		result = a.Cons(vals[i], result)
	}
	return result
}

