package prim

import "github.com/cellisp/cellisp/cell"

// applyPrim implements `(apply proc arg-list)`: proc is applied to the
// elements of arg-list, which must already be a proper list of
// fully-evaluated values — unlike a normal call form, apply never
// re-evaluates its second argument's elements.
func applyPrim(ctx cell.Interp, args *cell.Cell) *cell.Cell {
	vals := toSlice(args)
	if len(vals) != 2 {
		ctx.Reportf("apply: expected 2 arguments, got %d", len(vals))
		return cell.NIL
	}
	proc, argList := vals[0], vals[1]
	switch proc.Tag() {
	case cell.Primop, cell.Lambda:
		return ctx.Apply(proc, argList)
	default:
		ctx.Reportf("apply: first argument is not a procedure")
		return cell.NIL
	}
}

// evalPrim implements `(eval expr)`: expr is a fully-evaluated cell
// value representing a program, evaluated against the global
// environment — not the environment `eval` was itself called from,
// since a flat/lexical environment here has no notion of "the
// environment in which this primitive call occurs" to hand back.
func evalPrim(ctx cell.Interp, args *cell.Cell) *cell.Cell {
	vals := toSlice(args)
	if len(vals) != 1 {
		ctx.Reportf("eval: expected 1 argument, got %d", len(vals))
		return cell.NIL
	}
	return ctx.Eval(vals[0], ctx.Global())
}
