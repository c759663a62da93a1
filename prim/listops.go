package prim

import "github.com/cellisp/cellisp/cell"

// cons implements `(cons a b)`.
func cons(ctx cell.Interp, args *cell.Cell) *cell.Cell {
	vals := toSlice(args)
	if len(vals) != 2 {
		ctx.Reportf("cons: expected 2 arguments, got %d", len(vals))
		return cell.NIL
	}
	return ctx.Arena().Cons(vals[0], vals[1])
}

// car implements `(car pair)`.
func car(ctx cell.Interp, args *cell.Cell) *cell.Cell {
	vals := toSlice(args)
	if len(vals) != 1 {
		ctx.Reportf("car: expected 1 argument, got %d", len(vals))
		return cell.NIL
	}
	if vals[0].Tag() != cell.Pair {
		ctx.Reportf("car: argument is not a pair")
		return cell.NIL
	}
	return vals[0].Car
}

// cdr implements `(cdr pair)`.
func cdr(ctx cell.Interp, args *cell.Cell) *cell.Cell {
	vals := toSlice(args)
	if len(vals) != 1 {
		ctx.Reportf("cdr: expected 1 argument, got %d", len(vals))
		return cell.NIL
	}
	if vals[0].Tag() != cell.Pair {
		ctx.Reportf("cdr: argument is not a pair")
		return cell.NIL
	}
	return vals[0].Cdr
}

// length implements `(length list)`, reporting an error on an
// improper (dotted) list rather than silently stopping short.
func length(ctx cell.Interp, args *cell.Cell) *cell.Cell {
	vals := toSlice(args)
	if len(vals) != 1 {
		ctx.Reportf("length: expected 1 argument, got %d", len(vals))
		return cell.NIL
	}
	n := int64(0)
	c := vals[0]
	for c.Tag() == cell.Pair {
		n++
		c = c.Cdr
	}
	if c != cell.NIL {
		ctx.Reportf("length: argument is not a proper list")
		return cell.NIL
	}
	return ctx.Arena().NewInteger(n)
}
