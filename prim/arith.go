package prim

import "github.com/cellisp/cellisp/cell"

// add implements `(+ a b ...)`, left-folding over integer arguments;
// zero arguments yields the additive identity.
func add(ctx cell.Interp, args *cell.Cell) *cell.Cell {
	vals, ok := intArgs(ctx, "+", args, -1)
	if !ok {
		return cell.NIL
	}
	var sum int64
	for _, v := range vals {
		sum += v
	}
	return ctx.Arena().NewInteger(sum)
}

// sub implements `(- a b ...)`: unary negation with one argument,
// left-to-right subtraction with more than one.
func sub(ctx cell.Interp, args *cell.Cell) *cell.Cell {
	vals, ok := intArgs(ctx, "-", args, -1)
	if !ok {
		return cell.NIL
	}
	if len(vals) == 0 {
		ctx.Reportf("-: requires at least 1 argument")
		return cell.NIL
	}
	if len(vals) == 1 {
		return ctx.Arena().NewInteger(-vals[0])
	}
	diff := vals[0]
	for _, v := range vals[1:] {
		diff -= v
	}
	return ctx.Arena().NewInteger(diff)
}

// mul implements `(* a b ...)`, left-folding with multiplicative
// identity 1 for zero arguments.
func mul(ctx cell.Interp, args *cell.Cell) *cell.Cell {
	vals, ok := intArgs(ctx, "*", args, -1)
	if !ok {
		return cell.NIL
	}
	product := int64(1)
	for _, v := range vals {
		product *= v
	}
	return ctx.Arena().NewInteger(product)
}

// div implements `(/ a b ...)`: integer division, left-to-right,
// reporting (rather than panicking on) division by zero.
func div(ctx cell.Interp, args *cell.Cell) *cell.Cell {
	vals, ok := intArgs(ctx, "/", args, -1)
	if !ok {
		return cell.NIL
	}
	if len(vals) == 0 {
		ctx.Reportf("/: requires at least 1 argument")
		return cell.NIL
	}
	if len(vals) == 1 {
		if vals[0] == 0 {
			ctx.Reportf("/: division by zero")
			return cell.NIL
		}
		return ctx.Arena().NewInteger(1 / vals[0])
	}
	quot := vals[0]
	for _, v := range vals[1:] {
		if v == 0 {
			ctx.Reportf("/: division by zero")
			return cell.NIL
		}
		quot /= v
	}
	return ctx.Arena().NewInteger(quot)
}

// modulo implements `(modulo a b)` using Go's native truncated-division
// remainder.
func modulo(ctx cell.Interp, args *cell.Cell) *cell.Cell {
	vals, ok := intArgs(ctx, "modulo", args, 2)
	if !ok {
		return cell.NIL
	}
	if vals[1] == 0 {
		ctx.Reportf("modulo: division by zero")
		return cell.NIL
	}
	return ctx.Arena().NewInteger(vals[0] % vals[1])
}

// intArgs evaluates args to a slice of int64, reporting a type error
// through ctx and returning ok=false on any non-integer argument or
// arity mismatch (want < 0 means "any number of arguments").
func intArgs(ctx cell.Interp, name string, args *cell.Cell, want int) ([]int64, bool) {
	cells := toSlice(args)
	if want >= 0 && len(cells) != want {
		ctx.Reportf("%s: expected %d arguments, got %d", name, want, len(cells))
		return nil, false
	}
	out := make([]int64, len(cells))
	for i, c := range cells {
		if c.Tag() != cell.Integer {
			ctx.Reportf("%s: argument %d is not an integer", name, i+1)
			return nil, false
		}
		out[i] = c.Int
	}
	return out, true
}
