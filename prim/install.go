package prim

import "github.com/cellisp/cellisp/cell"

// Definer is the subset of the interpreter context Install needs to
// register a primitive under a global name: the arena (to intern the
// name and allocate the primop) and a global bind. eval.Interp
// satisfies it.
type Definer interface {
	Arena() *cell.Arena
	Define(sym, val *cell.Cell)
}

// Install binds the entire primitive catalogue into ctx's global
// environment, under their Scheme names.
func Install(ctx Definer) {
	bind := func(name string, fn cell.Func) {
		ctx.Define(ctx.Arena().Intern(name), ctx.Arena().NewPrimop(name, fn))
	}

	ctx.Define(ctx.Arena().Intern("#t"), cell.TRUE)
	ctx.Define(ctx.Arena().Intern("#f"), cell.FALSE)

	bind("+", add)
	bind("-", sub)
	bind("*", mul)
	bind("/", div)
	bind("modulo", modulo)

	bind("=", numEq)
	bind("<", lt)
	bind(">", gt)
	bind("<=", le)
	bind(">=", ge)

	bind("cons", cons)
	bind("car", car)
	bind("cdr", cdr)
	bind("length", length)

	bind("write", write)
	bind("display", display)
	bind("newline", newline)
	bind("flush-output", flushOutput)

	bind("eq?", eq)
	bind("eqv?", eqv)

	bind("apply", applyPrim)
	bind("eval", evalPrim)
}
