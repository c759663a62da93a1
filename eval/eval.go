package eval

import (
	"github.com/cellisp/cellisp/cell"
	"github.com/cellisp/cellisp/env"
)

// Eval evaluates obj in env, outside of any tail position.
func (in *Interp) Eval(obj, e *cell.Cell) *cell.Cell {
	return in.evalTail(obj, e, nil, nil)
}

// evalTail is the evaluator proper. lastLambda and tailOut implement
// the tail-call trampoline: when a tail position's call target is
// exactly lastLambda, the call site writes the evaluated argument list
// to *tailOut and returns NIL instead of descending, and runLambda's
// loop rebinds and restarts.
//
// Every cell produced along the way is pushed to the arena's sink as
// it's allocated, which is what keeps it alive despite being held only
// by a Go-stack local until it's attached to a durable structure; the
// sink is deliberately left untruncated here; only runLambda's
// trampoline loop and the top-level read-eval step truncate it, at
// the points where whatever must outlive the truncation has already
// been promoted to a root in Interp.roots.
func (in *Interp) evalTail(obj, e, lastLambda *cell.Cell, tailOut **cell.Cell) *cell.Cell {
	ret := in.evalTailInner(obj, e, lastLambda, tailOut)
	in.result = ret
	return ret
}

func (in *Interp) evalTailInner(obj, e, lastLambda *cell.Cell, tailOut **cell.Cell) *cell.Cell {
	if obj == cell.NIL {
		in.report.Reportf("eval: cannot evaluate ()")
		return cell.NIL
	}

	if obj.Tag() != cell.Pair {
		if obj.Tag() == cell.Symbol {
			v, ok := env.Lookup(e, obj)
			if !ok {
				// A lambda's captured environment predates any global
				// defined after it (including its own name), so fall
				// back to the current global environment.
				v, ok = env.Lookup(in.global, obj)
			}
			if !ok {
				in.report.Reportf("eval: unbound symbol %s", obj.Text)
				return cell.NIL
			}
			return v
		}
		return obj
	}

	head := obj.Car
	args := obj.Cdr

	if head.Tag() == cell.Symbol {
		switch head {
		case in.sym.quote:
			return in.evalQuote(args)
		case in.sym.ifSym:
			return in.evalIf(args, e, lastLambda, tailOut)
		case in.sym.define:
			return in.evalDefine(args, e)
		case in.sym.lambdaSym:
			return in.evalLambda(args, e)
		case in.sym.begin:
			return in.evalBegin(args, e, lastLambda, tailOut)
		case in.sym.macroSym:
			return in.evalMacroForm(args)
		case in.sym.setBang:
			return in.evalSet(args, e)
		case in.sym.quasiquote:
			if listLen(args) != 1 {
				in.report.Reportf("eval: quasiquote requires 1 argument")
				return cell.NIL
			}
			return in.quasiquote(args.Car, e)
		}

		resolved, ok := env.Lookup(e, head)
		if !ok {
			resolved, ok = env.Lookup(in.global, head)
		}
		if !ok {
			in.report.Reportf("eval: unbound symbol %s", head.Text)
			return cell.NIL
		}
		return in.applyResolved(resolved, args, e, lastLambda, tailOut)
	}

	if head.Tag() == cell.Pair {
		resolved := in.Eval(head, e)
		return in.applyResolved(resolved, args, e, lastLambda, tailOut)
	}

	switch head.Tag() {
	case cell.Lambda, cell.Primop, cell.Macro:
		return in.applyResolved(head, args, e, lastLambda, tailOut)
	}

	in.report.Reportf("eval: cannot apply")
	return cell.NIL
}

// applyResolved dispatches an already-evaluated procedure value
// against an unevaluated argument-expression list, forwarding the
// tail-position state of the caller: the result of any application is
// returned directly from its call site, so it is itself a tail
// position.
func (in *Interp) applyResolved(proc, args, e, lastLambda *cell.Cell, tailOut **cell.Cell) *cell.Cell {
	switch proc.Tag() {
	case cell.Primop:
		evaluated := in.evalList(args, e)
		return proc.Prim(in, evaluated)
	case cell.Lambda:
		return in.applyLambda(proc, args, e, false, lastLambda, tailOut)
	case cell.Macro:
		whole := in.arena.Cons(proc, args)
		return in.applyMacro(proc, whole, e)
	default:
		in.report.Reportf("eval: cannot apply")
		return cell.NIL
	}
}

func (in *Interp) evalQuote(args *cell.Cell) *cell.Cell {
	if listLen(args) != 1 {
		in.report.Reportf("eval: quote requires 1 argument")
		return cell.NIL
	}
	return args.Car
}

func (in *Interp) evalIf(args, e, lastLambda *cell.Cell, tailOut **cell.Cell) *cell.Cell {
	if listLen(args) != 3 {
		in.report.Reportf("eval: if requires 3 arguments")
		return cell.NIL
	}
	cond := in.Eval(args.Car, e)
	thenExpr := args.Cdr.Car
	elseExpr := args.Cdr.Cdr.Car
	if cond != cell.FALSE {
		return in.evalTail(thenExpr, e, lastLambda, tailOut)
	}
	return in.evalTail(elseExpr, e, lastLambda, tailOut)
}

func (in *Interp) evalDefine(args, e *cell.Cell) *cell.Cell {
	if listLen(args) != 2 {
		in.report.Reportf("eval: define requires 2 arguments")
		return cell.NIL
	}
	name := args.Car
	if name.Tag() != cell.Symbol {
		in.report.Reportf("eval: define: name is not a symbol")
		return cell.NIL
	}
	val := in.Eval(args.Cdr.Car, e)
	in.Define(name, val)
	return val
}

// evalSet implements `(set! name expr)`: mutate the nearest existing
// binding of name in place, rather than shadowing it with a new one.
func (in *Interp) evalSet(args, e *cell.Cell) *cell.Cell {
	if listLen(args) != 2 {
		in.report.Reportf("eval: set! requires 2 arguments")
		return cell.NIL
	}
	name := args.Car
	if name.Tag() != cell.Symbol {
		in.report.Reportf("eval: set!: name is not a symbol")
		return cell.NIL
	}
	val := in.Eval(args.Cdr.Car, e)
	if !env.Set(e, name, val) {
		in.report.Reportf("eval: set!: unbound symbol %s", name.Text)
		return cell.NIL
	}
	return val
}

func (in *Interp) evalLambda(args, e *cell.Cell) *cell.Cell {
	if listLen(args) != 2 {
		in.report.Reportf("eval: lambda requires 2 arguments")
		return cell.NIL
	}
	params := args.Car
	if params.Tag() != cell.Symbol && params.Tag() != cell.Pair && params != cell.NIL {
		in.report.Reportf("eval: lambda: malformed parameter list")
		return cell.NIL
	}
	body := args.Cdr.Car
	return in.arena.NewLambda(params, body, e)
}

func (in *Interp) evalBegin(args, e, lastLambda *cell.Cell, tailOut **cell.Cell) *cell.Cell {
	if args == cell.NIL {
		return cell.NIL
	}
	ret := cell.NIL
	for args.Tag() == cell.Pair {
		if args.Cdr.Tag() != cell.Pair {
			return in.evalTail(args.Car, e, lastLambda, tailOut)
		}
		ret = in.Eval(args.Car, e)
		args = args.Cdr
	}
	return ret
}

func (in *Interp) evalMacroForm(args *cell.Cell) *cell.Cell {
	if listLen(args) != 2 {
		in.report.Reportf("eval: macro requires 2 arguments")
		return cell.NIL
	}
	spec := args.Car
	if listLen(spec) != 2 || spec.Car.Tag() != cell.Symbol || spec.Cdr.Car.Tag() != cell.Symbol {
		in.report.Reportf("eval: macro: malformed (name arg) spec")
		return cell.NIL
	}
	name := spec.Car
	param := spec.Cdr.Car
	body := args.Cdr.Car
	m := in.arena.NewMacro(param, body)
	in.Define(name, m)
	return m
}

// evalList evaluates each element of a NIL-terminated argument-
// expression list left to right, building a NIL-terminated list of
// results.
func (in *Interp) evalList(args, e *cell.Cell) *cell.Cell {
	if args.Tag() != cell.Pair {
		return cell.NIL
	}
	v := in.Eval(args.Car, e)
	rest := in.evalList(args.Cdr, e)
	return in.arena.Cons(v, rest)
}

// listLen counts the leading pairs of c; a dotted tail is not
// counted, and a non-list argument yields 0.
func listLen(c *cell.Cell) int {
	n := 0
	for c.Tag() == cell.Pair {
		n++
		c = c.Cdr
	}
	return n
}
