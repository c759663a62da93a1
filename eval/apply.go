package eval

import (
	"github.com/cellisp/cellisp/cell"
	"github.com/cellisp/cellisp/env"
)

// Apply evaluates proc against an already-evaluated argument list —
// the contract the `apply` and `eval` primitives need, since both take
// fully-evaluated cell values rather than expressions — as opposed to
// the normal call path in eval.go, which evaluates argument
// expressions itself.
func (in *Interp) Apply(proc, args *cell.Cell) *cell.Cell {
	switch proc.Tag() {
	case cell.Primop:
		return proc.Prim(in, args)
	case cell.Lambda:
		return in.applyLambdaValues(proc, args)
	default:
		in.report.Reportf("apply: not a procedure")
		return cell.NIL
	}
}

// applyLambda binds args (argument *expressions*, evaluated here
// against callerEnv) against proc's parameter list and evaluates its
// body. When proc is exactly lastLambda — the same lambda cell the
// immediately enclosing application is already running — and this
// call is itself in tail position (tailOut != nil), the evaluated
// argument list is written to *tailOut and cell.NIL is returned
// instead of recursing: applyLambda's own trampoline loop (see below,
// entered the first time any lambda is applied from a non-tail
// context) observes this and rebinds in place, so a self-tail-call
// never grows the Go call stack.
func (in *Interp) applyLambda(proc, args, callerEnv *cell.Cell, argsEvaluated bool, lastLambda *cell.Cell, tailOut **cell.Cell) *cell.Cell {
	var argList *cell.Cell
	if argsEvaluated {
		argList = args
	} else {
		argList = in.evalList(args, callerEnv)
	}

	if proc == lastLambda && tailOut != nil {
		*tailOut = argList
		return cell.NIL
	}

	return in.runLambda(proc, argList)
}

// applyLambdaValues is the Apply-path entry: args are already fully
// evaluated, and there is no enclosing tail-call context to trampoline
// into (apply/eval are themselves primitive calls, never in Scheme
// tail position relative to their caller's caller).
func (in *Interp) applyLambdaValues(proc, args *cell.Cell) *cell.Cell {
	return in.runLambda(proc, args)
}

// runLambda is the trampoline: it binds params to args under proc's
// captured environment and evaluates the body in tail position
// against *this same* proc. As long as the body's tail position holds
// a self-call to proc, evalTail's tail-call
// branch (via applyLambda above) reports the new argument list through
// tailOut instead of recursing, and the loop rebinds and restarts —
// self-calls only; mutual recursion between two lambdas still grows
// the Go stack.
func (in *Interp) runLambda(proc, args *cell.Cell) *cell.Cell {
	savedProc, savedArgs := in.proc, in.args
	defer func() { in.proc, in.args = savedProc, savedArgs }()

	for {
		in.proc, in.args = proc, args
		mark := in.arena.SinkMark()

		var bodyEnv *cell.Cell
		if proc.Params.Tag() == cell.Symbol {
			// Varargs form: a lambda whose parameter list is a bare
			// symbol (not a list) binds that symbol to the whole
			// argument list, already evaluated.
			bodyEnv = env.Bind(in.arena, proc.Env, proc.Params, args)
		} else {
			names := toParamNames(proc.Params)
			vals := argsToSlice(args)
			if len(names) != len(vals) {
				in.report.Reportf("apply: arity mismatch: expected %d arguments, got %d", len(names), len(vals))
				return cell.NIL
			}
			bodyEnv = env.BindAll(in.arena, proc.Env, names, vals)
		}

		var tailArgs *cell.Cell
		result := in.evalBodyTail(proc.Body, bodyEnv, proc, &tailArgs)

		if tailArgs == nil {
			in.result = result
			in.arena.SinkTruncate(mark)
			return result
		}

		// tailArgs was just built fresh from the current iteration's
		// sink-protected allocations; park it on in.args (a standing
		// root) before truncating, so the truncation below can't sweep
		// it out from under the next iteration — this is exactly the
		// "trampoline resets its sink mark between iterations" case
		// Arena.SinkMark's doc comment describes.
		in.args = tailArgs
		in.arena.SinkTruncate(mark)
		args = in.args
	}
}

// evalBodyTail evaluates a lambda body (a single expression) in tail
// position against lastLambda/tailOut.
func (in *Interp) evalBodyTail(body, e, lastLambda *cell.Cell, tailOut **cell.Cell) *cell.Cell {
	if body == cell.NIL {
		return cell.NIL
	}
	return in.evalTail(body, e, lastLambda, tailOut)
}

// applyMacro expands proc against whole — the unevaluated call form,
// with its head position holding the macro cell itself rather than the
// name it was called by — by binding proc's single parameter to that
// literal argument cell, evaluating the macro body to produce a
// new expression, then evaluating *that* expression, both steps under
// the same environment extension. Macro cells carry no captured Env
// field (unlike lambdas): expansion always extends the global
// environment, the same choice evalMacroForm makes for where a macro's
// own name is bound.
func (in *Interp) applyMacro(proc, whole, callerEnv *cell.Cell) *cell.Cell {
	expandEnv := env.Bind(in.arena, in.global, singleParam(proc), whole)
	expanded := in.Eval(proc.Body, expandEnv)
	return in.Eval(expanded, expandEnv)
}

func singleParam(proc *cell.Cell) *cell.Cell {
	return proc.Params
}

// toParamNames flattens a lambda parameter list into a slice of
// symbol cells. Only a proper list of symbols is supported (no
// rest-parameter/dotted-tail convention); a dotted tail is dropped,
// so the arity check above compares the argument count against the
// proper part of the list only.
func toParamNames(params *cell.Cell) []*cell.Cell {
	var out []*cell.Cell
	for params.Tag() == cell.Pair {
		out = append(out, params.Car)
		params = params.Cdr
	}
	return out
}

func argsToSlice(args *cell.Cell) []*cell.Cell {
	var out []*cell.Cell
	for args.Tag() == cell.Pair {
		out = append(out, args.Car)
		args = args.Cdr
	}
	return out
}
