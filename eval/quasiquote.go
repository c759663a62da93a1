package eval

import "github.com/cellisp/cellisp/cell"

// quasiquote walks a quasiquote template, substituting the result of
// evaluating any `(unquote expr)` subform and splicing in the result
// of any `(unquote-splice expr)` subform. Anything else is copied
// structurally: pairs recurse into both Car and Cdr, every other tag
// is returned as-is (self-evaluating).
func (in *Interp) quasiquote(tmpl, e *cell.Cell) *cell.Cell {
	if tmpl.Tag() != cell.Pair {
		return tmpl
	}

	if tmpl.Car == in.sym.unquote {
		if listLen(tmpl.Cdr) != 1 {
			in.report.Reportf("eval: unquote requires 1 argument")
			return cell.NIL
		}
		return in.Eval(tmpl.Cdr.Car, e)
	}

	if tmpl.Car == in.sym.unquoteSplice {
		in.report.Reportf("eval: unquote-splice not valid outside a list position")
		return cell.NIL
	}

	return in.quasiquoteList(tmpl, e)
}

// quasiquoteList builds the quasiquoted form of a list template one
// element at a time, splicing in any unquote-splice element's
// evaluated list value rather than consing it as a single item.
func (in *Interp) quasiquoteList(tmpl, e *cell.Cell) *cell.Cell {
	if tmpl.Tag() != cell.Pair {
		return in.quasiquote(tmpl, e)
	}

	head := tmpl.Car

	if head == in.sym.unquote && tmpl.Cdr.Tag() == cell.Pair {
		return in.Eval(tmpl.Cdr.Car, e)
	}

	if head.Tag() == cell.Pair && head.Car == in.sym.unquoteSplice {
		if listLen(head.Cdr) != 1 {
			in.report.Reportf("eval: unquote-splice requires 1 argument")
			return cell.NIL
		}
		spliced := in.Eval(head.Cdr.Car, e)
		rest := in.quasiquoteList(tmpl.Cdr, e)
		return in.appendList(spliced, rest)
	}

	car := in.quasiquote(head, e)
	cdr := in.quasiquoteList(tmpl.Cdr, e)
	return in.arena.Cons(car, cdr)
}

// appendList copies the elements of front (which must be a proper
// list; anything else is reported as an error) onto the head of back,
// leaving back itself untouched and possibly shared by multiple
// splices in the same template.
func (in *Interp) appendList(front, back *cell.Cell) *cell.Cell {
	if front.Tag() != cell.Pair {
		if front == cell.NIL {
			return back
		}
		in.report.Reportf("eval: unquote-splice: value is not a list")
		return back
	}
	return in.arena.Cons(front.Car, in.appendList(front.Cdr, back))
}
