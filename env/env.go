// Package env implements the flat association-list environment: a
// cons-list of (symbol . value) bindings, looked up head to tail, with
// latest-wins shadowing and no mutation on bind.
package env

import "github.com/cellisp/cellisp/cell"

// New returns the empty environment.
func New() *cell.Cell { return cell.NIL }

// Lookup walks env from head to tail, returning the first value
// bound to sym (compared by identity, since symbols are interned) and
// true, or (NIL, false) if sym is unbound.
func Lookup(env, sym *cell.Cell) (*cell.Cell, bool) {
	for b := env; b.Tag() == cell.Pair; b = b.Cdr {
		entry := b.Car
		if entry.Tag() == cell.Pair && entry.Car == sym {
			return entry.Cdr, true
		}
	}
	return cell.NIL, false
}

// Bind prepends a new (sym . val) entry to env, shadowing without
// mutating any existing binding, and returns the extended
// environment.
func Bind(a *cell.Arena, env, sym, val *cell.Cell) *cell.Cell {
	entry := a.Cons(sym, val)
	return a.Cons(entry, env)
}

// BindAll extends env with one entry per (sym, val) pair, in order,
// so that the last pair shadows the first on lookup — used when
// applying a lambda's parameter list to an argument list.
func BindAll(a *cell.Arena, env *cell.Cell, syms, vals []*cell.Cell) *cell.Cell {
	for i := range syms {
		env = Bind(a, env, syms[i], vals[i])
	}
	return env
}

// Set mutates the nearest existing binding of sym in env in place,
// reusing the entry cell's Cdr so every alias of env observes the
// update, and reports true on success. It returns false if sym is
// unbound anywhere in env. Backs the `set!` special form.
func Set(env, sym, val *cell.Cell) bool {
	for b := env; b.Tag() == cell.Pair; b = b.Cdr {
		entry := b.Car
		if entry.Tag() == cell.Pair && entry.Car == sym {
			entry.Cdr = val
			return true
		}
	}
	return false
}
