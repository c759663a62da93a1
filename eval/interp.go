// Package eval implements the evaluator: special-form dispatch,
// primitive/lambda/macro application, the tail-call trampoline, and
// the quasiquote engine, cooperating with package cell's collector
// through an explicit root set.
package eval

import (
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/cellisp/cellisp/cell"
	"github.com/cellisp/cellisp/diag"
	"github.com/cellisp/cellisp/env"
)

// Interp is a single interpreter context: one arena, one global
// environment, one evaluation stack. It is not safe for concurrent
// use; contexts are never shared across goroutines.
type Interp struct {
	arena  *cell.Arena
	global *cell.Cell
	result *cell.Cell
	args   *cell.Cell
	proc   *cell.Cell

	report diag.Reporter
	stdout io.Writer

	// ID tags this context for diagnostics and correlated logging.
	ID uuid.UUID

	sym struct {
		quote, ifSym, define, lambdaSym, begin, macroSym *cell.Cell
		quasiquote, unquote, unquoteSplice, setBang       *cell.Cell
	}
}

// New constructs an interpreter over arena, with diagnostics sent to
// report (defaulting to diag.Stderr) and I/O primitives writing to
// stdout (defaulting to os.Stdout).
func New(arena *cell.Arena, report diag.Reporter, stdout io.Writer) *Interp {
	if report == nil {
		report = diag.Stderr
	}
	if stdout == nil {
		stdout = os.Stdout
	}
	in := &Interp{
		arena:  arena,
		global: cell.NIL,
		result: cell.NIL,
		args:   cell.NIL,
		report: report,
		stdout: stdout,
		ID:     uuid.New(),
	}
	in.sym.quote = arena.Intern("quote")
	in.sym.ifSym = arena.Intern("if")
	in.sym.define = arena.Intern("define")
	in.sym.lambdaSym = arena.Intern("lambda")
	in.sym.begin = arena.Intern("begin")
	in.sym.macroSym = arena.Intern("macro")
	in.sym.quasiquote = arena.Intern("quasiquote")
	in.sym.unquote = arena.Intern("unquote")
	in.sym.unquoteSplice = arena.Intern("unquote-splice")
	in.sym.setBang = arena.Intern("set!")

	arena.Roots = in.roots
	return in
}

// roots reports the cells the evaluator currently considers live,
// beyond the arena's own symbol table and sink: the global
// environment, the in-flight result register, and — while a
// trampoline loop is between iterations with its sink truncated — the
// lambda under active application and its pending argument list.
func (in *Interp) roots() []*cell.Cell {
	return []*cell.Cell{in.global, in.result, in.args, in.proc}
}

// Arena returns the interpreter's cell arena.
func (in *Interp) Arena() *cell.Arena { return in.arena }

// Global returns the global environment cell.
func (in *Interp) Global() *cell.Cell { return in.global }

// Stdout returns the destination for write/display/newline.
func (in *Interp) Stdout() io.Writer { return in.stdout }

// Reportf reports a non-fatal diagnostic.
func (in *Interp) Reportf(format string, args ...any) {
	in.report.Reportf(format, args...)
}

// Define binds sym to val in the global environment, exactly as the
// `define` special form does; exposed so the CLI can install
// top-level bindings (e.g. primitives) before evaluation begins.
func (in *Interp) Define(sym, val *cell.Cell) {
	in.global = env.Bind(in.arena, in.global, sym, val)
}

var _ cell.Interp = (*Interp)(nil)
