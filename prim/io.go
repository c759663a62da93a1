package prim

import (
	"fmt"

	"github.com/cellisp/cellisp/cell"
	"github.com/cellisp/cellisp/printer"
)

// write implements `(write obj)`: prints obj in read-back form
// (strings quoted) to ctx's stdout and returns obj.
func write(ctx cell.Interp, args *cell.Cell) *cell.Cell {
	vals := toSlice(args)
	if len(vals) != 1 {
		ctx.Reportf("write: expected 1 argument, got %d", len(vals))
		return cell.NIL
	}
	fmt.Fprint(ctx.Stdout(), printer.Write(vals[0]))
	return vals[0]
}

// display implements `(display obj)`: prints obj with top-level
// strings unquoted, and returns obj.
func display(ctx cell.Interp, args *cell.Cell) *cell.Cell {
	vals := toSlice(args)
	if len(vals) != 1 {
		ctx.Reportf("display: expected 1 argument, got %d", len(vals))
		return cell.NIL
	}
	fmt.Fprint(ctx.Stdout(), printer.Display(vals[0]))
	return vals[0]
}

// newline implements `(newline)`.
func newline(ctx cell.Interp, args *cell.Cell) *cell.Cell {
	if len(toSlice(args)) != 0 {
		ctx.Reportf("newline: expected 0 arguments")
		return cell.NIL
	}
	fmt.Fprintln(ctx.Stdout())
	return cell.NIL
}

// flusher is satisfied by any stdout destination that buffers output
// (e.g. *bufio.Writer, wired by cmd/cellisp for an interactive REPL).
type flusher interface {
	Flush() error
}

// flushOutput implements `(flush-output)`: flushes ctx's stdout if it
// is buffered, a no-op otherwise.
func flushOutput(ctx cell.Interp, args *cell.Cell) *cell.Cell {
	if f, ok := ctx.Stdout().(flusher); ok {
		if err := f.Flush(); err != nil {
			ctx.Reportf("flush-output: %v", err)
		}
	}
	return cell.NIL
}
