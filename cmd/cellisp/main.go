// Command cellisp runs the tagged-cell Scheme interpreter: with no
// positional argument it is a REPL over stdin, printing each result;
// given a filename it reads and evaluates that file's forms in order,
// printing nothing unless a form itself calls write/display.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/cellisp/cellisp/cell"
	"github.com/cellisp/cellisp/config"
	"github.com/cellisp/cellisp/diag"
	"github.com/cellisp/cellisp/eval"
	"github.com/cellisp/cellisp/prim"
	"github.com/cellisp/cellisp/printer"
	"github.com/cellisp/cellisp/read"
	"github.com/cellisp/cellisp/source"
	"github.com/cellisp/cellisp/token"
)

var (
	dashc string
	dashv bool
)

func init() {
	flag.StringVar(&dashc, "c", "", "path to a YAML config file overriding MAX_CELLS/MAX_SINK_SIZE")
	flag.BoolVar(&dashv, "v", false, "print the interpreter's session id on exit")
}

var logger = log.New(os.Stderr, "cellisp: ", 0)

func exitf(format string, args ...any) {
	logger.Printf(format, args...)
	os.Exit(1)
}

func main() {
	flag.Parse()

	cfg, err := config.Load(dashc)
	if err != nil {
		exitf("%v", err)
	}

	args := flag.Args()
	if len(args) > 1 {
		exitf("usage: cellisp [-c config.yaml] [file]")
	}

	report := diag.Stderr
	stdout := bufio.NewWriter(os.Stdout)
	defer stdout.Flush()

	arena := cell.New(cfg.MaxCells, cfg.MaxSinkSize, report, func(format string, a ...any) {
		logger.Printf(format, a...)
		os.Exit(1)
	})
	interp := eval.New(arena, report, stdout)
	prim.Install(interp)

	if len(args) == 1 {
		runFile(interp, args[0])
	} else {
		runREPL(interp)
	}

	if dashv {
		fmt.Fprintf(os.Stderr, "cellisp: session %s\n", interp.ID)
	}
}

// runFile reads and evaluates every top-level form in path, in order,
// against the global environment. Output only happens if a form calls
// write/display/newline itself — file mode never echoes results the
// way the REPL does.
func runFile(interp *eval.Interp, path string) {
	src, err := source.NewFile(path)
	if err != nil {
		exitf("%v", err)
	}
	defer src.Close()

	tok := token.New(src)
	rd := read.New(tok, interp.Arena(), diag.Stderr)

	for {
		mark := interp.Arena().SinkMark()
		obj, ok := rd.ReadObject()
		if !ok {
			break
		}
		interp.Eval(obj, interp.Global())
		interp.Arena().SinkTruncate(mark)
	}
}

// runREPL reads forms from stdin one at a time, evaluating and
// printing each result in "write" form.
func runREPL(interp *eval.Interp) {
	src := source.NewStdin()
	defer src.Close()

	tok := token.New(src)
	rd := read.New(tok, interp.Arena(), diag.Stderr)

	for {
		mark := interp.Arena().SinkMark()
		obj, ok := rd.ReadObject()
		if !ok {
			break
		}
		result := interp.Eval(obj, interp.Global())
		fmt.Fprintln(interp.Stdout(), printer.Write(result))
		if f, ok := interp.Stdout().(interface{ Flush() error }); ok {
			f.Flush()
		}
		interp.Arena().SinkTruncate(mark)
	}
}
