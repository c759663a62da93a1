// Package diag implements the diagnostic channel used by the reader
// and evaluator to report non-fatal errors without unwinding.
package diag

import (
	"fmt"
	"io"
	"os"
)

// Reporter receives formatted diagnostic messages. Implementations
// must not panic or abort the process: user-visible runtime and
// reader errors are reported and execution continues.
type Reporter interface {
	Reportf(format string, args ...any)
}

// Writer reports diagnostics to an underlying io.Writer, one line per
// call.
type Writer struct {
	Out    io.Writer
	Prefix string
}

// Stderr is the default reporter, writing to os.Stderr.
var Stderr Reporter = &Writer{Out: os.Stderr, Prefix: "cellisp: "}

func (w *Writer) Reportf(format string, args ...any) {
	fmt.Fprintf(w.Out, "%s%s\n", w.Prefix, fmt.Sprintf(format, args...))
}

// Discard silently drops every diagnostic; useful in tests that
// intentionally exercise error paths without polluting test output.
var Discard Reporter = discard{}

type discard struct{}

func (discard) Reportf(string, ...any) {}
