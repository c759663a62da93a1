package eval

import (
	"testing"

	"github.com/cellisp/cellisp/cell"
	"github.com/cellisp/cellisp/diag"
	"github.com/cellisp/cellisp/prim"
	"github.com/cellisp/cellisp/printer"
	"github.com/cellisp/cellisp/read"
	"github.com/cellisp/cellisp/source"
	"github.com/cellisp/cellisp/token"
)

// newTestInterp builds a ready-to-use interpreter with the primitive
// catalogue installed, diagnostics discarded unless a test wants them,
// and a generous arena — these tests exercise evaluator semantics, not
// resource exhaustion.
func newTestInterp(t *testing.T) *Interp {
	t.Helper()
	arena := cell.New(1 << 16, 1<<12, diag.Discard, func(format string, args ...any) {
		t.Fatalf("fatal: "+format, args...)
	})
	in := New(arena, diag.Discard, nil)
	prim.Install(in)
	return in
}

func readOne(t *testing.T, in *Interp, src string) *cell.Cell {
	t.Helper()
	tok := token.New(source.NewString(src))
	rd := read.New(tok, in.Arena(), diag.Discard)
	obj, ok := rd.ReadObject()
	if !ok {
		t.Fatalf("readOne(%q): unexpected end of input", src)
	}
	return obj
}

func runString(t *testing.T, in *Interp, src string) string {
	t.Helper()
	obj := readOne(t, in, src)
	result := in.Eval(obj, in.Global())
	return printer.Write(result)
}

func TestArithmeticAndComparison(t *testing.T) {
	in := newTestInterp(t)
	cases := []struct{ src, want string }{
		{"(+ 1 2 3)", "6"},
		{"(- 10 3 2)", "5"},
		{"(* 2 3 4)", "24"},
		{"(/ 20 2 2)", "5"},
		{"(modulo 7 3)", "1"},
		{"(< 1 2 3)", "#t"},
		{"(< 1 3 2)", "#f"},
		{"(= 2 2 2)", "#t"},
	}
	for _, tc := range cases {
		if got := runString(t, in, tc.src); got != tc.want {
			t.Errorf("eval(%q) = %q, want %q", tc.src, got, tc.want)
		}
	}
}

func TestIfBranches(t *testing.T) {
	in := newTestInterp(t)
	if got := runString(t, in, `(if #t 1 2)`); got != "1" {
		t.Errorf("(if #t 1 2) = %q, want 1", got)
	}
	if got := runString(t, in, `(if #f 1 2)`); got != "2" {
		t.Errorf("(if #f 1 2) = %q, want 2", got)
	}
}

func TestDefineAndLookup(t *testing.T) {
	in := newTestInterp(t)
	runString(t, in, `(define x 10)`)
	if got := runString(t, in, `x`); got != "10" {
		t.Errorf("x = %q, want 10", got)
	}
}

func TestLambdaClosureCapturesDefinitionEnv(t *testing.T) {
	in := newTestInterp(t)
	runString(t, in, `(define make-adder (lambda (n) (lambda (x) (+ x n))))`)
	runString(t, in, `(define add5 (make-adder 5))`)
	if got := runString(t, in, `(add5 10)`); got != "15" {
		t.Errorf("(add5 10) = %q, want 15 (lambda must capture its definition environment, not its call-site environment)", got)
	}
}

func TestFactorialRecursion(t *testing.T) {
	in := newTestInterp(t)
	runString(t, in, `(define fact (lambda (n) (if (= n 0) 1 (* n (fact (- n 1))))))`)
	if got := runString(t, in, `(fact 10)`); got != "3628800" {
		t.Errorf("(fact 10) = %q, want 3628800", got)
	}
}

func TestTailCallDoesNotGrowGoStack(t *testing.T) {
	in := newTestInterp(t)
	runString(t, in, `(define loop (lambda (n acc) (if (= n 0) acc (loop (- n 1) (+ acc 1)))))`)
	if got := runString(t, in, `(loop 100000 0)`); got != "100000" {
		t.Errorf("(loop 100000 0) = %q, want 100000", got)
	}
}

func TestArityMismatchReportsRatherThanTruncates(t *testing.T) {
	var reported bool
	arena := cell.New(1<<16, 1<<12, reporterFunc(func(string, ...any) { reported = true }), func(format string, args ...any) {
		t.Fatalf("fatal: "+format, args...)
	})
	in := New(arena, reporterFunc(func(string, ...any) { reported = true }), nil)
	prim.Install(in)
	runString(t, in, `(define f (lambda (a b) a))`)
	runString(t, in, `(f 1)`)
	if !reported {
		t.Fatalf("calling f with the wrong arity did not report an error")
	}
}

func TestQuoteAndQuasiquoteSplice(t *testing.T) {
	in := newTestInterp(t)
	if got := runString(t, in, `(quote (1 2 3))`); got != "(1 2 3)" {
		t.Errorf("(quote (1 2 3)) = %q, want (1 2 3)", got)
	}
	runString(t, in, `(define xs (quote (2 3)))`)
	if got := runString(t, in, "`(1 ,@xs 4)"); got != "(1 2 3 4)" {
		t.Errorf("`(1 ,@xs 4) = %q, want (1 2 3 4)", got)
	}
}

func TestMacroExpansion(t *testing.T) {
	in := newTestInterp(t)
	// arg is bound to the whole call form, whose head is the macro cell
	// itself; (car (cdr arg)) extracts the single argument expression, 21.
	runString(t, in, "(macro (double arg) `(+ ,(car (cdr arg)) ,(car (cdr arg))))")
	if got := runString(t, in, `(double 21)`); got != "42" {
		t.Errorf("(double 21) = %q, want 42", got)
	}
}

func TestEqAndEqv(t *testing.T) {
	in := newTestInterp(t)
	if got := runString(t, in, `(eq? (quote a) (quote a))`); got != "#t" {
		t.Errorf("(eq? 'a 'a) = %q, want #t", got)
	}
	if got := runString(t, in, `(eqv? 2 2)`); got != "#t" {
		t.Errorf("(eqv? 2 2) = %q, want #t", got)
	}
	if got := runString(t, in, `(eqv? "ab" "ab")`); got != "#t" {
		t.Errorf("(eqv? \"ab\" \"ab\") = %q, want #t (structural string equality)", got)
	}
}

func TestSetMutatesExistingBinding(t *testing.T) {
	in := newTestInterp(t)
	runString(t, in, `(define x 1)`)
	runString(t, in, `(set! x 2)`)
	if got := runString(t, in, `x`); got != "2" {
		t.Errorf("x after (set! x 2) = %q, want 2", got)
	}
}

func TestVarargsLambdaBindsWholeArgumentList(t *testing.T) {
	in := newTestInterp(t)
	runString(t, in, `(define pack (lambda args args))`)
	if got := runString(t, in, `(pack 1 2 3)`); got != "(1 2 3)" {
		t.Errorf("(pack 1 2 3) = %q, want (1 2 3)", got)
	}
	if got := runString(t, in, `(pack)`); got != "()" {
		t.Errorf("(pack) = %q, want ()", got)
	}
}

func TestApplyAndEvalPrimitives(t *testing.T) {
	in := newTestInterp(t)
	runString(t, in, `(define sum3 (lambda (a b c) (+ a b c)))`)
	if got := runString(t, in, `(apply sum3 (cons 1 (cons 2 (cons 3 (quote ())))))`); got != "6" {
		t.Errorf("(apply sum3 '(1 2 3)) = %q, want 6", got)
	}
	if got := runString(t, in, `(eval (quote (+ 1 2)))`); got != "3" {
		t.Errorf("(eval '(+ 1 2)) = %q, want 3", got)
	}
}

type reporterFunc func(format string, args ...any)

func (f reporterFunc) Reportf(format string, args ...any) { f(format, args...) }

var _ diag.Reporter = reporterFunc(nil)
