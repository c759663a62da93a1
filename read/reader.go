// Package read implements the reader: it consumes a token.Tokenizer
// and emits cell trees, handling the quote/quasiquote/unquote reader
// macros and dotted pairs.
package read

import (
	"strconv"

	"github.com/cellisp/cellisp/cell"
	"github.com/cellisp/cellisp/diag"
	"github.com/cellisp/cellisp/token"
)

// Reader turns a token stream into cell trees.
type Reader struct {
	tok    *token.Tokenizer
	arena  *cell.Arena
	report diag.Reporter

	rparen *cell.Cell // interned ")" sentinel: list terminator
	dot    *cell.Cell // interned "." sentinel: dotted-pair marker
}

// New constructs a Reader over tok, allocating cells through arena.
func New(tok *token.Tokenizer, arena *cell.Arena, report diag.Reporter) *Reader {
	if report == nil {
		report = diag.Stderr
	}
	return &Reader{
		tok:    tok,
		arena:  arena,
		report: report,
		rparen: arena.Intern(")"),
		dot:    arena.Intern("."),
	}
}

// ReadObject reads one top-level object. ok is false at clean
// end-of-input; obj is cell.NIL in that case.
func (r *Reader) ReadObject() (obj *cell.Cell, ok bool) {
	t := r.tok.Next()
	return r.fromToken(t)
}

func (r *Reader) fromToken(t token.Token) (*cell.Cell, bool) {
	switch t.Kind {
	case token.EOF:
		if err := r.tok.Err(); err != nil {
			r.report.Reportf("reader: %v", err)
		}
		return cell.NIL, false

	case token.LParen:
		return r.readList(), true

	case token.RParen:
		return r.rparen, true

	case token.Dot:
		return r.dot, true

	case token.Quote:
		return r.wrap("quote"), true

	case token.Quasiquote:
		return r.wrap("quasiquote"), true

	case token.Unquote:
		return r.wrap("unquote"), true

	case token.UnquoteSplice:
		return r.wrap("unquote-splice"), true

	case token.Str:
		return r.arena.NewString(t.Text), true

	case token.Atom:
		return r.fromAtom(t.Text), true
	}

	r.report.Reportf("reader: unrecognised token")
	return cell.NIL, true
}

// wrap reads the following object and builds (name <obj>).
func (r *Reader) wrap(name string) *cell.Cell {
	inner, ok := r.ReadObject()
	if !ok {
		r.report.Reportf("reader: end of input after %q reader macro", name)
		return cell.NIL
	}
	sym := r.arena.Intern(name)
	pair := r.arena.Cons(inner, cell.NIL)
	return r.arena.Cons(sym, pair)
}

func (r *Reader) fromAtom(text string) *cell.Cell {
	if n, ok := parseInteger(text); ok {
		return r.arena.NewInteger(n)
	}
	return r.arena.Intern(text)
}

// parseInteger recognises an optional leading '-' followed by one or
// more digits.
func parseInteger(s string) (int64, bool) {
	if s == "" || s == "-" {
		return 0, false
	}
	body := s
	if s[0] == '-' {
		body = s[1:]
	}
	for i := 0; i < len(body); i++ {
		if body[i] < '0' || body[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// readList builds a proper or dotted list until a closing ')':
// encountering ')' terminates with NIL; encountering '.' requires
// exactly one further object followed by ')'.
func (r *Reader) readList() *cell.Cell {
	t := r.tok.Next()
	if t.Kind == token.EOF {
		r.report.Reportf("reader: missing )")
		return cell.NIL
	}

	head, ok := r.fromToken(t)
	if !ok {
		r.report.Reportf("reader: missing )")
		return cell.NIL
	}

	if head == r.rparen {
		return cell.NIL
	}

	if head == r.dot {
		tail, ok := r.ReadObject()
		if !ok {
			r.report.Reportf("reader: missing object after '.'")
			return cell.NIL
		}
		closing := r.tok.Next()
		if closing.Kind != token.RParen {
			r.report.Reportf("reader: malformed dotted pair, expected )")
			return cell.NIL
		}
		return tail
	}

	rest := r.readList()
	return r.arena.Cons(head, rest)
}
