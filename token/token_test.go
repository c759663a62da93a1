package token

import (
	"testing"

	"github.com/cellisp/cellisp/source"
)

func scanAll(s string) []Token {
	tok := New(source.NewString(s))
	var out []Token
	for {
		t := tok.Next()
		out = append(out, t)
		if t.Kind == EOF {
			return out
		}
	}
}

func TestPunctuationAndAtoms(t *testing.T) {
	got := scanAll(`(+ 1 foo)`)
	want := []Kind{LParen, Atom, Atom, Atom, RParen, EOF}
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(got), len(want), got)
	}
	for i, k := range want {
		if got[i].Kind != k {
			t.Errorf("token %d: got kind %v, want %v", i, got[i].Kind, k)
		}
	}
}

func TestQuoteFamily(t *testing.T) {
	got := scanAll("' ` , ,@")
	want := []Kind{Quote, Quasiquote, Unquote, UnquoteSplice, EOF}
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(got), len(want), got)
	}
	for i, k := range want {
		if got[i].Kind != k {
			t.Errorf("token %d: got kind %v, want %v", i, got[i].Kind, k)
		}
	}
}

func TestDotToken(t *testing.T) {
	got := scanAll("(a . b)")
	if got[2].Kind != Dot {
		t.Fatalf("token 2: got kind %v, want Dot", got[2].Kind)
	}
}

func TestStringLiteralEscapes(t *testing.T) {
	got := scanAll(`"a\nb\"c"`)
	if got[0].Kind != Str {
		t.Fatalf("got kind %v, want Str", got[0].Kind)
	}
	if want := "a\nb\"c"; got[0].Text != want {
		t.Fatalf("got text %q, want %q", got[0].Text, want)
	}
}

func TestUnterminatedStringReportsError(t *testing.T) {
	tok := New(source.NewString(`"abc`))
	tr := tok.Next()
	if tr.Kind != EOF {
		t.Fatalf("got kind %v, want EOF", tr.Kind)
	}
	if tok.Err() == nil {
		t.Fatalf("expected a tokenizer error for an unterminated string")
	}
}

func TestCommentsAreSkipped(t *testing.T) {
	got := scanAll("1 ; a comment\n2")
	want := []Kind{Atom, Atom, EOF}
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(got), len(want), got)
	}
	if got[0].Text != "1" || got[1].Text != "2" {
		t.Fatalf("got texts %q, %q; want 1, 2", got[0].Text, got[1].Text)
	}
}

func TestAtomStopsBeforeTrailingComment(t *testing.T) {
	got := scanAll("foo;bar")
	if got[0].Text != "foo" {
		t.Fatalf("got atom %q, want %q (atom must not absorb a trailing comment)", got[0].Text, "foo")
	}
}
