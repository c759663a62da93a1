package printer

import (
	"testing"

	"github.com/cellisp/cellisp/cell"
)

func testArena(t *testing.T) *cell.Arena {
	t.Helper()
	return cell.New(256, 256, nil, func(format string, args ...any) {
		t.Fatalf(format, args...)
	})
}

func TestWriteAtoms(t *testing.T) {
	a := testArena(t)
	cases := []struct {
		c    *cell.Cell
		want string
	}{
		{cell.NIL, "()"},
		{cell.TRUE, "#t"},
		{cell.FALSE, "#f"},
		{a.NewInteger(-3), "-3"},
		{a.Intern("foo"), "foo"},
		{a.NewString("hi"), `"hi"`},
	}
	for _, tc := range cases {
		if got := Write(tc.c); got != tc.want {
			t.Errorf("Write(%v) = %q, want %q", tc.c, got, tc.want)
		}
	}
}

func TestDisplayUnquotesTopLevelString(t *testing.T) {
	a := testArena(t)
	s := a.NewString("hi")
	if got := Display(s); got != "hi" {
		t.Fatalf("Display(string) = %q, want %q", got, "hi")
	}
	if got := Write(s); got != `"hi"` {
		t.Fatalf("Write(string) = %q, want %q", got, `"hi"`)
	}
}

func TestWriteList(t *testing.T) {
	a := testArena(t)
	l := a.Cons(a.NewInteger(1), a.Cons(a.NewInteger(2), cell.NIL))
	if got := Write(l); got != "(1 2)" {
		t.Fatalf("Write(list) = %q, want %q", got, "(1 2)")
	}
}

func TestWriteDottedPair(t *testing.T) {
	a := testArena(t)
	p := a.Cons(a.NewInteger(1), a.NewInteger(2))
	if got := Write(p); got != "(1 . 2)" {
		t.Fatalf("Write(dotted pair) = %q, want %q", got, "(1 . 2)")
	}
}

func TestWriteNestedStringStaysQuoted(t *testing.T) {
	a := testArena(t)
	l := a.Cons(a.NewString("hi"), cell.NIL)
	if got := Display(l); got != `("hi")` {
		t.Fatalf("Display(list containing a string) = %q, want %q", got, `("hi")`)
	}
}
