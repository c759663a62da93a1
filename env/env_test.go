package env

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

func TestBindShadowsWithoutMutating(t *testing.T) {
	a := testArena(t)
	x := a.Intern("x")
	e := New()
	e = Bind(a, e, x, a.NewInteger(1))
	inner := Bind(a, e, x, a.NewInteger(2))

	if v, ok := Lookup(inner, x); !ok || v.Int != 2 {
		t.Fatalf("Lookup(inner, x) = %v, %v; want 2, true", v, ok)
	}
	if v, ok := Lookup(e, x); !ok || v.Int != 1 {
		t.Fatalf("Lookup(e, x) = %v, %v; want 1, true (outer binding must survive shadowing)", v, ok)
	}
}

func TestLookupUnbound(t *testing.T) {
	a := testArena(t)
	y := a.Intern("y")
	if _, ok := Lookup(New(), y); ok {
		t.Fatalf("Lookup found a binding in the empty environment")
	}
}

func TestBindAllOrdersLastWins(t *testing.T) {
	a := testArena(t)
	x := a.Intern("x")
	e := BindAll(a, New(), []*cell.Cell{x, x}, []*cell.Cell{a.NewInteger(1), a.NewInteger(2)})
	v, ok := Lookup(e, x)
	if !ok || v.Int != 2 {
		t.Fatalf("Lookup after BindAll([x,x],[1,2]) = %v, %v; want 2, true", v, ok)
	}
}

func TestSetMutatesNearestBinding(t *testing.T) {
	a := testArena(t)
	x := a.Intern("x")
	outer := Bind(a, New(), x, a.NewInteger(1))
	inner := Bind(a, outer, x, a.NewInteger(2))

	if !Set(inner, x, a.NewInteger(99)) {
		t.Fatalf("Set reported failure for a bound symbol")
	}
	if v, _ := Lookup(inner, x); v.Int != 99 {
		t.Fatalf("Set did not mutate the nearest binding: got %d", v.Int)
	}
	if v, _ := Lookup(outer, x); v.Int != 1 {
		t.Fatalf("Set mutated the outer binding instead of the nearest one: got %d", v.Int)
	}
}

func TestSetUnboundReportsFalse(t *testing.T) {
	a := testArena(t)
	z := a.Intern("z")
	if Set(New(), z, a.NewInteger(1)) {
		t.Fatalf("Set reported success for an unbound symbol")
	}
}
