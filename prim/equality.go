package prim

import "github.com/cellisp/cellisp/cell"

// eq implements `(eq? a b)`: cell identity, the host-language pointer
// comparison that makes interned symbol comparison O(1).
func eq(ctx cell.Interp, args *cell.Cell) *cell.Cell {
	vals := toSlice(args)
	if len(vals) != 2 {
		ctx.Reportf("eq?: expected 2 arguments, got %d", len(vals))
		return cell.NIL
	}
	return boolCell(vals[0] == vals[1])
}

// eqv implements `(eqv? a b)`: structural equality for integers and
// strings, identity for everything else (symbols, pairs, procedures).
func eqv(ctx cell.Interp, args *cell.Cell) *cell.Cell {
	vals := toSlice(args)
	if len(vals) != 2 {
		ctx.Reportf("eqv?: expected 2 arguments, got %d", len(vals))
		return cell.NIL
	}
	a, b := vals[0], vals[1]
	if a.Tag() != b.Tag() {
		return cell.FALSE
	}
	switch a.Tag() {
	case cell.Integer:
		return boolCell(a.Int == b.Int)
	case cell.String:
		return boolCell(a.Text == b.Text)
	default:
		return boolCell(a == b)
	}
}

func boolCell(v bool) *cell.Cell {
	if v {
		return cell.TRUE
	}
	return cell.FALSE
}
