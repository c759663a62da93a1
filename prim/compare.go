package prim

import "github.com/cellisp/cellisp/cell"

// numEq, lt, gt, le, ge implement `=`, `<`, `>`, `<=`, `>=`: each
// requires at least 2 integer arguments and checks the relation holds
// across every adjacent pair, matching Scheme's chained-comparison
// convention (`(< 1 2 3)` is true iff 1 < 2 and 2 < 3).

func numEq(ctx cell.Interp, args *cell.Cell) *cell.Cell {
	return chainCompare(ctx, "=", args, func(a, b int64) bool { return a == b })
}

func lt(ctx cell.Interp, args *cell.Cell) *cell.Cell {
	return chainCompare(ctx, "<", args, func(a, b int64) bool { return a < b })
}

func gt(ctx cell.Interp, args *cell.Cell) *cell.Cell {
	return chainCompare(ctx, ">", args, func(a, b int64) bool { return a > b })
}

func le(ctx cell.Interp, args *cell.Cell) *cell.Cell {
	return chainCompare(ctx, "<=", args, func(a, b int64) bool { return a <= b })
}

func ge(ctx cell.Interp, args *cell.Cell) *cell.Cell {
	return chainCompare(ctx, ">=", args, func(a, b int64) bool { return a >= b })
}

func chainCompare(ctx cell.Interp, name string, args *cell.Cell, rel func(a, b int64) bool) *cell.Cell {
	vals, ok := intArgs(ctx, name, args, -1)
	if !ok {
		return cell.NIL
	}
	if len(vals) < 2 {
		ctx.Reportf("%s: requires at least 2 arguments", name)
		return cell.NIL
	}
	for i := 1; i < len(vals); i++ {
		if !rel(vals[i-1], vals[i]) {
			return cell.FALSE
		}
	}
	return cell.TRUE
}
