// Package printer implements the recursive S-expression writer.
package printer

import (
	"strconv"
	"strings"

	"github.com/cellisp/cellisp/cell"
)

// Write renders c in "write" form: strings are quoted.
func Write(c *cell.Cell) string {
	var b strings.Builder
	write(&b, c, true)
	return b.String()
}

// Display renders c in "display" form: a top-level string prints its
// raw characters, unquoted. Nested strings (inside a list) still
// print quoted, matching every Scheme implementation's convention
// that display only affects the outermost value.
func Display(c *cell.Cell) string {
	if c.Tag() == cell.String {
		return c.Text
	}
	var b strings.Builder
	write(&b, c, true)
	return b.String()
}

func write(b *strings.Builder, c *cell.Cell, quoteStrings bool) {
	switch c.Tag() {
	case cell.Empty:
		if c == cell.TRUE {
			b.WriteString("#t")
		} else if c == cell.FALSE {
			b.WriteString("#f")
		} else {
			b.WriteString("()")
		}
	case cell.Symbol:
		b.WriteString(c.Text)
	case cell.Integer:
		b.WriteString(strconv.FormatInt(c.Int, 10))
	case cell.String:
		if quoteStrings {
			b.WriteByte('"')
			b.WriteString(c.Text)
			b.WriteByte('"')
		} else {
			b.WriteString(c.Text)
		}
	case cell.Pair:
		b.WriteByte('(')
		writeList(b, c)
		b.WriteByte(')')
	case cell.Primop:
		b.WriteString("<primop>")
	case cell.Lambda:
		b.WriteString("<lambda>")
	case cell.Macro:
		b.WriteString("<macro>")
	default:
		b.WriteString("()")
	}
}

func writeList(b *strings.Builder, c *cell.Cell) {
	first := true
	for {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		write(b, c.Car, true)

		switch c.Cdr.Tag() {
		case cell.Empty:
			if c.Cdr != cell.NIL {
				b.WriteString(" . ")
				write(b, c.Cdr, true)
			}
			return
		case cell.Pair:
			c = c.Cdr
		default:
			b.WriteString(" . ")
			write(b, c.Cdr, true)
			return
		}
	}
}
