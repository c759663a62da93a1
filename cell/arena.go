package cell

import (
	"github.com/cellisp/cellisp/diag"
	"github.com/dchest/siphash"
)

// NIL, TRUE and FALSE are sentinel cells owned by the arena's
// context. They live outside the fixed-capacity slab; comparisons to
// them are by identity, same as every other symbol comparison.
var (
	NIL   = &Cell{tag: Empty}
	TRUE  = &Cell{tag: Symbol, Text: "#t"}
	FALSE = &Cell{tag: Symbol, Text: "#f"}
)

// RootFunc is supplied by the interpreter context and returns the
// cells it currently considers live: the global environment, the
// evaluator's result register, and its in-flight arguments register.
type RootFunc func() []*Cell

// Arena is a fixed-capacity pool of tagged cells with a mark-sweep
// collector. It never resizes: exhaustion after a collection cycle is
// fatal.
type Arena struct {
	cells  []Cell
	cursor int

	sink    []*Cell
	maxSink int

	symbols map[string]*Cell

	// siphashKey and symbolBuckets back symbolHash's load diagnostic:
	// siphash buckets opaque symbol-spelling bytes for a fast skew
	// check, not for any cryptographic guarantee.
	siphashKey    [16]byte
	symbolBuckets map[uint64]int

	Roots  RootFunc
	Report diag.Reporter

	fatal func(format string, args ...any)
}

// New constructs an arena with the given cell capacity and sink
// depth. fatal is invoked (and must not return) on unrecoverable
// arena or sink exhaustion.
func New(maxCells, maxSinkSize int, report diag.Reporter, fatal func(string, ...any)) *Arena {
	if report == nil {
		report = diag.Stderr
	}
	a := &Arena{
		cells:         make([]Cell, maxCells),
		sink:          make([]*Cell, 0, maxSinkSize),
		maxSink:       maxSinkSize,
		symbols:       make(map[string]*Cell),
		symbolBuckets: make(map[uint64]int),
		Report:        report,
		fatal:         fatal,
	}
	for i := range a.cells {
		a.cells[i].tag = Empty
	}
	return a
}

func (a *Arena) symbolHash(s string) uint64 {
	return siphash.Hash(0, 0, append(a.siphashKey[:0:0], s...))
}

// Len reports how many cells are currently used.
func (a *Arena) Len() int {
	n := 0
	for i := range a.cells {
		if a.cells[i].used {
			n++
		}
	}
	return n
}

// Cap reports the arena's fixed capacity.
func (a *Arena) Cap() int { return len(a.cells) }

// allocRaw bump-allocates the next free slot without pushing it to
// the sink. It is used only for cells pinned by a root other than the
// sink at the moment of creation — interned symbols, pinned by the
// symbol table — and as the first step of Alloc and Cons, which push
// the result themselves.
func (a *Arena) allocRaw(tag Tag, tmp1, tmp2 *Cell) *Cell {
	n := len(a.cells)
	for i := 0; i < n; i++ {
		idx := (a.cursor + i) % n
		if !a.cells[idx].used {
			a.cursor = (idx + 1) % n
			c := &a.cells[idx]
			c.reset(tag)
			c.used = true
			return c
		}
	}
	a.collect(tmp1, tmp2)
	for i := 0; i < n; i++ {
		idx := (a.cursor + i) % n
		if !a.cells[idx].used {
			a.cursor = (idx + 1) % n
			c := &a.cells[idx]
			c.reset(tag)
			c.used = true
			return c
		}
	}
	a.Report.Reportf("arena: collection reclaimed nothing, %d cells still in use of %d", a.Len(), n)
	a.fatal("arena exhausted: %d cells in use, capacity %d", a.Len(), n)
	panic("unreachable")
}

// Alloc allocates a cell of the given tag and pushes it onto the
// sink so it survives any allocation-triggered collection for the
// remainder of the current top-level evaluation step, even before it
// is attached to any other root. tmp1 and tmp2 are caller-supplied
// temporary roots (typically the two operands of a pending cons) that
// are not yet reachable from any other root; pass nil when unused.
func (a *Arena) Alloc(tag Tag, tmp1, tmp2 *Cell) *Cell {
	c := a.allocRaw(tag, tmp1, tmp2)
	a.push(c)
	return c
}

// Cons allocates a pair cell with the given car/cdr, keeping both
// reachable as temporary roots across the allocation itself.
func (a *Arena) Cons(car, cdr *Cell) *Cell {
	c := a.allocRaw(Pair, car, cdr)
	c.Car, c.Cdr = car, cdr
	a.push(c)
	return c
}

// NewInteger allocates an integer cell.
func (a *Arena) NewInteger(v int64) *Cell {
	c := a.Alloc(Integer, nil, nil)
	c.Int = v
	return c
}

// NewString allocates a string cell.
func (a *Arena) NewString(s string) *Cell {
	c := a.Alloc(String, nil, nil)
	c.Text = s
	return c
}

// Intern returns the unique symbol cell for spelling s, allocating
// and registering it on first use. Interned symbols are pinned for
// the life of the context by the symbol table root: two symbol cells
// have equal spellings iff they are the same cell.
func (a *Arena) Intern(s string) *Cell {
	if c, ok := a.symbols[s]; ok {
		return c
	}
	c := a.allocRaw(Symbol, nil, nil)
	c.Text = s
	a.symbols[s] = c
	a.trackBucketLoad(s)
	return c
}

// symbolBucketWarnAt is the bucket occupancy that triggers a load
// diagnostic — large enough that ordinary programs (a few hundred
// distinct identifiers) never hit it.
const symbolBucketWarnAt = 64

// trackBucketLoad hashes s into one of a fixed number of diagnostic
// buckets and warns once a bucket grows unusually full, flagging a
// skewed key distribution before it becomes a performance problem.
func (a *Arena) trackBucketLoad(s string) {
	bucket := a.symbolHash(s) % 4096
	a.symbolBuckets[bucket]++
	if a.symbolBuckets[bucket] == symbolBucketWarnAt {
		a.Report.Reportf("arena: symbol bucket %d has %d entries, interning is more skewed than expected", bucket, symbolBucketWarnAt)
	}
}

// NewLambda allocates a lambda cell capturing env as its definition
// environment, giving lambdas lexical closures over the scope in
// which they were written.
func (a *Arena) NewLambda(params, body, env *Cell) *Cell {
	c := a.Alloc(Lambda, params, body)
	c.Params, c.Body, c.Env = params, body, env
	return c
}

// NewMacro allocates a macro cell.
func (a *Arena) NewMacro(param, body *Cell) *Cell {
	c := a.Alloc(Macro, param, body)
	c.Params, c.Body = param, body
	return c
}

// NewPrimop allocates a primop cell wrapping fn, recording name in
// its Text field.
func (a *Arena) NewPrimop(name string, fn Func) *Cell {
	c := a.Alloc(Primop, nil, nil)
	c.Text = name
	c.Prim = fn
	return c
}

// push records c on the sink so it stays reachable across subsequent
// allocations until the sink is truncated. Sink exhaustion runs a
// collection and, failing that, is fatal — the same contract as
// arena exhaustion.
func (a *Arena) push(c *Cell) {
	if len(a.sink) >= a.maxSink {
		a.collect(c, nil)
		if len(a.sink) >= a.maxSink {
			a.Report.Reportf("arena: sink still full after collection, capacity %d", a.maxSink)
			a.fatal("sink exhausted: %d entries, capacity %d", len(a.sink), a.maxSink)
		}
	}
	a.sink = append(a.sink, c)
}

// SinkMark returns the current sink depth, to be passed to
// SinkTruncate once the cells pushed since are no longer needed as
// temporaries — e.g. at each top-level read-eval step, and by the
// tail-call trampoline when it resets for another iteration.
func (a *Arena) SinkMark() int { return len(a.sink) }

// SinkTruncate drops every sink entry pushed since mark, releasing
// those temporaries to the next collection cycle.
func (a *Arena) SinkTruncate(mark int) {
	if mark < 0 || mark > len(a.sink) {
		return
	}
	a.sink = a.sink[:mark]
}
