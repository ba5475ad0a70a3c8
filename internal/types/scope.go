package types

import (
	"fmt"
	"strings"

	"github.com/you-not-fish/minic/internal/syntax"
)

// SymbolTable maps variable names to their inferred kinds.
// There is a single flat table per program; names are kept in the order
// they were first assigned.
type SymbolTable struct {
	elems map[string]*Symbol
	order []string
}

// NewSymbolTable returns an empty table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{elems: make(map[string]*Symbol)}
}

// Lookup returns the kind recorded for name.
func (t *SymbolTable) Lookup(name string) (Kind, bool) {
	if t == nil {
		return Unknown, false
	}
	sym := t.elems[name]
	if sym == nil {
		return Unknown, false
	}
	return sym.kind, true
}

// Symbol returns the symbol for name, or nil.
func (t *SymbolTable) Symbol(name string) *Symbol {
	if t == nil {
		return nil
	}
	return t.elems[name]
}

// insert records name with the given kind. A name that is already present
// keeps its first position and takes the new kind, the way a later
// assignment overwrites an earlier one.
func (t *SymbolTable) insert(pos syntax.Pos, name string, kind Kind) *Symbol {
	if sym := t.elems[name]; sym != nil {
		sym.kind = kind
		return sym
	}
	sym := NewSymbol(pos, name, kind)
	t.elems[name] = sym
	t.order = append(t.order, name)
	return sym
}

// Names returns the recorded names in first-assignment order.
func (t *SymbolTable) Names() []string {
	if t == nil {
		return nil
	}
	names := make([]string, len(t.order))
	copy(names, t.order)
	return names
}

// Len returns the number of recorded names.
func (t *SymbolTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.order)
}

// String returns one "name: kind" line per symbol.
func (t *SymbolTable) String() string {
	var buf strings.Builder
	for _, name := range t.Names() {
		fmt.Fprintf(&buf, "%s: %s\n", name, t.elems[name].kind)
	}
	return buf.String()
}

// A Recorder fills a SymbolTable during checking. The table itself has
// no exported way to change it, so code that only holds the table can
// read it but not add to it.
type Recorder struct {
	table *SymbolTable
}

// NewRecorder returns a Recorder with an empty table.
func NewRecorder() *Recorder {
	return &Recorder{table: NewSymbolTable()}
}

// Record adds name with the given kind to the table, or updates the kind
// if name is already present, and returns the symbol.
func (r *Recorder) Record(pos syntax.Pos, name string, kind Kind) *Symbol {
	return r.table.insert(pos, name, kind)
}

// Table returns the table being filled.
func (r *Recorder) Table() *SymbolTable {
	return r.table
}
