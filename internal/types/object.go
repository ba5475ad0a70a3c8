package types

import "github.com/you-not-fish/minic/internal/syntax"

// Symbol is a variable recorded by the checker.
type Symbol struct {
	name string
	kind Kind
	pos  syntax.Pos // first assignment
}

// NewSymbol creates a symbol for name, first assigned at pos.
func NewSymbol(pos syntax.Pos, name string, kind Kind) *Symbol {
	return &Symbol{name: name, kind: kind, pos: pos}
}

func (s *Symbol) Name() string    { return s.name }
func (s *Symbol) Kind() Kind      { return s.kind }
func (s *Symbol) Pos() syntax.Pos { return s.pos }
