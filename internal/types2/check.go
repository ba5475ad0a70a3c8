package types2

import (
	"github.com/you-not-fish/minic/internal/syntax"
	"github.com/you-not-fish/minic/internal/types"
)

// Checker walks a program once, recording assignments.
type Checker struct {
	conf    *Config
	rec     *types.Recorder
	symbols *types.SymbolTable // rec's table

	first *SemanticError // first error; set once, stops the walk
}

func (c *Checker) stmt(node syntax.Node) {
	if c.first != nil {
		return
	}

	switch n := node.(type) {
	case *syntax.Block:
		for _, s := range n.Stmts {
			c.stmt(s)
		}

	case *syntax.If:
		c.expr(n.Cond)
		c.stmt(n.Then)
		if n.Else != nil {
			c.stmt(n.Else)
		}

	case *syntax.While:
		c.expr(n.Cond)
		c.stmt(n.Body)

	default:
		c.expr(n)
	}
}

func (c *Checker) expr(node syntax.Node) {
	if c.first != nil {
		return
	}

	switch n := node.(type) {
	case *syntax.Name:
		if _, ok := c.symbols.Lookup(n.Value); !ok {
			c.undefined(n)
		}

	case *syntax.Assignment:
		c.expr(n.Value)
		if c.first != nil {
			return
		}
		c.rec.Record(n.Pos(), n.Name, c.infer(n.Value))

	case *syntax.Binary:
		c.expr(n.X)
		c.expr(n.Y)

	case *syntax.NumberLit, *syntax.StringLit:
		// literals

	case *syntax.Block, *syntax.If, *syntax.While:
		// Not produced by the parser in expression position, but
		// well-formed if built by hand.
		c.stmt(n)
	}
}

// infer returns the kind an assignment of value gives its target.
func (c *Checker) infer(value syntax.Node) types.Kind {
	switch v := value.(type) {
	case *syntax.NumberLit:
		return types.Int
	case *syntax.StringLit:
		return types.String
	case *syntax.Name:
		kind, _ := c.symbols.Lookup(v.Value)
		return kind
	}
	return types.Unknown
}
