package types2

import (
	"github.com/you-not-fish/minic/internal/syntax"
	"github.com/you-not-fish/minic/internal/types"
)

// Config specifies the configuration for checking.
type Config struct {
	// Error is called with the error that stops the check.
	// If nil, the error is only returned.
	Error ErrorHandler
}

// Check validates root and returns the symbol table it builds.
//
// Statements are visited depth-first, left to right. A variable read is
// valid only if an assignment to the same name was visited earlier. The
// right-hand side of an assignment is visited before its target is
// recorded, so x = x is rejected when x is new. Both branches of an if
// and the body of a while are visited exactly once.
//
// The first undefined variable stops the check; the table built so far
// is returned together with a *SemanticError.
func Check(root *syntax.Block, conf *Config) (*types.SymbolTable, error) {
	if conf == nil {
		conf = &Config{}
	}

	rec := types.NewRecorder()
	c := &Checker{
		conf:    conf,
		rec:     rec,
		symbols: rec.Table(),
	}
	if root != nil {
		c.stmt(root)
	}

	if c.first != nil {
		return c.symbols, c.first
	}
	return c.symbols, nil
}
