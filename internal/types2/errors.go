// Package types2 implements the static check of a minic program: every
// variable must be assigned before it is read.
package types2

import (
	"fmt"

	"github.com/you-not-fish/minic/internal/syntax"
)

// SemanticError reports a variable read before any assignment to it.
type SemanticError struct {
	Name string
	Pos  syntax.Pos
}

// Error implements the error interface.
func (e *SemanticError) Error() string {
	return fmt.Sprintf("%s: undefined variable '%s'", e.Pos, e.Name)
}

// ErrorHandler is called with the error that stops the check.
type ErrorHandler func(err *SemanticError)

// undefined records the first error and stops the check.
func (c *Checker) undefined(n *syntax.Name) {
	if c.first != nil {
		return
	}
	c.first = &SemanticError{Name: n.Value, Pos: n.Pos()}
	if c.conf.Error != nil {
		c.conf.Error(c.first)
	}
}
