package pipeline

import (
	"errors"
	"fmt"

	"github.com/you-not-fish/minic/internal/syntax"
	"github.com/you-not-fish/minic/internal/types2"
)

// StageError is a failure of one pipeline stage.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// ErrorSnippet renders err against src with a caret under the failing
// position. Errors without a position are returned as their message.
func ErrorSnippet(err error, src string) string {
	var (
		lexErr   *syntax.LexError
		parseErr *syntax.ParseError
		semErr   *types2.SemanticError
	)
	switch {
	case errors.As(err, &lexErr):
		return syntax.Snippet(src, lexErr.Pos, "LEXICAL ERROR", lexErr.Error())
	case errors.As(err, &parseErr):
		return syntax.Snippet(src, parseErr.Tok.Pos, "PARSE ERROR", parseErr.Msg)
	case errors.As(err, &semErr):
		return syntax.Snippet(src, semErr.Pos, "SEMANTIC ERROR", fmt.Sprintf("undefined variable '%s'", semErr.Name))
	case err != nil:
		return err.Error() + "\n"
	}
	return ""
}
