package interp

import (
	"fmt"

	"github.com/you-not-fish/minic/internal/syntax"
)

// DiagKind classifies a Diagnostic.
type DiagKind int

const (
	UndefinedVariable DiagKind = iota
	InvalidNumber
	OperandType
	DivisionByZero
	UnknownOperator
	LoopResult // informational: a while body's result
	LoopLimit
)

var diagKindNames = [...]string{
	UndefinedVariable: "undefined variable",
	InvalidNumber:     "invalid number",
	OperandType:       "operand type",
	DivisionByZero:    "division by zero",
	UnknownOperator:   "unknown operator",
	LoopResult:        "loop result",
	LoopLimit:         "loop limit",
}

func (k DiagKind) String() string {
	if k < 0 || int(k) >= len(diagKindNames) {
		return fmt.Sprintf("DiagKind(%d)", int(k))
	}
	return diagKindNames[k]
}

// Diagnostic is a message produced while evaluating. It never stops the
// run.
type Diagnostic struct {
	Kind DiagKind
	Msg  string
	Pos  syntax.Pos
}

// String returns the message as printed on the output channel.
func (d Diagnostic) String() string { return d.Msg }

// IsError reports whether d describes a failed evaluation rather than
// loop progress.
func (d Diagnostic) IsError() bool {
	return d.Kind != LoopResult && d.Kind != LoopLimit
}

func (in *Interpreter) report(kind DiagKind, pos syntax.Pos, format string, args ...interface{}) {
	d := Diagnostic{Kind: kind, Msg: fmt.Sprintf(format, args...), Pos: pos}
	in.diags = append(in.diags, d)
	if in.out != nil {
		fmt.Fprintln(in.out, d.Msg)
	}
}
