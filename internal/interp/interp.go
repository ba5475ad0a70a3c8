package interp

import (
	"io"

	"github.com/you-not-fish/minic/internal/syntax"
	"github.com/you-not-fish/minic/internal/types"
)

// MaxIterations bounds the number of times a while body runs.
const MaxIterations = 10

// Interpreter evaluates one program against its own environment.
// It is not safe for concurrent use.
type Interpreter struct {
	env   *Env
	out   io.Writer
	diags []Diagnostic
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithOutput makes the interpreter write each diagnostic to w as a line
// when it is reported.
func WithOutput(w io.Writer) Option {
	return func(in *Interpreter) { in.out = w }
}

// New returns an interpreter with an empty environment. symbols is the
// checker's table for the program. Its kinds are advisory, so evaluation
// does not read it.
func New(symbols *types.SymbolTable, opts ...Option) *Interpreter {
	in := &Interpreter{env: NewEnv()}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Env returns the interpreter's environment.
func (in *Interpreter) Env() *Env { return in.env }

// Diagnostics returns the diagnostics reported so far, in order.
func (in *Interpreter) Diagnostics() []Diagnostic { return in.diags }

// Eval runs root and returns the value of its last statement, or nil if
// the program is empty or its last statement produced no value.
func (in *Interpreter) Eval(root *syntax.Block) Value {
	if root == nil {
		return nil
	}
	return in.eval(root)
}

func (in *Interpreter) eval(node syntax.Node) Value {
	switch n := node.(type) {
	case *syntax.Block:
		var result Value
		for _, s := range n.Stmts {
			result = in.eval(s)
		}
		return result

	case *syntax.NumberLit:
		v, ok := numberValue(n.Value)
		if !ok {
			in.report(InvalidNumber, n.Pos(), "Semantic Error: Invalid number '%s'", n.Value)
			return nil
		}
		return v

	case *syntax.StringLit:
		return Str(n.Value)

	case *syntax.Name:
		v, ok := in.env.Lookup(n.Value)
		if !ok {
			in.report(UndefinedVariable, n.Pos(), "Semantic Error: Undefined variable '%s'", n.Value)
			return nil
		}
		return v

	case *syntax.Assignment:
		v := in.eval(n.Value)
		if v == nil {
			return nil
		}
		in.env.Set(n.Name, v)
		return v

	case *syntax.Binary:
		return in.binary(n)

	case *syntax.If:
		cond, ok := in.cond(n.Cond)
		if !ok {
			return nil
		}
		if cond {
			return in.eval(n.Then)
		}
		if n.Else != nil {
			return in.eval(n.Else)
		}
		return nil

	case *syntax.While:
		return in.while(n)
	}
	return nil
}

// cond evaluates a condition. ok is false if the condition is absent or
// not a number.
func (in *Interpreter) cond(x syntax.Node) (truth, ok bool) {
	v := in.eval(x)
	if v == nil {
		return false, false
	}
	if !isNumeric(v) {
		in.report(OperandType, x.Pos(),
			"Semantic Error: Invalid operand types for operator '%s': %s and %s",
			syntax.GreaterThan.Text(), TypeName(v), TypeName(Int(0)))
		return false, false
	}
	return truthy(v), true
}

func (in *Interpreter) while(n *syntax.While) Value {
	var result Value
	for count := 0; ; {
		cond, ok := in.cond(n.Cond)
		if !ok {
			return nil
		}
		if !cond {
			return result
		}

		result = in.eval(n.Body)
		in.report(LoopResult, n.Pos(), "Result: %s", Format(result))

		count++
		if count >= MaxIterations {
			in.report(LoopLimit, n.Pos(),
				"Loop limit reached (%d iterations). Breaking loop to prevent infinite execution.", MaxIterations)
			return result
		}
	}
}

func (in *Interpreter) binary(n *syntax.Binary) Value {
	// Both sides run even if one is absent, so both report.
	x := in.eval(n.X)
	y := in.eval(n.Y)
	if x == nil || y == nil {
		return nil
	}

	if !isNumeric(x) || !isNumeric(y) {
		in.report(OperandType, n.Pos(),
			"Semantic Error: Invalid operand types for operator '%s': %s and %s",
			n.Op.Text(), TypeName(x), TypeName(y))
		return nil
	}

	xi, xInt := x.(Int)
	yi, yInt := y.(Int)
	bothInt := xInt && yInt
	xf, yf := toFloat(x), toFloat(y)

	switch n.Op {
	case syntax.Plus:
		if bothInt {
			if v, ok := addInt(xi, yi); ok {
				return v
			}
		}
		return Float(xf + yf)
	case syntax.Minus:
		if bothInt {
			if v, ok := subInt(xi, yi); ok {
				return v
			}
		}
		return Float(xf - yf)
	case syntax.Multiply:
		if bothInt {
			if v, ok := mulInt(xi, yi); ok {
				return v
			}
		}
		return Float(xf * yf)
	case syntax.Divide:
		if yf == 0 {
			in.report(DivisionByZero, n.Pos(), "Runtime Error: Division by zero")
			return nil
		}
		return Float(xf / yf)
	case syntax.LessThan, syntax.GreaterThan, syntax.LessEqual, syntax.GreaterEqual:
		return compare(n.Op, x, y)
	}

	in.report(UnknownOperator, n.Pos(), "Runtime Error: Unknown operator '%s'", n.Op.Text())
	return nil
}

// compare applies a comparison operator. Two Ints compare exactly;
// otherwise both sides compare as float64.
func compare(op syntax.Kind, x, y Value) Value {
	c := 0
	xi, xInt := x.(Int)
	yi, yInt := y.(Int)
	if xInt && yInt {
		switch {
		case xi < yi:
			c = -1
		case xi > yi:
			c = 1
		}
	} else {
		xf, yf := toFloat(x), toFloat(y)
		switch {
		case xf < yf:
			c = -1
		case xf > yf:
			c = 1
		case xf != yf:
			// NaN is unordered: every comparison is false.
			return Int(0)
		}
	}

	switch op {
	case syntax.LessThan:
		return boolValue(c < 0)
	case syntax.GreaterThan:
		return boolValue(c > 0)
	case syntax.LessEqual:
		return boolValue(c <= 0)
	}
	return boolValue(c >= 0)
}

func boolValue(b bool) Value {
	if b {
		return Int(1)
	}
	return Int(0)
}
