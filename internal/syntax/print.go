package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes an indented tree representation of the AST to w.
// Child roles are labelled (Condition:, Then:, Else:, Body:, Left:, Right:, Value:).
func Fprint(w io.Writer, node Node) {
	p := &printer{w: w}
	p.print(node)
}

// Sprint returns the Fprint rendering of node as a string.
func Sprint(node Node) string {
	var b strings.Builder
	Fprint(&b, node)
	return b.String()
}

type printer struct {
	w      io.Writer
	indent int
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s%s", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

// child prints a labelled child one level deeper.
func (p *printer) child(label string, n Node) {
	p.printf("%s:\n", label)
	p.indent++
	p.print(n)
	p.indent--
}

func (p *printer) print(node Node) {
	if node == nil {
		return
	}

	switch n := node.(type) {
	case *Block:
		p.printf("Block:\n")
		p.indent++
		for _, s := range n.Stmts {
			p.print(s)
		}
		p.indent--

	case *If:
		p.printf("If:\n")
		p.indent++
		p.child("Condition", n.Cond)
		p.child("Then", n.Then)
		if n.Else != nil {
			p.child("Else", n.Else)
		}
		p.indent--

	case *While:
		p.printf("While:\n")
		p.indent++
		p.child("Condition", n.Cond)
		p.child("Body", n.Body)
		p.indent--

	case *Assignment:
		p.printf("Assignment:\n")
		p.indent++
		p.printf("Variable: %s\n", n.Name)
		p.child("Value", n.Value)
		p.indent--

	case *Binary:
		p.printf("BinaryOp (%s):\n", n.Op.Text())
		p.indent++
		p.child("Left", n.X)
		p.child("Right", n.Y)
		p.indent--

	case *NumberLit:
		p.printf("Number(%s)\n", n.Value)

	case *StringLit:
		p.printf("String(%q)\n", n.Value)

	case *Name:
		p.printf("Var(%s)\n", n.Value)

	default:
		p.printf("%T\n", n)
	}
}

// FprintTokens writes one line per token to w.
func FprintTokens(w io.Writer, toks []Token) {
	for _, t := range toks {
		fmt.Fprintf(w, "%-8s %s\n", t.Pos, t)
	}
}

// ----------------------------------------------------------------------------
// Source rendering

// Format renders node back to source text that parses to a structurally
// equal tree. Binary operations are fully parenthesized.
func Format(node Node) string {
	var b strings.Builder
	formatStmt(&b, node)
	return b.String()
}

func formatStmt(b *strings.Builder, node Node) {
	switch n := node.(type) {
	case *Block:
		for i, s := range n.Stmts {
			if i > 0 {
				b.WriteByte('\n')
			}
			formatStmt(b, s)
			b.WriteByte(';')
		}

	case *If:
		b.WriteString("if ")
		formatExpr(b, n.Cond)
		b.WriteString(" then ")
		formatStmt(b, n.Then)
		if n.Else != nil {
			b.WriteString(" else ")
			formatStmt(b, n.Else)
		}

	case *While:
		b.WriteString("while ")
		formatExpr(b, n.Cond)
		b.WriteString(" do ")
		formatStmt(b, n.Body)

	default:
		formatExpr(b, n)
	}
}

func formatExpr(b *strings.Builder, node Node) {
	switch n := node.(type) {
	case *NumberLit:
		b.WriteString(n.Value)

	case *StringLit:
		// A double quote can only have come from a char literal.
		if strings.Contains(n.Value, `"`) {
			fmt.Fprintf(b, "'%s'", n.Value)
		} else {
			fmt.Fprintf(b, "\"%s\"", n.Value)
		}

	case *Name:
		b.WriteString(n.Value)

	case *Assignment:
		b.WriteString(n.Name)
		b.WriteString(" = ")
		formatExpr(b, n.Value)

	case *Binary:
		b.WriteByte('(')
		formatOperand(b, n.X)
		fmt.Fprintf(b, " %s ", n.Op.Text())
		formatOperand(b, n.Y)
		b.WriteByte(')')
	}
}

// formatOperand parenthesizes assignments used as operands.
func formatOperand(b *strings.Builder, node Node) {
	if _, ok := node.(*Assignment); ok {
		b.WriteByte('(')
		formatExpr(b, node)
		b.WriteByte(')')
		return
	}
	formatExpr(b, node)
}
