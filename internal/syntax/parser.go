package syntax

import "fmt"

// ParseError reports a grammar violation at a token.
type ParseError struct {
	Tok   Token  // offending token
	Index int    // index of Tok in the token sequence
	Msg   string // description
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Tok.Pos, e.Msg)
}

// Parser performs syntax analysis over a token sequence.
type Parser struct {
	toks []Token
	idx  int

	// Current token (cached from toks)
	tok Token

	// First error; parsing stops as soon as it is set.
	err *ParseError
}

// Parse parses a token sequence produced by Tokenize into a Block.
// It returns either a complete tree or a *ParseError, never both.
func Parse(toks []Token) (*Block, error) {
	p := NewParser(toks)
	b := p.Parse()
	if p.err != nil {
		return nil, p.err
	}
	return b, nil
}

// NewParser creates a new Parser over toks.
func NewParser(toks []Token) *Parser {
	p := &Parser{toks: toks, idx: -1}
	p.next() // prime the parser with first token
	return p
}

// ----------------------------------------------------------------------------
// Token navigation

// next advances to the next token. Past the end of the sequence the
// current token stays EndOfInput.
func (p *Parser) next() {
	if p.idx < len(p.toks) {
		p.idx++
	}
	if p.idx < len(p.toks) {
		p.tok = p.toks[p.idx]
		return
	}
	var pos Pos
	if n := len(p.toks); n > 0 {
		pos = p.toks[n-1].Pos
	}
	p.tok = Token{Kind: EndOfInput, Pos: pos}
}

// got reports whether the current token has kind k (and literal lit, if non-empty).
// If so, it consumes the token and returns true.
func (p *Parser) got(k Kind, lit string) bool {
	if p.tok.Is(k, lit) {
		p.next()
		return true
	}
	return false
}

// want consumes the current token if it matches. Otherwise, reports an error.
func (p *Parser) want(k Kind, lit string) {
	if !p.got(k, lit) {
		want := k.String()
		if lit != "" {
			want = fmt.Sprintf("%s %q", k, lit)
		}
		p.syntaxError("unexpected %s; expected %s", p.tok, want)
	}
}

// ----------------------------------------------------------------------------
// Error handling

// syntaxError records the first syntax error at the current token.
func (p *Parser) syntaxError(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	p.err = &ParseError{Tok: p.tok, Index: p.idx, Msg: fmt.Sprintf(format, args...)}
}

// failed reports whether parsing has stopped.
func (p *Parser) failed() bool {
	return p.err != nil
}

// Err returns the first error encountered, or nil if none.
func (p *Parser) Err() error {
	if p.err == nil {
		return nil
	}
	return p.err
}

// ----------------------------------------------------------------------------
// Parsing entry point

// Parse parses a complete program: statement*
// The result is nil if an error occurred.
func (p *Parser) Parse() *Block {
	b := &Block{}
	b.pos = p.tok.Pos

	for !p.failed() && p.tok.Kind != EndOfInput {
		if s := p.stmt(); s != nil {
			b.Stmts = append(b.Stmts, s)
		}
	}

	if p.failed() {
		return nil
	}
	return b
}

// ----------------------------------------------------------------------------
// Statements

// stmt parses: (ifStmt | whileStmt | expr) [';']
func (p *Parser) stmt() Node {
	var s Node
	switch {
	case p.tok.Is(Keyword, "if"):
		s = p.ifStmt()
	case p.tok.Is(Keyword, "while"):
		s = p.whileStmt()
	case p.tok.Kind == Keyword:
		p.syntaxError("unexpected keyword %q", p.tok.Lit)
		return nil
	default:
		s = p.expr()
	}

	if p.failed() {
		return nil
	}
	p.got(Semicolon, "")
	return s
}

// ifStmt parses: if expr then stmt [else (ifStmt | stmt)]
func (p *Parser) ifStmt() Node {
	s := &If{}
	s.pos = p.tok.Pos

	p.want(Keyword, "if")
	s.Cond = p.expr()
	p.want(Keyword, "then")
	if p.failed() {
		return nil
	}
	s.Then = p.stmt()

	if !p.failed() && p.got(Keyword, "else") {
		if p.tok.Is(Keyword, "if") {
			s.Else = p.ifStmt() // else if
		} else {
			s.Else = p.stmt()
		}
	}

	return s
}

// whileStmt parses: while expr do stmt
func (p *Parser) whileStmt() Node {
	s := &While{}
	s.pos = p.tok.Pos

	p.want(Keyword, "while")
	s.Cond = p.expr()
	p.want(Keyword, "do")
	if p.failed() {
		return nil
	}
	s.Body = p.stmt()

	return s
}

// ----------------------------------------------------------------------------
// Expressions

// expr parses: comparison ['=' expr]
// Assignment is right-associative and its target must be a bare Name.
func (p *Parser) expr() Node {
	x := p.comparison()
	if p.failed() || p.tok.Kind != Assign {
		return x
	}

	target, ok := x.(*Name)
	if !ok {
		p.syntaxError("invalid assignment target: cannot assign to %s", nodeName(x))
		return nil
	}
	p.next() // consume =

	a := &Assignment{Name: target.Value}
	a.pos = target.pos
	a.Value = p.expr()
	return a
}

// comparison parses: term (('<' | '>' | '<=' | '>=') term)*
func (p *Parser) comparison() Node {
	x := p.term()
	for !p.failed() && p.tok.Kind.IsComparison() {
		x = p.binary(x, p.term)
	}
	return x
}

// term parses: factor (('+' | '-') factor)*
func (p *Parser) term() Node {
	x := p.factor()
	for !p.failed() && (p.tok.Kind == Plus || p.tok.Kind == Minus) {
		x = p.binary(x, p.factor)
	}
	return x
}

// factor parses: unary (('*' | '/') unary)*
func (p *Parser) factor() Node {
	x := p.unary()
	for !p.failed() && (p.tok.Kind == Multiply || p.tok.Kind == Divide) {
		x = p.binary(x, p.unary)
	}
	return x
}

// binary consumes the current operator and builds x op operand().
// The node's position is that of its left operand.
func (p *Parser) binary(x Node, operand func() Node) Node {
	op := &Binary{Op: p.tok.Kind, X: x}
	op.pos = x.Pos()
	p.next() // consume operator
	op.Y = operand()
	return op
}

// unary parses: ('+' | '-') unary | atom
// The sign desugars to a subtraction or addition from zero.
func (p *Parser) unary() Node {
	if p.tok.Kind != Plus && p.tok.Kind != Minus {
		return p.atom()
	}

	op := &Binary{Op: p.tok.Kind}
	op.pos = p.tok.Pos
	op.X = NewNumberLit(p.tok.Pos, "0")
	p.next()
	op.Y = p.unary()
	return op
}

// atom parses: number | identifier | string | boolean | char | '(' expr ')'
func (p *Parser) atom() Node {
	tok := p.tok
	switch tok.Kind {
	case Number, Boolean:
		p.next()
		return NewNumberLit(tok.Pos, tok.Lit)

	case Identifier:
		p.next()
		return NewName(tok.Pos, tok.Lit)

	case String, Char:
		p.next()
		return NewStringLit(tok.Pos, tok.Lit)

	case LParen:
		p.next()
		x := p.expr()
		p.want(RParen, "")
		return x

	default:
		p.syntaxError("unexpected %s in expression", tok)
		return nil
	}
}

// nodeName returns a short description of n for error messages.
func nodeName(n Node) string {
	switch n.(type) {
	case *NumberLit:
		return "Number"
	case *StringLit:
		return "String"
	case *Name:
		return "Variable"
	case *Assignment:
		return "Assignment"
	case *Binary:
		return "BinaryOp"
	case *If:
		return "If"
	case *While:
		return "While"
	case *Block:
		return "Block"
	}
	return fmt.Sprintf("%T", n)
}
