package syntax

// ----------------------------------------------------------------------------
// Interfaces
//
// The node set is closed: NumberLit, StringLit, Name, Assignment, Binary, If, While
// and Block are the only implementations of Node. Every operation over the
// tree switches on these eight types.

// Node is the interface implemented by all AST nodes.
type Node interface {
	Pos() Pos // position of first character belonging to the node
	aNode()   // marker method to restrict implementations to this package
}

// ----------------------------------------------------------------------------
// Base node type

// node is the base struct embedded in all AST nodes.
type node struct {
	pos Pos
}

func (n *node) Pos() Pos { return n.pos }
func (n *node) aNode()   {}

// ----------------------------------------------------------------------------
// Leaves

// NumberLit represents a numeric literal. Boolean literals are desugared
// to NumberLit with Value "1" or "0".
type NumberLit struct {
	node
	Value string // literal text
}

// StringLit represents a string literal or a single-character literal.
type StringLit struct {
	node
	Value string // literal text without quotes
}

// Name represents a reference to a variable.
type Name struct {
	node
	Value string // variable name
}

// ----------------------------------------------------------------------------
// Expressions

// Assignment binds the value of Value to the variable Name: Name = Value
type Assignment struct {
	node
	Name  string // target variable
	Value Node   // right-hand side
}

// Binary represents a binary operation: X Op Y
// Unary +x and -x are represented as 0 + x and 0 - x.
type Binary struct {
	node
	Op Kind // Plus, Minus, Multiply, Divide, LessThan, GreaterThan, LessEqual, GreaterEqual
	X  Node // left operand
	Y  Node // right operand
}

// ----------------------------------------------------------------------------
// Statements

// If represents: if Cond then Then [else Else]
type If struct {
	node
	Cond Node // condition
	Then Node // then branch
	Else Node // else branch (nil if absent)
}

// While represents: while Cond do Body
type While struct {
	node
	Cond Node // condition
	Body Node // loop body
}

// Block is an ordered sequence of statements. The root of every
// parsed program is a Block.
type Block struct {
	node
	Stmts []Node
}

// ----------------------------------------------------------------------------
// Constructors
//
// Constructors are used by tests and tools that build trees directly.

// NewNumberLit returns a NumberLit node at pos.
func NewNumberLit(pos Pos, value string) *NumberLit {
	n := &NumberLit{Value: value}
	n.pos = pos
	return n
}

// NewStringLit returns a StringLit node at pos.
func NewStringLit(pos Pos, value string) *StringLit {
	n := &StringLit{Value: value}
	n.pos = pos
	return n
}

// NewName returns a Name node at pos.
func NewName(pos Pos, value string) *Name {
	n := &Name{Value: value}
	n.pos = pos
	return n
}

// NewAssignment returns an Assignment node at pos.
func NewAssignment(pos Pos, name string, value Node) *Assignment {
	n := &Assignment{Name: name, Value: value}
	n.pos = pos
	return n
}

// NewBinary returns a Binary node at pos.
func NewBinary(pos Pos, op Kind, x, y Node) *Binary {
	n := &Binary{Op: op, X: x, Y: y}
	n.pos = pos
	return n
}

// NewIf returns an If node at pos. els may be nil.
func NewIf(pos Pos, cond, then, els Node) *If {
	n := &If{Cond: cond, Then: then, Else: els}
	n.pos = pos
	return n
}

// NewWhile returns a While node at pos.
func NewWhile(pos Pos, cond, body Node) *While {
	n := &While{Cond: cond, Body: body}
	n.pos = pos
	return n
}

// NewBlock returns a Block node at pos.
func NewBlock(pos Pos, stmts ...Node) *Block {
	n := &Block{Stmts: stmts}
	n.pos = pos
	return n
}
