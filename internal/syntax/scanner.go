package syntax

import (
	"fmt"
	"strings"
)

// LexError reports a character at which no token pattern matches.
type LexError struct {
	Char   rune // offending character
	Offset int  // byte offset of Char in the source
	Pos    Pos
}

func (e *LexError) Error() string {
	return fmt.Sprintf("illegal character %q at position %d", e.Char, e.Offset)
}

// Scanner performs lexical analysis on minic source text.
type Scanner struct {
	source // embedded character reader

	// Current token info
	tok Token

	// First lexical error; once set, Next keeps returning EndOfInput.
	err *LexError

	// Literal accumulation
	litBuf strings.Builder
}

// NewScanner creates a new Scanner for src.
func NewScanner(src string) *Scanner {
	s := &Scanner{}
	s.source.init(src)
	return s
}

// Tokenize converts src into a token sequence ending with EndOfInput.
// It fails with a *LexError at the first character no pattern matches.
func Tokenize(src string) ([]Token, error) {
	s := NewScanner(src)
	var toks []Token
	for {
		s.Next()
		if s.err != nil {
			return nil, s.err
		}
		toks = append(toks, s.tok)
		if s.tok.Kind == EndOfInput {
			return toks, nil
		}
	}
}

// Next advances to the next token.
func (s *Scanner) Next() {
	if s.err != nil {
		s.tok = Token{Kind: EndOfInput, Pos: s.pos()}
		return
	}

redo:
	s.skipWhitespace()

	pos := s.pos()
	switch {
	case s.ch < 0:
		s.tok = Token{Kind: EndOfInput, Pos: pos}

	case s.ch == '/' && s.peek() == '/':
		s.skipLineComment()
		goto redo

	case s.ch == '"':
		s.scanString(pos)

	case s.ch == '\'':
		s.scanChar(pos)

	case isDigit(s.ch):
		s.scanNumber(pos)

	case isLetter(s.ch):
		s.scanIdent(pos)

	default:
		s.scanOperator(pos)
	}
}

// Token returns the current token.
func (s *Scanner) Token() Token {
	return s.tok
}

// Err returns the lexical error that stopped the scanner, or nil.
func (s *Scanner) Err() error {
	if s.err == nil {
		return nil
	}
	return s.err
}

// fail records a lexical error for the character at pos.
func (s *Scanner) fail(ch rune, pos Pos) {
	s.err = &LexError{Char: ch, Offset: pos.Offset(), Pos: pos}
	s.tok = Token{Kind: EndOfInput, Pos: pos}
}

// skipWhitespace skips all whitespace including newlines.
func (s *Scanner) skipWhitespace() {
	for isWhitespace(s.ch) {
		s.nextch()
	}
}

// skipLineComment skips a line comment (from // to end of line).
func (s *Scanner) skipLineComment() {
	for s.ch != '\n' && s.ch >= 0 {
		s.nextch()
	}
}

// startLit begins accumulating a literal.
func (s *Scanner) startLit() {
	s.litBuf.Reset()
	s.litBuf.WriteRune(s.ch)
}

// continueLit adds the current character to the literal being accumulated.
func (s *Scanner) continueLit() {
	s.litBuf.WriteRune(s.ch)
}

// stopLit ends literal accumulation and returns the accumulated string.
func (s *Scanner) stopLit() string {
	return s.litBuf.String()
}

// scanIdent scans an identifier, keyword, or boolean literal.
func (s *Scanner) scanIdent(pos Pos) {
	s.startLit()
	s.nextch()

	for isLetter(s.ch) || isDigit(s.ch) {
		s.continueLit()
		s.nextch()
	}

	lit := s.stopLit()
	switch lit {
	case "true":
		s.tok = Token{Kind: Boolean, Lit: "1", Pos: pos}
	case "false":
		s.tok = Token{Kind: Boolean, Lit: "0", Pos: pos}
	default:
		s.tok = Token{Kind: LookupKeyword(lit), Lit: lit, Pos: pos}
	}
}

// scanNumber scans an unsigned decimal number with an optional fraction.
// A '.' not followed by a digit is not part of the number.
func (s *Scanner) scanNumber(pos Pos) {
	s.litBuf.Reset()
	s.scanDecimalDigits()

	if s.ch == '.' && isDigit(s.peek()) {
		s.continueLit()
		s.nextch()
		s.scanDecimalDigits()
	}

	s.tok = Token{Kind: Number, Lit: s.litBuf.String(), Pos: pos}
}

// scanDecimalDigits scans decimal digits.
func (s *Scanner) scanDecimalDigits() {
	for isDigit(s.ch) {
		s.continueLit()
		s.nextch()
	}
}

// scanString scans a double-quoted string literal.
// There are no escape sequences; a newline or EOF before the closing
// quote means the opening quote does not start a token.
func (s *Scanner) scanString(pos Pos) {
	rest := s.buf[pos.Offset()+1:]
	end := strings.IndexAny(rest, "\"\n")
	if end < 0 || rest[end] != '"' {
		s.fail('"', pos)
		return
	}

	s.nextch() // skip opening "
	for s.ch != '"' {
		s.nextch()
	}
	s.nextch() // skip closing "

	s.tok = Token{Kind: String, Lit: rest[:end], Pos: pos}
}

// scanChar scans a single-quoted literal holding exactly one character.
func (s *Scanner) scanChar(pos Pos) {
	s.nextch() // skip opening '
	ch := s.ch
	if ch < 0 || ch == '\'' || ch == '\n' || s.peek() != '\'' {
		s.fail('\'', pos)
		return
	}
	s.nextch() // skip the character
	s.nextch() // skip closing '

	s.tok = Token{Kind: Char, Lit: string(ch), Pos: pos}
}

// scanOperator scans an operator or delimiter.
// Two-character operators are tried before their one-character prefixes.
func (s *Scanner) scanOperator(pos Pos) {
	ch := s.ch
	var kind Kind

	switch ch {
	case '<':
		kind = LessThan
		if s.peek() == '=' {
			s.nextch()
			kind = LessEqual
		}
	case '>':
		kind = GreaterThan
		if s.peek() == '=' {
			s.nextch()
			kind = GreaterEqual
		}
	case '=':
		kind = Assign
	case '+':
		kind = Plus
	case '-':
		kind = Minus
	case '*':
		kind = Multiply
	case '/':
		kind = Divide
	case '(':
		kind = LParen
	case ')':
		kind = RParen
	case ';':
		kind = Semicolon
	default:
		s.fail(ch, pos)
		return
	}

	s.nextch()
	s.tok = Token{Kind: kind, Lit: kind.Text(), Pos: pos}
}
