package syntax

import "unicode/utf8"

// source is a character reader with position tracking over an in-memory string.
type source struct {
	buf string // source text

	// Position tracking
	line uint32 // current line number (1-based)
	col  uint32 // current column number (1-based, in characters)

	// Current state
	ch    rune // current character, -1 for EOF
	offs  int  // byte offset of the next character in buf
	chpos int  // byte offset of ch
}

// init prepares s to read src from the beginning.
func (s *source) init(src string) {
	s.buf = src
	s.line = 1
	s.col = 0 // incremented to 1 by first nextch()
	s.ch = -1 // sentinel: "before first char", prevents line update
	s.offs = 0
	s.nextch()
}

// nextch reads the next character from the source and updates position.
// Sets s.ch to -1 at EOF.
//
// Position tracking: (line, col) always refers to the position of s.ch after nextch() returns.
func (s *source) nextch() {
	if s.ch == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}

	s.chpos = s.offs
	if s.offs >= len(s.buf) {
		s.ch = -1
		return
	}

	r, width := utf8.DecodeRuneInString(s.buf[s.offs:])
	s.ch = r
	s.offs += width
}

// peek returns the character following s.ch without consuming it, or -1 at EOF.
func (s *source) peek() rune {
	if s.offs >= len(s.buf) {
		return -1
	}
	r, _ := utf8.DecodeRuneInString(s.buf[s.offs:])
	return r
}

// pos returns the position of the current character.
func (s *source) pos() Pos {
	return NewPos(s.chpos, s.line, s.col)
}

// Character classification helpers

// isLetter reports whether r is a letter (a-z, A-Z, or _).
func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || r == '_'
}

// isDigit reports whether r is a decimal digit (0-9).
func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isWhitespace reports whether r is a whitespace character.
func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}
