package syntax

import (
	"fmt"
	"strings"
)

// Snippet renders a caret-annotated excerpt of src for an error at pos:
//
//	PARSE ERROR at 2:5: unexpected Token(RPAREN, ))
//
//	   1 | x = 1
//	   2 | y = )
//	     |     ^
//
// At most one line of context is shown on each side. Line and column are
// clamped to the source, so an invalid pos still renders.
// Columns count characters, as Pos does.
func Snippet(src string, pos Pos, header, msg string) string {
	lines := strings.Split(src, "\n")
	line, col := int(pos.Line()), int(pos.Col())
	if line < 1 {
		line = 1
	}
	if col < 1 {
		col = 1
	}
	if line > len(lines) {
		line = len(lines)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s at %d:%d: %s\n\n", header, line, col, msg)
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lines[line-1])
	fmt.Fprintf(&b, "     | %s^\n", caretPad(lines[line-1], col))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}

// caretPad returns the padding that puts a caret under character col of
// line. Tabs before the caret are kept so the caret lines up however
// the terminal expands them.
func caretPad(line string, col int) string {
	var b strings.Builder
	n := 0
	for _, r := range line {
		if n >= col-1 {
			break
		}
		if r == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
		n++
	}
	for ; n < col-1; n++ {
		b.WriteByte(' ')
	}
	return b.String()
}
