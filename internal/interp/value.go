// Package interp evaluates minic programs by walking the syntax tree.
//
// Evaluation never fails as a whole. Problems found while running are
// recorded as Diagnostics and make the enclosing expression evaluate to
// nil, the absent value.
package interp

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Value is a runtime value: Int, Float or Str.
// A nil Value means absent.
type Value interface {
	String() string
	aValue()
}

type (
	Int   int64
	Float float64
	Str   string
)

func (Int) aValue()   {}
func (Float) aValue() {}
func (Str) aValue()   {}

func (v Int) String() string   { return strconv.FormatInt(int64(v), 10) }
func (v Float) String() string { return formatFloat(float64(v)) }
func (v Str) String() string   { return string(v) }

// Format renders v for display; absent renders as <none>.
func Format(v Value) string {
	if v == nil {
		return "<none>"
	}
	return v.String()
}

// TypeName returns the display name of v's type.
func TypeName(v Value) string {
	switch v.(type) {
	case Int:
		return "int"
	case Float:
		return "float"
	case Str:
		return "str"
	}
	return "none"
}

// formatFloat prints the shortest representation that reads back as f.
// Integral values keep a trailing ".0"; very large and very small
// magnitudes use exponent form.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// numberValue converts a number literal. Integral values that fit in
// an int64 become Int, everything else Float. A literal too large for a
// float64 becomes +Inf.
func numberValue(lit string) (Value, bool) {
	if i, err := strconv.ParseInt(lit, 10, 64); err == nil {
		return Int(i), true
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, false
	}
	if f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 {
		return Int(int64(f)), true
	}
	return Float(f), true
}

func isNumeric(v Value) bool {
	switch v.(type) {
	case Int, Float:
		return true
	}
	return false
}

func toFloat(v Value) float64 {
	switch v := v.(type) {
	case Int:
		return float64(v)
	case Float:
		return float64(v)
	}
	return 0
}

// truthy reports whether v is greater than zero.
func truthy(v Value) bool {
	switch v := v.(type) {
	case Int:
		return v > 0
	case Float:
		return v > 0
	}
	return false
}

// addInt returns x+y, and false if the sum overflows an int64.
func addInt(x, y Int) (Int, bool) {
	s := x + y
	return s, (y >= 0) == (s >= x)
}

// subInt returns x-y, and false if the difference overflows an int64.
func subInt(x, y Int) (Int, bool) {
	d := x - y
	return d, (y >= 0) == (d <= x)
}

// mulInt returns x*y, and false if the product overflows an int64.
func mulInt(x, y Int) (Int, bool) {
	if x == 0 || y == 0 {
		return 0, true
	}
	if (x == -1 && y == math.MinInt64) || (y == -1 && x == math.MinInt64) {
		return 0, false
	}
	p := x * y
	return p, p/y == x
}
