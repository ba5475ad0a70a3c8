package pipeline

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/you-not-fish/minic/internal/interp"
	"github.com/you-not-fish/minic/internal/syntax"
	"github.com/you-not-fish/minic/internal/types"
	"github.com/you-not-fish/minic/internal/types2"
)

func TestRunProgram(t *testing.T) {
	r, err := Run("x = 5; y = x + 1;", Config{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if r.Value != interp.Int(6) {
		t.Errorf("Value = %v, want 6", r.Value)
	}
	want := map[string]interp.Value{"x": interp.Int(5), "y": interp.Int(6)}
	if !reflect.DeepEqual(r.Env.Vars(), want) {
		t.Errorf("Env = %v, want %v", r.Env.Vars(), want)
	}
	if kind, _ := r.Symbols.Lookup("y"); kind != types.Unknown {
		t.Errorf("kind of y = %v, want unknown", kind)
	}
	if len(r.Tokens) != 11 {
		t.Errorf("got %d tokens, want 11", len(r.Tokens))
	}
	if len(r.AST.Stmts) != 2 {
		t.Errorf("got %d statements, want 2", len(r.AST.Stmts))
	}
}

func TestRunStageErrors(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		stage  string
		target interface{}
	}{
		{"lex", "x = 1 $", StageLex, new(*syntax.LexError)},
		{"parse", "1 = x", StageParse, new(*syntax.ParseError)},
		{"check", "y = z + 1;", StageCheck, new(*types2.SemanticError)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			r, err := Run(tt.src, Config{Output: &out})
			var se *StageError
			if !errors.As(err, &se) {
				t.Fatalf("error %v is not a *StageError", err)
			}
			if se.Stage != tt.stage {
				t.Errorf("Stage = %q, want %q", se.Stage, tt.stage)
			}
			if !errors.As(err, tt.target) {
				t.Errorf("errors.As(%T) failed for %v", tt.target, err)
			}
			if r == nil {
				t.Fatal("partial result is nil")
			}
			if r.Env != nil || r.Value != nil {
				t.Error("evaluation ran after a failed stage")
			}
			if out.Len() != 0 {
				t.Errorf("unexpected output %q", out.String())
			}
		})
	}
}

func TestRunUndefinedFailsBeforeEvaluation(t *testing.T) {
	r, err := Run("a = 1; y = z + 1;", Config{})
	if err == nil {
		t.Fatal("expected an error")
	}
	if r.Tokens == nil || r.AST == nil {
		t.Error("earlier stage output missing from partial result")
	}
	if r.Env != nil {
		t.Error("evaluation ran")
	}
}

func TestRunDiagnosticsAreNotErrors(t *testing.T) {
	var out bytes.Buffer
	r, err := Run("x = 1 / 0; y = 2", Config{Output: &out})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if r.Value != interp.Int(2) {
		t.Errorf("Value = %v, want 2", r.Value)
	}
	if len(r.Diagnostics) != 1 || r.Diagnostics[0].Kind != interp.DivisionByZero {
		t.Errorf("Diagnostics = %v", r.Diagnostics)
	}
	if out.String() != "Runtime Error: Division by zero\n" {
		t.Errorf("output = %q", out.String())
	}
}

func TestRunStopAfter(t *testing.T) {
	r, err := Run("x = 1 +", Config{StopAfter: StageLex})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(r.Tokens) != 5 || r.AST != nil {
		t.Errorf("tokens = %v, ast = %v", r.Tokens, r.AST)
	}
}

func TestRunTrace(t *testing.T) {
	var trace bytes.Buffer
	if _, err := Run("1", Config{Trace: &trace}); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{StageLex, StageParse, StageCheck, StageEval} {
		if !strings.Contains(trace.String(), "--- "+name+": ") {
			t.Errorf("trace missing %s:\n%s", name, trace.String())
		}
	}
}

func TestRunStagesOrder(t *testing.T) {
	var order []string
	stages := []Stage{
		{Name: "first", Fn: func(*Result, Config) error { order = append(order, "first"); return nil }},
		{Name: "second", Fn: func(*Result, Config) error { order = append(order, "second"); return errors.New("boom") }},
		{Name: "third", Fn: func(*Result, Config) error { order = append(order, "third"); return nil }},
	}
	_, err := RunStages("", stages, Config{})
	if err == nil || err.Error() != "second: boom" {
		t.Errorf("err = %v, want second: boom", err)
	}
	if !reflect.DeepEqual(order, []string{"first", "second"}) {
		t.Errorf("order = %v", order)
	}
}

func TestRunIndependentRuns(t *testing.T) {
	a, _ := Run("x = 1", Config{})
	b, _ := Run("y = 2", Config{})
	if _, ok := b.Env.Lookup("x"); ok {
		t.Error("environment shared between runs")
	}
	if _, ok := b.Symbols.Lookup("x"); ok {
		t.Error("symbol table shared between runs")
	}
	if a.Env.Len() != 1 {
		t.Errorf("first run env size = %d", a.Env.Len())
	}
}

func TestErrorSnippet(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			"lex",
			"x = 1\ny = @",
			"LEXICAL ERROR at 2:5: illegal character '@' at position 10\n\n" +
				"   1 | x = 1\n" +
				"   2 | y = @\n" +
				"     |     ^\n",
		},
		{
			"parse",
			"x = (1 + 2",
			"PARSE ERROR at 1:11: unexpected Token(EOF, ); expected RPAREN\n\n" +
				"   1 | x = (1 + 2\n" +
				"     |           ^\n",
		},
		{
			"check",
			"a = 1\nb = a + c\nd = 2",
			"SEMANTIC ERROR at 2:9: undefined variable 'c'\n\n" +
				"   1 | a = 1\n" +
				"   2 | b = a + c\n" +
				"     |         ^\n" +
				"   3 | d = 2\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Run(tt.src, Config{})
			if err == nil {
				t.Fatal("expected an error")
			}
			if got := ErrorSnippet(err, tt.src); got != tt.want {
				t.Errorf("ErrorSnippet mismatch\ngot:\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}

	if got := ErrorSnippet(errors.New("plain"), ""); got != "plain\n" {
		t.Errorf("plain error snippet = %q", got)
	}
	if got := ErrorSnippet(nil, ""); got != "" {
		t.Errorf("nil error snippet = %q", got)
	}
}
