package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/you-not-fish/minic/internal/config"
	"github.com/you-not-fish/minic/internal/pipeline"
)

const demoSrc = `x = 10; y = 20; sum = x + y;
if sum > 25 then result = sum * 2 else result = sum / 2;
counter = 0;
while counter < 3 do counter = counter + 1;
`

func defaultOptions() options {
	return options{astFormat: "text", showEnv: true, envFormat: "table"}
}

func TestRunProgramOutput(t *testing.T) {
	code, out, errOut := captureOutput(t, func() int {
		return runSource(demoSrc, defaultOptions())
	})
	if code != 0 {
		t.Fatalf("exit=%d\nstderr:\n%s", code, errOut)
	}
	if errOut != "" {
		t.Fatalf("unexpected stderr:\n%s", errOut)
	}

	want := `Result: 1
Result: 2
Result: 3
Final Result: 3
Variables:
  NAME     VALUE  TYPE
  -------  -----  -----
  x        10     int
  y        20     int
  sum      30     int
  result   60     int
  counter  3      int
`
	if out != want {
		t.Errorf("output mismatch\ngot:\n%s\nwant:\n%s", out, want)
	}
}

func TestRunProgramWithoutValue(t *testing.T) {
	o := defaultOptions()
	o.showEnv = false
	code, out, _ := captureOutput(t, func() int {
		return runSource("x = 1 / 0", o)
	})
	if code != 0 {
		t.Fatalf("diagnostics must not fail the run, exit=%d", code)
	}
	if out != "Runtime Error: Division by zero\n" {
		t.Errorf("output = %q", out)
	}
}

func TestRunErrorsExitNonZero(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		header string
	}{
		{"lex", "x = #", "LEXICAL ERROR at 1:5"},
		{"parse", "x = ", "PARSE ERROR at 1:5"},
		{"check", "y = z + 1;", "SEMANTIC ERROR at 1:5: undefined variable 'z'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, errOut := captureOutput(t, func() int {
				return runSource(tt.src, defaultOptions())
			})
			if code != 1 {
				t.Errorf("exit = %d, want 1", code)
			}
			if out != "" {
				t.Errorf("unexpected stdout:\n%s", out)
			}
			if !strings.HasPrefix(errOut, tt.header) {
				t.Errorf("stderr = %q, want prefix %q", errOut, tt.header)
			}
		})
	}
}

func TestRunEmitTokens(t *testing.T) {
	o := defaultOptions()
	o.emitTokens = true
	// Tokens are printed even when the program would not parse.
	code, out, errOut := captureOutput(t, func() int {
		return runSource("x = (", o)
	})
	if code != 0 {
		t.Fatalf("exit=%d\nstderr:\n%s", code, errOut)
	}
	want := "1:1      Token(IDENTIFIER, x)\n" +
		"1:3      Token(ASSIGN, =)\n" +
		"1:5      Token(LPAREN, ()\n" +
		"1:6      Token(EOF, )\n"
	if out != want {
		t.Errorf("output mismatch\ngot:\n%s\nwant:\n%s", out, want)
	}
}

func TestRunEmitAST(t *testing.T) {
	o := defaultOptions()
	o.emitAST = true
	code, out, _ := captureOutput(t, func() int {
		return runSource("if z then 1", o)
	})
	if code != 0 {
		t.Fatalf("exit=%d", code)
	}
	// The tree is printed without checking names.
	want := "Block:\n  If:\n    Condition:\n      Var(z)\n    Then:\n      Number(1)\n"
	if out != want {
		t.Errorf("output mismatch\ngot:\n%s\nwant:\n%s", out, want)
	}

	o.astFormat = "json"
	code, out, _ = captureOutput(t, func() int {
		return runSource("x = 1", o)
	})
	if code != 0 {
		t.Fatalf("exit=%d", code)
	}
	if !strings.Contains(out, `"type": "Assign"`) || !strings.Contains(out, `"name": "x"`) {
		t.Errorf("JSON output missing assignment:\n%s", out)
	}
}

func TestRunEmitSymbols(t *testing.T) {
	o := defaultOptions()
	o.emitSymbols = true
	code, out, _ := captureOutput(t, func() int {
		return runSource("n = 1; s = 'a'; m = n; k = n + 1", o)
	})
	if code != 0 {
		t.Fatalf("exit=%d", code)
	}
	want := "n: int\ns: string\nm: int\nk: unknown\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestRunFile(t *testing.T) {
	filename := writeTempMiniFile(t, "a = 2; a * 21")
	o := defaultOptions()
	o.showEnv = false
	code, out, _ := captureOutput(t, func() int {
		return runFile(filename, o)
	})
	if code != 0 || out != "Final Result: 42\n" {
		t.Errorf("exit=%d output=%q", code, out)
	}

	code, _, errOut := captureOutput(t, func() int {
		return runFile(filepath.Join(t.TempDir(), "missing.mini"), o)
	})
	if code != 1 || !strings.HasPrefix(errOut, "error: ") {
		t.Errorf("missing file: exit=%d stderr=%q", code, errOut)
	}
}

func TestPrintEnvYAML(t *testing.T) {
	r, err := pipeline.Run(`x = 1; f = 7 / 2; s = 'a'; n = "5"`, pipeline.Config{})
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := printEnv(&buf, r.Env, "yaml"); err != nil {
		t.Fatalf("printEnv: %v", err)
	}
	want := "x: 1\nf: 3.5\ns: a\nn: \"5\"\n"
	if buf.String() != want {
		t.Errorf("yaml output = %q, want %q", buf.String(), want)
	}
}

func TestPrintEnvTableEmpty(t *testing.T) {
	r, err := pipeline.Run("1 + 1", pipeline.Config{})
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := printEnv(&buf, r.Env, "table"); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "Variables: (none)\n" {
		t.Errorf("output = %q", buf.String())
	}
}

func TestMergeOptions(t *testing.T) {
	cfg := config.Default()
	cfg.EmitAST = true
	cfg.ASTFormat = "json"
	cfg.ShowEnv = false

	o := mergeOptions(cfg, nil)
	if !o.emitAST || o.astFormat != "json" || o.showEnv {
		t.Errorf("config values not used: %+v", o)
	}

	oldFormat, oldEnv := *astFormat, *showEnv
	defer func() { *astFormat, *showEnv = oldFormat, oldEnv }()
	*astFormat = "text"
	*showEnv = true

	o = mergeOptions(cfg, map[string]bool{"ast-format": true, "env": true})
	if o.astFormat != "text" || !o.showEnv {
		t.Errorf("flags did not override config: %+v", o)
	}
	if !o.emitAST {
		t.Error("unset flag overrode config")
	}
}

func TestNeedsMore(t *testing.T) {
	tests := []struct {
		src  string
		want bool
	}{
		{"x = 1", false},
		{"if x then", true},
		{"while x < 3 do", true},
		{"(1 +", true},
		{"x =", true},
		{"if x then 1 else", true},
		{"1 = 2", false},
		{"x = )", false},
		{"x = #", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := needsMore(tt.src); got != tt.want {
			t.Errorf("needsMore(%q) = %v, want %v", tt.src, got, tt.want)
		}
	}
}

func TestSessionCommands(t *testing.T) {
	var out bytes.Buffer
	s := &session{out: &out, envFormat: "table"}

	if s.command(":tokens") {
		t.Fatal(":tokens ended the session")
	}
	if out.String() != "no tokens\n" {
		t.Errorf("before any entry: %q", out.String())
	}

	out.Reset()
	s.eval("x = 2; x * 3")
	if out.String() != "Final Result: 6\n" {
		t.Errorf("eval output = %q", out.String())
	}

	out.Reset()
	s.command(":symbols")
	if out.String() != "x: int\n" {
		t.Errorf(":symbols = %q", out.String())
	}

	out.Reset()
	s.command(":env")
	if !strings.Contains(out.String(), "x     2      int") {
		t.Errorf(":env = %q", out.String())
	}

	out.Reset()
	s.command(":ast")
	if !strings.HasPrefix(out.String(), "Block:\n  Assignment:\n") {
		t.Errorf(":ast = %q", out.String())
	}

	// Each entry starts from an empty environment.
	out.Reset()
	s.eval("x")
	if !strings.HasPrefix(out.String(), "SEMANTIC ERROR at 1:1: undefined variable 'x'") {
		t.Errorf("second entry saw the first one's variables: %q", out.String())
	}
	out.Reset()
	s.command(":env")
	if out.String() != "no environment\n" {
		t.Errorf(":env after failed entry = %q", out.String())
	}

	out.Reset()
	s.command(":bogus")
	if !strings.Contains(out.String(), "unknown command") {
		t.Errorf(":bogus = %q", out.String())
	}

	if !s.command(":quit") {
		t.Error(":quit did not end the session")
	}
}

func TestSessionLoad(t *testing.T) {
	filename := writeTempMiniFile(t, "while 1 do 0")
	var out bytes.Buffer
	s := &session{out: &out, envFormat: "table"}
	s.command(":load " + filename)

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != 12 {
		t.Fatalf("got %d lines, want 10 results, the limit and the value:\n%s", len(lines), out.String())
	}
	if lines[11] != "Final Result: 0" {
		t.Errorf("last line = %q", lines[11])
	}

	out.Reset()
	s.command(":load")
	if out.String() != "usage: :load <file>\n" {
		t.Errorf(":load without file = %q", out.String())
	}
}

func writeTempMiniFile(t *testing.T, src string) string {
	t.Helper()
	dir := t.TempDir()
	filename := filepath.Join(dir, "input.mini")
	if err := os.WriteFile(filename, []byte(src), 0o600); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return filename
}

func captureOutput(t *testing.T, fn func() int) (code int, stdout string, stderr string) {
	t.Helper()

	oldStdout := os.Stdout
	oldStderr := os.Stderr

	rOut, wOut, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe stdout: %v", err)
	}
	rErr, wErr, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe stderr: %v", err)
	}

	os.Stdout = wOut
	os.Stderr = wErr

	code = fn()

	_ = wOut.Close()
	_ = wErr.Close()
	os.Stdout = oldStdout
	os.Stderr = oldStderr

	outBytes, _ := io.ReadAll(rOut)
	errBytes, _ := io.ReadAll(rErr)
	_ = rOut.Close()
	_ = rErr.Close()

	return code, string(outBytes), string(errBytes)
}
