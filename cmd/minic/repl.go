package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/you-not-fish/minic/internal/config"
	"github.com/you-not-fish/minic/internal/interp"
	"github.com/you-not-fish/minic/internal/pipeline"
	"github.com/you-not-fish/minic/internal/syntax"
)

const banner = "minic " + Version + " (type :help for help, :quit to exit)"

const promptCont = "...    "

const helpText = `Commands:
  :help           show this help
  :quit           leave the session
  :load <file>    run a file
  :tokens         show the tokens of the last entry
  :ast            show the syntax tree of the last entry
  :env            show the variables of the last entry
  :symbols        show the inferred kinds of the last entry

Every entry runs as a new program with an empty environment.
An entry that ends inside a statement continues on the next line.
`

// session holds the state shown by REPL commands. Programs themselves
// share nothing between entries.
type session struct {
	out       io.Writer
	envFormat string
	last      *pipeline.Result
}

func runREPL(cfg config.Config) int {
	fmt.Println(banner)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := cfg.HistoryPath()
	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
	}

	s := &session{out: os.Stdout, envFormat: cfg.EnvFormat}
	for {
		code, ok := readByParseProbe(ln, cfg.REPL.Prompt, promptCont)
		if !ok {
			fmt.Println()
			break
		}
		if strings.TrimSpace(code) == "" {
			continue
		}

		if strings.HasPrefix(strings.TrimSpace(code), ":") {
			if done := s.command(code); done {
				break
			}
			continue
		}

		s.eval(code)
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
	}

	if histPath != "" {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}
	return 0
}

// eval runs one entry and prints its diagnostics and value.
func (s *session) eval(src string) {
	r, err := pipeline.Run(src, pipeline.Config{Output: s.out})
	s.last = r
	if err != nil {
		fmt.Fprint(s.out, pipeline.ErrorSnippet(err, src))
		return
	}
	if r.Value != nil {
		fmt.Fprintf(s.out, "Final Result: %s\n", interp.Format(r.Value))
	}
}

// command handles a line starting with ':' and reports whether the
// session should end.
func (s *session) command(line string) (exit bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	switch strings.ToLower(fields[0]) {
	case ":help":
		fmt.Fprint(s.out, helpText)

	case ":quit", ":exit":
		return true

	case ":load":
		if len(fields) < 2 {
			fmt.Fprintln(s.out, "usage: :load <file>")
			return false
		}
		src, err := os.ReadFile(fields[1])
		if err != nil {
			fmt.Fprintf(s.out, "cannot read %s: %v\n", fields[1], err)
			return false
		}
		s.eval(string(src))

	case ":tokens":
		if s.last == nil || s.last.Tokens == nil {
			fmt.Fprintln(s.out, "no tokens")
			return false
		}
		syntax.FprintTokens(s.out, s.last.Tokens)

	case ":ast":
		if s.last == nil || s.last.AST == nil {
			fmt.Fprintln(s.out, "no syntax tree")
			return false
		}
		syntax.Fprint(s.out, s.last.AST)

	case ":env":
		if s.last == nil || s.last.Env == nil {
			fmt.Fprintln(s.out, "no environment")
			return false
		}
		if err := printEnv(s.out, s.last.Env, s.envFormat); err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
		}

	case ":symbols":
		if s.last == nil || s.last.Symbols == nil {
			fmt.Fprintln(s.out, "no symbols")
			return false
		}
		fmt.Fprint(s.out, s.last.Symbols)

	default:
		fmt.Fprintln(s.out, "unknown command. Type :help for help.")
	}
	return false
}

// readByParseProbe reads lines until the buffer parses, or fails for a
// reason more input cannot fix.
func readByParseProbe(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder

	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt(prompt)
		} else {
			line, err = ln.Prompt(cont)
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			// Ctrl+C aborts the current input.
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.HasPrefix(strings.TrimSpace(src), ":") || !needsMore(src) {
			return src, true
		}
	}
}

// needsMore reports whether src fails to parse only because it ends too
// early, as in "if x then" or "(1 +".
func needsMore(src string) bool {
	toks, err := syntax.Tokenize(src)
	if err != nil {
		return false
	}
	_, err = syntax.Parse(toks)
	var perr *syntax.ParseError
	return errors.As(err, &perr) && perr.Tok.Kind == syntax.EndOfInput
}
