// Package pipeline runs a minic program through every stage: lexing,
// parsing, checking and evaluation.
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/you-not-fish/minic/internal/interp"
	"github.com/you-not-fish/minic/internal/syntax"
	"github.com/you-not-fish/minic/internal/types"
	"github.com/you-not-fish/minic/internal/types2"
)

// Stage names, in execution order.
const (
	StageLex   = "lex"
	StageParse = "parse"
	StageCheck = "check"
	StageEval  = "eval"
)

// Stage is a single step of a run. It reads what earlier stages stored
// in the Result and adds its own output.
type Stage struct {
	Name string
	Fn   func(r *Result, cfg Config) error
}

// Stages is the full pipeline.
var Stages = []Stage{
	{Name: StageLex, Fn: lex},
	{Name: StageParse, Fn: parse},
	{Name: StageCheck, Fn: check},
	{Name: StageEval, Fn: eval},
}

// Config controls a run.
type Config struct {
	Trace     io.Writer // if set, receives one timing line per stage
	Output    io.Writer // if set, receives diagnostic lines as they happen
	StopAfter string    // stage name to stop after ("" runs everything)
}

// Result holds everything a run produced. Fields for stages that did not
// run are zero.
type Result struct {
	Source      string
	Tokens      []syntax.Token
	AST         *syntax.Block
	Symbols     *types.SymbolTable
	Value       interp.Value // nil if absent
	Diagnostics []interp.Diagnostic
	Env         *interp.Env
}

// Run executes the stages on src in order. The first stage that fails
// stops the run; its error is returned as a *StageError together with
// the partial Result.
func Run(src string, cfg Config) (*Result, error) {
	return RunStages(src, Stages, cfg)
}

// RunStages is like Run with an explicit stage list.
func RunStages(src string, stages []Stage, cfg Config) (*Result, error) {
	r := &Result{Source: src}
	for _, s := range stages {
		start := time.Now()
		err := s.Fn(r, cfg)
		if cfg.Trace != nil {
			fmt.Fprintf(cfg.Trace, "--- %s: %v ---\n", s.Name, time.Since(start))
		}
		if err != nil {
			return r, &StageError{Stage: s.Name, Err: err}
		}
		if cfg.StopAfter == s.Name {
			break
		}
	}
	return r, nil
}

func lex(r *Result, _ Config) error {
	toks, err := syntax.Tokenize(r.Source)
	if err != nil {
		return err
	}
	r.Tokens = toks
	return nil
}

func parse(r *Result, _ Config) error {
	root, err := syntax.Parse(r.Tokens)
	if err != nil {
		return err
	}
	r.AST = root
	return nil
}

func check(r *Result, _ Config) error {
	symbols, err := types2.Check(r.AST, nil)
	r.Symbols = symbols
	return err
}

func eval(r *Result, cfg Config) error {
	var opts []interp.Option
	if cfg.Output != nil {
		opts = append(opts, interp.WithOutput(cfg.Output))
	}
	in := interp.New(r.Symbols, opts...)
	r.Value = in.Eval(r.AST)
	r.Diagnostics = in.Diagnostics()
	r.Env = in.Env()
	return nil
}
