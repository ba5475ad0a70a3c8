// Package main implements the minic interpreter entry point.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/you-not-fish/minic/internal/config"
	"github.com/you-not-fish/minic/internal/interp"
	"github.com/you-not-fish/minic/internal/pipeline"
	"github.com/you-not-fish/minic/internal/syntax"
)

// Interpreter flags
var (
	emitTokens  = flag.Bool("emit-tokens", false, "Output token stream")
	emitAST     = flag.Bool("emit-ast", false, "Output AST")
	astFormat   = flag.String("ast-format", "text", "AST output format (text or json)")
	emitSymbols = flag.Bool("emit-symbols", false, "Output the checked symbol table")
	showEnv     = flag.Bool("env", true, "Print the final variable environment")
	envFormat   = flag.String("env-format", "table", "Environment output format (table or yaml)")
	evalSrc     = flag.String("e", "", "Evaluate the given source instead of a file")
	configPath  = flag.String("config", "", "Config file (default ./"+config.FileName+" if present)")
	trace       = flag.Bool("trace", false, "Output timing trace")
	version     = flag.Bool("version", false, "Print version")
)

// Version information
const Version = "0.1.0-dev"

// options are the effective settings for a run: the config file values,
// overridden by any flag given on the command line.
type options struct {
	emitTokens  bool
	emitAST     bool
	astFormat   string
	emitSymbols bool
	showEnv     bool
	envFormat   string
	trace       bool
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "minic %s\n\n", Version)
		fmt.Fprintf(os.Stderr, "Usage: minic [options] [file.mini]\n")
		fmt.Fprintf(os.Stderr, "       minic [options] -e 'source'\n")
		fmt.Fprintf(os.Stderr, "Without a file or -e, minic starts an interactive session.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if *version {
		fmt.Printf("minic version %s\n", Version)
		fmt.Printf("go version %s\n", runtime.Version())
		os.Exit(0)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	o := mergeOptions(cfg, set)

	args := flag.Args()
	switch {
	case set["e"]:
		os.Exit(runSource(*evalSrc, o))
	case len(args) > 0:
		os.Exit(runFile(args[0], o))
	default:
		os.Exit(runREPL(cfg))
	}
}

func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.LoadDefault(".")
}

// mergeOptions starts from cfg and applies every flag named in set.
func mergeOptions(cfg config.Config, set map[string]bool) options {
	o := options{
		emitTokens:  cfg.EmitTokens,
		emitAST:     cfg.EmitAST,
		astFormat:   cfg.ASTFormat,
		emitSymbols: cfg.EmitSymbols,
		showEnv:     cfg.ShowEnv,
		envFormat:   cfg.EnvFormat,
	}
	for name := range set {
		switch name {
		case "emit-tokens":
			o.emitTokens = *emitTokens
		case "emit-ast":
			o.emitAST = *emitAST
		case "ast-format":
			o.astFormat = *astFormat
		case "emit-symbols":
			o.emitSymbols = *emitSymbols
		case "env":
			o.showEnv = *showEnv
		case "env-format":
			o.envFormat = *envFormat
		}
	}
	o.trace = *trace
	return o
}

// runFile reads filename and runs it.
func runFile(filename string, o options) int {
	src, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return runSource(string(src), o)
}

// runSource dispatches on the emit options; without any it runs the
// program.
func runSource(src string, o options) int {
	switch {
	case o.emitTokens:
		return runEmitTokens(src, o)
	case o.emitAST:
		return runEmitAST(src, o)
	case o.emitSymbols:
		return runEmitSymbols(src, o)
	}
	return runProgram(src, o)
}

func pipelineConfig(o options, stopAfter string) pipeline.Config {
	cfg := pipeline.Config{Output: os.Stdout, StopAfter: stopAfter}
	if o.trace {
		cfg.Trace = os.Stderr
	}
	return cfg
}

// reportError prints err with a source snippet and returns the exit code.
func reportError(err error, src string) int {
	fmt.Fprint(os.Stderr, pipeline.ErrorSnippet(err, src))
	return 1
}

// runEmitTokens scans the source and prints all tokens with positions.
func runEmitTokens(src string, o options) int {
	r, err := pipeline.Run(src, pipelineConfig(o, pipeline.StageLex))
	if err != nil {
		return reportError(err, src)
	}
	syntax.FprintTokens(os.Stdout, r.Tokens)
	return 0
}

// runEmitAST parses the source and outputs the AST.
func runEmitAST(src string, o options) int {
	r, err := pipeline.Run(src, pipelineConfig(o, pipeline.StageParse))
	if err != nil {
		return reportError(err, src)
	}

	switch o.astFormat {
	case "json":
		if err := syntax.FprintJSON(os.Stdout, r.AST); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
	default:
		syntax.Fprint(os.Stdout, r.AST)
	}
	return 0
}

// runEmitSymbols checks the source and outputs the symbol table.
func runEmitSymbols(src string, o options) int {
	r, err := pipeline.Run(src, pipelineConfig(o, pipeline.StageCheck))
	if err != nil {
		return reportError(err, src)
	}
	fmt.Print(r.Symbols)
	return 0
}

// runProgram evaluates the source. Diagnostics are printed as they occur,
// followed by the final value and the environment.
func runProgram(src string, o options) int {
	r, err := pipeline.Run(src, pipelineConfig(o, ""))
	if err != nil {
		return reportError(err, src)
	}

	if r.Value != nil {
		fmt.Printf("Final Result: %s\n", interp.Format(r.Value))
	}
	if o.showEnv {
		if err := printEnv(os.Stdout, r.Env, o.envFormat); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
	}
	return 0
}
