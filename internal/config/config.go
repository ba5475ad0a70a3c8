// Package config loads minic settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the working directory.
const FileName = ".minic.yaml"

// Config holds the settings shared by the command line and the REPL.
type Config struct {
	Path string `yaml:"-"` // file the settings were read from, if any

	ASTFormat   string `yaml:"ast_format"` // text | json
	EmitTokens  bool   `yaml:"emit_tokens"`
	EmitAST     bool   `yaml:"emit_ast"`
	EmitSymbols bool   `yaml:"emit_symbols"`
	ShowEnv     bool   `yaml:"show_env"`
	EnvFormat   string `yaml:"env_format"` // table | yaml

	REPL REPLConfig `yaml:"repl"`
}

// REPLConfig holds interactive settings.
type REPLConfig struct {
	HistoryFile string `yaml:"history_file"`
	Prompt      string `yaml:"prompt"`
}

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{
		ASTFormat: "text",
		ShowEnv:   true,
		EnvFormat: "table",
		REPL: REPLConfig{
			HistoryFile: "~/.minic_history",
			Prompt:      "minic> ",
		},
	}
}

// ValidationError lists every invalid setting in a file.
type ValidationError struct {
	Path   string
	Issues []string
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "config: %s is invalid:", e.Path)
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

// Load reads settings from path. Keys missing from the file keep their
// default values; unknown keys are an error. An empty file yields the
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, fmt.Errorf("config: empty path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return cfg, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return cfg, fmt.Errorf("config: open %s: %w", absPath, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Default(), fmt.Errorf("config: parse %s: %w", absPath, err)
	}
	cfg.Path = absPath

	if err := cfg.validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// LoadDefault loads FileName from dir if it exists, and returns the
// defaults otherwise.
func LoadDefault(dir string) (Config, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("config: stat %s: %w", path, err)
	}
	return Load(path)
}

func (c *Config) validate() error {
	errs := ValidationError{Path: c.Path}
	switch c.ASTFormat {
	case "text", "json":
	default:
		errs.Issues = append(errs.Issues, fmt.Sprintf("ast_format must be text or json, got %q", c.ASTFormat))
	}
	switch c.EnvFormat {
	case "table", "yaml":
	default:
		errs.Issues = append(errs.Issues, fmt.Sprintf("env_format must be table or yaml, got %q", c.EnvFormat))
	}
	if c.REPL.Prompt == "" {
		errs.Issues = append(errs.Issues, "repl.prompt must not be empty")
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

// HistoryPath returns the REPL history file with a leading ~ expanded.
// It returns "" if history is disabled or the home directory is unknown.
func (c *Config) HistoryPath() string {
	p := c.REPL.HistoryFile
	if p == "~" || strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		return filepath.Join(home, strings.TrimPrefix(p[1:], "/"))
	}
	return p
}
