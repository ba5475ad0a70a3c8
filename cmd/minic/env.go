package main

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/you-not-fish/minic/internal/interp"
)

// printEnv writes the environment as a table or as a YAML mapping.
func printEnv(w io.Writer, env *interp.Env, format string) error {
	if format == "yaml" {
		return printEnvYAML(w, env)
	}
	printEnvTable(w, env)
	return nil
}

// printEnvTable prints one row per variable: name, value and type.
func printEnvTable(w io.Writer, env *interp.Env) {
	names := env.Names()
	if len(names) == 0 {
		fmt.Fprintln(w, "Variables: (none)")
		return
	}

	nameW, valW := len("NAME"), len("VALUE")
	vals := make([]string, len(names))
	for i, name := range names {
		v, _ := env.Lookup(name)
		vals[i] = interp.Format(v)
		nameW = max(nameW, len(name))
		valW = max(valW, len(vals[i]))
	}

	fmt.Fprintln(w, "Variables:")
	fmt.Fprintf(w, "  %-*s  %-*s  %s\n", nameW, "NAME", valW, "VALUE", "TYPE")
	fmt.Fprintf(w, "  %s  %s  %s\n", strings.Repeat("-", nameW), strings.Repeat("-", valW), strings.Repeat("-", 5))
	for i, name := range names {
		v, _ := env.Lookup(name)
		fmt.Fprintf(w, "  %-*s  %-*s  %s\n", nameW, name, valW, vals[i], interp.TypeName(v))
	}
}

// printEnvYAML encodes the environment as a mapping in binding order,
// with each value tagged by its type.
func printEnvYAML(w io.Writer, env *interp.Env) error {
	doc := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range env.Names() {
		v, _ := env.Lookup(name)
		doc.Content = append(doc.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: yamlTag(v), Value: interp.Format(v)},
		)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

func yamlTag(v interp.Value) string {
	switch v.(type) {
	case interp.Int:
		return "!!int"
	case interp.Float:
		return "!!float"
	}
	return "!!str"
}
