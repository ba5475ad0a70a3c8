package e2e

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/you-not-fish/minic/internal/interp"
	"github.com/you-not-fish/minic/internal/pipeline"
)

var update = flag.Bool("update", false, "rewrite .golden files with the current output")

// TestE2E runs every .mini program in testdata/ through the full pipeline
// and compares what a user would see against the matching .golden file:
// diagnostics in order, the final value, then the environment, or the
// error snippet if a stage fails.
func TestE2E(t *testing.T) {
	testFiles, err := filepath.Glob("testdata/*.mini")
	if err != nil {
		t.Fatal(err)
	}
	if len(testFiles) == 0 {
		t.Fatal("no .mini test files found in testdata/")
	}

	for _, testFile := range testFiles {
		name := strings.TrimSuffix(filepath.Base(testFile), ".mini")
		t.Run(name, func(t *testing.T) {
			runE2ETest(t, testFile)
		})
	}
}

// runE2ETest runs a single end-to-end test.
func runE2ETest(t *testing.T, miniFile string) {
	t.Helper()

	src, err := os.ReadFile(miniFile)
	if err != nil {
		t.Fatalf("reading source: %v", err)
	}
	got := render(string(src))

	goldenFile := strings.TrimSuffix(miniFile, ".mini") + ".golden"
	if *update {
		if err := os.WriteFile(goldenFile, []byte(got), 0o644); err != nil {
			t.Fatalf("writing golden file: %v", err)
		}
		return
	}

	expected, err := os.ReadFile(goldenFile)
	if err != nil {
		t.Fatalf("reading golden file: %v", err)
	}
	if got != string(expected) {
		t.Errorf("output mismatch\n--- got ---\n%s\n--- want ---\n%s", got, expected)
	}
}

func render(src string) string {
	var out bytes.Buffer
	r, err := pipeline.Run(src, pipeline.Config{Output: &out})
	if err != nil {
		return pipeline.ErrorSnippet(err, src)
	}

	if r.Value != nil {
		fmt.Fprintf(&out, "Final Result: %s\n", interp.Format(r.Value))
	}
	for _, name := range r.Env.Names() {
		v, _ := r.Env.Lookup(name)
		fmt.Fprintf(&out, "%s = %s (%s)\n", name, interp.Format(v), interp.TypeName(v))
	}
	return out.String()
}

func TestDiagnosticsMatchOutput(t *testing.T) {
	src, err := os.ReadFile("testdata/loop_limit.mini")
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	r, err := pipeline.Run(string(src), pipeline.Config{Output: &out})
	if err != nil {
		t.Fatal(err)
	}

	var msgs []string
	for _, d := range r.Diagnostics {
		msgs = append(msgs, d.Msg)
	}
	if want := strings.Join(msgs, "\n") + "\n"; out.String() != want {
		t.Errorf("printed output differs from recorded diagnostics\nprinted:\n%s\nrecorded:\n%s", out.String(), want)
	}
	last := r.Diagnostics[len(r.Diagnostics)-1]
	if last.Kind != interp.LoopLimit {
		t.Errorf("last diagnostic kind = %v, want LoopLimit", last.Kind)
	}
}
