package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	templateloader "github.com/clinsafe/hazlog/internal/template/loader"
	"github.com/clinsafe/hazlog/pkg/generator"
	"github.com/clinsafe/hazlog/pkg/model"
	pkgtemplate "github.com/clinsafe/hazlog/pkg/template"
)

const runnerTemplate = `### Hazard name

A short name for the hazard.

### Hazard type

[multiselect]
[hazard-types]
`

const runnerTaxonomy = "- WrongPatient\n- DataLoss\n"

func newRunnerGenerator(t *testing.T) *generator.Generator {
	t.Helper()

	fsys := fstest.MapFS{
		"template.md": &fstest.MapFile{Data: []byte(runnerTemplate)},
		"types.md":    &fstest.MapFile{Data: []byte(runnerTaxonomy)},
	}
	gen, err := generator.New(context.Background(), generator.Config{
		Template: pkgtemplate.SourceFromFS("template.md"),
		Taxonomy: pkgtemplate.SourceFromFS("types.md"),
	}, generator.WithLoader(
		templateloader.New(pkgtemplate.NewLoaderOptions(pkgtemplate.WithFileSystem(fsys))),
	))
	if err != nil {
		t.Fatalf("construct generator: %v", err)
	}
	return gen
}

func TestRunnerGeneratesBatch(t *testing.T) {
	gen := newRunnerGenerator(t)
	dir := t.TempDir()

	runner, err := NewRunner(gen, dir)
	if err != nil {
		t.Fatalf("construct runner: %v", err)
	}

	paths, err := runner.Run(context.Background(), []HazardRecord{
		{HazardID: "HAZ-010", Values: model.Values{"Hazard name": "Wrong patient selected"}},
		{Values: model.Values{"Hazard name": "Stale observations shown"}},
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	want := []string{
		filepath.Join(dir, "HAZ-010.md"),
		filepath.Join(dir, "HAZ-002.md"),
	}
	if diff := cmp.Diff(want, paths); diff != "" {
		t.Fatalf("paths mismatch (-want +got):\n%s", diff)
	}

	data, err := os.ReadFile(paths[1])
	if err != nil {
		t.Fatalf("read second draft: %v", err)
	}
	if !strings.Contains(string(data), "# HAZ-002") {
		t.Fatalf("fallback identifier missing from document:\n%s", data)
	}
}

func TestRunnerValidation(t *testing.T) {
	gen := newRunnerGenerator(t)

	if _, err := NewRunner(nil, t.TempDir()); err == nil {
		t.Fatalf("expected error for nil generator")
	}
	if _, err := NewRunner(gen, ""); err == nil {
		t.Fatalf("expected error for empty output directory")
	}

	runner, err := NewRunner(gen, t.TempDir())
	if err != nil {
		t.Fatalf("construct runner: %v", err)
	}
	if _, err := runner.Run(context.Background(), nil); err == nil {
		t.Fatalf("expected error for empty batch")
	}
}

func TestRunnerRejectsPathEscapingIDs(t *testing.T) {
	gen := newRunnerGenerator(t)
	dir := t.TempDir()

	runner, err := NewRunner(gen, dir)
	if err != nil {
		t.Fatalf("construct runner: %v", err)
	}

	for _, id := range []string{"../escape", "a/b", `a\b`, ".."} {
		_, err := runner.Run(context.Background(), []HazardRecord{
			{HazardID: id, Values: model.Values{"Hazard name": "x"}},
		})
		if err == nil {
			t.Fatalf("expected error for hazard id %q", id)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read output dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("rejected records still wrote %d files", len(entries))
	}
}
