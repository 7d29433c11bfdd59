package pipeline

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/clinsafe/hazlog/pkg/generator"
)

// Runner generates one draft document per hazard record. Per-field resolution
// problems surface as diagnostics inside the documents, so a batch only stops
// on real failures such as an unwritable output directory.
type Runner struct {
	gen       *generator.Generator
	outputDir string
	logger    zerolog.Logger
}

// RunnerOption customises a Runner.
type RunnerOption func(*Runner)

// WithRunnerLogger injects a structured logger. The default discards
// everything.
func WithRunnerLogger(logger zerolog.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = logger
	}
}

// NewRunner constructs a Runner writing drafts into outputDir.
func NewRunner(gen *generator.Generator, outputDir string, options ...RunnerOption) (*Runner, error) {
	if gen == nil {
		return nil, errors.New("pipeline: generator is required")
	}
	if outputDir == "" {
		return nil, errors.New("pipeline: output directory is required")
	}

	r := &Runner{
		gen:       gen,
		outputDir: outputDir,
		logger:    zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r, nil
}

// Run generates one document per record and returns the written paths in
// record order. Records without an identifier get a positional HAZ-NNN one.
func (r *Runner) Run(ctx context.Context, records []HazardRecord) ([]string, error) {
	if len(records) == 0 {
		return nil, errors.New("pipeline: no records to generate")
	}

	paths := make([]string, 0, len(records))
	for i, record := range records {
		hazardID := record.HazardID
		if hazardID == "" {
			hazardID = fmt.Sprintf("HAZ-%03d", i+1)
		}
		name, err := draftFileName(hazardID)
		if err != nil {
			return paths, err
		}

		path, err := r.gen.Generate(ctx, generator.Request{
			Values:     record.Values,
			HazardID:   hazardID,
			OutputPath: filepath.Join(r.outputDir, name),
		})
		if err != nil {
			return paths, fmt.Errorf("pipeline: generate %s: %w", hazardID, err)
		}

		r.logger.Info().
			Str("hazard_id", hazardID).
			Str("path", path).
			Msg("draft generated")
		paths = append(paths, path)
	}

	r.logger.Info().Int("count", len(paths)).Str("dir", r.outputDir).Msg("batch complete")
	return paths, nil
}

// draftFileName maps a hazard identifier onto its draft file name. Record
// identifiers are authored upstream, so anything that would resolve outside
// the output directory is rejected rather than joined.
func draftFileName(hazardID string) (string, error) {
	if strings.ContainsAny(hazardID, `/\`) || hazardID == "." || hazardID == ".." {
		return "", fmt.Errorf("pipeline: hazard id %q is not a valid file name", hazardID)
	}
	return hazardID + ".md", nil
}
