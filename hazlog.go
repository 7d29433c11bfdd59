// Package hazlog generates clinical hazard-log documents from a
// markdown-based form definition. The template declares typed fields (text,
// select, multiselect, calculate, code) plus structural markers; the engine
// parses it once, injects the hazard-type taxonomy, and renders one filled
// document per set of caller-supplied values. The root package re-exports the
// common entry points; the full surface lives under pkg/.
package hazlog

import (
	"context"

	"github.com/clinsafe/hazlog/pkg/generator"
	"github.com/clinsafe/hazlog/pkg/model"
	"github.com/clinsafe/hazlog/pkg/render"
	"github.com/clinsafe/hazlog/pkg/template"
)

// Values maps field names to supplied values for one document.
type Values = model.Values

// TemplateField is one parsed unit of the template.
type TemplateField = model.TemplateField

// Request describes one document to produce.
type Request = generator.Request

// Options carries per-call rendering knobs.
type Options = render.Options

// NewGenerator constructs a Generator from template and taxonomy file paths.
// Empty paths fall back to the embedded defaults.
func NewGenerator(ctx context.Context, templatePath, taxonomyPath string, options ...generator.Option) (*generator.Generator, error) {
	cfg := generator.Config{
		Template: template.SourceFromFS(EmbeddedTemplateName),
		Taxonomy: template.SourceFromFS(EmbeddedTaxonomyName),
	}
	if templatePath != "" {
		cfg.Template = template.SourceFromFile(templatePath)
	}
	if taxonomyPath != "" {
		cfg.Taxonomy = template.SourceFromFile(taxonomyPath)
	}

	opts := append([]generator.Option{
		generator.WithLoader(NewLoader(template.WithFileSystem(EmbeddedAssets()))),
	}, options...)

	return generator.New(ctx, cfg, opts...)
}

// GenerateDocument is the simplest entry point: build a generator for the
// given schema files, render one document, and write it to outputPath.
func GenerateDocument(ctx context.Context, templatePath, taxonomyPath, outputPath, hazardID string, values Values) (string, error) {
	gen, err := NewGenerator(ctx, templatePath, taxonomyPath)
	if err != nil {
		return "", err
	}
	return gen.Generate(ctx, Request{
		Values:     values,
		HazardID:   hazardID,
		OutputPath: outputPath,
	})
}
