// Package generator owns one parsed template plus its injected taxonomy and
// coordinates the load → parse → inject → render pipeline. A Generator is
// immutable after construction, so concurrent Generate calls against distinct
// output paths need no locking.
package generator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/clinsafe/hazlog/internal/taxonomy"
	templateloader "github.com/clinsafe/hazlog/internal/template/loader"
	templateparser "github.com/clinsafe/hazlog/internal/template/parser"
	"github.com/clinsafe/hazlog/pkg/model"
	"github.com/clinsafe/hazlog/pkg/render"
	"github.com/clinsafe/hazlog/pkg/renderers/htmlpreview"
	"github.com/clinsafe/hazlog/pkg/renderers/markdown"
	"github.com/clinsafe/hazlog/pkg/resolve"
	pkgtemplate "github.com/clinsafe/hazlog/pkg/template"
)

const defaultRendererName = markdown.Name

// Config identifies the two schema inputs the engine cannot operate without.
type Config struct {
	// Template locates the form definition document.
	Template pkgtemplate.Source

	// Taxonomy locates the bullet-list taxonomy document.
	Taxonomy pkgtemplate.Source
}

// Option customises the generator configuration.
type Option func(*Generator)

// WithLoader injects a custom document loader.
func WithLoader(loader pkgtemplate.Loader) Option {
	return func(g *Generator) {
		g.loader = loader
	}
}

// WithParser injects a custom template parser.
func WithParser(parser pkgtemplate.Parser) Option {
	return func(g *Generator) {
		g.parser = parser
	}
}

// WithTaxonomyParser injects a custom taxonomy parser.
func WithTaxonomyParser(parser pkgtemplate.TaxonomyParser) Option {
	return func(g *Generator) {
		g.taxonomyParser = parser
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(g *Generator) {
		g.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(g *Generator) {
		g.defaultRenderer = name
	}
}

// WithLogger injects a structured logger. The default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// WithRenderOptions overrides the base render options applied to every call.
func WithRenderOptions(options render.Options) Option {
	return func(g *Generator) {
		g.renderOptions = options
	}
}

// Generator holds the frozen field sequence and the collaborators needed to
// produce documents from caller-supplied values.
type Generator struct {
	loader          pkgtemplate.Loader
	parser          pkgtemplate.Parser
	taxonomyParser  pkgtemplate.TaxonomyParser
	registry        *render.Registry
	defaultRenderer string
	logger          zerolog.Logger
	renderOptions   render.Options

	fields []model.TemplateField
	byName map[string]model.TemplateField
	index  *resolve.Index
}

// New loads and parses the template and taxonomy, injects taxonomy options,
// and freezes the resulting field model. Missing or unreadable schema inputs
// are fatal: the engine has no degraded mode without its own schema.
func New(ctx context.Context, cfg Config, options ...Option) (*Generator, error) {
	if ctx == nil {
		return nil, errors.New("generator: context is required")
	}
	if cfg.Template == nil {
		return nil, errors.New("generator: template source is required")
	}
	if cfg.Taxonomy == nil {
		return nil, errors.New("generator: taxonomy source is required")
	}

	g := &Generator{
		defaultRenderer: defaultRendererName,
		logger:          zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(g)
	}
	g.applyDefaults()

	templateDoc, err := g.loader.Load(ctx, cfg.Template)
	if err != nil {
		return nil, fmt.Errorf("generator: load template: %w", err)
	}
	taxonomyDoc, err := g.loader.Load(ctx, cfg.Taxonomy)
	if err != nil {
		return nil, fmt.Errorf("generator: load taxonomy: %w", err)
	}

	fields, err := g.parser.Parse(ctx, templateDoc)
	if err != nil {
		return nil, fmt.Errorf("generator: parse template: %w", err)
	}
	categories, err := g.taxonomyParser.ParseTaxonomy(ctx, taxonomyDoc)
	if err != nil {
		return nil, fmt.Errorf("generator: parse taxonomy: %w", err)
	}

	g.fields = taxonomy.Inject(fields, categories)
	g.byName = make(map[string]model.TemplateField)
	for _, f := range g.fields {
		if !f.IsStructural() {
			g.byName[f.Name] = f
		}
	}
	g.index = resolve.NewIndex(g.fields)
	g.renderOptions.Index = g.index

	g.warnUnresolvableLabels()
	g.logger.Debug().
		Str("template", templateDoc.Location()).
		Int("fields", len(g.byName)).
		Int("categories", len(categories)).
		Msg("template parsed")

	return g, nil
}

func (g *Generator) applyDefaults() {
	if g.loader == nil {
		g.loader = templateloader.New(pkgtemplate.NewLoaderOptions())
	}
	if g.parser == nil {
		g.parser = templateparser.New(pkgtemplate.NewParserOptions())
	}
	if g.taxonomyParser == nil {
		g.taxonomyParser = taxonomy.New()
	}
	if g.registry == nil {
		g.registry = render.NewRegistry()
		g.registry.MustRegister(markdown.New())
		g.registry.MustRegister(htmlpreview.New())
	}
	if g.defaultRenderer == "" {
		g.defaultRenderer = defaultRendererName
	}
}

// warnUnresolvableLabels surfaces calculate labels no field declares. The
// rendered document still degrades to the TBC diagnostic, but the schema
// mistake is visible in the logs rather than indistinguishable from an
// unscored dependency.
func (g *Generator) warnUnresolvableLabels() {
	for _, f := range g.fields {
		if f.Kind != model.FieldKindCalculate {
			continue
		}
		for _, label := range f.Labels {
			if _, ok := g.index.Field(label); !ok {
				g.logger.Warn().
					Str("field", f.Name).
					Str("label", label).
					Msg("calculate label resolves to no declaring field")
			}
		}
	}
}

// FieldNames returns the non-structural field names in template order, so an
// upstream orchestrator can construct well-formed value mappings without
// hardcoding the schema.
func (g *Generator) FieldNames() []string {
	names := make([]string, 0, len(g.byName))
	for _, f := range g.fields {
		if !f.IsStructural() {
			names = append(names, f.Name)
		}
	}
	return names
}

// Field looks up a field by name.
func (g *Generator) Field(name string) (model.TemplateField, bool) {
	f, ok := g.byName[name]
	return f, ok
}

// Fields returns a copy of the full field sequence, structural markers
// included.
func (g *Generator) Fields() []model.TemplateField {
	out := make([]model.TemplateField, len(g.fields))
	copy(out, g.fields)
	return out
}

// Request describes one document to produce.
type Request struct {
	// Values maps field names to supplied values. Calculate fields are
	// always derived and must not appear here.
	Values model.Values

	// HazardID optionally becomes the document's top-level header.
	HazardID string

	// Renderer names the renderer to use; empty falls back to the default.
	Renderer string

	// OutputPath is where Generate writes the document. Render ignores it.
	OutputPath string
}

// Render produces the document bytes without touching the filesystem.
func (g *Generator) Render(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("generator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, f := range g.fields {
		if f.Kind != model.FieldKindCalculate {
			continue
		}
		if _, present := req.Values[f.Name]; present {
			g.logger.Warn().
				Str("field", f.Name).
				Msg("supplied value for calculate field ignored")
		}
	}

	name := req.Renderer
	if name == "" {
		name = g.defaultRenderer
	}
	renderer, err := g.registry.Get(name)
	if err != nil {
		return nil, fmt.Errorf("generator: %w", err)
	}

	output, err := renderer.Render(ctx, model.HazardLog{
		ID:     req.HazardID,
		Fields: g.fields,
		Values: req.Values,
	}, g.renderOptions)
	if err != nil {
		return nil, fmt.Errorf("generator: render document: %w", err)
	}
	return output, nil
}

// Generate renders the document and writes it to the request's output path,
// creating parent directories as needed. It returns the written path.
func (g *Generator) Generate(ctx context.Context, req Request) (string, error) {
	if req.OutputPath == "" {
		return "", errors.New("generator: output path is required")
	}

	output, err := g.Render(ctx, req)
	if err != nil {
		return "", err
	}

	if dir := filepath.Dir(req.OutputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("generator: create output directory: %w", err)
		}
	}
	if err := writeDocument(req.OutputPath, output); err != nil {
		return "", fmt.Errorf("generator: write document: %w", err)
	}

	g.logger.Info().
		Str("path", req.OutputPath).
		Str("hazard_id", req.HazardID).
		Msg("document written")
	return req.OutputPath, nil
}

// writeDocument scopes the file handle so it is released on every path, and
// reports the close error when the write itself succeeded.
func writeDocument(path string, data []byte) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	_, err = f.Write(data)
	return err
}
