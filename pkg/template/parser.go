package template

import (
	"context"

	"github.com/clinsafe/hazlog/pkg/model"
)

// Parser turns a template document into the ordered field sequence consumed
// by the rest of the engine. Field order is exactly template line order.
type Parser interface {
	Parse(ctx context.Context, doc Document) ([]model.TemplateField, error)
}

// TaxonomyParser extracts the ordered category names from a taxonomy
// document. Only bullet lines are significant.
type TaxonomyParser interface {
	ParseTaxonomy(ctx context.Context, doc Document) ([]string, error)
}

// ParserOptions exposes toggles for parsing behaviour.
type ParserOptions struct {
	// Strict turns a malformed option line inside a typed option block into a
	// parse error. The default keeps the tolerant behaviour: such lines are
	// reclassified as trailing prose so a template always parses, at the cost
	// of never flagging a mistyped option.
	Strict bool
}

// ParserOption mutates ParserOptions during construction.
type ParserOption func(*ParserOptions)

// WithStrictOptions toggles strict option-line parsing.
func WithStrictOptions(enabled bool) ParserOption {
	return func(opts *ParserOptions) {
		opts.Strict = enabled
	}
}

// NewParserOptions applies ParserOption functions and returns the resulting
// configuration.
func NewParserOptions(options ...ParserOption) ParserOptions {
	cfg := ParserOptions{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}
