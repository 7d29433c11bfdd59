package parser

import (
	"context"
	"errors"

	"github.com/clinsafe/hazlog/pkg/model"
	pkgtemplate "github.com/clinsafe/hazlog/pkg/template"
)

// Parser implements pkgtemplate.Parser with a line-oriented finite-state
// scanner over the template grammar.
type Parser struct {
	options pkgtemplate.ParserOptions
}

// Ensure the implementation satisfies the public interface.
var _ pkgtemplate.Parser = (*Parser)(nil)

// New constructs a Parser with the given options.
func New(options pkgtemplate.ParserOptions) pkgtemplate.Parser {
	return &Parser{options: options}
}

// Parse converts a template document into the ordered field sequence. Field
// order is exactly template line order; blank lines are structural noise.
func (p *Parser) Parse(ctx context.Context, doc pkgtemplate.Document) ([]model.TemplateField, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw := doc.Raw()
	if len(raw) == 0 {
		return nil, errors.New("template parser: document payload is empty")
	}

	sc := newScanner(p.options)
	return sc.run(string(raw))
}
