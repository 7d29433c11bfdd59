// Package taxonomy parses the external hazard-type taxonomy and injects its
// categories into the parsed field sequence.
package taxonomy

import (
	"context"
	"strings"

	"github.com/clinsafe/hazlog/pkg/model"
	pkgtemplate "github.com/clinsafe/hazlog/pkg/template"
)

const bulletPrefix = "- "

// Parser implements pkgtemplate.TaxonomyParser. Only bullet lines are
// significant; headings and blank lines are ignored.
type Parser struct{}

// Ensure the implementation satisfies the public interface.
var _ pkgtemplate.TaxonomyParser = (*Parser)(nil)

// New constructs a taxonomy Parser.
func New() pkgtemplate.TaxonomyParser {
	return &Parser{}
}

// ParseTaxonomy returns the category names in declaration order.
func (p *Parser) ParseTaxonomy(ctx context.Context, doc pkgtemplate.Document) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var categories []string
	for _, line := range strings.Split(string(doc.Raw()), "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, bulletPrefix) {
			categories = append(categories, strings.TrimSpace(line[len(bulletPrefix):]))
		}
	}
	return categories, nil
}

// Inject returns a new field sequence in which every field marked as using
// the taxonomy has its option list replaced with one option per category
// (key = label = category name). The input slice is left untouched so the
// parsed model can be frozen after injection.
func Inject(fields []model.TemplateField, categories []string) []model.TemplateField {
	out := make([]model.TemplateField, len(fields))
	copy(out, fields)

	for i := range out {
		if !out[i].UsesTaxonomy {
			continue
		}
		options := make([]model.FieldOption, 0, len(categories))
		for _, category := range categories {
			options = append(options, model.FieldOption{
				Key:     category,
				Label:   category,
				RawLine: bulletPrefix + category,
			})
		}
		out[i].Options = options
	}
	return out
}
