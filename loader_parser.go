package hazlog

import (
	"github.com/clinsafe/hazlog/internal/taxonomy"
	templateloader "github.com/clinsafe/hazlog/internal/template/loader"
	templateparser "github.com/clinsafe/hazlog/internal/template/parser"
	pkgtemplate "github.com/clinsafe/hazlog/pkg/template"
)

// NewLoader constructs a document loader using the internal implementation
// while keeping the concrete type hidden from consumers.
func NewLoader(options ...pkgtemplate.LoaderOption) pkgtemplate.Loader {
	cfg := pkgtemplate.NewLoaderOptions(options...)
	return templateloader.New(cfg)
}

// NewParser constructs a template parser backed by the internal
// implementation.
func NewParser(options ...pkgtemplate.ParserOption) pkgtemplate.Parser {
	cfg := pkgtemplate.NewParserOptions(options...)
	return templateparser.New(cfg)
}

// NewTaxonomyParser constructs the taxonomy parser.
func NewTaxonomyParser() pkgtemplate.TaxonomyParser {
	return taxonomy.New()
}
