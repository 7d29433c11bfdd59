package hazlog

import (
	"embed"
	"io/fs"
)

//go:embed templates/hazard-log-template.md templates/hazard-types.md
var embeddedAssets embed.FS

// Embedded asset names, usable with template.SourceFromFS against
// EmbeddedAssets().
const (
	EmbeddedTemplateName = "templates/hazard-log-template.md"
	EmbeddedTaxonomyName = "templates/hazard-types.md"
)

// EmbeddedAssets exposes the built-in hazard log template and hazard types
// taxonomy so callers and tests can run without external files.
func EmbeddedAssets() fs.FS {
	return embeddedAssets
}
