package render

import "github.com/clinsafe/hazlog/pkg/resolve"

// DefaultUtilityField is the multiselect whose value drives the icon line.
const DefaultUtilityField = "General utility label"

// Options carries per-call rendering knobs. The zero value applies the
// defaults.
type Options struct {
	// UtilityField names the multiselect field whose selected keys map onto
	// icon glyphs. Empty means DefaultUtilityField.
	UtilityField string

	// Icons overrides entries of the built-in key-to-glyph table.
	Icons map[string]string

	// Index is the label index over the rendered field sequence. The
	// generator builds it once after parsing; renderers that receive a nil
	// index build a throwaway one.
	Index *resolve.Index
}

// UtilityFieldName resolves the configured utility field name.
func (o Options) UtilityFieldName() string {
	if o.UtilityField != "" {
		return o.UtilityField
	}
	return DefaultUtilityField
}
