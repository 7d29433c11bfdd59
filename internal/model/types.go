package model

// FieldKind enumerates the closed set of field kinds a template can declare.
// Renderers switch exhaustively over these values so a new kind is a
// compile-visible change rather than a silent fallthrough.
type FieldKind string

const (
	FieldKindText        FieldKind = "text"
	FieldKindSelect      FieldKind = "select"
	FieldKindMultiselect FieldKind = "multiselect"
	FieldKindCalculate   FieldKind = "calculate"
	FieldKindCode        FieldKind = "code"
	FieldKindIcon        FieldKind = "icon"
	FieldKindSeparator   FieldKind = "separator"
	FieldKindProse       FieldKind = "prose"
)

// TBC is the sentinel value meaning "to be confirmed". It is accepted as a
// bare option line by the parser and propagates through calculate resolution
// without erroring.
const TBC = "TBC"

// FieldOption is a single option belonging to a select, multiselect, or
// calculate field.
type FieldOption struct {
	// Key is the value callers supply to pick this option, e.g. "1" or "TBC".
	Key string

	// Label is the short human name, e.g. "Very low".
	Label string

	// Description is the optional longer text after the label.
	Description string

	// Matchers holds composite keys such as "L1-S2". Only meaningful for
	// options belonging to calculate fields.
	Matchers []string

	// RawLine preserves the verbatim template line so rendering can
	// round-trip the exact original format.
	RawLine string
}

// Line returns the verbatim template line for the option, synthesising one
// from the parsed parts when no raw line was captured.
func (o FieldOption) Line() string {
	if o.RawLine != "" {
		return o.RawLine
	}
	return o.Key + " - " + o.Label + ": " + o.Description
}

// Matches reports whether the option's matcher set contains the composite key.
func (o FieldOption) Matches(key string) bool {
	for _, m := range o.Matchers {
		if m == key {
			return true
		}
	}
	return false
}

// TemplateField is one parsed unit of the template: a named, typed field or a
// structural marker (icon, separator, prose block). Fields are created once
// by the parser (plus taxonomy injection) and are immutable afterwards.
type TemplateField struct {
	// Name is the header text of the field. Structural markers have no name.
	Name string

	Kind FieldKind

	// Labels holds single-letter tags. Non-calculate fields declare labels on
	// themselves; calculate fields reference other fields' declarations.
	Labels []string

	Options []FieldOption

	// Placeholder is the template's own text under a text field, rendered
	// when no value is supplied.
	Placeholder string

	// UsesTaxonomy marks a field whose options come from the external
	// taxonomy file rather than the template itself.
	UsesTaxonomy bool

	// Prose carries trailing prose lines: annotation text inside a field, or
	// the body of a standalone prose block.
	Prose []string
}

// IsStructural reports whether the field is an unnamed structural marker.
func (f TemplateField) IsStructural() bool {
	switch f.Kind {
	case FieldKindIcon, FieldKindSeparator, FieldKindProse:
		return true
	}
	return false
}

// HasLabel reports whether the field declares or references the given label.
func (f TemplateField) HasLabel(label string) bool {
	for _, l := range f.Labels {
		if l == label {
			return true
		}
	}
	return false
}

// OptionByKey finds an option by exact key match.
func (f TemplateField) OptionByKey(key string) (FieldOption, bool) {
	for _, opt := range f.Options {
		if opt.Key == key {
			return opt, true
		}
	}
	return FieldOption{}, false
}

// HazardLog bundles everything a renderer needs to produce one filled
// document: the frozen field sequence, the caller's values, and an optional
// hazard identifier for the document header.
type HazardLog struct {
	ID     string
	Fields []TemplateField
	Values Values
}
