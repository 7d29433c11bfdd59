package resolve

import (
	"fmt"
	"strings"

	"github.com/clinsafe/hazlog/pkg/model"
)

// AwaitingDependencies is rendered when a calculate field cannot resolve all
// of its labelled dependencies: an unscored dependency, a TBC score, or a
// label no field declares.
const AwaitingDependencies = "TBC (awaiting scoring of dependencies)"

// Index maps single-letter labels to the field declaring them. Calculate
// fields reference labels rather than declare them, so they are skipped; the
// index is built once right after parsing completes and reused for every
// resolution.
type Index struct {
	byLabel map[string]model.TemplateField
}

// NewIndex builds the label index over a frozen field sequence.
func NewIndex(fields []model.TemplateField) *Index {
	byLabel := make(map[string]model.TemplateField)
	for _, f := range fields {
		if f.Kind == model.FieldKindCalculate {
			continue
		}
		for _, label := range f.Labels {
			byLabel[label] = f
		}
	}
	return &Index{byLabel: byLabel}
}

// Field returns the field declaring the given label.
func (idx *Index) Field(label string) (model.TemplateField, bool) {
	f, ok := idx.byLabel[label]
	return f, ok
}

// Calculate resolves a calculate field against the caller's values. It builds
// the composite key from the field's labels in declared order ("L1-S2" for
// labels [L S] scored "1" and "2") and returns the first option whose matcher
// set contains it. Every failure mode yields a diagnostic string, never an
// error.
func Calculate(field model.TemplateField, idx *Index, values model.Values) string {
	if len(field.Labels) < 2 {
		return "Cannot compute: insufficient labels defined"
	}

	parts := make([]string, 0, len(field.Labels))
	for _, label := range field.Labels {
		owner, ok := idx.Field(label)
		if !ok {
			return AwaitingDependencies
		}
		key, ok := values.StringFor(owner.Name)
		if !ok || key == model.TBC {
			return AwaitingDependencies
		}
		parts = append(parts, label+key)
	}

	target := strings.Join(parts, "-")
	for _, opt := range field.Options {
		if opt.Matches(target) {
			return opt.Line()
		}
	}
	return fmt.Sprintf("No matching risk level for %s", target)
}
