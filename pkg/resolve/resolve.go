// Package resolve turns caller-supplied values into renderable text: exact
// option-key matching for select fields and composite-key matching for
// calculate fields. Resolution never fails; unknown or missing data degrades
// to a visible diagnostic so a reviewer sees exactly what went wrong and the
// surrounding pipeline never aborts mid-batch.
package resolve

import (
	"fmt"
	"strings"

	"github.com/clinsafe/hazlog/pkg/model"
)

// NoneSelected is rendered for a multiselect with no supplied values.
const NoneSelected = "None selected"

// One resolves a single-select value against the field's options. An absent
// value renders the TBC sentinel; an unknown key renders a diagnostic instead
// of erroring. Matching is an exact string comparison against the canonical
// string form of the value.
func One(field model.TemplateField, values model.Values) string {
	key, ok := values.StringFor(field.Name)
	if !ok {
		return model.TBC
	}
	if opt, found := field.OptionByKey(key); found {
		return opt.Line()
	}
	return fmt.Sprintf("%s (unrecognised option)", key)
}

// Many resolves a multiselect value list, one line per entry. Entries that
// match no option render as a literal bullet so partial or unknown data never
// blocks document production.
func Many(field model.TemplateField, values model.Values) string {
	keys := values.StringsFor(field.Name)
	if len(keys) == 0 {
		return NoneSelected
	}

	lines := make([]string, 0, len(keys))
	for _, key := range keys {
		if opt, found := field.OptionByKey(key); found {
			lines = append(lines, opt.Line())
			continue
		}
		lines = append(lines, "- "+key)
	}
	return strings.Join(lines, "\n")
}
