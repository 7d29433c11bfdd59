// Package markdown renders a filled hazard log document that preserves the
// source template's structure: one sub-header per field, blank-line
// separated, field order identical to the template.
package markdown

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/clinsafe/hazlog/pkg/model"
	"github.com/clinsafe/hazlog/pkg/render"
	"github.com/clinsafe/hazlog/pkg/resolve"
)

// Name is the registry identifier for this renderer.
const Name = "markdown"

// NoCodeReferences is rendered for a code field without supplied references.
const NoCodeReferences = "No code references yet."

// Renderer is the default document renderer producing filled markdown.
type Renderer struct{}

// Ensure the implementation satisfies the renderer contract.
var _ render.Renderer = (*Renderer)(nil)

// New constructs the markdown renderer.
func New() *Renderer {
	return &Renderer{}
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return Name
}

// ContentType reports the output media type.
func (r *Renderer) ContentType() string {
	return "text/markdown"
}

// Render walks the field sequence in template order and emits the resolved
// value for each field kind. Per-field resolution failures render a visible
// diagnostic in place of the value, so rendering itself only fails on a
// cancelled context or an empty field sequence.
func (r *Renderer) Render(ctx context.Context, log model.HazardLog, options render.Options) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("markdown: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(log.Fields) == 0 {
		return nil, errors.New("markdown: field sequence is empty")
	}

	idx := options.Index
	if idx == nil {
		idx = resolve.NewIndex(log.Fields)
	}

	var lines []string
	if log.ID != "" {
		lines = append(lines, fmt.Sprintf("# %s", log.ID), "")
	}

	for _, field := range log.Fields {
		switch field.Kind {
		case model.FieldKindIcon:
			lines = append(lines, r.iconLine(field, log.Values, options), "")
			continue
		case model.FieldKindSeparator:
			lines = append(lines, "---", "")
			continue
		case model.FieldKindProse:
			lines = append(lines, field.Prose...)
			lines = append(lines, "")
			continue
		}

		lines = append(lines, fmt.Sprintf("### %s", field.Name), "")

		switch field.Kind {
		case model.FieldKindText:
			if value, ok := log.Values.StringFor(field.Name); ok {
				lines = append(lines, value)
			} else {
				lines = append(lines, field.Placeholder)
			}
		case model.FieldKindSelect:
			lines = append(lines, resolve.One(field, log.Values))
		case model.FieldKindMultiselect:
			lines = append(lines, resolve.Many(field, log.Values))
		case model.FieldKindCalculate:
			lines = append(lines, resolve.Calculate(field, idx, log.Values))
		case model.FieldKindCode:
			lines = append(lines, codeLines(field, log.Values)...)
		}
		lines = append(lines, "")

		if len(field.Prose) > 0 {
			lines = append(lines, field.Prose...)
			lines = append(lines, "")
		}
	}

	return []byte(strings.Join(lines, "\n")), nil
}

// iconLine renders one glyph per entry of the utility-label multiselect, or a
// single caution glyph when the field is absent.
func (r *Renderer) iconLine(_ model.TemplateField, values model.Values, options render.Options) string {
	keys := values.StringsFor(options.UtilityFieldName())
	if len(keys) == 0 {
		return fmt.Sprintf("<!-- %s -->", defaultIcon)
	}

	glyphs := make([]string, 0, len(keys))
	for _, key := range keys {
		glyphs = append(glyphs, iconFor(key, options.Icons))
	}
	return fmt.Sprintf("<!-- %s -->", strings.Join(glyphs, " "))
}

func codeLines(field model.TemplateField, values model.Values) []string {
	refs := values.StringsFor(field.Name)
	lines := make([]string, 0, len(refs))
	for _, ref := range refs {
		if ref == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf("- `%s`", ref))
	}
	if len(lines) == 0 {
		return []string{NoCodeReferences}
	}
	return lines
}
