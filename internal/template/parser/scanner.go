package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/clinsafe/hazlog/pkg/model"
	pkgtemplate "github.com/clinsafe/hazlog/pkg/template"
)

// mode is the scanner state carried between lines. Every transition is local
// to one line so each can be exercised in isolation.
type mode int

const (
	// modeStructural is the default state: outside any field.
	modeStructural mode = iota
	// modeInField follows a header line, before any type marker.
	modeInField
	// modeInTypedOptions follows a type marker inside a field; lines are
	// matched against the option grammar.
	modeInTypedOptions
	// modeProse extends a standalone prose block outside any field.
	modeProse
)

const (
	iconMarker      = "<!-- [icon] -->"
	separatorMarker = "---"
	headerPrefix    = "### "
	taxonomyMarker  = "[hazard-types]"
)

var (
	// typeMarkerRe matches lines like "[select] [L]" capturing the kind and
	// the remainder holding label declarations.
	typeMarkerRe = regexp.MustCompile(`^\[(multiselect|select|calculate|code)\](.*)$`)

	// labelRe extracts single-letter labels like [L] from a marker remainder.
	labelRe = regexp.MustCompile(`\[([A-Z])\]`)

	// optionRe matches "<key> - <label>[: <description>][ [<m1>, <m2>]]".
	optionRe = regexp.MustCompile(`^(\w+)\s*-\s*([^:\[]+?)(?::\s*(.+?))?(?:\s*\[([^\]]+)\])?\s*$`)
)

type scanner struct {
	options pkgtemplate.ParserOptions

	mode    mode
	fields  []model.TemplateField
	current model.TemplateField
	open    bool
}

func newScanner(options pkgtemplate.ParserOptions) *scanner {
	return &scanner{options: options}
}

// run advances the scanner one line at a time and returns the accumulated
// field sequence.
func (s *scanner) run(text string) ([]model.TemplateField, error) {
	for i, line := range strings.Split(text, "\n") {
		if err := s.step(i+1, strings.TrimSpace(line)); err != nil {
			return nil, err
		}
	}
	s.flush()
	return s.fields, nil
}

// step applies one stripped line to the current state.
func (s *scanner) step(lineNo int, line string) error {
	switch {
	case strings.HasPrefix(line, iconMarker):
		s.flush()
		s.emit(model.TemplateField{Kind: model.FieldKindIcon})
		s.mode = modeStructural
		return nil

	case line == separatorMarker:
		s.flush()
		s.emit(model.TemplateField{Kind: model.FieldKindSeparator})
		s.mode = modeStructural
		return nil

	case strings.HasPrefix(line, headerPrefix):
		s.flush()
		s.current = model.TemplateField{
			Name: strings.TrimSpace(line[len(headerPrefix):]),
			Kind: model.FieldKindText,
		}
		s.open = true
		s.mode = modeInField
		return nil

	case line == "":
		// Blank lines advance the scanner without emitting anything.
		return nil
	}

	if s.open {
		return s.fieldLine(lineNo, line)
	}
	s.proseLine(line)
	return nil
}

// fieldLine handles a line inside a field: type markers, the taxonomy marker,
// option lines, placeholder text, and trailing prose.
func (s *scanner) fieldLine(lineNo int, line string) error {
	if m := typeMarkerRe.FindStringSubmatch(line); m != nil {
		s.current.Kind = model.FieldKind(m[1])
		s.current.Labels = nil
		for _, lm := range labelRe.FindAllStringSubmatch(m[2], -1) {
			s.current.Labels = append(s.current.Labels, lm[1])
		}
		s.mode = modeInTypedOptions
		return nil
	}

	if line == taxonomyMarker {
		s.current.UsesTaxonomy = true
		return nil
	}

	if s.mode == modeInTypedOptions {
		if opt, ok := parseOption(line); ok {
			s.current.Options = append(s.current.Options, opt)
			return nil
		}
		if line == model.TBC {
			s.current.Options = append(s.current.Options, model.FieldOption{
				Key:         model.TBC,
				Label:       model.TBC,
				Description: "To be confirmed",
				RawLine:     line,
			})
			return nil
		}
		if s.options.Strict {
			return fmt.Errorf("template parser: line %d: malformed option line %q in field %q", lineNo, line, s.current.Name)
		}
		// Tolerant mode keeps annotation text alongside options instead of
		// failing the parse.
		s.current.Prose = append(s.current.Prose, line)
		return nil
	}

	if s.current.Kind == model.FieldKindText {
		if s.current.Placeholder != "" {
			s.current.Placeholder += "\n" + line
		} else {
			s.current.Placeholder = line
		}
		return nil
	}

	s.current.Prose = append(s.current.Prose, line)
	return nil
}

// proseLine extends the open prose block, or starts a new one. Prose is
// always representable, never dropped.
func (s *scanner) proseLine(line string) {
	if s.mode == modeProse && len(s.fields) > 0 {
		last := &s.fields[len(s.fields)-1]
		if last.Kind == model.FieldKindProse {
			last.Prose = append(last.Prose, line)
			return
		}
	}
	s.emit(model.TemplateField{
		Kind:  model.FieldKindProse,
		Prose: []string{line},
	})
	s.mode = modeProse
}

// emit appends a completed structural entry.
func (s *scanner) emit(f model.TemplateField) {
	s.fields = append(s.fields, f)
}

// flush closes the field under construction, if any.
func (s *scanner) flush() {
	if !s.open {
		return
	}
	s.fields = append(s.fields, s.current)
	s.current = model.TemplateField{}
	s.open = false
}

// parseOption matches one line against the option grammar.
func parseOption(line string) (model.FieldOption, bool) {
	m := optionRe.FindStringSubmatch(line)
	if m == nil {
		return model.FieldOption{}, false
	}

	var matchers []string
	for _, part := range strings.Split(m[4], ",") {
		if part = strings.TrimSpace(part); part != "" {
			matchers = append(matchers, part)
		}
	}

	return model.FieldOption{
		Key:         m[1],
		Label:       strings.TrimSpace(m[2]),
		Description: strings.TrimSpace(m[3]),
		Matchers:    matchers,
		RawLine:     line,
	}, true
}
