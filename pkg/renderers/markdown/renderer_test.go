package markdown

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/clinsafe/hazlog/pkg/model"
	"github.com/clinsafe/hazlog/pkg/render"
)

func hazardFields() []model.TemplateField {
	return []model.TemplateField{
		{Kind: model.FieldKindIcon},
		{Name: "Hazard name", Kind: model.FieldKindText, Placeholder: "A short name for the hazard."},
		{Name: "General utility label", Kind: model.FieldKindMultiselect, Options: []model.FieldOption{
			{Key: "1", Label: "Standard", RawLine: "1 - Standard"},
			{Key: "2", Label: "New hazard", RawLine: "2 - New hazard"},
		}},
		{Name: "Likelihood scoring", Kind: model.FieldKindSelect, Labels: []string{"L"}, Options: []model.FieldOption{
			{Key: "1", Label: "Very low", Description: "Negligible possibility of occurring", RawLine: "1 - Very low: Negligible possibility of occurring"},
		}},
		{Name: "Severity scoring", Kind: model.FieldKindSelect, Labels: []string{"S"}, Options: []model.FieldOption{
			{Key: "2", Label: "Significant", Description: "Injury without short-term recovery", RawLine: "2 - Significant: Injury without short-term recovery"},
		}},
		{Name: "Risk scoring", Kind: model.FieldKindCalculate, Labels: []string{"L", "S"}, Options: []model.FieldOption{
			{Key: "1", Label: "Low", Matchers: []string{"L1-S1", "L1-S2"}, RawLine: "1 - Low [L1-S1, L1-S2]"},
		}},
		{Kind: model.FieldKindSeparator},
		{Name: "Code associated with hazard", Kind: model.FieldKindCode},
		{Kind: model.FieldKindProse, Prose: []string{"Hazards are reviewed at the clinical safety meeting."}},
	}
}

func renderLog(t *testing.T, log model.HazardLog, options render.Options) string {
	t.Helper()
	out, err := New().Render(context.Background(), log, options)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return string(out)
}

func TestRenderFilledDocument(t *testing.T) {
	log := model.HazardLog{
		ID:     "HAZ-001",
		Fields: hazardFields(),
		Values: model.Values{
			"Hazard name":                 "Wrong patient selected",
			"General utility label":       []any{"1", "2"},
			"Likelihood scoring":          "1",
			"Severity scoring":            "2",
			"Code associated with hazard": []any{"pkg/orders/select.go"},
		},
	}

	got := renderLog(t, log, render.Options{})

	want := strings.Join([]string{
		"# HAZ-001",
		"",
		"<!-- ⚠️ 🆕 -->",
		"",
		"### Hazard name",
		"",
		"Wrong patient selected",
		"",
		"### General utility label",
		"",
		"1 - Standard\n2 - New hazard",
		"",
		"### Likelihood scoring",
		"",
		"1 - Very low: Negligible possibility of occurring",
		"",
		"### Severity scoring",
		"",
		"2 - Significant: Injury without short-term recovery",
		"",
		"### Risk scoring",
		"",
		"1 - Low [L1-S1, L1-S2]",
		"",
		"---",
		"",
		"### Code associated with hazard",
		"",
		"- `pkg/orders/select.go`",
		"",
		"Hazards are reviewed at the clinical safety meeting.",
		"",
	}, "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("rendered document mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderDefaultsWithoutValues(t *testing.T) {
	log := model.HazardLog{Fields: hazardFields(), Values: model.Values{}}

	got := renderLog(t, log, render.Options{})

	for _, want := range []string{
		"<!-- ⚠️ -->",
		"A short name for the hazard.",
		"None selected",
		"TBC\n",
		"TBC (awaiting scoring of dependencies)",
		NoCodeReferences,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "# \n") {
		t.Fatalf("empty hazard ID rendered a header:\n%s", got)
	}
}

func TestRenderUnknownIconKey(t *testing.T) {
	log := model.HazardLog{
		Fields: hazardFields(),
		Values: model.Values{"General utility label": []any{"9"}},
	}

	got := renderLog(t, log, render.Options{})
	if !strings.Contains(got, "<!-- ❓ -->") {
		t.Fatalf("expected unknown-key glyph in output:\n%s", got)
	}
}

func TestRenderIconOverrides(t *testing.T) {
	log := model.HazardLog{
		Fields: hazardFields(),
		Values: model.Values{"General utility label": []any{"1"}},
	}

	got := renderLog(t, log, render.Options{Icons: map[string]string{"1": "🔶"}})
	if !strings.Contains(got, "<!-- 🔶 -->") {
		t.Fatalf("expected overridden glyph in output:\n%s", got)
	}
}

func TestRenderEmptyFieldSequence(t *testing.T) {
	_, err := New().Render(context.Background(), model.HazardLog{}, render.Options{})
	if err == nil {
		t.Fatalf("expected error for empty field sequence")
	}
}
