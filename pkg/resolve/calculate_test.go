package resolve

import (
	"testing"

	"github.com/clinsafe/hazlog/pkg/model"
)

func scoringFields() []model.TemplateField {
	return []model.TemplateField{
		{Name: "Likelihood scoring", Kind: model.FieldKindSelect, Labels: []string{"L"}},
		{Name: "Severity scoring", Kind: model.FieldKindSelect, Labels: []string{"S"}},
	}
}

func riskField(labels ...string) model.TemplateField {
	if labels == nil {
		labels = []string{"L", "S"}
	}
	return model.TemplateField{
		Name:   "Risk scoring",
		Kind:   model.FieldKindCalculate,
		Labels: labels,
		Options: []model.FieldOption{
			{Key: "1", Label: "Low", Matchers: []string{"L1-S1", "L1-S2", "L2-S1"}, RawLine: "1 - Low [L1-S1, L1-S2, L2-S1]"},
			{Key: "2", Label: "High", Matchers: []string{"L2-S2"}, RawLine: "2 - High [L2-S2]"},
		},
	}
}

func TestCalculate(t *testing.T) {
	idx := NewIndex(scoringFields())

	tests := []struct {
		name   string
		field  model.TemplateField
		values model.Values
		want   string
	}{
		{
			name:   "composite key joins labels in declared order",
			field:  riskField(),
			values: model.Values{"Likelihood scoring": "1", "Severity scoring": "2"},
			want:   "1 - Low [L1-S1, L1-S2, L2-S1]",
		},
		{
			name:   "missing dependency",
			field:  riskField(),
			values: model.Values{"Likelihood scoring": "1"},
			want:   AwaitingDependencies,
		},
		{
			name:   "TBC dependency propagates",
			field:  riskField(),
			values: model.Values{"Likelihood scoring": model.TBC, "Severity scoring": "2"},
			want:   AwaitingDependencies,
		},
		{
			name:   "no matcher covers the key",
			field:  riskField(),
			values: model.Values{"Likelihood scoring": "9", "Severity scoring": "9"},
			want:   "No matching risk level for L9-S9",
		},
		{
			name:   "fewer than two labels",
			field:  riskField("L"),
			values: model.Values{"Likelihood scoring": "1"},
			want:   "Cannot compute: insufficient labels defined",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Calculate(tc.field, idx, tc.values); got != tc.want {
				t.Fatalf("Calculate() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestCalculateUnresolvableLabel(t *testing.T) {
	// One declared label only: nothing declares S.
	idx := NewIndex([]model.TemplateField{
		{Name: "Likelihood scoring", Kind: model.FieldKindSelect, Labels: []string{"L"}},
	})

	got := Calculate(riskField(), idx, model.Values{"Likelihood scoring": "1", "Severity scoring": "2"})
	if got != AwaitingDependencies {
		t.Fatalf("Calculate() = %q, want %q", got, AwaitingDependencies)
	}
}

func TestIndexSkipsCalculateFields(t *testing.T) {
	fields := append(scoringFields(), riskField())
	idx := NewIndex(fields)

	owner, ok := idx.Field("L")
	if !ok || owner.Name != "Likelihood scoring" {
		t.Fatalf("Field(L) = %q/%v, want Likelihood scoring/true", owner.Name, ok)
	}
	if _, ok := idx.Field("X"); ok {
		t.Fatalf("Field(X) unexpectedly resolved")
	}
}
