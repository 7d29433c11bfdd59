package render

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/clinsafe/hazlog/pkg/model"
)

type stubRenderer struct {
	name string
}

func (s *stubRenderer) Name() string        { return s.name }
func (s *stubRenderer) ContentType() string { return "text/plain" }
func (s *stubRenderer) Render(context.Context, model.HazardLog, Options) ([]byte, error) {
	return nil, nil
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry()

	if err := reg.Register(&stubRenderer{name: "markdown"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := reg.Register(&stubRenderer{name: "html"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := reg.Register(&stubRenderer{name: "markdown"}); err == nil {
		t.Fatalf("expected error for duplicate name")
	}
	if err := reg.Register(nil); err == nil {
		t.Fatalf("expected error for nil renderer")
	}
	if err := reg.Register(&stubRenderer{}); err == nil {
		t.Fatalf("expected error for empty name")
	}

	got, err := reg.Get("markdown")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name() != "markdown" {
		t.Fatalf("got renderer %q", got.Name())
	}
	if _, err := reg.Get("pdf"); err == nil {
		t.Fatalf("expected error for unknown renderer")
	}

	if diff := cmp.Diff([]string{"html", "markdown"}, reg.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
	if !reg.Has("html") || reg.Has("pdf") {
		t.Fatalf("Has() inconsistent with registered set")
	}
}

func TestUtilityFieldName(t *testing.T) {
	if got := (Options{}).UtilityFieldName(); got != DefaultUtilityField {
		t.Fatalf("default = %q", got)
	}
	if got := (Options{UtilityField: "Severity flags"}).UtilityFieldName(); got != "Severity flags" {
		t.Fatalf("override = %q", got)
	}
}
