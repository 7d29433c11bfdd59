package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/clinsafe/hazlog/pkg/model"
)

const skipChoice = "(skip for now)"

// Collector walks a field sequence and prompts for one value per scorable
// field. Structural markers and calculate fields are never prompted, so the
// returned values always satisfy the generator's contract.
type Collector struct {
	driver Driver
}

// NewCollector constructs a Collector over the given driver.
func NewCollector(driver Driver) (*Collector, error) {
	if driver == nil {
		return nil, errors.New("prompt: driver is required")
	}
	return &Collector{driver: driver}, nil
}

// Collect prompts field by field and returns the supplied values. Skipped
// fields are omitted entirely so their kind-specific defaults render.
func (c *Collector) Collect(ctx context.Context, fields []model.TemplateField) (model.Values, error) {
	values := make(model.Values)

	for _, field := range fields {
		if field.IsStructural() || field.Kind == model.FieldKindCalculate {
			continue
		}

		var err error
		switch field.Kind {
		case model.FieldKindText:
			err = c.collectText(ctx, field, values)
		case model.FieldKindSelect:
			err = c.collectSelect(ctx, field, values)
		case model.FieldKindMultiselect:
			err = c.collectMultiselect(ctx, field, values)
		case model.FieldKindCode:
			err = c.collectCode(ctx, field, values)
		}
		if err != nil {
			return nil, err
		}
	}
	return values, nil
}

func (c *Collector) collectText(ctx context.Context, field model.TemplateField, values model.Values) error {
	answer, err := c.driver.Input(ctx, InputConfig{
		Message: field.Name,
		Help:    field.Placeholder,
	})
	if err != nil {
		return fmt.Errorf("prompt: field %q: %w", field.Name, err)
	}
	if answer = strings.TrimSpace(answer); answer != "" {
		values[field.Name] = answer
	}
	return nil
}

func (c *Collector) collectSelect(ctx context.Context, field model.TemplateField, values model.Values) error {
	choices := make([]string, 0, len(field.Options)+1)
	choices = append(choices, skipChoice)
	for _, opt := range field.Options {
		choices = append(choices, opt.Line())
	}

	idx, err := c.driver.Select(ctx, SelectConfig{
		Message: field.Name,
		Options: choices,
	})
	if err != nil {
		return fmt.Errorf("prompt: field %q: %w", field.Name, err)
	}
	if idx <= 0 {
		return nil
	}
	values[field.Name] = field.Options[idx-1].Key
	return nil
}

func (c *Collector) collectMultiselect(ctx context.Context, field model.TemplateField, values model.Values) error {
	choices := make([]string, 0, len(field.Options))
	for _, opt := range field.Options {
		choices = append(choices, opt.Line())
	}

	indices, err := c.driver.MultiSelect(ctx, SelectConfig{
		Message: field.Name,
		Options: choices,
	})
	if err != nil {
		return fmt.Errorf("prompt: field %q: %w", field.Name, err)
	}
	if len(indices) == 0 {
		return nil
	}

	keys := make([]string, 0, len(indices))
	for _, idx := range indices {
		if idx >= 0 && idx < len(field.Options) {
			keys = append(keys, field.Options[idx].Key)
		}
	}
	values[field.Name] = keys
	return nil
}

func (c *Collector) collectCode(ctx context.Context, field model.TemplateField, values model.Values) error {
	answer, err := c.driver.Input(ctx, InputConfig{
		Message: field.Name,
		Help:    "One file reference per line, e.g. src/contexts/PatientContext.tsx:42",
	})
	if err != nil {
		return fmt.Errorf("prompt: field %q: %w", field.Name, err)
	}

	var refs []string
	for _, line := range strings.Split(answer, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			refs = append(refs, line)
		}
	}
	if len(refs) > 0 {
		values[field.Name] = refs
	}
	return nil
}
