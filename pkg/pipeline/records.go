// Package pipeline is the engine's surface towards the upstream hazard-review
// orchestrator: it decodes the structured JSON records that stage produces
// and turns each one into a generated draft document.
package pipeline

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/clinsafe/hazlog/pkg/model"
)

// HazardRecord is one entry of the structured output: an identifier plus the
// field values for one hazard.
type HazardRecord struct {
	HazardID string       `json:"hazard_id"`
	Values   model.Values `json:"values"`
}

// DecodeRecords parses a JSON array of hazard records. The payload is
// typically authored by an LLM, so surrounding markdown code fences are
// stripped before decoding and numbers are kept in their literal form.
func DecodeRecords(r io.Reader) ([]HazardRecord, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("pipeline: read records: %w", err)
	}

	payload := stripFences(string(raw))
	if strings.TrimSpace(payload) == "" {
		return nil, errors.New("pipeline: records payload is empty")
	}

	dec := json.NewDecoder(strings.NewReader(payload))
	dec.UseNumber()

	var records []HazardRecord
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("pipeline: decode records: %w", err)
	}
	return records, nil
}

// stripFences removes a leading ```json (or bare ```) fence and the matching
// trailing fence.
func stripFences(payload string) string {
	payload = strings.TrimSpace(payload)
	if strings.HasPrefix(payload, "```") {
		if idx := strings.IndexByte(payload, '\n'); idx >= 0 {
			payload = payload[idx+1:]
		} else {
			payload = ""
		}
	}
	payload = strings.TrimSpace(payload)
	payload = strings.TrimSuffix(payload, "```")
	return strings.TrimSpace(payload)
}
