// Package render defines the renderer contract and the named registry the
// generator resolves renderers from.
package render

import (
	"context"

	"github.com/clinsafe/hazlog/pkg/model"
)

// Renderer converts a HazardLog into a byte representation (markdown, HTML).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, log model.HazardLog, options Options) ([]byte, error)
}
