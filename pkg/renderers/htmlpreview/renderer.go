// Package htmlpreview converts the rendered markdown document into sanitized
// HTML so drafts can be reviewed in a browser. The markdown renderer stays
// the source of truth for content; this renderer only changes the surface.
package htmlpreview

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/clinsafe/hazlog/pkg/model"
	"github.com/clinsafe/hazlog/pkg/render"
	"github.com/clinsafe/hazlog/pkg/renderers/markdown"
)

// Name is the registry identifier for this renderer.
const Name = "html"

// Renderer wraps the markdown renderer with a goldmark conversion and a
// bluemonday sanitization pass.
type Renderer struct {
	inner    render.Renderer
	markdown goldmark.Markdown
	policy   *bluemonday.Policy
}

// Ensure the implementation satisfies the renderer contract.
var _ render.Renderer = (*Renderer)(nil)

// New constructs the HTML preview renderer. Goldmark must pass raw HTML
// through rather than omit it, otherwise an HTML block in a field value
// drags its surrounding text down with it; bluemonday is the sole
// sanitizer for the converted output.
func New() *Renderer {
	return &Renderer{
		inner: markdown.New(),
		markdown: goldmark.New(
			goldmark.WithRendererOptions(goldmarkhtml.WithUnsafe()),
		),
		policy: bluemonday.UGCPolicy(),
	}
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return Name
}

// ContentType reports the output media type.
func (r *Renderer) ContentType() string {
	return "text/html"
}

// Render produces a standalone HTML page for one hazard document.
func (r *Renderer) Render(ctx context.Context, log model.HazardLog, options render.Options) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("htmlpreview: context is required")
	}

	source, err := r.inner.Render(ctx, log, options)
	if err != nil {
		return nil, fmt.Errorf("htmlpreview: render markdown: %w", err)
	}

	var buf bytes.Buffer
	if err := r.markdown.Convert(source, &buf); err != nil {
		return nil, fmt.Errorf("htmlpreview: convert markdown: %w", err)
	}

	body := r.policy.SanitizeBytes(buf.Bytes())

	title := log.ID
	if title == "" {
		title = "Hazard log draft"
	}

	var page bytes.Buffer
	page.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>")
	page.WriteString(html.EscapeString(title))
	page.WriteString("</title>\n</head>\n<body>\n")
	page.Write(body)
	page.WriteString("\n</body>\n</html>\n")
	return page.Bytes(), nil
}
