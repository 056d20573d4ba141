package report

import (
	"encoding/json"
	"fmt"

	"github.com/kanadia/entrydesk/internal/domain/trace"
)

// Document is the canonical shape of a run report. The json format emits it
// directly; template engines render against it.
type Document struct {
	RunID       string         `json:"run_id"`
	GeneratedAt string         `json:"generated_at"` // RFC3339
	Decisions   []string       `json:"decisions"`
	Summary     map[string]int `json:"summary"`
	Results     []trace.Entry  `json:"results"`
}

// Context provides run data for renderers.
type Context struct {
	Doc Document
	// JSON is the marshaled Document, used by jsonPath extraction in templates.
	JSON []byte
}

// NewContext builds a render context, pre-marshaling the document.
func NewContext(doc Document) (Context, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return Context{}, fmt.Errorf("failed to marshal report document: %w", err)
	}
	return Context{Doc: doc, JSON: data}, nil
}

// Renderer renders a run report to bytes.
type Renderer interface {
	Render(ctx Context) ([]byte, error)
}

// TextRenderer emits the canonical plain output: one decision per line.
type TextRenderer struct{}

func (TextRenderer) Render(ctx Context) ([]byte, error) {
	var out []byte
	for _, d := range ctx.Doc.Decisions {
		out = append(out, d...)
		out = append(out, '\n')
	}
	return out, nil
}

// JSONRenderer emits the full report document, indented.
type JSONRenderer struct{}

func (JSONRenderer) Render(ctx Context) ([]byte, error) {
	data, err := json.MarshalIndent(ctx.Doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode report: %w", err)
	}
	return append(data, '\n'), nil
}
