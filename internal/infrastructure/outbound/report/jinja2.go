package report

import (
	"fmt"
	"time"

	"github.com/flosch/pongo2/v6"
	"github.com/google/uuid"
)

// Jinja2Compiler compiles report templates using Pongo2 (Django/Jinja2-style).
type Jinja2Compiler struct{}

// Compile parses the source as a Pongo2 template.
func (c *Jinja2Compiler) Compile(name, source string) (Renderer, error) {
	tpl, err := pongo2.FromString(source)
	if err != nil {
		return nil, fmt.Errorf("failed to compile jinja2 template %q: %w", name, err)
	}
	return &jinja2Renderer{tpl: tpl}, nil
}

type jinja2Renderer struct {
	tpl *pongo2.Template
}

func (r *jinja2Renderer) Render(ctx Context) ([]byte, error) {
	pongoCtx := pongo2.Context{
		"runId":     ctx.Doc.RunID,
		"now":       ctx.Doc.GeneratedAt,
		"decisions": ctx.Doc.Decisions,
		"summary":   ctx.Doc.Summary,
		"results":   ctx.Doc.Results,
		"total":     len(ctx.Doc.Decisions),

		// Helper functions.
		"decision": func(i int) string {
			if i < 0 || i >= len(ctx.Doc.Decisions) {
				return ""
			}
			return ctx.Doc.Decisions[i]
		},
		"count": func(name string) int {
			return ctx.Doc.Summary[name]
		},
		"uuid": uuid.NewString,
		"seq": func(start, end int) []int {
			return seqInts(start, end)
		},
		"toJSON": func(v any) string {
			return toJSONString(v)
		},
		"jsonPath": func(expression string) string {
			return extractJSONPath(ctx.JSON, expression)
		},
		"nowFormat": func(layout string) string {
			t, err := time.Parse(time.RFC3339, ctx.Doc.GeneratedAt)
			if err != nil {
				return ctx.Doc.GeneratedAt
			}
			return t.Format(layout)
		},
	}

	result, err := r.tpl.Execute(pongoCtx)
	if err != nil {
		return nil, fmt.Errorf("jinja2 template render failed: %w", err)
	}
	return []byte(result), nil
}
