package report

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/uuid"
)

func buildExprEnv(ctx Context) exprEnv {
	return exprEnv{
		Decision: func(i int) string {
			if i < 0 || i >= len(ctx.Doc.Decisions) {
				return ""
			}
			return ctx.Doc.Decisions[i]
		},
		Decisions: func() []string {
			return ctx.Doc.Decisions
		},
		Result: func(i int) map[string]any {
			if i < 0 || i >= len(ctx.Doc.Results) {
				return nil
			}
			e := ctx.Doc.Results[i]
			return map[string]any{
				"index":    e.Index,
				"passport": e.Passport,
				"decision": e.Decision,
				"rule":     e.Rule,
				"reason":   e.Reason,
			}
		},
		Count: func(name string) int {
			return ctx.Doc.Summary[name]
		},
		Total: func() int {
			return len(ctx.Doc.Decisions)
		},
		RunID: func() string {
			return ctx.Doc.RunID
		},
		Now: func() string {
			return ctx.Doc.GeneratedAt
		},
		NowFormat: func(layout string) string {
			t, err := time.Parse(time.RFC3339, ctx.Doc.GeneratedAt)
			if err != nil {
				return ctx.Doc.GeneratedAt
			}
			return t.Format(layout)
		},
		UUID: func() string {
			return uuid.NewString()
		},
		Seq: func(start, end int) []int {
			return seqInts(start, end)
		},
		ToJSON: func(v any) string {
			return toJSONString(v)
		},
		JsonPath: func(expression string) string {
			return extractJSONPath(ctx.JSON, expression)
		},
	}
}

func seqInts(start, end int) []int {
	if end < start {
		return nil
	}
	s := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		s = append(s, i)
	}
	return s
}

func toJSONString(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}

func extractJSONPath(doc []byte, expression string) string {
	var data any
	if err := json.Unmarshal(doc, &data); err != nil {
		return ""
	}
	result, err := jsonpath.Get(expression, data)
	if err != nil {
		return ""
	}
	switch v := result.(type) {
	case string:
		return v
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(b)
	}
}
