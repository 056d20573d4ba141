package wiring_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/kanadia/entrydesk/internal/infrastructure/outbound/filesystem"
	"github.com/kanadia/entrydesk/internal/infrastructure/wiring"
	"github.com/kanadia/entrydesk/internal/testutil"
)

func validParams(t *testing.T) wiring.Params {
	t.Helper()
	dir := t.TempDir()

	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
		return path
	}

	return wiring.Params{
		Paths: filesystem.Paths{
			Records: write("records.json", `[
  {
    "first_name": "Ayda",
    "last_name": "Renn",
    "birth_date": "1984-03-22",
    "passport": "JW702-F4G2H-QR5S1-8DJ20-X2F11",
    "home": {"city": "Porthaven", "region": "West", "country": "KAN"},
    "from": {"city": "Porthaven", "region": "West", "country": "KAN"},
    "entry_reason": "returning"
  }
]`),
			Watchlist: write("watchlist.json", `[]`),
			Countries: write("countries.json", `[{"code": "KAN", "medical_advisory": "", "visitor_visa_required": false, "transit_visa_required": false}]`),
		},
		TraceSize: 50,
		Logger:    &testutil.NoopLogger{},
	}
}

func TestNew_Success(t *testing.T) {
	c, err := wiring.New(validParams(t))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if c.Logger() == nil {
		t.Error("Logger() returned nil")
	}
	if c.RunBatchUseCase() == nil {
		t.Error("RunBatchUseCase() returned nil")
	}
	if c.WriteReportUseCase() == nil {
		t.Error("WriteReportUseCase() returned nil")
	}
	if c.TraceBuf() == nil {
		t.Error("TraceBuf() returned nil")
	}
}

func TestNew_WiredPipelineRuns(t *testing.T) {
	c, err := wiring.New(validParams(t))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	res, err := c.RunBatchUseCase().Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if len(res.Decisions) != 1 || res.Decisions[0].String() != "Accept" {
		t.Errorf("unexpected decisions: %v", res.Decisions)
	}
	if c.TraceBuf().Count() != 1 {
		t.Errorf("expected 1 trace entry, got %d", c.TraceBuf().Count())
	}
}

func TestNew_MissingInputFails(t *testing.T) {
	p := validParams(t)
	p.Paths.Records = filepath.Join(t.TempDir(), "absent.json")

	if _, err := wiring.New(p); err == nil {
		t.Error("expected an error for a missing input source")
	}
}
