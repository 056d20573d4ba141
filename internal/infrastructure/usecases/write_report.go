package usecases

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/kanadia/entrydesk/internal/domain/decide"
	"github.com/kanadia/entrydesk/internal/infrastructure/outbound/report"
	"github.com/kanadia/entrydesk/internal/infrastructure/ports"
)

// ReportOptions selects how a run is rendered. When TemplateFile is set it
// wins over Format and is compiled with the named engine.
type ReportOptions struct {
	Format       string // "text" or "json"
	TemplateFile string
	Engine       string // "expr" or "jinja2"
}

// WriteReportUseCase renders a run result and writes it to the output.
type WriteReportUseCase struct {
	registry *report.Registry
	logger   ports.Logger
}

// NewWriteReportUseCase creates a new use case.
func NewWriteReportUseCase(registry *report.Registry, logger ports.Logger) *WriteReportUseCase {
	return &WriteReportUseCase{registry: registry, logger: logger}
}

// Execute renders the run per opts and writes the bytes to out.
func (uc *WriteReportUseCase) Execute(res *RunBatchResult, opts ReportOptions, out io.Writer) error {
	doc := report.Document{
		RunID:       res.RunID,
		GeneratedAt: res.EvaluatedAt.Format(time.RFC3339),
		Decisions:   decide.Strings(res.Decisions),
		Summary:     res.Summary.ByName(),
		Results:     res.Results,
	}

	ctx, err := report.NewContext(doc)
	if err != nil {
		return err
	}

	renderer, err := uc.renderer(opts)
	if err != nil {
		return err
	}

	data, err := renderer.Render(ctx)
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	uc.logger.Debug("report written", "run_id", res.RunID, "bytes", len(data))
	return nil
}

func (uc *WriteReportUseCase) renderer(opts ReportOptions) (report.Renderer, error) {
	if opts.TemplateFile != "" {
		source, err := os.ReadFile(opts.TemplateFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read report template: %w", err)
		}
		return uc.registry.Compile(opts.Engine, filepath.Base(opts.TemplateFile), string(source))
	}

	switch opts.Format {
	case "", "text":
		return report.TextRenderer{}, nil
	case "json":
		return report.JSONRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown report format: %q (supported: text, json)", opts.Format)
	}
}
