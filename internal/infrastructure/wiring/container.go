package wiring

import (
	"fmt"

	"github.com/kanadia/entrydesk/internal/domain/decide"
	"github.com/kanadia/entrydesk/internal/domain/trace"
	"github.com/kanadia/entrydesk/internal/infrastructure/outbound/clock"
	"github.com/kanadia/entrydesk/internal/infrastructure/outbound/filesystem"
	"github.com/kanadia/entrydesk/internal/infrastructure/outbound/report"
	"github.com/kanadia/entrydesk/internal/infrastructure/ports"
	"github.com/kanadia/entrydesk/internal/infrastructure/usecases"
)

// Params holds the subset of configuration needed to construct infrastructure components.
type Params struct {
	Paths     filesystem.Paths
	TraceSize int
	Logger    ports.Logger
}

// Container owns the construction of all infrastructure components.
type Container struct {
	logger   ports.Logger
	runUC    *usecases.RunBatchUseCase
	reportUC *usecases.WriteReportUseCase
	traceBuf *trace.RingBuffer
}

// New constructs all infrastructure components. Repository construction runs
// first so missing input sources fail before anything else is built.
func New(p Params) (*Container, error) {
	repo, err := filesystem.NewFileRepository(p.Paths)
	if err != nil {
		return nil, fmt.Errorf("failed to create repository: %w", err)
	}

	clk := clock.New()
	traceBuf := trace.NewRingBuffer(p.TraceSize)
	evaluator := decide.NewEvaluator()
	registry := report.NewRegistry()

	runUC := usecases.NewRunBatchUseCase(repo, evaluator, clk, p.Logger, traceBuf)
	reportUC := usecases.NewWriteReportUseCase(registry, p.Logger)

	return &Container{
		logger:   p.Logger,
		runUC:    runUC,
		reportUC: reportUC,
		traceBuf: traceBuf,
	}, nil
}

// Logger returns the logger passed at construction time.
func (c *Container) Logger() ports.Logger {
	return c.logger
}

// RunBatchUseCase returns the use case for evaluating a full batch.
func (c *Container) RunBatchUseCase() *usecases.RunBatchUseCase {
	return c.runUC
}

// WriteReportUseCase returns the use case for rendering run reports.
func (c *Container) WriteReportUseCase() *usecases.WriteReportUseCase {
	return c.reportUC
}

// TraceBuf returns the trace ring buffer.
func (c *Container) TraceBuf() *trace.RingBuffer {
	return c.traceBuf
}
