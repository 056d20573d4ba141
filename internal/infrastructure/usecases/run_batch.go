package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kanadia/entrydesk/internal/domain/decide"
	"github.com/kanadia/entrydesk/internal/domain/trace"
	"github.com/kanadia/entrydesk/internal/domain/traveler"
	"github.com/kanadia/entrydesk/internal/infrastructure/ports"
	"github.com/kanadia/entrydesk/internal/infrastructure/services"
)

// RunBatchResult is the outcome of one full batch evaluation.
type RunBatchResult struct {
	RunID       string
	EvaluatedAt time.Time
	Decisions   []decide.Decision
	Results     []trace.Entry
	Summary     services.Summary
}

// RunBatchUseCase loads the three sources, evaluates every record, and
// records the run in the trace buffer.
type RunBatchUseCase struct {
	repo      traveler.Repository
	evaluator *decide.Evaluator
	clock     ports.Clock
	logger    ports.Logger
	traceBuf  *trace.RingBuffer
}

// NewRunBatchUseCase creates a new use case.
func NewRunBatchUseCase(repo traveler.Repository, evaluator *decide.Evaluator, clock ports.Clock, logger ports.Logger, traceBuf *trace.RingBuffer) *RunBatchUseCase {
	return &RunBatchUseCase{
		repo:      repo,
		evaluator: evaluator,
		clock:     clock,
		logger:    logger,
		traceBuf:  traceBuf,
	}
}

// Execute runs one batch. It either returns one decision per record, in
// input order, or fails before any decision is produced.
func (uc *RunBatchUseCase) Execute(ctx context.Context) (*RunBatchResult, error) {
	records, err := uc.repo.LoadRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load traveler records: %w", err)
	}
	watchlist, err := uc.repo.LoadWatchlist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load watchlist: %w", err)
	}
	countries, err := uc.repo.LoadCountries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load countries: %w", err)
	}

	uc.logger.Debug("input sources loaded",
		"records", len(records), "watchlist", len(watchlist), "countries", len(countries))

	runID := uuid.NewString()
	// Sampled once so every record in the batch is judged against the same instant.
	evalDate := uc.clock.Now()

	decisions, results := uc.evaluator.EvaluateAll(records, watchlist, countries, evalDate)
	for i := range results {
		results[i].Timestamp = evalDate
		results[i].RunID = runID
	}
	uc.traceBuf.AddAll(results)

	summary := services.Summarize(decisions)
	uc.logger.Info("batch evaluated",
		"run_id", runID,
		"records", len(records),
		"accept", summary.Accept,
		"reject", summary.Reject,
		"secondary", summary.Secondary,
		"quarantine", summary.Quarantine,
	)

	return &RunBatchResult{
		RunID:       runID,
		EvaluatedAt: evalDate,
		Decisions:   decisions,
		Results:     results,
		Summary:     summary,
	}, nil
}
