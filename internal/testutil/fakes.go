package testutil

import (
	"context"
	"time"

	"github.com/kanadia/entrydesk/internal/domain/traveler"
	"github.com/kanadia/entrydesk/internal/infrastructure/ports"
)

var _ ports.Logger = (*NoopLogger)(nil)

// NoopLogger discards all log output.
type NoopLogger struct{}

func (l *NoopLogger) Info(string, ...any)  {}
func (l *NoopLogger) Warn(string, ...any)  {}
func (l *NoopLogger) Error(string, ...any) {}
func (l *NoopLogger) Debug(string, ...any) {}

var _ ports.Clock = (*FixedClock)(nil)

// FixedClock returns a fixed time and never sleeps.
type FixedClock struct {
	T time.Time
}

func (c *FixedClock) Now() time.Time { return c.T }
func (c *FixedClock) SleepContext(context.Context, time.Duration) error {
	return nil
}

var _ traveler.Repository = (*FakeRepository)(nil)

// FakeRepository serves canned input data, or a configured error.
type FakeRepository struct {
	Records   []*traveler.Record
	Watchlist []traveler.WatchlistEntry
	Countries []traveler.CountryInfo

	RecordsErr   error
	WatchlistErr error
	CountriesErr error
}

func (r *FakeRepository) LoadRecords(context.Context) ([]*traveler.Record, error) {
	return r.Records, r.RecordsErr
}

func (r *FakeRepository) LoadWatchlist(context.Context) ([]traveler.WatchlistEntry, error) {
	return r.Watchlist, r.WatchlistErr
}

func (r *FakeRepository) LoadCountries(context.Context) ([]traveler.CountryInfo, error) {
	return r.Countries, r.CountriesErr
}
