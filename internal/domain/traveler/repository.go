package traveler

import "context"

// Repository is the port for loading the three input sources.
// Implementations own deserialization; the decision core never reads files.
type Repository interface {
	// LoadRecords loads the traveler entry records in source order.
	// A structurally malformed record decodes to a zero Record; only an
	// unreadable or non-list source is an error.
	LoadRecords(ctx context.Context) ([]*Record, error)

	// LoadWatchlist loads the watchlist. A malformed watchlist is a
	// configuration error, not a per-entry condition.
	LoadWatchlist(ctx context.Context) ([]WatchlistEntry, error)

	// LoadCountries loads the country-attributes table. A malformed table
	// is a configuration error.
	LoadCountries(ctx context.Context) ([]CountryInfo, error)
}
