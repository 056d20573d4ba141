package decide

import "github.com/kanadia/entrydesk/internal/domain/traveler"

// OnWatchlist reports whether the record matches any watchlist entry, by
// exact, case-sensitive first+last name pair or by passport number. Every
// entry is considered; a non-matching entry never ends the scan early.
func OnWatchlist(r *traveler.Record, watchlist []traveler.WatchlistEntry) bool {
	for _, w := range watchlist {
		if w.FirstName == r.FirstName && w.LastName == r.LastName {
			return true
		}
		if w.Passport == r.Passport {
			return true
		}
	}
	return false
}
