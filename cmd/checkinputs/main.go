// Command checkinputs verifies that the three input sources exist and parse
// cleanly, for use in CI and pre-run checks. It exits non-zero on the first
// structural problem.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/kanadia/entrydesk/internal/infrastructure/outbound/filesystem"
)

func main() {
	var paths filesystem.Paths
	flag.StringVar(&paths.Records, "records", "records.json", "traveler records file")
	flag.StringVar(&paths.Watchlist, "watchlist", "watchlist.json", "watchlist file")
	flag.StringVar(&paths.Countries, "countries", "countries.json", "country attributes file")
	flag.Parse()

	repo, err := filesystem.NewFileRepository(paths)
	if err != nil {
		fail(err)
	}

	ctx := context.Background()
	records, err := repo.LoadRecords(ctx)
	if err != nil {
		fail(err)
	}
	watchlist, err := repo.LoadWatchlist(ctx)
	if err != nil {
		fail(err)
	}
	countries, err := repo.LoadCountries(ctx)
	if err != nil {
		fail(err)
	}

	fmt.Printf("ok: %d records, %d watchlist entries, %d countries\n",
		len(records), len(watchlist), len(countries))
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "checkinputs: %v\n", err)
	os.Exit(1)
}
