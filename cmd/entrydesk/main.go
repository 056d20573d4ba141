package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/kanadia/entrydesk/internal/app"
)

func main() {
	// Optional .env; absence is not an error.
	_ = godotenv.Load()

	cfg := app.DefaultConfig()
	cfg.ApplyEnv()

	flag.StringVar(&cfg.RecordsFile, "records", cfg.RecordsFile, "traveler records file (.json, .yaml)")
	flag.StringVar(&cfg.WatchlistFile, "watchlist", cfg.WatchlistFile, "watchlist file (.json, .yaml)")
	flag.StringVar(&cfg.CountriesFile, "countries", cfg.CountriesFile, "country attributes file (.json, .yaml)")
	flag.StringVar(&cfg.OutputFile, "o", cfg.OutputFile, "output file (default stdout)")
	flag.StringVar(&cfg.Format, "format", cfg.Format, "report format (text, json)")
	flag.StringVar(&cfg.TemplateFile, "template", cfg.TemplateFile, "report template file (overrides -format)")
	flag.StringVar(&cfg.Engine, "engine", cfg.Engine, "template engine (expr, jinja2)")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	flag.IntVar(&cfg.TraceSize, "trace-size", cfg.TraceSize, "number of trace entries to keep")
	flag.BoolVar(&cfg.Watch, "watch", cfg.Watch, "re-run when an input file changes")
	flag.Parse()

	a, err := app.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize: %v\n", err)
		os.Exit(1)
	}

	if err := a.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
