package app

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configurable parameters for the application.
type Config struct {
	RecordsFile   string
	WatchlistFile string
	CountriesFile string

	OutputFile   string // "" = stdout
	Format       string // "text" or "json"
	TemplateFile string // when set, rendered with Engine instead of Format
	Engine       string // "expr" or "jinja2"

	TraceSize int
	LogLevel  string

	Watch           bool
	WatcherDebounce time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		RecordsFile:   "records.json",
		WatchlistFile: "watchlist.json",
		CountriesFile: "countries.json",

		Format: "text",
		Engine: "expr",

		TraceSize: 200,
		LogLevel:  "info",

		WatcherDebounce: 500 * time.Millisecond,
	}
}

// ApplyEnv overrides fields from ENTRYDESK_* environment variables.
// Flags parsed in main take precedence over both defaults and environment.
func (c *Config) ApplyEnv() {
	envString("ENTRYDESK_RECORDS", &c.RecordsFile)
	envString("ENTRYDESK_WATCHLIST", &c.WatchlistFile)
	envString("ENTRYDESK_COUNTRIES", &c.CountriesFile)
	envString("ENTRYDESK_OUTPUT", &c.OutputFile)
	envString("ENTRYDESK_FORMAT", &c.Format)
	envString("ENTRYDESK_TEMPLATE", &c.TemplateFile)
	envString("ENTRYDESK_ENGINE", &c.Engine)
	envString("ENTRYDESK_LOG_LEVEL", &c.LogLevel)
	envInt("ENTRYDESK_TRACE_SIZE", &c.TraceSize)
	envBool("ENTRYDESK_WATCH", &c.Watch)
	envDurationMs("ENTRYDESK_DEBOUNCE_MS", &c.WatcherDebounce)
}

// Validate rejects configurations no run could satisfy.
func (c Config) Validate() error {
	if c.RecordsFile == "" || c.WatchlistFile == "" || c.CountriesFile == "" {
		return fmt.Errorf("all three input files must be set")
	}
	switch c.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("unknown format: %q (supported: text, json)", c.Format)
	}
	if c.TemplateFile != "" {
		switch c.Engine {
		case "expr", "jinja2":
		default:
			return fmt.Errorf("unknown template engine: %q (supported: expr, jinja2)", c.Engine)
		}
	}
	if c.TraceSize <= 0 {
		return fmt.Errorf("trace size must be positive, got %d", c.TraceSize)
	}
	if c.Watch && c.WatcherDebounce <= 0 {
		return fmt.Errorf("watcher debounce must be positive, got %v", c.WatcherDebounce)
	}
	return nil
}

func envString(key string, dst *string) {
	if v, ok := os.LookupEnv(key); ok {
		*dst = v
	}
}

func envInt(key string, dst *int) {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func envBool(key string, dst *bool) {
	if v, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

func envDurationMs(key string, dst *time.Duration) {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			*dst = time.Duration(n) * time.Millisecond
		}
	}
}
