package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/kanadia/entrydesk/internal/infrastructure/outbound/filesystem"
	"github.com/kanadia/entrydesk/internal/infrastructure/outbound/logging"
	"github.com/kanadia/entrydesk/internal/infrastructure/usecases"
	"github.com/kanadia/entrydesk/internal/infrastructure/wiring"
)

// App is the thin lifecycle manager that delegates dependency construction to wiring.Container.
type App struct {
	cfg       Config
	container *wiring.Container
}

// New constructs the application by creating a logger and wiring the
// infrastructure components via the container. Logs go to stderr so the
// rendered report owns stdout.
func New(cfg Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	level := parseLogLevel(cfg.LogLevel)
	logger := logging.New(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	container, err := wiring.New(wiring.Params{
		Paths:     cfg.paths(),
		TraceSize: cfg.TraceSize,
		Logger:    logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to wire infrastructure: %w", err)
	}

	return &App{
		cfg:       cfg,
		container: container,
	}, nil
}

// Run executes one batch, or, in watch mode, keeps re-running the batch when
// an input file changes until SIGINT/SIGTERM or context cancellation.
func (a *App) Run(ctx context.Context) error {
	if !a.cfg.Watch {
		return a.runOnce(ctx)
	}

	logger := a.container.Logger()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := a.runOnce(ctx); err != nil {
		return err
	}

	watcher, err := filesystem.NewWatcher(a.cfg.paths(), a.cfg.WatcherDebounce, logger, func() {
		if err := a.runOnce(context.Background()); err != nil {
			logger.Error("re-run failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to start file watcher: %w", err)
	}
	watcher.Start()
	defer watcher.Stop()

	logger.Info("watching input files",
		"records", a.cfg.RecordsFile,
		"watchlist", a.cfg.WatchlistFile,
		"countries", a.cfg.CountriesFile,
	)

	<-ctx.Done()
	logger.Info("stopping")
	return nil
}

func (a *App) runOnce(ctx context.Context) error {
	res, err := a.container.RunBatchUseCase().Execute(ctx)
	if err != nil {
		return err
	}

	out, closeOut, err := a.openOutput()
	if err != nil {
		return err
	}
	defer closeOut()

	opts := usecases.ReportOptions{
		Format:       a.cfg.Format,
		TemplateFile: a.cfg.TemplateFile,
		Engine:       a.cfg.Engine,
	}
	return a.container.WriteReportUseCase().Execute(res, opts, out)
}

func (a *App) openOutput() (io.Writer, func(), error) {
	if a.cfg.OutputFile == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(a.cfg.OutputFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open output file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

func (c Config) paths() filesystem.Paths {
	return filesystem.Paths{
		Records:   c.RecordsFile,
		Watchlist: c.WatchlistFile,
		Countries: c.CountriesFile,
	}
}

func parseLogLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
