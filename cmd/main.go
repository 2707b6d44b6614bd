package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/okian/startlist/internal/adapters/sheet"
	app "github.com/okian/startlist/internal/app"
	"github.com/okian/startlist/internal/config"
	"github.com/okian/startlist/pkg/logger"
	"github.com/okian/startlist/pkg/metrics"
)

// stdoutPath selects standard output as the start list destination.
const stdoutPath = "-"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one conversion and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if err := logger.Init(logger.WithWriter(stderr)); err != nil {
		fmt.Fprintln(stderr, "failed to initialize logging:", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintln(stderr, "failed to load config:", err)
		return 1
	}

	if err := parseFlags(cfg, args, stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 2
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	if cfg.LogJSON {
		_ = logger.Init(logger.WithWriter(stderr), logger.WithJSON(true))
	}
	log := logger.Get()
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	m := metrics.Default()
	svc := app.New(
		app.WithLogger(log),
		app.WithMetrics(m),
		app.WithStartBib(cfg.StartBib),
		app.WithColumns(sheet.Columns(cfg.Columns)),
		app.WithSheet(cfg.Sheet),
		app.WithDelimiter(cfg.DelimiterRune()),
	)

	if cfg.Output == stdoutPath {
		_, err = svc.ConvertTo(ctx, cfg.Input, stdout)
	} else {
		_, err = svc.Convert(ctx, cfg.Input, cfg.Output)
	}

	if cfg.MetricsFile != "" {
		if merr := m.WriteTextfile(cfg.MetricsFile); merr != nil {
			log.Warn(ctx, "metrics not written", logger.String("metrics_file", cfg.MetricsFile), logger.Error(merr))
		}
	}

	if err != nil {
		fmt.Fprintln(stderr, "conversion failed:", err)
		return 1
	}
	return 0
}

// parseFlags overrides cfg with command line flags.
func parseFlags(cfg *config.Config, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("startlist", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { usage(fs) }

	fs.StringVar(&cfg.Input, "in", cfg.Input, "Registration roster (.xlsx, .xlsm or .csv)")
	fs.StringVar(&cfg.Output, "out", cfg.Output, `Start list CSV to write, or "-" for stdout`)
	fs.IntVar(&cfg.StartBib, "start-bib", cfg.StartBib, "Bib of the first team")
	fs.StringVar(&cfg.Delimiter, "delimiter", cfg.Delimiter, "Output column separator")
	fs.StringVar(&cfg.Sheet, "sheet", cfg.Sheet, "Worksheet to read (default: first sheet)")
	fs.StringVar(&cfg.MetricsFile, "metrics-file", cfg.MetricsFile, "Write run metrics in Prometheus text format to this file")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return nil
}

func usage(fs *flag.FlagSet) {
	fmt.Fprint(fs.Output(), `Duo start list builder
======================

Turns a roster with one row per athlete into a start list with one row per
two-athlete team: bib, team category, team gender and display name.

Usage:
  startlist [options]

Options:
`)
	fs.PrintDefaults()
	fmt.Fprint(fs.Output(), `
Environment:
  STARTLIST_CONFIG      YAML configuration file
  STARTLIST_<KEY>       Override a configuration key, e.g. STARTLIST_START_BIB=100
  STARTLIST_COLUMNS_<F> Override a roster header, e.g. STARTLIST_COLUMNS_TEAM=Team

Examples:
  startlist -in dist/xs.xlsx -out dist/teams.csv
  startlist -in inscriptions.csv -out - -start-bib 100 -delimiter ';'
`)
}
