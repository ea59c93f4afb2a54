package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/vortex-fintech/fieldnorm/config"
	"github.com/vortex-fintech/fieldnorm/foundation/logger"
	"github.com/vortex-fintech/fieldnorm/foundation/timeutil"
	"github.com/vortex-fintech/fieldnorm/normalize"
	"github.com/vortex-fintech/fieldnorm/runtime/metrics"
)

const (
	serviceName = "fieldnorm"

	exitOK      = 0
	exitFailed  = 1
	exitUsage   = 2
	stdioMarker = "-"
)

type flags struct {
	configPath      string
	steps           string
	in              string
	out             string
	format          string
	workers         int
	metricsTextfile string
	env             string
	dedupeKeys      string
	validate        bool
	printConfig     bool
}

func parseFlags(args []string, stderr io.Writer) (flags, error) {
	var f flags
	fs := flag.NewFlagSet(serviceName, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.configPath, "config", "", "TOML config file; FIELDNORM_* env vars override it")
	fs.StringVar(&f.steps, "steps", "", "Comma separated steps: whitespace,email,phone,name,website,social,zip,state (default from config)")
	fs.StringVar(&f.in, "in", stdioMarker, "Input file, - for stdin")
	fs.StringVar(&f.out, "out", stdioMarker, "Output file, - for stdout")
	fs.StringVar(&f.format, "format", "", "Record format: json|jsonl (default from config)")
	fs.IntVar(&f.workers, "workers", -1, "Records processed concurrently, 0 for one per CPU (default from config)")
	fs.StringVar(&f.metricsTextfile, "metrics-textfile", "", "Write Prometheus metrics to this file on exit")
	fs.StringVar(&f.env, "env", "", "Logger environment: development|debug|production (default from config)")
	fs.StringVar(&f.dedupeKeys, "dedupe-keys", "", "Comma separated output paths; drop later records repeating them (default from config)")
	fs.BoolVar(&f.validate, "validate", false, "Load and validate the config, then exit")
	fs.BoolVar(&f.printConfig, "print-config", false, "Print the effective config as TOML, then exit")
	if err := fs.Parse(args); err != nil {
		return flags{}, err
	}
	if fs.NArg() > 0 {
		return flags{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return f, nil
}

// overlay applies explicitly set flags on top of the loaded run settings.
func (f flags) overlay(r config.Run) config.Run {
	if f.steps != "" {
		r.Steps = config.ParseSteps(f.steps)
	}
	if f.format != "" {
		r.Format = f.format
	}
	if f.workers >= 0 {
		r.Workers = f.workers
	}
	if f.metricsTextfile != "" {
		r.MetricsTextfile = f.metricsTextfile
	}
	if f.env != "" {
		r.Env = f.env
	}
	if f.dedupeKeys != "" {
		r.DedupeKeys = splitList(f.dedupeKeys)
	}
	return r
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	f, err := parseFlags(args, stderr)
	if err != nil {
		return exitUsage
	}

	cfg, err := config.Load(f.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return exitUsage
	}
	cfg.Run = f.overlay(cfg.Run)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return exitUsage
	}

	if f.printConfig {
		if err := config.Encode(stdout, cfg); err != nil {
			fmt.Fprintf(stderr, "print config: %v\n", err)
			return exitFailed
		}
		return exitOK
	}

	log, err := logger.New(serviceName, cfg.Run.Env)
	if err != nil {
		fmt.Fprintf(stderr, "logger: %v\n", err)
		return exitFailed
	}
	defer log.SafeSync()

	reg := prometheus.NewRegistry()
	rec, err := metrics.New(reg, serviceName, "normalize")
	if err != nil {
		log.Errorw("metrics init failed", "error", err)
		return exitFailed
	}
	opts := []normalize.Option{
		normalize.WithLogger(log),
		normalize.WithMetrics(rec),
		normalize.WithClock(timeutil.UTCClock{}),
	}

	pipe, err := cfg.Pipeline(cfg.Run.Steps, opts...)
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return exitUsage
	}
	if f.validate {
		fmt.Fprintf(stdout, "config ok: steps=%s\n", pipe.Steps())
		return exitOK
	}

	ctx = logger.ContextWithRunID(ctx, uuid.NewString())
	code := process(ctx, log, pipe, cfg.Run, f, stdin, stdout, opts)

	if path := cfg.Run.MetricsTextfile; path != "" {
		if err := metrics.WriteTextfile(path, reg); err != nil {
			log.ErrorwCtx(ctx, "metrics textfile write failed", "path", path, "error", err)
			return exitFailed
		}
	}
	return code
}

func process(ctx context.Context, log *logger.Logger, pipe *normalize.Pipeline, r config.Run, f flags, stdin io.Reader, stdout io.Writer, opts []normalize.Option) int {
	var clock timeutil.UTCClock
	start := clock.Now()
	log.InfowCtx(ctx, "run started", "steps", pipe.Steps(), "format", r.Format, "in", f.in)

	in, closeIn, err := openInput(f.in, stdin)
	if err != nil {
		log.ErrorwCtx(ctx, "open input failed", "error", err)
		return exitFailed
	}
	defer closeIn()

	batch, err := readRecords(in, r.Format)
	if err != nil {
		log.ErrorwCtx(ctx, "read input failed", "error", err)
		return exitFailed
	}

	workers := r.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}
	results, err := normalize.ProcessBatch(ctx, pipe, batch.records, workers, opts...)
	if err != nil {
		log.ErrorwCtx(ctx, "run interrupted", "error", err)
		return exitFailed
	}
	total := len(results)
	results, dropped := normalize.Dedupe(results, r.DedupeKeys)
	if dropped > 0 {
		log.InfowCtx(ctx, "duplicates removed", "keys", r.DedupeKeys, "removed", dropped)
	}

	out, closeOut, err := openOutput(f.out, stdout)
	if err != nil {
		log.ErrorwCtx(ctx, "open output failed", "error", err)
		return exitFailed
	}
	failed, err := writeResults(out, batch, results, r.Format)
	if cerr := closeOut(); err == nil {
		err = cerr
	}
	if err != nil {
		log.ErrorwCtx(ctx, "write output failed", "error", err)
		return exitFailed
	}

	log.InfowCtx(ctx, "run finished",
		"records", total,
		"written", len(results)-failed,
		"failed", failed,
		"duration", clock.Since(start).String(),
	)
	if failed > 0 {
		return exitFailed
	}
	return exitOK
}

func openInput(path string, stdin io.Reader) (io.Reader, func(), error) {
	if path == "" || path == stdioMarker {
		return stdin, func() {}, nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return fh, func() { _ = fh.Close() }, nil
}

func openOutput(path string, stdout io.Writer) (io.Writer, func() error, error) {
	if path == "" || path == stdioMarker {
		return stdout, func() error { return nil }, nil
	}
	fh, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return fh, fh.Close, nil
}

// splitList splits a comma separated list, trimming blanks. Case is kept.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
