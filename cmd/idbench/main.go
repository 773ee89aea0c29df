// Package main compares the per-call latency of direct identifier generation
// against a pre-filled identifier pool.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	json "github.com/goccy/go-json"

	"github.com/idpool/idpool"
	"github.com/idpool/idpool/bench"
	"github.com/idpool/idpool/idgen"
)

func main() {
	os.Exit(realMain(os.Args[1:], os.Stdout, os.Stderr))
}

// realMain keeps main testable: the report goes to stdout, everything else to
// stderr, and the return value becomes the exit code.
func realMain(args []string, stdout, stderr io.Writer) int {
	cfg, err := loadConfig(args)
	if err != nil {
		// Flag parsing errors exit inside loadConfig; what reaches this point
		// is a config file problem the flag set never saw.
		fmt.Fprintln(stderr, err)
		return 2
	}

	setupLogger(stderr, cfg.Verbose)

	if err := run(cfg, stdout); err != nil {
		slog.Error("benchmark failed", "error", err)
		return 1
	}
	return 0
}

func setupLogger(w io.Writer, verbose bool) {
	opts := &slog.HandlerOptions{Level: slog.LevelWarn}
	if verbose {
		opts.Level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, opts)))
}

// run measures the direct source first, then the pooled one, and writes the
// comparison to out in the configured format.
func run(cfg config, out io.Writer) error {
	if cfg.Format != "table" && cfg.Format != "json" {
		return fmt.Errorf("unknown output format %q, want table or json", cfg.Format)
	}
	gen, err := cfg.generator()
	if err != nil {
		return err
	}
	policy, err := cfg.refillPolicy()
	if err != nil {
		return err
	}
	if cfg.UUIDRandPool {
		idgen.EnableUUIDRandPool()
	}

	runner, err := bench.New(bench.Config{Trials: cfg.Trials, IDsPerTrial: cfg.IDsPerTrial})
	if err != nil {
		return err
	}

	// Constructing the pooled source up front surfaces capacity errors before
	// any measurement has run; it also pre-fills the pool, which is part of
	// the deal under measurement anyway.
	pooled, err := idpool.New(idpool.Config{Capacity: cfg.Capacity, Policy: policy}, gen)
	if err != nil {
		return err
	}

	slog.Debug("measuring direct source", "generator", cfg.Generator, "trials", cfg.Trials, "ids_per_trial", cfg.IDsPerTrial)
	directTrials, err := runner.Run(idpool.NewDirect(gen))
	if err != nil {
		return fmt.Errorf("direct source: %w", err)
	}

	slog.Debug("measuring pooled source", "capacity", cfg.Capacity, "refill", policy)
	pooledTrials, err := runner.Run(pooled)
	if err != nil {
		return fmt.Errorf("pooled source: %w", err)
	}

	closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pooled.Close(closeCtx); err != nil {
		slog.Warn("pooled source did not close cleanly", "error", err)
	}

	stats := pooled.Stats()
	slog.Debug("pooled source stats",
		"served", stats.Served,
		"pool_hits", stats.PoolHits,
		"fallbacks", stats.Fallbacks,
		"refills", stats.Refills,
		"refill_failures", stats.RefillFailures)

	direct := bench.Result{Name: "direct", Trials: directTrials}
	candidate := bench.Result{Name: "pooled", Trials: pooledTrials}

	if cfg.Format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Baseline  bench.Result `json:"baseline"`
			Candidate bench.Result `json:"candidate"`
		}{direct, candidate})
	}
	return bench.WriteComparison(out, direct, candidate)
}
