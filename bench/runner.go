// Package bench times identifier sources. A run is a fixed number of trials;
// each trial times a fixed number of Next calls individually and keeps their
// mean latency in microseconds.
package bench

import (
	"fmt"
	"math"
	"time"

	"github.com/idpool/idpool"
)

// Config is the configuration for a benchmark run
type Config struct {
	// Trials is how many times the measurement is repeated
	Trials int `default:"10"`

	// IDsPerTrial is the number of timed calls within one trial
	IDsPerTrial int `default:"1000"`
}

func (c Config) validate() error {
	if c.Trials <= 0 {
		return idpool.ConfigError{Field: "Trials", Reason: "must be positive"}
	}
	if c.IDsPerTrial <= 0 {
		return idpool.ConfigError{Field: "IDsPerTrial", Reason: "must be positive"}
	}
	return nil
}

// New returns a Runner, failing with a ConfigError when cfg is out of range.
func New(cfg Config) (*Runner, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Runner{config: cfg}, nil
}

// Runner runs latency trials against identifier sources. The same Runner can
// measure several sources in turn, which is how sources get compared under
// identical settings.
type Runner struct {
	config Config
}

// Run measures source and returns one Trial per configured trial, in order.
// It aborts on the first Next error, identifying the failed call.
func (r *Runner) Run(source idpool.Source) ([]Trial, error) {
	trials := make([]Trial, 0, r.config.Trials)
	durations := make([]time.Duration, r.config.IDsPerTrial)

	for t := 0; t < r.config.Trials; t++ {
		for i := range durations {
			start := time.Now()
			_, err := source.Next()
			elapsed := time.Since(start)

			if err != nil {
				return nil, fmt.Errorf("trial %d call %d: %w", t, i, err)
			}
			durations[i] = elapsed
		}

		trials = append(trials, Trial{
			Index:      t,
			Samples:    len(durations),
			MeanMicros: meanMicros(durations),
		})
	}

	return trials, nil
}

// meanMicros is NaN for zero durations: a trial with no samples has no mean.
func meanMicros(durations []time.Duration) float64 {
	if len(durations) == 0 {
		return math.NaN()
	}
	var total time.Duration
	for _, d := range durations {
		total += d
	}
	mean := float64(total) / float64(len(durations))
	return mean / float64(time.Microsecond)
}
