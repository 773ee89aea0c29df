package idpool

import "fmt"

// RefillPolicy selects the concurrency contract applied when the pool is
// observed empty.
type RefillPolicy int

const (
	// RefillSynchronous blocks the call that observes exhaustion until a
	// fresh batch has been generated and swapped in, then serves from it.
	// Fully deterministic; the triggering call pays the whole batch latency.
	RefillSynchronous RefillPolicy = iota

	// RefillAsynchronous rebuilds the batch in the background. Calls arriving
	// before the rebuild completes are served by direct generation, and at
	// most one rebuild is in flight at any time.
	RefillAsynchronous
)

func (p RefillPolicy) String() string {
	switch p {
	case RefillSynchronous:
		return "sync"
	case RefillAsynchronous:
		return "async"
	default:
		return fmt.Sprintf("unknown(%d)", int(p))
	}
}

// Config is the configuration for the pooled source implementation
type Config struct {
	// Capacity is the number of identifiers generated per batch.
	Capacity int `default:"4096"`

	// Policy is the refill contract applied once the batch runs out.
	Policy RefillPolicy
}

func (c Config) validate() error {
	if c.Capacity <= 0 {
		return ConfigError{Field: "Capacity", Reason: "must be positive"}
	}
	switch c.Policy {
	case RefillSynchronous, RefillAsynchronous:
		return nil
	default:
		return ConfigError{Field: "Policy", Reason: "is not a known refill policy"}
	}
}
