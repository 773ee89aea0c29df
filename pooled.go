package idpool

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"github.com/idpool/idpool/idgen"
)

// refillKey is the singleflight key deduplicating background refills: every
// caller observing an empty pool joins the refill already in flight.
const refillKey = "refill"

// Stats provides statistics about pool's size, activity & config
type Stats struct {
	Capacity       int
	Pooled         int
	Served         int64
	PoolHits       int64
	Fallbacks      int64
	Refills        int64
	RefillFailures int64
}

// New returns a PooledSource with its pool already filled to cfg.Capacity, so
// the batch-generation cost of the first Capacity calls is paid here, not in
// Next. A nil gen defaults to idgen.UUID.
//
// New fails with a ConfigError when cfg is out of range and with a
// GenerationError when the initial batch can't be generated.
func New(cfg Config, gen Generator) (*PooledSource, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if gen == nil {
		gen = idgen.UUID
	}

	s := &PooledSource{
		config: cfg,
		gen:    gen,
	}

	batch, err := s.generateBatch()
	if err != nil {
		return nil, err
	}
	s.pool = batch

	return s, nil
}

// PooledSource implements Source backed by a pre-generated batch of
// identifiers. Once the batch is observed empty it is regenerated wholesale
// under the configured RefillPolicy; old contents are discarded on swap.
//
// A PooledSource is safe for concurrent use: pops and batch swaps are
// serialized, so no two callers receive the same identifier and the pool is
// never read mid-replacement.
type PooledSource struct {
	config Config

	gen Generator

	mu     sync.Mutex
	pool   []string
	closed bool

	refills    singleflight.Group
	refillDone <-chan singleflight.Result

	stats struct {
		served         atomic.Int64
		poolHits       atomic.Int64
		fallbacks      atomic.Int64
		refills        atomic.Int64
		refillFailures atomic.Int64
	}
}

// Next pops one pooled identifier. On exhaustion it either blocks until a
// fresh batch is in place (RefillSynchronous) or returns a directly generated
// identifier while the batch is rebuilt in the background
// (RefillAsynchronous). After Close it returns ErrClosed.
func (s *PooledSource) Next() (string, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return "", ErrClosed
	}

	if n := len(s.pool); n > 0 {
		// Identifiers are interchangeable, so we pop from the end: O(1) and
		// no element ever moves.
		id := s.pool[n-1]
		s.pool = s.pool[:n-1]
		s.mu.Unlock()

		s.stats.served.Add(1)
		s.stats.poolHits.Add(1)
		return id, nil
	}

	if s.config.Policy == RefillSynchronous {
		// The lock is held across the whole regeneration: the call that
		// observed exhaustion pays the full batch latency and concurrent
		// callers queue behind it, then serve from the fresh batch.
		batch, err := s.generateBatch()
		if err != nil {
			s.mu.Unlock()
			return "", err
		}
		id := batch[len(batch)-1]
		s.pool = batch[:len(batch)-1]
		s.mu.Unlock()

		s.stats.refills.Add(1)
		s.stats.served.Add(1)
		s.stats.poolHits.Add(1)
		return id, nil
	}

	s.mu.Unlock()
	s.triggerRefill()

	// The exhaustion observer is served by direct generation rather than
	// waiting for the rebuild.
	id, err := s.gen()
	if err != nil {
		return "", GenerationError{err}
	}
	s.stats.served.Add(1)
	s.stats.fallbacks.Add(1)
	return id, nil
}

// Stats provides thread-safe statistics about pool's size, activity & config
func (s *PooledSource) Stats() Stats {
	s.mu.Lock()
	pooled := len(s.pool)
	s.mu.Unlock()

	return Stats{
		Capacity:       s.config.Capacity,
		Pooled:         pooled,
		Served:         s.stats.served.Load(),
		PoolHits:       s.stats.poolHits.Load(),
		Fallbacks:      s.stats.fallbacks.Load(),
		Refills:        s.stats.refills.Load(),
		RefillFailures: s.stats.refillFailures.Load(),
	}
}

// Close stops scheduling refills and waits for an in-flight background
// refill to finish, or returns a wrapped ctx.Err() if the context is done
// first. It is safe to call Close more than once; Next returns ErrClosed
// afterwards.
func (s *PooledSource) Close(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	done := s.refillDone
	s.refillDone = nil
	s.mu.Unlock()

	if done == nil {
		return nil
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("can't close source: %w", ctx.Err())
	}
}

// triggerRefill schedules one background regeneration unless the source is
// closed. Duplicate triggers while a regeneration is in flight join it
// instead of starting a second one.
func (s *PooledSource) triggerRefill() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	// DoChan only spawns the call, it never blocks, so holding the lock here
	// is fine and orders the trigger against Close.
	s.refillDone = s.refills.DoChan(refillKey, s.rebuild)
}

// rebuild regenerates the whole batch and swaps it in. The swap is skipped
// when the source was closed meanwhile, or when a previous rebuild already
// landed and the pool is no longer empty.
func (s *PooledSource) rebuild() (interface{}, error) {
	batch, err := s.generateBatch()
	if err != nil {
		s.stats.refillFailures.Add(1)
		return nil, err
	}

	s.mu.Lock()
	if !s.closed && len(s.pool) == 0 {
		s.pool = batch
		s.stats.refills.Add(1)
	}
	s.mu.Unlock()

	return nil, nil
}

func (s *PooledSource) generateBatch() ([]string, error) {
	batch := make([]string, 0, s.config.Capacity)
	for i := 0; i < s.config.Capacity; i++ {
		id, err := s.gen()
		if err != nil {
			return nil, GenerationError{err}
		}
		batch = append(batch, id)
	}
	return batch, nil
}
