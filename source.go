// Package idpool dispenses unique textual identifiers, either generated on
// demand or drawn from a pre-generated batch that is regenerated wholesale
// once it runs out.
package idpool

import "github.com/idpool/idpool/idgen"

// Source produces a unique textual identifier on each call. Identifiers are
// opaque; uniqueness is best-effort, inherited from the underlying
// generator's collision resistance.
type Source interface {
	// Next returns an identifier not previously returned by this source.
	// It never blocks indefinitely; a generation failure aborts the call.
	Next() (string, error)
}

//go:generate mockery -outpkg idpoolmock -output idpoolmock -case underscore -name Source
var _ Source = DirectSource{}
var _ Source = &PooledSource{}

// Generator produces one fresh identifier. Implementations must be safe for
// concurrent use; package idgen provides the stock ones.
type Generator func() (string, error)

// NewDirect returns a DirectSource producing identifiers with gen.
// A nil gen defaults to idgen.UUID.
func NewDirect(gen Generator) DirectSource {
	if gen == nil {
		gen = idgen.UUID
	}
	return DirectSource{gen: gen}
}

// DirectSource generates a fresh identifier synchronously on every call.
// It holds no state besides its generator.
type DirectSource struct {
	gen Generator
}

// Next generates and returns one identifier.
func (s DirectSource) Next() (string, error) {
	id, err := s.gen()
	if err != nil {
		return "", GenerationError{err}
	}
	return id, nil
}
