/*
Package idpooltest provides an implementation of idpool.Source to be used from tests of third party libraries
where we just need a dependency that yields predictable identifiers and never fails.
For fine-grained control of the Source, use the package idpoolmock
*/
package idpooltest

import (
	"fmt"
	"sync/atomic"
)

// SequenceSource yields "id-1", "id-2", ... in order. It is safe for
// concurrent use and its Next never fails.
type SequenceSource struct {
	n atomic.Int64
}

// Next returns the next identifier of the sequence
func (s *SequenceSource) Next() (string, error) {
	return fmt.Sprintf("id-%d", s.n.Add(1)), nil
}
