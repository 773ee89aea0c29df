// Package idgen provides the identifier generators benchmarked by this
// module. Identifiers are opaque strings; callers should not parse them.
package idgen

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// UUID returns a new v4 UUID in canonical textual form.
func UUID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// EnableUUIDRandPool switches the uuid library to its pooled rand reader.
// It trades a mutex-protected buffer for fewer crypto/rand reads, which
// shifts where UUID's latency goes; call it before benchmarking to compare.
func EnableUUIDRandPool() {
	uuid.EnableRandPool()
}

// rand.New is not threadsafe, so we keep a pool of rands instead of making
// concurrent ULID callers contend on a single entropy reader.
var randPool = sync.Pool{
	New: func() interface{} {
		return rand.New(rand.NewSource(time.Now().UnixNano()))
	},
}

// ULID returns a new ULID in its canonical 26-character form.
func ULID() (string, error) {
	r := randPool.Get().(*rand.Rand)
	defer randPool.Put(r)

	t := time.Now()
	id, err := ulid.New(ulid.Timestamp(t), ulid.Monotonic(r, 0))
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
