package mocktest

import (
	"testing"

	"github.com/idpool/idpool"
	"github.com/idpool/idpool/idpoolmock"
)

func TestMocksAreUpdated(t *testing.T) {
	// just try to compile this
	// this test is in a separate package to avoid testing `idpoolmock` itself, so it doesn't count for the coverage
	var _ idpool.Source = &idpoolmock.Source{}
}
