package tests

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stretchr/testify/require"
)

func newExecutor(t *testing.T) *neotest.Executor {
	bc, acc := chain.NewSingle(t)
	return neotest.NewExecutor(t, bc, acc, acc)
}

// advanceTimeTo adds an empty block with the given timestamp (ms) so that the
// next invocation observes a block time beyond it.
func advanceTimeTo(t *testing.T, e *neotest.Executor, ts uint64) {
	b := e.NewUnsignedBlock(t)
	b.Timestamp = ts
	require.NoError(t, e.Chain.AddBlock(e.SignBlock(b)))
}

func mustDecodeHash160(t *testing.T, b []byte) util.Uint160 {
	h, err := util.Uint160DecodeBytesBE(b)
	require.NoError(t, err)
	return h
}
