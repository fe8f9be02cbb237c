package tests

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/openprize/contest-contract/common"
	"github.com/stretchr/testify/require"
)

func deployBalanceOnly(t *testing.T) (*neotest.Executor, util.Uint160) {
	e := newExecutor(t)
	return e, deployBalanceContract(t, e)
}

func TestBalanceGeneric(t *testing.T) {
	e, balanceHash := deployBalanceOnly(t)
	inv := e.CommitteeInvoker(balanceHash)

	inv.Invoke(t, "PRIZE", "symbol")
	inv.Invoke(t, int64(8), "decimals")
	inv.Invoke(t, int64(0), "totalSupply")
	inv.Invoke(t, int64(0), "balanceOf", e.NewAccount(t).ScriptHash())
	inv.Invoke(t, common.Version, "version")
}

func TestBalanceMintBurn(t *testing.T) {
	e, balanceHash := deployBalanceOnly(t)
	inv := e.CommitteeInvoker(balanceHash)

	acc := e.NewAccount(t)

	t.Run("non-committee access", func(t *testing.T) {
		userInv := e.NewInvoker(balanceHash, acc)
		userInv.InvokeFail(t, "mint access denied", "mint",
			acc.ScriptHash(), int64(100), []byte{})
		userInv.InvokeFail(t, "burn access denied", "burn",
			acc.ScriptHash(), int64(100), []byte{})
	})

	inv.Invoke(t, stackitem.Null{}, "mint", acc.ScriptHash(), int64(1000), []byte{})
	require.Equal(t, int64(1000), balanceOf(t, e, balanceHash, acc.ScriptHash()))
	inv.Invoke(t, int64(1000), "totalSupply")

	inv.Invoke(t, stackitem.Null{}, "burn", acc.ScriptHash(), int64(400), []byte{})
	require.Equal(t, int64(600), balanceOf(t, e, balanceHash, acc.ScriptHash()))
	inv.Invoke(t, int64(600), "totalSupply")

	t.Run("burn over balance", func(t *testing.T) {
		inv.InvokeFail(t, "can't transfer assets", "burn",
			acc.ScriptHash(), int64(10_000), []byte{})
		inv.Invoke(t, int64(600), "totalSupply")
	})
}

func TestBalanceTransfer(t *testing.T) {
	e, balanceHash := deployBalanceOnly(t)

	acc1 := e.NewAccount(t)
	acc2 := e.NewAccount(t)
	balanceMint(t, e, balanceHash, acc1.ScriptHash(), 500)

	ownerInv := e.NewInvoker(balanceHash, acc1)
	ownerInv.Invoke(t, true, "transfer",
		acc1.ScriptHash(), acc2.ScriptHash(), int64(200), nil)
	require.Equal(t, int64(300), balanceOf(t, e, balanceHash, acc1.ScriptHash()))
	require.Equal(t, int64(200), balanceOf(t, e, balanceHash, acc2.ScriptHash()))

	t.Run("no witness", func(t *testing.T) {
		e.CommitteeInvoker(balanceHash).Invoke(t, false, "transfer",
			acc1.ScriptHash(), acc2.ScriptHash(), int64(100), nil)
		require.Equal(t, int64(300), balanceOf(t, e, balanceHash, acc1.ScriptHash()))
	})

	t.Run("not enough funds", func(t *testing.T) {
		ownerInv.Invoke(t, false, "transfer",
			acc1.ScriptHash(), acc2.ScriptHash(), int64(10_000), nil)
		require.Equal(t, int64(300), balanceOf(t, e, balanceHash, acc1.ScriptHash()))
	})

	t.Run("negative amount", func(t *testing.T) {
		ownerInv.InvokeFail(t, "negative amount", "transfer",
			acc1.ScriptHash(), acc2.ScriptHash(), int64(-1), nil)
	})
}

func TestBalanceTransferX(t *testing.T) {
	e, balanceHash := deployBalanceOnly(t)

	acc1 := e.NewAccount(t)
	acc2 := e.NewAccount(t)
	balanceMint(t, e, balanceHash, acc1.ScriptHash(), 500)

	// No contract is designated yet.
	e.CommitteeInvoker(balanceHash).InvokeFail(t, "transferX access denied", "transferX",
		acc1.ScriptHash(), acc2.ScriptHash(), int64(100), []byte{})

	contestHash := deployContestContract(t, e, balanceHash, 0, true)
	e.CommitteeInvoker(balanceHash).Invoke(t, stackitem.Null{}, "designateContest", contestHash)

	// Direct invocations are still rejected, the caller must be the Contest
	// contract itself.
	e.CommitteeInvoker(balanceHash).InvokeFail(t, "transferX access denied", "transferX",
		acc1.ScriptHash(), acc2.ScriptHash(), int64(100), []byte{})
	require.Equal(t, int64(500), balanceOf(t, e, balanceHash, acc1.ScriptHash()))
}

func TestBalanceDesignateContest(t *testing.T) {
	e, balanceHash := deployBalanceOnly(t)
	inv := e.CommitteeInvoker(balanceHash)

	contestHash := deployContestContract(t, e, balanceHash, 0, true)

	t.Run("non-committee access", func(t *testing.T) {
		acc := e.NewAccount(t)
		e.NewInvoker(balanceHash, acc).InvokeFail(t,
			"only committee can designate the contest contract",
			"designateContest", contestHash)
	})

	t.Run("invalid address", func(t *testing.T) {
		inv.InvokeFail(t, "invalid contest contract address",
			"designateContest", []byte{1, 2, 3})
	})

	inv.Invoke(t, stackitem.Null{}, "designateContest", contestHash)

	s, err := inv.TestInvoke(t, "contestContract")
	require.NoError(t, err)
	require.Equal(t, contestHash, mustDecodeHash160(t, s.Pop().Bytes()))
}
