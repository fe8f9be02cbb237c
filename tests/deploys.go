package tests

import (
	"path"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

const (
	balancePath = "../contracts/balance"
	contestPath = "../contracts/contest"
)

func deployBalanceContract(t *testing.T, e *neotest.Executor) util.Uint160 {
	c := neotest.CompileFile(t, e.CommitteeHash, balancePath, path.Join(balancePath, "config.yml"))
	e.DeployContract(t, c, nil)
	return c.Hash
}

func deployContestContract(t *testing.T, e *neotest.Executor, balanceHash util.Uint160,
	gracePeriod int64, strictWindow bool) util.Uint160 {
	c := neotest.CompileFile(t, e.CommitteeHash, contestPath, path.Join(contestPath, "config.yml"))

	args := make([]any, 3)
	args[0] = balanceHash
	args[1] = gracePeriod
	args[2] = strictWindow

	e.DeployContract(t, c, args)
	return c.Hash
}

// deployContestSuite deploys Balance and Contest contracts and designates the
// latter as the escrow mover in the former. Zero gracePeriod keeps the
// 30-day default.
func deployContestSuite(t *testing.T, e *neotest.Executor, gracePeriod int64, strictWindow bool) (util.Uint160, util.Uint160) {
	balanceHash := deployBalanceContract(t, e)
	contestHash := deployContestContract(t, e, balanceHash, gracePeriod, strictWindow)

	e.CommitteeInvoker(balanceHash).Invoke(t, stackitem.Null{}, "designateContest", contestHash)
	return contestHash, balanceHash
}

func balanceMint(t *testing.T, e *neotest.Executor, balanceHash util.Uint160, to util.Uint160, amount int64) {
	e.CommitteeInvoker(balanceHash).Invoke(t, stackitem.Null{}, "mint", to, amount, []byte{})
}

func balanceOf(t *testing.T, e *neotest.Executor, balanceHash util.Uint160, acc util.Uint160) int64 {
	s, err := e.CommitteeInvoker(balanceHash).TestInvoke(t, "balanceOf", acc)
	if err != nil {
		t.Fatal(err)
	}
	return s.Pop().BigInt().Int64()
}
