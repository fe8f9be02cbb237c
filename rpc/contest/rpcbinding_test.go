package contest

import (
	"errors"
	"math/big"
	"testing"

	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

type testInv struct {
	err error
	res *result.Invoke
}

func (t *testInv) Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error) {
	return t.res, t.err
}

func (t *testInv) CallAndExpandIterator(contract util.Uint160, operation string, i int, params ...any) (*result.Invoke, error) {
	return t.res, t.err
}
func (t *testInv) TraverseIterator(uuid.UUID, *result.Iterator, int) ([]stackitem.Item, error) {
	return nil, nil
}
func (t *testInv) TerminateSession(uuid.UUID) error {
	return nil
}

func contestItem(creator, vault util.Uint160, judges ...util.Uint160) stackitem.Item {
	judgeItems := make([]stackitem.Item, 0, len(judges))
	for _, j := range judges {
		judgeItems = append(judgeItems, stackitem.Make(j.BytesBE()))
	}

	return stackitem.Make([]stackitem.Item{
		stackitem.Make(creator.BytesBE()),
		stackitem.Make(1),
		stackitem.Make("Best dApp"),
		stackitem.Make("annual community award"),
		stackitem.Make(1000),
		stackitem.Make(1700000000000),
		stackitem.Make(judgeItems),
		stackitem.Make(1),
		stackitem.Make(1),
		stackitem.Make(true),
		stackitem.Make(0),
		stackitem.Make(false),
		stackitem.Make(0),
		stackitem.Make(vault.BytesBE()),
	})
}

func TestGetContest(t *testing.T) {
	ti := new(testInv)
	r := NewReader(ti, util.Uint160{1, 2, 3})

	creator := util.Uint160{4, 5, 6}
	id := big.NewInt(1)

	ti.err = errors.New("bad")
	_, err := r.GetContest(creator, id)
	require.Error(t, err)

	ti.err = nil
	ti.res = &result.Invoke{
		State: "HALT",
		Stack: []stackitem.Item{
			stackitem.Make([]stackitem.Item{}),
		},
	}
	_, err = r.GetContest(creator, id)
	require.Error(t, err)

	judge := util.Uint160{7, 8, 9}
	vault := util.Uint160{10, 11, 12}
	ti.res = &result.Invoke{
		State: "HALT",
		Stack: []stackitem.Item{
			contestItem(creator, vault, judge),
		},
	}
	res, err := r.GetContest(creator, id)
	require.NoError(t, err)
	require.Equal(t, creator, res.Creator)
	require.Equal(t, big.NewInt(1), res.ID)
	require.Equal(t, "Best dApp", res.Title)
	require.Equal(t, big.NewInt(1000), res.PrizeAmount)
	require.Equal(t, []util.Uint160{judge}, res.Judges)
	require.True(t, res.Funded)
	require.False(t, res.SponsorshipEnabled)
	require.Equal(t, vault, res.Vault)
}

func TestGetSubmission(t *testing.T) {
	ti := new(testInv)
	r := NewReader(ti, util.Uint160{1, 2, 3})

	participant := util.Uint160{4, 5, 6}

	ti.res = &result.Invoke{
		State: "HALT",
		Stack: []stackitem.Item{
			stackitem.Make([]stackitem.Item{
				stackitem.Make(participant.BytesBE()),
				stackitem.Make("https://example.org/entry"),
				stackitem.Make(1700000000000),
			}),
		},
	}
	res, err := r.GetSubmission(util.Uint160{}, big.NewInt(1), participant)
	require.NoError(t, err)
	require.Equal(t, participant, res.Participant)
	require.Equal(t, "https://example.org/entry", res.URL)
	require.Equal(t, big.NewInt(1700000000000), res.UpdatedAt)

	ti.res = &result.Invoke{
		State: "HALT",
		Stack: []stackitem.Item{
			stackitem.Make([]stackitem.Item{
				stackitem.Make(participant.BytesBE()),
				stackitem.Make("https://example.org/entry"),
			}),
		},
	}
	_, err = r.GetSubmission(util.Uint160{}, big.NewInt(1), participant)
	require.Error(t, err)
}

func TestGetVote(t *testing.T) {
	ti := new(testInv)
	r := NewReader(ti, util.Uint160{1, 2, 3})

	judge := util.Uint160{4, 5, 6}
	candidate := util.Uint160{7, 8, 9}

	ti.res = &result.Invoke{
		State: "HALT",
		Stack: []stackitem.Item{
			stackitem.Make([]stackitem.Item{
				stackitem.Make(judge.BytesBE()),
				stackitem.Make(candidate.BytesBE()),
			}),
		},
	}
	res, err := r.GetVote(util.Uint160{}, big.NewInt(1), judge)
	require.NoError(t, err)
	require.Equal(t, judge, res.Judge)
	require.Equal(t, candidate, res.Candidate)

	ti.res = &result.Invoke{
		State: "HALT",
		Stack: []stackitem.Item{
			stackitem.Make(100500),
		},
	}
	_, err = r.GetVote(util.Uint160{}, big.NewInt(1), judge)
	require.Error(t, err)
}

func TestReaderScalars(t *testing.T) {
	ti := new(testInv)
	r := NewReader(ti, util.Uint160{1, 2, 3})

	vault := util.Uint160{4, 5, 6}
	ti.res = &result.Invoke{
		State: "HALT",
		Stack: []stackitem.Item{
			stackitem.Make(vault.BytesBE()),
		},
	}
	res, err := r.VaultOf(util.Uint160{}, big.NewInt(1))
	require.NoError(t, err)
	require.Equal(t, vault, res)

	ti.res = &result.Invoke{
		State: "HALT",
		Stack: []stackitem.Item{
			stackitem.Make(2592000000),
		},
	}
	grace, err := r.GracePeriod()
	require.NoError(t, err)
	require.Equal(t, big.NewInt(2592000000), grace)
}
