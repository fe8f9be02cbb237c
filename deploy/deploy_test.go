package deploy

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func validTestPrm(t *testing.T) Prm {
	acc, err := wallet.NewAccount()
	require.NoError(t, err)

	return Prm{
		Logger:          zaptest.NewLogger(t),
		Blockchain:      struct{ Blockchain }{},
		LocalAccount:    acc,
		BalanceContract: ContractPrm{Manifest: manifest.Manifest{Name: "Prize Balance"}},
		ContestContract: ContractPrm{Manifest: manifest.Manifest{Name: "Contest"}},
	}
}

func TestValidatePrm(t *testing.T) {
	require.NoError(t, validatePrm(validTestPrm(t)))

	for _, tc := range []struct {
		name    string
		corrupt func(*Prm)
	}{
		{name: "missing logger", corrupt: func(p *Prm) { p.Logger = nil }},
		{name: "missing blockchain client", corrupt: func(p *Prm) { p.Blockchain = nil }},
		{name: "missing local account", corrupt: func(p *Prm) { p.LocalAccount = nil }},
		{name: "missing Balance contract manifest", corrupt: func(p *Prm) { p.BalanceContract = ContractPrm{} }},
		{name: "missing Contest contract manifest", corrupt: func(p *Prm) { p.ContestContract = ContractPrm{} }},
		{name: "negative grace period", corrupt: func(p *Prm) { p.GracePeriod = -1 }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			prm := validTestPrm(t)
			tc.corrupt(&prm)

			err := validatePrm(prm)
			require.EqualError(t, err, tc.name)
		})
	}
}
