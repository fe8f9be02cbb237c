// Package deploy provides contest system deployment routine for Neo
// blockchain networks.
package deploy

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/management"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"go.uber.org/zap"
)

// Blockchain groups services provided by particular Neo blockchain network
// that are required for contest system deployment.
type Blockchain interface {
	// RPCActor groups functions needed to compose and send transactions to the
	// blockchain.
	actor.RPCActor

	// GetContractStateByHash returns network state of the smart contract by its
	// address. GetContractStateByHash returns error with 'Unknown contract'
	// substring if requested contract is missing.
	GetContractStateByHash(util.Uint160) (*state.Contract, error)
}

// ContractPrm groups deployment parameters of a single smart contract.
type ContractPrm struct {
	NEF      nef.File
	Manifest manifest.Manifest
}

// Prm groups all parameters of the contest system deployment procedure.
type Prm struct {
	// Writes progress into the log.
	Logger *zap.Logger

	// Particular Neo blockchain instance to deploy to.
	Blockchain Blockchain

	// Local process account used for transaction signing (must be unlocked).
	// The account pays for deployment and becomes the committee performing
	// privileged Balance operations on single-node setups.
	LocalAccount *wallet.Account

	BalanceContract ContractPrm
	ContestContract ContractPrm

	// Escrow reclamation delay after the contest deadline, in milliseconds.
	// Zero keeps the contract default.
	GracePeriod int64

	// Disables the submission window checks of the Contest contract so that
	// entries are accepted into unfunded and expired contests.
	DisableSubmissionWindow bool
}

// Deploy deploys Balance and Contest contracts to the Neo network represented
// by given Prm.Blockchain and designates the Contest contract as the escrow
// mover in the Balance contract. Contracts that are already on the chain are
// left as they are, so Deploy may be re-run after a failure.
//
// Deploy aborts only by context or when a fatal error occurs.
func Deploy(ctx context.Context, prm Prm) error {
	if err := validatePrm(prm); err != nil {
		return err
	}

	act, err := actor.NewSimple(prm.Blockchain, prm.LocalAccount)
	if err != nil {
		return fmt.Errorf("init transaction sender from local account: %w", err)
	}

	prm.Logger.Info("synchronizing Balance contract with the chain...")

	balanceAddress, err := syncContract(ctx, act, prm, prm.BalanceContract, nil)
	if err != nil {
		return fmt.Errorf("sync Balance contract with the chain: %w", err)
	}

	prm.Logger.Info("Balance contract on the chain", zap.Stringer("address", balanceAddress))

	prm.Logger.Info("synchronizing Contest contract with the chain...")

	contestAddress, err := syncContract(ctx, act, prm, prm.ContestContract, []any{
		balanceAddress,
		prm.GracePeriod,
		!prm.DisableSubmissionWindow,
	})
	if err != nil {
		return fmt.Errorf("sync Contest contract with the chain: %w", err)
	}

	prm.Logger.Info("Contest contract on the chain", zap.Stringer("address", contestAddress))

	err = designateContestContract(ctx, prm.Logger, act, balanceAddress, contestAddress)
	if err != nil {
		return fmt.Errorf("designate Contest contract in the Balance contract: %w", err)
	}

	return nil
}

func validatePrm(prm Prm) error {
	switch {
	case prm.Logger == nil:
		return errors.New("missing logger")
	case prm.Blockchain == nil:
		return errors.New("missing blockchain client")
	case prm.LocalAccount == nil:
		return errors.New("missing local account")
	case prm.BalanceContract.Manifest.Name == "":
		return errors.New("missing Balance contract manifest")
	case prm.ContestContract.Manifest.Name == "":
		return errors.New("missing Contest contract manifest")
	case prm.GracePeriod < 0:
		return errors.New("negative grace period")
	}

	return nil
}

// syncContract deploys the contract unless it is already on the chain. The
// address is a function of the sender and the contract, so repeated runs
// resolve to the same contract.
func syncContract(ctx context.Context, act *actor.Actor, prm Prm, contract ContractPrm, deployArgs []any) (util.Uint160, error) {
	onChainAddress := state.CreateContractHash(act.Sender(), contract.NEF.Checksum, contract.Manifest.Name)

	stateOnChain, err := prm.Blockchain.GetContractStateByHash(onChainAddress)
	if err == nil && stateOnChain != nil {
		prm.Logger.Info("contract is already on the chain, skip deployment",
			zap.String("name", contract.Manifest.Name), zap.Stringer("address", onChainAddress))
		return onChainAddress, nil
	}

	prm.Logger.Info("contract is missing on the chain, deploying...",
		zap.String("name", contract.Manifest.Name), zap.Stringer("address", onChainAddress))

	txHash, vub, err := management.New(act).Deploy(&contract.NEF, &contract.Manifest, deployArgs)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("send deployment transaction: %w", err)
	}

	if err := waitHalt(ctx, act, txHash, vub); err != nil {
		return util.Uint160{}, fmt.Errorf("deployment transaction of %s: %w", contract.Manifest.Name, err)
	}

	return onChainAddress, nil
}

func designateContestContract(ctx context.Context, l *zap.Logger, act *actor.Actor, balanceContract, contestContract util.Uint160) error {
	designated, err := unwrap.Bytes(act.Call(balanceContract, "contestContract"))
	if err == nil && bytes.Equal(designated, contestContract.BytesBE()) {
		l.Info("Contest contract is already designated, skip")
		return nil
	}

	l.Info("designating Contest contract...", zap.Stringer("address", contestContract))

	txHash, vub, err := act.SendCall(balanceContract, "designateContest", contestContract)
	if err != nil {
		return fmt.Errorf("send designation transaction: %w", err)
	}

	return waitHalt(ctx, act, txHash, vub)
}

func waitHalt(ctx context.Context, act *actor.Actor, txHash util.Uint256, vub uint32) error {
	res, err := act.Wait(txHash, vub, nil)
	if err != nil {
		return fmt.Errorf("wait for transaction %s: %w", txHash.StringLE(), err)
	}

	if res.VMState != vmstate.Halt {
		return fmt.Errorf("transaction %s failed: %s", txHash.StringLE(), res.FaultException)
	}

	return nil
}
