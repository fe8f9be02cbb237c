package balance

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/openprize/contest-contract/common"
)

// Token holds all token info.
type Token struct {
	// Ticker symbol
	Symbol string
	// Amount of decimals
	Decimals int
	// Storage key for circulation value
	CirculationKey string
}

const (
	symbol      = "PRIZE"
	decimals    = 8
	circulation = "PrizeSupply"
	accPrefix   = 'a'

	contestContractKey = 'x'
)

var token Token

func createToken() Token {
	return Token{
		Symbol:         symbol,
		Decimals:       decimals,
		CirculationKey: circulation,
	}
}

func init() {
	token = createToken()
}

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		args := data.([]any)
		version := args[len(args)-1].(int)

		common.CheckVersion(version)
		return
	}

	runtime.Log("balance contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(nefFile, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("balance contract updated")
}

// DesignateContest stores the address of the Contest contract, the only
// contract allowed to invoke TransferX. It can be invoked only by committee.
func DesignateContest(addr interop.Hash160) {
	if !common.HasUpdateAccess() {
		panic("only committee can designate the contest contract")
	}
	if len(addr) != interop.Hash160Len {
		panic("invalid contest contract address")
	}

	ctx := storage.GetContext()
	storage.Put(ctx, contestContractKey, addr)
	runtime.Log("contest contract designated")
}

// ContestContract returns the designated Contest contract address.
func ContestContract() interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	addr := storage.Get(ctx, contestContractKey)
	if addr == nil {
		return nil
	}
	return addr.(interop.Hash160)
}

// Symbol is a NEP-17 standard method that returns the prize token symbol.
func Symbol() string {
	return token.Symbol
}

// Decimals is a NEP-17 standard method that returns precision of prize
// balances.
func Decimals() int {
	return token.Decimals
}

// TotalSupply is a NEP-17 standard method that returns the total amount of
// prize credits in circulation.
func TotalSupply() int {
	ctx := storage.GetReadOnlyContext()
	return token.getSupply(ctx)
}

// BalanceOf is a NEP-17 standard method that returns the prize balance of the
// specified account. Escrow vaults are ordinary accounts here.
func BalanceOf(account interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return getBalance(ctx, account)
}

// Transfer is a NEP-17 standard method that transfers prize credits from one
// account to another. It can be invoked only by the account owner.
//
// It produces Transfer and TransferX notifications. TransferX notification
// will have empty details field.
func Transfer(from, to interop.Hash160, amount int, data any) bool {
	ctx := storage.GetContext()
	return token.transfer(ctx, from, to, amount, false, nil)
}

// TransferX is a method for prize balances to be moved on behalf of contest
// escrow flows: funding a vault, paying a winner and returning a reclaimed
// escrow. It can be invoked only by the designated Contest contract, which
// performs its own authorization before calling.
//
// It produces Transfer and TransferX notifications.
func TransferX(from, to interop.Hash160, amount int, details []byte) bool {
	ctx := storage.GetContext()

	trusted := storage.Get(ctx, contestContractKey)
	if trusted == nil || !runtime.GetCallingScriptHash().Equals(trusted.(interop.Hash160)) {
		panic("transferX access denied")
	}

	return token.transfer(ctx, from, to, amount, true, details)
}

// Mint is a method that issues prize credits to a user account. It can be
// invoked only by committee.
//
// It produces Transfer and TransferX notifications. Mint increases the total
// supply of the token.
func Mint(to interop.Hash160, amount int, txDetails []byte) {
	ctx := storage.GetContext()

	if !common.HasUpdateAccess() {
		panic("mint access denied")
	}

	details := common.MintTransferDetails(txDetails)

	ok := token.transfer(ctx, nil, to, amount, true, details)
	if !ok {
		panic("can't transfer assets")
	}

	supply := token.getSupply(ctx)
	supply = supply + amount
	storage.Put(ctx, token.CirculationKey, supply)
	runtime.Log("assets were minted")
}

// Burn is a method that destroys prize credits on a user account. It can be
// invoked only by committee. Burn decreases the total supply of the token.
//
// It produces Transfer and TransferX notifications.
func Burn(from interop.Hash160, amount int, txDetails []byte) {
	ctx := storage.GetContext()

	if !common.HasUpdateAccess() {
		panic("burn access denied")
	}

	details := common.BurnTransferDetails(txDetails)

	ok := token.transfer(ctx, from, nil, amount, true, details)
	if !ok {
		panic("can't transfer assets")
	}

	supply := token.getSupply(ctx)
	if supply < amount {
		panic("negative supply after burn")
	}

	supply = supply - amount
	storage.Put(ctx, token.CirculationKey, supply)
	runtime.Log("assets were burned")
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// getSupply gets the token totalSupply value from VM storage.
func (t Token) getSupply(ctx storage.Context) int {
	supply := storage.Get(ctx, t.CirculationKey)
	if supply != nil {
		return supply.(int)
	}

	return 0
}

func (t Token) transfer(ctx storage.Context, from, to interop.Hash160, amount int, trusted bool, details []byte) bool {
	if amount < 0 {
		panic("negative amount")
	}

	if !trusted {
		if len(to) != interop.Hash160Len || !isUsableAddress(from) {
			runtime.Log("bad script hashes")
			return false
		}
	}

	if len(from) == interop.Hash160Len {
		fromBalance := getBalance(ctx, from)
		if fromBalance < amount {
			runtime.Log("not enough funds")
			return false
		}

		if fromBalance == amount {
			storage.Delete(ctx, accountKey(from))
		} else {
			storage.Put(ctx, accountKey(from), fromBalance-amount)
		}
	}

	if len(to) == interop.Hash160Len {
		storage.Put(ctx, accountKey(to), getBalance(ctx, to)+amount)
	}

	runtime.Notify("Transfer", from, to, amount)
	runtime.Notify("TransferX", from, to, amount, details)

	return true
}

// isUsableAddress checks if the sender is either a correct user address or a
// smart contract calling on its own behalf.
func isUsableAddress(addr interop.Hash160) bool {
	if len(addr) == interop.Hash160Len {
		if runtime.CheckWitness(addr) {
			return true
		}

		callingScriptHash := runtime.GetCallingScriptHash()
		if callingScriptHash.Equals(addr) {
			return true
		}
	}

	return false
}

func getBalance(ctx storage.Context, account interop.Hash160) int {
	raw := storage.Get(ctx, accountKey(account))
	if raw != nil {
		return raw.(int)
	}

	return 0
}

func accountKey(account interop.Hash160) []byte {
	return append([]byte{accPrefix}, account...)
}
