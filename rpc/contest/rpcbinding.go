// Package contest contains RPC wrappers for Contest contract.
package contest

import (
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
	"unicode/utf8"
)

// ContestContest is a contract-specific contest.Contest type used by its methods.
type ContestContest struct {
	Creator util.Uint160
	ID *big.Int
	Title string
	Description string
	PrizeAmount *big.Int
	Deadline *big.Int
	Judges []util.Uint160
	Threshold *big.Int
	Status *big.Int
	Funded bool
	Submissions *big.Int
	SponsorshipEnabled bool
	GasBudget *big.Int
	Vault util.Uint160
}

// ContestSubmission is a contract-specific contest.Submission type used by its methods.
type ContestSubmission struct {
	Participant util.Uint160
	URL string
	UpdatedAt *big.Int
}

// ContestVote is a contract-specific contest.Vote type used by its methods.
type ContestVote struct {
	Judge util.Uint160
	Candidate util.Uint160
}

// ContestCreatedEvent represents "ContestCreated" event emitted by the contract.
type ContestCreatedEvent struct {
	Creator util.Uint160
	ID *big.Int
}

// ContestFundedEvent represents "ContestFunded" event emitted by the contract.
type ContestFundedEvent struct {
	Creator util.Uint160
	ID *big.Int
	Amount *big.Int
}

// SponsorshipEnabledEvent represents "SponsorshipEnabled" event emitted by the contract.
type SponsorshipEnabledEvent struct {
	Creator util.Uint160
	ID *big.Int
	Budget *big.Int
}

// EntrySubmittedEvent represents "EntrySubmitted" event emitted by the contract.
type EntrySubmittedEvent struct {
	Creator util.Uint160
	ID *big.Int
	Participant util.Uint160
}

// EntryUpdatedEvent represents "EntryUpdated" event emitted by the contract.
type EntryUpdatedEvent struct {
	Creator util.Uint160
	ID *big.Int
	Participant util.Uint160
}

// VoteCastEvent represents "VoteCast" event emitted by the contract.
type VoteCastEvent struct {
	Creator util.Uint160
	ID *big.Int
	Judge util.Uint160
	Candidate util.Uint160
}

// PrizeDistributedEvent represents "PrizeDistributed" event emitted by the contract.
type PrizeDistributedEvent struct {
	Creator util.Uint160
	ID *big.Int
	Winner util.Uint160
	Amount *big.Int
}

// FundsReclaimedEvent represents "FundsReclaimed" event emitted by the contract.
type FundsReclaimedEvent struct {
	Creator util.Uint160
	ID *big.Int
	Amount *big.Int
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
	CallAndExpandIterator(contract util.Uint160, method string, maxItems int, params ...any) (*result.Invoke, error)
	TerminateSession(sessionID uuid.UUID) error
	TraverseIterator(sessionID uuid.UUID, iterator *result.Iterator, num int) ([]stackitem.Item, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// GetContest invokes `getContest` method of contract.
func (c *ContractReader) GetContest(creator util.Uint160, id *big.Int) (*ContestContest, error) {
	return itemToContestContest(unwrap.Item(c.invoker.Call(c.hash, "getContest", creator, id)))
}

// GetSubmission invokes `getSubmission` method of contract.
func (c *ContractReader) GetSubmission(creator util.Uint160, id *big.Int, participant util.Uint160) (*ContestSubmission, error) {
	return itemToContestSubmission(unwrap.Item(c.invoker.Call(c.hash, "getSubmission", creator, id, participant)))
}

// GetVote invokes `getVote` method of contract.
func (c *ContractReader) GetVote(creator util.Uint160, id *big.Int, judge util.Uint160) (*ContestVote, error) {
	return itemToContestVote(unwrap.Item(c.invoker.Call(c.hash, "getVote", creator, id, judge)))
}

// GracePeriod invokes `gracePeriod` method of contract.
func (c *ContractReader) GracePeriod() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "gracePeriod"))
}

// ListSubmissions invokes `listSubmissions` method of contract.
func (c *ContractReader) ListSubmissions(creator util.Uint160, id *big.Int) (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "listSubmissions", creator, id))
}

// ListSubmissionsExpanded is similar to ListSubmissions (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) ListSubmissionsExpanded(creator util.Uint160, id *big.Int, _numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "listSubmissions", _numOfIteratorItems, creator, id))
}

// VaultOf invokes `vaultOf` method of contract.
func (c *ContractReader) VaultOf(creator util.Uint160, id *big.Int) (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "vaultOf", creator, id))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// CreateContest creates a transaction invoking `createContest` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CreateContest(creator util.Uint160, id *big.Int, title string, description string, prizeAmount *big.Int, deadline *big.Int, judges []util.Uint160, threshold *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "createContest", creator, id, title, description, prizeAmount, deadline, judges, threshold)
}

// CreateContestTransaction creates a transaction invoking `createContest` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CreateContestTransaction(creator util.Uint160, id *big.Int, title string, description string, prizeAmount *big.Int, deadline *big.Int, judges []util.Uint160, threshold *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "createContest", creator, id, title, description, prizeAmount, deadline, judges, threshold)
}

// CreateContestUnsigned creates a transaction invoking `createContest` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CreateContestUnsigned(creator util.Uint160, id *big.Int, title string, description string, prizeAmount *big.Int, deadline *big.Int, judges []util.Uint160, threshold *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "createContest", nil, creator, id, title, description, prizeAmount, deadline, judges, threshold)
}

// FundContest creates a transaction invoking `fundContest` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) FundContest(creator util.Uint160, id *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "fundContest", creator, id)
}

// FundContestTransaction creates a transaction invoking `fundContest` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) FundContestTransaction(creator util.Uint160, id *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "fundContest", creator, id)
}

// FundContestUnsigned creates a transaction invoking `fundContest` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) FundContestUnsigned(creator util.Uint160, id *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "fundContest", nil, creator, id)
}

// EnableSponsorship creates a transaction invoking `enableSponsorship` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) EnableSponsorship(creator util.Uint160, id *big.Int, gasBudget *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "enableSponsorship", creator, id, gasBudget)
}

// EnableSponsorshipTransaction creates a transaction invoking `enableSponsorship` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) EnableSponsorshipTransaction(creator util.Uint160, id *big.Int, gasBudget *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "enableSponsorship", creator, id, gasBudget)
}

// EnableSponsorshipUnsigned creates a transaction invoking `enableSponsorship` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) EnableSponsorshipUnsigned(creator util.Uint160, id *big.Int, gasBudget *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "enableSponsorship", nil, creator, id, gasBudget)
}

// SubmitEntry creates a transaction invoking `submitEntry` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SubmitEntry(creator util.Uint160, id *big.Int, participant util.Uint160, url string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "submitEntry", creator, id, participant, url)
}

// SubmitEntryTransaction creates a transaction invoking `submitEntry` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SubmitEntryTransaction(creator util.Uint160, id *big.Int, participant util.Uint160, url string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "submitEntry", creator, id, participant, url)
}

// SubmitEntryUnsigned creates a transaction invoking `submitEntry` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SubmitEntryUnsigned(creator util.Uint160, id *big.Int, participant util.Uint160, url string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "submitEntry", nil, creator, id, participant, url)
}

// UpdateSubmission creates a transaction invoking `updateSubmission` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) UpdateSubmission(creator util.Uint160, id *big.Int, participant util.Uint160, url string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "updateSubmission", creator, id, participant, url)
}

// UpdateSubmissionTransaction creates a transaction invoking `updateSubmission` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateSubmissionTransaction(creator util.Uint160, id *big.Int, participant util.Uint160, url string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "updateSubmission", creator, id, participant, url)
}

// UpdateSubmissionUnsigned creates a transaction invoking `updateSubmission` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateSubmissionUnsigned(creator util.Uint160, id *big.Int, participant util.Uint160, url string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "updateSubmission", nil, creator, id, participant, url)
}

// JudgeVote creates a transaction invoking `judgeVote` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) JudgeVote(creator util.Uint160, id *big.Int, judge util.Uint160, candidate util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "judgeVote", creator, id, judge, candidate)
}

// JudgeVoteTransaction creates a transaction invoking `judgeVote` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) JudgeVoteTransaction(creator util.Uint160, id *big.Int, judge util.Uint160, candidate util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "judgeVote", creator, id, judge, candidate)
}

// JudgeVoteUnsigned creates a transaction invoking `judgeVote` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) JudgeVoteUnsigned(creator util.Uint160, id *big.Int, judge util.Uint160, candidate util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "judgeVote", nil, creator, id, judge, candidate)
}

// DistributePrizes creates a transaction invoking `distributePrizes` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) DistributePrizes(creator util.Uint160, id *big.Int, winner util.Uint160, judges []util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "distributePrizes", creator, id, winner, judges)
}

// DistributePrizesTransaction creates a transaction invoking `distributePrizes` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) DistributePrizesTransaction(creator util.Uint160, id *big.Int, winner util.Uint160, judges []util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "distributePrizes", creator, id, winner, judges)
}

// DistributePrizesUnsigned creates a transaction invoking `distributePrizes` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) DistributePrizesUnsigned(creator util.Uint160, id *big.Int, winner util.Uint160, judges []util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "distributePrizes", nil, creator, id, winner, judges)
}

// ReclaimFunds creates a transaction invoking `reclaimFunds` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ReclaimFunds(creator util.Uint160, id *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "reclaimFunds", creator, id)
}

// ReclaimFundsTransaction creates a transaction invoking `reclaimFunds` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ReclaimFundsTransaction(creator util.Uint160, id *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "reclaimFunds", creator, id)
}

// ReclaimFundsUnsigned creates a transaction invoking `reclaimFunds` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ReclaimFundsUnsigned(creator util.Uint160, id *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "reclaimFunds", nil, creator, id)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(nefFile []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", nefFile, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(nefFile []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", nefFile, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(nefFile []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, nefFile, manifest, data)
}

// itemToContestContest converts stack item into *ContestContest.
func itemToContestContest(item stackitem.Item, err error) (*ContestContest, error) {
	if err != nil {
		return nil, err
	}
	var res = new(ContestContest)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of ContestContest from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *ContestContest) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 14 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Creator, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Creator: %w", err)
	}

	index++
	res.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	res.Title, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Title: %w", err)
	}

	index++
	res.Description, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Description: %w", err)
	}

	index++
	res.PrizeAmount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field PrizeAmount: %w", err)
	}

	index++
	res.Deadline, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Deadline: %w", err)
	}

	index++
	res.Judges, err = func (item stackitem.Item) ([]util.Uint160, error) {
		arr, ok := item.Value().([]stackitem.Item)
		if !ok {
			return nil, errors.New("not an array")
		}
		res := make([]util.Uint160, len(arr))
		for i := range arr {
			res[i], err = func (item stackitem.Item) (util.Uint160, error) {
				b, err := item.TryBytes()
				if err != nil {
					return util.Uint160{}, err
				}
				u, err := util.Uint160DecodeBytesBE(b)
				if err != nil {
					return util.Uint160{}, err
				}
				return u, nil
			} (arr[i])
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		}
		return res, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Judges: %w", err)
	}

	index++
	res.Threshold, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Threshold: %w", err)
	}

	index++
	res.Status, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Status: %w", err)
	}

	index++
	res.Funded, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Funded: %w", err)
	}

	index++
	res.Submissions, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Submissions: %w", err)
	}

	index++
	res.SponsorshipEnabled, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field SponsorshipEnabled: %w", err)
	}

	index++
	res.GasBudget, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field GasBudget: %w", err)
	}

	index++
	res.Vault, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Vault: %w", err)
	}

	return nil
}

// itemToContestSubmission converts stack item into *ContestSubmission.
func itemToContestSubmission(item stackitem.Item, err error) (*ContestSubmission, error) {
	if err != nil {
		return nil, err
	}
	var res = new(ContestSubmission)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of ContestSubmission from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *ContestSubmission) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Participant, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Participant: %w", err)
	}

	index++
	res.URL, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field URL: %w", err)
	}

	index++
	res.UpdatedAt, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field UpdatedAt: %w", err)
	}

	return nil
}

// itemToContestVote converts stack item into *ContestVote.
func itemToContestVote(item stackitem.Item, err error) (*ContestVote, error) {
	if err != nil {
		return nil, err
	}
	var res = new(ContestVote)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of ContestVote from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *ContestVote) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Judge, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Judge: %w", err)
	}

	index++
	res.Candidate, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Candidate: %w", err)
	}

	return nil
}
