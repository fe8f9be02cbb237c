package contest

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/crypto"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/openprize/contest-contract/common"
	cst "github.com/openprize/contest-contract/contracts/contest/contestconst"
)

type (
	// Contest is the top-level record describing a prize competition.
	Contest struct {
		// Creator account, the only one allowed to fund, sponsor and
		// reclaim.
		Creator interop.Hash160
		// ID of the contest, unique per creator.
		ID int
		Title       string
		Description string
		// PrizeAmount escrowed on funding, in the smallest unit of the
		// prize token.
		PrizeAmount int
		// Deadline for submissions, block time in milliseconds.
		Deadline int
		// Judges allowed to vote, at least one.
		Judges []interop.Hash160
		// Threshold of votes the winner must reach.
		Threshold int
		Status    int
		Funded    bool
		// Submissions ever accepted, never decremented.
		Submissions int
		// SponsorshipEnabled and GasBudget only track the creator's
		// commitment, nothing is debited from the budget yet.
		SponsorshipEnabled bool
		GasBudget          int
		// Vault is the escrow account in the balance contract.
		Vault interop.Hash160
	}

	// Submission is a participant's entry for a contest.
	Submission struct {
		Participant interop.Hash160
		URL         string
		// UpdatedAt is the block time of the last write, in milliseconds.
		UpdatedAt int
	}

	// Vote is a single judge's candidate choice.
	Vote struct {
		Judge     interop.Hash160
		Candidate interop.Hash160
	}
)

const (
	contestKeyPrefix    = 'c'
	submissionKeyPrefix = 's'
	voteKeyPrefix       = 'w'
	vaultDomain         = 'v'

	balanceContractKey = "balanceScriptHash"
	gracePeriodKey     = "gracePeriod"
	strictWindowKey    = "strictWindow"

	// idSize is the fixed width of a serialized contest ID within storage
	// keys. Composite keys must stay under the 64-byte storage key limit:
	// 1 + 20 + 8 + 20 = 49 bytes at most.
	idSize = 8

	httpsScheme = "https://"
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()
	args := data.([]any)
	if isUpdate {
		version := args[len(args)-1].(int)
		common.CheckVersion(version)
		return
	}

	balanceAddr := args[0].(interop.Hash160)
	if len(balanceAddr) != interop.Hash160Len {
		panic("invalid balance contract address")
	}
	storage.Put(ctx, balanceContractKey, balanceAddr)

	grace := cst.DefaultGracePeriod
	if len(args) >= 2 {
		if v := args[1].(int); v > 0 {
			grace = v
		}
	}
	storage.Put(ctx, gracePeriodKey, grace)

	strict := 1
	if len(args) >= 3 && !args[2].(bool) {
		strict = 0
	}
	storage.Put(ctx, strictWindowKey, strict)

	runtime.Log("contest contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(nefFile, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("contest contract updated")
}

// CreateContest creates a new contest record together with its empty escrow
// vault account. The record is stored under a key derived from (creator, id),
// so a repeated creation with the same pair fails. The deadline is a block
// timestamp in milliseconds and must be in the future; the judge set must not
// be empty and the threshold must be within [1, len(judges)]. The transaction
// must be witnessed by the creator.
func CreateContest(creator interop.Hash160, id int, title, description string,
	prizeAmount, deadline int, judges []interop.Hash160, threshold int) {
	ctx := storage.GetContext()

	checkWitness(creator, cst.ErrUnauthorizedCreator)
	if prizeAmount < 0 {
		panic(cst.ErrInvalidPrizeAmount)
	}
	if deadline <= runtime.GetTime() {
		panic(cst.ErrInvalidDeadline)
	}
	if len(judges) == 0 || threshold <= 0 || threshold > len(judges) {
		panic(cst.ErrInvalidThreshold)
	}
	for i := 0; i < len(judges); i++ {
		if len(judges[i]) != interop.Hash160Len {
			panic(cst.ErrInvalidThreshold)
		}
	}

	key := contestKey(creator, id)
	if storage.Get(ctx, key) != nil {
		panic(cst.ErrDuplicateContest)
	}

	c := Contest{
		Creator:     creator,
		ID:          id,
		Title:       title,
		Description: description,
		PrizeAmount: prizeAmount,
		Deadline:    deadline,
		Judges:      judges,
		Threshold:   threshold,
		Status:      cst.StatusSetup,
		Vault:       vaultAddress(creator, id),
	}
	common.SetSerialized(ctx, key, c)

	runtime.Log("contest record created")
	runtime.Notify("ContestCreated", creator, id)
}

// FundContest moves exactly the prize amount from the creator's balance into
// the contest escrow vault and activates the contest. It can be invoked only
// once per contest and only by the creator. The transfer and the status
// change are part of one transaction, a failed transfer reverts everything.
func FundContest(creator interop.Hash160, id int) {
	ctx := storage.GetContext()
	c := mustGetContest(ctx, creator, id)

	checkWitness(creator, cst.ErrUnauthorizedCreator)
	if c.Funded {
		panic(cst.ErrAlreadyFunded)
	}

	if c.PrizeAmount > 0 {
		details := common.FundTransferDetails(contestKey(creator, id))
		transferFunds(ctx, creator, c.Vault, c.PrizeAmount, details,
			"insufficient balance to fund contest")
	}

	c.Funded = true
	c.Status = cst.StatusActive
	common.SetSerialized(ctx, contestKey(creator, id), c)

	runtime.Log("contest funded")
	runtime.Notify("ContestFunded", creator, id, c.PrizeAmount)
}

// EnableSponsorship records the creator's commitment to sponsor gas costs of
// contest participants up to the given budget. A repeated call overwrites the
// budget. Only bookkeeping is done here, nothing is debited.
func EnableSponsorship(creator interop.Hash160, id, budget int) {
	ctx := storage.GetContext()
	c := mustGetContest(ctx, creator, id)

	checkWitness(creator, cst.ErrUnauthorizedCreator)
	if budget < 0 {
		panic(cst.ErrInvalidBudget)
	}

	c.SponsorshipEnabled = true
	c.GasBudget = budget
	common.SetSerialized(ctx, contestKey(creator, id), c)

	runtime.Notify("SponsorshipEnabled", creator, id, budget)
}

// SubmitEntry stores a participant's entry for the contest and increments the
// submission counter. The URL scheme must be https. Each participant can have
// at most one entry per contest, the record key is derived from (creator, id,
// participant). Unless the contract was deployed with the submission window
// check disabled, entries are accepted only for active contests before the
// deadline.
func SubmitEntry(creator interop.Hash160, id int, participant interop.Hash160, url string) {
	ctx := storage.GetContext()
	c := mustGetContest(ctx, creator, id)

	checkWitness(participant, cst.ErrUnauthorizedParticipant)
	checkURL(url)
	checkSubmissionWindow(ctx, c)

	key := submissionKey(creator, id, participant)
	if storage.Get(ctx, key) != nil {
		panic(cst.ErrDuplicateSubmission)
	}

	s := Submission{
		Participant: participant,
		URL:         url,
		UpdatedAt:   runtime.GetTime(),
	}
	common.SetSerialized(ctx, key, s)

	c.Submissions = c.Submissions + 1
	common.SetSerialized(ctx, contestKey(creator, id), c)

	runtime.Log("entry submitted")
	runtime.Notify("EntrySubmitted", creator, id, participant)
}

// UpdateSubmission overwrites the URL of the participant's existing entry.
// The record is addressed by (creator, id, participant), so a participant can
// never reach another participant's entry. The submission counter is not
// affected.
func UpdateSubmission(creator interop.Hash160, id int, participant interop.Hash160, url string) {
	ctx := storage.GetContext()
	c := mustGetContest(ctx, creator, id)

	checkWitness(participant, cst.ErrUnauthorizedParticipant)
	checkURL(url)
	checkSubmissionWindow(ctx, c)

	key := submissionKey(creator, id, participant)
	data := storage.Get(ctx, key)
	if data == nil {
		panic(cst.SubmissionNotFoundError)
	}

	s := std.Deserialize(data.([]byte)).(Submission)
	s.URL = url
	s.UpdatedAt = runtime.GetTime()
	common.SetSerialized(ctx, key, s)

	runtime.Notify("EntryUpdated", creator, id, participant)
}

// JudgeVote stores the judge's candidate choice for the contest. Votes are
// accepted only after the submission deadline and only from members of the
// contest judge set; each judge votes at most once, the record key is derived
// from (creator, id, judge). No tallying happens here, it is deferred to
// DistributePrizes.
func JudgeVote(creator interop.Hash160, id int, judge, candidate interop.Hash160) {
	ctx := storage.GetContext()
	c := mustGetContest(ctx, creator, id)

	checkWitness(judge, cst.ErrUnauthorizedJudge)
	if !isJudge(c, judge) {
		panic(cst.ErrUnauthorizedJudge)
	}
	if len(candidate) != interop.Hash160Len {
		panic(cst.ErrInvalidWinner)
	}
	if runtime.GetTime() < c.Deadline {
		panic(cst.ErrVotingNotOpen)
	}

	key := voteKey(creator, id, judge)
	if storage.Get(ctx, key) != nil {
		panic(cst.ErrDuplicateVote)
	}

	v := Vote{
		Judge:     judge,
		Candidate: candidate,
	}
	common.SetSerialized(ctx, key, v)

	runtime.Log("vote cast")
	runtime.Notify("VoteCast", creator, id, judge, candidate)
}

// DistributePrizes pays the escrowed prize out to the winner. Anyone can
// invoke it; the caller names the judges whose votes serve as evidence, and
// the contract re-validates every piece of it: only members of the judge set
// are considered, every vote is loaded from contract storage by its (contest,
// judge) key and duplicates are dropped. The supplied winner must equal the
// unique candidate with the maximum vote count and that count must reach the
// contest threshold. On success the vault is drained to the winner and the
// contest becomes completed, so a repeated invocation fails.
func DistributePrizes(creator interop.Hash160, id int, winner interop.Hash160, judges []interop.Hash160) {
	ctx := storage.GetContext()
	c := mustGetContest(ctx, creator, id)

	if c.Status != cst.StatusActive || runtime.GetTime() < c.Deadline {
		panic(cst.ErrInvalidContestState)
	}
	if len(winner) != interop.Hash160Len {
		panic(cst.ErrInvalidWinner)
	}

	candidates := []interop.Hash160{}
	counts := []int{}
	counted := []interop.Hash160{}

	for i := 0; i < len(judges); i++ {
		j := judges[i]
		if !isJudge(c, j) {
			continue
		}
		if containsAccount(counted, j) {
			continue
		}

		data := storage.Get(ctx, voteKey(creator, id, j))
		if data == nil {
			continue
		}
		v := std.Deserialize(data.([]byte)).(Vote)
		counted = append(counted, j)

		idx := -1
		for k := 0; k < len(candidates); k++ {
			if candidates[k].Equals(v.Candidate) {
				idx = k
				break
			}
		}
		if idx == -1 {
			candidates = append(candidates, v.Candidate)
			counts = append(counts, 1)
		} else {
			counts[idx] = counts[idx] + 1
		}
	}

	best := 0
	bestIdx := -1
	unique := false
	for k := 0; k < len(counts); k++ {
		if counts[k] > best {
			best = counts[k]
			bestIdx = k
			unique = true
		} else if counts[k] == best {
			unique = false
		}
	}

	if bestIdx == -1 || !unique || best < c.Threshold || !candidates[bestIdx].Equals(winner) {
		panic(cst.ErrInvalidWinner)
	}

	amount := vaultBalance(ctx, c.Vault)
	if amount > 0 {
		details := common.PrizeTransferDetails(contestKey(creator, id))
		transferFunds(ctx, c.Vault, winner, amount, details, "can't transfer prize")
	}

	c.Status = cst.StatusCompleted
	common.SetSerialized(ctx, contestKey(creator, id), c)

	runtime.Log("prize distributed")
	runtime.Notify("PrizeDistributed", creator, id, winner, amount)
}

// ReclaimFunds returns the escrowed funds to the creator of a contest that is
// still active after the grace period past the deadline, i.e. no successful
// distribution happened. The contest becomes reclaimed, which is terminal.
func ReclaimFunds(creator interop.Hash160, id int) {
	ctx := storage.GetContext()
	c := mustGetContest(ctx, creator, id)

	checkWitness(creator, cst.ErrUnauthorizedCreator)
	if c.Status != cst.StatusActive {
		panic(cst.ErrInvalidContestState)
	}
	if runtime.GetTime() < c.Deadline+gracePeriod(ctx) {
		panic(cst.ErrContestNotExpired)
	}

	amount := vaultBalance(ctx, c.Vault)
	if amount > 0 {
		details := common.ReclaimTransferDetails(contestKey(creator, id))
		transferFunds(ctx, c.Vault, creator, amount, details, "can't reclaim funds")
	}

	c.Status = cst.StatusReclaimed
	common.SetSerialized(ctx, contestKey(creator, id), c)

	runtime.Log("escrow reclaimed")
	runtime.Notify("FundsReclaimed", creator, id, amount)
}

// GetContest returns the contest record.
func GetContest(creator interop.Hash160, id int) Contest {
	ctx := storage.GetReadOnlyContext()
	return mustGetContest(ctx, creator, id)
}

// GetSubmission returns the participant's entry for the contest.
func GetSubmission(creator interop.Hash160, id int, participant interop.Hash160) Submission {
	ctx := storage.GetReadOnlyContext()
	data := storage.Get(ctx, submissionKey(creator, id, participant))
	if data == nil {
		panic(cst.SubmissionNotFoundError)
	}
	return std.Deserialize(data.([]byte)).(Submission)
}

// ListSubmissions returns an iterator over all entries of the contest.
func ListSubmissions(creator interop.Hash160, id int) iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	prefix := append(append([]byte{submissionKeyPrefix}, creator...), idBytes(id)...)
	return storage.Find(ctx, prefix, storage.ValuesOnly|storage.DeserializeValues)
}

// GetVote returns the judge's vote for the contest.
func GetVote(creator interop.Hash160, id int, judge interop.Hash160) Vote {
	ctx := storage.GetReadOnlyContext()
	data := storage.Get(ctx, voteKey(creator, id, judge))
	if data == nil {
		panic("vote does not exist")
	}
	return std.Deserialize(data.([]byte)).(Vote)
}

// VaultOf returns the escrow vault account of the contest. The address is a
// pure function of (creator, id), so it can be computed before the contest
// exists.
func VaultOf(creator interop.Hash160, id int) interop.Hash160 {
	return vaultAddress(creator, id)
}

// GracePeriod returns the configured reclamation grace period in
// milliseconds.
func GracePeriod() int {
	ctx := storage.GetReadOnlyContext()
	return gracePeriod(ctx)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func mustGetContest(ctx storage.Context, creator interop.Hash160, id int) Contest {
	data := storage.Get(ctx, contestKey(creator, id))
	if data == nil {
		panic(cst.NotFoundError)
	}
	return std.Deserialize(data.([]byte)).(Contest)
}

func checkWitness(account interop.Hash160, panicMsg string) {
	if len(account) != interop.Hash160Len || !runtime.CheckWitness(account) {
		panic(panicMsg)
	}
}

func checkURL(url string) {
	if len(url) <= len(httpsScheme) || string(url[:len(httpsScheme)]) != httpsScheme {
		panic(cst.ErrInvalidURL)
	}
}

func checkSubmissionWindow(ctx storage.Context, c Contest) {
	strict := storage.Get(ctx, strictWindowKey).(int)
	if strict == 0 {
		return
	}
	if c.Status != cst.StatusActive || runtime.GetTime() >= c.Deadline {
		panic(cst.ErrInvalidContestState)
	}
}

func isJudge(c Contest, account interop.Hash160) bool {
	return containsAccount(c.Judges, account)
}

func containsAccount(list []interop.Hash160, account interop.Hash160) bool {
	for i := 0; i < len(list); i++ {
		if list[i].Equals(account) {
			return true
		}
	}
	return false
}

func gracePeriod(ctx storage.Context) int {
	return storage.Get(ctx, gracePeriodKey).(int)
}

func vaultBalance(ctx storage.Context, vault interop.Hash160) int {
	balanceContractAddr := storage.Get(ctx, balanceContractKey).(interop.Hash160)
	return contract.Call(balanceContractAddr, "balanceOf", contract.ReadOnly, vault).(int)
}

func transferFunds(ctx storage.Context, from, to interop.Hash160, amount int, details []byte, panicMsg string) {
	balanceContractAddr := storage.Get(ctx, balanceContractKey).(interop.Hash160)
	ok := contract.Call(balanceContractAddr, "transferX", contract.All,
		from, to, amount, details).(bool)
	if !ok {
		panic(panicMsg)
	}
}

// idBytes returns the little-endian representation of a non-negative contest
// ID zero-padded to idSize bytes, keeping composite keys fixed-width and
// prefix iteration unambiguous.
func idBytes(id int) []byte {
	if id < 0 {
		panic("invalid contest id")
	}
	var raw any = id
	bs := raw.([]byte)
	for len(bs) < idSize {
		bs = append(bs, 0)
	}
	return bs
}

func contestKey(creator interop.Hash160, id int) []byte {
	return append(append([]byte{contestKeyPrefix}, creator...), idBytes(id)...)
}

func submissionKey(creator interop.Hash160, id int, participant interop.Hash160) []byte {
	key := append(append([]byte{submissionKeyPrefix}, creator...), idBytes(id)...)
	return append(key, participant...)
}

func voteKey(creator interop.Hash160, id int, judge interop.Hash160) []byte {
	key := append(append([]byte{voteKeyPrefix}, creator...), idBytes(id)...)
	return append(key, judge...)
}

func vaultAddress(creator interop.Hash160, id int) interop.Hash160 {
	data := append(append([]byte{vaultDomain}, creator...), idBytes(id)...)
	return interop.Hash160(crypto.Ripemd160(crypto.Sha256(data)))
}
