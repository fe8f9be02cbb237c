/*
Package contest implements Contest contract which is deployed to the chain
together with the Balance contract.

Contest contract manages the whole lifecycle of prize competitions: a creator
registers a contest with a judge set and a vote threshold, escrows the prize
into a dedicated vault account of the Balance contract, participants submit
and update entries until the deadline, judges vote after the deadline and
anyone can then trigger prize distribution once a candidate reaches the
threshold. If no distribution happens within the grace period after the
deadline, the creator reclaims the escrow.

Every record lives under a key computed from a small composite: contests are
keyed by (creator, id), submissions by (creator, id, participant) and votes by
(creator, id, judge). A second write to an occupied key is rejected, which is
how duplicate contests, submissions and votes are prevented without any
index. All fund movements go through the Balance contract within the same
transaction as the record updates, so a failed transfer reverts the whole
operation.

# Contract notifications

ContestCreated notification is produced when a new contest record is stored.

	ContestCreated:
	  - name: creator
	    type: Hash160
	  - name: id
	    type: Integer

ContestFunded notification is produced when the prize is escrowed.

	ContestFunded:
	  - name: creator
	    type: Hash160
	  - name: id
	    type: Integer
	  - name: amount
	    type: Integer

SponsorshipEnabled notification is produced when the creator commits a gas
budget.

	SponsorshipEnabled:
	  - name: creator
	    type: Hash160
	  - name: id
	    type: Integer
	  - name: budget
	    type: Integer

EntrySubmitted and EntryUpdated notifications are produced on entry writes.

	EntrySubmitted:
	  - name: creator
	    type: Hash160
	  - name: id
	    type: Integer
	  - name: participant
	    type: Hash160

VoteCast notification is produced when a judge's vote is stored.

	VoteCast:
	  - name: creator
	    type: Hash160
	  - name: id
	    type: Integer
	  - name: judge
	    type: Hash160
	  - name: candidate
	    type: Hash160

PrizeDistributed and FundsReclaimed notifications are produced when the vault
is drained to the winner or back to the creator.
*/
package contest

/*
Contract storage model.

# Summary
Key-value storage format:
 - 'balanceScriptHash' -> interop.Hash160
   Balance contract reference
 - 'gracePeriod' -> int
   reclamation delay after the submission deadline, in milliseconds
 - 'strictWindow' -> int
   0 or 1, whether entries are accepted only for active contests before the
   deadline
 - c<creator><id> -> std.Serialize(Contest)
   all registered contests, id is fixed-width little-endian
 - s<creator><id><participant> -> std.Serialize(Submission)
   one entry per contest participant
 - w<creator><id><judge> -> std.Serialize(Vote)
   one vote per contest judge

# Escrow
The contract does not hold funds itself. Each contest's prize is escrowed in
the Balance contract on an account whose address is derived from the contest
key, and the Contest contract is the only party allowed to move it.
*/
