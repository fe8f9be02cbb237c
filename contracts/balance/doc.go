/*
Package balance implements Balance contract which holds all prize credit
balances of the contest system.

Balance contract is a NEP-17 compatible contract, so balances can be tracked
and controlled by N3 compatible network monitors and wallet software. Besides
user accounts it stores the escrow vault account of every contest: vaults are
ordinary accounts whose addresses are derived by the Contest contract from
the contest key. Regular transfers require the owner's witness, while escrow
movements (funding, prize payout, reclamation) are performed through
TransferX, which only the designated Contest contract may call after doing
its own authorization. Emission and withdrawal of credits are committee
operations.

# Contract notifications

Transfer notification. This is a NEP-17 standard notification.

	Transfer:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer

TransferX notification. This is an enhanced transfer notification with
details.

	TransferX:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: details
	    type: ByteArray
*/
package balance

/*
Contract storage model.

# Summary
Key-value storage format:
 - 'PrizeSupply' -> int
   total amount of prize credits in circulation
 - 'x' -> interop.Hash160
   address of the designated Contest contract
 - a<interop.Hash160> -> int
   balance sheet of all accounts, escrow vaults included

# Accounting
Contract stores information about all contest system accounts.
*/
