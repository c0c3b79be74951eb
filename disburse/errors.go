package disburse

import "errors"

var (
	// ErrUnresolvedRole indicates a planned role has no configured recipient.
	ErrUnresolvedRole = errors.New("disburse: no recipient for role")

	// ErrTransferFailed indicates the ledger rejected the disbursement
	// transaction. The host ledger applies transactions atomically, so no
	// individual transfer in the plan took effect.
	ErrTransferFailed = errors.New("disburse: transfer failed")
)
