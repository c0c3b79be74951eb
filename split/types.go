// Package split computes deterministic payment splits. Given a payment
// amount and which optional referrers are present, it produces an ordered
// transfer plan whose entries always sum to the original amount.
package split

import "fmt"

// Role identifies a disbursement recipient. Mapping a role to a concrete
// address is the executor's job, not this package's.
type Role uint8

const (
	RoleTreasury Role = iota
	RoleTeam
	RoleFirstReferrer
	RoleSecondReferrer
)

// String returns the role name for logs and error messages.
func (r Role) String() string {
	switch r {
	case RoleTreasury:
		return "treasury"
	case RoleTeam:
		return "team"
	case RoleFirstReferrer:
		return "first_referrer"
	case RoleSecondReferrer:
		return "second_referrer"
	default:
		return fmt.Sprintf("role(%d)", uint8(r))
	}
}

// PaymentRequest is one incoming payment to be split. Constructed once per
// invocation, consumed once, discarded.
type PaymentRequest struct {
	Amount            uint64
	HasFirstReferrer  bool
	HasSecondReferrer bool
}

// Entry is a single payout within a transfer plan.
type Entry struct {
	Role   Role
	Amount uint64
}

// TransferPlan is the ordered list of payouts for one payment. The order is
// fixed (treasury, team, then referrers) because it determines which
// transfer a partial failure would have completed before failing.
type TransferPlan []Entry

// Total returns the sum of all entry amounts.
func (p TransferPlan) Total() uint64 {
	var total uint64
	for _, e := range p {
		total += e.Amount
	}
	return total
}

// Amount returns the amount assigned to role, or false if the plan has no
// entry for it.
func (p TransferPlan) Amount(role Role) (uint64, bool) {
	for _, e := range p {
		if e.Role == role {
			return e.Amount, true
		}
	}
	return 0, false
}
