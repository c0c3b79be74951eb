// Package disburse executes transfer plans against the Solana ledger. It
// resolves plan roles to recipient addresses and realizes each plan entry
// as a system-program transfer, all packed into one atomic transaction.
package disburse

import (
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/paysplitorg/libpaysplit-go/split"
)

// Recipients maps each plan role to its recipient address. Treasury and
// team must always be set; a referrer key may be left zero when that role
// never appears in plans.
type Recipients struct {
	Treasury       solana.PublicKey
	Team           solana.PublicKey
	FirstReferrer  solana.PublicKey
	SecondReferrer solana.PublicKey
}

// Resolve returns the configured address for role. A zero key means the
// role is unresolved and the whole disbursement must be rejected before
// any transfer is issued.
func (r Recipients) Resolve(role split.Role) (solana.PublicKey, error) {
	var key solana.PublicKey
	switch role {
	case split.RoleTreasury:
		key = r.Treasury
	case split.RoleTeam:
		key = r.Team
	case split.RoleFirstReferrer:
		key = r.FirstReferrer
	case split.RoleSecondReferrer:
		key = r.SecondReferrer
	default:
		return solana.PublicKey{}, fmt.Errorf("%w: unknown role %d", ErrUnresolvedRole, role)
	}
	if key.IsZero() {
		return solana.PublicKey{}, fmt.Errorf("%w: %s", ErrUnresolvedRole, role)
	}
	return key, nil
}
