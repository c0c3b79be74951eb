package split

import (
	"fmt"
	"math/bits"
)

// ComputePlan partitions req.Amount into shares per params and returns the
// ordered transfer plan. The plan always contains treasury and team entries
// (possibly zero); a referrer entry appears only when its flag is set and
// its share is nonzero.
//
// The team share is the remainder after the shares actually disbursed are
// subtracted. An absent referrer's percentage is simply never deducted; it
// is not redirected to any other role. When a referrer's share is capped,
// the excess stays in the remainder and so falls to the team.
//
// ComputePlan is a pure function: identical input yields an identical plan.
func ComputePlan(params Params, req PaymentRequest) (TransferPlan, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	treasury, err := pctOf(req.Amount, params.TreasuryPct)
	if err != nil {
		return nil, err
	}

	var firstRef uint64
	if req.HasFirstReferrer {
		firstRef, err = pctOf(req.Amount, params.FirstReferrerPct)
		if err != nil {
			return nil, err
		}
		firstRef = min(firstRef, params.FirstReferrerCap)
	}

	var secondRef uint64
	if req.HasSecondReferrer {
		secondRef, err = pctOf(req.Amount, params.SecondReferrerPct)
		if err != nil {
			return nil, err
		}
		secondRef = min(secondRef, params.SecondReferrerCap)
	}

	// Cannot underflow: Validate bounds the percentage sum by 100, and each
	// share is floor(amount*pct/100), so the shares sum to at most amount.
	team := req.Amount - treasury - firstRef - secondRef

	plan := TransferPlan{
		{Role: RoleTreasury, Amount: treasury},
		{Role: RoleTeam, Amount: team},
	}
	if req.HasFirstReferrer && firstRef > 0 {
		plan = append(plan, Entry{Role: RoleFirstReferrer, Amount: firstRef})
	}
	if req.HasSecondReferrer && secondRef > 0 {
		plan = append(plan, Entry{Role: RoleSecondReferrer, Amount: secondRef})
	}
	return plan, nil
}

// pctOf returns amount*pct/100 with truncating division. The multiply is
// widened to 128 bits; a product that does not fit in 64 bits is rejected
// rather than wrapped.
func pctOf(amount, pct uint64) (uint64, error) {
	hi, lo := bits.Mul64(amount, pct)
	if hi != 0 {
		return 0, fmt.Errorf("%w: %d * %d%%", ErrAmountOverflow, amount, pct)
	}
	return lo / 100, nil
}
