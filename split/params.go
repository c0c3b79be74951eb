package split

import "fmt"

// Default percentages and referrer caps, in percent of the payment amount
// and absolute base units respectively.
const (
	DefaultTreasuryPct       = 50
	DefaultFirstReferrerPct  = 20
	DefaultSecondReferrerPct = 5
	DefaultFirstReferrerCap  = 200_000_000
	DefaultSecondReferrerCap = 50_000_000
)

// Params holds the split percentages and referrer caps. The team share is
// the remainder after the other shares, so it carries no percentage of its
// own. Params are immutable process-wide configuration; construct once and
// pass by value.
type Params struct {
	TreasuryPct       uint64
	FirstReferrerPct  uint64
	SecondReferrerPct uint64
	FirstReferrerCap  uint64
	SecondReferrerCap uint64
}

// DefaultParams returns the production split: 50% treasury, 20% first
// referrer (capped), 5% second referrer (capped), remainder to the team.
func DefaultParams() Params {
	return Params{
		TreasuryPct:       DefaultTreasuryPct,
		FirstReferrerPct:  DefaultFirstReferrerPct,
		SecondReferrerPct: DefaultSecondReferrerPct,
		FirstReferrerCap:  DefaultFirstReferrerCap,
		SecondReferrerCap: DefaultSecondReferrerCap,
	}
}

// Validate checks that the percentages cannot allocate more than the
// payment amount. The sum bound guarantees the team remainder in
// ComputePlan never underflows.
func (p Params) Validate() error {
	sum := p.TreasuryPct + p.FirstReferrerPct + p.SecondReferrerPct
	if p.TreasuryPct > 100 || p.FirstReferrerPct > 100 || p.SecondReferrerPct > 100 || sum > 100 {
		return fmt.Errorf("%w: percentages %d+%d+%d exceed 100",
			ErrInvalidParams, p.TreasuryPct, p.FirstReferrerPct, p.SecondReferrerPct)
	}
	return nil
}
