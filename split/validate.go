package split

import "fmt"

// ValidatePlan checks that plan conserves amount: no entry exceeds the
// amount and the entries sum to it exactly.
func ValidatePlan(plan TransferPlan, amount uint64) error {
	var total uint64
	for _, e := range plan {
		if e.Amount > amount-total {
			return fmt.Errorf("%w: %s share %d overshoots amount %d",
				ErrConservationViolation, e.Role, e.Amount, amount)
		}
		total += e.Amount
	}
	if total != amount {
		return fmt.Errorf("%w: plan total %d != amount %d",
			ErrConservationViolation, total, amount)
	}
	return nil
}
