package split

import "errors"

var (
	// ErrShortInstructionData indicates the instruction payload is shorter
	// than the minimum 10 bytes.
	ErrShortInstructionData = errors.New("split: instruction data too short")

	// ErrAmountOverflow indicates amount * percentage does not fit in 64 bits.
	ErrAmountOverflow = errors.New("split: amount overflows percentage arithmetic")

	// ErrInvalidParams indicates the split percentages are out of range.
	ErrInvalidParams = errors.New("split: invalid split parameters")

	// ErrConservationViolation indicates the plan amounts do not sum to the
	// original payment amount.
	ErrConservationViolation = errors.New("split: conservation violated")
)
