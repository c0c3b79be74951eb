package disburse

import (
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"

	"github.com/paysplitorg/libpaysplit-go/split"
)

// BuildInstructions converts a transfer plan into one system-program
// transfer instruction per entry, payer to recipient, preserving plan
// order. All roles are resolved up front so an unresolved role fails the
// whole plan before anything is sent.
func BuildInstructions(payer solana.PublicKey, recipients Recipients, plan split.TransferPlan) ([]solana.Instruction, error) {
	instructions := make([]solana.Instruction, 0, len(plan))
	for _, entry := range plan {
		recipient, err := recipients.Resolve(entry.Role)
		if err != nil {
			return nil, err
		}
		instructions = append(instructions,
			system.NewTransferInstruction(entry.Amount, payer, recipient).Build())
	}
	return instructions, nil
}
