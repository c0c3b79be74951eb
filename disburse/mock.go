package disburse

import (
	"context"

	"github.com/gagliardetto/solana-go"
)

// MockLedger is a test double for Ledger. All function fields must be set
// before the corresponding method is called.
type MockLedger struct {
	LatestBlockhashFn func(ctx context.Context) (solana.Hash, error)
	SendTransactionFn func(ctx context.Context, tx *solana.Transaction) (solana.Signature, error)
}

func (m *MockLedger) LatestBlockhash(ctx context.Context) (solana.Hash, error) {
	return m.LatestBlockhashFn(ctx)
}

func (m *MockLedger) SendTransaction(ctx context.Context, tx *solana.Transaction) (solana.Signature, error) {
	return m.SendTransactionFn(ctx, tx)
}
