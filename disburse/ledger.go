package disburse

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// Ledger is the slice of the host ledger the executor needs: a recent
// blockhash to anchor the transaction and a way to submit it.
type Ledger interface {
	// LatestBlockhash returns a recent blockhash for transaction assembly.
	LatestBlockhash(ctx context.Context) (solana.Hash, error)

	// SendTransaction submits a signed transaction and returns its signature.
	SendTransaction(ctx context.Context, tx *solana.Transaction) (solana.Signature, error)
}

// RPCLedger adapts a Solana JSON-RPC client to the Ledger interface.
type RPCLedger struct {
	client *rpc.Client
}

// NewRPCLedger wraps an RPC client.
func NewRPCLedger(client *rpc.Client) *RPCLedger {
	return &RPCLedger{client: client}
}

func (l *RPCLedger) LatestBlockhash(ctx context.Context) (solana.Hash, error) {
	out, err := l.client.GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
	if err != nil {
		return solana.Hash{}, err
	}
	return out.Value.Blockhash, nil
}

func (l *RPCLedger) SendTransaction(ctx context.Context, tx *solana.Transaction) (solana.Signature, error) {
	return l.client.SendTransaction(ctx, tx)
}
