package disburse

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gagliardetto/solana-go"

	"github.com/paysplitorg/libpaysplit-go/split"
)

// Config holds the executor's dependencies.
type Config struct {
	Logger     *slog.Logger
	Ledger     Ledger
	Payer      solana.PrivateKey
	Recipients Recipients
}

func (cfg *Config) Validate() error {
	if cfg.Logger == nil {
		return errors.New("logger is required")
	}
	if cfg.Ledger == nil {
		return errors.New("ledger is required")
	}
	if cfg.Payer == nil {
		return errors.New("payer key is required")
	}
	if cfg.Recipients.Treasury.IsZero() {
		return errors.New("treasury recipient is required")
	}
	if cfg.Recipients.Team.IsZero() {
		return errors.New("team recipient is required")
	}
	return nil
}

// Executor realizes transfer plans as single atomic transactions. It holds
// no per-plan state; one Executor may serve concurrent disbursements.
type Executor struct {
	log *slog.Logger
	cfg Config
}

func New(cfg Config) (*Executor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Executor{
		log: cfg.Logger,
		cfg: cfg,
	}, nil
}

// Disburse packs the plan's transfers into one transaction, signs it as the
// payer, and submits it. The ledger applies the transaction atomically:
// either every transfer in the plan lands or none do. The returned
// signature identifies the submitted transaction.
func (e *Executor) Disburse(ctx context.Context, plan split.TransferPlan) (solana.Signature, error) {
	payer := e.cfg.Payer.PublicKey()

	instructions, err := BuildInstructions(payer, e.cfg.Recipients, plan)
	if err != nil {
		return solana.Signature{}, err
	}

	blockhash, err := e.cfg.Ledger.LatestBlockhash(ctx)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("fetch blockhash: %w", err)
	}

	tx, err := solana.NewTransaction(instructions, blockhash, solana.TransactionPayer(payer))
	if err != nil {
		return solana.Signature{}, fmt.Errorf("build transaction: %w", err)
	}

	if _, err := tx.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		if key.Equals(payer) {
			return &e.cfg.Payer
		}
		return nil
	}); err != nil {
		return solana.Signature{}, fmt.Errorf("sign transaction: %w", err)
	}

	sig, err := e.cfg.Ledger.SendTransaction(ctx, tx)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("%w: %v", ErrTransferFailed, err)
	}

	e.log.Info("disbursement submitted",
		"signature", sig.String(),
		"entries", len(plan),
		"total", plan.Total())
	return sig, nil
}

// HandleInstruction is the byte-level entrypoint: it decodes instruction
// data, computes the split under params, and disburses the resulting plan.
// Malformed input is rejected before any transfer is issued.
func (e *Executor) HandleInstruction(ctx context.Context, params split.Params, data []byte) (solana.Signature, error) {
	req, err := split.DecodeRequest(data)
	if err != nil {
		return solana.Signature{}, err
	}
	plan, err := split.ComputePlan(params, req)
	if err != nil {
		return solana.Signature{}, err
	}
	return e.Disburse(ctx, plan)
}
