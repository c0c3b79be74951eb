package disburse

import (
	"context"
	"encoding/binary"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paysplitorg/libpaysplit-go/split"
)

func testRecipients() Recipients {
	return Recipients{
		Treasury:       solana.NewWallet().PublicKey(),
		Team:           solana.NewWallet().PublicKey(),
		FirstReferrer:  solana.NewWallet().PublicKey(),
		SecondReferrer: solana.NewWallet().PublicKey(),
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- Recipients tests ---

func TestRecipientsResolve(t *testing.T) {
	recipients := testRecipients()

	tests := []struct {
		role split.Role
		want solana.PublicKey
	}{
		{split.RoleTreasury, recipients.Treasury},
		{split.RoleTeam, recipients.Team},
		{split.RoleFirstReferrer, recipients.FirstReferrer},
		{split.RoleSecondReferrer, recipients.SecondReferrer},
	}

	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			got, err := recipients.Resolve(tt.role)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecipientsResolve_Unresolved(t *testing.T) {
	recipients := Recipients{
		Treasury: solana.NewWallet().PublicKey(),
		Team:     solana.NewWallet().PublicKey(),
	}

	_, err := recipients.Resolve(split.RoleFirstReferrer)
	assert.ErrorIs(t, err, ErrUnresolvedRole)

	_, err = recipients.Resolve(split.Role(42))
	assert.ErrorIs(t, err, ErrUnresolvedRole)
}

// --- BuildInstructions tests ---

func TestBuildInstructions(t *testing.T) {
	payer := solana.NewWallet().PublicKey()
	recipients := testRecipients()
	plan := split.TransferPlan{
		{Role: split.RoleTreasury, Amount: 500_000},
		{Role: split.RoleTeam, Amount: 250_000},
		{Role: split.RoleFirstReferrer, Amount: 200_000},
		{Role: split.RoleSecondReferrer, Amount: 50_000},
	}

	instructions, err := BuildInstructions(payer, recipients, plan)
	require.NoError(t, err)
	require.Len(t, instructions, 4)

	wantRecipients := []solana.PublicKey{
		recipients.Treasury, recipients.Team,
		recipients.FirstReferrer, recipients.SecondReferrer,
	}
	for i, ins := range instructions {
		assert.Equal(t, system.ProgramID, ins.ProgramID())

		accounts := ins.Accounts()
		require.Len(t, accounts, 2)
		assert.Equal(t, payer, accounts[0].PublicKey)
		assert.Equal(t, wantRecipients[i], accounts[1].PublicKey)

		// Transfer layout: u32 instruction index, then u64 lamports, both
		// little-endian.
		data, err := ins.Data()
		require.NoError(t, err)
		require.Len(t, data, 12)
		assert.Equal(t, uint32(system.Instruction_Transfer), binary.LittleEndian.Uint32(data[0:4]))
		assert.Equal(t, plan[i].Amount, binary.LittleEndian.Uint64(data[4:12]))
	}
}

func TestBuildInstructions_UnresolvedRole(t *testing.T) {
	payer := solana.NewWallet().PublicKey()
	recipients := Recipients{
		Treasury: solana.NewWallet().PublicKey(),
		Team:     solana.NewWallet().PublicKey(),
	}
	plan := split.TransferPlan{
		{Role: split.RoleTreasury, Amount: 100},
		{Role: split.RoleFirstReferrer, Amount: 50},
	}

	_, err := BuildInstructions(payer, recipients, plan)
	assert.ErrorIs(t, err, ErrUnresolvedRole)
}

// --- Executor tests ---

func TestNew_Validation(t *testing.T) {
	payer := solana.NewWallet().PrivateKey
	ledger := &MockLedger{}

	tests := []struct {
		name string
		cfg  Config
	}{
		{"missing logger", Config{Ledger: ledger, Payer: payer, Recipients: testRecipients()}},
		{"missing ledger", Config{Logger: testLogger(), Payer: payer, Recipients: testRecipients()}},
		{"missing payer", Config{Logger: testLogger(), Ledger: ledger, Recipients: testRecipients()}},
		{"missing treasury", Config{Logger: testLogger(), Ledger: ledger, Payer: payer,
			Recipients: Recipients{Team: solana.NewWallet().PublicKey()}}},
		{"missing team", Config{Logger: testLogger(), Ledger: ledger, Payer: payer,
			Recipients: Recipients{Treasury: solana.NewWallet().PublicKey()}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cfg)
			assert.Error(t, err)
		})
	}
}

func TestDisburse(t *testing.T) {
	payer := solana.NewWallet()
	recipients := testRecipients()
	blockhash := solana.Hash{0xAA, 0xBB}
	wantSig := solana.Signature{0x01, 0x02}

	var sent *solana.Transaction
	ledger := &MockLedger{
		LatestBlockhashFn: func(ctx context.Context) (solana.Hash, error) {
			return blockhash, nil
		},
		SendTransactionFn: func(ctx context.Context, tx *solana.Transaction) (solana.Signature, error) {
			sent = tx
			return wantSig, nil
		},
	}

	exec, err := New(Config{
		Logger:     testLogger(),
		Ledger:     ledger,
		Payer:      payer.PrivateKey,
		Recipients: recipients,
	})
	require.NoError(t, err)

	plan, err := split.ComputePlan(split.DefaultParams(), split.PaymentRequest{
		Amount: 1_000_000, HasFirstReferrer: true, HasSecondReferrer: true,
	})
	require.NoError(t, err)

	sig, err := exec.Disburse(context.Background(), plan)
	require.NoError(t, err)
	assert.Equal(t, wantSig, sig)

	require.NotNil(t, sent)
	assert.Equal(t, blockhash, sent.Message.RecentBlockhash)
	assert.Len(t, sent.Message.Instructions, 4)
	require.Len(t, sent.Signatures, 1)
	assert.Equal(t, payer.PublicKey(), sent.Message.AccountKeys[0])
}

func TestDisburse_UnresolvedRole(t *testing.T) {
	payer := solana.NewWallet()
	sendCalled := false
	ledger := &MockLedger{
		LatestBlockhashFn: func(ctx context.Context) (solana.Hash, error) {
			return solana.Hash{}, nil
		},
		SendTransactionFn: func(ctx context.Context, tx *solana.Transaction) (solana.Signature, error) {
			sendCalled = true
			return solana.Signature{}, nil
		},
	}

	exec, err := New(Config{
		Logger: testLogger(),
		Ledger: ledger,
		Payer:  payer.PrivateKey,
		Recipients: Recipients{
			Treasury: solana.NewWallet().PublicKey(),
			Team:     solana.NewWallet().PublicKey(),
		},
	})
	require.NoError(t, err)

	plan := split.TransferPlan{
		{Role: split.RoleTreasury, Amount: 100},
		{Role: split.RoleTeam, Amount: 50},
		{Role: split.RoleSecondReferrer, Amount: 5},
	}

	_, err = exec.Disburse(context.Background(), plan)
	assert.ErrorIs(t, err, ErrUnresolvedRole)
	assert.False(t, sendCalled, "no transfer may be issued for an unresolvable plan")
}

func TestDisburse_SendFailure(t *testing.T) {
	payer := solana.NewWallet()
	ledger := &MockLedger{
		LatestBlockhashFn: func(ctx context.Context) (solana.Hash, error) {
			return solana.Hash{}, nil
		},
		SendTransactionFn: func(ctx context.Context, tx *solana.Transaction) (solana.Signature, error) {
			return solana.Signature{}, errors.New("blockhash not found")
		},
	}

	exec, err := New(Config{
		Logger:     testLogger(),
		Ledger:     ledger,
		Payer:      payer.PrivateKey,
		Recipients: testRecipients(),
	})
	require.NoError(t, err)

	plan := split.TransferPlan{
		{Role: split.RoleTreasury, Amount: 100},
		{Role: split.RoleTeam, Amount: 100},
	}
	_, err = exec.Disburse(context.Background(), plan)
	assert.ErrorIs(t, err, ErrTransferFailed)
}

func TestDisburse_BlockhashFailure(t *testing.T) {
	payer := solana.NewWallet()
	ledger := &MockLedger{
		LatestBlockhashFn: func(ctx context.Context) (solana.Hash, error) {
			return solana.Hash{}, errors.New("rpc unavailable")
		},
	}

	exec, err := New(Config{
		Logger:     testLogger(),
		Ledger:     ledger,
		Payer:      payer.PrivateKey,
		Recipients: testRecipients(),
	})
	require.NoError(t, err)

	plan := split.TransferPlan{{Role: split.RoleTreasury, Amount: 1}, {Role: split.RoleTeam, Amount: 1}}
	_, err = exec.Disburse(context.Background(), plan)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrTransferFailed)
}

// --- HandleInstruction tests ---

func TestHandleInstruction(t *testing.T) {
	payer := solana.NewWallet()
	var sent *solana.Transaction
	ledger := &MockLedger{
		LatestBlockhashFn: func(ctx context.Context) (solana.Hash, error) {
			return solana.Hash{}, nil
		},
		SendTransactionFn: func(ctx context.Context, tx *solana.Transaction) (solana.Signature, error) {
			sent = tx
			return solana.Signature{0x07}, nil
		},
	}

	exec, err := New(Config{
		Logger:     testLogger(),
		Ledger:     ledger,
		Payer:      payer.PrivateKey,
		Recipients: testRecipients(),
	})
	require.NoError(t, err)

	data := split.EncodeRequest(split.PaymentRequest{Amount: 1_000_000, HasFirstReferrer: true})
	sig, err := exec.HandleInstruction(context.Background(), split.DefaultParams(), data)
	require.NoError(t, err)
	assert.Equal(t, solana.Signature{0x07}, sig)

	// Treasury, team, first referrer; no second referrer entry.
	require.NotNil(t, sent)
	assert.Len(t, sent.Message.Instructions, 3)
}

func TestHandleInstruction_MalformedInput(t *testing.T) {
	payer := solana.NewWallet()
	sendCalled := false
	ledger := &MockLedger{
		LatestBlockhashFn: func(ctx context.Context) (solana.Hash, error) {
			return solana.Hash{}, nil
		},
		SendTransactionFn: func(ctx context.Context, tx *solana.Transaction) (solana.Signature, error) {
			sendCalled = true
			return solana.Signature{}, nil
		},
	}

	exec, err := New(Config{
		Logger:     testLogger(),
		Ledger:     ledger,
		Payer:      payer.PrivateKey,
		Recipients: testRecipients(),
	})
	require.NoError(t, err)

	_, err = exec.HandleInstruction(context.Background(), split.DefaultParams(), []byte{0x01, 0x02})
	assert.ErrorIs(t, err, split.ErrShortInstructionData)
	assert.False(t, sendCalled)
}
