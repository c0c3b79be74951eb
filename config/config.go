// Package config loads and validates runtime configuration for the
// disbursement tooling: RPC endpoint, payer key, recipient addresses, and
// log level.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/joho/godotenv"

	"github.com/paysplitorg/libpaysplit-go/disburse"
)

// Config holds runtime configuration. Recipient addresses are kept as
// base58 strings here; Recipients() parses them.
type Config struct {
	RPCEndpoint    string
	PayerKeyFile   string
	Treasury       string
	Team           string
	FirstReferrer  string
	SecondReferrer string
	LogLevel       string
}

// DefaultConfig returns a configuration pointing at a local validator with
// no recipients set.
func DefaultConfig() Config {
	return Config{
		RPCEndpoint: "http://127.0.0.1:8899",
		LogLevel:    "info",
	}
}

// Load reads configuration from the environment, consulting a .env file in
// the working directory when one exists, and validates it.
func Load() (Config, error) {
	_ = godotenv.Load() // a missing .env file is not an error

	cfg := DefaultConfig()
	if v := os.Getenv("PAYSPLIT_RPC_ENDPOINT"); v != "" {
		cfg.RPCEndpoint = v
	}
	cfg.PayerKeyFile = os.Getenv("PAYSPLIT_PAYER_KEYFILE")
	cfg.Treasury = os.Getenv("PAYSPLIT_TREASURY")
	cfg.Team = os.Getenv("PAYSPLIT_TEAM")
	cfg.FirstReferrer = os.Getenv("PAYSPLIT_FIRST_REFERRER")
	cfg.SecondReferrer = os.Getenv("PAYSPLIT_SECOND_REFERRER")
	if v := os.Getenv("PAYSPLIT_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if err := ValidateConfig(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// PayerKey loads the payer keypair from the configured keygen file.
func (c Config) PayerKey() (solana.PrivateKey, error) {
	return solana.PrivateKeyFromSolanaKeygenFile(c.PayerKeyFile)
}

// Recipients parses the configured recipient addresses into a resolution
// table. Unset referrer addresses stay zero, so plans naming them are
// rejected by the executor.
func (c Config) Recipients() (disburse.Recipients, error) {
	var r disburse.Recipients
	for _, addr := range []struct {
		value string
		key   *solana.PublicKey
	}{
		{c.Treasury, &r.Treasury},
		{c.Team, &r.Team},
		{c.FirstReferrer, &r.FirstReferrer},
		{c.SecondReferrer, &r.SecondReferrer},
	} {
		if addr.value == "" {
			continue
		}
		key, err := solana.PublicKeyFromBase58(addr.value)
		if err != nil {
			return disburse.Recipients{}, fmt.Errorf("%w: %w", ErrInvalidRecipient, err)
		}
		*addr.key = key
	}
	return r, nil
}

// SlogLevel maps the configured log level to a slog.Level. Call only after
// validation; unknown levels fall back to info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
