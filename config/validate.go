package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/gagliardetto/solana-go"
)

// validLogLevels lists the accepted log level strings.
var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// ValidateConfig checks that all configuration values are within acceptable
// ranges and returns the first error encountered, or nil if valid.
// Treasury and team addresses are required; referrer addresses are optional
// but must parse when set.
func ValidateConfig(cfg Config) error {
	if cfg.RPCEndpoint == "" {
		return ErrEmptyRPCEndpoint
	}
	if err := validateEndpoint(cfg.RPCEndpoint); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRPCEndpoint, err)
	}

	if cfg.PayerKeyFile == "" {
		return ErrEmptyPayerKeyFile
	}

	if cfg.Treasury == "" {
		return fmt.Errorf("%w: treasury", ErrMissingRecipient)
	}
	if cfg.Team == "" {
		return fmt.Errorf("%w: team", ErrMissingRecipient)
	}
	for _, addr := range []struct{ name, value string }{
		{"treasury", cfg.Treasury},
		{"team", cfg.Team},
		{"first_referrer", cfg.FirstReferrer},
		{"second_referrer", cfg.SecondReferrer},
	} {
		if addr.value == "" {
			continue
		}
		if _, err := solana.PublicKeyFromBase58(addr.value); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidRecipient, addr.name, err)
		}
	}

	if !validLogLevels[strings.ToLower(cfg.LogLevel)] {
		return ErrInvalidLogLevel
	}

	return nil
}

// validateEndpoint checks that endpoint is an absolute http or https URL.
func validateEndpoint(endpoint string) error {
	u, err := url.Parse(endpoint)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme %q is not http or https", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host")
	}
	return nil
}
