package config

import "errors"

var (
	// ErrEmptyRPCEndpoint indicates no RPC endpoint is configured.
	ErrEmptyRPCEndpoint = errors.New("config: RPC endpoint must not be empty")

	// ErrInvalidRPCEndpoint indicates the RPC endpoint is not a valid HTTP(S) URL.
	ErrInvalidRPCEndpoint = errors.New("config: invalid RPC endpoint")

	// ErrEmptyPayerKeyFile indicates no payer keypair file is configured.
	ErrEmptyPayerKeyFile = errors.New("config: payer key file must not be empty")

	// ErrMissingRecipient indicates a required recipient address is not set.
	ErrMissingRecipient = errors.New("config: missing recipient address")

	// ErrInvalidRecipient indicates a recipient address is not valid base58.
	ErrInvalidRecipient = errors.New("config: invalid recipient address")

	// ErrInvalidLogLevel indicates the log level is not recognized.
	ErrInvalidLogLevel = errors.New("config: invalid log level (must be \"debug\", \"info\", \"warn\", or \"error\")")
)
