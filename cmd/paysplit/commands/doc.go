// Package commands defines the paysplit CLI.
//
// Commands
//
//   - plan      Compute a transfer plan for an amount (no network access)
//   - disburse  Compute a plan and submit it as one atomic transaction
//
// Runtime configuration (RPC endpoint, payer keypair, recipient addresses)
// comes from the environment or a .env file; the split percentages and
// referrer caps are fixed by the split package defaults.
package commands
