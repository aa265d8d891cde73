// Package commands defines the secalloc CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - estimate   Fit budget elasticities from each region's history
//   - optimize   Allocate a supplemental budget across regions
//   - sweep      Budget sweep with shadow prices
//   - tornado    Rank parameters by outcome sensitivity
//   - simulate   Monte Carlo run under parameter noise
//   - plan       Multi-period disbursement schedule
//   - backtest   Sliding-window accuracy of the trend model
//   - rank       Efficiency ranking of regions
//
// # Implementation
//
// The root command loads the region dataset, merges configuration from
// flags, environment (SECALLOC_*) and an optional config file, and sets
// up structured logging before any subcommand runs, so handlers share
// one dataset snapshot and one logger.
package commands
