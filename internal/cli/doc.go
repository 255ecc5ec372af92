// Package cli implements the command-line interface for golfing-grouper.
//
// The cli package provides the Cobra-based CLI with commands for searching
// tee times across platforms, one-shot scraping, running the periodic sweep
// worker, and submitting bookings. It wires the store, platform registry,
// and service packages together from environment configuration plus flags.
package cli
