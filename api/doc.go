// Package api exposes the final ledger over a read-only HTTP surface.
//
// The router serves account snapshots produced by a completed engine run; it
// never mutates ledger state.
package api
