// Package fondos merges manually pasted report pages from the bank's web
// portal into a durable per-fund time-series ledger, and derives the
// action-adjusted performance figures used for reporting.
//
// The core functionalities include:
//   - Fixed-point parsing: strict conversion of the portal's locale-formatted
//     currency, percentage and date cells into exact cent counts, percent
//     values (with an explicit "NA" state), and calendar dates.
//   - Ledger reconciliation: idempotent merging of balance, movement and
//     fund-value rows into per-fund series, including the multiset
//     reconciliation of repeated same-day movements across overlapping pastes.
//   - Return computation: action-adjusted fund variation, consolidated
//     portfolio figures, and unit-value returns over arbitrary lookback
//     windows.
//   - Data persistence: one opaque binary snapshot, replaced atomically with
//     a timestamped backup, and skipped entirely when nothing changed.
//
// This package serves as the foundational logic for the `fondos`
// command-line tool.
package fondos
