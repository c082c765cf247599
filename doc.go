// Package profin provides the functions and types for tracking the finances
// of a freelance or creative business. It is designed to be local-first,
// single-writer, and fully inspectable, keeping the user in control of their
// financial data.
//
// The core functionalities include:
//   - State Store: A single normalized snapshot of projects, income entries,
//     expense entries, and the user profile, mutated only through a closed
//     set of commands applied atomically and synchronously.
//   - Record Invariants: Opaque unique ids assigned behind the store
//     boundary, immutable creation stamps, and a project due amount that is
//     always re-derived from total and advance, never trusted from input.
//   - Data Persistence: Encoding and decoding of the full snapshot to a
//     single durable slot as human-readable, version-tagged JSON, flushed
//     after every accepted command.
//   - Derived Views: Stateless calculators for totals, expense breakdowns,
//     per-category income, and the recent-activity feed, recomputed on
//     demand from the current snapshot.
//
// This package serves as the foundational logic for the `profin`
// command-line tool, ensuring that all operations are consistent and based
// on a single source of truth.
package profin
