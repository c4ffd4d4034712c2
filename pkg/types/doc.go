// Package types defines the value types and error model shared by the MXF
// parsing packages.
//
// It exposes the identifiers that appear throughout MXF structural metadata
// (Universal Labels, instance UIDs, package UMIDs), small numeric value
// types (rationals, timestamps), a typed error with stable categories, and
// the diagnostic sink used to accumulate every FATAL, NON_FATAL and WARNING
// entry encountered while parsing a single file.
//
// Design goals:
//   - Identifiers are comparable arrays so they can key maps and switches.
//   - Paranoid bounds checking upstream; this package never panics on input.
//   - Typed errors with stable categories (format/corrupt/unsupported/...).
//   - A FATAL failure always carries the full accumulated diagnostic log.
package types
