// Package checksum fingerprints object DDL.
//
// Two fingerprints are available:
//
//   - Raw: SHA-256 of the exact statement text
//   - Normalized: SHA-256 after formatting noise is removed, so that the same
//     definition written twice with different layout has one fingerprint
//
// # Normalization
//
//  1. Comments (-- and /* */) are removed
//  2. Whitespace runs collapse to a single space; leading and trailing space is dropped
//  3. Text outside quotes is upper-cased; quoted identifiers, string
//     literals and dollar-quoted bodies keep their case and spacing
//  4. The idempotency clauses OR REPLACE and IF NOT EXISTS are dropped from the header
//
// The pipeline uses normalized fingerprints to tell a harmless repeated
// definition from a conflicting one.
//
// SHA256 is safe for concurrent use by multiple goroutines.
package checksum
