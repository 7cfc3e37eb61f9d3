// Package pipeline turns raw DDL text into ordered object metadata.
//
// Process runs, for one database:
//
//  1. split the text into statements
//  2. strip references to the database itself from each statement
//  3. extract the CREATE header, skipping statements without one
//  4. default the database of each object to the processed database
//  5. fingerprint each object's DDL
//  6. resolve dependencies and order the objects
//
// Process is pure: it performs no I/O and keeps no state between calls.
package pipeline
