// Package extractor reads object metadata from the header of a CREATE
// statement and rewrites self-database references.
//
// # Recognized headers
//
//	CREATE [OR REPLACE] [SECURE|TRANSIENT|TEMPORARY|EXTERNAL]...
//	       [MATERIALIZED|DYNAMIC] <type> [IF NOT EXISTS] <name>
//
// where <type> is one of DATABASE, SCHEMA, TABLE, VIEW, SEQUENCE, PIPE, TASK,
// STAGE, STREAM, FUNCTION, PROCEDURE, TAG, FILE FORMAT, MASKING POLICY or
// ROW ACCESS POLICY, and <name> has one to three dot-separated parts. A part
// is either a bare identifier or a double-quoted run with "" as an escaped
// quote. Keywords are case-insensitive and only the header has to match; the
// body after the name is not examined.
//
// MATERIALIZED VIEW and DYNAMIC TABLE are the only combined types. Any other
// modifier is dropped, so CREATE EXTERNAL TABLE yields TABLE.
//
// # Self-database references
//
// StripSelfDatabaseReferences shortens db.schema.object references to
// schema.object when db is the database being extracted, which makes the DDL
// portable to a database with another name. Text inside single-quoted
// literals is left alone; escaped quotes inside literals are not tracked.
package extractor
