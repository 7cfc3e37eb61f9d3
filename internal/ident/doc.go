// Package ident normalizes SQL identifiers the same way across the
// extractor, resolver and projection.
//
// Identifiers compare case-insensitively after surrounding double quotes are
// removed and doubled quotes ("") inside them are collapsed. A canonical
// fully-qualified name joins the present parts with dots:
//
//	DB.SCHEMA.OBJECT   when all three parts are present
//	SCHEMA.OBJECT      when database is absent
//	OBJECT             otherwise
//
// Object IDs are deterministic UUID v5 values derived from canonical names,
// so the same object gets the same ID across runs and machines.
package ident
