// Package splitter cuts raw DDL text into individual statements.
//
// Statements end at a semicolon that appears outside every quoted or
// commented region. The scanner is a single forward pass over the input with
// one lexical state at a time:
//
//	default        looks for region openers and the ';' delimiter
//	line comment   -- up to and including the next newline
//	block comment  /* up to the next */ (no nesting)
//	single quote   '...' with '' as an escaped quote
//	double quote   "..." with "" as an escaped quote
//	dollar quote   $$...$$, nothing inside is special
//
// Comments and quoted text stay in the statement text; only the delimiter
// and the whitespace that follows it are dropped. An unterminated region
// runs to the end of the input and becomes part of the last statement.
//
// PostgreSQL function bodies often use tagged dollar quotes ($body$...$body$).
// These are only recognized when the splitter is built with
// WithTaggedDollarQuotes.
package splitter
