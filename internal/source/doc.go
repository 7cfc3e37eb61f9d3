// Package source provides ddlx.Source implementations.
//
// FileSource reads DDL dumps from disk: a single <DB>.sql file or a
// directory holding one <DB>.sql file per database. A sibling
// <DB>.stages.yaml manifest lists stages that have no DDL of their own.
//
// PostgresSource connects to a live PostgreSQL server and synthesizes
// CREATE statements from the system catalog. Catalog queries run
// concurrently over one pool per database.
package source
