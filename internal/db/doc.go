// Package db turns connection flags, environment variables and ddlx.yaml
// into a ddlx.ConnectionConfig and opens pgx pools from it.
//
// Precedence, highest first: --connection; DDLX_CONNECTION_STRING or
// DATABASE_URL when no granular flag is given; then per parameter the
// granular flags (-h, -p, -U, --sslmode), PG* environment variables,
// ddlx.yaml and built-in defaults.
package db
