package db

import (
	"fmt"
	"os"
	"strconv"

	"github.com/vvka-141/ddlx/internal/config"
	"github.com/vvka-141/ddlx/pkg/ddlx"
)

// ConnFlags are the granular connection flags (-h, -p, -U, --sslmode,
// --management-db). There is no password flag; use $PGPASSWORD, ~/.pgpass
// or a connection string.
type ConnFlags struct {
	Host               string
	Port               int
	Username           string
	SSLMode            string
	ManagementDatabase string
}

// IsEmpty reports whether no server-selecting flag was given.
// ManagementDatabase is excluded because it may override the database of a
// connection string.
func (f *ConnFlags) IsEmpty() bool {
	return f.Host == "" && f.Port == 0 && f.Username == "" && f.SSLMode == ""
}

// EnvVars holds the connection-related environment.
type EnvVars struct {
	PGHOST       string
	PGPORT       string
	PGUSER       string
	PGPASSWORD   string
	PGDATABASE   string
	PGSSLMODE    string
	DATABASE_URL string

	// DDLX_CONNECTION_STRING takes precedence over DATABASE_URL.
	DDLX_CONNECTION_STRING string
}

// LoadFromEnvironment reads EnvVars from the process environment.
func LoadFromEnvironment() *EnvVars {
	return &EnvVars{
		PGHOST:                 os.Getenv("PGHOST"),
		PGPORT:                 os.Getenv("PGPORT"),
		PGUSER:                 os.Getenv("PGUSER"),
		PGPASSWORD:             os.Getenv("PGPASSWORD"),
		PGDATABASE:             os.Getenv("PGDATABASE"),
		PGSSLMODE:              os.Getenv("PGSSLMODE"),
		DATABASE_URL:           os.Getenv("DATABASE_URL"),
		DDLX_CONNECTION_STRING: os.Getenv("DDLX_CONNECTION_STRING"),
	}
}

func (e *EnvVars) connectionString() string {
	if e.DDLX_CONNECTION_STRING != "" {
		return e.DDLX_CONNECTION_STRING
	}
	return e.DATABASE_URL
}

// ResolveConnection builds the server connection from, in order of
// precedence, connStr, flags, env and the project configuration. The
// returned config's Database is the management database used to list the
// server's databases; per-database connections are derived from it with
// ForDatabase.
//
// Passing both connStr and server-selecting flags is an error.
func ResolveConnection(connStr string, flags *ConnFlags, env *EnvVars, project *config.ProjectConfig) (*ddlx.ConnectionConfig, error) {
	if flags == nil {
		flags = &ConnFlags{}
	}
	if env == nil {
		env = &EnvVars{}
	}
	var pc config.ConnectionConfig
	if project != nil {
		pc = project.Connection
	}

	if connStr != "" && !flags.IsEmpty() {
		return nil, fmt.Errorf("cannot specify both --connection and granular flags (-h, -p, -U, --sslmode)\n"+
			"Choose one approach:\n"+
			"  1. Connection string: --connection \"postgresql://user@localhost:5432/postgres\"\n"+
			"  2. Granular flags: -h localhost -p 5432 -U myuser\n"+
			"  3. Environment variables: export PGHOST=localhost PGPORT=5432 PGUSER=myuser: %w", ddlx.ErrInvalidConfig)
	}

	if connStr == "" && flags.IsEmpty() {
		connStr = env.connectionString()
	}
	if connStr != "" {
		cfg, err := ParseConnectionString(connStr)
		if err != nil {
			return nil, fmt.Errorf("invalid connection string: %w: %w", err, ddlx.ErrInvalidConfig)
		}
		if flags.ManagementDatabase != "" {
			cfg.Database = flags.ManagementDatabase
		}
		return cfg, nil
	}

	return resolveGranular(flags, env, pc)
}

// resolveGranular applies flag > environment > ddlx.yaml > default to every
// parameter independently.
func resolveGranular(flags *ConnFlags, env *EnvVars, pc config.ConnectionConfig) (*ddlx.ConnectionConfig, error) {
	cfg := newDefaultConfig()

	cfg.Host = first(flags.Host, env.PGHOST, pc.Host, defaultHost)

	switch {
	case flags.Port != 0:
		cfg.Port = flags.Port
	case env.PGPORT != "":
		port, err := strconv.Atoi(env.PGPORT)
		if err != nil {
			return nil, fmt.Errorf("invalid $PGPORT value '%s': must be an integer: %w", env.PGPORT, ddlx.ErrInvalidConfig)
		}
		cfg.Port = port
	case pc.Port != 0:
		cfg.Port = pc.Port
	}

	cfg.Username = first(flags.Username, env.PGUSER, pc.Username, os.Getenv("USER"), os.Getenv("USERNAME"))
	cfg.Password = env.PGPASSWORD
	cfg.Database = first(flags.ManagementDatabase, env.PGDATABASE, pc.ManagementDatabase, pc.Database, ddlx.DefaultManagementDB)
	cfg.SSLMode = first(flags.SSLMode, env.PGSSLMODE, pc.SSLMode, defaultSSLMode)
	cfg.SSLCert = pc.SSLCert
	cfg.SSLKey = pc.SSLKey
	cfg.SSLRootCert = pc.SSLRootCert

	return cfg, nil
}

func first(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
