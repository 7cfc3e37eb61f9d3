package ddlx

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Connector is a unified interface for establishing database connections.
type Connector interface {
	// Connect establishes a connection pool to the database.
	// The returned pool should be closed by the caller when done.
	Connect(ctx context.Context) (*pgxpool.Pool, error)
}

// ConnectionConfig holds the parameters of a PostgreSQL connection.
type ConnectionConfig struct {
	Host     string
	Port     int
	Database string
	Username string
	Password string
	SSLMode  string

	// Client certificate paths for mTLS.
	SSLCert     string
	SSLKey      string
	SSLRootCert string

	AppName          string
	ConnectTimeout   time.Duration
	AdditionalParams map[string]string
}

// ForDatabase returns a copy of the config that connects to database.
func (c *ConnectionConfig) ForDatabase(database string) *ConnectionConfig {
	clone := *c
	clone.Database = database
	if c.AdditionalParams != nil {
		clone.AdditionalParams = make(map[string]string, len(c.AdditionalParams))
		for k, v := range c.AdditionalParams {
			clone.AdditionalParams[k] = v
		}
	}
	return &clone
}
