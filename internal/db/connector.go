package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vvka-141/ddlx/internal/retry"
	"github.com/vvka-141/ddlx/pkg/ddlx"
)

// Pool limits. Catalog extraction runs a handful of queries concurrently.
const (
	DefaultMaxConns        = 4
	DefaultMinConns        = 0
	DefaultMaxConnIdleTime = 5 * time.Minute
)

// StandardConnector opens pools with username/password authentication,
// retrying transient failures.
type StandardConnector struct {
	config   *ddlx.ConnectionConfig
	executor *retry.Executor
	logger   ddlx.Logger
}

// NewStandardConnector creates a connector for config. Panics if config or
// logger is nil.
func NewStandardConnector(config *ddlx.ConnectionConfig, logger ddlx.Logger) *StandardConnector {
	if config == nil {
		panic("config cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}

	strategy := retry.NewExponentialBackoff(ddlx.DefaultRetryMaxAttempts,
		retry.WithInitialDelay(ddlx.DefaultRetryInitialDelay),
		retry.WithMaxDelay(ddlx.DefaultRetryMaxDelay),
	)
	executor := retry.NewExecutor(retry.NewPostgreSQLErrorClassifier(), strategy).
		WithOnRetry(func(attempt int, err error, delay time.Duration) {
			logger.Verbose("connect to %s:%d/%s failed (attempt %d), retrying in %v: %v",
				config.Host, config.Port, config.Database, attempt+1, delay.Round(time.Millisecond), err)
		})

	return &StandardConnector{config: config, executor: executor, logger: logger}
}

// Connect opens and pings a pool. The caller closes it.
func (c *StandardConnector) Connect(ctx context.Context) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(BuildConnectionString(c.config))
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection config: %w", err)
	}
	poolConfig.MaxConns = DefaultMaxConns
	poolConfig.MinConns = DefaultMinConns
	poolConfig.MaxConnIdleTime = DefaultMaxConnIdleTime
	poolConfig.ConnConfig.OnNotice = func(_ *pgconn.PgConn, n *pgconn.Notice) {
		c.logger.Verbose("server notice: %s", n.Message)
	}

	var pool *pgxpool.Pool
	err = c.executor.Execute(ctx, func(ctx context.Context) error {
		p, err := pgxpool.NewWithConfig(ctx, poolConfig)
		if err != nil {
			return err
		}
		if err := p.Ping(ctx); err != nil {
			p.Close()
			return err
		}
		pool = p
		return nil
	})
	if err != nil {
		return nil, wrapConnectionError(err, c.config)
	}
	return pool, nil
}

// NewConnectorFactory returns a function that builds a connector per
// database from a server-level config.
func NewConnectorFactory(server *ddlx.ConnectionConfig, logger ddlx.Logger) func(database string) ddlx.Connector {
	return func(database string) ddlx.Connector {
		return NewStandardConnector(server.ForDatabase(database), logger)
	}
}

// wrapConnectionError adds actionable guidance to common pgx failures.
// The result always wraps ddlx.ErrConnectionFailed.
func wrapConnectionError(err error, cfg *ddlx.ConnectionConfig) error {
	msg := strings.ToLower(err.Error())
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	var hint string
	switch {
	case strings.Contains(msg, "connection refused") || strings.Contains(msg, "actively refused"):
		hint = fmt.Sprintf(`connection refused to %s

Possible causes:
  - PostgreSQL is not running (check: pg_isready -h %s -p %d)
  - Wrong host or port`, addr, cfg.Host, cfg.Port)
	case strings.Contains(msg, "no such host"):
		hint = fmt.Sprintf(`cannot resolve host "%s"

Check the hostname and your DNS or network connection`, cfg.Host)
	case strings.Contains(msg, "password authentication failed"):
		hint = fmt.Sprintf(`password authentication failed for user "%s"

Set $PGPASSWORD, add an entry to ~/.pgpass or embed the password in --connection`, cfg.Username)
	case strings.Contains(msg, "does not exist"):
		hint = fmt.Sprintf(`database "%s" does not exist

List the server's databases with: ddlx databases`, cfg.Database)
	case strings.Contains(msg, "timeout") || strings.Contains(msg, "timed out"):
		hint = fmt.Sprintf("connection timed out to %s", addr)
	case strings.Contains(msg, "ssl") || strings.Contains(msg, "tls"):
		hint = "SSL/TLS connection error\n\nCheck --sslmode and the sslcert/sslkey/sslrootcert settings in ddlx.yaml"
	default:
		return fmt.Errorf("failed to connect to %s/%s: %w: %w", addr, cfg.Database, ddlx.ErrConnectionFailed, err)
	}
	return fmt.Errorf("%s\n\nOriginal error: %w: %w", hint, ddlx.ErrConnectionFailed, err)
}
