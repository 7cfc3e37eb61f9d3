package source

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/vvka-141/ddlx/internal/ident"
	"github.com/vvka-141/ddlx/pkg/ddlx"
)

// ConnectorFactory returns a connector for one database of a server.
type ConnectorFactory func(database string) ddlx.Connector

// PostgresSource synthesizes DDL from the catalog of a live server.
type PostgresSource struct {
	connect      ConnectorFactory
	managementDB string
	logger       ddlx.Logger
}

// NewPostgresSource creates a source that lists databases through
// managementDB and opens one pool per fetched database.
func NewPostgresSource(connect ConnectorFactory, managementDB string, logger ddlx.Logger) *PostgresSource {
	if connect == nil {
		panic("connect cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	if managementDB == "" {
		managementDB = ddlx.DefaultManagementDB
	}
	return &PostgresSource{connect: connect, managementDB: managementDB, logger: logger}
}

// ListDatabases returns the connectable, non-template databases, sorted.
func (s *PostgresSource) ListDatabases(ctx context.Context) ([]string, error) {
	pool, err := s.connect(s.managementDB).Connect(ctx)
	if err != nil {
		return nil, err
	}
	defer pool.Close()

	names, err := collect(ctx, pool, queryDatabases, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to list databases: %w", err)
	}
	return names, nil
}

// FetchDDL reads the catalog of database and renders it as CREATE statements.
// An exact name match wins over a case-insensitive one.
func (s *PostgresSource) FetchDDL(ctx context.Context, database string) (*ddlx.Extract, error) {
	dbs, err := s.ListDatabases(ctx)
	if err != nil {
		return nil, err
	}
	name, ok := lo.Find(dbs, func(d string) bool { return d == database })
	if !ok {
		name, ok = lo.Find(dbs, func(d string) bool { return strings.EqualFold(d, database) })
	}
	if !ok {
		return nil, fmt.Errorf("%w: %q", ddlx.ErrDatabaseNotFound, database)
	}

	pool, err := s.connect(name).Connect(ctx)
	if err != nil {
		return nil, err
	}
	defer pool.Close()

	s.logger.Verbose("Reading catalog of %s", name)
	cat, err := readCatalog(ctx, pool)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog of %s: %w", name, err)
	}
	s.logger.Verbose("Catalog of %s: %d schemas, %d sequences, %d tables, %d views, %d routines",
		name, len(cat.schemas), len(cat.sequences), len(cat.tables), len(cat.views), len(cat.routines))

	return &ddlx.Extract{
		Database:           name,
		DDL:                cat.render(name),
		TaggedDollarQuotes: true,
	}, nil
}

type sequenceRow struct {
	Schema    string
	Name      string
	DataType  string
	Start     int64
	Increment int64
	Min       int64
	Max       int64
	Cycle     bool
}

type columnRow struct {
	Schema   string
	Table    string
	Column   string
	DataType string
	NotNull  bool
	Default  string
}

type viewRow struct {
	Schema       string
	Name         string
	Materialized bool
	Definition   string
}

type routineRow struct {
	Schema     string
	Name       string
	Definition string
}

type table struct {
	schema  string
	name    string
	columns []columnRow
}

type catalog struct {
	schemas   []string
	sequences []sequenceRow
	tables    []table
	views     []viewRow
	routines  []routineRow
}

func readCatalog(ctx context.Context, pool *pgxpool.Pool) (*catalog, error) {
	var (
		cat     catalog
		columns []columnRow
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		cat.schemas, err = collect(gctx, pool, querySchemas, pgx.RowTo[string])
		return err
	})
	g.Go(func() (err error) {
		cat.sequences, err = collect(gctx, pool, querySequences, pgx.RowToStructByPos[sequenceRow])
		return err
	})
	g.Go(func() (err error) {
		columns, err = collect(gctx, pool, queryColumns, pgx.RowToStructByPos[columnRow])
		return err
	})
	g.Go(func() (err error) {
		cat.views, err = collect(gctx, pool, queryViews, pgx.RowToStructByPos[viewRow])
		return err
	})
	g.Go(func() (err error) {
		cat.routines, err = collect(gctx, pool, queryRoutines, pgx.RowToStructByPos[routineRow])
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	cat.tables = groupColumns(columns)
	return &cat, nil
}

// groupColumns folds ordered column rows into tables.
func groupColumns(rows []columnRow) []table {
	var tables []table
	for _, r := range rows {
		if n := len(tables); n == 0 || tables[n-1].schema != r.Schema || tables[n-1].name != r.Table {
			tables = append(tables, table{schema: r.Schema, name: r.Table})
		}
		if r.Column != "" {
			t := &tables[len(tables)-1]
			t.columns = append(t.columns, r)
		}
	}
	return tables
}

// collect runs query in a read-only transaction with search_path pinned
// to pg_catalog.
func collect[T any](ctx context.Context, pool *pgxpool.Pool, query string, scan pgx.RowToFunc[T]) ([]T, error) {
	tx, err := pool.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err := tx.Exec(ctx, "SET LOCAL search_path = pg_catalog"); err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scan)
}

// render emits the catalog as ";\n\n"-separated CREATE statements.
// Schemas are bare names; other objects carry three-part quoted names
// except routines, whose headers come from pg_get_functiondef.
func (c *catalog) render(database string) string {
	qualify := func(schema, name string) string {
		return ident.Quote(database) + "." + ident.Quote(schema) + "." + ident.Quote(name)
	}

	stmts := []string{"CREATE DATABASE " + ident.Quote(database)}
	for _, sch := range c.schemas {
		stmts = append(stmts, "CREATE SCHEMA "+ident.Quote(sch))
	}
	for _, seq := range c.sequences {
		cycle := "NO CYCLE"
		if seq.Cycle {
			cycle = "CYCLE"
		}
		stmts = append(stmts, fmt.Sprintf("CREATE SEQUENCE %s AS %s START WITH %d INCREMENT BY %d MINVALUE %d MAXVALUE %d %s",
			qualify(seq.Schema, seq.Name), seq.DataType, seq.Start, seq.Increment, seq.Min, seq.Max, cycle))
	}
	for _, t := range c.tables {
		stmts = append(stmts, renderTable(qualify(t.schema, t.name), t.columns))
	}
	for _, v := range c.views {
		kind := "VIEW"
		if v.Materialized {
			kind = "MATERIALIZED VIEW"
		}
		body := strings.TrimSuffix(strings.TrimSpace(v.Definition), ";")
		stmts = append(stmts, fmt.Sprintf("CREATE %s %s AS\n%s", kind, qualify(v.Schema, v.Name), body))
	}
	for _, r := range c.routines {
		stmts = append(stmts, strings.TrimSpace(r.Definition))
	}
	return strings.Join(stmts, ddlx.ScriptSeparator) + ddlx.ScriptTerminator
}

func renderTable(name string, columns []columnRow) string {
	if len(columns) == 0 {
		return "CREATE TABLE " + name + " ()"
	}

	lines := lo.Map(columns, func(col columnRow, _ int) string {
		var b strings.Builder
		b.WriteString("    ")
		b.WriteString(ident.Quote(col.Column))
		b.WriteByte(' ')
		b.WriteString(col.DataType)
		if col.NotNull {
			b.WriteString(" NOT NULL")
		}
		if col.Default != "" {
			b.WriteString(" DEFAULT ")
			b.WriteString(col.Default)
		}
		return b.String()
	})
	return "CREATE TABLE " + name + " (\n" + strings.Join(lines, ",\n") + "\n)"
}
