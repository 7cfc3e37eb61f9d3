package ddlx

import "context"

// StageRef names a stage that has no DDL of its own in the source and must be
// synthesized into the extracted text.
type StageRef struct {
	Database string `yaml:"database" json:"database"`
	Schema   string `yaml:"schema" json:"schema"`
	Name     string `yaml:"name" json:"name"`
}

// Extract is the raw material fetched from a source for one database.
type Extract struct {
	// Database is the database name as the source reports it.
	Database string

	// DDL is the full CREATE-family text for the database.
	DDL string

	// Stages lists stages to be appended as synthesized CREATE STAGE statements.
	Stages []StageRef

	// TaggedDollarQuotes reports that DDL may contain $tag$ quoted bodies.
	TaggedDollarQuotes bool
}

// Source fetches raw DDL text for databases.
// Implementations must be safe for concurrent use.
type Source interface {
	// ListDatabases returns the databases the source can extract, sorted.
	ListDatabases(ctx context.Context) ([]string, error)

	// FetchDDL returns the raw DDL of a database.
	// Returns an error wrapping ErrDatabaseNotFound when the source does not know it.
	FetchDDL(ctx context.Context, database string) (*Extract, error)
}
