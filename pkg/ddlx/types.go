package ddlx

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ObjectType is the normalized kind of a database object, upper-case with
// single spaces between words.
type ObjectType string

const (
	TypeDatabase         ObjectType = "DATABASE"
	TypeSchema           ObjectType = "SCHEMA"
	TypeTable            ObjectType = "TABLE"
	TypeDynamicTable     ObjectType = "DYNAMIC TABLE"
	TypeExternalTable    ObjectType = "EXTERNAL TABLE"
	TypeView             ObjectType = "VIEW"
	TypeMaterializedView ObjectType = "MATERIALIZED VIEW"
	TypeSequence         ObjectType = "SEQUENCE"
	TypePipe             ObjectType = "PIPE"
	TypeTask             ObjectType = "TASK"
	TypeStage            ObjectType = "STAGE"
	TypeStream           ObjectType = "STREAM"
	TypeFunction         ObjectType = "FUNCTION"
	TypeProcedure        ObjectType = "PROCEDURE"
	TypeTag              ObjectType = "TAG"
	TypeFileFormat       ObjectType = "FILE FORMAT"
	TypeMaskingPolicy    ObjectType = "MASKING POLICY"
	TypeRowAccessPolicy  ObjectType = "ROW ACCESS POLICY"
	TypeUnknown          ObjectType = "UNKNOWN"
)

// IsContainer reports whether objects of this type hold other objects.
func (t ObjectType) IsContainer() bool {
	return t == TypeDatabase || t == TypeSchema
}

// ParseObjectType normalizes a user-supplied type name: upper-case with
// single spaces, so "materialized  view" yields TypeMaterializedView.
func ParseObjectType(s string) ObjectType {
	return ObjectType(strings.Join(strings.Fields(strings.ToUpper(s)), " "))
}

// RawStatement is one statement produced by the splitter.
type RawStatement struct {
	// Text is the statement without its terminating semicolon.
	Text string `json:"text"`

	// Index is the 0-based position of the statement in the input.
	Index int `json:"index"`

	// Line is the 1-based line of the first non-space character of Text.
	Line int `json:"line"`
}

// ObjectMetadata describes one CREATE statement.
// Absent optional identifiers are empty strings.
type ObjectMetadata struct {
	ObjectType         ObjectType `json:"object_type"`
	Database           string     `json:"database"`
	Schema             string     `json:"schema"`
	ObjectName         string     `json:"object_name"`
	FullyQualifiedName string     `json:"fully_qualified_name"`
	DDL                string     `json:"ddl"`
	Index              int        `json:"index"`
	Checksum           string     `json:"checksum,omitempty"`
}

// DependencyGraph maps a canonical FQN to the canonical FQNs it depends on.
// Every node has an entry; a node without dependencies maps to an empty slice.
type DependencyGraph map[string][]string

// Nodes returns the number of nodes in the graph.
func (g DependencyGraph) Nodes() int {
	return len(g)
}

// Edges returns the total number of dependency edges.
func (g DependencyGraph) Edges() int {
	n := 0
	for _, deps := range g {
		n += len(deps)
	}
	return n
}

// Result is the output of one pipeline run.
type Result struct {
	// Database is the database the DDL was processed for.
	Database string `json:"database"`

	// Objects are in dependency order; Index is each object's position.
	Objects []ObjectMetadata `json:"objects"`

	// Graph is keyed by canonical FQN.
	Graph DependencyGraph `json:"dependency_graph"`

	// Cyclic lists FQNs that were placed by the cycle fallback.
	Cyclic []string `json:"cyclic,omitempty"`

	// Skipped holds statements that were not recognizable CREATE statements.
	Skipped []RawStatement `json:"skipped,omitempty"`

	// Unresolved holds objects that produced no canonical FQN.
	Unresolved []ObjectMetadata `json:"unresolved,omitempty"`

	// Conflicts lists FQNs defined more than once with different DDL.
	Conflicts []string `json:"conflicts,omitempty"`
}

// ExportConfig contains all parameters for producing an ordered DDL script.
type ExportConfig struct {
	// Database is the database to extract (required).
	Database string

	// Schemas restricts the selected objects. Empty selects all schemas.
	Schemas []string

	// Types restricts the selected object types. Empty selects all types.
	Types []ObjectType

	// Search is a case-insensitive substring filter on object names.
	Search string

	// IncludeContainers keeps DATABASE and SCHEMA objects in the selection.
	IncludeContainers bool

	// Timeout bounds the whole run. Zero means no timeout.
	Timeout time.Duration

	// Verbose enables detailed logging.
	Verbose bool
}

// Validate checks if the ExportConfig has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur.
func (c *ExportConfig) Validate() error {
	var errs []error

	if c.Database == "" {
		errs = append(errs, fmt.Errorf("Database is required: %w", ErrInvalidConfig))
	}

	if c.Timeout < 0 {
		errs = append(errs, fmt.Errorf("timeout cannot be negative: %w", ErrInvalidConfig))
	}

	for _, s := range c.Schemas {
		if s == "" {
			errs = append(errs, fmt.Errorf("schema names cannot be empty: %w", ErrInvalidConfig))
			break
		}
	}

	return errors.Join(errs...)
}
