package ddlx

import "time"

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess          = 0  // Command completed successfully
	ExitGeneralError     = 1  // Unknown or unclassified error
	ExitUsageError       = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic            = 3  // Internal panic (unexpected crash)
	ExitConfigError      = 10 // Invalid configuration or parameters
	ExitConnectionError  = 11 // Failed to connect to database
	ExitApprovalDenied   = 12 // User declined to overwrite an output file
	ExitSourceMissing    = 14 // DDL source or database not found
	ExitNothingExtracted = 15 // Source contained no CREATE statements
)

const (
	// DefaultRetryInitialDelay is the default initial delay before the first retry attempt.
	DefaultRetryInitialDelay = 100 * time.Millisecond

	// DefaultRetryMaxDelay is the default maximum delay between retry attempts.
	DefaultRetryMaxDelay = 1 * time.Minute

	// DefaultRetryMaxAttempts is the default maximum number of retry attempts.
	DefaultRetryMaxAttempts = 3

	// DefaultTimeout bounds a whole extraction run against a live database.
	DefaultTimeout = 5 * time.Minute

	// DefaultManagementDB is the database used to enumerate the other databases on a server.
	DefaultManagementDB = "postgres"

	// ScriptSeparator joins object DDL in an assembled script.
	ScriptSeparator = ";\n\n"

	// ScriptTerminator ends an assembled script.
	ScriptTerminator = ";"

	// ExportFileTimeLayout is the timestamp layout used in export file names.
	ExportFileTimeLayout = "20060102150405"

	// DumpFileExtension is the extension of per-database DDL dump files.
	DumpFileExtension = ".sql"

	// StageManifestSuffix is appended to a database name to locate its stage manifest.
	StageManifestSuffix = ".stages.yaml"

	// MaxSnippetContext is the number of lines shown around a flagged line in warnings.
	MaxSnippetContext = 1
)
