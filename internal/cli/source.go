package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/ddlx/internal/config"
	"github.com/vvka-141/ddlx/internal/db"
	"github.com/vvka-141/ddlx/internal/files/filesystem"
	"github.com/vvka-141/ddlx/internal/logging"
	"github.com/vvka-141/ddlx/internal/services"
	"github.com/vvka-141/ddlx/internal/source"
	"github.com/vvka-141/ddlx/pkg/ddlx"
)

// sourceFlags holds the flags shared by every command that reads a database.
type sourceFlags struct {
	database     string
	connection   string
	host         string
	port         int
	username     string
	sslMode      string
	managementDB string
	timeout      time.Duration
	trimComments bool
}

func addSourceFlags(cmd *cobra.Command, f *sourceFlags) {
	flags := cmd.Flags()
	flags.StringVarP(&f.database, "database", "d", "", "Database to extract (default: ddlx.yaml database, or the only database of the source)")
	flags.StringVar(&f.connection, "connection", "", "PostgreSQL connection string (URI or key=value)")
	flags.StringVarP(&f.host, "host", "h", "", "Server host")
	flags.IntVarP(&f.port, "port", "p", 0, "Server port")
	flags.StringVarP(&f.username, "username", "U", "", "Server user")
	flags.StringVar(&f.sslMode, "sslmode", "", "SSL mode (disable, prefer, require, verify-ca, verify-full)")
	flags.StringVar(&f.managementDB, "management-db", "", "Database used to list the server's databases (default: postgres)")
	flags.DurationVar(&f.timeout, "timeout", 0, "Abort after this duration (default: ddlx.yaml timeout, 5m for servers)")
	flags.BoolVar(&f.trimComments, "trim-comments", false, "Drop comments in front of each CREATE statement")
}

// session is everything a command needs to read one source.
type session struct {
	project  *config.ProjectConfig
	logger   ddlx.Logger
	source   ddlx.Source
	service  *services.ExportService
	timeout  time.Duration
	database string
}

// loadProjectConfig loads .env and ddlx.yaml from the --config directory.
// A missing ddlx.yaml yields an empty configuration.
func loadProjectConfig(cmd *cobra.Command) (*config.ProjectConfig, error) {
	dir, _ := cmd.Flags().GetString("config")
	if dir == "" {
		dir = "."
	}
	_ = godotenv.Load(filepath.Join(dir, ".env"))

	cfg, err := config.Load(dir)
	if errors.Is(err, config.ErrConfigNotFound) {
		return &config.ProjectConfig{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ddlx.ErrInvalidConfig, err)
	}
	return cfg, nil
}

// openSession picks the source: a path argument selects dump files,
// otherwise the connection settings select a server.
func openSession(cmd *cobra.Command, args []string, f *sourceFlags) (*session, error) {
	project, err := loadProjectConfig(cmd)
	if err != nil {
		return nil, err
	}
	logger := logging.NewConsoleLogger(getVerboseFlag(cmd))

	s := &session{project: project, logger: logger, timeout: f.timeout}
	if s.timeout == 0 {
		s.timeout, _ = project.TimeoutDuration()
	}

	if len(args) == 1 {
		logger.Verbose("Reading dumps from %s", args[0])
		s.source = source.NewFileSource(filesystem.NewOSFileSystem(), args[0])
	} else {
		server, err := db.ResolveConnection(f.connection, &db.ConnFlags{
			Host:               f.host,
			Port:               f.port,
			Username:           f.username,
			SSLMode:            f.sslMode,
			ManagementDatabase: f.managementDB,
		}, db.LoadFromEnvironment(), project)
		if err != nil {
			return nil, err
		}
		logger.Verbose("Connecting to %s:%d as %s", server.Host, server.Port, server.Username)
		s.source = source.NewPostgresSource(db.NewConnectorFactory(server, logger), server.Database, logger)
		if s.timeout == 0 {
			s.timeout = ddlx.DefaultTimeout
		}
	}

	trim := f.trimComments
	if !cmd.Flags().Changed("trim-comments") && project.TrimLeadingComments != nil {
		trim = *project.TrimLeadingComments
	}
	s.service = services.NewExportService(s.source, logger,
		services.WithStages(project.StagesFor),
		services.WithLeadingCommentTrim(trim),
	)

	s.database = f.database
	if s.database == "" {
		s.database = project.Database
	}
	return s, nil
}

// context returns a context bounded by the session timeout.
func (s *session) context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if s.timeout > 0 {
		return context.WithTimeout(ctx, s.timeout)
	}
	return context.WithCancel(ctx)
}

// resolveDatabase fills in the database when none was given and the source
// holds exactly one.
func (s *session) resolveDatabase(ctx context.Context, command string) (string, error) {
	if s.database != "" {
		return s.database, nil
	}

	dbs, err := s.source.ListDatabases(ctx)
	if err != nil {
		return "", err
	}
	if len(dbs) == 1 {
		s.database = dbs[0]
		return s.database, nil
	}
	return "", fmt.Errorf("database name is required (source has %d databases)\n"+
		"Provide via:\n"+
		"  1. --database/-d flag: ddlx %s ./dumps -d SALES\n"+
		"  2. ddlx.yaml: database: SALES\n"+
		"List them with: ddlx databases: %w",
		len(dbs), command, ddlx.ErrInvalidConfig)
}
