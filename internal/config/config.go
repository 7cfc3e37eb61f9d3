package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/ddlx/pkg/ddlx"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ConfigFileName is the project configuration file looked up in a directory.
const ConfigFileName = "ddlx.yaml"

// ConnectionConfig is the connection section of ddlx.yaml. Passwords are
// never read from the file.
type ConnectionConfig struct {
	Host               string `yaml:"host"`
	Port               int    `yaml:"port"`
	Username           string `yaml:"username"`
	Database           string `yaml:"database"`
	ManagementDatabase string `yaml:"management_database,omitempty"`
	SSLMode            string `yaml:"sslmode"`
	SSLCert            string `yaml:"sslcert,omitempty"`
	SSLKey             string `yaml:"sslkey,omitempty"`
	SSLRootCert        string `yaml:"sslrootcert,omitempty"`
}

// ProjectConfig is the content of ddlx.yaml.
type ProjectConfig struct {
	Connection ConnectionConfig `yaml:"connection"`

	// Database is extracted when no database is given on the command line.
	Database string `yaml:"database"`

	// Schemas and Types are the default selection filters.
	Schemas []string `yaml:"schemas"`
	Types   []string `yaml:"types"`

	// Format is the default graph format.
	Format string `yaml:"format"`

	// Stages are synthesized into every extract of their database.
	Stages []ddlx.StageRef `yaml:"stages"`

	// TrimLeadingComments overrides the CLI default when set.
	TrimLeadingComments *bool `yaml:"trim_leading_comments"`

	Timeout string `yaml:"timeout"`
}

// Load reads ConfigFileName from dir.
func Load(dir string) (*ProjectConfig, error) {
	data, err := os.ReadFile(filepath.Join(dir, ConfigFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", ConfigFileName, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field values. Returns every problem joined.
func (c *ProjectConfig) Validate() error {
	var errs []error

	if _, err := c.TimeoutDuration(); err != nil {
		errs = append(errs, err)
	}
	if c.Connection.Port < 0 || c.Connection.Port > 65535 {
		errs = append(errs, fmt.Errorf("connection.port %d out of range: %w", c.Connection.Port, ddlx.ErrInvalidConfig))
	}
	for i, s := range c.Stages {
		if s.Database == "" || s.Schema == "" || s.Name == "" {
			errs = append(errs, fmt.Errorf("stages[%d] needs database, schema and name: %w", i, ddlx.ErrInvalidConfig))
		}
	}
	return errors.Join(errs...)
}

// TimeoutDuration parses Timeout. An empty value yields zero.
func (c *ProjectConfig) TimeoutDuration() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("invalid timeout %q: %w", c.Timeout, ddlx.ErrInvalidConfig)
	}
	return d, nil
}

// StagesFor returns the stages configured for database, matched
// case-insensitively.
func (c *ProjectConfig) StagesFor(database string) []ddlx.StageRef {
	var out []ddlx.StageRef
	for _, s := range c.Stages {
		if strings.EqualFold(s.Database, database) {
			out = append(out, s)
		}
	}
	return out
}
