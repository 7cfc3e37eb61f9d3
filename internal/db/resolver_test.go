package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/ddlx/internal/config"
	"github.com/vvka-141/ddlx/pkg/ddlx"
)

func TestConnFlags_IsEmpty(t *testing.T) {
	assert.True(t, (&ConnFlags{}).IsEmpty())
	assert.True(t, (&ConnFlags{ManagementDatabase: "template1"}).IsEmpty())
	assert.False(t, (&ConnFlags{Host: "h"}).IsEmpty())
	assert.False(t, (&ConnFlags{Port: 1}).IsEmpty())
	assert.False(t, (&ConnFlags{SSLMode: "disable"}).IsEmpty())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PGHOST", "envhost")
	t.Setenv("PGPORT", "6000")
	t.Setenv("DATABASE_URL", "postgresql://u@h/db")
	t.Setenv("DDLX_CONNECTION_STRING", "postgresql://x@y/z")

	env := LoadFromEnvironment()

	assert.Equal(t, "envhost", env.PGHOST)
	assert.Equal(t, "6000", env.PGPORT)
	assert.Equal(t, "postgresql://x@y/z", env.connectionString())
}

func TestResolveConnection_Conflict(t *testing.T) {
	_, err := ResolveConnection("postgresql://localhost/db", &ConnFlags{Host: "other"}, nil, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, ddlx.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "cannot specify both")
}

func TestResolveConnection_ConnectionString(t *testing.T) {
	cfg, err := ResolveConnection("postgresql://alice@db:5433/admin", &ConnFlags{ManagementDatabase: "template1"}, nil, nil)

	require.NoError(t, err)
	assert.Equal(t, "db", cfg.Host)
	assert.Equal(t, 5433, cfg.Port)
	assert.Equal(t, "alice", cfg.Username)
	assert.Equal(t, "template1", cfg.Database)
}

func TestResolveConnection_InvalidConnectionString(t *testing.T) {
	_, err := ResolveConnection("garbage", nil, nil, nil)

	assert.ErrorIs(t, err, ddlx.ErrInvalidConfig)
}

func TestResolveConnection_EnvironmentConnectionString(t *testing.T) {
	env := &EnvVars{DATABASE_URL: "postgresql://a@url-host/db1", DDLX_CONNECTION_STRING: "postgresql://b@ddlx-host/db2"}

	cfg, err := ResolveConnection("", nil, env, nil)
	require.NoError(t, err)
	assert.Equal(t, "ddlx-host", cfg.Host)

	env.DDLX_CONNECTION_STRING = ""
	cfg, err = ResolveConnection("", nil, env, nil)
	require.NoError(t, err)
	assert.Equal(t, "url-host", cfg.Host)

	cfg, err = ResolveConnection("", &ConnFlags{Host: "flag-host"}, env, nil)
	require.NoError(t, err)
	assert.Equal(t, "flag-host", cfg.Host, "granular flags bypass DATABASE_URL")
}

func TestResolveConnection_Precedence(t *testing.T) {
	project := &config.ProjectConfig{Connection: config.ConnectionConfig{
		Host: "yaml-host", Port: 7000, Username: "yaml-user", Database: "yaml-db",
		SSLMode: "verify-ca", SSLRootCert: "/ca.crt",
	}}
	env := &EnvVars{PGHOST: "env-host", PGUSER: "env-user", PGPASSWORD: "pw"}
	flags := &ConnFlags{Host: "flag-host"}

	cfg, err := ResolveConnection("", flags, env, project)
	require.NoError(t, err)

	assert.Equal(t, "flag-host", cfg.Host)
	assert.Equal(t, 7000, cfg.Port)
	assert.Equal(t, "env-user", cfg.Username)
	assert.Equal(t, "pw", cfg.Password)
	assert.Equal(t, "yaml-db", cfg.Database)
	assert.Equal(t, "verify-ca", cfg.SSLMode)
	assert.Equal(t, "/ca.crt", cfg.SSLRootCert)
}

func TestResolveConnection_Defaults(t *testing.T) {
	t.Setenv("USER", "osuser")

	cfg, err := ResolveConnection("", nil, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 5432, cfg.Port)
	assert.Equal(t, "osuser", cfg.Username)
	assert.Equal(t, "postgres", cfg.Database)
	assert.Equal(t, "prefer", cfg.SSLMode)
}

func TestResolveConnection_InvalidPGPORT(t *testing.T) {
	_, err := ResolveConnection("", nil, &EnvVars{PGPORT: "abc"}, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid $PGPORT")
}
