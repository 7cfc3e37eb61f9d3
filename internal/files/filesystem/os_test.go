package filesystem

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSFileSystem(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "SALES.sql"), []byte("create schema RAW;"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "archive"), 0755))

	osfs := NewOSFileSystem()

	content, err := osfs.ReadFile(filepath.Join(dir, "SALES.sql"))
	require.NoError(t, err)
	assert.Equal(t, "create schema RAW;", string(content))

	entries, err := osfs.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "SALES.sql", entries[0].Name())
	assert.True(t, entries[1].IsDir())

	info, err := osfs.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestOSFileSystem_Missing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")
	osfs := NewOSFileSystem()

	_, err := osfs.ReadFile(missing)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	_, err = osfs.ReadDir(missing)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	_, err = osfs.Stat(missing)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
