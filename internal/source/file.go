package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/ddlx/internal/files/filesystem"
	"github.com/vvka-141/ddlx/pkg/ddlx"
)

// FileSource reads DDL dump files through a filesystem provider.
type FileSource struct {
	fs   filesystem.FileSystemProvider
	path string
}

// NewFileSource creates a source rooted at path, which may be a single
// .sql file or a directory of .sql files.
func NewFileSource(fsProvider filesystem.FileSystemProvider, path string) *FileSource {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &FileSource{fs: fsProvider, path: path}
}

// ListDatabases returns the database names of all dump files, sorted.
func (s *FileSource) ListDatabases(ctx context.Context) ([]string, error) {
	dumps, err := s.dumps()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(dumps))
	for name := range dumps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// FetchDDL reads the dump and stage manifest of database.
// The database name is matched case-insensitively.
func (s *FileSource) FetchDDL(ctx context.Context, database string) (*ddlx.Extract, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dumps, err := s.dumps()
	if err != nil {
		return nil, err
	}

	var name, file string
	for n, f := range dumps {
		if strings.EqualFold(n, database) {
			name, file = n, f
			break
		}
	}
	if file == "" {
		return nil, fmt.Errorf("%w: %q in %s", ddlx.ErrDatabaseNotFound, database, s.path)
	}

	content, err := s.fs.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", file, err)
	}

	stages, err := s.readManifest(strings.TrimSuffix(file, filepath.Ext(file))+ddlx.StageManifestSuffix, name)
	if err != nil {
		return nil, err
	}

	return &ddlx.Extract{
		Database: name,
		DDL:      string(content),
		Stages:   stages,
	}, nil
}

// dumps maps database names to dump file paths.
func (s *FileSource) dumps() (map[string]string, error) {
	info, err := s.fs.Stat(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ddlx.ErrSourceNotFound, s.path)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", s.path, err)
	}

	if !info.IsDir() {
		name, ok := databaseName(info.Name())
		if !ok {
			return nil, fmt.Errorf("%w: %s is not a %s file", ddlx.ErrInvalidConfig, s.path, ddlx.DumpFileExtension)
		}
		return map[string]string{name: s.path}, nil
	}

	entries, err := s.fs.ReadDir(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", s.path, err)
	}

	dumps := make(map[string]string)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if name, ok := databaseName(e.Name()); ok {
			dumps[name] = filepath.Join(s.path, e.Name())
		}
	}
	return dumps, nil
}

// readManifest loads the stage list at path. A missing manifest means no stages.
// Entries without a database belong to database.
func (s *FileSource) readManifest(path, database string) ([]ddlx.StageRef, error) {
	content, err := s.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read stage manifest %s: %w", path, err)
	}

	var stages []ddlx.StageRef
	if err := yaml.Unmarshal(content, &stages); err != nil {
		return nil, fmt.Errorf("%w: stage manifest %s: %w", ddlx.ErrInvalidConfig, path, err)
	}

	var errs []error
	for i := range stages {
		if stages[i].Database == "" {
			stages[i].Database = database
		}
		if stages[i].Schema == "" || stages[i].Name == "" {
			errs = append(errs, fmt.Errorf("stage #%d: schema and name are required", i+1))
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: stage manifest %s: %w", ddlx.ErrInvalidConfig, path, errors.Join(errs...))
	}
	return stages, nil
}

// databaseName returns the database a dump file belongs to.
func databaseName(file string) (string, bool) {
	ext := filepath.Ext(file)
	if !strings.EqualFold(ext, ddlx.DumpFileExtension) {
		return "", false
	}
	name := strings.TrimSuffix(file, ext)
	return name, name != ""
}
