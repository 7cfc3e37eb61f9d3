package filesystem

import (
	"fmt"
	"os"
)

// OSFileSystem reads from the operating system filesystem.
type OSFileSystem struct{}

// NewOSFileSystem returns the OS filesystem provider.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

func (*OSFileSystem) ReadFile(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return content, nil
}

// ReadDir lists dir. Entries that vanish while listing are skipped.
func (*OSFileSystem) ReadDir(dir string) ([]FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}

	infos := make([]FileInfo, 0, len(entries))
	for _, e := range entries {
		info, err := e.Info()
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		infos = append(infos, info)
	}
	return infos, nil
}

func (*OSFileSystem) Stat(path string) (FileInfo, error) {
	return os.Stat(path)
}

var (
	_ FileSystemProvider = (*OSFileSystem)(nil)
	_ FileSystemProvider = (*MemoryFileSystem)(nil)
)
