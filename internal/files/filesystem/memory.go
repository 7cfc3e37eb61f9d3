package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory entries
type memoryFileInfo struct {
	name    string
	size    int64
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

func (f *memoryFileInfo) Mode() fs.FileMode {
	if f.isDir {
		return 0755 | fs.ModeDir
	}
	return 0644
}

// MemoryFileSystem implements FileSystemProvider for in-memory testing.
// Paths use forward slashes; relative paths are resolved against the root.
type MemoryFileSystem struct {
	mu    sync.RWMutex
	root  string
	files map[string][]byte
	dirs  map[string]bool
}

// NewMemoryFileSystem creates a new in-memory filesystem rooted at root.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))
	return &MemoryFileSystem{
		root:  root,
		files: make(map[string][]byte),
		dirs:  map[string]bool{root: true},
	}
}

// AddFile adds a file and its parent directories.
func (mfs *MemoryFileSystem) AddFile(filePath, content string) {
	abs := mfs.abs(filePath)

	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	mfs.files[abs] = []byte(content)
	for dir := path.Dir(abs); !mfs.dirs[dir]; dir = path.Dir(dir) {
		mfs.dirs[dir] = true
		if dir == "/" || dir == "." {
			break
		}
	}
}

func (mfs *MemoryFileSystem) abs(p string) string {
	p = filepath.ToSlash(p)
	if p == "" || p == "." {
		return mfs.root
	}
	if !path.IsAbs(p) {
		p = path.Join(mfs.root, p)
	}
	return path.Clean(p)
}

// ReadFile implements FileSystemProvider.ReadFile
func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	abs := mfs.abs(filePath)

	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	if mfs.dirs[abs] {
		return nil, fmt.Errorf("path is a directory, not a file: %s", filePath)
	}
	content, ok := mfs.files[abs]
	if !ok {
		return nil, fmt.Errorf("file not found: %s: %w", filePath, fs.ErrNotExist)
	}
	return content, nil
}

// ReadDir implements FileSystemProvider.ReadDir
func (mfs *MemoryFileSystem) ReadDir(dirPath string) ([]FileInfo, error) {
	abs := mfs.abs(dirPath)

	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	if !mfs.dirs[abs] {
		if _, isFile := mfs.files[abs]; isFile {
			return nil, fmt.Errorf("path is not a directory: %s", dirPath)
		}
		return nil, fmt.Errorf("directory not found: %s: %w", dirPath, fs.ErrNotExist)
	}

	var result []FileInfo
	for p, content := range mfs.files {
		if path.Dir(p) == abs {
			result = append(result, &memoryFileInfo{name: path.Base(p), size: int64(len(content))})
		}
	}
	for d := range mfs.dirs {
		if d != abs && path.Dir(d) == abs {
			result = append(result, &memoryFileInfo{name: path.Base(d), isDir: true})
		}
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Name() < result[j].Name() })
	return result, nil
}

// Stat implements FileSystemProvider.Stat
func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	abs := mfs.abs(statPath)

	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	if mfs.dirs[abs] {
		return &memoryFileInfo{name: path.Base(abs), isDir: true}, nil
	}
	if content, ok := mfs.files[abs]; ok {
		return &memoryFileInfo{name: path.Base(abs), size: int64(len(content))}, nil
	}
	return nil, fmt.Errorf("path not found: %s: %w", statPath, fs.ErrNotExist)
}
