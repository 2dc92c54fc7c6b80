package mocks

import (
	"fmt"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/user/gifmaker/pkg/ports"
)

// FileSystem is an in-memory implementation of ports.FileSystem.
// Directories are implied by the files stored under them and by MkdirAll.
type FileSystem struct {
	mu    sync.RWMutex
	files map[string][]byte
	dirs  map[string]bool

	ReadDirFunc   func(path string) ([]ports.DirEntry, error)
	ReadFileFunc  func(path string) ([]byte, error)
	WriteFileFunc func(path string, data []byte) error
	MkdirAllFunc  func(path string) error
	ExistsFunc    func(path string) (bool, error)

	ReadFileCalls []string
}

// NewFileSystem creates a new mock FileSystem.
func NewFileSystem() *FileSystem {
	return &FileSystem{
		files: make(map[string][]byte),
		dirs:  make(map[string]bool),
	}
}

func clean(p string) string {
	return filepath.ToSlash(filepath.Clean(p))
}

// AddFile stores a file without going through WriteFile (for test setup).
func (m *FileSystem) AddFile(p string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p = clean(p)
	m.files[p] = data
	for dir := path.Dir(p); dir != "." && dir != "/"; dir = path.Dir(dir) {
		m.dirs[dir] = true
	}
}

// AddDir registers an empty directory (for test setup).
func (m *FileSystem) AddDir(p string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dirs[clean(p)] = true
}

func (m *FileSystem) ReadDir(p string) ([]ports.DirEntry, error) {
	if m.ReadDirFunc != nil {
		return m.ReadDirFunc(p)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	dir := clean(p)
	if !m.dirs[dir] {
		return nil, fmt.Errorf("directory not found: %s", p)
	}

	seen := map[string]bool{}
	var entries []ports.DirEntry
	add := func(child string, isDir bool) {
		rel := strings.TrimPrefix(child, dir+"/")
		if rel == child || strings.Contains(rel, "/") || seen[rel] {
			return
		}
		seen[rel] = true
		entries = append(entries, ports.DirEntry{Name: rel, IsDir: isDir})
	}
	for f := range m.files {
		add(f, false)
	}
	for d := range m.dirs {
		add(d, true)
	}

	// Reverse order so callers cannot rely on the listing being sorted.
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name > entries[j].Name })
	return entries, nil
}

func (m *FileSystem) ReadFile(p string) ([]byte, error) {
	m.mu.Lock()
	m.ReadFileCalls = append(m.ReadFileCalls, p)
	m.mu.Unlock()

	if m.ReadFileFunc != nil {
		return m.ReadFileFunc(p)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if data, ok := m.files[clean(p)]; ok {
		return data, nil
	}
	return nil, fmt.Errorf("file not found: %s", p)
}

func (m *FileSystem) WriteFile(p string, data []byte) error {
	if m.WriteFileFunc != nil {
		return m.WriteFileFunc(p, data)
	}
	m.AddFile(p, data)
	return nil
}

func (m *FileSystem) MkdirAll(p string) error {
	if m.MkdirAllFunc != nil {
		return m.MkdirAllFunc(p)
	}
	m.AddDir(p)
	return nil
}

func (m *FileSystem) Exists(p string) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(p)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	p = clean(p)
	if _, ok := m.files[p]; ok {
		return true, nil
	}
	return m.dirs[p], nil
}

// GetFile returns the contents of a file (for test verification).
func (m *FileSystem) GetFile(p string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.files[clean(p)]
	return data, ok
}

// GetAllFiles returns a copy of all files (for test verification).
func (m *FileSystem) GetAllFiles() map[string][]byte {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make(map[string][]byte, len(m.files))
	for k, v := range m.files {
		result[k] = v
	}
	return result
}

var _ ports.FileSystem = (*FileSystem)(nil)
