package sheet

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Workspace holds the parsed worksheets below a root directory.
type Workspace struct {
	mu      sync.RWMutex
	rootDir string
	files   map[string]*File
}

func NewWorkspace(rootDir string) *Workspace {
	return &Workspace{
		rootDir: rootDir,
		files:   make(map[string]*File),
	}
}

func (w *Workspace) RootDir() string {
	return w.rootDir
}

func (w *Workspace) ScanAll() error {
	return filepath.Walk(w.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if isHiddenDir(w.rootDir, path, info) {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) == Ext {
			if _, err := w.ScanFile(path); err != nil {
				log.Errorf("scan %s: %s", path, err)
			}
		}
		return nil
	})
}

// isHiddenDir reports whether a directory below root starts with a dot.
// The root itself is never hidden, so "." can be scanned.
func isHiddenDir(root, path string, info os.FileInfo) bool {
	return path != root && strings.HasPrefix(info.Name(), ".")
}

func (w *Workspace) ScanFile(path string) (*File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return w.UpdateFile(path, content), nil
}

func (w *Workspace) UpdateFile(path string, content []byte) *File {
	f := Parse(path, content)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.files[path] = f
	return f
}

func (w *Workspace) RemoveFile(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.files, path)
}

func (w *Workspace) GetFile(path string) *File {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.files[path]
}

// Files returns all worksheets sorted by path.
func (w *Workspace) Files() []*File {
	w.mu.RLock()
	defer w.mu.RUnlock()

	result := make([]*File, 0, len(w.files))
	for _, f := range w.files {
		result = append(result, f)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Path < result[j].Path
	})
	return result
}
