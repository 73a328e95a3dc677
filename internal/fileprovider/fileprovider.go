// Package fileprovider resolves @import targets to source text for the
// bundler, behind an interface so tests can substitute an in-memory
// filesystem instead of touching disk. A narrow "resolve and read this
// path" seam sits between the bundler's graph-walking logic and wherever
// bytes actually come from.
package fileprovider

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Provider resolves an @import specifier relative to the file that
// referenced it, and reads its contents.
type Provider interface {
	// Resolve turns an @import url and the importing file's path into a
	// cleaned path (absolute when the specifier or fromFile is) the bundler
	// can use as a cache key and as the next call's fromFile.
	Resolve(specifier, fromFile string) (string, error)
	// Read returns the full contents of an already-resolved path.
	Read(path string) (string, error)
}

// Disk is the default Provider, reading files relative to the importing
// file's directory the way a browser or any other CSS tool resolves
// relative @import urls.
type Disk struct {
	mu    sync.Mutex
	cache map[string]string
}

func NewDisk() *Disk { return &Disk{cache: map[string]string{}} }

func (d *Disk) Resolve(specifier, fromFile string) (string, error) {
	if filepath.IsAbs(specifier) {
		return filepath.Clean(specifier), nil
	}
	base := filepath.Dir(fromFile)
	return filepath.Clean(filepath.Join(base, specifier)), nil
}

func (d *Disk) Read(path string) (string, error) {
	d.mu.Lock()
	if content, ok := d.cache[path]; ok {
		d.mu.Unlock()
		return content, nil
	}
	d.mu.Unlock()

	bytes, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	content := string(bytes)

	d.mu.Lock()
	d.cache[path] = content
	d.mu.Unlock()
	return content, nil
}

// Memory is an in-memory Provider for tests, keyed on exactly the paths
// in the map passed to NewMemory; Resolve still joins relative specifiers against the
// referencing file's directory so import-graph tests exercise the same
// path logic Disk does.
type Memory struct {
	files map[string]string
}

func NewMemory(files map[string]string) *Memory {
	return &Memory{files: files}
}

func (m *Memory) Resolve(specifier, fromFile string) (string, error) {
	if filepath.IsAbs(specifier) {
		return filepath.Clean(specifier), nil
	}
	return filepath.Clean(filepath.Join(filepath.Dir(fromFile), specifier)), nil
}

func (m *Memory) Read(path string) (string, error) {
	content, ok := m.files[path]
	if !ok {
		return "", fmt.Errorf("no such file: %s", path)
	}
	return content, nil
}
