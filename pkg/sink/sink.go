// Package sink writes rendered artifacts to their destination.
package sink

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// Sink stores the body of one rendered artifact under path.
type Sink interface {
	Write(ctx context.Context, path string, body []byte) error
}

// SinkError reports a failed write of one artifact.
type SinkError struct {
	Path string
	Err  error
}

func (e *SinkError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *SinkError) Unwrap() error { return e.Err }

// FileSink writes artifacts to the local filesystem, creating parent
// directories as needed.
type FileSink struct {
	// Root is prepended to relative paths. Empty means the working directory.
	Root string
	// Perm is the file mode of written files. Defaults to 0644.
	Perm os.FileMode
}

// Write implements Sink.
func (s FileSink) Write(ctx context.Context, path string, body []byte) error {
	if err := ctx.Err(); err != nil {
		return &SinkError{Path: path, Err: err}
	}

	target := path
	if s.Root != "" && !filepath.IsAbs(path) {
		target = filepath.Join(s.Root, path)
	}

	perm := s.Perm
	if perm == 0 {
		perm = 0o644
	}

	if dir := filepath.Dir(target); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &SinkError{Path: target, Err: err}
		}
	}
	if err := os.WriteFile(target, body, perm); err != nil {
		return &SinkError{Path: target, Err: err}
	}
	return nil
}

// MemorySink keeps artifacts in memory. It is safe for concurrent use.
type MemorySink struct {
	mu    sync.Mutex
	files map[string][]byte
}

// NewMemorySink returns an empty MemorySink.
func NewMemorySink() *MemorySink {
	return &MemorySink{files: make(map[string][]byte)}
}

// Write implements Sink.
func (m *MemorySink) Write(ctx context.Context, path string, body []byte) error {
	if err := ctx.Err(); err != nil {
		return &SinkError{Path: path, Err: err}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[path] = append([]byte(nil), body...)
	return nil
}

// Get returns the body written under path.
func (m *MemorySink) Get(path string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.files[path]
	return b, ok
}

// Paths returns the written paths, sorted.
func (m *MemorySink) Paths() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	paths := make([]string, 0, len(m.files))
	for p := range m.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
