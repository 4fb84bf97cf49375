package pdf

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Sandbox confines file access to a configured directory
type Sandbox struct {
	root string
}

// NewSandbox creates a sandbox rooted at dir. The directory need not exist
// yet.
func NewSandbox(dir string) (*Sandbox, error) {
	if dir == "" {
		return nil, fmt.Errorf("configured directory cannot be empty")
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve directory: %w", err)
	}
	return &Sandbox{root: filepath.Clean(abs)}, nil
}

// Root returns the absolute sandbox directory
func (s *Sandbox) Root() string {
	return s.root
}

// Resolve returns the absolute form of path, relative paths being taken from
// the sandbox root, and fails when it points outside the root. Symlinks are
// followed on both sides.
func (s *Sandbox) Resolve(path string) (string, error) {
	path = strings.ReplaceAll(path, "\x00", "")
	if path == "" {
		return "", fmt.Errorf("path cannot be empty")
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(s.root, path)
	}
	abs := filepath.Clean(path)

	if !within(s.root, abs) {
		return "", fmt.Errorf("path is outside configured directory: %s", path)
	}

	realRoot := evalOrSelf(s.root)
	realPath := evalOrSelf(abs)
	if !within(realRoot, realPath) {
		return "", fmt.Errorf("path is outside configured directory: %s", path)
	}

	return abs, nil
}

func within(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// evalOrSelf resolves symlinks in the longest existing prefix of path
func evalOrSelf(path string) string {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		return resolved
	}
	parent := filepath.Dir(path)
	if parent == path {
		return path
	}
	return filepath.Join(evalOrSelf(parent), filepath.Base(path))
}
