// Package workspace manages the demo's scratch directory.
//
// The workspace holds the sample documents the workflows read and the
// files the gateway's tools are expected to write. It is lazily created:
// every workflow calls [Workspace.Ensure] before touching files inside it.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Workspace is a directory on local storage used as demo scratch space.
type Workspace struct {
	dir string
}

// New creates a Workspace for the given directory path.
// The directory is not created until [Workspace.Ensure] is called.
func New(dir string) Workspace {
	return Workspace{dir: dir}
}

// Dir returns the workspace directory path.
func (w Workspace) Dir() string {
	return w.dir
}

// Ensure creates the workspace directory if it does not exist.
func (w Workspace) Ensure() error {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return fmt.Errorf("failed to create workspace %s: %w", w.dir, err)
	}
	return nil
}

// Path returns the full path of a file inside the workspace.
func (w Workspace) Path(name string) string {
	return filepath.Join(w.dir, name)
}

// FirstByExt returns the name of the lexicographically first file in the
// workspace with the given extension (e.g. ".pdf"). It returns "" when no
// such file exists.
func (w Workspace) FirstByExt(ext string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(w.dir, "*"+ext))
	if err != nil {
		return "", fmt.Errorf("failed to scan workspace: %w", err)
	}
	if len(matches) == 0 {
		return "", nil
	}
	sort.Strings(matches)
	return filepath.Base(matches[0]), nil
}

// Exists reports whether a file with the given name exists in the workspace.
func (w Workspace) Exists(name string) bool {
	info, err := os.Stat(w.Path(name))
	return err == nil && !info.IsDir()
}

// Size returns the size in bytes of a workspace file.
func (w Workspace) Size(name string) (int64, error) {
	info, err := os.Stat(w.Path(name))
	if err != nil {
		return 0, fmt.Errorf("failed to stat %s: %w", name, err)
	}
	return info.Size(), nil
}

// WriteFileIfAbsent writes content to a workspace file unless it already
// exists. It reports whether the file was created.
func (w Workspace) WriteFileIfAbsent(name, content string) (bool, error) {
	if w.Exists(name) {
		return false, nil
	}
	if err := os.WriteFile(w.Path(name), []byte(content), 0644); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", name, err)
	}
	return true, nil
}

// ConvertedName derives the Markdown conversion target for a source file:
// the source stem with a "_converted.md" suffix (report.txt -> report_converted.md).
func ConvertedName(source string) string {
	base := filepath.Base(source)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return stem + "_converted.md"
}
