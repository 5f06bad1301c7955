// Package writer puts generated artifacts on disk. Existing files are
// skipped unless force is enabled, so regeneration never silently destroys
// hand-edited output.
package writer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Status is the outcome of writing one artifact.
type Status int

const (
	// Created means the file did not exist and was written.
	Created Status = iota
	// Overwritten means an existing file was replaced under force.
	Overwritten
	// Skipped means an existing file was left untouched.
	Skipped
	// Planned means dry-run mode reported the write without performing it.
	Planned
)

func (s Status) String() string {
	switch s {
	case Created:
		return "created"
	case Overwritten:
		return "overwritten"
	case Skipped:
		return "skipped"
	case Planned:
		return "planned"
	default:
		return "unknown"
	}
}

// Writer writes artifacts under a root directory.
type Writer struct {
	Root   string
	Force  bool
	DryRun bool
}

func New(root string) *Writer {
	return &Writer{Root: root}
}

// Write places content at relPath under the root, creating parent
// directories as needed. Content must not be nil; empty content is legal.
func (w *Writer) Write(ctx context.Context, relPath string, content []byte) (Status, error) {
	if err := ctx.Err(); err != nil {
		return Skipped, err
	}
	if content == nil {
		return Skipped, fmt.Errorf("content is nil for file: %s", relPath)
	}

	path := filepath.Join(w.Root, relPath)

	exists := false
	if _, err := os.Stat(path); err == nil {
		exists = true
	}
	if exists && !w.Force {
		return Skipped, nil
	}

	if w.DryRun {
		return Planned, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return Skipped, fmt.Errorf("cannot create directory %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return Skipped, fmt.Errorf("cannot write %s: %w", path, err)
	}

	if exists {
		return Overwritten, nil
	}
	return Created, nil
}
