// Package source resolves where the student roster comes from: the
// built-in sample or an externally selected file, with fallback to the
// sample on every failure path.
package source

import (
	"log/slog"

	"github.com/scims/gpa_prize_tui/internal/roster"
)

// Choice selects a roster source.
type Choice int

const (
	BuiltinSample Choice = iota
	ExternalFile
)

// Picker is the file-selection collaborator: it yields a path when the user
// confirms a file, or ok=false when selection was cancelled.
type Picker interface {
	Pick() (path string, ok bool, err error)
}

// PathPicker is a Picker over a fixed path. An empty path reads as a
// cancelled selection.
type PathPicker string

func (p PathPicker) Pick() (string, bool, error) {
	if p == "" {
		return "", false, nil
	}
	return string(p), true, nil
}

// Result is a resolved roster plus a notice set whenever the fallback fired.
type Result struct {
	Students []roster.Student
	Notice   string
}

// Resolve produces a non-empty roster. A cancelled selection, an unreadable
// file, or a file yielding no valid rows all fall back to the built-in
// sample with a notice; Resolve never fails.
func Resolve(choice Choice, picker Picker) Result {
	if choice != ExternalFile {
		return Result{Students: roster.Sample()}
	}

	path, ok, err := picker.Pick()
	if err != nil {
		slog.Info("file selection failed, falling back to sample", "error", err)
		return fallback("Failed to read file. Using built-in sample.")
	}
	if !ok {
		return fallback("No rows loaded (cancelled or empty). Falling back to built-in sample.")
	}

	students, err := roster.LoadFile(path)
	if err != nil {
		slog.Info("roster load failed, falling back to sample", "path", path, "error", err)
		return fallback("Failed to read file. Using built-in sample.")
	}
	if len(students) == 0 {
		return fallback("No rows loaded (cancelled or empty). Falling back to built-in sample.")
	}
	return Result{Students: students}
}

func fallback(notice string) Result {
	return Result{Students: roster.Sample(), Notice: notice}
}
