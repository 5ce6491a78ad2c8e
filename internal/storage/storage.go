// Package storage picks an expense.Store implementation for a file path.
package storage

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/example/expense-tracker/internal/storage/sqlite"
	"github.com/example/expense-tracker/pkg/expense"
)

// ErrUnsupportedFormat is returned for paths that are neither .csv nor .db.
var ErrUnsupportedFormat = errors.New("unsupported file type, use .csv or .db")

// Supported reports whether path has an extension ForPath understands.
func Supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".db":
		return true
	}
	return false
}

// ForPath returns a CSV file store for .csv paths and a SQLite store for
// .db paths.
func ForPath(path string, logger *log.Logger) (expense.Store, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return expense.NewFileStore(path), nil
	case ".db":
		return sqlite.New(path, logger), nil
	}
	return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
}
