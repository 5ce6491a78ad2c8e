// Package sqlite stores expenses in a SQLite database file.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite"

	"github.com/example/expense-tracker/pkg/expense"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Store implements expense.Store on top of a SQLite database. The database
// is opened and closed within every call.
type Store struct {
	path   string
	logger *log.Logger
}

// New returns a store for the database file at path.
func New(path string, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}
	return &Store{path: path, logger: logger}
}

// Write replaces every stored expense inside a single transaction.
func (s *Store) Write(ctx context.Context, expenses []expense.Expense) (err error) {
	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM expenses`); err != nil {
		return fmt.Errorf("clear expenses: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO expenses (category, amount, spent_on, description) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range expenses {
		f := e.Fields()
		if _, err = stmt.ExecContext(ctx, f[0], f[1], f[2], f[3]); err != nil {
			return fmt.Errorf("insert expense: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	s.logger.Debug("wrote expenses to sqlite", "path", s.path, "count", len(expenses))
	return nil
}

// Read returns the stored expenses in the order they were written.
// Row.Line holds the row id.
func (s *Store) Read(ctx context.Context) ([]expense.Row, error) {
	if _, err := os.Stat(s.path); err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	db, err := s.open(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx,
		`SELECT id, category, amount, spent_on, description FROM expenses ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query expenses: %w", err)
	}
	defer rows.Close()

	var out []expense.Row
	for rows.Next() {
		var id int64
		var category, amount, date, description string
		if err := rows.Scan(&id, &category, &amount, &date, &description); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		out = append(out, expense.Row{
			Line:   int(id),
			Fields: []string{category, amount, date, description},
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expenses: %w", err)
	}

	s.logger.Debug("read expenses from sqlite", "path", s.path, "count", len(out))
	return out, nil
}

func (s *Store) open(ctx context.Context) (*sql.DB, error) {
	if err := runMigrations(s.path); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

// runMigrations uses its own connection; closing the migrate instance
// closes it.
func runMigrations(path string) error {
	migrateDB, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open migration database: %w", err)
	}

	driver, err := migratesqlite.WithInstance(migrateDB, &migratesqlite.Config{})
	if err != nil {
		migrateDB.Close()
		return fmt.Errorf("create sqlite driver: %w", err)
	}

	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		migrateDB.Close()
		return fmt.Errorf("create iofs source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		migrateDB.Close()
		return fmt.Errorf("create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}
