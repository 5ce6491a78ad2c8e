package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/example/expense-tracker/internal/config"
	"github.com/example/expense-tracker/internal/logging"
	"github.com/example/expense-tracker/internal/storage"
	"github.com/example/expense-tracker/pkg/expense"
)

// app holds what every command needs after flags are parsed.
type app struct {
	cfg    *config.Config
	logger *log.Logger
}

func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if dataFile != "" {
		cfg.DataFile = dataFile
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	logger := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
	logger.Debug("configuration loaded", "config", configPath, "data_file", cfg.DataFile)

	return &app{cfg: cfg, logger: logger}, nil
}

// loadLedger reads the configured data file into a new ledger. A missing
// file yields an empty ledger when allowMissing is set. Malformed lines are
// returned as a *expense.LoadError next to the partially filled ledger.
func (a *app) loadLedger(ctx context.Context, allowMissing bool) (*expense.Ledger, error) {
	l := expense.NewLedger()
	path := a.cfg.DataFile

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) && allowMissing {
		a.logger.Debug("data file does not exist yet", "path", path)
		return l, nil
	}

	store, err := storage.ForPath(path, a.logger)
	if err != nil {
		return nil, err
	}

	n, err := l.LoadFrom(ctx, store)
	var loadErr *expense.LoadError
	if errors.As(err, &loadErr) {
		for _, le := range loadErr.Lines {
			a.logger.Warn("skipped malformed line", "path", path, "line", le.Line, "err", le.Err)
		}
		return l, err
	}
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	a.logger.Debug("loaded expenses", "path", path, "count", n)
	return l, nil
}

func (a *app) saveLedger(ctx context.Context, l *expense.Ledger) error {
	store, err := storage.ForPath(a.cfg.DataFile, a.logger)
	if err != nil {
		return err
	}
	if err := l.SaveTo(ctx, store); err != nil {
		return fmt.Errorf("saving %s: %w", a.cfg.DataFile, err)
	}
	a.logger.Info("saved expenses", "path", a.cfg.DataFile, "count", l.Count())
	return nil
}
