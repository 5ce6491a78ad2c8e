package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/expense-tracker/internal/shell"
	"github.com/example/expense-tracker/pkg/expense"
)

var (
	addCategory    string
	addAmount      string
	addDate        string
	addDescription string
	summaryAll     bool
	seedForce      bool
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add one expense to the ledger file",
	Example: `  expense-tracker add -f expenses.csv --category food --amount 45.50 \
    --date 11/05/2024 --description "Grocery shopping"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}

		l, err := a.loadLedger(cmd.Context(), true)
		var loadErr *expense.LoadError
		if errors.As(err, &loadErr) {
			return fmt.Errorf("refusing to rewrite %s, %d line(s) could not be read: %w",
				a.cfg.DataFile, len(loadErr.Lines), err)
		}
		if err != nil {
			return err
		}

		amount, err := expense.ParseAmount(addAmount)
		if err != nil {
			return err
		}
		e, err := l.Add(addCategory, amount, addDate, addDescription)
		if err != nil {
			return err
		}

		if err := a.saveLedger(cmd.Context(), l); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added %s %s on %s (%d expenses in %s)\n",
			e.Category(), e.Amount().StringFixed(2), e.Date().Format(expense.DateLayout), l.Count(), a.cfg.DataFile)
		return nil
	},
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print totals, category totals and trends for the ledger file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}

		r := shell.NewRenderer(cmd.OutOrStdout(), a.cfg.CurrencySymbol, a.cfg.Color)

		l, err := a.loadLedger(cmd.Context(), false)
		var loadErr *expense.LoadError
		if errors.As(err, &loadErr) {
			r.Errorf("%v", err)
		} else if err != nil {
			return err
		}

		r.Summary(l)
		if summaryAll {
			r.Title("All Expenses")
			r.Expenses(l)
		}
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write the sample expenses to the ledger file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}

		if _, err := os.Stat(a.cfg.DataFile); err == nil && !seedForce {
			return fmt.Errorf("%s already exists, use --force to overwrite it", a.cfg.DataFile)
		}

		l := expense.NewLedger()
		n, err := expense.Seed(l)
		if err != nil {
			return err
		}
		if err := a.saveLedger(cmd.Context(), l); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d sample expenses to %s\n", n, a.cfg.DataFile)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addCategory, "category", "", "expense category")
	addCmd.Flags().StringVar(&addAmount, "amount", "", "amount spent, e.g. 45.50")
	addCmd.Flags().StringVar(&addDate, "date", "", "date as MM/DD/YYYY")
	addCmd.Flags().StringVar(&addDescription, "description", "", "free-text description")
	_ = addCmd.MarkFlagRequired("category")
	_ = addCmd.MarkFlagRequired("amount")
	_ = addCmd.MarkFlagRequired("date")

	summaryCmd.Flags().BoolVar(&summaryAll, "all", false, "also list every expense")

	seedCmd.Flags().BoolVar(&seedForce, "force", false, "overwrite an existing file")
}
