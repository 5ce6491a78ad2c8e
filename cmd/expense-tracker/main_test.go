package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/expense-tracker/pkg/expense"
)

func TestMainFunction(t *testing.T) {
	// Test that rootCmd is defined and has expected properties
	assert.NotNil(t, rootCmd, "rootCmd should be defined")
	assert.Equal(t, "expense-tracker", rootCmd.Use)
	assert.Contains(t, rootCmd.Short, "personal expenses")
	assert.Contains(t, rootCmd.Long, "Expense Tracker")

	var names []string
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"add", "summary", "seed"})
}

// resetFlags restores every flag of cmd and its subcommands to its default,
// since flag values live in package variables shared by all executions.
func resetFlags(t *testing.T, cmd *cobra.Command) {
	t.Helper()
	reset := func(f *pflag.Flag) {
		require.NoError(t, f.Value.Set(f.DefValue))
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(t, c)
	}
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("EXPENSE_COLOR", "false")
	resetFlags(t, rootCmd)

	var out bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSeedAndSummary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expenses.csv")

	out, err := execute(t, "", "seed", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote 22 sample expenses")

	_, err = execute(t, "", "seed", "--file", path)
	assert.ErrorContains(t, err, "already exists")

	out, err = execute(t, "", "summary", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Total expenses: $1471.00")
	assert.Contains(t, out, "Highest spending category: utilities ($375.00)")
	assert.Contains(t, out, "January 2025")
	assert.NotContains(t, out, "Description")

	out, err = execute(t, "", "summary", "--file", path, "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "Description")

	out, err = execute(t, "", "summary", "--file", path)
	require.NoError(t, err)
	assert.NotContains(t, out, "Description")

	out, err = execute(t, "", "seed", "--file", path, "--force")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote 22 sample expenses")
}

func TestAdd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expenses.csv")

	out, err := execute(t, "", "add", "--file", path,
		"--category", "Food", "--amount", "45.50", "--date", "11/05/2024", "--description", "Grocery, shopping")
	require.NoError(t, err)
	assert.Contains(t, out, "Added food 45.50 on 11/05/2024 (1 expenses")

	_, err = execute(t, "", "add", "--file", path,
		"--category", "food", "--amount", "25", "--date", "11/12/2024", "--description", "Restaurant")
	require.NoError(t, err)

	l := expense.NewLedger()
	n, err := l.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.True(t, decimal.RequireFromString("70.50").Equal(l.CategoryTotal("food")))

	_, err = execute(t, "", "add", "--file", path,
		"--category", "food", "--amount", "0", "--date", "11/12/2024")
	assert.ErrorIs(t, err, expense.ErrNonPositiveAmount)
}

func TestAdd_RefusesToRewriteMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expenses.csv")
	require.NoError(t, os.WriteFile(path, []byte("food,10,01/01/2025,ok\nbroken line\n"), 0o600))

	_, err := execute(t, "", "add", "--file", path,
		"--category", "food", "--amount", "1", "--date", "01/02/2025", "--description", "")
	assert.ErrorContains(t, err, "refusing to rewrite")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "broken line")
}

func TestInteractiveShell(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expenses.csv")

	out, err := execute(t, "8\n2\n11\n", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "MAIN MENU")
	assert.Contains(t, out, "Total expenses: $1471.00")
	assert.Contains(t, out, "Exiting expense tracker")
}

func TestInvalidDataFile(t *testing.T) {
	_, err := execute(t, "", "summary", "--file", "expenses.txt")
	assert.ErrorContains(t, err, "invalid data_file")
}
