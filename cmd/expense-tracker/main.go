package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/example/expense-tracker/internal/shell"
	"github.com/example/expense-tracker/pkg/expense"
)

var (
	configPath string
	dataFile   string
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "expense-tracker",
	Short: "Record and summarize personal expenses",
	Long: `Expense Tracker records expenses by category, amount, date and description,
summarizes spending by category, month and week, and keeps the ledger in a CSV
or SQLite file. Run without a subcommand to open the interactive menu.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}

		sh := shell.New(expense.NewLedger(), cmd.InOrStdin(), cmd.OutOrStdout(), a.logger, shell.Options{
			CurrencySymbol: a.cfg.CurrencySymbol,
			Color:          a.cfg.Color,
			DataFile:       a.cfg.DataFile,
			Autoload:       a.cfg.Autoload,
			Autosave:       a.cfg.Autosave,
		})
		return sh.Run(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML config file")
	rootCmd.PersistentFlags().StringVarP(&dataFile, "file", "f", "", "ledger file (.csv or .db), overrides data_file")

	rootCmd.AddCommand(addCmd, summaryCmd, seedCmd)
}
