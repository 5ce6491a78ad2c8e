// Package shell implements the interactive expense tracker menu.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/example/expense-tracker/internal/storage"
	"github.com/example/expense-tracker/pkg/expense"
)

const (
	optAdd = iota + 1
	optTotal
	optByCategory
	optMonthly
	optWeekly
	optHighestLowest
	optAll
	optSeed
	optSave
	optLoad
	optExit
)

var menu = []string{
	optAdd:           "Add Expense",
	optTotal:         "View Total Expenses",
	optByCategory:    "View Expenses By Category",
	optMonthly:       "View Monthly Trend",
	optWeekly:        "View Weekly Trend",
	optHighestLowest: "View Highest/Lowest Spending Categories",
	optAll:           "View All Expenses",
	optSeed:          "Load Sample Data",
	optSave:          "Save To File",
	optLoad:          "Load From File",
	optExit:          "Exit",
}

// Options tunes the shell.
type Options struct {
	CurrencySymbol string
	Color          bool
	// DataFile is loaded at start when Autoload is set and saved on exit
	// when Autosave is set.
	DataFile string
	Autoload bool
	Autosave bool
}

// Shell reads menu choices from an input stream and runs them against a
// ledger it does not own.
type Shell struct {
	ledger *expense.Ledger
	in     *bufio.Scanner
	r      *Renderer
	logger *log.Logger
	opts   Options
}

// New returns a shell reading from in and writing to out.
func New(ledger *expense.Ledger, in io.Reader, out io.Writer, logger *log.Logger, opts Options) *Shell {
	if logger == nil {
		logger = log.Default()
	}
	return &Shell{
		ledger: ledger,
		in:     bufio.NewScanner(in),
		r:      NewRenderer(out, opts.CurrencySymbol, opts.Color),
		logger: logger,
		opts:   opts,
	}
}

// Run shows the menu until the user exits, the input ends or ctx is
// canceled. Errors from individual actions are reported and never end the
// loop.
func (s *Shell) Run(ctx context.Context) error {
	s.r.Printf("%s\nEXPENSE TRACKER\n%s\n", strings.Repeat("*", 40), strings.Repeat("*", 40))

	if s.opts.Autoload && s.opts.DataFile != "" {
		if _, err := os.Stat(s.opts.DataFile); err == nil {
			s.load(ctx, s.opts.DataFile)
		}
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.displayMenu()
		line, ok := s.prompt(fmt.Sprintf("\nEnter an option (1-%d): ", optExit))
		if !ok {
			s.exit(ctx)
			return nil
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			choice = -1
		}

		switch choice {
		case optAdd:
			s.addExpense()
		case optTotal:
			s.r.Title("View Total Expenses")
			s.r.Total(s.ledger)
		case optByCategory:
			s.r.Title("View Expenses By Category")
			s.r.Categories(s.ledger)
		case optMonthly:
			s.r.Title("View Monthly Trend")
			s.r.Trend("Month", s.ledger.MonthlyTrend())
		case optWeekly:
			s.r.Title("View Weekly Trend")
			s.r.Trend("Week", s.ledger.WeeklyTrend())
		case optHighestLowest:
			s.r.Title("View Highest/Lowest Spending Categories")
			s.r.HighestLowest(s.ledger)
		case optAll:
			s.r.Title("All Expenses")
			s.r.Expenses(s.ledger)
		case optSeed:
			s.loadSampleData()
		case optSave:
			s.saveToFile(ctx)
		case optLoad:
			s.loadFromFile(ctx)
		case optExit:
			s.exit(ctx)
			return nil
		default:
			s.r.Errorf("Invalid choice")
		}
	}
}

func (s *Shell) displayMenu() {
	bar := strings.Repeat("=", 45)
	s.r.Printf("\n%s\nMAIN MENU\n%s\n", bar, bar)
	for i := optAdd; i <= optExit; i++ {
		s.r.Printf("%d. %s\n", i, menu[i])
	}
	s.r.Printf("%s\n", bar)
}

// prompt prints text and reads one trimmed line. ok is false at end of input.
func (s *Shell) prompt(text string) (line string, ok bool) {
	s.r.Printf("%s", text)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *Shell) addExpense() {
	s.r.Title("Add New Expense")

	category, ok := s.prompt("Category: ")
	if !ok {
		return
	}
	amountText, ok := s.prompt("Amount: " + s.opts.CurrencySymbol)
	if !ok {
		return
	}
	amount, err := expense.ParseAmount(amountText)
	if err != nil {
		s.r.Errorf("\nInvalid amount format")
		return
	}
	date, ok := s.prompt("Date (MM/DD/YYYY): ")
	if !ok {
		return
	}
	description, ok := s.prompt("Description: ")
	if !ok {
		return
	}

	e, err := s.ledger.Add(category, amount, date, description)
	if err != nil {
		s.r.Errorf("\nError: %v", err)
		return
	}
	s.logger.Debug("expense added", "category", e.Category(), "amount", e.Amount().String())
	s.r.Printf("Expense added successfully.\n")
}

func (s *Shell) loadSampleData() {
	s.r.Title("Load Sample Data")
	n, err := expense.Seed(s.ledger)
	if err != nil {
		s.r.Errorf("Error loading sample data: %v", err)
		return
	}
	s.r.Printf("Loaded %d sample expenses\n", n)
}

func (s *Shell) saveToFile(ctx context.Context) {
	s.r.Title("Save To File")
	path, ok := s.prompt("Filename (.csv or .db): ")
	if !ok {
		return
	}
	if !storage.Supported(path) {
		s.r.Errorf("Filename must end in .csv or .db")
		return
	}
	s.save(ctx, path)
}

func (s *Shell) loadFromFile(ctx context.Context) {
	s.r.Title("Load From File")
	path, ok := s.prompt("Filename (.csv or .db): ")
	if !ok {
		return
	}
	if !storage.Supported(path) {
		s.r.Errorf("Filename must end in .csv or .db")
		return
	}
	if _, err := os.Stat(path); err != nil {
		s.r.Errorf("File not found: %s", path)
		return
	}
	s.load(ctx, path)
}

func (s *Shell) save(ctx context.Context, path string) {
	store, err := storage.ForPath(path, s.logger)
	if err != nil {
		s.r.Errorf("Error saving to file: %v", err)
		return
	}
	if err := s.ledger.SaveTo(ctx, store); err != nil {
		s.logger.Error("save failed", "path", path, "err", err)
		s.r.Errorf("Error saving to file: %v", err)
		return
	}
	s.logger.Info("saved expenses", "path", path, "count", s.ledger.Count())
	s.r.Printf("Expenses saved to %s\n", path)
}

func (s *Shell) load(ctx context.Context, path string) {
	store, err := storage.ForPath(path, s.logger)
	if err != nil {
		s.r.Errorf("Error loading file: %v", err)
		return
	}

	n, err := s.ledger.LoadFrom(ctx, store)
	var loadErr *expense.LoadError
	switch {
	case errors.As(err, &loadErr):
		for _, le := range loadErr.Lines {
			s.logger.Warn("skipped malformed line", "path", path, "line", le.Line, "err", le.Err)
			s.r.Errorf("Skipped %v", le)
		}
	case err != nil:
		s.logger.Error("load failed", "path", path, "err", err)
		s.r.Errorf("Error loading file: %v", err)
		return
	}

	s.logger.Info("loaded expenses", "path", path, "count", n)
	s.r.Printf("Loaded %d expenses from %s\n", n, path)
}

func (s *Shell) exit(ctx context.Context) {
	if s.opts.Autosave && s.opts.DataFile != "" {
		s.save(ctx, s.opts.DataFile)
	}
	s.r.Printf("\nExiting expense tracker\n")
}
