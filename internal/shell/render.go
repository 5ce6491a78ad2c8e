package shell

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"

	"github.com/example/expense-tracker/pkg/expense"
)

const noExpenses = "No expenses recorded yet."

// Renderer prints ledger reports as fixed-width tables.
type Renderer struct {
	w      io.Writer
	symbol string
	title  *color.Color
	errc   *color.Color
}

// NewRenderer returns a renderer writing to w. Amounts are prefixed with
// symbol.
func NewRenderer(w io.Writer, symbol string, useColor bool) *Renderer {
	r := &Renderer{
		w:      w,
		symbol: symbol,
		title:  color.New(color.FgCyan, color.Bold),
		errc:   color.New(color.FgRed),
	}
	if !useColor {
		r.title.DisableColor()
		r.errc.DisableColor()
	}
	return r
}

func (r *Renderer) money(d decimal.Decimal) string {
	return r.symbol + d.StringFixed(2)
}

// Title prints a section heading such as "--- View Total Expenses ---".
func (r *Renderer) Title(name string) {
	r.title.Fprintf(r.w, "\n--- %s ---\n", name)
}

// Errorf prints a highlighted error line.
func (r *Renderer) Errorf(format string, args ...any) {
	r.errc.Fprintf(r.w, format+"\n", args...)
}

// Printf prints plain text.
func (r *Renderer) Printf(format string, args ...any) {
	fmt.Fprintf(r.w, format, args...)
}

// Total prints the overall total and the number of expenses.
func (r *Renderer) Total(l *expense.Ledger) {
	r.Printf("Total expenses: %s\n", r.money(l.Total()))
	r.Printf("Number of expenses: %d\n", l.Count())
}

// Categories prints the total of every category in first-seen order.
func (r *Renderer) Categories(l *expense.Ledger) {
	totals := l.CategoryTotals()
	if len(totals) == 0 {
		r.Printf("%s\n", noExpenses)
		return
	}

	r.Printf("%-15s %s\n", "Category", "Total")
	r.Printf("%s\n", strings.Repeat("-", 40))
	for _, ca := range totals {
		r.Printf("%-15s %s\n", ca.Category, r.money(ca.Amount))
	}
}

// Trend prints trend buckets under a column named period.
func (r *Renderer) Trend(period string, buckets []expense.Bucket) {
	if len(buckets) == 0 {
		r.Printf("%s\n", noExpenses)
		return
	}

	r.Printf("%-22s %s\n", period, "Total")
	r.Printf("%s\n", strings.Repeat("-", 40))
	for _, b := range buckets {
		r.Printf("%-22s %s\n", b.Label, r.money(b.Total))
	}
}

// HighestLowest prints the highest and lowest spending categories.
func (r *Renderer) HighestLowest(l *expense.Ledger) {
	highest := l.HighestSpendCategory()
	lowest := l.LowestSpendCategory()
	if highest == expense.NoCategory || lowest == expense.NoCategory {
		r.Printf("%s\n", noExpenses)
		return
	}

	r.Printf("Highest spending category: %s (%s)\n", highest, r.money(l.CategoryTotal(highest)))
	r.Printf("Lowest spending category: %s (%s)\n", lowest, r.money(l.CategoryTotal(lowest)))
}

// Expenses prints every expense ordered by date.
func (r *Renderer) Expenses(l *expense.Ledger) {
	sorted := l.SortedByDate()
	if len(sorted) == 0 {
		r.Printf("%s\n", noExpenses)
		return
	}

	r.Printf("%-15s %-11s %-12s %s\n", "Category", "Amount", "Date", "Description")
	r.Printf("%s\n", strings.Repeat("-", 60))
	for _, e := range sorted {
		r.Printf("%s\n", e.TableRow(r.symbol))
	}
	r.Printf("\nTotal expenses: %d\n", l.Count())
}

// Summary prints every report in sequence.
func (r *Renderer) Summary(l *expense.Ledger) {
	r.Title("Total Expenses")
	r.Total(l)
	r.Title("Expenses By Category")
	r.Categories(l)
	r.Title("Monthly Trend")
	r.Trend("Month", l.MonthlyTrend())
	r.Title("Weekly Trend")
	r.Trend("Week", l.WeeklyTrend())
	r.Title("Highest/Lowest Spending Categories")
	r.HighestLowest(l)
}
