package expense

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// NoCategory is returned by HighestSpendCategory and LowestSpendCategory on
// an empty ledger.
const NoCategory = "None"

// CategoryAmount is the total spent in one category.
type CategoryAmount struct {
	Category string
	Amount   decimal.Decimal
}

// Bucket is one period of a trend. Key sorts chronologically, Label is
// meant for display.
type Bucket struct {
	Key   string
	Label string
	Total decimal.Decimal
}

// Total returns the sum of all amounts.
func (l *Ledger) Total() decimal.Decimal {
	total := decimal.Zero
	for _, e := range l.expenses {
		total = total.Add(e.amount)
	}
	return total
}

// CategoryTotals returns per-category totals, ordered by the first time each
// category was added.
func (l *Ledger) CategoryTotals() []CategoryAmount {
	index := make(map[string]int)
	var totals []CategoryAmount
	for _, e := range l.expenses {
		i, ok := index[e.category]
		if !ok {
			i = len(totals)
			index[e.category] = i
			totals = append(totals, CategoryAmount{Category: e.category, Amount: decimal.Zero})
		}
		totals[i].Amount = totals[i].Amount.Add(e.amount)
	}
	return totals
}

// TotalByCategory returns the total for every category present.
func (l *Ledger) TotalByCategory() map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, ca := range l.CategoryTotals() {
		totals[ca.Category] = ca.Amount
	}
	return totals
}

// CategoryTotal returns the total for a single category, or zero if the
// category has no expenses. The argument is normalized first.
func (l *Ledger) CategoryTotal(category string) decimal.Decimal {
	category = NormalizeCategory(category)
	total := decimal.Zero
	for _, e := range l.expenses {
		if e.category == category {
			total = total.Add(e.amount)
		}
	}
	return total
}

// HighestSpendCategory returns the category with the largest total.
// On a tie the category that was added first wins.
func (l *Ledger) HighestSpendCategory() string {
	return l.pickCategory(func(candidate, best decimal.Decimal) bool {
		return candidate.GreaterThan(best)
	})
}

// LowestSpendCategory returns the category with the smallest total.
// On a tie the category that was added first wins.
func (l *Ledger) LowestSpendCategory() string {
	return l.pickCategory(func(candidate, best decimal.Decimal) bool {
		return candidate.LessThan(best)
	})
}

func (l *Ledger) pickCategory(better func(candidate, best decimal.Decimal) bool) string {
	totals := l.CategoryTotals()
	if len(totals) == 0 {
		return NoCategory
	}
	best := totals[0]
	for _, ca := range totals[1:] {
		if better(ca.Amount, best.Amount) {
			best = ca
		}
	}
	return best.Category
}

// MonthlyTrend returns one bucket per calendar month, oldest first.
// Labels look like "November 2024".
func (l *Ledger) MonthlyTrend() []Bucket {
	return l.trend(func(d time.Time) (string, string) {
		return fmt.Sprintf("%04d-%02d", d.Year(), int(d.Month())), d.Format("January 2006")
	})
}

// WeeklyTrend splits each month into weeks of the month (days 1-7 are week 1,
// 8-14 week 2 and so on up to week 5) and returns them oldest first.
// Keys look like "2024-11-W2", labels like "Nov 2024 - Week 2".
func (l *Ledger) WeeklyTrend() []Bucket {
	return l.trend(func(d time.Time) (string, string) {
		week := WeekOfMonth(d)
		return WeekKey(d), fmt.Sprintf("%s - Week %d", d.Format("Jan 2006"), week)
	})
}

// WeekOfMonth returns ((day-1)/7)+1 for the day of month of d.
func WeekOfMonth(d time.Time) int {
	return (d.Day()-1)/7 + 1
}

// WeekKey returns the sortable YYYY-MM-Wn key of the week containing d.
func WeekKey(d time.Time) string {
	return fmt.Sprintf("%04d-%02d-W%d", d.Year(), int(d.Month()), WeekOfMonth(d))
}

func (l *Ledger) trend(bucketOf func(time.Time) (key, label string)) []Bucket {
	index := make(map[string]int)
	var buckets []Bucket
	for _, e := range l.expenses {
		key, label := bucketOf(e.date)
		i, ok := index[key]
		if !ok {
			i = len(buckets)
			index[key] = i
			buckets = append(buckets, Bucket{Key: key, Label: label, Total: decimal.Zero})
		}
		buckets[i].Total = buckets[i].Total.Add(e.amount)
	}
	slices.SortFunc(buckets, func(a, b Bucket) int {
		return cmp.Compare(a.Key, b.Key)
	})
	return buckets
}

// SortedByDate returns a copy of the expenses ordered by date, oldest first.
// Expenses on the same date keep their insertion order.
func (l *Ledger) SortedByDate() []Expense {
	sorted := l.All()
	slices.SortStableFunc(sorted, func(a, b Expense) int {
		return a.date.Compare(b.date)
	})
	return sorted
}
