package expense

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the only accepted date format: zero-padded MM/DD/YYYY.
const DateLayout = "01/02/2006"

// AmountPlaces is the number of fractional digits an amount may carry. Stores
// render amounts with exactly this many.
const AmountPlaces = 6

// Expense represents a single recorded expense. It is immutable once created
// by Ledger.Add.
type Expense struct {
	category    string
	amount      decimal.Decimal
	date        time.Time
	description string
}

// Category returns the normalized (trimmed, lower-case) category.
func (e Expense) Category() string { return e.category }

// Amount returns the positive amount spent.
func (e Expense) Amount() decimal.Decimal { return e.amount }

// Date returns the calendar date of the expense, at midnight UTC.
func (e Expense) Date() time.Time { return e.date }

// Description returns the free-text description, possibly empty.
func (e Expense) Description() string { return e.description }

// Fields returns the persisted representation: category, amount with six
// fractional digits, MM/DD/YYYY date and description.
func (e Expense) Fields() []string {
	return []string{
		e.category,
		e.amount.StringFixed(AmountPlaces),
		e.date.Format(DateLayout),
		e.description,
	}
}

// TableRow renders the expense as a fixed-width table row with the amount
// prefixed by symbol.
func (e Expense) TableRow(symbol string) string {
	return fmt.Sprintf("%-15s %-11s %-12s %s",
		e.category, symbol+e.amount.StringFixed(2), e.date.Format(DateLayout), e.description)
}

// Ledger holds expenses in the order they were added.
type Ledger struct {
	expenses []Expense
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Add validates its input and appends a new expense to the ledger.
// Nothing is stored when validation fails.
func (l *Ledger) Add(category string, amount decimal.Decimal, dateText, description string) (Expense, error) {
	if !amount.IsPositive() {
		return Expense{}, &ValidationError{Field: "amount", Value: amount.String(), Err: ErrNonPositiveAmount}
	}
	if !amount.Equal(amount.Round(AmountPlaces)) {
		return Expense{}, &ValidationError{Field: "amount", Value: amount.String(), Err: ErrAmountPrecision}
	}

	category = NormalizeCategory(category)
	if category == "" {
		return Expense{}, &ValidationError{Field: "category", Err: ErrEmptyCategory}
	}

	dateText = strings.TrimSpace(dateText)
	if dateText == "" {
		return Expense{}, &ValidationError{Field: "date", Err: ErrEmptyDate}
	}
	date, err := ParseDate(dateText)
	if err != nil {
		return Expense{}, err
	}

	// One expense is one line in a file.
	if strings.ContainsAny(category, "\r\n") {
		return Expense{}, &ValidationError{Field: "category", Value: category, Err: ErrLineBreak}
	}
	if strings.ContainsAny(description, "\r\n") {
		return Expense{}, &ValidationError{Field: "description", Value: description, Err: ErrLineBreak}
	}

	e := Expense{
		category:    category,
		amount:      amount,
		date:        date,
		description: description,
	}
	l.expenses = append(l.expenses, e)
	return e, nil
}

// Count returns the number of expenses in the ledger.
func (l *Ledger) Count() int {
	return len(l.expenses)
}

// All returns a copy of the expenses in insertion order.
func (l *Ledger) All() []Expense {
	out := make([]Expense, len(l.expenses))
	copy(out, l.expenses)
	return out
}

// NormalizeCategory trims surrounding whitespace and lower-cases a category.
func NormalizeCategory(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}

// ParseDate parses a strict MM/DD/YYYY calendar date.
func ParseDate(text string) (time.Time, error) {
	date, err := time.Parse(DateLayout, text)
	if err != nil {
		return time.Time{}, &ValidationError{Field: "date", Value: text, Err: ErrInvalidDate}
	}
	return date, nil
}

// ParseAmount parses a plain decimal amount such as "45.50".
// It does not check the sign; Add does.
func ParseAmount(text string) (decimal.Decimal, error) {
	text = strings.TrimSpace(text)
	amount, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Decimal{}, &ValidationError{Field: "amount", Value: text, Err: ErrInvalidAmount}
	}
	return amount, nil
}
