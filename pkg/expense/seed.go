package expense

import "github.com/shopspring/decimal"

type seedEntry struct {
	category    string
	amount      string
	date        string
	description string
}

var seedEntries = []seedEntry{
	{"food", "45.50", "11/05/2024", "Grocery shopping"},
	{"transport", "30.00", "11/07/2024", "Gas"},
	{"entertainment", "75.00", "11/10/2024", "Concert tickets"},
	{"food", "25.00", "11/12/2024", "Restaurant"},
	{"utilities", "120.00", "11/15/2024", "Electric bill"},
	{"transport", "15.50", "11/18/2024", "Uber"},
	{"food", "60.00", "11/20/2024", "Groceries"},
	{"entertainment", "40.00", "11/22/2024", "Movie night"},
	{"healthcare", "150.00", "11/25/2024", "Doctor visit"},
	{"food", "35.00", "11/28/2024", "Takeout"},

	{"food", "50.00", "12/02/2024", "Groceries"},
	{"transport", "40.00", "12/05/2024", "Gas"},
	{"utilities", "125.00", "12/10/2024", "Water bill"},
	{"entertainment", "90.00", "12/12/2024", "Theater show"},
	{"food", "30.00", "12/15/2024", "Lunch out"},
	{"transport", "20.00", "12/18/2024", "Parking"},
	{"food", "55.00", "12/20/2024", "Dinner"},
	{"shopping", "200.00", "12/22/2024", "Holiday gifts"},
	{"entertainment", "60.00", "12/28/2024", "New Year party"},

	{"food", "40.00", "01/03/2025", "Groceries"},
	{"transport", "35.00", "01/05/2025", "Gas"},
	{"utilities", "130.00", "01/08/2025", "Internet bill"},
}

// Seed adds a fixed set of sample expenses spanning November 2024 to
// January 2025 and returns how many were added.
func Seed(l *Ledger) (int, error) {
	for i, s := range seedEntries {
		if _, err := l.Add(s.category, decimal.RequireFromString(s.amount), s.date, s.description); err != nil {
			return i, err
		}
	}
	return len(seedEntries), nil
}
