package expense

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(t *testing.T) *Ledger {
	t.Helper()
	l := NewLedger()
	n, err := Seed(l)
	require.NoError(t, err)
	require.Equal(t, 22, n)
	return l
}

func TestLedger_Empty(t *testing.T) {
	l := NewLedger()

	assert.True(t, l.Total().IsZero())
	assert.Equal(t, NoCategory, l.HighestSpendCategory())
	assert.Equal(t, NoCategory, l.LowestSpendCategory())
	assert.Empty(t, l.TotalByCategory())
	assert.Empty(t, l.MonthlyTrend())
	assert.Empty(t, l.WeeklyTrend())
	assert.Empty(t, l.SortedByDate())
	assert.True(t, l.CategoryTotal("food").IsZero())
}

func TestLedger_CategoryTotal(t *testing.T) {
	l := NewLedger()
	_, err := l.Add("Food", amt("45.50"), "11/05/2024", "Grocery shopping")
	require.NoError(t, err)
	_, err = l.Add("food", amt("25.00"), "11/12/2024", "Restaurant")
	require.NoError(t, err)

	assertAmount(t, "70.50", l.CategoryTotal("food"))
	assertAmount(t, "70.50", l.CategoryTotal(" FOOD "))
	assert.True(t, l.CategoryTotal("rent").IsZero())

	totals := l.TotalByCategory()
	require.Len(t, totals, 1)
	assertAmount(t, "70.50", totals["food"])
}

func TestLedger_CategoryTotals_FirstSeenOrder(t *testing.T) {
	l := seeded(t)

	totals := l.CategoryTotals()
	var names []string
	for _, ca := range totals {
		names = append(names, ca.Category)
	}
	assert.Equal(t, []string{"food", "transport", "entertainment", "utilities", "healthcare", "shopping"}, names)

	byCat := l.TotalByCategory()
	assertAmount(t, "340.50", byCat["food"])
	assertAmount(t, "140.50", byCat["transport"])
	assertAmount(t, "265", byCat["entertainment"])
	assertAmount(t, "375", byCat["utilities"])
	assertAmount(t, "150", byCat["healthcare"])
	assertAmount(t, "200", byCat["shopping"])
	assertAmount(t, "1471", l.Total())
}

func TestLedger_HighestLowest(t *testing.T) {
	l := seeded(t)

	assert.Equal(t, "utilities", l.HighestSpendCategory())
	assert.Equal(t, "transport", l.LowestSpendCategory())
}

func TestLedger_HighestLowest_TieGoesToFirstAdded(t *testing.T) {
	l := NewLedger()
	_, err := l.Add("rent", amt("10"), "01/01/2025", "")
	require.NoError(t, err)
	_, err = l.Add("books", amt("10"), "01/02/2025", "")
	require.NoError(t, err)

	assert.Equal(t, "rent", l.HighestSpendCategory())
	assert.Equal(t, "rent", l.LowestSpendCategory())
}

func TestLedger_MonthlyTrend(t *testing.T) {
	l := seeded(t)

	trend := l.MonthlyTrend()
	require.Len(t, trend, 3)

	assert.Equal(t, "2024-11", trend[0].Key)
	assert.Equal(t, "November 2024", trend[0].Label)
	assertAmount(t, "596", trend[0].Total)

	assert.Equal(t, "December 2024", trend[1].Label)
	assertAmount(t, "670", trend[1].Total)

	assert.Equal(t, "January 2025", trend[2].Label)
	assertAmount(t, "205", trend[2].Total)
}

func TestLedger_MonthlyTrend_Chronological(t *testing.T) {
	l := NewLedger()
	for _, d := range []string{"04/10/2025", "01/10/2025", "12/10/2024"} {
		_, err := l.Add("misc", amt("1"), d, "")
		require.NoError(t, err)
	}

	var labels []string
	for _, b := range l.MonthlyTrend() {
		labels = append(labels, b.Label)
	}
	assert.Equal(t, []string{"December 2024", "January 2025", "April 2025"}, labels)
}

func TestLedger_WeeklyTrend(t *testing.T) {
	l := NewLedger()
	entries := []struct {
		amount string
		date   string
	}{
		{"10", "11/10/2024"},
		{"5", "11/14/2024"},
		{"7", "11/01/2024"},
		{"3", "11/30/2024"},
		{"2", "01/02/2025"},
	}
	for _, e := range entries {
		_, err := l.Add("misc", amt(e.amount), e.date, "")
		require.NoError(t, err)
	}

	trend := l.WeeklyTrend()
	require.Len(t, trend, 4)

	assert.Equal(t, "2024-11-W1", trend[0].Key)
	assertAmount(t, "7", trend[0].Total)

	assert.Equal(t, "2024-11-W2", trend[1].Key)
	assert.Equal(t, "Nov 2024 - Week 2", trend[1].Label)
	assertAmount(t, "15", trend[1].Total)

	assert.Equal(t, "2024-11-W5", trend[2].Key)
	assertAmount(t, "3", trend[2].Total)

	assert.Equal(t, "2025-01-W1", trend[3].Key)
	assert.Equal(t, "Jan 2025 - Week 1", trend[3].Label)
}

func TestWeekKey(t *testing.T) {
	d, err := ParseDate("11/10/2024")
	require.NoError(t, err)

	assert.Equal(t, 2, WeekOfMonth(d))
	assert.Equal(t, "2024-11-W2", WeekKey(d))
}

func TestLedger_SortedByDate_Stable(t *testing.T) {
	l := NewLedger()
	adds := []struct {
		category string
		date     string
	}{
		{"c", "03/01/2025"},
		{"a", "01/01/2025"},
		{"b", "01/01/2025"},
		{"d", "02/01/2025"},
		{"e", "01/01/2025"},
	}
	for _, a := range adds {
		_, err := l.Add(a.category, amt("1"), a.date, "")
		require.NoError(t, err)
	}

	var got []string
	for _, e := range l.SortedByDate() {
		got = append(got, e.Category())
	}
	assert.Equal(t, []string{"a", "b", "e", "d", "c"}, got)

	// insertion order is untouched
	assert.Equal(t, "c", l.All()[0].Category())
}
