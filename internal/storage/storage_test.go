package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/expense-tracker/internal/storage/sqlite"
	"github.com/example/expense-tracker/pkg/expense"
)

func TestForPath(t *testing.T) {
	s, err := ForPath("data/expenses.csv", nil)
	require.NoError(t, err)
	assert.IsType(t, &expense.FileStore{}, s)

	s, err = ForPath("data/EXPENSES.DB", nil)
	require.NoError(t, err)
	assert.IsType(t, &sqlite.Store{}, s)

	_, err = ForPath("expenses.json", nil)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported("a.csv"))
	assert.True(t, Supported("a.db"))
	assert.False(t, Supported("a.txt"))
	assert.False(t, Supported("csv"))
}
