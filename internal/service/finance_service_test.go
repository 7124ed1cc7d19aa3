package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbarbosa/vida/internal/domain"
)

func TestFinanceService_Summary_AggregatesOneMonth(t *testing.T) {
	svc := NewFinanceService(setupKV())
	ctx := context.Background()

	add := func(amount float64, kind domain.TransactionKind, category string, d time.Time) {
		require.NoError(t, svc.Add(ctx, &domain.Transaction{
			Description: category, Amount: amount, Kind: kind, Category: category, Date: d,
		}))
	}

	add(3000, domain.TransactionIncome, "salary", day(2025, time.March, 1))
	add(800, domain.TransactionExpense, "rent", day(2025, time.March, 5))
	add(120, domain.TransactionExpense, "groceries", day(2025, time.March, 12))
	add(60, domain.TransactionExpense, "groceries", day(2025, time.March, 20))
	// Different month, must be excluded.
	add(999, domain.TransactionExpense, "travel", day(2025, time.April, 2))

	sum, err := svc.Summary(ctx, 2025, time.March)
	require.NoError(t, err)

	assert.Equal(t, 3000.0, sum.Income)
	assert.Equal(t, 980.0, sum.Expenses)
	assert.Equal(t, 2020.0, sum.Net)
	assert.Equal(t, 180.0, sum.ByCategory["groceries"])
	assert.NotContains(t, sum.ByCategory, "travel")
}

func TestFinanceService_Summary_EmptyMonth(t *testing.T) {
	svc := NewFinanceService(setupKV())

	sum, err := svc.Summary(context.Background(), 2025, time.January)
	require.NoError(t, err)
	assert.Equal(t, 0.0, sum.Net)
	assert.Empty(t, sum.ByCategory)
}
