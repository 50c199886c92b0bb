package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/Royal-dudy99/SwiftBooks18/internal/ledger/dto"
	"github.com/Royal-dudy99/SwiftBooks18/internal/ledger/repository/memory"
	"github.com/Royal-dudy99/SwiftBooks18/internal/ledger/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAnalytics() (*service.AnalyticsService, *service.LedgerService) {
	repo := memory.NewTransactionRepository()
	return service.NewAnalyticsService(repo), service.NewLedgerService(repo)
}

func create(t *testing.T, ledger *service.LedgerService, owner, txType string, amount float64, category string, date time.Time) {
	t.Helper()
	_, err := ledger.Create(context.Background(), owner, dto.CreateTransactionInput{
		Type:     txType,
		Amount:   amount,
		Category: category,
		Date:     &date,
	})
	require.NoError(t, err)
}

func TestAnalytics_TotalsAndBreakdown(t *testing.T) {
	analytics, ledger := newAnalytics()
	ctx := context.Background()

	d := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	create(t, ledger, "owner-u", "expense", 100, "food", d)
	create(t, ledger, "owner-u", "expense", 50, "food", d.Add(time.Hour))
	create(t, ledger, "owner-u", "income", 500, "salary", d.Add(2*time.Hour))

	summary, err := analytics.Summary(ctx, "owner-u", nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 500.0, summary.TotalIncome)
	assert.Equal(t, 150.0, summary.TotalExpenses)
	assert.Equal(t, 350.0, summary.Balance)

	require.Len(t, summary.Breakdown, 2)
	// First occurrence wins the group order: the expenses came first.
	expense := summary.Breakdown[0]
	assert.Equal(t, "expense", expense.Type)
	assert.Equal(t, 150.0, expense.Total)
	require.Len(t, expense.Categories, 1)
	assert.Equal(t, "food", expense.Categories[0].Category)
	assert.Equal(t, 150.0, expense.Categories[0].Total)
	assert.Equal(t, 2, expense.Categories[0].Count)

	income := summary.Breakdown[1]
	assert.Equal(t, "income", income.Type)
	assert.Equal(t, 500.0, income.Total)
	require.Len(t, income.Categories, 1)
	assert.Equal(t, "salary", income.Categories[0].Category)
	assert.Equal(t, 500.0, income.Categories[0].Total)
	assert.Equal(t, 1, income.Categories[0].Count)
}

func TestAnalytics_CategoryInsertionOrder(t *testing.T) {
	analytics, ledger := newAnalytics()
	ctx := context.Background()

	base := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	// Categories deliberately out of alphabetical order.
	create(t, ledger, "owner-u", "expense", 10, "zebra", base)
	create(t, ledger, "owner-u", "expense", 20, "apple", base.Add(time.Hour))
	create(t, ledger, "owner-u", "expense", 30, "zebra", base.Add(2*time.Hour))

	summary, err := analytics.Summary(ctx, "owner-u", nil, nil)
	require.NoError(t, err)

	require.Len(t, summary.Breakdown, 1)
	cats := summary.Breakdown[0].Categories
	require.Len(t, cats, 2)
	assert.Equal(t, "zebra", cats[0].Category)
	assert.Equal(t, 40.0, cats[0].Total)
	assert.Equal(t, "apple", cats[1].Category)
}

// January sorts before February by calendar position, which a sort on the
// "Jan 2025" labels would get wrong ("Feb" < "Jan" lexically).
func TestAnalytics_MonthlyCalendarOrder(t *testing.T) {
	analytics, ledger := newAnalytics()
	ctx := context.Background()

	create(t, ledger, "owner-u", "expense", 40, "food",
		time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC))
	create(t, ledger, "owner-u", "income", 100, "salary",
		time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC))
	create(t, ledger, "owner-u", "expense", 10, "food",
		time.Date(2024, time.December, 25, 0, 0, 0, 0, time.UTC))

	summary, err := analytics.Summary(ctx, "owner-u", nil, nil)
	require.NoError(t, err)

	require.Len(t, summary.Monthly, 3)
	assert.Equal(t, "Dec 2024", summary.Monthly[0].Month)
	assert.Equal(t, "Jan 2025", summary.Monthly[1].Month)
	assert.Equal(t, "Feb 2025", summary.Monthly[2].Month)

	assert.Equal(t, 100.0, summary.Monthly[1].Income)
	assert.Equal(t, 0.0, summary.Monthly[1].Expenses)
	assert.Equal(t, 40.0, summary.Monthly[2].Expenses)
}

func TestAnalytics_DateFilter(t *testing.T) {
	analytics, ledger := newAnalytics()
	ctx := context.Background()

	create(t, ledger, "owner-u", "expense", 10, "food",
		time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC))
	create(t, ledger, "owner-u", "expense", 20, "food",
		time.Date(2025, time.February, 5, 0, 0, 0, 0, time.UTC))

	start := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)
	summary, err := analytics.Summary(ctx, "owner-u", &start, nil)
	require.NoError(t, err)

	assert.Equal(t, 20.0, summary.TotalExpenses)
	require.Len(t, summary.Monthly, 1)
	assert.Equal(t, "Feb 2025", summary.Monthly[0].Month)
}

func TestAnalytics_EmptyAndIdempotent(t *testing.T) {
	analytics, ledger := newAnalytics()
	ctx := context.Background()

	summary, err := analytics.Summary(ctx, "owner-empty", nil, nil)
	require.NoError(t, err)
	assert.Zero(t, summary.Balance)
	assert.Empty(t, summary.Breakdown)
	assert.Empty(t, summary.Monthly)

	d := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
	create(t, ledger, "owner-u", "income", 500, "salary", d)

	first, err := analytics.Summary(ctx, "owner-u", nil, nil)
	require.NoError(t, err)
	second, err := analytics.Summary(ctx, "owner-u", nil, nil)
	require.NoError(t, err)

	// Pure projection: same snapshot, same answer, no store mutation.
	assert.Equal(t, first, second)
}

func TestAnalytics_OtherTypesExcludedFromBalance(t *testing.T) {
	analytics, ledger := newAnalytics()
	ctx := context.Background()

	d := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)
	create(t, ledger, "owner-u", "income", 500, "salary", d)
	create(t, ledger, "owner-u", "transfer", 200, "savings", d)
	create(t, ledger, "owner-u", "expense", 100, "food", d)

	summary, err := analytics.Summary(ctx, "owner-u", nil, nil)
	require.NoError(t, err)

	// Transfers group in the breakdown but stay out of the balance.
	assert.Equal(t, 400.0, summary.Balance)
	assert.Len(t, summary.Breakdown, 3)
}
