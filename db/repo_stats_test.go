package db

import (
	"context"
	"testing"
	"time"

	"Gin_postgres_redis_equipment_lab/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectN(t *testing.T, r *Repo, itemID string, times int, returnDate time.Time) []*models.Loan {
	t.Helper()
	loans := make([]*models.Loan, 0, times)
	for i := 0; i < times; i++ {
		l, err := r.CollectItem(context.Background(), CollectInput{
			ItemID:     itemID,
			Quantity:   1,
			Borrower:   student("rahim@example.edu", "2020331045"),
			ReturnDate: returnDate,
		})
		require.NoError(t, err)
		loans = append(loans, l)
	}
	return loans
}

func Test_Stats(t *testing.T) {
	r := testRepo(t)
	ctx := context.Background()

	scope := makeItem(t, r, "Oscilloscope", 10)
	meter := makeItem(t, r, "Multimeter", 10)
	psu := makeItem(t, r, "Bench PSU", 10)

	collectN(t, r, scope.ID, 3, in7Days())
	meterLoans := collectN(t, r, meter.ID, 2, in7Days())
	collectN(t, r, psu.ID, 1, in7Days())

	_, err := r.ReturnLoan(ctx, ReturnInput{LoanID: meterLoans[0].ID})
	require.NoError(t, err)

	stats, err := r.Stats(ctx)
	require.NoError(t, err)

	assert.EqualValues(t, 3, stats.TotalItems)
	assert.EqualValues(t, 5, stats.TotalCollected)
	assert.EqualValues(t, 1, stats.TotalReturned)
	assert.Equal(t, stats.TotalCollected, stats.ActiveLoans)

	// Grouped by item name, count DESC, capped at 5.
	require.Len(t, stats.MostBorrowed, 3)
	assert.Equal(t, BorrowCount{ItemName: "Oscilloscope", Count: 3}, stats.MostBorrowed[0])
	assert.EqualValues(t, 2, stats.MostBorrowed[1].Count)
	assert.EqualValues(t, 1, stats.MostBorrowed[2].Count)

	require.Len(t, stats.Recent, 5)
	for i := 1; i < len(stats.Recent); i++ {
		assert.False(t, stats.Recent[i-1].EntryAt.Before(stats.Recent[i].EntryAt),
			"recent activities must be newest first")
	}
}

func Test_Overdue(t *testing.T) {
	r := testRepo(t)
	ctx := context.Background()

	it := makeItem(t, r, "Oscilloscope", 10)
	pastA := time.Now().Add(-48 * time.Hour).UTC()
	pastB := time.Now().Add(-2 * time.Hour).UTC()

	older := collectN(t, r, it.ID, 1, pastA)[0]
	newer := collectN(t, r, it.ID, 1, pastB)[0]
	collectN(t, r, it.ID, 1, in7Days()) // not due yet

	res, err := r.ListOverdueLoans(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, res.DueHistory, 2)
	assert.EqualValues(t, 2, res.TotalItems)
	assert.Equal(t, 1, res.TotalPages)

	// Most overdue first, enriched with the item's current name.
	assert.Equal(t, older.ID, res.DueHistory[0].ID)
	assert.Equal(t, newer.ID, res.DueHistory[1].ID)
	assert.Equal(t, "Oscilloscope", res.DueHistory[0].ItemName)
	require.NotNil(t, res.DueHistory[0].ItemImage)

	// A returned loan leaves the overdue set.
	_, err = r.ReturnLoan(ctx, ReturnInput{LoanID: older.ID})
	require.NoError(t, err)

	res, err = r.ListOverdueLoans(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, res.DueHistory, 1)
	assert.Equal(t, newer.ID, res.DueHistory[0].ID)
}

func Test_ListLoans_Filters(t *testing.T) {
	r := testRepo(t)
	ctx := context.Background()

	scope := makeItem(t, r, "Oscilloscope", 10)
	meter := makeItem(t, r, "Multimeter", 10)

	_, err := r.CollectItem(ctx, CollectInput{
		ItemID: scope.ID, Quantity: 1,
		Borrower:   student("rahim@example.edu", "2020331045"),
		ReturnDate: in7Days(),
	})
	require.NoError(t, err)

	other := student("karima@example.edu", "2021331001")
	other.UserName = "Karima Akter"
	loan, err := r.CollectItem(ctx, CollectInput{
		ItemID: meter.ID, Quantity: 1, Borrower: other, ReturnDate: in7Days(),
	})
	require.NoError(t, err)
	_, err = r.ReturnLoan(ctx, ReturnInput{LoanID: loan.ID})
	require.NoError(t, err)

	// Free text matches borrower email.
	res, err := r.ListLoans(ctx, LoansQuery{Q: "karima", Page: 1, Size: 10})
	require.NoError(t, err)
	require.Len(t, res.History, 1)
	assert.Equal(t, "Multimeter", res.History[0].ItemName)
	require.NotNil(t, res.History[0].ItemImage)

	// Status filter.
	res, err = r.ListLoans(ctx, LoansQuery{Status: models.LoanStatusCollected, Page: 1, Size: 10})
	require.NoError(t, err)
	require.Len(t, res.History, 1)
	assert.Equal(t, "rahim@example.edu", res.History[0].UserEmail)

	// Per-user history carries the item description.
	byUser, err := r.ListLoansByUser(ctx, "karima@example.edu", 1, 10)
	require.NoError(t, err)
	require.Len(t, byUser.History, 1)
	assert.Equal(t, models.LoanStatusReturned, byUser.History[0].Status)
	assert.NotNil(t, byUser.History[0].ItemDescription)
}
