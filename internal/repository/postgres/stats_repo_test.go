package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worksbill/internal/domain"
	"worksbill/internal/repository/postgres"
)

func TestStatsRepo_DailyExpenditure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewStatsRepo(db)

	from := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`date_trunc\('day', created_at\) AS day.*FROM bills WHERE 1=1 AND created_at::date >= \$1 AND created_at::date <= \$2 GROUP BY day ORDER BY day`).
		WithArgs(from, to).
		WillReturnRows(sqlmock.NewRows([]string{"day", "bills", "billed_amount"}).
			AddRow(from, 1, "118000.00").
			AddRow(from.AddDate(0, 0, 2), 3, "45000.50"))

	days, err := repo.DailyExpenditure(context.Background(), domain.ReportFilters{From: &from, To: &to})
	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.Equal(t, from, days[0].Day)
	assert.Equal(t, 3, days[1].Bills)
	assert.Equal(t, "45000.5", days[1].BilledAmount.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsRepo_DailyExpenditure_NoBills(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewStatsRepo(db)

	mock.ExpectQuery(`GROUP BY day ORDER BY day`).
		WillReturnRows(sqlmock.NewRows([]string{"day", "bills", "billed_amount"}))

	days, err := repo.DailyExpenditure(context.Background(), domain.ReportFilters{})
	require.NoError(t, err)
	assert.NotNil(t, days)
	assert.Empty(t, days)
	assert.NoError(t, mock.ExpectationsWereMet())
}
