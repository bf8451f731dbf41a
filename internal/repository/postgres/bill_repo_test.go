package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worksbill/internal/domain"
	"worksbill/internal/port"
	"worksbill/internal/repository/postgres"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "pgx"), mock
}

func planBill(workID uuid.UUID) *domain.Bill {
	return &domain.Bill{
		BillType:     domain.BillTypePlan,
		ContractorID: uuid.New(),
		Payee:        "Sharma Constructions",
		WorkID:       &workID,
		Workcode:     "W-101",
		BilledAmount: decimal.NewFromInt(100000),
		Payable:      decimal.NewFromInt(100000),
		RestrictedTo: decimal.NewFromInt(100000),
		NetAmount:    decimal.NewFromInt(87760),
		Status:       domain.BillStatusPending,
	}
}

func lockedWorkRows(workID uuid.UUID, allot string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "workcode", "allot_amount", "aaa_amount", "ts_amount", "expenditure"}).
		AddRow(workID.String(), "W-101", allot, "500000", "500000", "0")
}

func TestBillRepo_Create_LocksWorkAndUpdatesExpenditure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewBillRepo(db)
	workID := uuid.New()
	b := planBill(workID)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM works WHERE id = \$1 FOR UPDATE`).
		WithArgs(workID).
		WillReturnRows(lockedWorkRows(workID, "250000"))
	mock.ExpectQuery(`INSERT INTO bills`).
		WillReturnRows(sqlmock.NewRows([]string{"bill_no"}).AddRow(42))
	mock.ExpectExec(`UPDATE works SET expenditure = expenditure \+ \$1 WHERE id = \$2`).
		WithArgs(b.BilledAmount, workID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	var rechecked *domain.Work
	err := repo.Create(context.Background(), b, port.BillCreateOptions{
		UpdateExpenditure: true,
		Recheck: func(w *domain.Work) error {
			rechecked = w
			return nil
		},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), b.BillNo)
	assert.NotEqual(t, uuid.Nil, b.ID)
	assert.False(t, b.CreatedAt.IsZero())
	require.NotNil(t, rechecked)
	assert.True(t, decimal.NewFromInt(250000).Equal(rechecked.AllotAmount))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBillRepo_Create_RecheckFailureRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewBillRepo(db)
	workID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`FOR UPDATE`).
		WithArgs(workID).
		WillReturnRows(lockedWorkRows(workID, "50000"))
	mock.ExpectRollback()

	err := repo.Create(context.Background(), planBill(workID), port.BillCreateOptions{
		UpdateExpenditure: true,
		Recheck: func(*domain.Work) error {
			return domain.ErrCeilingChanged
		},
	})

	assert.True(t, errors.Is(err, domain.ErrCeilingChanged))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBillRepo_Create_ExpenditureFailureRollsBackInsert(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewBillRepo(db)
	workID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`FOR UPDATE`).WillReturnRows(lockedWorkRows(workID, "250000"))
	mock.ExpectQuery(`INSERT INTO bills`).
		WillReturnRows(sqlmock.NewRows([]string{"bill_no"}).AddRow(7))
	mock.ExpectExec(`UPDATE works`).WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	err := repo.Create(context.Background(), planBill(workID), port.BillCreateOptions{UpdateExpenditure: true})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "update expenditure")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBillRepo_Create_UnknownWork(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewBillRepo(db)
	workID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	err := repo.Create(context.Background(), planBill(workID), port.BillCreateOptions{UpdateExpenditure: true})

	assert.True(t, errors.Is(err, domain.ErrWorkNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBillRepo_Create_NonPlanSkipsWork(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewBillRepo(db)

	b := planBill(uuid.New())
	b.WorkID = nil
	b.BillType = domain.BillTypeNonPlan

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO bills`).
		WillReturnRows(sqlmock.NewRows([]string{"bill_no"}).AddRow(3))
	mock.ExpectCommit()

	err := repo.Create(context.Background(), b, port.BillCreateOptions{UpdateExpenditure: true})

	require.NoError(t, err)
	assert.Equal(t, int64(3), b.BillNo)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBillRepo_Create_PolicyNoneLeavesExpenditure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewBillRepo(db)
	workID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`FOR UPDATE`).WillReturnRows(lockedWorkRows(workID, "250000"))
	mock.ExpectQuery(`INSERT INTO bills`).
		WillReturnRows(sqlmock.NewRows([]string{"bill_no"}).AddRow(9))
	mock.ExpectCommit()

	err := repo.Create(context.Background(), planBill(workID), port.BillCreateOptions{})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBillRepo_GetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewBillRepo(db)
	id := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM bills WHERE id = \$1`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	b, err := repo.GetByID(context.Background(), id)

	assert.Nil(t, b)
	assert.True(t, errors.Is(err, domain.ErrBillNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBillRepo_List_DateFilters(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewBillRepo(db)

	from := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM bills WHERE 1=1 AND created_at::date >= \$1 AND created_at::date <= \$2`).
		WithArgs(from, to).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`ORDER BY bill_no DESC LIMIT \$3 OFFSET \$4`).
		WithArgs(from, to, 20, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "bill_no", "payee", "billed_amount"}).
			AddRow(uuid.New().String(), 11, "Sharma Constructions", "118000.00"))

	bills, total, err := repo.List(context.Background(), domain.BillFilters{From: &from, To: &to, Limit: 20})

	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, bills, 1)
	assert.Equal(t, int64(11), bills[0].BillNo)
	assert.True(t, decimal.NewFromInt(118000).Equal(bills[0].BilledAmount))
	assert.NoError(t, mock.ExpectationsWereMet())
}
