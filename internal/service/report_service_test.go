package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"worksbill/internal/domain"
	"worksbill/internal/service"
	"worksbill/mocks"
)

func TestReportService_PaymentRegister_PassesFilters(t *testing.T) {
	repo := new(mocks.MockReportRepo)
	svc := service.NewReportService(repo)

	from := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	filters := domain.ReportFilters{From: &from}
	rows := []domain.PaymentRegisterRow{{BillNo: 1, Payee: "Sharma Constructions"}}
	repo.On("PaymentRegister", mock.Anything, filters).Return(rows, nil)

	got, err := svc.PaymentRegister(context.Background(), filters)
	require.NoError(t, err)
	assert.Equal(t, rows, got)
	repo.AssertExpectations(t)
}

func TestReportService_RejectsInvertedRange(t *testing.T) {
	repo := new(mocks.MockReportRepo)
	svc := service.NewReportService(repo)

	from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	filters := domain.ReportFilters{From: &from, To: &to}

	_, err := svc.PaymentRegister(context.Background(), filters)
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
	_, err = svc.ContractorPayments(context.Background(), filters)
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
	_, err = svc.DeductionRegister(context.Background(), filters)
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
	repo.AssertExpectations(t)
}

func TestReportService_SchemeExpenditure(t *testing.T) {
	repo := new(mocks.MockReportRepo)
	svc := service.NewReportService(repo)
	rows := []domain.SchemeExpenditureRow{{
		Scheme: "JJM", Allocated: dec("1000"), Utilized: dec("250"), Balance: dec("750"), UtilizationPercent: dec("25"),
	}}
	repo.On("SchemeExpenditure", mock.Anything).Return(rows, nil)

	got, err := svc.SchemeExpenditure(context.Background())
	require.NoError(t, err)
	assert.Equal(t, rows, got)
}

func TestStatsService_GetStats(t *testing.T) {
	repo := new(mocks.MockStatsRepo)
	svc := service.NewStatsService(repo)

	expected := &domain.Stats{TotalContractors: 4, TotalWorks: 9, PendingBills: 3, BilledTotal: dec("350000")}
	repo.On("GetStats", mock.Anything, domain.ReportFilters{}).Return(expected, nil)

	got, err := svc.GetStats(context.Background(), domain.ReportFilters{})
	require.NoError(t, err)
	assert.Equal(t, expected, got)
	repo.AssertExpectations(t)
}

func TestStatsService_GetStats_InvertedRange(t *testing.T) {
	repo := new(mocks.MockStatsRepo)
	svc := service.NewStatsService(repo)

	from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(-time.Hour)
	_, err := svc.GetStats(context.Background(), domain.ReportFilters{From: &from, To: &to})
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
}

func TestStatsService_ExpenditureTrend_SumsDays(t *testing.T) {
	repo := new(mocks.MockStatsRepo)
	svc := service.NewStatsService(repo)

	from := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	filters := domain.ReportFilters{From: &from}
	repo.On("DailyExpenditure", mock.Anything, filters).Return([]domain.DailyExpenditure{
		{Day: from, Bills: 1, BilledAmount: dec("118000")},
		{Day: from.AddDate(0, 0, 3), Bills: 2, BilledAmount: dec("40000.50")},
	}, nil)

	trend, err := svc.ExpenditureTrend(context.Background(), filters)
	require.NoError(t, err)
	require.Len(t, trend.Days, 2)
	assert.True(t, trend.Total.Equal(dec("158000.50")), trend.Total.String())
	repo.AssertExpectations(t)
}

func TestStatsService_ExpenditureTrend_Empty(t *testing.T) {
	repo := new(mocks.MockStatsRepo)
	svc := service.NewStatsService(repo)
	repo.On("DailyExpenditure", mock.Anything, domain.ReportFilters{}).Return([]domain.DailyExpenditure{}, nil)

	trend, err := svc.ExpenditureTrend(context.Background(), domain.ReportFilters{})
	require.NoError(t, err)
	assert.Empty(t, trend.Days)
	assert.True(t, trend.Total.IsZero())
}

func TestStatsService_ExpenditureTrend_InvertedRange(t *testing.T) {
	repo := new(mocks.MockStatsRepo)
	svc := service.NewStatsService(repo)

	from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, -1)
	_, err := svc.ExpenditureTrend(context.Background(), domain.ReportFilters{From: &from, To: &to})
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
	repo.AssertNotCalled(t, "DailyExpenditure", mock.Anything, mock.Anything)
}
