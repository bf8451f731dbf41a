package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"worksbill/internal/domain"
	"worksbill/internal/service"
	"worksbill/mocks"
)

func planBudget() []domain.BudgetEntry {
	return []domain.BudgetEntry{
		{BillType: domain.BillTypePlan, MajorHead: "4215", Scheme: "JJM", Amount: dec("1000000")},
		{BillType: domain.BillTypePlan, MajorHead: "4215", Scheme: "SBM", Amount: dec("500000")},
		{BillType: domain.BillTypePlan, MajorHead: "4711", Scheme: "Flood Control", Amount: dec("200000")},
	}
}

func TestBudgetService_Options_WithMajorHead(t *testing.T) {
	repo := new(mocks.MockBudgetRepo)
	svc := service.NewBudgetService(repo)
	repo.On("ListByType", mock.Anything, domain.BillTypePlan).Return(planBudget(), nil)

	opts, err := svc.Options(context.Background(), domain.BillTypePlan, " 4215 ")
	require.NoError(t, err)
	assert.Equal(t, "Scheme", opts.SchemeLabel)
	assert.Equal(t, []string{"4215", "4711"}, opts.MajorHeads)
	assert.Equal(t, []string{"JJM", "SBM"}, opts.Schemes)
}

func TestBudgetService_Options_InvalidBillType(t *testing.T) {
	repo := new(mocks.MockBudgetRepo)
	svc := service.NewBudgetService(repo)

	_, err := svc.Options(context.Background(), domain.BillType("Capital"), "")
	assert.ErrorIs(t, err, domain.ErrInvalidBillType)
}

func TestBudgetService_FindEntry(t *testing.T) {
	repo := new(mocks.MockBudgetRepo)
	svc := service.NewBudgetService(repo)
	repo.On("ListByType", mock.Anything, domain.BillTypePlan).Return(planBudget(), nil)

	e, err := svc.FindEntry(context.Background(), domain.BillTypePlan, "4215", "sbm")
	require.NoError(t, err)
	require.NotNil(t, e)
	assert.True(t, e.Amount.Equal(dec("500000")))

	e, err = svc.FindEntry(context.Background(), domain.BillTypePlan, "4215", "Nope")
	require.NoError(t, err)
	assert.Nil(t, e)
}

func TestBudgetService_Create_Invalid(t *testing.T) {
	repo := new(mocks.MockBudgetRepo)
	svc := service.NewBudgetService(repo)

	_, err := svc.Create(context.Background(), &domain.BudgetEntry{BillType: domain.BillTypePlan, MajorHead: "4215"})
	assert.ErrorIs(t, err, domain.ErrValidation)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
