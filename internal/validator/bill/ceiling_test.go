package bill_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worksbill/internal/validator/bill"
)

func ceilingFailures(in *bill.Input) []bill.ValidationResult {
	var out []bill.ValidationResult
	for _, v := range bill.CeilingValidators() {
		out = append(out, failed(v.Validate(context.Background(), in))...)
	}
	return out
}

func TestCeiling_PlanWithinLimits(t *testing.T) {
	assert.Empty(t, ceilingFailures(validPlanInput()))
}

func TestCeiling_PlanExceedsAllot(t *testing.T) {
	in := validPlanInput()
	in.BilledAmount = decPtr("300000")

	f := ceilingFailures(in)
	require.Len(t, f, 1)
	assert.Contains(t, f[0].Message, "Allot Amt")
	assert.Equal(t, "billed_amount", f[0].FieldPath)
}

func TestCeiling_EachExceededLimitReportedSeparately(t *testing.T) {
	in := validPlanInput()
	in.BilledAmount = decPtr("600000")

	f := ceilingFailures(in)
	require.Len(t, f, 3)
	assert.Contains(t, f[0].Message, "Allot Amt")
	assert.Contains(t, f[1].Message, "AAA Amt")
	assert.Contains(t, f[2].Message, "TS Amt")
}

func TestCeiling_EqualToLimitPasses(t *testing.T) {
	in := validPlanInput()
	in.BilledAmount = decPtr("250000")
	assert.Empty(t, ceilingFailures(in))
}

func TestCeiling_PlanWithoutWorkSkipped(t *testing.T) {
	in := validPlanInput()
	in.Work = nil
	in.BilledAmount = decPtr("999999999")
	assert.Empty(t, ceilingFailures(in))
}

func TestCeiling_NonPlanBudget(t *testing.T) {
	in := validNonPlanInput()
	assert.Empty(t, ceilingFailures(in))

	in.BilledAmount = decPtr("50000.01")
	f := ceilingFailures(in)
	require.Len(t, f, 1)
	assert.Contains(t, f[0].Message, "Budget Amount")
}

func TestCeiling_NonPlanIgnoresWorkLimits(t *testing.T) {
	in := validNonPlanInput()
	in.Work = validPlanInput().Work
	in.BilledAmount = decPtr("45000")
	in.Work.AllotAmount = dec("1")
	assert.Empty(t, ceilingFailures(in))
}

func TestBudgetPresence(t *testing.T) {
	v := findRule("req.nonplan.budget")
	require.NotNil(t, v)

	in := validNonPlanInput()
	in.Budget = nil
	f := failed(v.Validate(context.Background(), in))
	require.Len(t, f, 1)
	assert.Contains(t, f[0].Message, "No budget entry")

	assert.Empty(t, v.Validate(context.Background(), validPlanInput()))
}
