package validator_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worksbill/internal/deduction"
	"worksbill/internal/domain"
	"worksbill/internal/validator"
	"worksbill/internal/validator/bill"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func planInput() *bill.Input {
	billed := dec("118000")
	return &bill.Input{
		BillType:      "Plan",
		Payee:         "Sharma Constructions",
		AccountNumber: "0123456789",
		MajorHead:     "4215",
		Scheme:        "JJM",
		Workcode:      "W-101",
		Nomenclature:  "Pipeline Phase II",
		Work: &domain.Work{
			AAAAmount:   dec("500000"),
			TSAmount:    dec("400000"),
			AllotAmount: dec("250000"),
		},
		BilledAmount: &billed,
		RestrictedTo: "118000",
		Rates:        deduction.Rates{IncomeTax: dec("2.24"), Deposit: dec("10"), Cess: dec("1")},
		CessMax:      dec("100"),
	}
}

func TestEngine_ValidBill(t *testing.T) {
	res := validator.NewBillEngine().Validate(context.Background(), planInput())

	assert.True(t, res.Valid)
	assert.Empty(t, res.Violations)
	assert.NoError(t, res.Err())
	assert.Equal(t, res.Summary.Total, res.Summary.Passed)
	assert.Equal(t, validator.FieldStateValid, res.FieldStatuses["billed_amount"].Status)
}

func TestEngine_InvalidRestrictedToBlocksEverything(t *testing.T) {
	in := planInput()
	in.RestrictedTo = "abc"
	in.Payee = ""
	in.BilledAmount = nil

	res := validator.NewBillEngine().Validate(context.Background(), in)

	require.Len(t, res.Violations, 1)
	assert.Equal(t, "amount.restricted_to", res.Violations[0].Rule)
	assert.Contains(t, res.Violations[0].Message, "must be a valid number")
	assert.Equal(t, 1, res.Summary.Total)
}

func TestEngine_CollectsEveryViolation(t *testing.T) {
	in := planInput()
	in.Payee = ""
	billed := dec("300000")
	in.BilledAmount = &billed
	in.RestrictedTo = "300000"

	res := validator.NewBillEngine().Validate(context.Background(), in)

	rules := make([]string, 0, len(res.Violations))
	for _, v := range res.Violations {
		rules = append(rules, v.Rule)
	}
	assert.Equal(t, []string{"req.payee", "ceiling.allot"}, rules)
	assert.Equal(t, validator.FieldStateInvalid, res.FieldStatuses["payee"].Status)

	err := res.Err()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Len(t, ve.Violations, 2)
}

func TestEngine_SentinelWorkcodeIsMissing(t *testing.T) {
	in := planInput()
	in.Workcode = "No works found"
	in.Nomenclature = "No nomenclature found"
	in.Work = nil

	res := validator.NewBillEngine().Validate(context.Background(), in)

	require.Len(t, res.Violations, 2)
	assert.Equal(t, "req.plan.workcode", res.Violations[0].Rule)
	assert.Equal(t, "req.plan.nomenclature", res.Violations[1].Rule)
}

func TestEngine_SameRulesOnRerun(t *testing.T) {
	eng := validator.NewBillEngine()
	in := planInput()
	in.AccountNumber = ""

	first := eng.Validate(context.Background(), in)
	second := eng.Validate(context.Background(), in)
	assert.Equal(t, first.Violations, second.Violations)
}

type stubRule struct {
	key      string
	blocking bool
	pass     bool
}

func (s stubRule) RuleKey() string  { return s.key }
func (s stubRule) RuleName() string { return s.key }
func (s stubRule) Blocking() bool   { return s.blocking }
func (s stubRule) Validate(context.Context, *bill.Input) []bill.ValidationResult {
	return []bill.ValidationResult{{Passed: s.pass, FieldPath: s.key, Message: s.key}}
}

func TestRegistry_OrderAndReplace(t *testing.T) {
	reg := validator.NewRegistry()
	reg.Register(stubRule{key: "a", pass: true})
	reg.Register(stubRule{key: "b", pass: true})
	reg.Register(stubRule{key: "a", pass: false})

	all := reg.All()
	require.Len(t, all, 2)
	assert.Equal(t, "a", all[0].RuleKey())
	assert.Equal(t, "b", all[1].RuleKey())
	assert.Nil(t, reg.Get("missing"))

	res := validator.NewEngine(reg).Validate(context.Background(), &bill.Input{})
	require.Len(t, res.Violations, 1)
	assert.Equal(t, "a", res.Violations[0].Rule)
}

func TestEngine_BlockingOnlyStopsOnFailure(t *testing.T) {
	reg := validator.NewRegistry()
	reg.Register(stubRule{key: "gate", blocking: true, pass: true})
	reg.Register(stubRule{key: "after", pass: false})

	res := validator.NewEngine(reg).Validate(context.Background(), &bill.Input{})
	require.Len(t, res.Violations, 1)
	assert.Equal(t, "after", res.Violations[0].Rule)
}

func TestEngine_CCBillReportedWithOtherViolations(t *testing.T) {
	in := planInput()
	in.AccountNumber = ""
	in.CCBill = "13th"

	res := validator.NewBillEngine().Validate(context.Background(), in)

	rules := make([]string, 0, len(res.Violations))
	for _, v := range res.Violations {
		rules = append(rules, v.Rule)
	}
	assert.Equal(t, []string{"req.account_number", "bill.cc_bill"}, rules)
}

func TestEngine_BlankCCBillAllowed(t *testing.T) {
	in := planInput()
	in.CCBill = ""
	assert.True(t, validator.NewBillEngine().Validate(context.Background(), in).Valid)

	in.CCBill = "12th"
	assert.True(t, validator.NewBillEngine().Validate(context.Background(), in).Valid)
}

func TestEngine_ValidateRulesRunsSubset(t *testing.T) {
	in := planInput()
	in.Payee = ""
	in.Rates.Deposit = dec("120")

	res := validator.NewBillEngine().ValidateRules(context.Background(), in, "amount.percent", "unknown.rule")

	require.Len(t, res.Violations, 1)
	assert.Equal(t, "amount.percent", res.Violations[0].Rule)
	assert.Equal(t, "deposit_percent", res.Violations[0].Field)
}

func TestEngine_ValidateRulesKeepsBlocking(t *testing.T) {
	in := planInput()
	in.RestrictedTo = "abc"
	in.Rates.Deposit = dec("120")

	res := validator.NewBillEngine().ValidateRules(context.Background(), in, "amount.restricted_to", "amount.percent")

	require.Len(t, res.Violations, 1)
	assert.Equal(t, "amount.restricted_to", res.Violations[0].Rule)
}

func TestEngine_MissingBilledAndRestrictedReportsBilledAmount(t *testing.T) {
	in := planInput()
	in.BilledAmount = nil
	in.RestrictedTo = ""

	res := validator.NewBillEngine().Validate(context.Background(), in)

	require.Len(t, res.Violations, 1)
	assert.Equal(t, "req.billed_amount", res.Violations[0].Rule)
}
