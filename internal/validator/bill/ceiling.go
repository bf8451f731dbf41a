package bill

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"worksbill/internal/domain"
)

// ceilingValidator checks the billed amount against one sanctioned limit.
type ceilingValidator struct {
	ruleKey  string
	ruleName string
	label    string
	billType domain.BillType
	limit    func(*Input) (decimal.Decimal, bool)
}

func (v *ceilingValidator) RuleKey() string  { return v.ruleKey }
func (v *ceilingValidator) RuleName() string { return v.ruleName }
func (v *ceilingValidator) Blocking() bool   { return false }

func (v *ceilingValidator) Validate(_ context.Context, in *Input) []ValidationResult {
	bt, ok := in.Type()
	if !ok || bt != v.billType || in.BilledAmount == nil {
		return nil
	}
	limit, ok := v.limit(in)
	if !ok {
		return nil
	}

	billed := *in.BilledAmount
	passed := billed.LessThanOrEqual(limit)
	msg := fmt.Sprintf("Billed amount is within %s", v.label)
	if !passed {
		msg = fmt.Sprintf("Billed amount %s exceeds %s %s", fmtAmount(billed), v.label, fmtAmount(limit))
	}
	return []ValidationResult{{
		Passed:        passed,
		FieldPath:     "billed_amount",
		ExpectedValue: "<= " + fmtAmount(limit),
		ActualValue:   fmtAmount(billed),
		Message:       msg,
	}}
}

func workLimit(field func(*domain.Work) decimal.Decimal) func(*Input) (decimal.Decimal, bool) {
	return func(in *Input) (decimal.Decimal, bool) {
		if in.Work == nil {
			return decimal.Zero, false
		}
		return field(in.Work), true
	}
}

// CeilingValidators returns the Plan work ceilings (Allot, AAA, TS) and the Non Plan budget ceiling.
// Each exceeded ceiling is reported on its own.
func CeilingValidators() []*ceilingValidator {
	return []*ceilingValidator{
		{
			ruleKey: "ceiling.allot", ruleName: "Ceiling: Allot Amount", label: "Allot Amt",
			billType: domain.BillTypePlan,
			limit:    workLimit(func(w *domain.Work) decimal.Decimal { return w.AllotAmount }),
		},
		{
			ruleKey: "ceiling.aaa", ruleName: "Ceiling: AAA Amount", label: "AAA Amt",
			billType: domain.BillTypePlan,
			limit:    workLimit(func(w *domain.Work) decimal.Decimal { return w.AAAAmount }),
		},
		{
			ruleKey: "ceiling.ts", ruleName: "Ceiling: TS Amount", label: "TS Amt",
			billType: domain.BillTypePlan,
			limit:    workLimit(func(w *domain.Work) decimal.Decimal { return w.TSAmount }),
		},
		{
			ruleKey: "ceiling.budget", ruleName: "Ceiling: Budget Amount", label: "Budget Amount",
			billType: domain.BillTypeNonPlan,
			limit: func(in *Input) (decimal.Decimal, bool) {
				if in.Budget == nil {
					return decimal.Zero, false
				}
				return in.Budget.Amount, true
			},
		},
	}
}

// budgetPresenceValidator fails a Non Plan bill whose major head and detailed head
// do not match any budget row, since no ceiling can be checked.
type budgetPresenceValidator struct{}

func (budgetPresenceValidator) RuleKey() string  { return "req.nonplan.budget" }
func (budgetPresenceValidator) RuleName() string { return "Required: Budget Entry" }
func (budgetPresenceValidator) Blocking() bool   { return false }

func (budgetPresenceValidator) Validate(_ context.Context, in *Input) []ValidationResult {
	bt, ok := in.Type()
	if !ok || bt != domain.BillTypeNonPlan {
		return nil
	}
	if _, ok := text(in.MajorHead); !ok {
		return nil
	}
	if _, ok := text(in.Scheme); !ok {
		return nil
	}
	passed := in.Budget != nil
	msg := "Budget entry found"
	if !passed {
		msg = fmt.Sprintf("No budget entry for major head %q and detailed head %q", in.MajorHead, in.Scheme)
	}
	return []ValidationResult{{
		Passed: passed, FieldPath: "scheme",
		ExpectedValue: "matching budget entry", ActualValue: in.Scheme,
		Message: msg,
	}}
}
