package bill

import (
	"context"
	"fmt"
	"strings"

	"worksbill/internal/works"
)

// requiredFieldValidator checks that a required field is present.
type requiredFieldValidator struct {
	ruleKey   string
	ruleName  string
	fieldPath string
	label     string
	planOnly  bool
	present   func(*Input) (string, bool)
}

func (v *requiredFieldValidator) RuleKey() string  { return v.ruleKey }
func (v *requiredFieldValidator) RuleName() string { return v.ruleName }
func (v *requiredFieldValidator) Blocking() bool   { return false }

func (v *requiredFieldValidator) Validate(_ context.Context, in *Input) []ValidationResult {
	if v.planOnly && !in.IsPlan() {
		return nil
	}
	actual, ok := v.present(in)
	msg := fmt.Sprintf("%s is present", v.label)
	if !ok {
		msg = fmt.Sprintf("%s is required", v.label)
		if v.planOnly {
			msg += " for Plan bills"
		}
	}
	return []ValidationResult{{
		Passed:        ok,
		FieldPath:     v.fieldPath,
		ExpectedValue: "non-empty value",
		ActualValue:   actual,
		Message:       msg,
	}}
}

func text(s string) (string, bool) {
	return s, strings.TrimSpace(s) != ""
}

// RequiredFieldValidators returns all required field validators, Plan-only ones last.
func RequiredFieldValidators() []*requiredFieldValidator {
	return []*requiredFieldValidator{
		{
			ruleKey: "req.payee", ruleName: "Required: Payee",
			fieldPath: "payee", label: "Payee",
			present: func(in *Input) (string, bool) { return text(in.Payee) },
		},
		{
			ruleKey: "req.account_number", ruleName: "Required: Account Number",
			fieldPath: "account_number", label: "Account number",
			present: func(in *Input) (string, bool) { return text(in.AccountNumber) },
		},
		{
			ruleKey: "req.bill_type", ruleName: "Required: Bill Type",
			fieldPath: "bill_type", label: "Bill type",
			present: func(in *Input) (string, bool) {
				_, ok := in.Type()
				return in.BillType, ok
			},
		},
		{
			ruleKey: "req.major_head", ruleName: "Required: Major Head",
			fieldPath: "major_head", label: "Major head",
			present: func(in *Input) (string, bool) { return text(in.MajorHead) },
		},
		{
			ruleKey: "req.scheme", ruleName: "Required: Scheme",
			fieldPath: "scheme", label: "Scheme",
			present: func(in *Input) (string, bool) { return text(in.Scheme) },
		},
		{
			// zero is a valid amount; only a missing value fails
			ruleKey: "req.billed_amount", ruleName: "Required: Billed Amount",
			fieldPath: "billed_amount", label: "Billed amount",
			present: func(in *Input) (string, bool) {
				if in.BilledAmount == nil {
					return "", false
				}
				return in.BilledAmount.String(), true
			},
		},
		{
			ruleKey: "req.plan.workcode", ruleName: "Required: Workcode",
			fieldPath: "workcode", label: "Workcode", planOnly: true,
			present: func(in *Input) (string, bool) {
				if works.IsSentinel(in.Workcode) {
					return in.Workcode, false
				}
				return text(in.Workcode)
			},
		},
		{
			ruleKey: "req.plan.nomenclature", ruleName: "Required: Nomenclature",
			fieldPath: "nomenclature", label: "Nomenclature", planOnly: true,
			present: func(in *Input) (string, bool) {
				if works.IsSentinel(in.Nomenclature) || in.Work == nil {
					return in.Nomenclature, false
				}
				return text(in.Nomenclature)
			},
		},
	}
}
