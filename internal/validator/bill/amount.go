package bill

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"worksbill/internal/deduction"
)

var hundred = decimal.NewFromInt(100)

// amountValidator checks operator-entered amounts and percentages.
type amountValidator struct {
	ruleKey  string
	ruleName string
	blocking bool
	validate func(*Input) []ValidationResult
}

func (v *amountValidator) RuleKey() string  { return v.ruleKey }
func (v *amountValidator) RuleName() string { return v.ruleName }
func (v *amountValidator) Blocking() bool   { return v.blocking }

func (v *amountValidator) Validate(_ context.Context, in *Input) []ValidationResult {
	return v.validate(in)
}

// RestrictedToValidator parses the restricted-to amount. Its failure blocks every other rule.
// When neither restricted-to nor billed amount was entered there is nothing to parse and
// req.billed_amount reports the gap instead.
func RestrictedToValidator() *amountValidator {
	return &amountValidator{
		ruleKey: "amount.restricted_to", ruleName: "Amount: Restricted To", blocking: true,
		validate: func(in *Input) []ValidationResult {
			if strings.TrimSpace(in.RestrictedTo) == "" && in.BilledAmount == nil {
				return nil
			}
			_, err := ParseAmount(in.RestrictedTo)
			if err != nil {
				return []ValidationResult{{
					Passed: false, FieldPath: "restricted_to_amount",
					ExpectedValue: "non-negative number", ActualValue: in.RestrictedTo,
					Message: "Restricted to amount " + ErrInvalidNumber.Error(),
				}}
			}
			return []ValidationResult{{
				Passed: true, FieldPath: "restricted_to_amount",
				ExpectedValue: "non-negative number", ActualValue: in.RestrictedTo,
				Message: "Restricted to amount is valid",
			}}
		},
	}
}

// AmountValidators returns the amount and percentage checks that run after required fields.
func AmountValidators() []*amountValidator {
	return []*amountValidator{
		{
			ruleKey: "amount.percent", ruleName: "Amount: Deduction Percentages",
			validate: func(in *Input) []ValidationResult {
				cessMax := deduction.CessLimit(in.CessMax)
				checks := []struct {
					field string
					label string
					val   decimal.Decimal
					max   decimal.Decimal
				}{
					{"income_tax_percent", "Income tax", in.Rates.IncomeTax, hundred},
					{"deposit_percent", "Deposit", in.Rates.Deposit, hundred},
					{"cess_percent", "Cess", in.Rates.Cess, cessMax},
					{"cgst_percent", "CGST", in.Rates.CGST, hundred},
					{"sgst_percent", "SGST", in.Rates.SGST, hundred},
				}
				results := make([]ValidationResult, 0, len(checks))
				for _, c := range checks {
					passed := !c.val.IsNegative() && c.val.LessThanOrEqual(c.max)
					msg := fmt.Sprintf("%s percent is within range", c.label)
					if !passed {
						msg = fmt.Sprintf("%s percent %s must be between 0 and %s", c.label, c.val, c.max)
					}
					results = append(results, ValidationResult{
						Passed: passed, FieldPath: c.field,
						ExpectedValue: "0 to " + c.max.String(), ActualValue: c.val.String(),
						Message: msg,
					})
				}
				return results
			},
		},
		{
			ruleKey: "amount.deduct_payments", ruleName: "Amount: Deduct Payments",
			validate: func(in *Input) []ValidationResult {
				if in.BilledAmount == nil {
					return nil
				}
				passed := !in.DeductPayments.IsNegative() && in.DeductPayments.LessThanOrEqual(*in.BilledAmount)
				msg := "Deduct payments are within billed amount"
				if !passed {
					msg = fmt.Sprintf("Deduct payments %s must be between 0 and billed amount %s",
						fmtAmount(in.DeductPayments), fmtAmount(*in.BilledAmount))
				}
				return []ValidationResult{{
					Passed: passed, FieldPath: "deduct_payments",
					ExpectedValue: "<= " + fmtAmount(*in.BilledAmount), ActualValue: fmtAmount(in.DeductPayments),
					Message: msg,
				}}
			},
		},
		{
			ruleKey: "amount.restricted_cap", ruleName: "Amount: Restricted To Cap",
			validate: func(in *Input) []ValidationResult {
				payable, ok := in.Payable()
				if !ok {
					return nil
				}
				restricted, err := ParseAmount(in.RestrictedTo)
				if err != nil {
					return nil
				}
				passed := restricted.LessThanOrEqual(payable)
				msg := "Restricted to amount is within payable"
				if !passed {
					msg = fmt.Sprintf("Restricted to amount %s exceeds payable %s", fmtAmount(restricted), fmtAmount(payable))
				}
				return []ValidationResult{{
					Passed: passed, FieldPath: "restricted_to_amount",
					ExpectedValue: "<= " + fmtAmount(payable), ActualValue: fmtAmount(restricted),
					Message: msg,
				}}
			},
		},
	}
}
