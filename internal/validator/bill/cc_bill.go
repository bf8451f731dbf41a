package bill

import (
	"context"
	"strings"

	"worksbill/internal/domain"
)

// ccBillValidator checks the running-bill ordinal. Blank is allowed.
type ccBillValidator struct{}

func (ccBillValidator) RuleKey() string  { return "bill.cc_bill" }
func (ccBillValidator) RuleName() string { return "Bill: CC Bill Ordinal" }
func (ccBillValidator) Blocking() bool   { return false }

func (ccBillValidator) Validate(_ context.Context, in *Input) []ValidationResult {
	cc := strings.TrimSpace(in.CCBill)
	if cc == "" {
		return nil
	}
	expected := strings.Join(domain.CCBillOrdinals, ", ")
	if !domain.ValidCCBill(cc) {
		return []ValidationResult{{
			Passed: false, FieldPath: "cc_bill",
			ExpectedValue: expected, ActualValue: in.CCBill,
			Message: "CC bill must be one of 1st to 12th",
		}}
	}
	return []ValidationResult{{
		Passed: true, FieldPath: "cc_bill",
		ExpectedValue: expected, ActualValue: in.CCBill,
		Message: "CC bill is valid",
	}}
}
