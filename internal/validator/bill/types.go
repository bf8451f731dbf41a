package bill

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"worksbill/internal/deduction"
	"worksbill/internal/domain"
)

// ErrInvalidNumber is returned when an operator-entered amount cannot be parsed.
var ErrInvalidNumber = errors.New("must be a valid number")

// Input is everything the bill rules look at. Work and Budget are the resolved
// ceiling records; nil means the selection did not resolve.
type Input struct {
	BillType       string
	Payee          string
	AccountNumber  string
	MajorHead      string
	Scheme         string
	Workcode       string
	Nomenclature   string
	Work           *domain.Work
	Budget         *domain.BudgetEntry
	BilledAmount   *decimal.Decimal
	DeductPayments decimal.Decimal
	RestrictedTo   string
	Rates          deduction.Rates
	CessMax        decimal.Decimal
	CCBill         string
}

// Type returns the parsed bill type, if valid.
func (in *Input) Type() (domain.BillType, bool) {
	return domain.ParseBillType(in.BillType)
}

// IsPlan reports whether the bill is a Plan bill.
func (in *Input) IsPlan() bool {
	bt, ok := in.Type()
	return ok && bt == domain.BillTypePlan
}

// Payable returns billed amount minus deduct payments. ok is false when billed is missing.
func (in *Input) Payable() (decimal.Decimal, bool) {
	if in.BilledAmount == nil {
		return decimal.Zero, false
	}
	return in.BilledAmount.Sub(in.DeductPayments), true
}

// ValidationResult is the outcome of one check.
type ValidationResult struct {
	Passed        bool
	FieldPath     string
	ExpectedValue string
	ActualValue   string
	Message       string
}

// ParseAmount parses an operator-entered amount. Thousands separators ("1,18,000")
// and surrounding spaces are stripped; the value must be a non-negative number.
func ParseAmount(s string) (decimal.Decimal, error) {
	clean := strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if clean == "" {
		return decimal.Zero, ErrInvalidNumber
	}
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%q: %w", s, ErrInvalidNumber)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%q: %w", s, ErrInvalidNumber)
	}
	return d, nil
}

func fmtAmount(d decimal.Decimal) string {
	return d.StringFixedBank(2)
}
