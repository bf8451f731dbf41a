// Package deduction computes the statutory deductions on a bill and its net amount.
package deduction

import (
	"strings"

	"github.com/shopspring/decimal"

	"worksbill/internal/domain"
)

// Defaults used when the configuration does not override them.
var (
	DefaultIncomeTaxPercent = decimal.RequireFromString("2.24")
	DefaultDepositPercent   = decimal.NewFromInt(10)
	DefaultCessPercent      = decimal.NewFromInt(1)
	DefaultGSTThreshold     = decimal.NewFromInt(250000)

	DefaultInclusiveScheme  = "JJM"
	DefaultInclusiveDivisor = decimal.NewFromInt(118)
)

var hundred = decimal.NewFromInt(100)

// Rates holds the five deduction percentages applied to a bill.
type Rates struct {
	IncomeTax decimal.Decimal `json:"income_tax_percent"`
	Deposit   decimal.Decimal `json:"deposit_percent"`
	Cess      decimal.Decimal `json:"cess_percent"`
	CGST      decimal.Decimal `json:"cgst_percent"`
	SGST      decimal.Decimal `json:"sgst_percent"`
}

// CessLimit is the upper bound for the cess percentage given the configured maximum.
// A non-positive or above-100 maximum falls back to 100.
func CessLimit(cessMax decimal.Decimal) decimal.Decimal {
	if !cessMax.IsPositive() || cessMax.GreaterThan(hundred) {
		return hundred
	}
	return cessMax
}

// WithoutGST returns a copy of r with CGST and SGST zeroed.
func (r Rates) WithoutGST() Rates {
	r.CGST = decimal.Zero
	r.SGST = decimal.Zero
	return r
}

// Input is the data needed to compute deductions.
type Input struct {
	RestrictedTo decimal.Decimal
	Rates        Rates
	Scheme       string
}

// Result holds the computed deduction amounts, all rounded to whole currency units.
type Result struct {
	Basis          decimal.Decimal `json:"calculation_basis"`
	GSTInclusive   bool            `json:"gst_inclusive"`
	IncomeTax      decimal.Decimal `json:"income_tax_amount"`
	Deposit        decimal.Decimal `json:"deposit_amount"`
	Cess           decimal.Decimal `json:"cess_amount"`
	CGST           decimal.Decimal `json:"cgst_amount"`
	SGST           decimal.Decimal `json:"sgst_amount"`
	TotalDeduction decimal.Decimal `json:"total_deduction"`
	NetAmount      decimal.Decimal `json:"net_amount"`
}

// Calculator computes deductions. One scheme is treated as GST-inclusive:
// its restricted amount is de-grossed by divisor before rates apply.
type Calculator struct {
	inclusiveScheme string
	divisor         decimal.Decimal
}

// NewCalculator creates a Calculator. A non-positive divisor falls back to 118.
func NewCalculator(inclusiveScheme string, divisor decimal.Decimal) *Calculator {
	if !divisor.IsPositive() {
		divisor = DefaultInclusiveDivisor
	}
	return &Calculator{inclusiveScheme: inclusiveScheme, divisor: divisor}
}

// DefaultCalculator treats JJM as GST-inclusive at 18%.
func DefaultCalculator() *Calculator {
	return NewCalculator(DefaultInclusiveScheme, DefaultInclusiveDivisor)
}

// GSTInclusive reports whether scheme is the GST-inclusive scheme.
func (c *Calculator) GSTInclusive(scheme string) bool {
	return c.inclusiveScheme != "" && strings.EqualFold(strings.TrimSpace(scheme), strings.TrimSpace(c.inclusiveScheme))
}

// Compute derives each deduction as round(basis * pct / 100), half away from zero.
// For the inclusive scheme every component is subtracted from the net amount; for
// any other scheme only income tax and deposit are, while cess and GST are reported.
func (c *Calculator) Compute(in Input) Result {
	res := Result{GSTInclusive: c.GSTInclusive(in.Scheme)}

	divisor := hundred
	if res.GSTInclusive {
		divisor = c.divisor
	}
	// restricted * pct / divisor is basis * pct / 100 without the intermediate division
	component := func(pct decimal.Decimal) decimal.Decimal {
		return in.RestrictedTo.Mul(pct).Div(divisor).Round(0)
	}

	res.Basis = in.RestrictedTo.Mul(hundred).Div(divisor).Round(2)
	res.IncomeTax = component(in.Rates.IncomeTax)
	res.Deposit = component(in.Rates.Deposit)
	res.Cess = component(in.Rates.Cess)
	res.CGST = component(in.Rates.CGST)
	res.SGST = component(in.Rates.SGST)
	res.TotalDeduction = decimal.Sum(res.IncomeTax, res.Deposit, res.Cess, res.CGST, res.SGST)

	if res.GSTInclusive {
		res.NetAmount = in.RestrictedTo.Sub(res.TotalDeduction)
	} else {
		res.NetAmount = in.RestrictedTo.Sub(res.IncomeTax).Sub(res.Deposit)
	}
	return res
}

// Compute runs the default calculator.
func Compute(in Input) Result {
	return DefaultCalculator().Compute(in)
}

// GSTApplicable reports whether CGST and SGST may be charged: only on Plan bills
// against a work whose Allot Amount is at least threshold.
func GSTApplicable(billType domain.BillType, work *domain.Work, threshold decimal.Decimal) bool {
	if billType != domain.BillTypePlan || work == nil {
		return false
	}
	return work.AllotAmount.GreaterThanOrEqual(threshold)
}
