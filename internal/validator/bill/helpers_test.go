package bill_test

import (
	"context"

	"github.com/shopspring/decimal"

	"worksbill/internal/deduction"
	"worksbill/internal/domain"
	"worksbill/internal/validator/bill"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func validPlanInput() *bill.Input {
	return &bill.Input{
		BillType:      "Plan",
		Payee:         "Sharma Constructions",
		AccountNumber: "0123456789",
		MajorHead:     "4215",
		Scheme:        "JJM",
		Workcode:      "W-101",
		Nomenclature:  "Pipeline Phase II",
		Work: &domain.Work{
			Workcode:     "W-101",
			Nomenclature: "Pipeline Phase II",
			AAAAmount:    dec("500000"),
			TSAmount:     dec("400000"),
			AllotAmount:  dec("250000"),
		},
		BilledAmount:   decPtr("118000"),
		DeductPayments: decimal.Zero,
		RestrictedTo:   "1,18,000",
		Rates:          deduction.Rates{IncomeTax: dec("2.24"), Deposit: dec("10"), Cess: dec("1")},
		CessMax:        dec("100"),
	}
}

func validNonPlanInput() *bill.Input {
	return &bill.Input{
		BillType:      "Non Plan",
		Payee:         "Verma Traders",
		AccountNumber: "998877",
		MajorHead:     "2215",
		Scheme:        "Office Expenses",
		Budget:        &domain.BudgetEntry{MajorHead: "2215", Scheme: "Office Expenses", Amount: dec("50000")},
		BilledAmount:  decPtr("40000"),
		RestrictedTo:  "40000",
		Rates:         deduction.Rates{IncomeTax: dec("2.24"), Deposit: dec("10"), Cess: dec("1")},
		CessMax:       dec("100"),
	}
}

type ruleFn interface {
	RuleKey() string
	Validate(context.Context, *bill.Input) []bill.ValidationResult
}

func findRule(key string) ruleFn {
	for _, v := range bill.AllBuiltinValidators() {
		if v.RuleKey() == key {
			return v
		}
	}
	return nil
}

func failed(results []bill.ValidationResult) []bill.ValidationResult {
	var out []bill.ValidationResult
	for _, r := range results {
		if !r.Passed {
			out = append(out, r)
		}
	}
	return out
}
