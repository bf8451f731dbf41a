package domain

import "strings"

// Validate checks the fields a work needs to be selectable and to carry ceilings.
func (w *Work) Validate() error {
	var v []Violation
	required := []struct{ field, label, val string }{
		{"major_head", "Major head", w.MajorHead},
		{"scheme", "Scheme", w.Scheme},
		{"workcode", "Workcode", w.Workcode},
		{"nomenclature", "Nomenclature", w.Nomenclature},
	}
	for _, r := range required {
		if strings.TrimSpace(r.val) == "" {
			v = append(v, Violation{Rule: "work." + r.field, Field: r.field, Message: r.label + " is required"})
		}
	}
	amounts := []struct {
		field, label string
		neg          bool
	}{
		{"aaa_amount", "AAA amount", w.AAAAmount.IsNegative()},
		{"ts_amount", "TS amount", w.TSAmount.IsNegative()},
		{"allot_amount", "Allot amount", w.AllotAmount.IsNegative()},
		{"expenditure", "Expenditure", w.Expenditure.IsNegative()},
	}
	for _, a := range amounts {
		if a.neg {
			v = append(v, Violation{Rule: "work." + a.field, Field: a.field, Message: a.label + " must not be negative"})
		}
	}
	if len(v) > 0 {
		return &ValidationError{Violations: v}
	}
	return nil
}

// Validate checks a budget ceiling row.
func (e *BudgetEntry) Validate() error {
	var v []Violation
	if !e.BillType.Valid() {
		v = append(v, Violation{Rule: "budget.bill_type", Field: "bill_type", Message: "Bill type must be Plan or Non Plan"})
	}
	if strings.TrimSpace(e.MajorHead) == "" {
		v = append(v, Violation{Rule: "budget.major_head", Field: "major_head", Message: "Major head is required"})
	}
	if strings.TrimSpace(e.Scheme) == "" {
		v = append(v, Violation{Rule: "budget.scheme", Field: "scheme", Message: e.BillType.SchemeLabel() + " is required"})
	}
	if e.Amount.IsNegative() {
		v = append(v, Violation{Rule: "budget.amount", Field: "amount", Message: "Amount must not be negative"})
	}
	if len(v) > 0 {
		return &ValidationError{Violations: v}
	}
	return nil
}
