// Package billrecord composes the persisted bill from the resolved selections and
// computed deductions.
package billrecord

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"worksbill/internal/deduction"
	"worksbill/internal/domain"
	"worksbill/internal/numwords"
)

// Payee identifies the contractor being paid.
type Payee struct {
	ContractorID  uuid.UUID
	Name          string
	AccountNumber string
}

// Selection is the budget hierarchy chosen for the bill.
type Selection struct {
	BillType     domain.BillType
	MajorHead    string
	Scheme       string
	Workcode     string
	Nomenclature string
}

// Amounts are the operator-entered amounts.
type Amounts struct {
	Billed         decimal.Decimal
	DeductPayments decimal.Decimal
	RestrictedTo   decimal.Decimal
}

// Meta carries the bookkeeping fields.
type Meta struct {
	CCBill    string
	FinalBill bool
	Now       time.Time
}

// Input is everything Assemble composes.
type Input struct {
	Payee      Payee
	Work       *domain.Work
	Selection  Selection
	Amounts    Amounts
	Rates      deduction.Rates
	Deductions deduction.Result
	Meta       Meta
}

// Assemble builds a new Pending bill. It has no side effects; the bill number
// and the work's expenditure are handled by the repository on insert.
func Assemble(in Input) *domain.Bill {
	b := &domain.Bill{
		ID:            uuid.New(),
		BillType:      in.Selection.BillType,
		ContractorID:  in.Payee.ContractorID,
		Payee:         strings.TrimSpace(in.Payee.Name),
		AccountNumber: strings.TrimSpace(in.Payee.AccountNumber),
		MajorHead:     strings.TrimSpace(in.Selection.MajorHead),
		Scheme:        strings.TrimSpace(in.Selection.Scheme),
		Workcode:      strings.TrimSpace(in.Selection.Workcode),
		Nomenclature:  strings.TrimSpace(in.Selection.Nomenclature),

		BilledAmount:     in.Amounts.Billed,
		DeductPayments:   in.Amounts.DeductPayments,
		Payable:          in.Amounts.Billed.Sub(in.Amounts.DeductPayments),
		RestrictedTo:     in.Amounts.RestrictedTo,
		CalculationBasis: in.Deductions.Basis,

		IncomeTaxPercent: in.Rates.IncomeTax,
		IncomeTaxAmount:  in.Deductions.IncomeTax,
		DepositPercent:   in.Rates.Deposit,
		DepositAmount:    in.Deductions.Deposit,
		CessPercent:      in.Rates.Cess,
		CessAmount:       in.Deductions.Cess,
		CGSTPercent:      in.Rates.CGST,
		CGSTAmount:       in.Deductions.CGST,
		SGSTPercent:      in.Rates.SGST,
		SGSTAmount:       in.Deductions.SGST,
		TotalDeduction:   in.Deductions.TotalDeduction,
		NetAmount:        in.Deductions.NetAmount,
		NetAmountWords:   numwords.Amount(in.Deductions.NetAmount),

		CCBill:    in.Meta.CCBill,
		FinalBill: in.Meta.FinalBill,
		Status:    domain.BillStatusPending,
		CreatedAt: in.Meta.Now,
	}

	if in.Work != nil {
		id := in.Work.ID
		b.WorkID = &id
		if b.Workcode == "" {
			b.Workcode = in.Work.Workcode
		}
		if b.Nomenclature == "" {
			b.Nomenclature = in.Work.Nomenclature
		}
	}
	return b
}
