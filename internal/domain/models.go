package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Contractor is a payee registered for works bills.
type Contractor struct {
	ID            uuid.UUID       `db:"id" json:"id"`
	Name          string          `db:"name" json:"name"`
	Parentage     string          `db:"parentage" json:"parentage"`
	Resident      string          `db:"resident" json:"resident"`
	Registration  string          `db:"registration" json:"registration"`
	Class         ContractorClass `db:"class" json:"class"`
	PAN           string          `db:"pan" json:"pan"`
	GSTIN         string          `db:"gstin" json:"gstin"`
	AccountNumber string          `db:"account_number" json:"account_number"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
}

// Work is a sanctioned unit of expenditure under a Major Head and Scheme.
type Work struct {
	ID               uuid.UUID       `db:"id" json:"id"`
	MajorHead        string          `db:"major_head" json:"major_head"`
	Scheme           string          `db:"scheme" json:"scheme"`
	Workcode         string          `db:"workcode" json:"workcode"`
	Nomenclature     string          `db:"nomenclature" json:"nomenclature"`
	Classification   string          `db:"classification" json:"classification"`
	AAANumber        string          `db:"aaa_number" json:"aaa_number"`
	AAADate          *time.Time      `db:"aaa_date" json:"aaa_date"`
	AAAAmount        decimal.Decimal `db:"aaa_amount" json:"aaa_amount"`
	TSNumber         string          `db:"ts_number" json:"ts_number"`
	TSDate           *time.Time      `db:"ts_date" json:"ts_date"`
	TSAmount         decimal.Decimal `db:"ts_amount" json:"ts_amount"`
	AllotNumber      string          `db:"allot_number" json:"allot_number"`
	AllotDate        *time.Time      `db:"allot_date" json:"allot_date"`
	AllotAmount      decimal.Decimal `db:"allot_amount" json:"allot_amount"`
	AgreementNumber  string          `db:"agreement_number" json:"agreement_number"`
	LOINumber        string          `db:"loi_number" json:"loi_number"`
	LOIDate          *time.Time      `db:"loi_date" json:"loi_date"`
	TimeOfCompletion string          `db:"time_of_completion" json:"time_of_completion"`
	StartDate        *time.Time      `db:"start_date" json:"start_date"`
	CompletionDate   *time.Time      `db:"completion_date" json:"completion_date"`
	Expenditure      decimal.Decimal `db:"expenditure" json:"expenditure"`
	CreatedAt        time.Time       `db:"created_at" json:"created_at"`
}

// BudgetEntry is a ceiling record keyed by Major Head and Scheme (Plan) or
// Major Head and Detailed Head (Non Plan). Scheme holds either.
type BudgetEntry struct {
	ID        uuid.UUID       `db:"id" json:"id"`
	BillType  BillType        `db:"bill_type" json:"bill_type"`
	MajorHead string          `db:"major_head" json:"major_head"`
	Scheme    string          `db:"scheme" json:"scheme"`
	Amount    decimal.Decimal `db:"amount" json:"amount"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
}

// Bill is a finalized payment bill. It is never updated after creation.
type Bill struct {
	ID               uuid.UUID       `db:"id" json:"id"`
	BillNo           int64           `db:"bill_no" json:"bill_no"`
	BillType         BillType        `db:"bill_type" json:"bill_type"`
	ContractorID     uuid.UUID       `db:"contractor_id" json:"contractor_id"`
	Payee            string          `db:"payee" json:"payee"`
	AccountNumber    string          `db:"account_number" json:"account_number"`
	WorkID           *uuid.UUID      `db:"work_id" json:"work_id"`
	Workcode         string          `db:"workcode" json:"workcode"`
	MajorHead        string          `db:"major_head" json:"major_head"`
	Scheme           string          `db:"scheme" json:"scheme"`
	Nomenclature     string          `db:"nomenclature" json:"nomenclature"`
	BilledAmount     decimal.Decimal `db:"billed_amount" json:"billed_amount"`
	DeductPayments   decimal.Decimal `db:"deduct_payments" json:"deduct_payments"`
	Payable          decimal.Decimal `db:"payable" json:"payable"`
	RestrictedTo     decimal.Decimal `db:"restricted_to_amount" json:"restricted_to_amount"`
	CalculationBasis decimal.Decimal `db:"calculation_basis" json:"calculation_basis"`
	IncomeTaxPercent decimal.Decimal `db:"income_tax_percent" json:"income_tax_percent"`
	IncomeTaxAmount  decimal.Decimal `db:"income_tax_amount" json:"income_tax_amount"`
	DepositPercent   decimal.Decimal `db:"deposit_percent" json:"deposit_percent"`
	DepositAmount    decimal.Decimal `db:"deposit_amount" json:"deposit_amount"`
	CessPercent      decimal.Decimal `db:"cess_percent" json:"cess_percent"`
	CessAmount       decimal.Decimal `db:"cess_amount" json:"cess_amount"`
	CGSTPercent      decimal.Decimal `db:"cgst_percent" json:"cgst_percent"`
	CGSTAmount       decimal.Decimal `db:"cgst_amount" json:"cgst_amount"`
	SGSTPercent      decimal.Decimal `db:"sgst_percent" json:"sgst_percent"`
	SGSTAmount       decimal.Decimal `db:"sgst_amount" json:"sgst_amount"`
	TotalDeduction   decimal.Decimal `db:"total_deduction" json:"total_deduction"`
	NetAmount        decimal.Decimal `db:"net_amount" json:"net_amount"`
	NetAmountWords   string          `db:"net_amount_words" json:"net_amount_words"`
	CCBill           string          `db:"cc_bill" json:"cc_bill"`
	FinalBill        bool            `db:"final_bill" json:"final_bill"`
	Status           BillStatus      `db:"status" json:"status"`
	CreatedAt        time.Time       `db:"created_at" json:"created_at"`
}

// BillFilters narrows bill listings and reports to a creation date range.
type BillFilters struct {
	From   *time.Time
	To     *time.Time
	Offset int
	Limit  int
}

// Stats holds the dashboard counters.
type Stats struct {
	TotalContractors int             `db:"total_contractors" json:"total_contractors"`
	TotalWorks       int             `db:"total_works" json:"total_works"`
	PendingBills     int             `db:"pending_bills" json:"pending_bills"`
	TotalBills       int             `db:"total_bills" json:"total_bills"`
	BilledTotal      decimal.Decimal `db:"billed_total" json:"billed_total"`
}

// DailyExpenditure is the billed amount for one calendar day.
type DailyExpenditure struct {
	Day          time.Time       `db:"day" json:"day"`
	Bills        int             `db:"bills" json:"bills"`
	BilledAmount decimal.Decimal `db:"billed_amount" json:"billed_amount"`
}

// ExpenditureTrend is the day-by-day billed amount over a range and its total.
type ExpenditureTrend struct {
	Days  []DailyExpenditure `json:"days"`
	Total decimal.Decimal    `json:"total"`
}

// PaymentRegisterRow is one line of the payment register report.
type PaymentRegisterRow struct {
	BillNo    int64           `db:"bill_no" json:"bill_no"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
	Payee     string          `db:"payee" json:"payee"`
	Workcode  string          `db:"workcode" json:"workcode"`
	Payable   decimal.Decimal `db:"payable" json:"payable"`
	Status    BillStatus      `db:"status" json:"status"`
}

// ContractorPaymentRow summarizes payments per contractor.
type ContractorPaymentRow struct {
	Payee           string          `db:"payee" json:"payee"`
	TotalBills      int             `db:"total_bills" json:"total_bills"`
	TotalAmount     decimal.Decimal `db:"total_amount" json:"total_amount"`
	LastPaymentDate time.Time       `db:"last_payment_date" json:"last_payment_date"`
}

// SchemeExpenditureRow summarizes allotment utilisation per scheme.
type SchemeExpenditureRow struct {
	Scheme             string          `db:"scheme" json:"scheme"`
	Allocated          decimal.Decimal `db:"allocated" json:"allocated"`
	Utilized           decimal.Decimal `db:"utilized" json:"utilized"`
	Balance            decimal.Decimal `db:"balance" json:"balance"`
	UtilizationPercent decimal.Decimal `db:"utilization_percent" json:"utilization_percent"`
}

// DeductionRegisterRow is one line of the deduction register report.
type DeductionRegisterRow struct {
	BillNo         int64           `db:"bill_no" json:"bill_no"`
	CreatedAt      time.Time       `db:"created_at" json:"created_at"`
	Payee          string          `db:"payee" json:"payee"`
	IncomeTax      decimal.Decimal `db:"income_tax_amount" json:"income_tax"`
	Deposit        decimal.Decimal `db:"deposit_amount" json:"deposit"`
	Cess           decimal.Decimal `db:"cess_amount" json:"cess"`
	CGST           decimal.Decimal `db:"cgst_amount" json:"cgst"`
	SGST           decimal.Decimal `db:"sgst_amount" json:"sgst"`
	TotalDeduction decimal.Decimal `db:"total_deduction" json:"total_deduction"`
}

// ReportFilters bounds report and dashboard queries by creation date (inclusive).
type ReportFilters struct {
	From *time.Time
	To   *time.Time
}

// Snapshot is a point-in-time copy of every table, written by backups.
type Snapshot struct {
	TakenAt     time.Time     `json:"taken_at"`
	Contractors []Contractor  `json:"contractors"`
	Works       []Work        `json:"works"`
	Budgets     []BudgetEntry `json:"budgets"`
	Bills       []Bill        `json:"bills"`
}
