package handler

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"worksbill/internal/domain"
	"worksbill/internal/service"
)

// Request and response types, also used by swag to generate OpenAPI documentation.

// --- Request Types ---

// CreateContractorRequest represents the register contractor request body.
type CreateContractorRequest struct {
	Name          string `json:"name" binding:"required" example:"Sharma Constructions"`
	Parentage     string `json:"parentage" example:"S/o R. K. Sharma"`
	Resident      string `json:"resident" example:"Srinagar"`
	Registration  string `json:"registration" example:"REG/2023/114"`
	Class         string `json:"class" binding:"required,contractor_class" example:"A"`
	PAN           string `json:"pan" binding:"required,pan" example:"ABCDE1234F"`
	GSTIN         string `json:"gstin" binding:"required,gstin" example:"01ABCDE1234F1Z5"`
	AccountNumber string `json:"account_number" binding:"required" example:"0123456789"`
}

// CreateWorkRequest represents the create work request body. Dates are YYYY-MM-DD.
type CreateWorkRequest struct {
	MajorHead        string          `json:"major_head" binding:"required" example:"4215"`
	Scheme           string          `json:"scheme" binding:"required" example:"JJM"`
	Workcode         string          `json:"workcode" binding:"required" example:"W-101"`
	Nomenclature     string          `json:"nomenclature" binding:"required" example:"Pipeline Phase II"`
	Classification   string          `json:"classification" example:"Water Supply"`
	AAANumber        string          `json:"aaa_number"`
	AAADate          string          `json:"aaa_date" binding:"omitempty,datetime=2006-01-02" example:"2024-04-01"`
	AAAAmount        decimal.Decimal `json:"aaa_amount" swaggertype:"number" example:"500000"`
	TSNumber         string          `json:"ts_number"`
	TSDate           string          `json:"ts_date" binding:"omitempty,datetime=2006-01-02"`
	TSAmount         decimal.Decimal `json:"ts_amount" swaggertype:"number" example:"400000"`
	AllotNumber      string          `json:"allot_number"`
	AllotDate        string          `json:"allot_date" binding:"omitempty,datetime=2006-01-02"`
	AllotAmount      decimal.Decimal `json:"allot_amount" swaggertype:"number" example:"250000"`
	AgreementNumber  string          `json:"agreement_number"`
	LOINumber        string          `json:"loi_number"`
	LOIDate          string          `json:"loi_date" binding:"omitempty,datetime=2006-01-02"`
	TimeOfCompletion string          `json:"time_of_completion" example:"12 months"`
	StartDate        string          `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	CompletionDate   string          `json:"completion_date" binding:"omitempty,datetime=2006-01-02"`
	Expenditure      decimal.Decimal `json:"expenditure" swaggertype:"number" example:"0"`
}

func optionalDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}

func (r *CreateWorkRequest) toDomain() *domain.Work {
	return &domain.Work{
		MajorHead:        r.MajorHead,
		Scheme:           r.Scheme,
		Workcode:         r.Workcode,
		Nomenclature:     r.Nomenclature,
		Classification:   r.Classification,
		AAANumber:        r.AAANumber,
		AAADate:          optionalDate(r.AAADate),
		AAAAmount:        r.AAAAmount,
		TSNumber:         r.TSNumber,
		TSDate:           optionalDate(r.TSDate),
		TSAmount:         r.TSAmount,
		AllotNumber:      r.AllotNumber,
		AllotDate:        optionalDate(r.AllotDate),
		AllotAmount:      r.AllotAmount,
		AgreementNumber:  r.AgreementNumber,
		LOINumber:        r.LOINumber,
		LOIDate:          optionalDate(r.LOIDate),
		TimeOfCompletion: r.TimeOfCompletion,
		StartDate:        optionalDate(r.StartDate),
		CompletionDate:   optionalDate(r.CompletionDate),
		Expenditure:      r.Expenditure,
	}
}

// CreateBudgetRequest represents the create budget entry request body.
type CreateBudgetRequest struct {
	BillType  string          `json:"bill_type" binding:"required" example:"Plan"`
	MajorHead string          `json:"major_head" binding:"required" example:"4215"`
	Scheme    string          `json:"scheme" binding:"required" example:"JJM"`
	Amount    decimal.Decimal `json:"amount" swaggertype:"number" example:"1000000"`
}

// AmountText accepts a JSON number or string and keeps its text, so that
// operator input such as "1,18,000" reaches the validator unchanged.
type AmountText string

// UnmarshalJSON implements json.Unmarshaler.
func (a *AmountText) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*a = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*a = AmountText(s)
		return nil
	}
	*a = AmountText(b)
	return nil
}

// BillRequest represents the compute, validate and create bill request body.
// Missing fields are reported by the bill validator, not by binding.
type BillRequest struct {
	BillType         string           `json:"bill_type" example:"Plan"`
	ContractorID     uuid.UUID        `json:"contractor_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	MajorHead        string           `json:"major_head" example:"4215"`
	Scheme           string           `json:"scheme" example:"JJM"`
	Workcode         string           `json:"workcode" example:"W-101"`
	Nomenclature     string           `json:"nomenclature" example:"Pipeline Phase II"`
	BilledAmount     *decimal.Decimal `json:"billed_amount" swaggertype:"number" example:"118000"`
	DeductPayments   decimal.Decimal  `json:"deduct_payments" swaggertype:"number" example:"0"`
	RestrictedTo     AmountText       `json:"restricted_to_amount" swaggertype:"string" example:"1,18,000"`
	IncomeTaxPercent *decimal.Decimal `json:"income_tax_percent" swaggertype:"number" example:"2.24"`
	DepositPercent   *decimal.Decimal `json:"deposit_percent" swaggertype:"number" example:"10"`
	CessPercent      *decimal.Decimal `json:"cess_percent" swaggertype:"number" example:"1"`
	CGSTPercent      *decimal.Decimal `json:"cgst_percent" swaggertype:"number" example:"0"`
	SGSTPercent      *decimal.Decimal `json:"sgst_percent" swaggertype:"number" example:"0"`
	CCBill           string           `json:"cc_bill" example:"1st"`
	FinalBill        bool             `json:"final_bill" example:"false"`
}

func (r *BillRequest) toInput() *service.BillInput {
	return &service.BillInput{
		BillType:         r.BillType,
		ContractorID:     r.ContractorID,
		MajorHead:        r.MajorHead,
		Scheme:           r.Scheme,
		Workcode:         r.Workcode,
		Nomenclature:     r.Nomenclature,
		BilledAmount:     r.BilledAmount,
		DeductPayments:   r.DeductPayments,
		RestrictedTo:     string(r.RestrictedTo),
		IncomeTaxPercent: r.IncomeTaxPercent,
		DepositPercent:   r.DepositPercent,
		CessPercent:      r.CessPercent,
		CGSTPercent:      r.CGSTPercent,
		SGSTPercent:      r.SGSTPercent,
		CCBill:           r.CCBill,
		FinalBill:        r.FinalBill,
	}
}

// --- Response Types ---

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty" example:"database not reachable"`
}

// ViolationList is the data of a VALIDATION_FAILED response.
type ViolationList struct {
	Violations []domain.Violation `json:"violations"`
}

// --- Generic Response Wrappers ---

// Response wraps a successful response with data.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}

// ValidationFailureBody wraps a 422 response.
type ValidationFailureBody struct {
	Success bool          `json:"success" example:"false"`
	Data    ViolationList `json:"data"`
	Error   *APIError     `json:"error"`
}
