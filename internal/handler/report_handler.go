package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"worksbill/internal/domain"
	"worksbill/internal/service"
)

// ReportHandler handles report endpoints.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// parseReportFilters extracts the from/to date range. An error response has been
// written when ok is false.
func parseReportFilters(c *gin.Context) (filters domain.ReportFilters, ok bool) {
	from, to, err := parseDateRange(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return filters, false
	}
	return domain.ReportFilters{From: from, To: to}, true
}

// PaymentRegister handles GET /api/v1/reports/payment-register
// @Summary      Payment register
// @Description  Bills in the date range, newest first
// @Tags         reports
// @Produce      json
// @Param        from query string false "Start date (YYYY-MM-DD)"
// @Param        to query string false "End date (YYYY-MM-DD)"
// @Success      200 {object} APIResponse{data=[]domain.PaymentRegisterRow}
// @Failure      400 {object} APIResponse
// @Failure      500 {object} APIResponse
// @Router       /reports/payment-register [get]
func (h *ReportHandler) PaymentRegister(c *gin.Context) {
	filters, ok := parseReportFilters(c)
	if !ok {
		return
	}

	rows, err := h.reportService.PaymentRegister(c.Request.Context(), filters)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, rows)
}

// ContractorPayments handles GET /api/v1/reports/contractor-payments
// @Summary      Contractor-wise payments
// @Description  Bill count, payable total and last payment date per payee
// @Tags         reports
// @Produce      json
// @Param        from query string false "Start date (YYYY-MM-DD)"
// @Param        to query string false "End date (YYYY-MM-DD)"
// @Success      200 {object} APIResponse{data=[]domain.ContractorPaymentRow}
// @Failure      400 {object} APIResponse
// @Failure      500 {object} APIResponse
// @Router       /reports/contractor-payments [get]
func (h *ReportHandler) ContractorPayments(c *gin.Context) {
	filters, ok := parseReportFilters(c)
	if !ok {
		return
	}

	rows, err := h.reportService.ContractorPayments(c.Request.Context(), filters)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, rows)
}

// SchemeExpenditure handles GET /api/v1/reports/scheme-expenditure
// @Summary      Scheme-wise expenditure
// @Description  Allotted, utilized and balance per scheme with utilization percent, across all works
// @Tags         reports
// @Produce      json
// @Success      200 {object} APIResponse{data=[]domain.SchemeExpenditureRow}
// @Failure      500 {object} APIResponse
// @Router       /reports/scheme-expenditure [get]
func (h *ReportHandler) SchemeExpenditure(c *gin.Context) {
	rows, err := h.reportService.SchemeExpenditure(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, rows)
}

// Deductions handles GET /api/v1/reports/deductions
// @Summary      Deduction register
// @Description  Every deduction component per bill
// @Tags         reports
// @Produce      json
// @Param        from query string false "Start date (YYYY-MM-DD)"
// @Param        to query string false "End date (YYYY-MM-DD)"
// @Success      200 {object} APIResponse{data=[]domain.DeductionRegisterRow}
// @Failure      400 {object} APIResponse
// @Failure      500 {object} APIResponse
// @Router       /reports/deductions [get]
func (h *ReportHandler) Deductions(c *gin.Context) {
	filters, ok := parseReportFilters(c)
	if !ok {
		return
	}

	rows, err := h.reportService.DeductionRegister(c.Request.Context(), filters)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, rows)
}
