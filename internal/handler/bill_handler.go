package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"worksbill/internal/domain"
	"worksbill/internal/service"
)

// BillHandler handles bill computation and submission endpoints.
type BillHandler struct {
	billService service.BillService
}

// NewBillHandler creates a new BillHandler.
func NewBillHandler(billService service.BillService) *BillHandler {
	return &BillHandler{billService: billService}
}

func bindBill(c *gin.Context) (*service.BillInput, bool) {
	var req BillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", bindingMessage(err))
		return nil, false
	}
	return req.toInput(), true
}

// Compute handles POST /api/v1/bills/compute
// @Summary Preview deductions
// @Description Applies default rates and GST gating and returns every deduction, the net amount and its words. Nothing is stored.
// @Tags bills
// @Accept json
// @Produce json
// @Param body body BillRequest true "Bill form"
// @Success 200 {object} Response{data=service.ComputeResult}
// @Failure 400 {object} ErrorResponseBody
// @Failure 422 {object} ValidationFailureBody
// @Router /bills/compute [post]
func (h *BillHandler) Compute(c *gin.Context) {
	input, ok := bindBill(c)
	if !ok {
		return
	}

	result, err := h.billService.Compute(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// Validate handles POST /api/v1/bills/validate
// @Summary Validate a bill
// @Description Runs every bill rule and returns the result whether or not it passed.
// @Tags bills
// @Accept json
// @Produce json
// @Param body body BillRequest true "Bill form"
// @Success 200 {object} Response{data=object} "Validation result with violations, summary and field statuses"
// @Failure 400 {object} ErrorResponseBody
// @Router /bills/validate [post]
func (h *BillHandler) Validate(c *gin.Context) {
	input, ok := bindBill(c)
	if !ok {
		return
	}

	result, err := h.billService.Validate(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// Create handles POST /api/v1/bills
// @Summary Submit a bill
// @Description Re-validates, computes and stores the bill. Plan bills add the billed amount to the work's expenditure in the same transaction.
// @Tags bills
// @Accept json
// @Produce json
// @Param body body BillRequest true "Bill form"
// @Success 201 {object} Response{data=domain.Bill}
// @Failure 400 {object} ErrorResponseBody
// @Failure 409 {object} ErrorResponseBody "Work ceiling changed during submission"
// @Failure 422 {object} ValidationFailureBody
// @Router /bills [post]
func (h *BillHandler) Create(c *gin.Context) {
	input, ok := bindBill(c)
	if !ok {
		return
	}

	bill, err := h.billService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, bill)
}

// List handles GET /api/v1/bills
// @Summary List bills
// @Tags bills
// @Produce json
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Param offset query int false "Pagination offset" default(0)
// @Param limit query int false "Pagination limit" default(20)
// @Success 200 {object} Response{data=[]domain.Bill,meta=PagMeta}
// @Failure 400 {object} ErrorResponseBody
// @Router /bills [get]
func (h *BillHandler) List(c *gin.Context) {
	from, to, err := parseDateRange(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	offset, limit := parsePagination(c)

	bills, total, err := h.billService.List(c.Request.Context(), domain.BillFilters{
		From: from, To: to, Offset: offset, Limit: limit,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, bills, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/bills/:id
// @Summary Get a bill
// @Tags bills
// @Produce json
// @Param id path string true "Bill ID"
// @Success 200 {object} Response{data=domain.Bill}
// @Failure 404 {object} ErrorResponseBody
// @Router /bills/{id} [get]
func (h *BillHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid bill ID")
		return
	}

	bill, err := h.billService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, bill)
}
