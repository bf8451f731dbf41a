package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"worksbill/internal/domain"
	"worksbill/internal/service"
)

// BudgetHandler handles budget ceiling endpoints.
type BudgetHandler struct {
	budgetService service.BudgetService
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService service.BudgetService) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// Create handles POST /api/v1/budget
// @Summary Add a budget entry
// @Tags budget
// @Accept json
// @Produce json
// @Param body body CreateBudgetRequest true "Budget entry"
// @Success 201 {object} Response{data=domain.BudgetEntry}
// @Failure 400 {object} ErrorResponseBody
// @Failure 422 {object} ValidationFailureBody
// @Router /budget [post]
func (h *BudgetHandler) Create(c *gin.Context) {
	var req CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", bindingMessage(err))
		return
	}
	billType, ok := domain.ParseBillType(req.BillType)
	if !ok {
		HandleError(c, domain.ErrInvalidBillType)
		return
	}

	entry, err := h.budgetService.Create(c.Request.Context(), &domain.BudgetEntry{
		BillType:  billType,
		MajorHead: req.MajorHead,
		Scheme:    req.Scheme,
		Amount:    req.Amount,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, entry)
}

// List handles GET /api/v1/budget
// @Summary List budget entries for a bill type
// @Tags budget
// @Produce json
// @Param bill_type query string true "Plan or Non Plan"
// @Success 200 {object} Response{data=[]domain.BudgetEntry}
// @Failure 400 {object} ErrorResponseBody
// @Router /budget [get]
func (h *BudgetHandler) List(c *gin.Context) {
	billType, ok := domain.ParseBillType(c.Query("bill_type"))
	if !ok {
		HandleError(c, domain.ErrInvalidBillType)
		return
	}

	entries, err := h.budgetService.List(c.Request.Context(), billType)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, entries)
}

// Options handles GET /api/v1/budget/options
// @Summary Major head and scheme options
// @Description Plan bills list schemes, Non Plan bills list detailed heads; scheme_label says which.
// @Tags budget
// @Produce json
// @Param bill_type query string true "Plan or Non Plan"
// @Param major_head query string false "Selected major head"
// @Success 200 {object} Response{data=service.BudgetOptions}
// @Failure 400 {object} ErrorResponseBody
// @Router /budget/options [get]
func (h *BudgetHandler) Options(c *gin.Context) {
	billType, ok := domain.ParseBillType(c.Query("bill_type"))
	if !ok {
		HandleError(c, domain.ErrInvalidBillType)
		return
	}

	opts, err := h.budgetService.Options(c.Request.Context(), billType, c.Query("major_head"))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, opts)
}
