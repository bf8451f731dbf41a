package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"worksbill/internal/domain"
	"worksbill/internal/service"
)

// WorkHandler handles sanctioned-work endpoints.
type WorkHandler struct {
	workService service.WorkService
}

// NewWorkHandler creates a new WorkHandler.
func NewWorkHandler(workService service.WorkService) *WorkHandler {
	return &WorkHandler{workService: workService}
}

// Create handles POST /api/v1/works
// @Summary Create a work
// @Tags works
// @Accept json
// @Produce json
// @Param body body CreateWorkRequest true "Work"
// @Success 201 {object} Response{data=domain.Work}
// @Failure 400 {object} ErrorResponseBody
// @Failure 422 {object} ValidationFailureBody
// @Router /works [post]
func (h *WorkHandler) Create(c *gin.Context) {
	var req CreateWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", bindingMessage(err))
		return
	}

	work, err := h.workService.Create(c.Request.Context(), req.toDomain())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, work)
}

// List handles GET /api/v1/works
// @Summary List works
// @Tags works
// @Produce json
// @Param offset query int false "Pagination offset" default(0)
// @Param limit query int false "Pagination limit" default(20)
// @Success 200 {object} Response{data=[]domain.Work,meta=PagMeta}
// @Router /works [get]
func (h *WorkHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)

	works, total, err := h.workService.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, works, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/works/:id
// @Summary Get a work
// @Tags works
// @Produce json
// @Param id path string true "Work ID"
// @Success 200 {object} Response{data=domain.Work}
// @Failure 404 {object} ErrorResponseBody
// @Router /works/{id} [get]
func (h *WorkHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid work ID")
		return
	}

	work, err := h.workService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, work)
}

// Options handles GET /api/v1/works/options
// @Summary Workcode and nomenclature options
// @Description Lists the workcodes under a major head and scheme and, when a workcode is given, its nomenclatures. Non Plan bills get empty lists.
// @Tags works
// @Produce json
// @Param bill_type query string true "Plan or Non Plan"
// @Param major_head query string false "Major head"
// @Param scheme query string false "Scheme"
// @Param workcode query string false "Workcode"
// @Success 200 {object} Response{data=service.WorkOptions}
// @Failure 400 {object} ErrorResponseBody
// @Router /works/options [get]
func (h *WorkHandler) Options(c *gin.Context) {
	billType, ok := domain.ParseBillType(c.Query("bill_type"))
	if !ok {
		HandleError(c, domain.ErrInvalidBillType)
		return
	}

	opts, err := h.workService.Options(c.Request.Context(), service.WorkOptionsQuery{
		BillType:  billType,
		MajorHead: c.Query("major_head"),
		Scheme:    c.Query("scheme"),
		Workcode:  c.Query("workcode"),
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, opts)
}
