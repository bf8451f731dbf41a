package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"worksbill/internal/domain"
	"worksbill/internal/service"
)

// ContractorHandler handles contractor registry endpoints.
type ContractorHandler struct {
	contractorService service.ContractorService
}

// NewContractorHandler creates a new ContractorHandler.
func NewContractorHandler(contractorService service.ContractorService) *ContractorHandler {
	return &ContractorHandler{contractorService: contractorService}
}

// Create handles POST /api/v1/contractors
// @Summary Register a contractor
// @Tags contractors
// @Accept json
// @Produce json
// @Param body body CreateContractorRequest true "Contractor"
// @Success 201 {object} Response{data=domain.Contractor}
// @Failure 400 {object} ErrorResponseBody
// @Failure 422 {object} ValidationFailureBody
// @Router /contractors [post]
func (h *ContractorHandler) Create(c *gin.Context) {
	var req CreateContractorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", bindingMessage(err))
		return
	}

	contractor, err := h.contractorService.Create(c.Request.Context(), &service.CreateContractorInput{
		Name:          req.Name,
		Parentage:     req.Parentage,
		Resident:      req.Resident,
		Registration:  req.Registration,
		Class:         domain.ContractorClass(req.Class),
		PAN:           req.PAN,
		GSTIN:         req.GSTIN,
		AccountNumber: req.AccountNumber,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, contractor)
}

// List handles GET /api/v1/contractors
// @Summary List contractors
// @Tags contractors
// @Produce json
// @Param offset query int false "Pagination offset" default(0)
// @Param limit query int false "Pagination limit" default(20)
// @Success 200 {object} Response{data=[]domain.Contractor,meta=PagMeta}
// @Router /contractors [get]
func (h *ContractorHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)

	contractors, total, err := h.contractorService.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, contractors, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/contractors/:id
// @Summary Get a contractor
// @Tags contractors
// @Produce json
// @Param id path string true "Contractor ID"
// @Success 200 {object} Response{data=domain.Contractor}
// @Failure 404 {object} ErrorResponseBody
// @Router /contractors/{id} [get]
func (h *ContractorHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid contractor ID")
		return
	}

	contractor, err := h.contractorService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, contractor)
}
