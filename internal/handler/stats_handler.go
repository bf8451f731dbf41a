package handler

import (
	"github.com/gin-gonic/gin"

	"worksbill/internal/service"
)

// StatsHandler handles stats endpoints.
type StatsHandler struct {
	statsService service.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GetStats handles GET /api/v1/stats
// @Summary Dashboard statistics
// @Description Contractor and work counts, plus pending bills and billed total for the date range.
// @Tags stats
// @Produce json
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} Response{data=domain.Stats} "Aggregate statistics"
// @Failure 400 {object} ErrorResponseBody
// @Router /stats [get]
func (h *StatsHandler) GetStats(c *gin.Context) {
	filters, ok := parseReportFilters(c)
	if !ok {
		return
	}

	stats, err := h.statsService.GetStats(c.Request.Context(), filters)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, stats)
}

// ExpenditureTrend handles GET /api/v1/stats/expenditure-trend
// @Summary Daily expenditure trend
// @Description Billed amount per day for the date range, oldest first, with the period total.
// @Tags stats
// @Produce json
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} Response{data=domain.ExpenditureTrend} "Daily billed amounts"
// @Failure 400 {object} ErrorResponseBody
// @Router /stats/expenditure-trend [get]
func (h *StatsHandler) ExpenditureTrend(c *gin.Context) {
	filters, ok := parseReportFilters(c)
	if !ok {
		return
	}

	trend, err := h.statsService.ExpenditureTrend(c.Request.Context(), filters)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, trend)
}
