package handler

import (
	"net/http"

	"github.com/felippedeabreu/emocaoalunov3/internal/models"
	"github.com/felippedeabreu/emocaoalunov3/internal/service"
	"github.com/felippedeabreu/emocaoalunov3/pkg/response"
	"github.com/gin-gonic/gin"
)

// StatsHandler handles HTTP requests for descriptive statistics
type StatsHandler struct {
	service *service.StatsService
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(service *service.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

// Describe handles GET /api/v1/stats/describe
func (h *StatsHandler) Describe(c *gin.Context) {
	var filter models.RecordFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}

	summary, err := h.service.Describe(filter)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to compute statistics", err)
		return
	}
	response.Success(c, summary)
}

// Dispersion handles GET /api/v1/stats/dispersion
func (h *StatsHandler) Dispersion(c *gin.Context) {
	dispersion, err := h.service.RegionDispersion()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to compute dispersion", err)
		return
	}
	response.Success(c, dispersion)
}
