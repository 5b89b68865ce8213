package handler

import (
	"net/http"

	"github.com/felippedeabreu/emocaoalunov3/internal/models"
	"github.com/felippedeabreu/emocaoalunov3/internal/service"
	"github.com/felippedeabreu/emocaoalunov3/pkg/response"
	"github.com/gin-gonic/gin"
)

// VizHandler handles HTTP requests for chart data
type VizHandler struct {
	service *service.VizService
}

// NewVizHandler creates a new visualization handler
func NewVizHandler(service *service.VizService) *VizHandler {
	return &VizHandler{service: service}
}

// Distribution handles GET /api/v1/viz/distribution
func (h *VizHandler) Distribution(c *gin.Context) {
	var filter models.RecordFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}

	counts, err := h.service.Distribution(filter)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to compute distribution", err)
		return
	}
	response.Success(c, counts)
}

// Scatter handles GET /api/v1/viz/scatter
func (h *VizHandler) Scatter(c *gin.Context) {
	var filter models.RecordFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}

	points, err := h.service.Scatter(filter)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to build scatter data", err)
		return
	}
	response.Success(c, gin.H{
		"data":  points,
		"count": len(points),
	})
}

// Parallel handles GET /api/v1/viz/parallel
func (h *VizHandler) Parallel(c *gin.Context) {
	var filter models.RecordFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}

	coords, err := h.service.Parallel(filter)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to build parallel coordinates", err)
		return
	}
	response.Success(c, coords)
}
