package handler

import (
	"net/http"

	"github.com/felippedeabreu/emocaoalunov3/internal/service"
	"github.com/felippedeabreu/emocaoalunov3/pkg/response"
	"github.com/gin-gonic/gin"
)

// DatasetHandler handles HTTP requests for dataset management
type DatasetHandler struct {
	service *service.DatasetService
}

// NewDatasetHandler creates a new dataset handler
func NewDatasetHandler(service *service.DatasetService) *DatasetHandler {
	return &DatasetHandler{service: service}
}

// Reload handles POST /api/v1/dataset/reload
func (h *DatasetHandler) Reload(c *gin.Context) {
	report, count, err := h.service.Reload()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to reload dataset", err)
		return
	}

	response.Success(c, gin.H{
		"records":     count,
		"corrections": report,
	})
}

// Corrections handles GET /api/v1/dataset/corrections
func (h *DatasetHandler) Corrections(c *gin.Context) {
	response.Success(c, h.service.LastReport())
}
