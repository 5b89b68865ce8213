package handler

import (
	"net/http"

	"github.com/felippedeabreu/emocaoalunov3/internal/models"
	"github.com/felippedeabreu/emocaoalunov3/internal/service"
	"github.com/felippedeabreu/emocaoalunov3/pkg/response"
	"github.com/gin-gonic/gin"
)

// MapHandler handles HTTP requests for the geographic map view
type MapHandler struct {
	service *service.MapService
}

// NewMapHandler creates a new map handler
func NewMapHandler(service *service.MapService) *MapHandler {
	return &MapHandler{service: service}
}

// MapView handles GET /api/v1/viz/map
func (h *MapHandler) MapView(c *gin.Context) {
	var filter models.MapFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}

	if filter.Mode == "" {
		filter.Mode = models.MapModeBoundary
	}
	if filter.Mode != models.MapModeBounds && filter.Mode != models.MapModeBoundary {
		response.Error(c, http.StatusBadRequest, "Invalid mode, expected bounds or boundary", nil)
		return
	}

	view, err := h.service.MapView(filter)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to build map view", err)
		return
	}

	response.Success(c, view)
}

// Boundary handles GET /api/v1/region/boundary
func (h *MapHandler) Boundary(c *gin.Context) {
	doc, ok := h.service.BoundaryDocument()
	if !ok {
		response.Error(c, http.StatusNotFound, "No region boundary loaded", nil)
		return
	}
	c.Data(http.StatusOK, "application/geo+json", doc)
}
