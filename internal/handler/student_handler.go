package handler

import (
	"net/http"

	"github.com/felippedeabreu/emocaoalunov3/internal/models"
	"github.com/felippedeabreu/emocaoalunov3/internal/repository"
	"github.com/felippedeabreu/emocaoalunov3/pkg/response"
	"github.com/gin-gonic/gin"
)

// StudentHandler handles HTTP requests for student records
type StudentHandler struct {
	repo *repository.StudentRepository
}

// NewStudentHandler creates a new student handler
func NewStudentHandler(repo *repository.StudentRepository) *StudentHandler {
	return &StudentHandler{repo: repo}
}

// List handles GET /api/v1/records
func (h *StudentHandler) List(c *gin.Context) {
	var filter models.RecordFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 100
	}

	records, total, err := h.repo.List(filter)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list records", err)
		return
	}

	totalPages := int((total + int64(filter.PageSize) - 1) / int64(filter.PageSize))
	response.Success(c, models.StudentRecordsResponse{
		Data:       records,
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages,
	})
}

// Emotions handles GET /api/v1/emotions
func (h *StudentHandler) Emotions(c *gin.Context) {
	emotions, err := h.repo.Emotions()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list emotions", err)
		return
	}
	response.Success(c, emotions)
}

// Regions handles GET /api/v1/regions
func (h *StudentHandler) Regions(c *gin.Context) {
	regions, err := h.repo.Regions()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list regions", err)
		return
	}
	response.Success(c, regions)
}
