package handlers

import (
	"errors"
	"net/http"
	"strconv"

	expertRepo "bookexpert/database/repository/expert"
	"bookexpert/services/expert"
	"bookexpert/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ExpertHandler exposes the expert directory over HTTP.
type ExpertHandler struct {
	Service expert.ExpertService
}

// NewExpertHandler creates an ExpertHandler.
func NewExpertHandler(svc expert.ExpertService) *ExpertHandler {
	return &ExpertHandler{Service: svc}
}

// ListExpertsHandler handles GET /api/experts with page, limit, search and
// category query parameters.
func (h *ExpertHandler) ListExpertsHandler(c *gin.Context) {
	page, _ := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "10"), 10, 64)

	q := expertRepo.Query{
		Page:     page,
		Limit:    limit,
		Search:   c.Query("search"),
		Category: c.Query("category"),
	}
	result, err := h.Service.List(c.Request.Context(), q)
	if err != nil {
		zap.L().Error("failed to list experts", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Server Error", "failed to fetch experts")
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetExpertByIDHandler handles GET /api/experts/:id.
func (h *ExpertHandler) GetExpertByIDHandler(c *gin.Context) {
	exp, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, expertRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Not Found", "Expert not found")
			return
		}
		zap.L().Error("failed to fetch expert", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Server Error", "failed to fetch expert")
		return
	}
	c.JSON(http.StatusOK, exp)
}
