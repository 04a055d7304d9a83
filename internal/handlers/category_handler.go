package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// CategoryHandler serves the fixed category sets used to populate selection
// inputs. The sets are compiled in; there is no service behind this handler.
type CategoryHandler struct{}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

type categoriesQuery struct {
	Kind models.Kind `form:"kind" binding:"required,transaction_kind"`
}

// List returns the categories for a kind
// @Summary     List categories
// @Description Ordered category names allowed for the given transaction kind
// @Tags        categories
// @Produce     json
// @Security    BearerAuth
// @Param       kind query string true "income or expense"
// @Success     200 {object} map[string]interface{} "Category names"
// @Failure     400 {object} ErrorResponse "Unknown kind"
// @Router      /categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	var q categoriesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"kind":       q.Kind,
		"categories": models.CategoriesFor(q.Kind),
	})
}
