package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fintrack/internal/models"
	"fintrack/internal/services"
)

// StatsHandler serves the per-user summary view.
type StatsHandler struct {
	stats services.StatsServicer
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(stats services.StatsServicer) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// MySummary returns the caller's aggregates
// @Summary     Get own summary
// @Description Total income, total expense, and net balance of the caller's
// @Description ledger, in cents plus two-decimal display strings.
// @Tags        stats
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "Summary"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /summary [get]
func (h *StatsHandler) MySummary(c *gin.Context) {
	handle, _, err := getSessionIdentity(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.stats.UserSummary(handle)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"summary": summary,
		"display": gin.H{
			"total_income":  models.FormatCents(summary.TotalIncome),
			"total_expense": models.FormatCents(summary.TotalExpense),
			"net":           models.FormatCents(summary.Net),
		},
	})
}
