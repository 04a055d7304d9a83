package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
	"fintrack/internal/services"
)

// AdminHandler serves the system-wide views available to admin sessions.
type AdminHandler struct {
	ledger    services.LedgerServicer
	stats     services.StatsServicer
	directory services.DirectoryServicer
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(ledger services.LedgerServicer, stats services.StatsServicer, directory services.DirectoryServicer) *AdminHandler {
	return &AdminHandler{ledger: ledger, stats: stats, directory: directory}
}

// adminListQuery represents the admin transaction listing filters.
type adminListQuery struct {
	pagination.PageRequest
	Handle *string      `form:"handle"`
	Kind   *models.Kind `form:"kind" binding:"omitempty,transaction_kind"`
}

// ListTransactions lists transactions across all users
// @Summary     List all transactions
// @Description System-wide transaction listing with optional owner and kind
// @Description filters, most recently recorded first.
// @Tags        admin
// @Produce     json
// @Security    BearerAuth
// @Param       handle    query string false "Owner handle"
// @Param       kind      query string false "income or expense"
// @Param       page      query int    false "Page number"
// @Param       page_size query int    false "Page size"
// @Success     200 {object} pagination.PageResponse[models.Transaction] "Transactions"
// @Failure     403 {object} ErrorResponse "Not an admin session"
// @Router      /admin/transactions [get]
func (h *AdminHandler) ListTransactions(c *gin.Context) {
	var q adminListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	// An empty handle filter means all users.
	filter := services.Filter{Kind: q.Kind}
	if q.Handle != nil && *q.Handle != "" {
		filter.OwnerHandle = q.Handle
	}

	page, err := h.ledger.Query(filter, q.PageRequest)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// SystemSummary returns system-wide aggregates
// @Summary     Get system summary
// @Description User count, transaction count, and net total across all users
// @Tags        admin
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "System summary"
// @Failure     403 {object} ErrorResponse "Not an admin session"
// @Router      /admin/summary [get]
func (h *AdminHandler) SystemSummary(c *gin.Context) {
	summary, err := h.stats.SystemSummary()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"summary": summary,
		"display": gin.H{
			"net_total": models.FormatCents(summary.NetTotal),
		},
	})
}

// ListUsers lists all registered users
// @Summary     List users
// @Description Directory listing used to populate the admin dashboard's
// @Description owner filter.
// @Tags        admin
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "Users"
// @Failure     403 {object} ErrorResponse "Not an admin session"
// @Router      /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.directory.ListUsers()
	if err != nil {
		respondWithError(c, err)
		return
	}

	out := make([]gin.H, 0, len(users))
	for _, u := range users {
		out = append(out, gin.H{
			"handle":    u.Handle,
			"full_name": u.FullName,
			"email":     u.Email,
			"join_date": u.JoinDate.Format("2006-01-02"),
		})
	}
	c.JSON(http.StatusOK, gin.H{"users": out})
}
