package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
	"fintrack/internal/services"
)

// TransactionHandler handles the user-facing ledger requests.
type TransactionHandler struct {
	ledger services.LedgerServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(ledger services.LedgerServicer) *TransactionHandler {
	return &TransactionHandler{ledger: ledger}
}

// CreateTransactionRequest represents the request payload for recording a transaction
type CreateTransactionRequest struct {
	Kind        models.Kind `json:"kind" binding:"required,transaction_kind"`
	Amount      int64       `json:"amount" binding:"required,gt=0"`
	Category    string      `json:"category" binding:"required"`
	Description string      `json:"description" binding:"required"`
	OccurredOn  *string     `json:"occurred_on"`
}

// listQuery represents the query parameters of a user's transaction listing.
type listQuery struct {
	pagination.PageRequest
	Kind *models.Kind `form:"kind" binding:"omitempty,transaction_kind"`
}

// Create records a new transaction
// @Summary     Record a transaction
// @Description Append an income or expense entry to the caller's ledger.
// @Description Amounts are integer cents.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} models.Transaction "Transaction recorded"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /transactions [post]
func (h *TransactionHandler) Create(c *gin.Context) {
	handle, _, err := getSessionIdentity(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var occurredOn time.Time
	if req.OccurredOn != nil && *req.OccurredOn != "" {
		parsed, parseErr := parseDate(*req.OccurredOn)
		if parseErr != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "occurred_on must be YYYY-MM-DD"))
			return
		}
		occurredOn = parsed
	}

	// The owner is always the authenticated user, never a request field.
	transaction, err := h.ledger.Append(handle, req.Kind, req.Amount, req.Category, req.Description, occurredOn)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": transaction})
}

// ListMine lists the caller's transactions
// @Summary     List own transactions
// @Description List the caller's transactions, most recently recorded first,
// @Description optionally filtered by kind.
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       kind      query string false "income or expense"
// @Param       page      query int    false "Page number"
// @Param       page_size query int    false "Page size"
// @Success     200 {object} pagination.PageResponse[models.Transaction] "Transactions"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /transactions [get]
func (h *TransactionHandler) ListMine(c *gin.Context) {
	handle, _, err := getSessionIdentity(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	page, err := h.ledger.Query(services.Filter{OwnerHandle: &handle, Kind: q.Kind}, q.PageRequest)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}
