package services

import (
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
)

// ledgerService is the append-only transaction store. Entries are created
// once and never updated or deleted.
type ledgerService struct {
	db        *gorm.DB
	directory DirectoryServicer
}

// NewLedgerService creates a new LedgerServicer.
func NewLedgerService(db *gorm.DB, directory DirectoryServicer) LedgerServicer {
	return &ledgerService{db: db, directory: directory}
}

// Append validates and records a new transaction. A failed append leaves the
// ledger untouched.
func (s *ledgerService) Append(ownerHandle string, kind models.Kind, amount int64, category, description string, occurredOn time.Time) (*models.Transaction, error) {
	if !kind.Valid() {
		return nil, apperrors.ErrInvalidKind
	}
	if amount <= 0 {
		return nil, apperrors.ErrInvalidAmount
	}
	category = strings.TrimSpace(category)
	if !models.ValidCategory(kind, category) {
		return nil, apperrors.ErrInvalidCategory
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, apperrors.ErrEmptyDescription
	}

	// Transactions reference users by handle, never admins.
	if _, err := s.directory.FindUserByHandle(ownerHandle); err != nil {
		return nil, err
	}

	if occurredOn.IsZero() {
		occurredOn = today()
	}

	transaction := &models.Transaction{
		OwnerHandle: ownerHandle,
		Kind:        kind,
		Amount:      amount,
		Category:    category,
		Description: description,
		OccurredOn:  occurredOn,
	}
	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transaction, nil
}

// Query returns a page of transactions matching the filter, most recently
// created first. Ties on the creation timestamp keep insertion order.
func (s *ledgerService) Query(filter Filter, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	base := applyFilter(s.db.Model(&models.Transaction{}), filter)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := base.Scopes(pagination.Paginate(page)).
		Order("created_at DESC, id ASC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// All returns every transaction matching the filter in recency order.
func (s *ledgerService) All(filter Filter) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := applyFilter(s.db.Model(&models.Transaction{}), filter).
		Order("created_at DESC, id ASC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

// CountAll returns the total number of ledger entries.
func (s *ledgerService) CountAll() (int64, error) {
	var count int64
	if err := s.db.Model(&models.Transaction{}).Count(&count).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return count, nil
}

func applyFilter(q *gorm.DB, f Filter) *gorm.DB {
	if f.OwnerHandle != nil {
		q = q.Where("owner_handle = ?", *f.OwnerHandle)
	}
	if f.Kind != nil {
		q = q.Where("kind = ?", *f.Kind)
	}
	return q
}
