package services

import (
	"time"

	"fintrack/internal/models"
	"fintrack/internal/pagination"
)

// DirectoryServicer defines the contract for the account directory.
type DirectoryServicer interface {
	RegisterUser(fullName, email, handle, password, confirmPassword string) (*models.User, error)
	LoginUser(handle, password string) (*models.User, error)
	LoginAdmin(handle, password string) (*models.Admin, error)
	FindUserByHandle(handle string) (*models.User, error)
	FindAdminByHandle(handle string) (*models.Admin, error)
	ListUsers() ([]models.User, error)
	CountUsers() (int64, error)
}

// Filter holds the optional predicates a ledger query matches against.
// Nil fields match everything.
type Filter struct {
	OwnerHandle *string
	Kind        *models.Kind
}

// LedgerServicer defines the contract for the append-only transaction store.
type LedgerServicer interface {
	Append(ownerHandle string, kind models.Kind, amount int64, category, description string, occurredOn time.Time) (*models.Transaction, error)
	Query(filter Filter, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
	All(filter Filter) ([]models.Transaction, error)
	CountAll() (int64, error)
}

// StatsServicer derives summaries from the ledger and the directory.
type StatsServicer interface {
	UserSummary(handle string) (Summary, error)
	SystemSummary() (SystemSummary, error)
}

// SessionServicer tracks the account active in this process.
type SessionServicer interface {
	Authenticate(role models.Role, handle, password string) (models.Session, error)
	Current() models.Session
	EndSession()
}
