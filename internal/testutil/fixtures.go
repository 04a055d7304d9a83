package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"fintrack/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique handle.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	return CreateTestUserWithHandle(t, db, fmt.Sprintf("user%d", nextID()))
}

// CreateTestUserWithHandle creates a user with the given handle. The password
// is always "password123".
func CreateTestUserWithHandle(t *testing.T, db *gorm.DB, handle string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Handle:       handle,
		PasswordHash: string(hash),
		FullName:     "Test " + handle,
		Email:        fmt.Sprintf("%s%d@test.com", handle, nextID()),
		JoinDate:     time.Now().UTC().Truncate(24 * time.Hour),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestAdmin creates an admin with the given handle and password
// "password123".
func CreateTestAdmin(t *testing.T, db *gorm.DB, handle string) *models.Admin {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	admin := &models.Admin{
		Handle:       handle,
		PasswordHash: string(hash),
		DisplayName:  handle + " (Admin)",
	}
	if err := db.Create(admin).Error; err != nil {
		t.Fatalf("failed to create test admin: %v", err)
	}
	return admin
}

// CreateTestTransaction inserts a ledger entry directly with an explicit
// creation timestamp, so recency ordering is deterministic in tests.
func CreateTestTransaction(t *testing.T, db *gorm.DB, ownerHandle string, kind models.Kind, amount int64, createdAt time.Time) *models.Transaction {
	t.Helper()

	category := "Salary"
	if kind == models.KindExpense {
		category = "Food"
	}
	transaction := &models.Transaction{
		OwnerHandle: ownerHandle,
		Kind:        kind,
		Amount:      amount,
		Category:    category,
		Description: fmt.Sprintf("test entry %d", nextID()),
		OccurredOn:  createdAt.Truncate(24 * time.Hour),
		CreatedAt:   createdAt,
	}
	if err := db.Create(transaction).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return transaction
}
