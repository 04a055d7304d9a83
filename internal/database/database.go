// Package database manages the in-memory SQLite store backing the ledger.
// The store is deliberately ephemeral: the tracker keeps no state across
// process restarts, so the schema is created fresh at every boot.
package database

import (
	"fmt"

	"fintrack/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// allModels is the list of GORM models migrated at startup.
var allModels = []interface{}{
	&models.User{},
	&models.Admin{},
	&models.Transaction{},
}

// Manager owns the database handle.
type Manager struct {
	db *gorm.DB
}

// NewManager opens a process-local in-memory SQLite database. The shared
// cache keeps all connections of the pool on the same store.
func NewManager() (*Manager, error) {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}
	// A single connection serializes the check-then-write paths (handle and
	// email uniqueness, ledger appends) under concurrent requests.
	sqlDB.SetMaxOpenConns(1)

	return &Manager{db: db}, nil
}

// Migrate creates the schema for all models.
func (m *Manager) Migrate() error {
	if err := m.db.AutoMigrate(allModels...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// DB returns the underlying GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}
