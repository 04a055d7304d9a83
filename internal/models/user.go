package models

import "time"

// User represents a regular account in the directory. Users are immutable
// after signup; the handle is the login identifier and the key transactions
// reference.
type User struct {
	Base
	Handle       string    `gorm:"uniqueIndex;not null" json:"handle"`
	PasswordHash string    `gorm:"not null" json:"-"`
	FullName     string    `gorm:"not null" json:"full_name"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	JoinDate     time.Time `gorm:"not null" json:"join_date"`
}

// Admin represents an administrator account. Admins live in their own table
// because admin handles form a separate namespace: a user and an admin may
// share the same handle.
type Admin struct {
	Base
	Handle       string `gorm:"uniqueIndex;not null" json:"handle"`
	PasswordHash string `gorm:"not null" json:"-"`
	DisplayName  string `gorm:"not null" json:"display_name"`
}
