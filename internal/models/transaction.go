package models

import "time"

// Kind classifies a transaction as money in or money out.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// Valid reports whether k is a known transaction kind.
func (k Kind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

// Transaction is one entry in the append-only ledger. Entries are never
// updated or deleted. Amounts are stored in cents to avoid floating-point
// drift; rounding to two decimals happens only when formatting.
//
// The integer primary key doubles as the insertion-order tiebreak when
// listing by recency.
type Transaction struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	OwnerHandle string    `gorm:"index;not null" json:"owner_handle"`
	Kind        Kind      `gorm:"not null" json:"kind"`
	Amount      int64     `gorm:"not null" json:"amount"`
	Category    string    `gorm:"not null" json:"category"`
	Description string    `gorm:"not null" json:"description"`
	OccurredOn  time.Time `gorm:"not null" json:"occurred_on"`
	CreatedAt   time.Time `json:"created_at"`
}
