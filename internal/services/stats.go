package services

import "fintrack/internal/models"

// Summary holds per-user aggregates in cents.
type Summary struct {
	TotalIncome  int64 `json:"total_income"`
	TotalExpense int64 `json:"total_expense"`
	Net          int64 `json:"net"`
}

// SystemSummary holds system-wide aggregates across all users.
type SystemSummary struct {
	UserCount        int64 `json:"user_count"`
	TransactionCount int64 `json:"transaction_count"`
	NetTotal         int64 `json:"net_total"`
}

// Summarize folds a transaction sequence into income, expense, and net
// totals. An empty input yields all zeros.
func Summarize(transactions []models.Transaction) Summary {
	var s Summary
	for _, t := range transactions {
		switch t.Kind {
		case models.KindIncome:
			s.TotalIncome += t.Amount
		case models.KindExpense:
			s.TotalExpense += t.Amount
		}
	}
	s.Net = s.TotalIncome - s.TotalExpense
	return s
}

// SummarizeSystem folds all transactions plus the user count into the
// system-wide summary.
func SummarizeSystem(transactions []models.Transaction, userCount int64) SystemSummary {
	return SystemSummary{
		UserCount:        userCount,
		TransactionCount: int64(len(transactions)),
		NetTotal:         Summarize(transactions).Net,
	}
}
