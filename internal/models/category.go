package models

// Fixed category sets, one per transaction kind. Order matters: it is the
// order selection inputs present them in.
var (
	incomeCategories = []string{
		"Salary", "Freelance", "Investment", "Business", "Gift", "Other Income",
	}
	expenseCategories = []string{
		"Food", "Transportation", "Housing", "Utilities", "Entertainment",
		"Healthcare", "Shopping", "Education", "Other Expense",
	}
)

// CategoriesFor returns the ordered category names allowed for a kind.
// Unknown kinds yield nil.
func CategoriesFor(kind Kind) []string {
	switch kind {
	case KindIncome:
		return incomeCategories
	case KindExpense:
		return expenseCategories
	}
	return nil
}

// ValidCategory reports whether category belongs to the set for kind.
func ValidCategory(kind Kind, category string) bool {
	for _, c := range CategoriesFor(kind) {
		if c == category {
			return true
		}
	}
	return false
}
