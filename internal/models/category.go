package models

type Category struct {
	CategoryID   int             `json:"category_id"`
	UserID       int64           `json:"user_id"`
	CategoryName string          `json:"category_name"`
	Type         TransactionType `json:"type"`
	UsageCount   int             `json:"usage_count"`
}

// Fallback categories the model is instructed to use when nothing fits.
const (
	CategoryOtherExpense = "기타 지출"
	CategoryOtherIncome  = "기타 수입"
)

// DefaultCategories is the category set seeded for a new user.
func DefaultCategories() []Category {
	names := []struct {
		name string
		typ  TransactionType
	}{
		{"식비", TransactionTypeExpense},
		{"카페/간식", TransactionTypeExpense},
		{"교통", TransactionTypeExpense},
		{"주거/통신", TransactionTypeExpense},
		{"쇼핑", TransactionTypeExpense},
		{"의료/건강", TransactionTypeExpense},
		{"문화/여가", TransactionTypeExpense},
		{"구독", TransactionTypeExpense},
		{CategoryOtherExpense, TransactionTypeExpense},
		{"급여", TransactionTypeIncome},
		{"용돈", TransactionTypeIncome},
		{"이자/배당", TransactionTypeIncome},
		{CategoryOtherIncome, TransactionTypeIncome},
	}

	categories := make([]Category, 0, len(names))
	for _, n := range names {
		categories = append(categories, Category{CategoryName: n.name, Type: n.typ})
	}
	return categories
}
