package models

import "time"

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

type Transaction struct {
	TransactionID   int             `json:"transaction_id"`
	UserID          int64           `json:"user_id"`
	CategoryID      *int            `json:"category_id"`
	Type            TransactionType `json:"type"`
	Amount          int64           `json:"amount"`
	Description     string          `json:"description"`
	TransactionDate time.Time       `json:"transaction_date"`
	IsRecurring     bool            `json:"is_recurring"`
	DayOfMonth      *int            `json:"day_of_month"`
	CreatedAt       time.Time       `json:"created_at"`
}
