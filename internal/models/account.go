package models

import "time"

type AccountType string

const (
	AccountTypeAsset AccountType = "asset"
	AccountTypeDebt  AccountType = "debt"
)

// SubType is free text; these are the values the parser is told to use.
const (
	AccountSubTypeBank       = "bank"
	AccountSubTypeCash       = "cash"
	AccountSubTypeSavings    = "savings"
	AccountSubTypeInvestment = "investment"
	AccountSubTypeCreditCard = "credit_card"
	AccountSubTypeLoan       = "loan"
	AccountSubTypeOther      = "other"
)

type Account struct {
	AccountID int         `json:"account_id"`
	UserID    int64       `json:"user_id"`
	Name      string      `json:"name"`
	Type      AccountType `json:"type"`
	SubType   string      `json:"sub_type"`
	Icon      string      `json:"icon"`
	Balance   int64       `json:"balance"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
