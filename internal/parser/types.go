package parser

import "github.com/daehan-lim/moneychat/internal/models"

// ParsedTransaction is one transaction recognized in the model output,
// pending user review before persistence.
type ParsedTransaction struct {
	Date              string `json:"date"`
	Type              string `json:"type"`
	Category          string `json:"category"`
	Description       string `json:"description"`
	Amount            int64  `json:"amount"`
	IsRecurring       bool   `json:"isRecurring,omitempty"`
	DayOfMonth        int    `json:"dayOfMonth,omitempty"`
	SuggestedCategory string `json:"suggestedCategory,omitempty"`
}

// ParsedAccount is one asset/debt record recognized in the model output.
// Balance is the stated magnitude; sign is implied by Type.
type ParsedAccount struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	SubType string `json:"subType"`
	Icon    string `json:"icon"`
	Balance int64  `json:"balance"`
}

// LLMCategory is the slice of a user category handed to the prompt builder.
type LLMCategory struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// ParseResponse is the tagged result of the text/image entry points.
// Errors never escape the pipeline as Go errors; callers check Success.
type ParseResponse struct {
	Success      bool                `json:"success"`
	Transactions []ParsedTransaction `json:"transactions,omitempty"`
	Error        string              `json:"error,omitempty"`
}

// Intent values for the unified parse path.
const (
	IntentTransaction = "transaction"
	IntentAccount     = "account"
)

// UnifiedParseResponse is the envelope of the unified parse path, allowing a
// single input to split into transactions and account updates.
type UnifiedParseResponse struct {
	Success      bool                `json:"success"`
	Intent       string              `json:"intent,omitempty"`
	Transactions []ParsedTransaction `json:"transactions,omitempty"`
	Accounts     []ParsedAccount     `json:"accounts,omitempty"`
	Decisions    []MatchDecision     `json:"decisions,omitempty"`
	Error        string              `json:"error,omitempty"`
}

// Reconciler actions.
const (
	ActionCreate = "create"
	ActionUpdate = "update"
)

// MatchDecision pairs a parsed account with the existing account it resolved
// to, if any. The action is a default suggestion the user may flip.
type MatchDecision struct {
	Parsed  ParsedAccount   `json:"parsed"`
	Matched *models.Account `json:"matched_account"`
	Action  string          `json:"action"`
}
