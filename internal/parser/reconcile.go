package parser

import "github.com/daehan-lim/moneychat/internal/models"

// Reconcile decides, for each parsed account, whether it is an update to an
// existing account or a new one. Exact (name, type) match wins; a name-only
// match ignoring type is second; otherwise create. Matching is case-sensitive
// string equality, no fuzzy matching. Items are reconciled independently:
// two parsed items may resolve to the same existing account, and no
// deduplication happens here. The returned actions are default suggestions
// the user confirms or flips before anything is persisted.
func Reconcile(parsed []ParsedAccount, existing []models.Account) []MatchDecision {
	decisions := make([]MatchDecision, 0, len(parsed))
	for _, item := range parsed {
		matched := findMatch(item, existing)

		action := ActionCreate
		if matched != nil {
			action = ActionUpdate
		}
		decisions = append(decisions, MatchDecision{
			Parsed:  item,
			Matched: matched,
			Action:  action,
		})
	}
	return decisions
}

func findMatch(item ParsedAccount, existing []models.Account) *models.Account {
	for i := range existing {
		if existing[i].Name == item.Name && string(existing[i].Type) == item.Type {
			return &existing[i]
		}
	}
	for i := range existing {
		if existing[i].Name == item.Name {
			return &existing[i]
		}
	}
	return nil
}
