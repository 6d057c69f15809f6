package parser

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"
)

// ValidateTransactions parses the extracted JSON text and checks every item.
// Validation is strict and fails fast: one malformed item rejects the whole
// batch. Error messages carry the 1-based item index and the violated field
// so they can be shown to the user as-is.
func ValidateTransactions(extracted string) ([]ParsedTransaction, error) {
	var items []map[string]any
	if err := json.Unmarshal([]byte(extracted), &items); err != nil {
		return nil, fmt.Errorf("응답 JSON을 해석할 수 없습니다: %w", err)
	}

	result := make([]ParsedTransaction, 0, len(items))
	for i, item := range items {
		tx, err := validateTransactionItem(i+1, item)
		if err != nil {
			return nil, err
		}
		result = append(result, tx)
	}
	return result, nil
}

func validateTransactionItem(index int, item map[string]any) (ParsedTransaction, error) {
	var tx ParsedTransaction

	for _, field := range []string{"date", "type", "category", "description", "amount"} {
		if v, ok := item[field]; !ok || v == nil {
			return tx, fmt.Errorf("항목 %d의 %s 필드가 누락되었습니다", index, field)
		}
	}

	typ := toString(item["type"])
	if typ != "income" && typ != "expense" {
		return tx, fmt.Errorf("항목 %d의 유형이 유효하지 않습니다: %v", index, item["type"])
	}

	amount, ok := item["amount"].(float64)
	if !ok || amount <= 0 || amount != math.Trunc(amount) {
		return tx, fmt.Errorf("항목 %d의 금액이 유효하지 않습니다: %v", index, item["amount"])
	}

	date := toString(item["date"])
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return tx, fmt.Errorf("항목 %d의 날짜가 유효하지 않습니다: %v", index, item["date"])
	}

	tx = ParsedTransaction{
		Date:        date,
		Type:        typ,
		Category:    toString(item["category"]),
		Description: toString(item["description"]),
		Amount:      int64(amount),
	}

	// Optional fields. isRecurring passes through only as boolean true;
	// dayOfMonth only when the model already produced a number in range.
	if rec, ok := item["isRecurring"].(bool); ok && rec {
		tx.IsRecurring = true
		if day, ok := item["dayOfMonth"].(float64); ok && day >= 1 && day <= 31 {
			tx.DayOfMonth = int(day)
		}
	}
	if suggested, ok := item["suggestedCategory"].(string); ok {
		if s := strings.TrimSpace(suggested); s != "" {
			tx.SuggestedCategory = s
		}
	}

	return tx, nil
}

// ValidateAccounts parses and checks account records, under the same strict
// whole-batch semantics as ValidateTransactions.
func ValidateAccounts(extracted string) ([]ParsedAccount, error) {
	var items []map[string]any
	if err := json.Unmarshal([]byte(extracted), &items); err != nil {
		return nil, fmt.Errorf("응답 JSON을 해석할 수 없습니다: %w", err)
	}

	result := make([]ParsedAccount, 0, len(items))
	for i, item := range items {
		acc, err := validateAccountItem(i+1, item)
		if err != nil {
			return nil, err
		}
		result = append(result, acc)
	}
	return result, nil
}

func validateAccountItem(index int, item map[string]any) (ParsedAccount, error) {
	var acc ParsedAccount

	for _, field := range []string{"name", "type", "subType", "icon", "balance"} {
		if v, ok := item[field]; !ok || v == nil {
			return acc, fmt.Errorf("항목 %d의 %s 필드가 누락되었습니다", index, field)
		}
	}

	typ := toString(item["type"])
	if typ != "asset" && typ != "debt" {
		return acc, fmt.Errorf("항목 %d의 유형이 유효하지 않습니다: %v", index, item["type"])
	}

	balance, ok := item["balance"].(float64)
	if !ok || balance < 0 || balance != math.Trunc(balance) {
		return acc, fmt.Errorf("항목 %d의 잔액이 유효하지 않습니다: %v", index, item["balance"])
	}

	return ParsedAccount{
		Name:    toString(item["name"]),
		Type:    typ,
		SubType: toString(item["subType"]),
		Icon:    toString(item["icon"]),
		Balance: int64(balance),
	}, nil
}

// ValidateUnified parses the unified-path envelope: an array of
// {intent, transactions, accounts} objects. Lists are merged across envelope
// items; the per-item rules are the same as the dedicated paths.
func ValidateUnified(extracted string) (string, []ParsedTransaction, []ParsedAccount, error) {
	var envelopes []map[string]any
	if err := json.Unmarshal([]byte(extracted), &envelopes); err != nil {
		return "", nil, nil, fmt.Errorf("응답 JSON을 해석할 수 없습니다: %w", err)
	}

	var transactions []ParsedTransaction
	var accounts []ParsedAccount

	for _, env := range envelopes {
		if raw, ok := env["transactions"].([]any); ok {
			for _, el := range raw {
				item, ok := el.(map[string]any)
				if !ok {
					return "", nil, nil, fmt.Errorf("항목 %d이(가) 객체가 아닙니다", len(transactions)+1)
				}
				tx, err := validateTransactionItem(len(transactions)+1, item)
				if err != nil {
					return "", nil, nil, err
				}
				transactions = append(transactions, tx)
			}
		}
		if raw, ok := env["accounts"].([]any); ok {
			for _, el := range raw {
				item, ok := el.(map[string]any)
				if !ok {
					return "", nil, nil, fmt.Errorf("항목 %d이(가) 객체가 아닙니다", len(accounts)+1)
				}
				acc, err := validateAccountItem(len(accounts)+1, item)
				if err != nil {
					return "", nil, nil, err
				}
				accounts = append(accounts, acc)
			}
		}
	}

	if len(transactions) == 0 && len(accounts) == 0 {
		return "", nil, nil, fmt.Errorf("인식된 항목이 없습니다")
	}

	// Mixed input keeps the transaction intent; the accounts ride along.
	intent := IntentTransaction
	if len(transactions) == 0 {
		intent = IntentAccount
	}
	return intent, transactions, accounts, nil
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
