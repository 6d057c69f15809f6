package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTransactions_Valid(t *testing.T) {
	raw := `[
		{"date":"2025-06-01","type":"expense","category":"식비","description":"김치찌개","amount":9000},
		{"date":"2025-06-01","type":"income","category":"급여","description":"월급","amount":3000000}
	]`

	txs, err := ValidateTransactions(raw)
	require.NoError(t, err)
	require.Len(t, txs, 2)

	assert.Equal(t, "2025-06-01", txs[0].Date)
	assert.Equal(t, "expense", txs[0].Type)
	assert.Equal(t, "식비", txs[0].Category)
	assert.Equal(t, "김치찌개", txs[0].Description)
	assert.Equal(t, int64(9000), txs[0].Amount)
	assert.Equal(t, "income", txs[1].Type)
}

func TestValidateTransactions_AmountInvalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"zero amount", `[{"date":"2025-06-01","type":"expense","category":"식비","description":"a","amount":9000},
			{"date":"2025-06-01","type":"expense","category":"식비","description":"b","amount":0}]`},
		{"negative amount", `[{"date":"2025-06-01","type":"expense","category":"식비","description":"a","amount":9000},
			{"date":"2025-06-01","type":"expense","category":"식비","description":"b","amount":-100}]`},
		{"string amount", `[{"date":"2025-06-01","type":"expense","category":"식비","description":"a","amount":9000},
			{"date":"2025-06-01","type":"expense","category":"식비","description":"b","amount":"9000"}]`},
		{"fractional amount", `[{"date":"2025-06-01","type":"expense","category":"식비","description":"a","amount":9000},
			{"date":"2025-06-01","type":"expense","category":"식비","description":"b","amount":9000.5}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txs, err := ValidateTransactions(tt.raw)
			require.Error(t, err)
			assert.Nil(t, txs, "whole batch must be rejected")
			assert.Contains(t, err.Error(), "항목 2")
			assert.Contains(t, err.Error(), "금액")
		})
	}
}

func TestValidateTransactions_MissingField(t *testing.T) {
	raw := `[{"date":"2025-06-01","type":"expense","description":"커피","amount":4500}]`

	_, err := ValidateTransactions(raw)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "항목 1")
	assert.Contains(t, err.Error(), "category")
}

func TestValidateTransactions_TypeInvalid(t *testing.T) {
	raw := `[{"date":"2025-06-01","type":"transfer","category":"식비","description":"a","amount":100}]`

	_, err := ValidateTransactions(raw)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "항목 1")
	assert.Contains(t, err.Error(), "유형")
}

func TestValidateTransactions_DateInvalid(t *testing.T) {
	raw := `[{"date":"2025-13-40","type":"expense","category":"식비","description":"a","amount":100}]`

	_, err := ValidateTransactions(raw)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "날짜")
}

func TestValidateTransactions_OptionalFields(t *testing.T) {
	raw := `[
		{"date":"2025-06-01","type":"expense","category":"구독","description":"넷플릭스","amount":17000,
		 "isRecurring":true,"dayOfMonth":15,"suggestedCategory":"  OTT  "},
		{"date":"2025-06-01","type":"expense","category":"식비","description":"점심","amount":9000,
		 "isRecurring":false,"dayOfMonth":10,"suggestedCategory":"   "},
		{"date":"2025-06-01","type":"expense","category":"구독","description":"유튜브","amount":10000,
		 "isRecurring":true,"dayOfMonth":"15"}
	]`

	txs, err := ValidateTransactions(raw)
	require.NoError(t, err)
	require.Len(t, txs, 3)

	assert.True(t, txs[0].IsRecurring)
	assert.Equal(t, 15, txs[0].DayOfMonth)
	assert.Equal(t, "OTT", txs[0].SuggestedCategory, "suggestedCategory is trimmed")

	assert.False(t, txs[1].IsRecurring, "isRecurring false is not copied")
	assert.Zero(t, txs[1].DayOfMonth, "dayOfMonth ignored without isRecurring")
	assert.Empty(t, txs[1].SuggestedCategory, "blank suggestedCategory dropped")

	assert.True(t, txs[2].IsRecurring)
	assert.Zero(t, txs[2].DayOfMonth, "non-numeric dayOfMonth left unset")
}

func TestValidateTransactions_NotJSON(t *testing.T) {
	_, err := ValidateTransactions("죄송합니다, 파싱할 수 없습니다")
	require.Error(t, err)
}

func TestValidateAccounts(t *testing.T) {
	raw := `[
		{"name":"카카오뱅크","type":"asset","subType":"bank","icon":"🏦","balance":500000},
		{"name":"신한카드","type":"debt","subType":"credit_card","icon":"💳","balance":120000}
	]`

	accs, err := ValidateAccounts(raw)
	require.NoError(t, err)
	require.Len(t, accs, 2)
	assert.Equal(t, "카카오뱅크", accs[0].Name)
	assert.Equal(t, "asset", accs[0].Type)
	assert.Equal(t, int64(500000), accs[0].Balance)
	assert.Equal(t, "debt", accs[1].Type)
}

func TestValidateAccounts_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		errPart string
	}{
		{"bad type", `[{"name":"a","type":"loan","subType":"loan","icon":"x","balance":1}]`, "유형"},
		{"negative balance", `[{"name":"a","type":"debt","subType":"loan","icon":"x","balance":-5}]`, "잔액"},
		{"fractional balance", `[{"name":"a","type":"asset","subType":"bank","icon":"x","balance":500000.7}]`, "잔액"},
		{"missing name", `[{"type":"asset","subType":"bank","icon":"x","balance":1}]`, "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAccounts(tt.raw)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "항목 1")
			assert.Contains(t, err.Error(), tt.errPart)
		})
	}
}

func TestValidateUnified(t *testing.T) {
	raw := `[{
		"intent": "transaction",
		"transactions": [{"date":"2025-06-01","type":"expense","category":"식비","description":"점심","amount":9000}],
		"accounts": [{"name":"카카오뱅크","type":"asset","subType":"bank","icon":"🏦","balance":500000}]
	}]`

	intent, txs, accs, err := ValidateUnified(raw)
	require.NoError(t, err)
	assert.Equal(t, IntentTransaction, intent, "mixed input keeps transaction intent")
	require.Len(t, txs, 1)
	require.Len(t, accs, 1)
}

func TestValidateUnified_AccountOnly(t *testing.T) {
	raw := `[{
		"intent": "account",
		"transactions": [],
		"accounts": [{"name":"새통장","type":"asset","subType":"savings","icon":"💰","balance":1000000}]
	}]`

	intent, txs, accs, err := ValidateUnified(raw)
	require.NoError(t, err)
	assert.Equal(t, IntentAccount, intent)
	assert.Empty(t, txs)
	require.Len(t, accs, 1)
}

func TestValidateUnified_Empty(t *testing.T) {
	_, _, _, err := ValidateUnified(`[{"intent":"transaction","transactions":[],"accounts":[]}]`)
	require.Error(t, err)
}
