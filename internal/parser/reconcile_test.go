package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daehan-lim/moneychat/internal/models"
)

func TestReconcile(t *testing.T) {
	existing := []models.Account{
		{AccountID: 1, Name: "카카오뱅크", Type: models.AccountTypeAsset},
		{AccountID: 2, Name: "신한카드", Type: models.AccountTypeDebt},
	}

	t.Run("exact name and type match updates", func(t *testing.T) {
		decisions := Reconcile([]ParsedAccount{
			{Name: "카카오뱅크", Type: "asset", Balance: 500000},
		}, existing)

		require.Len(t, decisions, 1)
		assert.Equal(t, ActionUpdate, decisions[0].Action)
		require.NotNil(t, decisions[0].Matched)
		assert.Equal(t, 1, decisions[0].Matched.AccountID)
	})

	t.Run("name-only match ignores type mismatch", func(t *testing.T) {
		decisions := Reconcile([]ParsedAccount{
			{Name: "신한카드", Type: "asset"},
		}, existing)

		require.Len(t, decisions, 1)
		assert.Equal(t, ActionUpdate, decisions[0].Action)
		require.NotNil(t, decisions[0].Matched)
		assert.Equal(t, 2, decisions[0].Matched.AccountID)
	})

	t.Run("unknown name creates", func(t *testing.T) {
		decisions := Reconcile([]ParsedAccount{
			{Name: "새통장", Type: "asset", SubType: "savings", Balance: 1000000},
		}, existing)

		require.Len(t, decisions, 1)
		assert.Equal(t, ActionCreate, decisions[0].Action)
		assert.Nil(t, decisions[0].Matched)
	})

	t.Run("exact match wins over name-only", func(t *testing.T) {
		both := []models.Account{
			{AccountID: 10, Name: "통장", Type: models.AccountTypeDebt},
			{AccountID: 11, Name: "통장", Type: models.AccountTypeAsset},
		}
		decisions := Reconcile([]ParsedAccount{
			{Name: "통장", Type: "asset"},
		}, both)

		require.Len(t, decisions, 1)
		require.NotNil(t, decisions[0].Matched)
		assert.Equal(t, 11, decisions[0].Matched.AccountID)
	})

	t.Run("items reconcile independently without dedup", func(t *testing.T) {
		decisions := Reconcile([]ParsedAccount{
			{Name: "카카오뱅크", Type: "asset"},
			{Name: "카카오뱅크", Type: "asset"},
		}, existing)

		require.Len(t, decisions, 2)
		for _, d := range decisions {
			assert.Equal(t, ActionUpdate, d.Action)
			require.NotNil(t, d.Matched)
			assert.Equal(t, 1, d.Matched.AccountID)
		}
	})

	t.Run("case sensitive matching", func(t *testing.T) {
		accs := []models.Account{{AccountID: 3, Name: "Toss", Type: models.AccountTypeAsset}}
		decisions := Reconcile([]ParsedAccount{{Name: "toss", Type: "asset"}}, accs)

		require.Len(t, decisions, 1)
		assert.Equal(t, ActionCreate, decisions[0].Action)
	})

	t.Run("empty parsed list", func(t *testing.T) {
		decisions := Reconcile(nil, existing)
		assert.Empty(t, decisions)
	})
}
