package recurring

import (
	"context"
	"fmt"
	"time"

	"github.com/daehan-lim/moneychat/internal/models"
)

// TransactionStore is the slice of the transaction repository the
// materializer needs.
type TransactionStore interface {
	GetRecurringTemplates(ctx context.Context, userID int64) ([]*models.Transaction, error)
	ExistsOnDate(ctx context.Context, userID int64, description string, amount int64, date time.Time) (bool, error)
	Create(ctx context.Context, tx *models.Transaction) error
}

// Materializer turns recurring templates into concrete transaction instances.
// Instances are distinct rows from their template: a template carries
// is_recurring=true, an instance does not.
type Materializer struct {
	store TransactionStore
}

func NewMaterializer(store TransactionStore) *Materializer {
	return &Materializer{store: store}
}

// MaterializeDue inserts the current month's due instances for every
// recurring template of the user. Already-materialized occurrences are
// skipped. Returns the number of instances created.
func (m *Materializer) MaterializeDue(ctx context.Context, userID int64, asOf time.Time) (int, error) {
	templates, err := m.store.GetRecurringTemplates(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to load recurring templates: %w", err)
	}

	monthStart := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, time.UTC)
	created := 0

	for _, tpl := range templates {
		if tpl.DayOfMonth == nil {
			continue
		}

		occs, err := OccurrencesBetween(*tpl.DayOfMonth, monthStart.AddDate(0, 0, -1), asOf)
		if err != nil {
			return created, err
		}

		for _, occ := range occs {
			if occ.Before(midnight(tpl.CreatedAt)) {
				continue
			}

			exists, err := m.store.ExistsOnDate(ctx, userID, tpl.Description, tpl.Amount, occ)
			if err != nil {
				return created, err
			}
			if exists {
				continue
			}

			instance := &models.Transaction{
				UserID:          userID,
				CategoryID:      tpl.CategoryID,
				Type:            tpl.Type,
				Amount:          tpl.Amount,
				Description:     tpl.Description,
				TransactionDate: occ,
			}
			if err := m.store.Create(ctx, instance); err != nil {
				return created, fmt.Errorf("failed to materialize recurring transaction: %w", err)
			}
			created++
		}
	}
	return created, nil
}
