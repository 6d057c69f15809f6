package repository

import (
	"context"
	"time"

	"github.com/daehan-lim/moneychat/internal/database"
	"github.com/daehan-lim/moneychat/internal/models"
)

type TransactionRepository struct {
	db *database.DB
}

func NewTransactionRepository(db *database.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(ctx context.Context, tx *models.Transaction) error {
	return r.db.Pool.QueryRow(ctx,
		`INSERT INTO transaction (user_id, category_id, type, amount, description, transaction_date,
		 is_recurring, day_of_month)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING transaction_id, created_at`,
		tx.UserID, tx.CategoryID, tx.Type, tx.Amount, tx.Description, tx.TransactionDate,
		tx.IsRecurring, tx.DayOfMonth,
	).Scan(&tx.TransactionID, &tx.CreatedAt)
}

// CreateBatch persists a confirmed parse result in one transaction.
func (r *TransactionRepository) CreateBatch(ctx context.Context, txs []*models.Transaction) error {
	dbTx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer dbTx.Rollback(ctx)

	for _, tx := range txs {
		err := dbTx.QueryRow(ctx,
			`INSERT INTO transaction (user_id, category_id, type, amount, description, transaction_date,
			 is_recurring, day_of_month)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			 RETURNING transaction_id, created_at`,
			tx.UserID, tx.CategoryID, tx.Type, tx.Amount, tx.Description, tx.TransactionDate,
			tx.IsRecurring, tx.DayOfMonth,
		).Scan(&tx.TransactionID, &tx.CreatedAt)
		if err != nil {
			return err
		}
	}
	return dbTx.Commit(ctx)
}

func (r *TransactionRepository) GetByDateRange(ctx context.Context, userID int64, start, end time.Time) ([]*models.Transaction, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT transaction_id, user_id, category_id, type, amount, description, transaction_date,
		 is_recurring, day_of_month, created_at
		 FROM transaction WHERE user_id = $1 AND transaction_date >= $2 AND transaction_date <= $3
		 ORDER BY transaction_date DESC, created_at DESC`,
		userID, start, end,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []*models.Transaction
	for rows.Next() {
		tx := &models.Transaction{}
		if err := rows.Scan(&tx.TransactionID, &tx.UserID, &tx.CategoryID, &tx.Type, &tx.Amount,
			&tx.Description, &tx.TransactionDate, &tx.IsRecurring, &tx.DayOfMonth, &tx.CreatedAt); err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}
	return transactions, nil
}

// GetRecurringTemplates returns the user's recurring transaction templates.
func (r *TransactionRepository) GetRecurringTemplates(ctx context.Context, userID int64) ([]*models.Transaction, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT transaction_id, user_id, category_id, type, amount, description, transaction_date,
		 is_recurring, day_of_month, created_at
		 FROM transaction WHERE user_id = $1 AND is_recurring = TRUE AND day_of_month IS NOT NULL
		 ORDER BY created_at ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []*models.Transaction
	for rows.Next() {
		tx := &models.Transaction{}
		if err := rows.Scan(&tx.TransactionID, &tx.UserID, &tx.CategoryID, &tx.Type, &tx.Amount,
			&tx.Description, &tx.TransactionDate, &tx.IsRecurring, &tx.DayOfMonth, &tx.CreatedAt); err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}
	return transactions, nil
}

// ExistsOnDate reports whether a materialized instance of a recurring
// template already exists for the given date.
func (r *TransactionRepository) ExistsOnDate(ctx context.Context, userID int64, description string, amount int64, date time.Time) (bool, error) {
	var exists bool
	err := r.db.Pool.QueryRow(ctx,
		`SELECT EXISTS(
			SELECT 1 FROM transaction
			WHERE user_id = $1 AND description = $2 AND amount = $3
			  AND transaction_date = $4 AND is_recurring = FALSE
		)`,
		userID, description, amount, date,
	).Scan(&exists)
	return exists, err
}

func (r *TransactionRepository) GetTotalByType(ctx context.Context, userID int64, start, end time.Time, txType models.TransactionType) (int64, error) {
	var total int64
	err := r.db.Pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0)
		 FROM transaction
		 WHERE user_id = $1 AND type = $2 AND transaction_date >= $3 AND transaction_date <= $4`,
		userID, txType, start, end,
	).Scan(&total)
	return total, err
}

func (r *TransactionRepository) GetSummaryByCategory(ctx context.Context, userID int64, start, end time.Time, txType models.TransactionType) (map[int]int64, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT category_id, SUM(amount) as total
		 FROM transaction
		 WHERE user_id = $1 AND type = $2 AND transaction_date >= $3 AND transaction_date <= $4
		 GROUP BY category_id`,
		userID, txType, start, end,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summary := make(map[int]int64)
	for rows.Next() {
		var categoryID *int
		var total int64
		if err := rows.Scan(&categoryID, &total); err != nil {
			return nil, err
		}
		if categoryID != nil {
			summary[*categoryID] = total
		}
	}
	return summary, nil
}

func (r *TransactionRepository) Delete(ctx context.Context, transactionID int, userID int64) error {
	_, err := r.db.Pool.Exec(ctx,
		`DELETE FROM transaction WHERE transaction_id = $1 AND user_id = $2`,
		transactionID, userID,
	)
	return err
}
