package repository

import (
	"context"

	"github.com/daehan-lim/moneychat/internal/database"
	"github.com/daehan-lim/moneychat/internal/models"
)

type AccountRepository struct {
	db *database.DB
}

func NewAccountRepository(db *database.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Create(ctx context.Context, account *models.Account) error {
	return r.db.Pool.QueryRow(ctx,
		`INSERT INTO account (user_id, name, type, sub_type, icon, balance)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING account_id, created_at, updated_at`,
		account.UserID, account.Name, account.Type, account.SubType, account.Icon, account.Balance,
	).Scan(&account.AccountID, &account.CreatedAt, &account.UpdatedAt)
}

func (r *AccountRepository) GetByUserID(ctx context.Context, userID int64) ([]models.Account, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT account_id, user_id, name, type, sub_type, icon, balance, created_at, updated_at
		 FROM account WHERE user_id = $1 ORDER BY type ASC, name ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []models.Account
	for rows.Next() {
		var acc models.Account
		if err := rows.Scan(&acc.AccountID, &acc.UserID, &acc.Name, &acc.Type, &acc.SubType,
			&acc.Icon, &acc.Balance, &acc.CreatedAt, &acc.UpdatedAt); err != nil {
			return nil, err
		}
		accounts = append(accounts, acc)
	}
	return accounts, nil
}

func (r *AccountRepository) GetByID(ctx context.Context, accountID int, userID int64) (*models.Account, error) {
	acc := &models.Account{}
	err := r.db.Pool.QueryRow(ctx,
		`SELECT account_id, user_id, name, type, sub_type, icon, balance, created_at, updated_at
		 FROM account WHERE account_id = $1 AND user_id = $2`,
		accountID, userID,
	).Scan(&acc.AccountID, &acc.UserID, &acc.Name, &acc.Type, &acc.SubType,
		&acc.Icon, &acc.Balance, &acc.CreatedAt, &acc.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return acc, nil
}

func (r *AccountRepository) Update(ctx context.Context, account *models.Account) error {
	_, err := r.db.Pool.Exec(ctx,
		`UPDATE account SET name = $1, type = $2, sub_type = $3, icon = $4, balance = $5,
		 updated_at = CURRENT_TIMESTAMP
		 WHERE account_id = $6 AND user_id = $7`,
		account.Name, account.Type, account.SubType, account.Icon, account.Balance,
		account.AccountID, account.UserID,
	)
	return err
}

func (r *AccountRepository) UpdateBalance(ctx context.Context, accountID int, userID int64, balance int64) error {
	_, err := r.db.Pool.Exec(ctx,
		`UPDATE account SET balance = $1, updated_at = CURRENT_TIMESTAMP
		 WHERE account_id = $2 AND user_id = $3`,
		balance, accountID, userID,
	)
	return err
}

func (r *AccountRepository) Delete(ctx context.Context, accountID int, userID int64) error {
	_, err := r.db.Pool.Exec(ctx,
		`DELETE FROM account WHERE account_id = $1 AND user_id = $2`,
		accountID, userID,
	)
	return err
}
